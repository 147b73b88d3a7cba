package noiseprim

import "fmt"

const (
	hmacInnerPad = 0x36
	hmacOuterPad = 0x5c

	hkdfMaxOutputs = 3
)

// HMAC computes HMAC(key, data) with the given hash engine and writes
// h.HashLen() bytes to out. The engine is reset before use and left ready.
func HMAC(h Hash, key, data, out []byte) {
	blockLen := h.BlockLen()
	hashLen := h.HashLen()
	mustMinLen("hmac output", out, hashLen)

	// Keys longer than a block are replaced by their digest.
	var hashedKey []byte
	if len(key) > blockLen {
		hashedKey = make([]byte, hashLen)
		h.Reset()
		h.Input(key)
		h.Result(hashedKey)
		key = hashedKey
	}

	pad := make([]byte, blockLen)
	inner := make([]byte, hashLen)
	defer func() {
		clear(pad)
		clear(inner)
		clear(hashedKey)
	}()

	// Inner pass.
	copy(pad, key)
	for i := range pad {
		pad[i] ^= hmacInnerPad
	}
	h.Reset()
	h.Input(pad)
	h.Input(data)
	h.Result(inner)

	// Outer pass. Turn the inner pad into the outer pad in place.
	for i := range pad {
		pad[i] ^= hmacInnerPad ^ hmacOuterPad
	}
	h.Reset()
	h.Input(pad)
	h.Input(inner)
	h.Result(out)

	h.Reset()
}

// HKDF is the key derivation function of the Noise framework: an RFC 5869
// extract with chainingKey as salt, followed by an expand with empty info.
// It fills one to three outputs with h.HashLen() bytes each.
func HKDF(h Hash, chainingKey, inputKeyMaterial []byte, outputs ...[]byte) {
	if len(outputs) == 0 || len(outputs) > hkdfMaxOutputs {
		panic(fmt.Errorf("%w: hkdf takes 1 to %d outputs, got %d", ErrInvalidLength, hkdfMaxOutputs, len(outputs)))
	}
	hashLen := h.HashLen()
	for _, out := range outputs {
		mustMinLen("hkdf output", out, hashLen)
	}

	tempKey := make([]byte, hashLen)
	block := make([]byte, 0, hashLen+1)
	defer func() {
		clear(tempKey)
		clear(block[:cap(block)])
	}()

	HMAC(h, chainingKey, inputKeyMaterial, tempKey)

	// T(i) = HMAC(tempKey, T(i-1) || i), with T(0) empty.
	for i, out := range outputs {
		block = append(block, byte(i+1))
		HMAC(h, tempKey, block, out)
		block = append(block[:0], out[:hashLen]...)
	}
}
