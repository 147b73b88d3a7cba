package noiseprim

import (
	"crypto/cipher"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// Cipher is an AEAD engine keyed once via Set and then used with
// externally supplied nonce counters.
type Cipher interface {
	// Name returns the canonical algorithm name, e.g. "ChaChaPoly".
	Name() string

	// Set replaces the key. The key must be exactly KeyLen bytes.
	Set(key []byte)

	// Encrypt writes the ciphertext of plaintext followed by the tag to out
	// and returns the number of bytes written, len(plaintext)+TagLen.
	Encrypt(nonce uint64, ad, plaintext, out []byte) int
	// Decrypt authenticates ciphertext (including its trailing tag) and ad
	// and only then writes the plaintext to out.
	// It returns ErrAuthFailed if authentication fails.
	Decrypt(nonce uint64, ad, ciphertext, out []byte) (int, error)

	Burn()
}

const (
	KeyLen   = chacha20poly1305.KeySize
	TagLen   = chacha20poly1305.Overhead
	NonceLen = chacha20poly1305.NonceSize
)

// ChaChaPolyCipher implements Cipher with ChaCha20-Poly1305 (RFC 8439).
type ChaChaPolyCipher struct {
	key  [KeyLen]byte
	aead cipher.AEAD
}

// NewChaChaPolyCipher returns an unkeyed ChaCha20-Poly1305 engine.
func NewChaChaPolyCipher() *ChaChaPolyCipher {
	return &ChaChaPolyCipher{}
}

func (cp *ChaChaPolyCipher) Name() string {
	return string(CipherChoiceChaChaPoly)
}

func (cp *ChaChaPolyCipher) Set(key []byte) {
	mustLen("chachapoly key", key, KeyLen)

	copy(cp.key[:], key)
	aead, err := chacha20poly1305.New(cp.key[:])
	if err != nil {
		// Only fails on key length, which is checked above.
		panic(err)
	}
	cp.aead = aead
}

func (cp *ChaChaPolyCipher) Encrypt(nonce uint64, ad, plaintext, out []byte) int {
	aead := cp.keyed()
	mustMinLen("chachapoly output", out, len(plaintext)+TagLen)

	n := noiseNonce(nonce)
	sealed := aead.Seal(out[:0], n[:], plaintext, ad)
	return len(sealed)
}

func (cp *ChaChaPolyCipher) Decrypt(nonce uint64, ad, ciphertext, out []byte) (int, error) {
	aead := cp.keyed()
	if len(ciphertext) < TagLen {
		return 0, ErrAuthFailed
	}
	size := len(ciphertext) - TagLen
	mustMinLen("chachapoly output", out, size)

	n := noiseNonce(nonce)
	// Open checks the tag before it releases any plaintext.
	plaintext, err := aead.Open(out[:0], n[:], ciphertext, ad)
	if err != nil {
		clear(out[:size])
		return 0, ErrAuthFailed
	}
	return len(plaintext), nil
}

func (cp *ChaChaPolyCipher) Burn() {
	clear(cp.key[:])
	// The AEAD holds its own copy of the key, dropping it is all we can do.
	cp.aead = nil
}

func (cp *ChaChaPolyCipher) keyed() cipher.AEAD {
	if cp.aead == nil {
		panic(fmt.Errorf("%w: call Set before use", ErrNotKeyed))
	}
	return cp.aead
}

// noiseNonce expands a nonce counter to 4 zero bytes followed by the
// counter in little-endian order.
func noiseNonce(counter uint64) [NonceLen]byte {
	var n [NonceLen]byte
	binary.LittleEndian.PutUint64(n[4:], counter)
	return n
}
