package noiseprim

import (
	"fmt"
	"slices"

	"golang.org/x/crypto/curve25519"
)

// DH is a Diffie-Hellman engine holding one keypair.
type DH interface {
	// Name returns the canonical algorithm name, e.g. "25519".
	Name() string
	PubLen() int
	PrivLen() int

	// Set imports a private key and recomputes the public key.
	// The key must be exactly PrivLen() bytes.
	Set(privKey []byte)
	// Generate draws a new private key from rng and recomputes the public key.
	Generate(rng Random) error

	PublicKey() []byte
	PrivateKey() []byte

	// DH writes the shared secret of the held private key and pubKey to
	// the first PubLen() bytes of out.
	DH(pubKey, out []byte) error

	Burn()
}

const x25519KeyLen = 32

// X25519DH implements DH over Curve25519.
type X25519DH struct {
	privKey [x25519KeyLen]byte
	pubKey  [x25519KeyLen]byte
}

// NewX25519DH returns an X25519 engine holding the all-zero private key.
func NewX25519DH() *X25519DH {
	x := &X25519DH{}
	x.derivePublic()
	return x
}

func (x *X25519DH) Name() string {
	return string(DHChoice25519)
}

func (x *X25519DH) PubLen() int {
	return x25519KeyLen
}

func (x *X25519DH) PrivLen() int {
	return x25519KeyLen
}

func (x *X25519DH) Set(privKey []byte) {
	mustLen("x25519 private key", privKey, x25519KeyLen)

	copy(x.privKey[:], privKey)
	x.derivePublic()
}

func (x *X25519DH) Generate(rng Random) error {
	var priv [x25519KeyLen]byte
	defer clear(priv[:])

	// Keep the current keys if the source fails.
	if err := rng.FillBytes(priv[:]); err != nil {
		return fmt.Errorf("generate x25519 key: %w", err)
	}

	x.privKey = priv
	x.derivePublic()
	return nil
}

func (x *X25519DH) PublicKey() []byte {
	return slices.Clone(x.pubKey[:])
}

func (x *X25519DH) PrivateKey() []byte {
	return slices.Clone(x.privKey[:])
}

// DH never fails on the point itself: low-order points yield an all-zero
// secret, and rejecting those is up to the calling protocol.
func (x *X25519DH) DH(pubKey, out []byte) error {
	if len(pubKey) != x25519KeyLen {
		return fmt.Errorf("%w: x25519 public key must be %d bytes, got %d", ErrInvalidLength, x25519KeyLen, len(pubKey))
	}
	mustMinLen("x25519 output", out, x25519KeyLen)

	var peer, shared [x25519KeyLen]byte
	copy(peer[:], pubKey)
	curve25519.ScalarMult(&shared, &x.privKey, &peer) //nolint:staticcheck // Low-order points must not error.
	copy(out, shared[:])
	clear(shared[:])
	return nil
}

// Burn zeroes the private key. The engine afterwards holds the same keypair
// as a freshly constructed one.
func (x *X25519DH) Burn() {
	clear(x.privKey[:])
	x.derivePublic()
}

func (x *X25519DH) derivePublic() {
	curve25519.ScalarBaseMult(&x.pubKey, &x.privKey) //nolint:staticcheck
}
