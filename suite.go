package noiseprim

import (
	"fmt"
	"strings"
)

// Default is the default suite using X25519, ChaCha20-Poly1305 and SHA-256.
var Default = Suite{
	dh:     DHChoice25519,
	cipher: CipherChoiceChaChaPoly,
	hash:   HashChoiceSHA256,
}

const suiteNameSeparator = "_"

// Suite defines the DH function, cipher and hash to be used together.
type Suite struct {
	dh     DHChoice
	cipher CipherChoice
	hash   HashChoice
}

// NewSuite returns a suite of the given choices.
func NewSuite(dh DHChoice, cipher CipherChoice, hash HashChoice) (Suite, error) {
	switch {
	case !dh.IsValid():
		return Suite{}, fmt.Errorf("%w: dh %q", ErrUnknownChoice, dh)
	case !cipher.IsValid():
		return Suite{}, fmt.Errorf("%w: cipher %q", ErrUnknownChoice, cipher)
	case !hash.IsValid():
		return Suite{}, fmt.Errorf("%w: hash %q", ErrUnknownChoice, hash)
	}
	return Suite{
		dh:     dh,
		cipher: cipher,
		hash:   hash,
	}, nil
}

// ParseSuite parses a suite name as used in Noise protocol names,
// e.g. "25519_ChaChaPoly_SHA256".
func ParseSuite(name string) (Suite, error) {
	parts := strings.Split(name, suiteNameSeparator)
	if len(parts) != 3 {
		return Suite{}, fmt.Errorf("%w: suite %q", ErrInvalidFormat, name)
	}

	dh, err := ParseDHChoice(parts[0])
	if err != nil {
		return Suite{}, err
	}
	cipher, err := ParseCipherChoice(parts[1])
	if err != nil {
		return Suite{}, err
	}
	hash, err := ParseHashChoice(parts[2])
	if err != nil {
		return Suite{}, err
	}
	return NewSuite(dh, cipher, hash)
}

// DHChoice returns the DH function of this suite.
func (s Suite) DHChoice() DHChoice {
	return s.dh
}

// CipherChoice returns the cipher of this suite.
func (s Suite) CipherChoice() CipherChoice {
	return s.cipher
}

// HashChoice returns the hash function of this suite.
func (s Suite) HashChoice() HashChoice {
	return s.hash
}

// Name returns the suite name in Noise protocol name order.
func (s Suite) Name() string {
	return strings.Join([]string{
		string(s.dh),
		string(s.cipher),
		string(s.hash),
	}, suiteNameSeparator)
}

func (s Suite) String() string {
	return s.Name()
}

// Engines holds one engine of each kind for a suite.
type Engines struct {
	DH     DH
	Cipher Cipher
	Hash   Hash
}

// Resolve instantiates the engines of this suite with the given resolver.
func (s Suite) Resolve(r Resolver) (*Engines, error) {
	dh, ok := r.ResolveDH(s.dh)
	if !ok {
		return nil, fmt.Errorf("%w: dh %s", ErrNotProvided, s.dh)
	}
	cipher, ok := r.ResolveCipher(s.cipher)
	if !ok {
		return nil, fmt.Errorf("%w: cipher %s", ErrNotProvided, s.cipher)
	}
	hash, ok := r.ResolveHash(s.hash)
	if !ok {
		return nil, fmt.Errorf("%w: hash %s", ErrNotProvided, s.hash)
	}
	return &Engines{
		DH:     dh,
		Cipher: cipher,
		Hash:   hash,
	}, nil
}

// Burn burns all engines.
func (e *Engines) Burn() {
	e.DH.Burn()
	e.Cipher.Burn()
	e.Hash.Burn()
}
