package noiseprim

import "fmt"

// DHChoice identifies a Diffie-Hellman function by its Noise name.
type DHChoice string

const (
	DHChoice25519 DHChoice = "25519"
	DHChoice448   DHChoice = "448"
)

func AllDHChoices() []DHChoice {
	return []DHChoice{
		DHChoice25519,
		DHChoice448,
	}
}

func (dc DHChoice) IsValid() bool {
	switch dc {
	case DHChoice25519, DHChoice448:
		return true
	}
	return false
}

func (dc DHChoice) String() string {
	return string(dc)
}

// ParseDHChoice returns the DH choice with the given canonical name.
func ParseDHChoice(name string) (DHChoice, error) {
	dc := DHChoice(name)
	if !dc.IsValid() {
		return "", fmt.Errorf("%w: dh %q", ErrUnknownChoice, name)
	}
	return dc, nil
}

// HashChoice identifies a hash function by its Noise name.
type HashChoice string

const (
	HashChoiceSHA256  HashChoice = "SHA256"
	HashChoiceSHA512  HashChoice = "SHA512"
	HashChoiceBLAKE2s HashChoice = "BLAKE2s"
	HashChoiceBLAKE2b HashChoice = "BLAKE2b"
)

func AllHashChoices() []HashChoice {
	return []HashChoice{
		HashChoiceSHA256,
		HashChoiceSHA512,
		HashChoiceBLAKE2s,
		HashChoiceBLAKE2b,
	}
}

func (hc HashChoice) IsValid() bool {
	switch hc {
	case HashChoiceSHA256, HashChoiceSHA512, HashChoiceBLAKE2s, HashChoiceBLAKE2b:
		return true
	}
	return false
}

func (hc HashChoice) String() string {
	return string(hc)
}

// ParseHashChoice returns the hash choice with the given canonical name.
func ParseHashChoice(name string) (HashChoice, error) {
	hc := HashChoice(name)
	if !hc.IsValid() {
		return "", fmt.Errorf("%w: hash %q", ErrUnknownChoice, name)
	}
	return hc, nil
}

// CipherChoice identifies an AEAD cipher by its Noise name.
type CipherChoice string

const (
	CipherChoiceChaChaPoly CipherChoice = "ChaChaPoly"
	CipherChoiceAESGCM     CipherChoice = "AESGCM"
)

func AllCipherChoices() []CipherChoice {
	return []CipherChoice{
		CipherChoiceChaChaPoly,
		CipherChoiceAESGCM,
	}
}

func (cc CipherChoice) IsValid() bool {
	switch cc {
	case CipherChoiceChaChaPoly, CipherChoiceAESGCM:
		return true
	}
	return false
}

func (cc CipherChoice) String() string {
	return string(cc)
}

// ParseCipherChoice returns the cipher choice with the given canonical name.
func ParseCipherChoice(name string) (CipherChoice, error) {
	cc := CipherChoice(name)
	if !cc.IsValid() {
		return "", fmt.Errorf("%w: cipher %q", ErrUnknownChoice, name)
	}
	return cc, nil
}
