package noiseprim

import (
	"errors"
	"fmt"
)

var (
	ErrAuthFailed     = errors.New("authentication failed")
	ErrInvalidFormat  = errors.New("invalid format")
	ErrInvalidKeyType = errors.New("invalid key type")
	ErrInvalidLength  = errors.New("invalid length")
	ErrNoPrivateKey   = errors.New("no private key available")
	ErrNotKeyed       = errors.New("cipher has no key")
	ErrNotProvided    = errors.New("not provided by resolver")
	ErrUnknownChoice  = errors.New("unknown algorithm choice")
)

// Precondition violations are programmer errors. Continuing with a wrong
// buffer would produce wrong cryptographic output, so these panic.

func mustLen(what string, b []byte, n int) {
	if len(b) != n {
		panic(fmt.Errorf("%w: %s must be %d bytes, got %d", ErrInvalidLength, what, n, len(b)))
	}
}

func mustMinLen(what string, b []byte, n int) {
	if len(b) < n {
		panic(fmt.Errorf("%w: %s must be at least %d bytes, got %d", ErrInvalidLength, what, n, len(b)))
	}
}
