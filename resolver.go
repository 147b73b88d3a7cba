package noiseprim

// Resolver maps algorithm choices to fresh engine instances.
//
// A resolver that does not provide a choice returns false. That is not an
// error: callers are expected to try other resolvers.
type Resolver interface {
	ResolveRandom() (Random, bool)
	ResolveDH(choice DHChoice) (DH, bool)
	ResolveHash(choice HashChoice) (Hash, bool)
	ResolveCipher(choice CipherChoice) (Cipher, bool)
}

// DefaultResolver provides X25519, SHA-256, SHA-512 and ChaCha20-Poly1305.
// It does not provide randomness.
type DefaultResolver struct{}

// ResolveRandom always reports absence. Entropy must come from elsewhere,
// for example SystemRandom or a FallbackResolver.
func (DefaultResolver) ResolveRandom() (Random, bool) {
	return nil, false
}

func (DefaultResolver) ResolveDH(choice DHChoice) (DH, bool) {
	switch choice {
	case DHChoice25519:
		return NewX25519DH(), true
	default:
		return nil, false
	}
}

func (DefaultResolver) ResolveHash(choice HashChoice) (Hash, bool) {
	switch choice {
	case HashChoiceSHA256:
		return NewSHA256(), true
	case HashChoiceSHA512:
		return NewSHA512(), true
	default:
		return nil, false
	}
}

func (DefaultResolver) ResolveCipher(choice CipherChoice) (Cipher, bool) {
	switch choice {
	case CipherChoiceChaChaPoly:
		return NewChaChaPolyCipher(), true
	default:
		return nil, false
	}
}

// FallbackResolver asks the preferred resolver first and the fallback
// resolver second.
type FallbackResolver struct {
	preferred Resolver
	fallback  Resolver
}

// NewFallbackResolver returns a resolver chaining preferred and fallback.
func NewFallbackResolver(preferred, fallback Resolver) *FallbackResolver {
	return &FallbackResolver{
		preferred: preferred,
		fallback:  fallback,
	}
}

func (fr *FallbackResolver) ResolveRandom() (Random, bool) {
	if rng, ok := fr.preferred.ResolveRandom(); ok {
		return rng, true
	}
	return fr.fallback.ResolveRandom()
}

func (fr *FallbackResolver) ResolveDH(choice DHChoice) (DH, bool) {
	if dh, ok := fr.preferred.ResolveDH(choice); ok {
		return dh, true
	}
	return fr.fallback.ResolveDH(choice)
}

func (fr *FallbackResolver) ResolveHash(choice HashChoice) (Hash, bool) {
	if h, ok := fr.preferred.ResolveHash(choice); ok {
		return h, true
	}
	return fr.fallback.ResolveHash(choice)
}

func (fr *FallbackResolver) ResolveCipher(choice CipherChoice) (Cipher, bool) {
	if c, ok := fr.preferred.ResolveCipher(choice); ok {
		return c, true
	}
	return fr.fallback.ResolveCipher(choice)
}
