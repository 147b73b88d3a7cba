package noiseprim

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/mr-tron/base58"
	"github.com/zeebo/blake3"
)

const fingerprintSize = 16

// StoredKey is an intermediary format used for exporting and importing keys.
type StoredKey struct {
	Type      string `cbor:"t,omitzero" json:"t,omitzero"`
	IsPrivate bool   `cbor:"p,omitzero" json:"p,omitzero"`
	Key       []byte `cbor:"k,omitzero" json:"k,omitzero"`
}

// ExportDH exports the private key of the given DH engine.
func ExportDH(dh DH) *StoredKey {
	return &StoredKey{
		Type:      dh.Name(),
		IsPrivate: true,
		Key:       dh.PrivateKey(),
	}
}

// ExportDHPublic exports the public key of the given DH engine.
func ExportDHPublic(dh DH) *StoredKey {
	return &StoredKey{
		Type: dh.Name(),
		Key:  dh.PublicKey(),
	}
}

// IsType checks whether the stored key is of the expected type, using case
// insensitive matching.
func (sk *StoredKey) IsType(expected string) bool {
	return strings.EqualFold(sk.Type, expected)
}

// FindStoredKeyType finds the type of the given stored key using the given
// acceptable types, using case insensitive matching.
func FindStoredKeyType[T ~string](sk *StoredKey, acceptable []T) (found T, ok bool) {
	for _, entry := range acceptable {
		if strings.EqualFold(sk.Type, string(entry)) {
			return entry, true
		}
	}
	var zero T
	return zero, false
}

// LoadDH loads a stored private key into a new DH engine from r.
func LoadDH(r Resolver, sk *StoredKey) (DH, error) {
	if !sk.IsPrivate {
		return nil, ErrNoPrivateKey
	}
	dh, err := resolveStoredDH(r, sk)
	if err != nil {
		return nil, err
	}
	if len(sk.Key) != dh.PrivLen() {
		return nil, fmt.Errorf("%w: %s private key must be %d bytes, got %d", ErrInvalidLength, dh.Name(), dh.PrivLen(), len(sk.Key))
	}

	dh.Set(sk.Key)
	return dh, nil
}

// PublicKey returns the public key of the stored key. For private keys it is
// derived with a DH engine from r.
func (sk *StoredKey) PublicKey(r Resolver) ([]byte, error) {
	if sk.IsPrivate {
		dh, err := LoadDH(r, sk)
		if err != nil {
			return nil, err
		}
		defer dh.Burn()
		return dh.PublicKey(), nil
	}

	dh, err := resolveStoredDH(r, sk)
	if err != nil {
		return nil, err
	}
	if len(sk.Key) != dh.PubLen() {
		return nil, fmt.Errorf("%w: %s public key must be %d bytes, got %d", ErrInvalidLength, dh.Name(), dh.PubLen(), len(sk.Key))
	}
	return append([]byte(nil), sk.Key...), nil
}

// Fingerprint returns the fingerprint of the stored key's public key.
func (sk *StoredKey) Fingerprint(r Resolver) (string, error) {
	pubKey, err := sk.PublicKey(r)
	if err != nil {
		return "", err
	}
	dhType, _ := FindStoredKeyType(sk, AllDHChoices())
	return Fingerprint(string(dhType), pubKey), nil
}

// Fingerprint returns a short, stable identifier of a DH public key.
func Fingerprint(dhName string, pubKey []byte) string {
	h := blake3.New()
	h.Write([]byte(dhName))
	h.Write(pubKey)
	sum := h.Sum(nil)
	return base58.Encode(sum[:fingerprintSize])
}

func resolveStoredDH(r Resolver, sk *StoredKey) (DH, error) {
	dhType, ok := FindStoredKeyType(sk, AllDHChoices())
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKeyType, sk.Type)
	}
	dh, ok := r.ResolveDH(dhType)
	if !ok {
		return nil, fmt.Errorf("%w: dh %s", ErrNotProvided, dhType)
	}
	return dh, nil
}

// Text returns the stored key formatted in text format.
func (sk *StoredKey) Text() string {
	pubPriv := "public"
	if sk.IsPrivate {
		pubPriv = "private"
	}

	return fmt.Sprintf(
		"%s:%s:%s",
		sk.Type,
		pubPriv,
		base58.Encode(sk.Key),
	)
}

// LoadKeyFromText loads a stored key from the text format.
func LoadKeyFromText(text string) (*StoredKey, error) {
	key := &StoredKey{}

	chunks := strings.Split(text, ":")
	if len(chunks) != 3 {
		return nil, ErrInvalidFormat
	}

	// Only check for presence here, the type is matched on use.
	if chunks[0] == "" {
		return nil, ErrInvalidKeyType
	}
	key.Type = chunks[0]

	switch chunks[1] {
	case "public":
		key.IsPrivate = false
	case "private":
		key.IsPrivate = true
	default:
		return nil, ErrInvalidFormat
	}

	keyData, err := base58.Decode(chunks[2])
	if err != nil || len(keyData) == 0 {
		return nil, ErrInvalidFormat
	}
	key.Key = keyData

	return key, nil
}

// Bytes returns the stored key formatted in binary format.
func (sk *StoredKey) Bytes() ([]byte, error) {
	return cbor.Marshal(sk)
}

// LoadKeyFromBytes loads a stored key from the binary format.
func LoadKeyFromBytes(data []byte) (*StoredKey, error) {
	key := &StoredKey{}
	err := cbor.Unmarshal(data, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	if len(key.Type) == 0 || len(key.Key) == 0 {
		return nil, ErrInvalidFormat
	}
	return key, nil
}

// JSON returns the stored key as json.
func (sk *StoredKey) JSON() ([]byte, error) {
	return json.Marshal(sk)
}

// LoadKeyFromJSON loads a stored key from json.
func LoadKeyFromJSON(data []byte) (*StoredKey, error) {
	key := &StoredKey{}
	err := json.Unmarshal(data, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	if len(key.Type) == 0 || len(key.Key) == 0 {
		return nil, ErrInvalidFormat
	}
	return key, nil
}

// Burn zeroes the key material.
func (sk *StoredKey) Burn() {
	clear(sk.Key)
	sk.Key = nil
}
