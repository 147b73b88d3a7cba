package noiseprim

import (
	"bytes"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/hkdf"
)

var stdHashes = map[string]func() hash.Hash{
	"SHA256": sha256.New,
	"SHA512": sha512.New,
}

func TestHMAC_RFC4231(t *testing.T) {
	t.Parallel()

	// RFC 4231, test case 3.
	key := bytes.Repeat([]byte{0xaa}, 20)
	data := bytes.Repeat([]byte{0xdd}, 50)

	out256 := make([]byte, 32)
	HMAC(NewSHA256(), key, data, out256)
	assert.Equal(t, mustHex(t, "773ea91e36800e46854db8ebd09181a72959098b3ef8c122d9635514ced565fe"), out256)

	out512 := make([]byte, 64)
	HMAC(NewSHA512(), key, data, out512)
	assert.Equal(t, mustHex(t, `
		fa73b0089d56a284efb0f0756c890be9
		b1b5dbdd8ee81a3655f83e33b2279d39
		bf3e848279a722c806b485a47e67c807
		b946a337bee8942674278859e13292fb`), out512)
}

func TestHMAC_MatchesStandardLibrary(t *testing.T) {
	t.Parallel()

	for _, hc := range hashCases {
		t.Run(hc.name, func(t *testing.T) {
			t.Parallel()

			// Shorter than, equal to and longer than the block length.
			for _, keyLen := range []int{0, 1, 32, hc.blockLen - 1, hc.blockLen, hc.blockLen + 1, 3 * hc.blockLen} {
				key := make([]byte, keyLen)
				data := make([]byte, 100+keyLen)
				_, _ = rand.Read(key)
				_, _ = rand.Read(data)

				got := make([]byte, hc.hashLen)
				HMAC(hc.new(), key, data, got)

				ref := hmac.New(stdHashes[hc.name], key)
				ref.Write(data)
				if want := ref.Sum(nil); !bytes.Equal(got, want) {
					t.Fatalf("key length %d: hmac mismatch\n got: %x\nwant: %x", keyLen, got, want)
				}
			}
		})
	}
}

func TestHMAC_LeavesEngineReady(t *testing.T) {
	t.Parallel()

	h := NewSHA256()
	h.Input([]byte("partial"))
	HMAC(h, []byte("key"), []byte("data"), make([]byte, 32))

	// No reset needed after HMAC.
	h.Input([]byte("abc"))
	out := make([]byte, 32)
	h.Result(out)
	sum := sha256.Sum256([]byte("abc"))
	assert.Equal(t, sum[:], out)
}

func TestHMAC_ShortOutputPanics(t *testing.T) {
	t.Parallel()

	panicsWith(t, ErrInvalidLength, func() {
		HMAC(NewSHA512(), []byte("key"), []byte("data"), make([]byte, 32))
	})
}

func TestHKDF_MatchesRFC5869(t *testing.T) {
	t.Parallel()

	for _, hc := range hashCases {
		t.Run(hc.name, func(t *testing.T) {
			t.Parallel()

			chainingKey := make([]byte, hc.hashLen)
			ikm := make([]byte, 32)
			_, _ = rand.Read(chainingKey)
			_, _ = rand.Read(ikm)

			want := make([]byte, 3*hc.hashLen)
			_, err := io.ReadFull(hkdf.New(stdHashes[hc.name], ikm, chainingKey, nil), want)
			require.NoError(t, err)

			for n := 1; n <= 3; n++ {
				outputs := make([][]byte, n)
				for i := range outputs {
					outputs[i] = make([]byte, hc.hashLen)
				}
				HKDF(hc.new(), chainingKey, ikm, outputs...)

				for i, out := range outputs {
					assert.Equal(t, want[i*hc.hashLen:(i+1)*hc.hashLen], out, "output %d of %d", i+1, n)
				}
			}
		})
	}
}

func TestHKDF_OutputAliasesChainingKey(t *testing.T) {
	t.Parallel()

	// Handshakes commonly write the new chaining key over the old one.
	chainingKey := bytes.Repeat([]byte{0x01}, 32)
	ikm := []byte("input key material")

	wantCK := make([]byte, 32)
	wantK := make([]byte, 32)
	HKDF(NewSHA256(), chainingKey, ikm, wantCK, wantK)

	ck := bytes.Repeat([]byte{0x01}, 32)
	k := make([]byte, 32)
	HKDF(NewSHA256(), ck, ikm, ck, k)

	assert.Equal(t, wantCK, ck)
	assert.Equal(t, wantK, k)
}

func TestHKDF_OutputCount(t *testing.T) {
	t.Parallel()

	h := NewSHA256()
	panicsWith(t, ErrInvalidLength, func() { HKDF(h, nil, nil) })
	panicsWith(t, ErrInvalidLength, func() {
		HKDF(h, nil, nil, make([]byte, 32), make([]byte, 32), make([]byte, 32), make([]byte, 32))
	})
	panicsWith(t, ErrInvalidLength, func() { HKDF(h, nil, nil, make([]byte, 31)) })
}
