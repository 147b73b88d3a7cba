package noiseprim

import (
	"crypto/rand"
	"io"
)

// Random is a source of cryptographically secure random bytes.
type Random interface {
	// FillBytes fills dst completely or returns an error.
	FillBytes(dst []byte) error
}

// SystemRandom reads from the operating system's secure random source.
var SystemRandom Random = NewReaderRandom(rand.Reader)

// ReaderRandom adapts an io.Reader to Random.
type ReaderRandom struct {
	r io.Reader
}

// NewReaderRandom returns a Random that reads from r.
func NewReaderRandom(r io.Reader) *ReaderRandom {
	return &ReaderRandom{r: r}
}

// FillBytes fills dst from the underlying reader.
func (rr *ReaderRandom) FillBytes(dst []byte) error {
	_, err := io.ReadFull(rr.r, dst)
	return err
}
