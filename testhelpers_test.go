package noiseprim

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// mustHex decodes hex test vectors, ignoring whitespace.
func mustHex(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		t.Fatalf("bad hex vector: %v", err)
	}
	return b
}

// panicsWith runs fn and fails unless it panics with an error matching target.
func panicsWith(t *testing.T, target error, fn func()) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v, got none", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected panic with error value, got %T: %v", r, r)
		}
		if !errors.Is(err, target) {
			t.Fatalf("expected panic with %v, got %v", target, err)
		}
	}()
	fn()
}

// failingReader always fails.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, fmt.Errorf("entropy source unavailable")
}
