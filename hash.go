package noiseprim

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"hash"
)

// Hash is an incremental hash engine.
//
// An engine moves from ready to accumulating on Input and to finalized on
// Result. Reset is the only way back to ready; feeding or finalizing a
// finalized engine panics.
type Hash interface {
	// Name returns the canonical algorithm name, e.g. "SHA256".
	Name() string
	BlockLen() int
	HashLen() int

	Reset()
	Input(data []byte)
	// Result finalizes the digest and writes HashLen() bytes to out.
	Result(out []byte)

	Burn()
}

type hashState uint8

const (
	hashReady hashState = iota
	hashAccumulating
	hashFinalized
)

var errHashFinalized = errors.New("hash already finalized, reset required")

// SHA2Hash implements Hash for SHA-256 and SHA-512.
type SHA2Hash struct {
	choice   HashChoice
	blockLen int
	hasher   hash.Hash
	state    hashState
}

// NewSHA256 returns a ready SHA-256 engine.
func NewSHA256() *SHA2Hash {
	return &SHA2Hash{
		choice:   HashChoiceSHA256,
		blockLen: sha256.BlockSize,
		hasher:   sha256.New(),
	}
}

// NewSHA512 returns a ready SHA-512 engine.
func NewSHA512() *SHA2Hash {
	return &SHA2Hash{
		choice:   HashChoiceSHA512,
		blockLen: sha512.BlockSize,
		hasher:   sha512.New(),
	}
}

func (sh *SHA2Hash) Name() string {
	return string(sh.choice)
}

func (sh *SHA2Hash) BlockLen() int {
	return sh.blockLen
}

func (sh *SHA2Hash) HashLen() int {
	return sh.hasher.Size()
}

func (sh *SHA2Hash) Reset() {
	sh.hasher.Reset()
	sh.state = hashReady
}

func (sh *SHA2Hash) Input(data []byte) {
	if sh.state == hashFinalized {
		panic(errHashFinalized)
	}
	sh.hasher.Write(data)
	sh.state = hashAccumulating
}

func (sh *SHA2Hash) Result(out []byte) {
	if sh.state == hashFinalized {
		panic(errHashFinalized)
	}
	size := sh.hasher.Size()
	mustMinLen(sh.Name()+" output", out, size)

	sh.hasher.Sum(out[:0])
	// Drop the chaining state right away, output is already taken.
	sh.hasher.Reset()
	sh.state = hashFinalized
}

func (sh *SHA2Hash) Burn() {
	// Reset restores the initial chaining values. The digest's internal block
	// buffer is not reachable from here.
	sh.Reset()
}
