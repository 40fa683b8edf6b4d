// Package digest adapts the SHA-3 functions to the hash.Hash interface.
//
// The returned hashes buffer everything written to them and compute the digest over the complete message when Sum is
// called. They are intended for APIs which require a hash.Hash, not for hashing messages too large to hold in memory.
package digest

import (
	"hash"

	"github.com/codahale/sha3"
)

// New returns a new hash.Hash computing the SHA-3 digest with the given output length in bits. It returns
// sha3.ErrInvalidParameter if bits is not one of 224, 256, 384, or 512.
func New(bits int) (hash.Hash, error) {
	rate, err := sha3.Rate(bits)
	if err != nil {
		return nil, err
	}

	return &digest{bits: bits, rate: rate}, nil
}

// New224 returns a new hash.Hash computing the SHA3-224 digest.
func New224() hash.Hash {
	return mustNew(224)
}

// New256 returns a new hash.Hash computing the SHA3-256 digest.
func New256() hash.Hash {
	return mustNew(256)
}

// New384 returns a new hash.Hash computing the SHA3-384 digest.
func New384() hash.Hash {
	return mustNew(384)
}

// New512 returns a new hash.Hash computing the SHA3-512 digest.
func New512() hash.Hash {
	return mustNew(512)
}

func mustNew(bits int) hash.Hash {
	h, err := New(bits)
	if err != nil {
		panic(err)
	}
	return h
}

type digest struct {
	buf  []byte
	bits int
	rate int
}

func (d *digest) Write(p []byte) (n int, err error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

func (d *digest) Sum(b []byte) []byte {
	sum, _ := sha3.Sum(d.buf, d.bits) // bits is validated by New
	return append(b, sum...)
}

func (d *digest) Reset() {
	d.buf = d.buf[:0]
}

func (d *digest) Size() int {
	return d.bits / 8
}

func (d *digest) BlockSize() int {
	return d.rate
}

var _ hash.Hash = (*digest)(nil)
