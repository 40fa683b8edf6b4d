// Package sha3 implements the SHA-3 fixed-output-length hash functions defined in FIPS 202 (SHA3-224, SHA3-256,
// SHA3-384, and SHA3-512) over a portable Keccak-f[1600] sponge.
//
// All functions operate on complete, in-memory messages. Each call owns its own sponge state, so they are safe to use
// from multiple goroutines.
package sha3

import (
	"errors"
	"fmt"

	"github.com/codahale/sha3/internal/sponge"
)

const (
	// Size224 is the size, in bytes, of a SHA3-224 digest.
	Size224 = 224 / 8

	// Size256 is the size, in bytes, of a SHA3-256 digest.
	Size256 = 256 / 8

	// Size384 is the size, in bytes, of a SHA3-384 digest.
	Size384 = 384 / 8

	// Size512 is the size, in bytes, of a SHA3-512 digest.
	Size512 = 512 / 8
)

// Rates of the SHA-3 sponges in bytes. Each is Width minus twice the digest size.
const (
	rate224 = sponge.Width - 2*Size224 // 1152 bits
	rate256 = sponge.Width - 2*Size256 // 1088 bits
	rate384 = sponge.Width - 2*Size384 // 832 bits
	rate512 = sponge.Width - 2*Size512 // 576 bits
)

// ErrInvalidParameter is returned when a digest length other than 224, 256, 384, or 512 bits is requested.
var ErrInvalidParameter = errors.New("sha3: invalid output length")

// Rate returns the sponge rate, in bytes, of the SHA-3 function with the given output length in bits.
func Rate(bits int) (int, error) {
	switch bits {
	case 224:
		return rate224, nil
	case 256:
		return rate256, nil
	case 384:
		return rate384, nil
	case 512:
		return rate512, nil
	default:
		return 0, fmt.Errorf("%w: %d bits", ErrInvalidParameter, bits)
	}
}

// Sum returns the SHA-3 digest of msg with the given output length in bits, which must be one of 224, 256, 384, or
// 512. The digest is bits/8 bytes long.
func Sum(msg []byte, bits int) ([]byte, error) {
	rate, err := Rate(bits)
	if err != nil {
		return nil, err
	}
	return sponge.Sum(msg, rate, bits/8), nil
}

// Sum224 returns the SHA3-224 digest of msg.
func Sum224(msg []byte) (digest [Size224]byte) {
	copy(digest[:], sponge.Sum(msg, rate224, Size224))
	return digest
}

// Sum256 returns the SHA3-256 digest of msg.
func Sum256(msg []byte) (digest [Size256]byte) {
	copy(digest[:], sponge.Sum(msg, rate256, Size256))
	return digest
}

// Sum384 returns the SHA3-384 digest of msg.
func Sum384(msg []byte) (digest [Size384]byte) {
	copy(digest[:], sponge.Sum(msg, rate384, Size384))
	return digest
}

// Sum512 returns the SHA3-512 digest of msg.
func Sum512(msg []byte) (digest [Size512]byte) {
	copy(digest[:], sponge.Sum(msg, rate512, Size512))
	return digest
}
