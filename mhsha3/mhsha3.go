// Package mhsha3 registers this module's SHA-3 implementations with the multihash registry.
//
// It is meant to be used as a side-effecting import:
//
//	import _ "github.com/codahale/sha3/mhsha3"
//
// After import, multihash.Sum and multihash.GetHasher use this module for the SHA3-224, SHA3-256, SHA3-384, and
// SHA3-512 codes in place of the defaults registered by go-multihash.
package mhsha3

import (
	"fmt"

	"github.com/codahale/sha3"
	"github.com/codahale/sha3/digest"
	"github.com/multiformats/go-multihash"
	mhreg "github.com/multiformats/go-multihash/core"
)

// Importing go-multihash above guarantees its default registrations run before this init, so these win.
func init() {
	mhreg.Register(multihash.SHA3_224, digest.New224)
	mhreg.Register(multihash.SHA3_256, digest.New256)
	mhreg.Register(multihash.SHA3_384, digest.New384)
	mhreg.Register(multihash.SHA3_512, digest.New512)
}

// Code returns the multihash code for the SHA-3 function with the given output length in bits.
func Code(bits int) (uint64, error) {
	switch bits {
	case 224:
		return multihash.SHA3_224, nil
	case 256:
		return multihash.SHA3_256, nil
	case 384:
		return multihash.SHA3_384, nil
	case 512:
		return multihash.SHA3_512, nil
	default:
		return 0, fmt.Errorf("%w: %d bits", sha3.ErrInvalidParameter, bits)
	}
}

// Sum returns the multihash of msg using the SHA-3 function with the given output length in bits.
func Sum(msg []byte, bits int) (multihash.Multihash, error) {
	code, err := Code(bits)
	if err != nil {
		return nil, err
	}

	d, err := sha3.Sum(msg, bits)
	if err != nil {
		return nil, err
	}

	return multihash.Encode(d, code)
}
