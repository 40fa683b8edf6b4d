// Package sponge implements the SHA-3 sponge construction over Keccak-f[1600]: pad10*1 padding with the SHA-3 domain
// separation bits, absorption of rate-sized blocks, and squeezing of the requested number of output bytes.
package sponge

import (
	"encoding/binary"

	"github.com/codahale/sha3/internal/keccak"
	"github.com/codahale/sha3/internal/mem"
)

const (
	// Width is the size of the Keccak-f[1600] state in bytes. The rate and the capacity of a sponge always sum to it.
	Width = 200

	// DomainSeparator is the first padding byte: the SHA-3 suffix bits 01 followed by the first 1 bit of pad10*1.
	DomainSeparator = 0x06

	// FinalBit is the last 1 bit of pad10*1, set in the final byte of a block.
	FinalBit = 0x80
)

// Pad returns the padding for a message of inputLen bytes such that inputLen+len(pad) is a multiple of rate. The
// padding is between 1 and rate bytes long. When only a single byte is needed, the domain separator and the final bit
// share it (0x86).
func Pad(inputLen, rate int) []byte {
	return AppendPad(nil, inputLen, rate)
}

// AppendPad appends the padding for a message of inputLen bytes to b and returns the extended slice.
func AppendPad(b []byte, inputLen, rate int) []byte {
	n := rate - inputLen%rate
	b, pad := mem.SliceForAppend(b, n)
	clear(pad)
	pad[0] = DomainSeparator
	pad[n-1] |= FinalBit
	return b
}

// Sum pads msg, absorbs it into a fresh state, and squeezes outLen bytes of output. The rate is in bytes and must be a
// positive multiple of 8 no larger than Width. msg is never modified or retained.
func Sum(msg []byte, rate, outLen int) []byte {
	// The full slice expression forces the padded copy into a new buffer.
	padded := AppendPad(msg[:len(msg):len(msg)], len(msg), rate)

	var a keccak.State
	absorb(&a, padded, rate)
	return squeeze(&a, rate, outLen)
}

// absorb XORs each rate-sized block of padded into the state, lane by lane, and permutes the state after each block.
// len(padded) must be a multiple of rate.
func absorb(a *keccak.State, padded []byte, rate int) {
	for len(padded) > 0 {
		block := padded[:rate]
		for j := range rate / 8 {
			a[j%5][j/5] ^= binary.LittleEndian.Uint64(block[8*j:])
		}
		keccak.F1600(a)
		padded = padded[rate:]
	}
}

// squeeze extracts lanes from the state in absorption order until outLen bytes are produced, permuting the state
// whenever the rate is exhausted and more output is still needed.
func squeeze(a *keccak.State, rate, outLen int) []byte {
	out := make([]byte, 0, outLen+7)
	for {
		for j := 0; j < rate/8 && len(out) < outLen; j++ {
			out = binary.LittleEndian.AppendUint64(out, a[j%5][j/5])
		}

		if len(out) >= outLen {
			break
		}
		keccak.F1600(a)
	}
	return out[:outLen]
}
