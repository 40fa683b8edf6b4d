// Package keccak implements the Keccak-f[1600] permutation over a 5x5 grid of 64-bit lanes.
package keccak

import "math/bits"

// Rounds is the number of rounds in Keccak-f[1600].
const Rounds = 24

// A State is the 1600-bit Keccak state, addressed as a[x][y] with x and y in [0,4]. The zero value is the all-zero
// state.
type State [5][5]uint64

// Rotate returns a rotated left by n mod 64 bits.
func Rotate(a uint64, n int) uint64 {
	return bits.RotateLeft64(a, n%64)
}

// F1600 applies the Keccak-f[1600] permutation to the state (24 rounds).
func F1600(a *State) {
	for round := range Rounds {
		theta(a)
		rhoPi(a)
		chi(a)
		a[0][0] ^= rc[round]
	}
}

func theta(a *State) {
	var c [5]uint64
	for x := range 5 {
		c[x] = a[x][0] ^ a[x][1] ^ a[x][2] ^ a[x][3] ^ a[x][4]
	}
	for x := range 5 {
		d := c[(x+4)%5] ^ Rotate(c[(x+1)%5], 1)
		for y := range 5 {
			a[x][y] ^= d
		}
	}
}

// rhoPi walks the 24 lanes other than (0,0) starting at (1,0), moving each lane to its pi position and rotating it by
// the triangular number of its step.
func rhoPi(a *State) {
	x, y := 1, 0
	current := a[x][y]
	for t := range 24 {
		x, y = y, (2*x+3*y)%5
		current, a[x][y] = a[x][y], Rotate(current, (t+1)*(t+2)/2)
	}
}

func chi(a *State) {
	var row [5]uint64
	for y := range 5 {
		for x := range 5 {
			row[x] = a[x][y]
		}
		for x := range 5 {
			a[x][y] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
		}
	}
}

// rc stores the round constants for use in the iota step.
var rc = [Rounds]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

