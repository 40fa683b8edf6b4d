package digest_test

import (
	"bytes"
	"errors"
	"hash"
	"testing"

	"github.com/codahale/sha3"
	"github.com/codahale/sha3/digest"
)

func TestDigest_Size(t *testing.T) {
	tests := []struct {
		name      string
		h         hash.Hash
		size      int
		blockSize int
	}{
		{"sha3-224", digest.New224(), 28, 144},
		{"sha3-256", digest.New256(), 32, 136},
		{"sha3-384", digest.New384(), 48, 104},
		{"sha3-512", digest.New512(), 64, 72},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.h.Size(); got != tt.size {
				t.Errorf("Size() = %d, want %d", got, tt.size)
			}

			if got := tt.h.BlockSize(); got != tt.blockSize {
				t.Errorf("BlockSize() = %d, want %d", got, tt.blockSize)
			}
		})
	}
}

func TestNew_Invalid(t *testing.T) {
	h, err := digest.New(300)
	if !errors.Is(err, sha3.ErrInvalidParameter) {
		t.Errorf("New(300) err = %v, want = %v", err, sha3.ErrInvalidParameter)
	}

	if h != nil {
		t.Errorf("New(300) = %v, want = nil", h)
	}
}

func TestDigest_Sum(t *testing.T) {
	h := digest.New256()
	input := []byte("Hello, world!")
	_, _ = h.Write(input[:5])
	_, _ = h.Write(input[5:])

	sum := h.Sum(nil)
	if want := sha3.Sum256(input); !bytes.Equal(sum, want[:]) {
		t.Errorf("Sum = %x, want %x", sum, want)
	}

	// Sum must not change the state.
	sum2 := h.Sum(nil)
	if !bytes.Equal(sum, sum2) {
		t.Errorf("Sum() = %x, want %x", sum2, sum)
	}

	// Sum appends to its argument.
	prefixed := h.Sum([]byte("prefix"))
	if !bytes.Equal(prefixed, append([]byte("prefix"), sum...)) {
		t.Errorf("Sum(prefix) = %x", prefixed)
	}

	_, _ = h.Write(input)
	sum3 := h.Sum(nil)
	if bytes.Equal(sum, sum3) {
		t.Error("Sum() should change after Write()")
	}
}

func TestDigest_Reset(t *testing.T) {
	h := digest.New512()
	_, _ = h.Write([]byte("data"))
	sum1 := h.Sum(nil)

	h.Reset()
	sumEmpty := h.Sum(nil)

	if want := sha3.Sum512(nil); !bytes.Equal(sumEmpty, want[:]) {
		t.Errorf("Sum() after Reset = %x, want %x", sumEmpty, want)
	}

	_, _ = h.Write([]byte("data"))
	sum2 := h.Sum(nil)

	if !bytes.Equal(sum1, sum2) {
		t.Errorf("Sum() after Reset+Write = %x, want %x", sum2, sum1)
	}
}
