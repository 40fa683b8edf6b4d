package mmap_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/codahale/sha3/internal/mmap"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"small", []byte("abc")},
		{"multi-page", bytes.Repeat([]byte{0xde, 0xad, 0xbe, 0xef}, 5000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "input")
			if err := os.WriteFile(path, tt.data, 0o600); err != nil {
				t.Fatal(err)
			}

			f, err := mmap.Open(path)
			if err != nil {
				t.Fatal(err)
			}

			if got, want := f.Bytes(), tt.data; !bytes.Equal(got, want) {
				t.Errorf("Bytes() = %x, want = %x", got, want)
			}

			if got, want := f.Len(), len(tt.data); got != want {
				t.Errorf("Len() = %d, want = %d", got, want)
			}

			if err := f.Close(); err != nil {
				t.Fatal(err)
			}

			if err := f.Close(); err != nil {
				t.Errorf("second Close() = %v, want = nil", err)
			}
		})
	}
}

func TestOpen_NotFound(t *testing.T) {
	_, err := mmap.Open(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open(missing) err = %v, want = %v", err, fs.ErrNotExist)
	}
}

func TestOpen_Directory(t *testing.T) {
	if _, err := mmap.Open(t.TempDir()); err == nil {
		t.Error("Open(dir) err = nil, want error")
	}
}
