//go:build !unix

package mmap

import "os"

// Open reads the named file into memory.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &File{data: data}, nil
}

// Close releases the file's contents.
func (f *File) Close() error {
	f.data = nil
	return nil
}
