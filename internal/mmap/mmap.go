// Package mmap provides read-only access to file contents as a byte slice, memory-mapping regular files where the
// platform supports it.
package mmap

// A File is the contents of an opened file. Its bytes are valid until Close is called.
type File struct {
	data   []byte
	mapped bool
}

// Bytes returns the contents of the file. The slice must not be modified or used after Close.
func (f *File) Bytes() []byte {
	return f.data
}

// Len returns the size of the file in bytes.
func (f *File) Len() int {
	return len(f.data)
}
