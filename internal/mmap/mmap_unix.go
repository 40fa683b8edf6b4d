//go:build unix

package mmap

import (
	"io"
	"io/fs"
	"math"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// Open maps the named file into memory. Empty files and files which are not regular files (e.g., pipes) are read into
// memory instead.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	if !fi.Mode().IsRegular() || fi.Size() == 0 {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		return &File{data: data}, nil
	}

	if fi.Size() > math.MaxInt {
		return nil, &fs.PathError{Op: "mmap", Path: path, Err: syscall.EFBIG}
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(fi.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, &fs.PathError{Op: "mmap", Path: path, Err: err}
	}

	return &File{data: data, mapped: true}, nil
}

// Close unmaps the file.
func (f *File) Close() error {
	data, mapped := f.data, f.mapped
	f.data, f.mapped = nil, false
	if !mapped {
		return nil
	}
	return unix.Munmap(data)
}
