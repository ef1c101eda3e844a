// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

package rom

import (
	"fmt"
	"io"
	"os"
)

// Medium is the fixed-size random-access storage a Stream works over.
// Writes never change its size.
type Medium interface {
	io.ReaderAt
	io.WriterAt
	Size() int64
}

// Memory is an in-memory Medium over a caller-owned slice.
type Memory struct {
	b []byte
}

// NewMemory returns a Medium over b. The slice is used in place, not copied.
func NewMemory(b []byte) *Memory {
	return &Memory{b: b}
}

// Bytes returns the underlying slice.
func (m *Memory) Bytes() []byte { return m.b }

// Size returns the medium length.
func (m *Memory) Size() int64 { return int64(len(m.b)) }

// ReadAt implements io.ReaderAt.
func (m *Memory) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("%w: negative offset %d", ErrInvalidArgument, off)
	}
	if off >= int64(len(m.b)) {
		return 0, io.EOF
	}

	n := copy(p, m.b[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// WriteAt implements io.WriterAt. Writes that do not fit entirely write nothing.
func (m *Memory) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 || off+int64(len(p)) > int64(len(m.b)) {
		return 0, fmt.Errorf("%w: write of %d bytes at 0x%X", ErrEndOfStream, len(p), off)
	}

	return copy(m.b[off:], p), nil
}

// File is a Medium backed by a ROM file on disk.
type File struct {
	f        *os.File
	size     int64
	writable bool
}

// OpenFile opens a ROM file. The size is fixed at open time.
func OpenFile(name string, writable bool) (*File, error) {
	flag := os.O_RDONLY
	if writable {
		flag = os.O_RDWR
	}

	f, err := os.OpenFile(name, flag, 0)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidArgument, name)
	}

	return &File{f: f, size: info.Size(), writable: writable}, nil
}

// Name returns the file name.
func (f *File) Name() string { return f.f.Name() }

// Size returns the file length at open time.
func (f *File) Size() int64 { return f.size }

// ReadAt implements io.ReaderAt.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	if off >= f.size {
		return 0, io.EOF
	}
	if rest := f.size - off; int64(len(p)) > rest {
		n, err := f.f.ReadAt(p[:rest], off)
		if err == nil {
			err = io.EOF
		}
		return n, err
	}

	return f.f.ReadAt(p, off)
}

// WriteAt implements io.WriterAt. Writes that do not fit entirely write nothing.
func (f *File) WriteAt(p []byte, off int64) (int, error) {
	if !f.writable {
		return 0, ErrReadOnly
	}
	if off < 0 || off+int64(len(p)) > f.size {
		return 0, fmt.Errorf("%w: write of %d bytes at 0x%X", ErrEndOfStream, len(p), off)
	}

	return f.f.WriteAt(p, off)
}

// Sync commits written data to disk.
func (f *File) Sync() error { return f.f.Sync() }

// Close closes the file.
func (f *File) Close() error { return f.f.Close() }
