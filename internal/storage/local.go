package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// localStorage implements Storage using the local filesystem, with one
// subdirectory per media kind under the configured base path
type localStorage struct {
	basePath string
}

// NewLocalStorage creates a new filesystem-backed storage rooted at basePath
func NewLocalStorage(basePath string) *localStorage {
	return &localStorage{basePath: basePath}
}

func (s *localStorage) path(kind, filename string) string {
	return filepath.Join(s.basePath, kind, filename)
}

// Save writes the full blob content under kind/filename
func (s *localStorage) Save(ctx context.Context, kind, filename string, content io.Reader) error {
	path := s.path(kind, filename)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create blob directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create blob file: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write blob file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close blob file: %w", err)
	}

	return nil
}

// Open returns a reader over the whole blob
func (s *localStorage) Open(ctx context.Context, kind, filename string) (io.ReadCloser, error) {
	f, err := os.Open(s.path(kind, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("open blob: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("open blob: %w", err)
	}
	return f, nil
}

// OpenRange returns a reader over the inclusive byte window [start, end].
// The underlying file is closed together with the returned reader.
func (s *localStorage) OpenRange(ctx context.Context, kind, filename string, start, end int64) (io.ReadCloser, error) {
	f, err := os.Open(s.path(kind, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("open blob: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("open blob: %w", err)
	}

	if _, err := f.Seek(start, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("seek blob to %d: %w", start, err)
	}

	return &windowReader{
		Reader: io.LimitReader(f, end-start+1),
		file:   f,
	}, nil
}

// Delete removes the blob file
func (s *localStorage) Delete(ctx context.Context, kind, filename string) error {
	if err := os.Remove(s.path(kind, filename)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("delete blob: %w", ErrNotFound)
		}
		return fmt.Errorf("delete blob: %w", err)
	}
	return nil
}

// windowReader limits reads to a byte window while keeping ownership of the
// underlying file handle
type windowReader struct {
	io.Reader
	file *os.File
}

func (r *windowReader) Close() error {
	return r.file.Close()
}
