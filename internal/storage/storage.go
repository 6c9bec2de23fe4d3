// Package storage provides blob persistence for uploaded media files.
// Blobs are addressed by media kind and generated filename; metadata lives
// elsewhere. Two backends exist: local filesystem and S3-compatible object
// storage.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound indicates the requested blob does not exist in the backend
var ErrNotFound = errors.New("blob not found")

// Media kind directories/prefixes used as the first path segment of a blob key
const (
	KindVideo = "videos"
	KindPDF   = "pdfs"
	KindAudio = "audio"
	KindWebgl = "webgl"
)

// Storage defines blob store operations. Implementations must return
// independent readers per Open/OpenRange call; concurrent reads of the same
// blob do not share state.
type Storage interface {
	// Save writes the full blob content under kind/filename
	Save(ctx context.Context, kind, filename string, content io.Reader) error

	// Open returns a reader over the whole blob
	Open(ctx context.Context, kind, filename string) (io.ReadCloser, error)

	// OpenRange returns a reader over the inclusive byte window [start, end]
	OpenRange(ctx context.Context, kind, filename string, start, end int64) (io.ReadCloser, error)

	// Delete removes the blob; deleting a missing blob returns ErrNotFound
	Delete(ctx context.Context, kind, filename string) error
}
