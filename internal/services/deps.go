// Package services contains the business logic tying metadata stores, blob
// storage and media probing together for each media kind.
package services

import (
	"context"
	"errors"
	"io"

	"github.com/mediahub/backend/internal/models"
	"github.com/mediahub/backend/internal/probe"
)

var (
	// ErrDisallowedExtension is returned when an upload's extension is not
	// on the kind's allow-list. Nothing has been persisted when it occurs.
	ErrDisallowedExtension = errors.New("disallowed file extension")

	// ErrEmptyName is returned by rename with a blank name
	ErrEmptyName = errors.New("name must not be empty")

	// ErrPageOutOfRange is returned when a PDF page number exceeds the
	// document's page count
	ErrPageOutOfRange = errors.New("page out of range")
)

// Upload describes a file spooled to a temp path by the ingestion handler
type Upload struct {
	TempPath     string
	OriginalName string
	ContentType  string
	Size         int64
}

// BlobStorage defines the blob store operations services depend on
type BlobStorage interface {
	Save(ctx context.Context, kind, filename string, content io.Reader) error
	Open(ctx context.Context, kind, filename string) (io.ReadCloser, error)
	OpenRange(ctx context.Context, kind, filename string, start, end int64) (io.ReadCloser, error)
	Delete(ctx context.Context, kind, filename string) error
}

// MediaFileRepository defines metadata access for video and PDF records
type MediaFileRepository interface {
	Create(ctx context.Context, file *models.MediaFile) error
	GetByID(ctx context.Context, id string) (*models.MediaFile, error)
	List(ctx context.Context, fileType models.FileType) ([]models.MediaFile, error)
	DeleteByID(ctx context.Context, id string) error
}

// AudioRepository defines metadata access for audio recording records
type AudioRepository interface {
	Create(ctx context.Context, rec *models.AudioRecording) error
	GetByID(ctx context.Context, id string) (*models.AudioRecording, error)
	List(ctx context.Context) ([]models.AudioRecording, error)
	UpdateName(ctx context.Context, id, name string) error
	DeleteByID(ctx context.Context, id string) error
}

// WebglRepository defines metadata access for WebGL asset records
type WebglRepository interface {
	Create(ctx context.Context, asset *models.WebglAsset) error
	GetByID(ctx context.Context, id string) (*models.WebglAsset, error)
	List(ctx context.Context) ([]models.WebglAsset, error)
	DeleteByID(ctx context.Context, id string) error
}

// MediaProber extracts duration and resolution from a local media file
type MediaProber interface {
	Probe(ctx context.Context, path string) (probe.Result, error)
	ProbeDuration(ctx context.Context, path string) (float64, error)
}

// PDFProcessor provides the PDF page operations used on ingest and download
type PDFProcessor interface {
	PageCount(rs io.ReadSeeker) (int, error)
	ExtractPage(rs io.ReadSeeker, page int, w io.Writer) error
}
