package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mediahub/backend/internal/models"
	"github.com/mediahub/backend/internal/storage"
	"go.uber.org/zap"
)

// AudioService handles business logic for audio recordings
type AudioService struct {
	repo    AudioRepository
	storage BlobStorage
	prober  MediaProber
	logger  *zap.Logger
}

// NewAudioService creates a new audio service
func NewAudioService(repo AudioRepository, blobs BlobStorage, prober MediaProber, logger *zap.Logger) *AudioService {
	return &AudioService{
		repo:    repo,
		storage: blobs,
		prober:  prober,
		logger:  logger,
	}
}

// Upload ingests an audio recording: probes its duration, stores the blob,
// then the metadata record. The recording name defaults to the original
// filename without extension; the format is the extension without the dot.
func (s *AudioService) Upload(ctx context.Context, upload Upload, name string) (*models.AudioRecording, error) {
	duration, err := s.prober.ProbeDuration(ctx, upload.TempPath)
	if err != nil {
		return nil, fmt.Errorf("probe audio: %w", err)
	}

	ext := filepath.Ext(upload.OriginalName)
	if name == "" {
		name = strings.TrimSuffix(upload.OriginalName, ext)
	}

	rec := &models.AudioRecording{
		Name:         name,
		Filename:     storage.GenerateFilename(ext),
		Size:         upload.Size,
		Duration:     duration,
		DateRecorded: time.Now().UTC(),
		Format:       strings.TrimPrefix(strings.ToLower(ext), "."),
	}

	src, err := os.Open(upload.TempPath)
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if err := s.storage.Save(ctx, storage.KindAudio, rec.Filename, src); err != nil {
		return nil, fmt.Errorf("store blob: %w", err)
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		if delErr := s.storage.Delete(ctx, storage.KindAudio, rec.Filename); delErr != nil {
			s.logger.Error("failed to clean up blob after metadata failure",
				zap.String("filename", rec.Filename),
				zap.Error(delErr),
			)
		}
		return nil, fmt.Errorf("create metadata: %w", err)
	}

	return rec, nil
}

// GetByID retrieves an audio recording record by id
func (s *AudioService) GetByID(ctx context.Context, id string) (*models.AudioRecording, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves all audio recording records
func (s *AudioService) List(ctx context.Context) ([]models.AudioRecording, error) {
	return s.repo.List(ctx)
}

// Rename updates the user-facing name of a recording; dateRecorded and all
// other fields are untouched
func (s *AudioService) Rename(ctx context.Context, id, name string) (*models.AudioRecording, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	if err := s.repo.UpdateName(ctx, id, name); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete removes the blob then the metadata record, tolerating a blob that
// is already missing from storage
func (s *AudioService) Delete(ctx context.Context, id string) error {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, storage.KindAudio, rec.Filename); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("delete blob: %w", err)
		}
		s.logger.Warn("blob missing during delete, removing record anyway",
			zap.String("id", id),
			zap.String("filename", rec.Filename),
		)
	}

	return s.repo.DeleteByID(ctx, id)
}

// OpenBlobRange opens the inclusive byte window [start, end] of the
// recording's blob
func (s *AudioService) OpenBlobRange(ctx context.Context, rec *models.AudioRecording, start, end int64) (io.ReadCloser, error) {
	return s.storage.OpenRange(ctx, storage.KindAudio, rec.Filename, start, end)
}
