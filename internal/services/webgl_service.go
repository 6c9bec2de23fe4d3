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

// allowed upload extensions for WebGL assets
var webglExtensions = map[string]bool{
	".gltf": true,
	".glb":  true,
	".png":  true,
	".fbx":  true,
}

// WebglService handles business logic for WebGL 3D assets
type WebglService struct {
	repo    WebglRepository
	storage BlobStorage
	logger  *zap.Logger
}

// NewWebglService creates a new WebGL asset service
func NewWebglService(repo WebglRepository, blobs BlobStorage, logger *zap.Logger) *WebglService {
	return &WebglService{
		repo:    repo,
		storage: blobs,
		logger:  logger,
	}
}

// Upload ingests a WebGL asset. The extension allow-list is checked before
// anything is persisted; a disallowed extension leaves no blob and no record.
func (s *WebglService) Upload(ctx context.Context, upload Upload, name, description string) (*models.WebglAsset, error) {
	ext := strings.ToLower(filepath.Ext(upload.OriginalName))
	if !webglExtensions[ext] {
		return nil, fmt.Errorf("extension %q: %w", ext, ErrDisallowedExtension)
	}

	if name == "" {
		name = strings.TrimSuffix(upload.OriginalName, filepath.Ext(upload.OriginalName))
	}

	asset := &models.WebglAsset{
		Name:         name,
		Filename:     storage.GenerateFilename(ext),
		Size:         upload.Size,
		Format:       models.WebglFormatFromExtension(ext),
		Description:  description,
		DateUploaded: time.Now().UTC(),
	}

	src, err := os.Open(upload.TempPath)
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if err := s.storage.Save(ctx, storage.KindWebgl, asset.Filename, src); err != nil {
		return nil, fmt.Errorf("store blob: %w", err)
	}

	if err := s.repo.Create(ctx, asset); err != nil {
		if delErr := s.storage.Delete(ctx, storage.KindWebgl, asset.Filename); delErr != nil {
			s.logger.Error("failed to clean up blob after metadata failure",
				zap.String("filename", asset.Filename),
				zap.Error(delErr),
			)
		}
		return nil, fmt.Errorf("create metadata: %w", err)
	}

	return asset, nil
}

// GetByID retrieves a WebGL asset record by id
func (s *WebglService) GetByID(ctx context.Context, id string) (*models.WebglAsset, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves all WebGL asset records
func (s *WebglService) List(ctx context.Context) ([]models.WebglAsset, error) {
	return s.repo.List(ctx)
}

// Delete removes the blob then the metadata record, tolerating a blob that
// is already missing from storage
func (s *WebglService) Delete(ctx context.Context, id string) error {
	asset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, storage.KindWebgl, asset.Filename); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("delete blob: %w", err)
		}
		s.logger.Warn("blob missing during delete, removing record anyway",
			zap.String("id", id),
			zap.String("filename", asset.Filename),
		)
	}

	return s.repo.DeleteByID(ctx, id)
}

// OpenBlob opens the full blob of the given asset
func (s *WebglService) OpenBlob(ctx context.Context, asset *models.WebglAsset) (io.ReadCloser, error) {
	return s.storage.Open(ctx, storage.KindWebgl, asset.Filename)
}
