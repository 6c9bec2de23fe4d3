package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mediahub/backend/internal/models"
	"github.com/mediahub/backend/internal/storage"
	"go.uber.org/zap"
)

// MediaService handles business logic for video and PDF media files
type MediaService struct {
	repo    MediaFileRepository
	storage BlobStorage
	prober  MediaProber
	pdf     PDFProcessor
	logger  *zap.Logger
}

// NewMediaService creates a new media service
func NewMediaService(repo MediaFileRepository, blobs BlobStorage, prober MediaProber, pdf PDFProcessor, logger *zap.Logger) *MediaService {
	return &MediaService{
		repo:    repo,
		storage: blobs,
		prober:  prober,
		pdf:     pdf,
		logger:  logger,
	}
}

func kindForFileType(fileType models.FileType) string {
	if fileType == models.FileTypePDF {
		return storage.KindPDF
	}
	return storage.KindVideo
}

// UploadVideo ingests a video: probes duration and resolution from the
// spooled upload, stores the blob, then the metadata record
func (s *MediaService) UploadVideo(ctx context.Context, upload Upload) (*models.MediaFile, error) {
	result, err := s.prober.Probe(ctx, upload.TempPath)
	if err != nil {
		return nil, fmt.Errorf("probe video: %w", err)
	}

	file := &models.MediaFile{
		Filename:     storage.GenerateFilename(filepath.Ext(upload.OriginalName)),
		OriginalName: upload.OriginalName,
		MimeType:     upload.ContentType,
		Size:         upload.Size,
		FileType:     models.FileTypeVideo,
		UploadDate:   time.Now().UTC(),
		Duration:     result.Duration,
		Resolution:   result.Resolution(),
	}

	if err := s.persist(ctx, upload.TempPath, file); err != nil {
		return nil, err
	}
	return file, nil
}

// UploadPDF ingests a PDF: counts pages from the spooled upload, stores the
// blob, then the metadata record
func (s *MediaService) UploadPDF(ctx context.Context, upload Upload) (*models.MediaFile, error) {
	f, err := os.Open(upload.TempPath)
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	pageCount, err := s.pdf.PageCount(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("count pages: %w", err)
	}

	file := &models.MediaFile{
		Filename:     storage.GenerateFilename(filepath.Ext(upload.OriginalName)),
		OriginalName: upload.OriginalName,
		MimeType:     upload.ContentType,
		Size:         upload.Size,
		FileType:     models.FileTypePDF,
		UploadDate:   time.Now().UTC(),
		PageCount:    pageCount,
	}

	if err := s.persist(ctx, upload.TempPath, file); err != nil {
		return nil, err
	}
	return file, nil
}

// persist copies the spooled upload into blob storage and creates the
// metadata record, removing the blob again if the record cannot be created
func (s *MediaService) persist(ctx context.Context, tempPath string, file *models.MediaFile) error {
	kind := kindForFileType(file.FileType)

	src, err := os.Open(tempPath)
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if err := s.storage.Save(ctx, kind, file.Filename, src); err != nil {
		return fmt.Errorf("store blob: %w", err)
	}

	if err := s.repo.Create(ctx, file); err != nil {
		if delErr := s.storage.Delete(ctx, kind, file.Filename); delErr != nil {
			s.logger.Error("failed to clean up blob after metadata failure",
				zap.String("filename", file.Filename),
				zap.Error(delErr),
			)
		}
		return fmt.Errorf("create metadata: %w", err)
	}

	return nil
}

// GetByID retrieves a media file record by id
func (s *MediaService) GetByID(ctx context.Context, id string) (*models.MediaFile, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves all media file records of the given type
func (s *MediaService) List(ctx context.Context, fileType models.FileType) ([]models.MediaFile, error) {
	return s.repo.List(ctx, fileType)
}

// Delete removes the blob then the metadata record. A blob already missing
// from storage is logged and tolerated; the record is removed regardless.
func (s *MediaService) Delete(ctx context.Context, id string) error {
	file, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	kind := kindForFileType(file.FileType)
	if err := s.storage.Delete(ctx, kind, file.Filename); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("delete blob: %w", err)
		}
		s.logger.Warn("blob missing during delete, removing record anyway",
			zap.String("id", id),
			zap.String("filename", file.Filename),
		)
	}

	return s.repo.DeleteByID(ctx, id)
}

// OpenBlob opens the full blob of the given record
func (s *MediaService) OpenBlob(ctx context.Context, file *models.MediaFile) (io.ReadCloser, error) {
	return s.storage.Open(ctx, kindForFileType(file.FileType), file.Filename)
}

// OpenBlobRange opens the inclusive byte window [start, end] of the blob
func (s *MediaService) OpenBlobRange(ctx context.Context, file *models.MediaFile, start, end int64) (io.ReadCloser, error) {
	return s.storage.OpenRange(ctx, kindForFileType(file.FileType), file.Filename, start, end)
}

// ExtractPage writes a single-page PDF containing the given page (1-based)
// of the stored document to w
func (s *MediaService) ExtractPage(ctx context.Context, file *models.MediaFile, page int, w io.Writer) error {
	if page < 1 || page > file.PageCount {
		return fmt.Errorf("page %d of %d: %w", page, file.PageCount, ErrPageOutOfRange)
	}

	blob, err := s.OpenBlob(ctx, file)
	if err != nil {
		return fmt.Errorf("open pdf blob: %w", err)
	}
	defer blob.Close()

	// pdfcpu needs a seekable source; blobs may come from object storage
	content, err := io.ReadAll(blob)
	if err != nil {
		return fmt.Errorf("read pdf blob: %w", err)
	}

	return s.pdf.ExtractPage(bytes.NewReader(content), page, w)
}
