package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mediahub/backend/internal/models"
)

// mediaFileRepository implements MediaFile metadata operations over MySQL
type mediaFileRepository struct {
	db *sql.DB
}

// NewMediaFileRepository creates a new media file repository
func NewMediaFileRepository(db *sql.DB) *mediaFileRepository {
	return &mediaFileRepository{db: db}
}

// Create inserts a new media file record. When the record carries no id one
// is generated; this backend derives ids from uuids.
func (r *mediaFileRepository) Create(ctx context.Context, file *models.MediaFile) error {
	if file.ID == "" {
		file.ID = uuid.New().String()
	}

	query := `
		INSERT INTO media_files (id, filename, original_name, mime_type, size, file_type, upload_date, duration, resolution, page_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		file.ID,
		file.Filename,
		file.OriginalName,
		file.MimeType,
		file.Size,
		file.FileType,
		file.UploadDate,
		file.Duration,
		file.Resolution,
		file.PageCount,
	)
	if err != nil {
		return fmt.Errorf("failed to create media file: %w", err)
	}

	return nil
}

// GetByID retrieves a media file record by id
func (r *mediaFileRepository) GetByID(ctx context.Context, id string) (*models.MediaFile, error) {
	query := `
		SELECT filename, original_name, mime_type, size, file_type, upload_date, duration, resolution, page_count
		FROM media_files
		WHERE id = ?
		LIMIT 1
	`

	file := &models.MediaFile{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&file.Filename,
		&file.OriginalName,
		&file.MimeType,
		&file.Size,
		&file.FileType,
		&file.UploadDate,
		&file.Duration,
		&file.Resolution,
		&file.PageCount,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("media file %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get media file by id: %w", err)
	}

	file.ID = id
	return file, nil
}

// List retrieves all media file records of the given type, newest first
func (r *mediaFileRepository) List(ctx context.Context, fileType models.FileType) ([]models.MediaFile, error) {
	query := `
		SELECT id, filename, original_name, mime_type, size, file_type, upload_date, duration, resolution, page_count
		FROM media_files
		WHERE file_type = ?
		ORDER BY upload_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, fileType)
	if err != nil {
		return nil, fmt.Errorf("failed to list media files: %w", err)
	}
	defer rows.Close()

	files := []models.MediaFile{}
	for rows.Next() {
		var file models.MediaFile
		if err := rows.Scan(
			&file.ID,
			&file.Filename,
			&file.OriginalName,
			&file.MimeType,
			&file.Size,
			&file.FileType,
			&file.UploadDate,
			&file.Duration,
			&file.Resolution,
			&file.PageCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan media file: %w", err)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate media files: %w", err)
	}

	return files, nil
}

// DeleteByID deletes a media file record by id
func (r *mediaFileRepository) DeleteByID(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM media_files WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete media file: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("media file %s: %w", id, ErrNotFound)
	}

	return nil
}
