package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mediahub/backend/internal/models"
)

// audioRepository implements AudioRecording metadata operations over MySQL
type audioRepository struct {
	db *sql.DB
}

// NewAudioRepository creates a new audio recording repository
func NewAudioRepository(db *sql.DB) *audioRepository {
	return &audioRepository{db: db}
}

// Create inserts a new audio recording record, generating a uuid id when
// none is set
func (r *audioRepository) Create(ctx context.Context, rec *models.AudioRecording) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	query := `
		INSERT INTO audio_recordings (id, name, filename, size, duration, date_recorded, format)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Name,
		rec.Filename,
		rec.Size,
		rec.Duration,
		rec.DateRecorded,
		rec.Format,
	)
	if err != nil {
		return fmt.Errorf("failed to create audio recording: %w", err)
	}

	return nil
}

// GetByID retrieves an audio recording record by id
func (r *audioRepository) GetByID(ctx context.Context, id string) (*models.AudioRecording, error) {
	query := `
		SELECT name, filename, size, duration, date_recorded, format
		FROM audio_recordings
		WHERE id = ?
		LIMIT 1
	`

	rec := &models.AudioRecording{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rec.Name,
		&rec.Filename,
		&rec.Size,
		&rec.Duration,
		&rec.DateRecorded,
		&rec.Format,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("audio recording %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get audio recording by id: %w", err)
	}

	rec.ID = id
	return rec, nil
}

// List retrieves all audio recording records, newest first
func (r *audioRepository) List(ctx context.Context) ([]models.AudioRecording, error) {
	query := `
		SELECT id, name, filename, size, duration, date_recorded, format
		FROM audio_recordings
		ORDER BY date_recorded DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list audio recordings: %w", err)
	}
	defer rows.Close()

	recs := []models.AudioRecording{}
	for rows.Next() {
		var rec models.AudioRecording
		if err := rows.Scan(
			&rec.ID,
			&rec.Name,
			&rec.Filename,
			&rec.Size,
			&rec.Duration,
			&rec.DateRecorded,
			&rec.Format,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audio recording: %w", err)
		}
		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate audio recordings: %w", err)
	}

	return recs, nil
}

// UpdateName renames an audio recording; no other column is touched
func (r *audioRepository) UpdateName(ctx context.Context, id, name string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE audio_recordings SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("failed to rename audio recording: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("audio recording %s: %w", id, ErrNotFound)
	}

	return nil
}

// DeleteByID deletes an audio recording record by id
func (r *audioRepository) DeleteByID(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM audio_recordings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete audio recording: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("audio recording %s: %w", id, ErrNotFound)
	}

	return nil
}
