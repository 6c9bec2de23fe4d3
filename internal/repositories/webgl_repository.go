package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mediahub/backend/internal/models"
)

// webglRepository implements WebglAsset metadata operations over MySQL
type webglRepository struct {
	db *sql.DB
}

// NewWebglRepository creates a new WebGL asset repository
func NewWebglRepository(db *sql.DB) *webglRepository {
	return &webglRepository{db: db}
}

// Create inserts a new WebGL asset record, generating a uuid id when none
// is set
func (r *webglRepository) Create(ctx context.Context, asset *models.WebglAsset) error {
	if asset.ID == "" {
		asset.ID = uuid.New().String()
	}

	query := `
		INSERT INTO webgl_assets (id, name, filename, size, format, description, date_uploaded)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		asset.ID,
		asset.Name,
		asset.Filename,
		asset.Size,
		asset.Format,
		asset.Description,
		asset.DateUploaded,
	)
	if err != nil {
		return fmt.Errorf("failed to create webgl asset: %w", err)
	}

	return nil
}

// GetByID retrieves a WebGL asset record by id
func (r *webglRepository) GetByID(ctx context.Context, id string) (*models.WebglAsset, error) {
	query := `
		SELECT name, filename, size, format, description, date_uploaded
		FROM webgl_assets
		WHERE id = ?
		LIMIT 1
	`

	asset := &models.WebglAsset{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&asset.Name,
		&asset.Filename,
		&asset.Size,
		&asset.Format,
		&asset.Description,
		&asset.DateUploaded,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("webgl asset %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get webgl asset by id: %w", err)
	}

	asset.ID = id
	return asset, nil
}

// List retrieves all WebGL asset records, newest first
func (r *webglRepository) List(ctx context.Context) ([]models.WebglAsset, error) {
	query := `
		SELECT id, name, filename, size, format, description, date_uploaded
		FROM webgl_assets
		ORDER BY date_uploaded DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list webgl assets: %w", err)
	}
	defer rows.Close()

	assets := []models.WebglAsset{}
	for rows.Next() {
		var asset models.WebglAsset
		if err := rows.Scan(
			&asset.ID,
			&asset.Name,
			&asset.Filename,
			&asset.Size,
			&asset.Format,
			&asset.Description,
			&asset.DateUploaded,
		); err != nil {
			return nil, fmt.Errorf("failed to scan webgl asset: %w", err)
		}
		assets = append(assets, asset)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate webgl assets: %w", err)
	}

	return assets, nil
}

// DeleteByID deletes a WebGL asset record by id
func (r *webglRepository) DeleteByID(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM webgl_assets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete webgl asset: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("webgl asset %s: %w", id, ErrNotFound)
	}

	return nil
}
