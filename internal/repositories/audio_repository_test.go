package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mediahub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupAudioTestRepository creates an audio repository with a mock database
func setupAudioTestRepository(t *testing.T) (*audioRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewAudioRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestAudioRepository_Create(t *testing.T) {
	recorded := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		rec           *models.AudioRecording
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name: "success",
			rec: &models.AudioRecording{
				ID:           "rec-1",
				Name:         "standup notes",
				Filename:     "abc.mp3",
				Size:         4096,
				Duration:     61.2,
				DateRecorded: recorded,
				Format:       "mp3",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO audio_recordings`).
					WithArgs("rec-1", "standup notes", "abc.mp3", int64(4096), 61.2, recorded, "mp3").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedError: false,
		},
		{
			name: "generates id when missing",
			rec: &models.AudioRecording{
				Name:         "memo",
				Filename:     "def.wav",
				Size:         128,
				Duration:     2.0,
				DateRecorded: recorded,
				Format:       "wav",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO audio_recordings`).
					WithArgs(sqlmock.AnyArg(), "memo", "def.wav", int64(128), 2.0, recorded, "wav").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedError: false,
		},
		{
			name: "database error on insert",
			rec: &models.AudioRecording{
				ID:           "rec-1",
				Name:         "standup notes",
				Filename:     "abc.mp3",
				Size:         4096,
				Duration:     61.2,
				DateRecorded: recorded,
				Format:       "mp3",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO audio_recordings`).
					WithArgs("rec-1", "standup notes", "abc.mp3", int64(4096), 61.2, recorded, "mp3").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupAudioTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.rec)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, tt.rec.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAudioRepository_GetByID(t *testing.T) {
	recorded := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	columns := []string{"name", "filename", "size", "duration", "date_recorded", "format"}

	tests := []struct {
		name          string
		id            string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedRec   *models.AudioRecording
	}{
		{
			name: "success",
			id:   "rec-1",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow("standup notes", "abc.mp3", int64(4096), 61.2, recorded, "mp3")
				mock.ExpectQuery(`SELECT name, filename, size, duration, date_recorded, format FROM audio_recordings WHERE id = \? LIMIT 1`).
					WithArgs("rec-1").
					WillReturnRows(rows)
			},
			expectedRec: &models.AudioRecording{
				ID:           "rec-1",
				Name:         "standup notes",
				Filename:     "abc.mp3",
				Size:         4096,
				Duration:     61.2,
				DateRecorded: recorded,
				Format:       "mp3",
			},
		},
		{
			name: "not found",
			id:   "nonexistent-id",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT name, filename, size, duration, date_recorded, format FROM audio_recordings WHERE id = \? LIMIT 1`).
					WithArgs("nonexistent-id").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupAudioTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			rec, err := repo.GetByID(context.Background(), tt.id)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, rec)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRec, rec)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAudioRepository_UpdateName(t *testing.T) {
	tests := []struct {
		name          string
		id            string
		newName       string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name:    "success",
			id:      "rec-1",
			newName: "renamed",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE audio_recordings SET name = \? WHERE id = \?`).
					WithArgs("renamed", "rec-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:    "recording not found",
			id:      "nonexistent-id",
			newName: "renamed",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE audio_recordings SET name = \? WHERE id = \?`).
					WithArgs("renamed", "nonexistent-id").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: ErrNotFound,
		},
		{
			name:    "database error",
			id:      "rec-1",
			newName: "renamed",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE audio_recordings SET name = \? WHERE id = \?`).
					WithArgs("renamed", "rec-1").
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupAudioTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.UpdateName(context.Background(), tt.id, tt.newName)

			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, ErrNotFound) {
					assert.ErrorIs(t, err, ErrNotFound)
				}
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAudioRepository_DeleteByID(t *testing.T) {
	tests := []struct {
		name          string
		id            string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "success",
			id:   "rec-1",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM audio_recordings WHERE id = \?`).
					WithArgs("rec-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "recording not found",
			id:   "nonexistent-id",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM audio_recordings WHERE id = \?`).
					WithArgs("nonexistent-id").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupAudioTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.DeleteByID(context.Background(), tt.id)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, ErrNotFound)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
