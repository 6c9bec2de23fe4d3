// Package memory provides in-process metadata stores backed by mutex-guarded
// maps. It satisfies the same contracts as the MySQL repositories and is the
// default backend when no database is configured.
//
// Ids are drawn from a per-store integer sequence; the SQL backend uses uuids
// instead. Neither strategy leaks into callers.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/mediahub/backend/internal/models"
	"github.com/mediahub/backend/internal/repositories"
)

// MediaFileStore is an in-process MediaFile metadata store
type MediaFileStore struct {
	mu    sync.RWMutex
	seq   int64
	files map[string]models.MediaFile
}

// NewMediaFileStore creates an empty media file store
func NewMediaFileStore() *MediaFileStore {
	return &MediaFileStore{files: make(map[string]models.MediaFile)}
}

// Create stores a new media file record, assigning a sequence id when the
// record carries none
func (s *MediaFileStore) Create(ctx context.Context, file *models.MediaFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if file.ID == "" {
		s.seq++
		file.ID = strconv.FormatInt(s.seq, 10)
	}
	if _, exists := s.files[file.ID]; exists {
		return fmt.Errorf("media file %s already exists", file.ID)
	}

	s.files[file.ID] = *file
	return nil
}

// GetByID retrieves a media file record by id
func (s *MediaFileStore) GetByID(ctx context.Context, id string) (*models.MediaFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, ok := s.files[id]
	if !ok {
		return nil, fmt.Errorf("media file %s: %w", id, repositories.ErrNotFound)
	}
	return &file, nil
}

// List retrieves all media file records of the given type, newest first
func (s *MediaFileStore) List(ctx context.Context, fileType models.FileType) ([]models.MediaFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	files := []models.MediaFile{}
	for _, file := range s.files {
		if file.FileType == fileType {
			files = append(files, file)
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].UploadDate.After(files[j].UploadDate)
	})
	return files, nil
}

// DeleteByID deletes a media file record by id
func (s *MediaFileStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[id]; !ok {
		return fmt.Errorf("media file %s: %w", id, repositories.ErrNotFound)
	}
	delete(s.files, id)
	return nil
}

// AudioStore is an in-process AudioRecording metadata store
type AudioStore struct {
	mu   sync.RWMutex
	seq  int64
	recs map[string]models.AudioRecording
}

// NewAudioStore creates an empty audio recording store
func NewAudioStore() *AudioStore {
	return &AudioStore{recs: make(map[string]models.AudioRecording)}
}

// Create stores a new audio recording record
func (s *AudioStore) Create(ctx context.Context, rec *models.AudioRecording) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		s.seq++
		rec.ID = strconv.FormatInt(s.seq, 10)
	}
	if _, exists := s.recs[rec.ID]; exists {
		return fmt.Errorf("audio recording %s already exists", rec.ID)
	}

	s.recs[rec.ID] = *rec
	return nil
}

// GetByID retrieves an audio recording record by id
func (s *AudioStore) GetByID(ctx context.Context, id string) (*models.AudioRecording, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.recs[id]
	if !ok {
		return nil, fmt.Errorf("audio recording %s: %w", id, repositories.ErrNotFound)
	}
	return &rec, nil
}

// List retrieves all audio recording records, newest first
func (s *AudioStore) List(ctx context.Context) ([]models.AudioRecording, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := []models.AudioRecording{}
	for _, rec := range s.recs {
		recs = append(recs, rec)
	}

	sort.Slice(recs, func(i, j int) bool {
		return recs[i].DateRecorded.After(recs[j].DateRecorded)
	})
	return recs, nil
}

// UpdateName renames an audio recording; no other field is touched
func (s *AudioStore) UpdateName(ctx context.Context, id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.recs[id]
	if !ok {
		return fmt.Errorf("audio recording %s: %w", id, repositories.ErrNotFound)
	}
	rec.Name = name
	s.recs[id] = rec
	return nil
}

// DeleteByID deletes an audio recording record by id
func (s *AudioStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recs[id]; !ok {
		return fmt.Errorf("audio recording %s: %w", id, repositories.ErrNotFound)
	}
	delete(s.recs, id)
	return nil
}

// WebglStore is an in-process WebglAsset metadata store
type WebglStore struct {
	mu     sync.RWMutex
	seq    int64
	assets map[string]models.WebglAsset
}

// NewWebglStore creates an empty WebGL asset store
func NewWebglStore() *WebglStore {
	return &WebglStore{assets: make(map[string]models.WebglAsset)}
}

// Create stores a new WebGL asset record
func (s *WebglStore) Create(ctx context.Context, asset *models.WebglAsset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if asset.ID == "" {
		s.seq++
		asset.ID = strconv.FormatInt(s.seq, 10)
	}
	if _, exists := s.assets[asset.ID]; exists {
		return fmt.Errorf("webgl asset %s already exists", asset.ID)
	}

	s.assets[asset.ID] = *asset
	return nil
}

// GetByID retrieves a WebGL asset record by id
func (s *WebglStore) GetByID(ctx context.Context, id string) (*models.WebglAsset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	asset, ok := s.assets[id]
	if !ok {
		return nil, fmt.Errorf("webgl asset %s: %w", id, repositories.ErrNotFound)
	}
	return &asset, nil
}

// List retrieves all WebGL asset records, newest first
func (s *WebglStore) List(ctx context.Context) ([]models.WebglAsset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assets := []models.WebglAsset{}
	for _, asset := range s.assets {
		assets = append(assets, asset)
	}

	sort.Slice(assets, func(i, j int) bool {
		return assets[i].DateUploaded.After(assets[j].DateUploaded)
	})
	return assets, nil
}

// DeleteByID deletes a WebGL asset record by id
func (s *WebglStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assets[id]; !ok {
		return fmt.Errorf("webgl asset %s: %w", id, repositories.ErrNotFound)
	}
	delete(s.assets, id)
	return nil
}
