package services

import (
	"bytes"
	"context"
	"io"

	"github.com/mediahub/backend/internal/models"
	"github.com/mediahub/backend/internal/probe"
)

// mockBlobStorage is a mock implementation of BlobStorage
type mockBlobStorage struct {
	saveErr      error
	openErr      error
	deleteErr    error
	content      []byte
	saved        map[string][]byte
	deleteCalled bool
	deletedKey   string
}

func newMockBlobStorage() *mockBlobStorage {
	return &mockBlobStorage{saved: make(map[string][]byte)}
}

func (m *mockBlobStorage) Save(ctx context.Context, kind, filename string, content io.Reader) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	m.saved[kind+"/"+filename] = data
	return nil
}

func (m *mockBlobStorage) Open(ctx context.Context, kind, filename string) (io.ReadCloser, error) {
	if m.openErr != nil {
		return nil, m.openErr
	}
	if data, ok := m.saved[kind+"/"+filename]; ok {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	return io.NopCloser(bytes.NewReader(m.content)), nil
}

func (m *mockBlobStorage) OpenRange(ctx context.Context, kind, filename string, start, end int64) (io.ReadCloser, error) {
	if m.openErr != nil {
		return nil, m.openErr
	}
	return io.NopCloser(bytes.NewReader(m.content[start : end+1])), nil
}

func (m *mockBlobStorage) Delete(ctx context.Context, kind, filename string) error {
	m.deleteCalled = true
	m.deletedKey = kind + "/" + filename
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.saved, kind+"/"+filename)
	return nil
}

// mockMediaRepo is a mock implementation of MediaFileRepository
type mockMediaRepo struct {
	file      *models.MediaFile
	files     []models.MediaFile
	createErr error
	getErr    error
	listErr   error
	deleteErr error
}

func (m *mockMediaRepo) Create(ctx context.Context, file *models.MediaFile) error {
	if m.createErr != nil {
		return m.createErr
	}
	if file.ID == "" {
		file.ID = "generated-id"
	}
	return nil
}

func (m *mockMediaRepo) GetByID(ctx context.Context, id string) (*models.MediaFile, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.file, nil
}

func (m *mockMediaRepo) List(ctx context.Context, fileType models.FileType) ([]models.MediaFile, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.files, nil
}

func (m *mockMediaRepo) DeleteByID(ctx context.Context, id string) error {
	return m.deleteErr
}

// mockAudioRepo is a mock implementation of AudioRepository
type mockAudioRepo struct {
	rec        *models.AudioRecording
	recs       []models.AudioRecording
	createErr  error
	getErr     error
	listErr    error
	updateErr  error
	deleteErr  error
	renamedTo  string
	renameID   string
	updateSeen bool
}

func (m *mockAudioRepo) Create(ctx context.Context, rec *models.AudioRecording) error {
	if m.createErr != nil {
		return m.createErr
	}
	if rec.ID == "" {
		rec.ID = "generated-id"
	}
	return nil
}

func (m *mockAudioRepo) GetByID(ctx context.Context, id string) (*models.AudioRecording, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.rec, nil
}

func (m *mockAudioRepo) List(ctx context.Context) ([]models.AudioRecording, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.recs, nil
}

func (m *mockAudioRepo) UpdateName(ctx context.Context, id, name string) error {
	m.updateSeen = true
	m.renameID = id
	m.renamedTo = name
	return m.updateErr
}

func (m *mockAudioRepo) DeleteByID(ctx context.Context, id string) error {
	return m.deleteErr
}

// mockWebglRepo is a mock implementation of WebglRepository
type mockWebglRepo struct {
	asset     *models.WebglAsset
	assets    []models.WebglAsset
	createErr error
	getErr    error
	listErr   error
	deleteErr error
}

func (m *mockWebglRepo) Create(ctx context.Context, asset *models.WebglAsset) error {
	if m.createErr != nil {
		return m.createErr
	}
	if asset.ID == "" {
		asset.ID = "generated-id"
	}
	return nil
}

func (m *mockWebglRepo) GetByID(ctx context.Context, id string) (*models.WebglAsset, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.asset, nil
}

func (m *mockWebglRepo) List(ctx context.Context) ([]models.WebglAsset, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.assets, nil
}

func (m *mockWebglRepo) DeleteByID(ctx context.Context, id string) error {
	return m.deleteErr
}

// mockProber is a mock implementation of MediaProber
type mockProber struct {
	result probe.Result
	err    error
}

func (m *mockProber) Probe(ctx context.Context, path string) (probe.Result, error) {
	if m.err != nil {
		return probe.Result{}, m.err
	}
	return m.result, nil
}

func (m *mockProber) ProbeDuration(ctx context.Context, path string) (float64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.result.Duration, nil
}

// mockPDFProcessor is a mock implementation of PDFProcessor
type mockPDFProcessor struct {
	pageCount    int
	pageCountErr error
	extractErr   error
	pageContent  []byte
}

func (m *mockPDFProcessor) PageCount(rs io.ReadSeeker) (int, error) {
	if m.pageCountErr != nil {
		return 0, m.pageCountErr
	}
	return m.pageCount, nil
}

func (m *mockPDFProcessor) ExtractPage(rs io.ReadSeeker, page int, w io.Writer) error {
	if m.extractErr != nil {
		return m.extractErr
	}
	_, err := w.Write(m.pageContent)
	return err
}
