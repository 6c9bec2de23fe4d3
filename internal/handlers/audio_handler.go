package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mediahub/backend/internal/models"
	"github.com/mediahub/backend/internal/ranges"
	"github.com/mediahub/backend/internal/repositories"
	"github.com/mediahub/backend/internal/services"
	"github.com/mediahub/backend/internal/storage"
	"go.uber.org/zap"
)

// AudioService defines the interface for audio recording business logic
type AudioService interface {
	Upload(ctx context.Context, upload services.Upload, name string) (*models.AudioRecording, error)
	GetByID(ctx context.Context, id string) (*models.AudioRecording, error)
	List(ctx context.Context) ([]models.AudioRecording, error)
	Rename(ctx context.Context, id, name string) (*models.AudioRecording, error)
	Delete(ctx context.Context, id string) error
	OpenBlobRange(ctx context.Context, rec *models.AudioRecording, start, end int64) (io.ReadCloser, error)
}

// AudioHandler handles audio-recording-related HTTP requests
type AudioHandler struct {
	BaseHandler
	audioService AudioService
}

// NewAudioHandler creates a new audio handler
func NewAudioHandler(audioService AudioService, logger *zap.Logger) *AudioHandler {
	return &AudioHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		audioService: audioService,
	}
}

// RegisterRoutes registers all audio handler routes
func (h *AudioHandler) RegisterRoutes(r chi.Router) {
	r.Route("/audio-recordings", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Upload)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}", h.Rename)
		r.Delete("/{id}", h.Delete)
		r.Get("/{id}/stream", h.Stream)
	})
}

// List handles GET /api/audio-recordings
// @Summary List audio recordings
// @Tags audio
// @Produce json
// @Success 200 {array} models.AudioRecording
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/audio-recordings [get]
func (h *AudioHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.audioService.List(r.Context())
	if err != nil {
		h.Logger.Error("failed to list audio recordings", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list audio recordings")
		return
	}

	h.RespondJSON(w, http.StatusOK, recs)
}

// Get handles GET /api/audio-recordings/{id}
// @Summary Get audio recording metadata
// @Tags audio
// @Produce json
// @Param id path string true "Recording ID"
// @Success 200 {object} models.AudioRecording
// @Failure 404 {object} map[string]string "Recording not found"
// @Router /api/audio-recordings/{id} [get]
func (h *AudioHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.audioService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "recording not found")
			return
		}
		h.Logger.Error("failed to get audio recording", zap.Error(err), zap.String("id", id))
		h.RespondError(w, http.StatusInternalServerError, "failed to get recording")
		return
	}

	h.RespondJSON(w, http.StatusOK, rec)
}

// Upload handles POST /api/audio-recordings
// @Summary Upload an audio recording
// @Description Upload an audio file; the duration is probed on ingest. An optional "name" form field sets the recording name.
// @Tags audio
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file"
// @Param name formData string false "Recording name"
// @Success 201 {object} models.AudioRecording
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/audio-recordings [post]
func (h *AudioHandler) Upload(w http.ResponseWriter, r *http.Request) {
	upload, cleanup, err := spoolUpload(r)
	if err != nil {
		h.Logger.Error("failed to read upload", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer cleanup()

	rec, err := h.audioService.Upload(r.Context(), upload, r.FormValue("name"))
	if err != nil {
		h.Logger.Error("failed to upload audio recording", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to upload recording")
		return
	}

	h.RespondJSON(w, http.StatusCreated, rec)
}

// renameRequest is the PATCH body for renaming a recording
type renameRequest struct {
	Name string `json:"name"`
}

// Rename handles PATCH /api/audio-recordings/{id}
// @Summary Rename an audio recording
// @Description Update the recording name; dateRecorded is unchanged
// @Tags audio
// @Accept json
// @Produce json
// @Param id path string true "Recording ID"
// @Param body body renameRequest true "New name"
// @Success 200 {object} models.AudioRecording
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Recording not found"
// @Router /api/audio-recordings/{id} [patch]
func (h *AudioHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req renameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.audioService.Rename(r.Context(), id, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyName):
			h.RespondError(w, http.StatusBadRequest, "name must not be empty")
		case errors.Is(err, repositories.ErrNotFound):
			h.RespondError(w, http.StatusNotFound, "recording not found")
		default:
			h.Logger.Error("failed to rename audio recording", zap.Error(err), zap.String("id", id))
			h.RespondError(w, http.StatusInternalServerError, "failed to rename recording")
		}
		return
	}

	h.RespondJSON(w, http.StatusOK, rec)
}

// Delete handles DELETE /api/audio-recordings/{id}
// @Summary Delete an audio recording
// @Tags audio
// @Param id path string true "Recording ID"
// @Success 204 "Recording and blob deleted"
// @Failure 404 {object} map[string]string "Recording not found"
// @Router /api/audio-recordings/{id} [delete]
func (h *AudioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.audioService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "recording not found")
			return
		}
		h.Logger.Error("failed to delete audio recording", zap.Error(err), zap.String("id", id))
		h.RespondError(w, http.StatusInternalServerError, "failed to delete recording")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Stream handles GET /api/audio-recordings/{id}/stream
// @Summary Stream an audio recording
// @Description Stream audio bytes with HTTP range support for seekable playback
// @Tags audio
// @Produce octet-stream
// @Param id path string true "Recording ID"
// @Param Range header string false "Byte range, e.g. bytes=0-1023"
// @Success 200 "Full audio content"
// @Success 206 "Partial audio content"
// @Failure 404 {object} map[string]string "Recording not found"
// @Failure 416 "Requested range not satisfiable"
// @Router /api/audio-recordings/{id}/stream [get]
func (h *AudioHandler) Stream(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.audioService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "recording not found")
			return
		}
		h.Logger.Error("failed to get audio recording", zap.Error(err), zap.String("id", id))
		h.RespondError(w, http.StatusInternalServerError, "failed to get recording")
		return
	}

	blob := ranges.Blob{Size: rec.Size, ContentType: contentTypeForAudio(rec.Format)}
	err = ranges.Serve(w, r, blob, func(start, end int64) (io.ReadCloser, error) {
		return h.audioService.OpenBlobRange(r.Context(), rec, start, end)
	})
	if err != nil {
		if errors.Is(err, ranges.ErrOpenBlob) {
			if errors.Is(err, storage.ErrNotFound) {
				h.RespondError(w, http.StatusNotFound, "audio file not found")
				return
			}
			h.Logger.Error("failed to open audio blob", zap.Error(err), zap.String("id", id))
			h.RespondError(w, http.StatusInternalServerError, "failed to open audio file")
			return
		}
		h.Logger.Error("audio stream aborted", zap.Error(err), zap.String("id", id))
	}
}

// contentTypeForAudio maps a recording format to its MIME type
func contentTypeForAudio(format string) string {
	switch format {
	case "mp3":
		return "audio/mpeg"
	case "wav":
		return "audio/wav"
	case "ogg":
		return "audio/ogg"
	case "webm":
		return "audio/webm"
	case "m4a":
		return "audio/mp4"
	default:
		return "application/octet-stream"
	}
}
