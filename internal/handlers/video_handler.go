package handlers

import (
	"context"
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

// MediaFileService defines the interface for video and PDF business logic
type MediaFileService interface {
	UploadVideo(ctx context.Context, upload services.Upload) (*models.MediaFile, error)
	UploadPDF(ctx context.Context, upload services.Upload) (*models.MediaFile, error)
	GetByID(ctx context.Context, id string) (*models.MediaFile, error)
	List(ctx context.Context, fileType models.FileType) ([]models.MediaFile, error)
	Delete(ctx context.Context, id string) error
	OpenBlob(ctx context.Context, file *models.MediaFile) (io.ReadCloser, error)
	OpenBlobRange(ctx context.Context, file *models.MediaFile, start, end int64) (io.ReadCloser, error)
	ExtractPage(ctx context.Context, file *models.MediaFile, page int, w io.Writer) error
}

// VideoHandler handles video-related HTTP requests
type VideoHandler struct {
	BaseHandler
	mediaService MediaFileService
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(mediaService MediaFileService, logger *zap.Logger) *VideoHandler {
	return &VideoHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		mediaService: mediaService,
	}
}

// RegisterRoutes registers all video handler routes
func (h *VideoHandler) RegisterRoutes(r chi.Router) {
	r.Route("/videos", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Upload)
		r.Get("/{id}", h.Get)
		r.Delete("/{id}", h.Delete)
		r.Get("/{id}/stream", h.Stream)
	})
}

// List handles GET /api/videos
// @Summary List videos
// @Description Get all uploaded video records, newest first
// @Tags videos
// @Produce json
// @Success 200 {array} models.MediaFile
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/videos [get]
func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	videos, err := h.mediaService.List(r.Context(), models.FileTypeVideo)
	if err != nil {
		h.Logger.Error("failed to list videos", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list videos")
		return
	}

	h.RespondJSON(w, http.StatusOK, videos)
}

// Get handles GET /api/videos/{id}
// @Summary Get video metadata
// @Tags videos
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} models.MediaFile
// @Failure 404 {object} map[string]string "Video not found"
// @Router /api/videos/{id} [get]
func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	video, err := h.mediaService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "video not found")
			return
		}
		h.Logger.Error("failed to get video", zap.Error(err), zap.String("id", id))
		h.RespondError(w, http.StatusInternalServerError, "failed to get video")
		return
	}

	h.RespondJSON(w, http.StatusOK, video)
}

// Upload handles POST /api/videos
// @Summary Upload a video
// @Description Upload a video file; duration and resolution are probed on ingest
// @Tags videos
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Video file"
// @Success 201 {object} models.MediaFile
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/videos [post]
func (h *VideoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	upload, cleanup, err := spoolUpload(r)
	if err != nil {
		h.Logger.Error("failed to read upload", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer cleanup()

	video, err := h.mediaService.UploadVideo(r.Context(), upload)
	if err != nil {
		h.Logger.Error("failed to upload video", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to upload video")
		return
	}

	h.RespondJSON(w, http.StatusCreated, video)
}

// Delete handles DELETE /api/videos/{id}
// @Summary Delete a video
// @Tags videos
// @Param id path string true "Video ID"
// @Success 204 "Video and blob deleted"
// @Failure 404 {object} map[string]string "Video not found"
// @Router /api/videos/{id} [delete]
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.mediaService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "video not found")
			return
		}
		h.Logger.Error("failed to delete video", zap.Error(err), zap.String("id", id))
		h.RespondError(w, http.StatusInternalServerError, "failed to delete video")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Stream handles GET /api/videos/{id}/stream
// @Summary Stream a video
// @Description Stream video bytes with HTTP range support for seekable playback
// @Tags videos
// @Produce octet-stream
// @Param id path string true "Video ID"
// @Param Range header string false "Byte range, e.g. bytes=0-1023"
// @Success 200 "Full video content"
// @Success 206 "Partial video content"
// @Failure 404 {object} map[string]string "Video not found"
// @Failure 416 "Requested range not satisfiable"
// @Router /api/videos/{id}/stream [get]
func (h *VideoHandler) Stream(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	video, err := h.mediaService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "video not found")
			return
		}
		h.Logger.Error("failed to get video", zap.Error(err), zap.String("id", id))
		h.RespondError(w, http.StatusInternalServerError, "failed to get video")
		return
	}

	blob := ranges.Blob{Size: video.Size, ContentType: video.MimeType}
	err = ranges.Serve(w, r, blob, func(start, end int64) (io.ReadCloser, error) {
		return h.mediaService.OpenBlobRange(r.Context(), video, start, end)
	})
	if err != nil {
		if errors.Is(err, ranges.ErrOpenBlob) {
			if errors.Is(err, storage.ErrNotFound) {
				h.RespondError(w, http.StatusNotFound, "video file not found")
				return
			}
			h.Logger.Error("failed to open video blob", zap.Error(err), zap.String("id", id))
			h.RespondError(w, http.StatusInternalServerError, "failed to open video file")
			return
		}
		// headers already sent, the copy was aborted
		h.Logger.Error("video stream aborted", zap.Error(err), zap.String("id", id))
	}
}
