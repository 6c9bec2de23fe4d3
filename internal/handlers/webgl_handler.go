package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mediahub/backend/internal/models"
	"github.com/mediahub/backend/internal/repositories"
	"github.com/mediahub/backend/internal/services"
	"github.com/mediahub/backend/internal/storage"
	"go.uber.org/zap"
)

// WebglService defines the interface for WebGL asset business logic
type WebglService interface {
	Upload(ctx context.Context, upload services.Upload, name, description string) (*models.WebglAsset, error)
	GetByID(ctx context.Context, id string) (*models.WebglAsset, error)
	List(ctx context.Context) ([]models.WebglAsset, error)
	Delete(ctx context.Context, id string) error
	OpenBlob(ctx context.Context, asset *models.WebglAsset) (io.ReadCloser, error)
}

// WebglHandler handles WebGL-asset-related HTTP requests
type WebglHandler struct {
	BaseHandler
	webglService WebglService
}

// NewWebglHandler creates a new WebGL asset handler
func NewWebglHandler(webglService WebglService, logger *zap.Logger) *WebglHandler {
	return &WebglHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		webglService: webglService,
	}
}

// RegisterRoutes registers all WebGL handler routes
func (h *WebglHandler) RegisterRoutes(r chi.Router) {
	r.Route("/webgl", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Upload)
		r.Get("/{id}", h.Get)
		r.Delete("/{id}", h.Delete)
		r.Get("/{id}/render", h.Render)
	})
}

// List handles GET /api/webgl
// @Summary List WebGL assets
// @Tags webgl
// @Produce json
// @Success 200 {array} models.WebglAsset
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/webgl [get]
func (h *WebglHandler) List(w http.ResponseWriter, r *http.Request) {
	assets, err := h.webglService.List(r.Context())
	if err != nil {
		h.Logger.Error("failed to list webgl assets", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list assets")
		return
	}

	h.RespondJSON(w, http.StatusOK, assets)
}

// Get handles GET /api/webgl/{id}
// @Summary Get WebGL asset metadata
// @Tags webgl
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} models.WebglAsset
// @Failure 404 {object} map[string]string "Asset not found"
// @Router /api/webgl/{id} [get]
func (h *WebglHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	asset, err := h.webglService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "asset not found")
			return
		}
		h.Logger.Error("failed to get webgl asset", zap.Error(err), zap.String("id", id))
		h.RespondError(w, http.StatusInternalServerError, "failed to get asset")
		return
	}

	h.RespondJSON(w, http.StatusOK, asset)
}

// Upload handles POST /api/webgl
// @Summary Upload a WebGL asset
// @Description Upload a 3D asset or texture. Only .gltf, .glb, .png and .fbx files are accepted; anything else is rejected before a record or blob is created.
// @Tags webgl
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Asset file"
// @Param name formData string false "Asset name"
// @Param description formData string false "Asset description"
// @Success 201 {object} models.WebglAsset
// @Failure 400 {object} map[string]string "Invalid request or disallowed extension"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/webgl [post]
func (h *WebglHandler) Upload(w http.ResponseWriter, r *http.Request) {
	upload, cleanup, err := spoolUpload(r)
	if err != nil {
		h.Logger.Error("failed to read upload", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer cleanup()

	asset, err := h.webglService.Upload(r.Context(), upload, r.FormValue("name"), r.FormValue("description"))
	if err != nil {
		if errors.Is(err, services.ErrDisallowedExtension) {
			h.RespondError(w, http.StatusBadRequest, "file type not allowed; accepted: .gltf, .glb, .png, .fbx")
			return
		}
		h.Logger.Error("failed to upload webgl asset", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to upload asset")
		return
	}

	h.RespondJSON(w, http.StatusCreated, asset)
}

// Delete handles DELETE /api/webgl/{id}
// @Summary Delete a WebGL asset
// @Tags webgl
// @Param id path string true "Asset ID"
// @Success 204 "Asset and blob deleted"
// @Failure 404 {object} map[string]string "Asset not found"
// @Router /api/webgl/{id} [delete]
func (h *WebglHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.webglService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "asset not found")
			return
		}
		h.Logger.Error("failed to delete webgl asset", zap.Error(err), zap.String("id", id))
		h.RespondError(w, http.StatusInternalServerError, "failed to delete asset")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Render handles GET /api/webgl/{id}/render
// @Summary Fetch WebGL asset content
// @Description Serve the raw asset bytes for in-browser rendering
// @Tags webgl
// @Produce octet-stream
// @Param id path string true "Asset ID"
// @Success 200 "Asset content"
// @Failure 404 {object} map[string]string "Asset not found"
// @Router /api/webgl/{id}/render [get]
func (h *WebglHandler) Render(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	asset, err := h.webglService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "asset not found")
			return
		}
		h.Logger.Error("failed to get webgl asset", zap.Error(err), zap.String("id", id))
		h.RespondError(w, http.StatusInternalServerError, "failed to get asset")
		return
	}

	blob, err := h.webglService.OpenBlob(r.Context(), asset)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "asset file not found")
			return
		}
		h.Logger.Error("failed to open webgl blob", zap.Error(err), zap.String("id", id))
		h.RespondError(w, http.StatusInternalServerError, "failed to open asset file")
		return
	}
	defer blob.Close()

	w.Header().Set("Content-Type", contentTypeForWebgl(asset.Format))
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("Content-Length", strconv.FormatInt(asset.Size, 10))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, blob); err != nil {
		h.Logger.Error("webgl asset transfer aborted", zap.Error(err), zap.String("id", id))
	}
}

// contentTypeForWebgl maps an asset format to its MIME type
func contentTypeForWebgl(format models.WebglFormat) string {
	switch format {
	case models.WebglFormatGLTF:
		return "model/gltf+json"
	case models.WebglFormatGLB:
		return "model/gltf-binary"
	case models.WebglFormatPNG:
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
