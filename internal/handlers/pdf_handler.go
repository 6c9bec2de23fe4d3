package handlers

import (
	"bytes"
	"errors"
	"fmt"
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

// PDFHandler handles PDF-related HTTP requests
type PDFHandler struct {
	BaseHandler
	mediaService MediaFileService
}

// NewPDFHandler creates a new PDF handler
func NewPDFHandler(mediaService MediaFileService, logger *zap.Logger) *PDFHandler {
	return &PDFHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		mediaService: mediaService,
	}
}

// RegisterRoutes registers all PDF handler routes
func (h *PDFHandler) RegisterRoutes(r chi.Router) {
	r.Route("/pdfs", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Upload)
		r.Get("/{id}", h.Get)
		r.Delete("/{id}", h.Delete)
		r.Get("/{id}/view", h.View)
		r.Get("/{id}/download", h.Download)
		r.Get("/{id}/pages/{pageNum}/download", h.DownloadPage)
	})
}

// List handles GET /api/pdfs
// @Summary List PDFs
// @Tags pdfs
// @Produce json
// @Success 200 {array} models.MediaFile
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/pdfs [get]
func (h *PDFHandler) List(w http.ResponseWriter, r *http.Request) {
	pdfs, err := h.mediaService.List(r.Context(), models.FileTypePDF)
	if err != nil {
		h.Logger.Error("failed to list pdfs", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list pdfs")
		return
	}

	h.RespondJSON(w, http.StatusOK, pdfs)
}

// Get handles GET /api/pdfs/{id}
// @Summary Get PDF metadata
// @Tags pdfs
// @Produce json
// @Param id path string true "PDF ID"
// @Success 200 {object} models.MediaFile
// @Failure 404 {object} map[string]string "PDF not found"
// @Router /api/pdfs/{id} [get]
func (h *PDFHandler) Get(w http.ResponseWriter, r *http.Request) {
	pdf, ok := h.fetch(w, r)
	if !ok {
		return
	}
	h.RespondJSON(w, http.StatusOK, pdf)
}

// Upload handles POST /api/pdfs
// @Summary Upload a PDF
// @Description Upload a PDF document; the page count is extracted on ingest
// @Tags pdfs
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF file"
// @Success 201 {object} models.MediaFile
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/pdfs [post]
func (h *PDFHandler) Upload(w http.ResponseWriter, r *http.Request) {
	upload, cleanup, err := spoolUpload(r)
	if err != nil {
		h.Logger.Error("failed to read upload", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer cleanup()

	pdf, err := h.mediaService.UploadPDF(r.Context(), upload)
	if err != nil {
		h.Logger.Error("failed to upload pdf", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to upload pdf")
		return
	}

	h.RespondJSON(w, http.StatusCreated, pdf)
}

// Delete handles DELETE /api/pdfs/{id}
// @Summary Delete a PDF
// @Tags pdfs
// @Param id path string true "PDF ID"
// @Success 204 "PDF and blob deleted"
// @Failure 404 {object} map[string]string "PDF not found"
// @Router /api/pdfs/{id} [delete]
func (h *PDFHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.mediaService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "pdf not found")
			return
		}
		h.Logger.Error("failed to delete pdf", zap.Error(err), zap.String("id", id))
		h.RespondError(w, http.StatusInternalServerError, "failed to delete pdf")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// View handles GET /api/pdfs/{id}/view
// @Summary View a PDF inline
// @Tags pdfs
// @Produce application/pdf
// @Param id path string true "PDF ID"
// @Success 200 "PDF content"
// @Failure 404 {object} map[string]string "PDF not found"
// @Router /api/pdfs/{id}/view [get]
func (h *PDFHandler) View(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "inline")
}

// Download handles GET /api/pdfs/{id}/download
// @Summary Download a PDF
// @Tags pdfs
// @Produce application/pdf
// @Param id path string true "PDF ID"
// @Success 200 "PDF content as attachment"
// @Failure 404 {object} map[string]string "PDF not found"
// @Router /api/pdfs/{id}/download [get]
func (h *PDFHandler) Download(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "attachment")
}

// DownloadPage handles GET /api/pdfs/{id}/pages/{pageNum}/download
// @Summary Download a single PDF page
// @Description Extract one page of the stored document as a standalone PDF
// @Tags pdfs
// @Produce application/pdf
// @Param id path string true "PDF ID"
// @Param pageNum path int true "Page number (1-based)"
// @Success 200 "Single-page PDF as attachment"
// @Failure 400 {object} map[string]string "Invalid page number"
// @Failure 404 {object} map[string]string "PDF or page not found"
// @Router /api/pdfs/{id}/pages/{pageNum}/download [get]
func (h *PDFHandler) DownloadPage(w http.ResponseWriter, r *http.Request) {
	pdf, ok := h.fetch(w, r)
	if !ok {
		return
	}

	pageNum, err := strconv.Atoi(chi.URLParam(r, "pageNum"))
	if err != nil || pageNum < 1 {
		h.RespondError(w, http.StatusBadRequest, "invalid page number")
		return
	}

	// extract into a buffer first so a failure can still produce a clean
	// JSON error response
	var page bytes.Buffer
	if err := h.mediaService.ExtractPage(r.Context(), pdf, pageNum, &page); err != nil {
		switch {
		case errors.Is(err, services.ErrPageOutOfRange):
			h.RespondError(w, http.StatusNotFound, "page not found")
		case errors.Is(err, storage.ErrNotFound):
			h.RespondError(w, http.StatusNotFound, "pdf file not found")
		default:
			h.Logger.Error("failed to extract pdf page", zap.Error(err), zap.String("id", pdf.ID), zap.Int("page", pageNum))
			h.RespondError(w, http.StatusInternalServerError, "failed to extract page")
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("page-%d.pdf", pageNum)))
	w.Header().Set("Content-Length", strconv.Itoa(page.Len()))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, &page); err != nil {
		h.Logger.Error("failed to write pdf page", zap.Error(err))
	}
}

// fetch loads the record for the id route param, writing the error response
// itself when the lookup fails
func (h *PDFHandler) fetch(w http.ResponseWriter, r *http.Request) (*models.MediaFile, bool) {
	id := chi.URLParam(r, "id")

	pdf, err := h.mediaService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "pdf not found")
			return nil, false
		}
		h.Logger.Error("failed to get pdf", zap.Error(err), zap.String("id", id))
		h.RespondError(w, http.StatusInternalServerError, "failed to get pdf")
		return nil, false
	}
	return pdf, true
}

// serve streams the full document with the given content disposition
func (h *PDFHandler) serve(w http.ResponseWriter, r *http.Request, disposition string) {
	pdf, ok := h.fetch(w, r)
	if !ok {
		return
	}

	blob, err := h.mediaService.OpenBlob(r.Context(), pdf)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "pdf file not found")
			return
		}
		h.Logger.Error("failed to open pdf blob", zap.Error(err), zap.String("id", pdf.ID))
		h.RespondError(w, http.StatusInternalServerError, "failed to open pdf file")
		return
	}
	defer blob.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, pdf.OriginalName))
	w.Header().Set("Content-Length", strconv.FormatInt(pdf.Size, 10))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, blob); err != nil {
		h.Logger.Error("pdf transfer aborted", zap.Error(err), zap.String("id", pdf.ID))
	}
}
