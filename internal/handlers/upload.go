package handlers

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/mediahub/backend/internal/services"
)

// maxMultipartMemory bounds the in-memory portion of multipart parsing;
// larger uploads spill to disk inside net/http before we spool them again
const maxMultipartMemory = 32 << 20

// spoolUpload extracts the "file" part of a multipart request and spools it
// to a temp file so services can probe it by path. The returned cleanup
// removes the temp file and must always be called.
func spoolUpload(r *http.Request) (services.Upload, func(), error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return services.Upload{}, nil, fmt.Errorf("parse multipart form: %w", err)
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		return services.Upload{}, nil, fmt.Errorf("file is required: %w", err)
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "upload-*")
	if err != nil {
		return services.Upload{}, nil, fmt.Errorf("create temp file: %w", err)
	}
	cleanup := func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}

	size, err := io.Copy(tmp, file)
	if err != nil {
		cleanup()
		return services.Upload{}, nil, fmt.Errorf("spool upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return services.Upload{}, nil, fmt.Errorf("close temp file: %w", err)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" || strings.HasPrefix(contentType, "multipart/") {
		contentType = mime.TypeByExtension(filepath.Ext(fileHeader.Filename))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return services.Upload{
		TempPath:     tmp.Name(),
		OriginalName: fileHeader.Filename,
		ContentType:  contentType,
		Size:         size,
	}, func() { os.Remove(tmp.Name()) }, nil
}
