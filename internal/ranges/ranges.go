// Package ranges implements HTTP range-request byte serving for stored blobs.
// It is shared by the video and audio streaming endpoints, which differ only
// in the content type and blob locator they pass in.
package ranges

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

var (
	// ErrNoRange indicates the request carries no usable Range header.
	// Malformed headers are treated the same way: the full body is served.
	ErrNoRange = errors.New("no range requested")

	// ErrUnsatisfiable indicates the requested range starts at or beyond
	// the end of the blob.
	ErrUnsatisfiable = errors.New("unsatisfiable range")

	// ErrOpenBlob wraps failures to open the blob stream. When Serve
	// returns it, no response headers have been written yet.
	ErrOpenBlob = errors.New("open blob stream")
)

// Blob describes the stored bytes to serve
type Blob struct {
	Size        int64
	ContentType string
}

// OpenFunc opens a reader over the inclusive byte window [start, end].
// Each call must return an independent reader.
type OpenFunc func(start, end int64) (io.ReadCloser, error)

// ParseRange parses a header of the form "bytes=<start>-[<end>]" against a
// blob of the given size. It returns the inclusive byte window to serve.
//
// An empty or malformed header yields ErrNoRange. A start at or beyond the
// end of the blob yields ErrUnsatisfiable. An end beyond the last byte is
// clamped to size-1.
func ParseRange(header string, size int64) (start, end int64, err error) {
	if header == "" {
		return 0, 0, ErrNoRange
	}

	spec, ok := strings.CutPrefix(header, "bytes=")
	if !ok {
		return 0, 0, ErrNoRange
	}

	startStr, endStr, ok := strings.Cut(spec, "-")
	if !ok || startStr == "" {
		return 0, 0, ErrNoRange
	}

	start, err = strconv.ParseInt(strings.TrimSpace(startStr), 10, 64)
	if err != nil || start < 0 {
		return 0, 0, ErrNoRange
	}

	if start >= size {
		return 0, 0, ErrUnsatisfiable
	}

	end = size - 1
	if endStr = strings.TrimSpace(endStr); endStr != "" {
		end, err = strconv.ParseInt(endStr, 10, 64)
		if err != nil {
			return 0, 0, ErrNoRange
		}
		if end >= size {
			end = size - 1
		}
	}

	if end < start {
		return 0, 0, ErrNoRange
	}

	return start, end, nil
}

// Serve writes the blob to the response, honoring an optional Range header.
//
// Without a range the full blob is sent with status 200. With a satisfiable
// range the window is sent with status 206 and a Content-Range header. An
// unsatisfiable range yields 416 with "Content-Range: bytes */<size>".
//
// The reader obtained from open is closed on every exit path. Errors during
// the body copy abort the response; by then headers are already written, so
// the error is returned for logging only. Open failures are returned wrapped
// in ErrOpenBlob before anything is written.
func Serve(w http.ResponseWriter, r *http.Request, blob Blob, open OpenFunc) error {
	start, end, err := ParseRange(r.Header.Get("Range"), blob.Size)

	switch {
	case errors.Is(err, ErrUnsatisfiable):
		w.Header().Set("Content-Range", fmt.Sprintf("bytes */%d", blob.Size))
		w.WriteHeader(http.StatusRequestedRangeNotSatisfiable)
		return nil

	case errors.Is(err, ErrNoRange):
		reader, err := open(0, blob.Size-1)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrOpenBlob, err)
		}
		defer reader.Close()

		w.Header().Set("Content-Type", blob.ContentType)
		w.Header().Set("Content-Length", strconv.FormatInt(blob.Size, 10))
		w.Header().Set("Accept-Ranges", "bytes")
		w.WriteHeader(http.StatusOK)

		if _, err := io.Copy(w, reader); err != nil {
			return fmt.Errorf("copy blob: %w", err)
		}
		return nil
	}

	reader, err := open(start, end)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpenBlob, err)
	}
	defer reader.Close()

	chunkSize := end - start + 1

	w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end, blob.Size))
	w.Header().Set("Accept-Ranges", "bytes")
	w.Header().Set("Content-Type", blob.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(chunkSize, 10))
	w.WriteHeader(http.StatusPartialContent)

	if _, err := io.CopyN(w, reader, chunkSize); err != nil {
		return fmt.Errorf("copy blob range: %w", err)
	}
	return nil
}
