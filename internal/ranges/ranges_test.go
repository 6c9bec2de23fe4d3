package ranges

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name          string
		header        string
		size          int64
		expectedStart int64
		expectedEnd   int64
		expectedErr   error
	}{
		{
			name:        "no header",
			header:      "",
			size:        100,
			expectedErr: ErrNoRange,
		},
		{
			name:          "explicit range",
			header:        "bytes=10-19",
			size:          100,
			expectedStart: 10,
			expectedEnd:   19,
		},
		{
			name:          "open ended range",
			header:        "bytes=10-",
			size:          100,
			expectedStart: 10,
			expectedEnd:   99,
		},
		{
			name:          "full range",
			header:        "bytes=0-99",
			size:          100,
			expectedStart: 0,
			expectedEnd:   99,
		},
		{
			name:          "end clamped to size",
			header:        "bytes=90-500",
			size:          100,
			expectedStart: 90,
			expectedEnd:   99,
		},
		{
			name:          "single byte",
			header:        "bytes=42-42",
			size:          100,
			expectedStart: 42,
			expectedEnd:   42,
		},
		{
			name:        "start at end of blob",
			header:      "bytes=100-",
			size:        100,
			expectedErr: ErrUnsatisfiable,
		},
		{
			name:        "start beyond end of blob",
			header:      "bytes=500-600",
			size:        100,
			expectedErr: ErrUnsatisfiable,
		},
		{
			name:        "any range on empty blob",
			header:      "bytes=0-10",
			size:        0,
			expectedErr: ErrUnsatisfiable,
		},
		{
			name:        "missing unit prefix",
			header:      "10-19",
			size:        100,
			expectedErr: ErrNoRange,
		},
		{
			name:        "wrong unit",
			header:      "items=10-19",
			size:        100,
			expectedErr: ErrNoRange,
		},
		{
			name:        "suffix range unsupported",
			header:      "bytes=-500",
			size:        100,
			expectedErr: ErrNoRange,
		},
		{
			name:        "non numeric start",
			header:      "bytes=abc-10",
			size:        100,
			expectedErr: ErrNoRange,
		},
		{
			name:        "non numeric end",
			header:      "bytes=10-abc",
			size:        100,
			expectedErr: ErrNoRange,
		},
		{
			name:        "end before start",
			header:      "bytes=20-10",
			size:        100,
			expectedErr: ErrNoRange,
		},
		{
			name:        "negative start",
			header:      "bytes=--5-10",
			size:        100,
			expectedErr: ErrNoRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ParseRange(tt.header, tt.size)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)
		})
	}
}

// stringOpener serves windows of the given content and records open/close calls
type stringOpener struct {
	content    string
	openCalls  int
	closeCalls int
	mu         sync.Mutex
}

type trackedReader struct {
	io.Reader
	opener *stringOpener
}

func (r *trackedReader) Close() error {
	r.opener.mu.Lock()
	defer r.opener.mu.Unlock()
	r.opener.closeCalls++
	return nil
}

func (o *stringOpener) open(start, end int64) (io.ReadCloser, error) {
	o.mu.Lock()
	o.openCalls++
	o.mu.Unlock()
	if start < 0 || end >= int64(len(o.content)) {
		return &trackedReader{Reader: strings.NewReader(""), opener: o}, nil
	}
	return &trackedReader{Reader: strings.NewReader(o.content[start : end+1]), opener: o}, nil
}

func TestServe(t *testing.T) {
	const content = "abcdefghijklmnopqrstuvwxyz0123456789"

	tests := []struct {
		name            string
		rangeHeader     string
		expectedStatus  int
		expectedBody    string
		expectedLength  string
		expectedRange   string
		expectedOpens   int
	}{
		{
			name:           "no range header serves full body",
			rangeHeader:    "",
			expectedStatus: http.StatusOK,
			expectedBody:   content,
			expectedLength: "36",
			expectedOpens:  1,
		},
		{
			name:           "explicit range",
			rangeHeader:    "bytes=0-9",
			expectedStatus: http.StatusPartialContent,
			expectedBody:   "abcdefghij",
			expectedLength: "10",
			expectedRange:  "bytes 0-9/36",
			expectedOpens:  1,
		},
		{
			name:           "open ended range",
			rangeHeader:    "bytes=30-",
			expectedStatus: http.StatusPartialContent,
			expectedBody:   "456789",
			expectedLength: "6",
			expectedRange:  "bytes 30-35/36",
			expectedOpens:  1,
		},
		{
			name:           "unsatisfiable range",
			rangeHeader:    "bytes=36-",
			expectedStatus: http.StatusRequestedRangeNotSatisfiable,
			expectedBody:   "",
			expectedRange:  "bytes */36",
			expectedOpens:  0,
		},
		{
			name:           "malformed range falls back to full body",
			rangeHeader:    "bytes=nope",
			expectedStatus: http.StatusOK,
			expectedBody:   content,
			expectedLength: "36",
			expectedOpens:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opener := &stringOpener{content: content}

			r := httptest.NewRequest(http.MethodGet, "/stream", nil)
			if tt.rangeHeader != "" {
				r.Header.Set("Range", tt.rangeHeader)
			}
			w := httptest.NewRecorder()

			err := Serve(w, r, Blob{Size: int64(len(content)), ContentType: "video/mp4"}, opener.open)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())
			assert.Equal(t, tt.expectedOpens, opener.openCalls)
			assert.Equal(t, opener.openCalls, opener.closeCalls, "every opened reader must be closed")

			if tt.expectedLength != "" {
				assert.Equal(t, tt.expectedLength, w.Header().Get("Content-Length"))
			}
			if tt.expectedRange != "" {
				assert.Equal(t, tt.expectedRange, w.Header().Get("Content-Range"))
			}
			if tt.expectedStatus == http.StatusPartialContent {
				assert.Equal(t, "bytes", w.Header().Get("Accept-Ranges"))
				assert.Equal(t, "video/mp4", w.Header().Get("Content-Type"))
			}
		})
	}
}

func TestServe_OpenFailure(t *testing.T) {
	open := func(start, end int64) (io.ReadCloser, error) {
		return nil, fmt.Errorf("stat blob: %w", os.ErrNotExist)
	}

	r := httptest.NewRequest(http.MethodGet, "/stream", nil)
	w := httptest.NewRecorder()

	err := Serve(w, r, Blob{Size: 10, ContentType: "audio/mpeg"}, open)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOpenBlob)
	assert.ErrorIs(t, err, os.ErrNotExist)
	// nothing written: the handler is still free to respond with 404
	assert.Empty(t, w.Body.String())
}

// failingReader returns an error partway through the body copy
type failingReader struct {
	data io.Reader
	err  error
}

func (f *failingReader) Read(p []byte) (int, error) {
	n, err := f.data.Read(p)
	if errors.Is(err, io.EOF) {
		return n, f.err
	}
	return n, err
}

func (f *failingReader) Close() error { return nil }

func TestServe_MidStreamFailure(t *testing.T) {
	readErr := errors.New("disk gone")
	open := func(start, end int64) (io.ReadCloser, error) {
		return &failingReader{data: strings.NewReader("abc"), err: readErr}, nil
	}

	r := httptest.NewRequest(http.MethodGet, "/stream", nil)
	r.Header.Set("Range", "bytes=0-9")
	w := httptest.NewRecorder()

	err := Serve(w, r, Blob{Size: 10, ContentType: "video/mp4"}, open)

	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
	// headers were already committed before the failure
	assert.Equal(t, http.StatusPartialContent, w.Code)
}

func TestServe_ConcurrentDisjointRanges(t *testing.T) {
	const content = "abcdefghijklmnopqrstuvwxyz"
	opener := &stringOpener{content: content}
	blob := Blob{Size: int64(len(content)), ContentType: "audio/mpeg"}

	windows := []struct {
		header string
		body   string
	}{
		{"bytes=0-7", "abcdefgh"},
		{"bytes=8-15", "ijklmnop"},
		{"bytes=16-25", "qrstuvwxyz"},
	}

	var wg sync.WaitGroup
	results := make([]*httptest.ResponseRecorder, len(windows))
	for i, win := range windows {
		wg.Add(1)
		go func(i int, header string) {
			defer wg.Done()
			r := httptest.NewRequest(http.MethodGet, "/stream", nil)
			r.Header.Set("Range", header)
			w := httptest.NewRecorder()
			assert.NoError(t, Serve(w, r, blob, opener.open))
			results[i] = w
		}(i, win.header)
	}
	wg.Wait()

	for i, win := range windows {
		assert.Equal(t, http.StatusPartialContent, results[i].Code)
		assert.Equal(t, win.body, results[i].Body.String())
	}
}
