// Package pdfutil wraps pdfcpu for the two PDF operations the service needs:
// counting pages on ingest and extracting a single page for download.
package pdfutil

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Processor implements PDF page operations via pdfcpu
type Processor struct{}

// NewProcessor creates a new PDF processor
func NewProcessor() *Processor {
	return &Processor{}
}

// PageCount returns the number of pages in the document
func (p *Processor) PageCount(rs io.ReadSeeker) (int, error) {
	count, err := api.PageCount(rs, nil)
	if err != nil {
		return 0, fmt.Errorf("count pdf pages: %w", err)
	}
	return count, nil
}

// ExtractPage writes a new single-page PDF document containing only the given
// page (1-based) to w
func (p *Processor) ExtractPage(rs io.ReadSeeker, page int, w io.Writer) error {
	if page < 1 {
		return fmt.Errorf("invalid page number %d", page)
	}
	if err := api.Trim(rs, w, []string{strconv.Itoa(page)}, nil); err != nil {
		return fmt.Errorf("extract pdf page %d: %w", page, err)
	}
	return nil
}
