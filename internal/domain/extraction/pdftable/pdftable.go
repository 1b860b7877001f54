// Package pdftable extracts tabular data from machine-generated PDFs using
// the document's internal layout, avoiding OCR entirely.
//
// Layout-based table extraction is inherently unreliable. The engine makes
// exactly one attempt per invocation, uses only the first page, and reports
// anything less than a usable grid as ErrNoTable so the caller can steer the
// user toward uploading an image instead.
package pdftable

import (
	"errors"
	"fmt"

	"github.com/dslipak/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ErrNoTable means the PDF was readable but no table rows could be derived
// from its first page.
var ErrNoTable = errors.New("no table data found in PDF")

const (
	// wordGap is the horizontal distance (in points) below which adjacent
	// text fragments are glued into one word.
	wordGap = 1.0
	// columnGap is the horizontal distance above which a new cell starts.
	columnGap = 8.0
)

// Engine extracts the first table of the first page of a PDF.
type Engine struct{}

// New creates a PDF table extraction engine.
func New() *Engine {
	return &Engine{}
}

// ExtractFirstTable returns the table grid of page 1. Rows are ordered top
// to bottom; cells are derived from horizontal gaps between text fragments.
// Multi-page documents lose everything past the first page.
func (e *Engine) ExtractFirstTable(path string) (grid [][]string, err error) {
	// The content-stream interpreter underneath panics on malformed PDFs.
	defer func() {
		if r := recover(); r != nil {
			grid, err = nil, fmt.Errorf("pdf layout extraction: %v", r)
		}
	}()

	pageCount, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("pdf preflight: %w", err)
	}
	if pageCount == 0 {
		return nil, ErrNoTable
	}

	reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	page := reader.Page(1)
	if page.V.IsNull() {
		return nil, ErrNoTable
	}

	rows, err := page.GetTextByRow()
	if err != nil {
		return nil, fmt.Errorf("read pdf rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoTable
	}

	grid = make([][]string, 0, len(rows))
	for _, row := range rows {
		if cells := cellsFromRow(row.Content); len(cells) > 0 {
			grid = append(grid, cells)
		}
	}
	if len(grid) == 0 {
		return nil, ErrNoTable
	}
	return grid, nil
}

// ExtractText is the secondary plain-text path. It reads the PDF's text
// stream with no positional structure, so its output is unfit for the row
// parser and must never feed it; it exists for diagnostics and previews.
func (e *Engine) ExtractText(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("pdf text extraction: %v", r)
		}
	}()

	reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	buf := make([]byte, 0, 4096)
	chunk := make([]byte, 4096)
	for {
		n, readErr := plain.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if readErr != nil {
			break
		}
	}
	return string(buf), nil
}

// cellsFromRow groups a row's text fragments into cells. Fragments are
// already ordered left to right; a gap wider than columnGap starts a new
// cell, a gap wider than wordGap inserts a space.
func cellsFromRow(fragments []pdf.Text) []string {
	var cells []string
	var cell string
	var prevEnd float64

	for _, frag := range fragments {
		if frag.S == "" {
			continue
		}
		switch {
		case cell == "":
			cell = frag.S
		case frag.X-prevEnd > columnGap:
			cells = append(cells, cell)
			cell = frag.S
		case frag.X-prevEnd > wordGap:
			cell += " " + frag.S
		default:
			cell += frag.S
		}
		prevEnd = frag.X + frag.W
	}
	if cell != "" {
		cells = append(cells, cell)
	}
	return cells
}
