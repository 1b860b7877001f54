// Package segment reconstructs tabular structure from free-form OCR text.
//
// Segmentation is a heuristic: it may under- or over-split columns, and it
// performs no validation. Malformed rows are handled downstream by the
// parser's column-count guard.
package segment

import (
	"regexp"
	"strings"
)

// Strategy turns a recognized text blob into a grid of rows and cells.
// Implementations must be safe for concurrent use.
type Strategy interface {
	Split(text string) [][]string
}

// Whitespace is the default strategy: one row per line, cells wherever a run
// of two or more spaces, a tab, or a vertical bar occurs.
type Whitespace struct{}

var cellBoundary = regexp.MustCompile(`\s{2,}|\t|\|`)

// Split implements Strategy. Empty lines survive as single-cell rows; the
// parser skips them via its blank-row check.
func (Whitespace) Split(text string) [][]string {
	lines := strings.Split(text, "\n")
	grid := make([][]string, 0, len(lines))
	for _, line := range lines {
		grid = append(grid, cellBoundary.Split(line, -1))
	}
	return grid
}
