package ocr

import (
	"context"
	"fmt"
	"os"

	"github.com/FACorreiaa/docledger/internal/domain/extraction/segment"
)

// Extractor is the raster-path extraction engine: preprocess, recognize,
// then reconstruct row/column structure from the text blob.
type Extractor struct {
	engine    Engine
	segmenter segment.Strategy
}

// NewExtractor wires an OCR engine to a segmentation strategy.
func NewExtractor(engine Engine, segmenter segment.Strategy) *Extractor {
	return &Extractor{engine: engine, segmenter: segmenter}
}

// ExtractGrid produces a table grid from an image on disk. No validation of
// the grid happens here; malformed rows are the parser's problem.
func (e *Extractor) ExtractGrid(ctx context.Context, path string) ([][]string, error) {
	processed, err := Preprocess(path)
	if err != nil {
		return nil, fmt.Errorf("preprocess image: %w", err)
	}
	defer os.Remove(processed)

	text, err := e.engine.Recognize(ctx, processed)
	if err != nil {
		return nil, err
	}
	return e.segmenter.Split(text), nil
}
