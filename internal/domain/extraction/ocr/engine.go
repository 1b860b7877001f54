// Package ocr turns photographed or scanned tables into text grids. It
// preprocesses the image, runs an optical character recognition pass, and
// hands the resulting blob to a segmentation strategy.
package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Engine recognizes text in an image file. Implementations must treat the
// call as a single blocking pass with no internal retries.
type Engine interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
}

// Tesseract is the default Engine, backed by a local tesseract installation
// via gosseract. A fresh client is created per call; gosseract clients are
// not safe for concurrent use.
type Tesseract struct {
	languages []string
}

// NewTesseract creates an engine recognizing the given languages. With no
// languages the tesseract default ("eng") applies.
func NewTesseract(languages ...string) *Tesseract {
	return &Tesseract{languages: languages}
}

// Recognize implements Engine.
func (t *Tesseract) Recognize(ctx context.Context, imagePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if len(t.languages) > 0 {
		if err := client.SetLanguage(t.languages...); err != nil {
			return "", fmt.Errorf("set ocr languages: %w", err)
		}
	}
	if err := client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("load image for ocr: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr recognition: %w", err)
	}
	return text, nil
}
