package ocr

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/docledger/internal/domain/extraction/segment"
)

type fakeEngine struct {
	text string
	err  error
	path string
}

func (f *fakeEngine) Recognize(_ context.Context, imagePath string) (string, error) {
	f.path = imagePath
	return f.text, f.err
}

func writeTestImage(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(40 + x*20), G: uint8(40 + y*20), B: 90, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "scan.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestExtractGrid(t *testing.T) {
	t.Run("preprocesses, recognizes and segments", func(t *testing.T) {
		path := writeTestImage(t)
		engine := &fakeEngine{text: "Date  Amount\n2023-01-15  4.50"}
		e := NewExtractor(engine, segment.Whitespace{})

		grid, err := e.ExtractGrid(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, [][]string{
			{"Date", "Amount"},
			{"2023-01-15", "4.50"},
		}, grid)

		// Recognition ran over the preprocessed copy, which is cleaned up.
		assert.Contains(t, engine.path, "_processed")
		_, statErr := os.Stat(engine.path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("engine failure propagates", func(t *testing.T) {
		path := writeTestImage(t)
		engine := &fakeEngine{err: errors.New("tesseract exploded")}
		e := NewExtractor(engine, segment.Whitespace{})

		_, err := e.ExtractGrid(context.Background(), path)
		assert.ErrorContains(t, err, "tesseract exploded")
	})

	t.Run("unreadable file fails preprocessing", func(t *testing.T) {
		e := NewExtractor(&fakeEngine{}, segment.Whitespace{})
		_, err := e.ExtractGrid(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
		assert.Error(t, err)
	})
}

func TestProcessedPath(t *testing.T) {
	assert.Equal(t, "/tmp/scan_processed.png", processedPath("/tmp/scan.png"))
	assert.Equal(t, "receipt_processed.jpeg", processedPath("receipt.jpeg"))
}
