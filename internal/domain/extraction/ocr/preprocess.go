package ocr

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Preprocess writes a grayscale, contrast-normalized copy of the image next
// to the original ("scan.png" -> "scan_processed.png") and returns its path.
// This is a deterministic transform to improve recognition accuracy, not
// itself extraction. The caller owns deletion of the processed file.
func Preprocess(path string) (string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}

	gray := imaging.Grayscale(img)
	stretchContrast(gray)

	out := processedPath(path)
	if err := imaging.Save(gray, out); err != nil {
		return "", fmt.Errorf("save preprocessed image: %w", err)
	}
	return out, nil
}

// stretchContrast linearly remaps the luminance range onto [0, 255] in
// place. The image is already grayscale, so R, G, and B carry the same
// value per pixel.
func stretchContrast(img *image.NRGBA) {
	lo, hi := uint8(255), uint8(0)
	for i := 0; i < len(img.Pix); i += 4 {
		v := img.Pix[i]
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi <= lo {
		return
	}

	span := int(hi) - int(lo)
	for i := 0; i < len(img.Pix); i += 4 {
		v := uint8((int(img.Pix[i]-lo) * 255) / span)
		img.Pix[i], img.Pix[i+1], img.Pix[i+2] = v, v, v
	}
}

func processedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_processed" + ext
}
