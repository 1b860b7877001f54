// Package classify decides which extraction engine handles an uploaded
// document. Classification looks at the file name only, never the content.
package classify

import (
	"path/filepath"
	"strings"
)

// Kind is the document class an upload resolves to.
type Kind string

const (
	KindImage       Kind = "image"
	KindPDF         Kind = "pdf"
	KindUnsupported Kind = "unsupported"
)

var imageExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// Detect classifies a document by its file extension, case-insensitively.
// Anything that is not a recognized raster image or a PDF is unsupported and
// must not reach an extraction engine.
func Detect(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := imageExts[ext]; ok {
		return KindImage
	}
	if ext == ".pdf" {
		return KindPDF
	}
	return KindUnsupported
}
