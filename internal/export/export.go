package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"ShapeBoard/internal/board"
)

// Format names an export target.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
)

var Formats = []Format{FormatPNG, FormatSVG, FormatPDF}

// FormatForPath picks a format from a file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, f := range Formats {
		if string(f) == ext {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported export extension %q", filepath.Ext(path))
}

// Write renders s in format f.
func Write(w io.Writer, f Format, s board.Scene) error {
	switch f {
	case FormatPNG:
		return PNG(w, s)
	case FormatSVG:
		return SVG(w, s)
	case FormatPDF:
		return PDF(w, s)
	default:
		return fmt.Errorf("unsupported export format %q", f)
	}
}
