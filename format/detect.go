// Package format detects the input formats docground can read: recognizer
// word dumps (JSON, hOCR) and page images.
package format

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupported is returned when a file's format cannot be determined or
// is not one docground reads.
var ErrUnsupported = errors.New("unsupported input format")

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// JSON indicates a word dump in the recognizer JSON shape.
	JSON
	// HOCR indicates an hOCR (HTML) recognizer output.
	HOCR
	// PNG indicates a PNG page image.
	PNG
	// JPEG indicates a JPEG page image.
	JPEG
	// GIF indicates a GIF page image.
	GIF
	// TIFF indicates a TIFF page image.
	TIFF
	// BMP indicates a BMP page image.
	BMP
	// WebP indicates a WebP page image.
	WebP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case JSON:
		return "JSON"
	case HOCR:
		return "hOCR"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case GIF:
		return "GIF"
	case TIFF:
		return "TIFF"
	case BMP:
		return "BMP"
	case WebP:
		return "WebP"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case JSON:
		return ".json"
	case HOCR:
		return ".hocr"
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	case GIF:
		return ".gif"
	case TIFF:
		return ".tiff"
	case BMP:
		return ".bmp"
	case WebP:
		return ".webp"
	default:
		return ""
	}
}

// IsImage reports whether the format is a raster page image.
func (f Format) IsImage() bool {
	switch f {
	case PNG, JPEG, GIF, TIFF, BMP, WebP:
		return true
	}
	return false
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return JSON
	case ".hocr", ".html", ".htm", ".xhtml":
		return HOCR
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	case ".gif":
		return GIF
	case ".tif", ".tiff":
		return TIFF
	case ".bmp":
		return BMP
	case ".webp":
		return WebP
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to determine format.
// This is more reliable than extension-based detection.
// Returns Unknown if the format cannot be determined from the bytes alone.
func DetectFromMagic(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return PNG
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return JPEG
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return GIF
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return TIFF
	case bytes.HasPrefix(data, []byte("BM")) && len(data) >= 14:
		return BMP
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && string(data[8:12]) == "WEBP":
		return WebP
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) == 0 {
		return Unknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return JSON
	}
	if detectHTMLMagic(trimmed) {
		return HOCR
	}
	return Unknown
}

// detectHTMLMagic checks if the data looks like HTML or XHTML content.
func detectHTMLMagic(data []byte) bool {
	upper := strings.ToUpper(string(data[:min(len(data), 1024)]))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") || strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML") {
		return true
	}
	return strings.Contains(upper, "OCR_PAGE")
}

// DetectFromReader reads up to 512 bytes from r and detects the format
// from them.
func DetectFromReader(r io.Reader) (Format, error) {
	magic := make([]byte, 512)
	n, err := io.ReadFull(r, magic)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}

// DetectFile determines the format of a file on disk, trusting its content
// first and its extension second. It returns ErrUnsupported when neither
// gives an answer.
func DetectFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	format, err := DetectFromReader(f)
	if err != nil {
		return Unknown, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if format == Unknown {
		format = Detect(path)
	}
	if format == Unknown {
		return Unknown, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupported)
	}
	return format, nil
}
