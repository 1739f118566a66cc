package reader

import (
	"fmt"
	"image"
	"io"
	"os"

	// Decoders registered for DecodeConfig
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/Pratikdalwadi/docground/layout"
	"github.com/Pratikdalwadi/docground/model"
)

// ImageSize is the pixel size of a page image
type ImageSize struct {
	Width  int
	Height int

	// Format is the decoder name, e.g. "png" or "tiff"
	Format string
}

// ReadImageSize reads only the image header from r
func ReadImageSize(r io.Reader) (ImageSize, error) {
	cfg, name, err := image.DecodeConfig(r)
	if err != nil {
		return ImageSize{}, fmt.Errorf("failed to read image header: %w", err)
	}
	return ImageSize{Width: cfg.Width, Height: cfg.Height, Format: name}, nil
}

// OpenImageSize reads the pixel size of the image file at path
func OpenImageSize(path string) (ImageSize, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImageSize{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()
	return ReadImageSize(f)
}

// PageInput returns a page with one empty word source of this size.
// Recognizer words can be appended to the source later.
func (s ImageSize) PageInput(number int, method string) layout.PageInput {
	return layout.PageInput{
		Number: number,
		Sources: []model.WordSource{{
			Method: method,
			Width:  float64(s.Width),
			Height: float64(s.Height),
		}},
	}
}
