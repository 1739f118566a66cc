package ocr

import (
	"strings"

	"github.com/Pratikdalwadi/docground/model"
)

// Method names word sources produced by this package
const Method = "tesseract"

// Config controls the Tesseract recognizer.
type Config struct {
	// Languages passed to Tesseract, e.g. ["eng", "deu"]. Default: ["eng"]
	Languages []string `yaml:"languages"`

	// PageSegMode is the Tesseract page segmentation mode. Default: 3 (fully automatic)
	PageSegMode int `yaml:"page_seg_mode"`

	// MinConfidence drops words whose Tesseract confidence (0-100) is at
	// or below this value. Default: 30
	MinConfidence float64 `yaml:"min_confidence"`
}

// DefaultConfig returns the default recognizer configuration.
func DefaultConfig() Config {
	return Config{
		Languages:     []string{"eng"},
		PageSegMode:   3,
		MinConfidence: 30,
	}
}

// Box is one recognized word in pixel coordinates with a 0-100 confidence.
type Box struct {
	Text       string
	X0, Y0     int
	X1, Y1     int
	Confidence float64
}

// WordSource converts recognized boxes into a word source for a page
// image of the given pixel size. Blank words, degenerate boxes and words
// at or below minConfidence are dropped; confidence is rescaled to [0,1].
func WordSource(boxes []Box, width, height int, minConfidence float64) model.WordSource {
	src := model.WordSource{
		Method: Method,
		Width:  float64(width),
		Height: float64(height),
	}
	for _, b := range boxes {
		text := strings.TrimSpace(b.Text)
		if text == "" || b.Confidence <= minConfidence {
			continue
		}
		if b.X1 <= b.X0 || b.Y1 <= b.Y0 {
			continue
		}
		conf := b.Confidence / 100
		if conf > 1 {
			conf = 1
		}
		src.Words = append(src.Words, model.Word{
			Text:       text,
			Rect:       model.NewRectangle(float64(b.X0), float64(b.Y0), float64(b.X1-b.X0), float64(b.Y1-b.Y0)),
			Confidence: conf,
		})
	}
	return src
}
