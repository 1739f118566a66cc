//go:build ocr

package ocr

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/Pratikdalwadi/docground/layout"
	"github.com/Pratikdalwadi/docground/model"
	"github.com/Pratikdalwadi/docground/reader"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
	config Config
}

// New creates a client with the default configuration.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a client with the given configuration.
func NewWithConfig(cfg Config) (*Client, error) {
	client := gosseract.NewClient()
	c := &Client{client: client, config: cfg}

	if len(cfg.Languages) > 0 {
		if err := client.SetLanguage(cfg.Languages...); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set language: %w", err)
		}
	}
	if cfg.PageSegMode > 0 {
		if err := client.SetPageSegMode(gosseract.PageSegMode(cfg.PageSegMode)); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
		}
	}
	return c, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// RecognizeWords performs OCR on image data and returns the word boxes
// as a word source in the image's pixel space.
func (c *Client) RecognizeWords(imageData []byte) (model.WordSource, error) {
	size, err := reader.ReadImageSize(bytes.NewReader(imageData))
	if err != nil {
		return model.WordSource{}, err
	}
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return model.WordSource{}, fmt.Errorf("failed to set image: %w", err)
	}

	found, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return model.WordSource{}, fmt.Errorf("OCR failed: %w", err)
	}

	boxes := make([]Box, 0, len(found))
	for _, b := range found {
		boxes = append(boxes, Box{
			Text:       b.Word,
			X0:         b.Box.Min.X,
			Y0:         b.Box.Min.Y,
			X1:         b.Box.Max.X,
			Y1:         b.Box.Max.Y,
			Confidence: b.Confidence,
		})
	}
	return WordSource(boxes, size.Width, size.Height, c.config.MinConfidence), nil
}

// RecognizePage reads the image file at path and returns it as a page
// input with one OCR word source.
func (c *Client) RecognizePage(number int, path string) (layout.PageInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return layout.PageInput{}, fmt.Errorf("failed to read image: %w", err)
	}
	src, err := c.RecognizeWords(data)
	if err != nil {
		return layout.PageInput{}, err
	}
	return layout.PageInput{Number: number, Sources: []model.WordSource{src}}, nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Default is "eng" (English).
func (c *Client) SetLanguage(langs ...string) error {
	return c.client.SetLanguage(langs...)
}
