//go:build !ocr

package ocr

import (
	"errors"

	"github.com/Pratikdalwadi/docground/layout"
	"github.com/Pratikdalwadi/docground/model"
)

// ErrOCRNotEnabled is returned when OCR functionality is called but the
// package was built without the ocr build tag.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a stub that returns errors when OCR is not enabled.
type Client struct{}

// New returns an error when OCR is not enabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// NewWithConfig returns an error when OCR is not enabled.
func NewWithConfig(Config) (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op when OCR is not enabled.
func (c *Client) Close() error {
	return nil
}

// RecognizeImage returns an error when OCR is not enabled.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// RecognizeWords returns an error when OCR is not enabled.
func (c *Client) RecognizeWords(imageData []byte) (model.WordSource, error) {
	return model.WordSource{}, ErrOCRNotEnabled
}

// RecognizePage returns an error when OCR is not enabled.
func (c *Client) RecognizePage(number int, path string) (layout.PageInput, error) {
	return layout.PageInput{}, ErrOCRNotEnabled
}

// SetLanguage returns an error when OCR is not enabled.
func (c *Client) SetLanguage(langs ...string) error {
	return ErrOCRNotEnabled
}
