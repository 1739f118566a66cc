// Package ocr recognizes words on page images with Tesseract.
//
// The recognizer produces a [model.WordSource] in pixel coordinates, the
// same shape the reader package builds from JSON and hOCR input, so OCR
// words can be reconciled with other sources of the same page.
//
// Tesseract support is compiled in only with the ocr build tag:
//
//	go build -tags ocr ./...
//
// Without the tag every recognition call returns [ErrOCRNotEnabled].
// Tesseract must be installed on the system. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
package ocr
