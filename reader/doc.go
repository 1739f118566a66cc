// Package reader turns external recognizer output into page inputs for
// layout analysis.
//
// Recognizers report words in their own coordinate space. The reader
// keeps those coordinates and the page dimensions together in a
// [model.WordSource]; normalization happens later in the layout package.
//
// # Opening Files
//
// Use [Open] to read a file; the format is detected from its content:
//
//	pages, err := reader.Open("scan.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or call the format readers directly:
//
//   - [ReadJSON] - the recognizer JSON word dump
//   - [ReadHOCR] - hOCR documents (ocr_page / ocrx_word)
//   - [ReadImageSize] - page image dimensions (PNG, JPEG, GIF, TIFF, BMP, WebP)
//
// # Multiple Sources
//
// A page may carry several word sources, for example a native text layer
// and OCR of the rendered page. In JSON input, entries that share a
// page_number become separate sources of the same page.
package reader
