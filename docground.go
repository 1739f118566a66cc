// Package docground reconstructs the layout of recognized documents and
// turns it into grounded chunks for retrieval.
//
// Basic usage:
//
//	chunks, warnings, err := docground.Open("scan.json").Chunks(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", docground.FormatWarnings(warnings))
//	}
//
// With options:
//
//	md, _, err := docground.Open("scan.hocr").
//	    Pages(1, 2, 3).
//	    ExcludeHeadersAndFooters().
//	    ToMarkdown(ctx)
//
// Input may be a recognizer JSON word dump, an hOCR document, or a page
// image (which yields an empty page of the image's size). Pages built in
// memory can be analyzed with [FromPages]. The lower-level layout, rag and
// reader packages are also available.
package docground

import (
	"fmt"
	"io"

	"github.com/Pratikdalwadi/docground/format"
	"github.com/Pratikdalwadi/docground/layout"
	"github.com/Pratikdalwadi/docground/reader"
)

// Open returns an Extractor for the file at filename. The file is read
// lazily by the first terminal operation.
//
// Example:
//
//	ir, warnings, err := docground.Open("scan.json").IR(ctx)
func Open(filename string) *Extractor {
	return newExtractor(func() ([]layout.PageInput, error) {
		pages, err := reader.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", filename, err)
		}
		return pages, nil
	})
}

// FromReader returns an Extractor reading input of format f from r.
// Like Open, r is read by the first terminal operation.
//
// Example:
//
//	md, _, err := docground.FromReader(resp.Body, format.HOCR).ToMarkdown(ctx)
func FromReader(r io.Reader, f format.Format) *Extractor {
	return newExtractor(func() ([]layout.PageInput, error) {
		return reader.Read(r, f)
	})
}

// FromPages returns an Extractor over pages already in memory.
//
// Example:
//
//	chunks, _, err := docground.FromPages([]layout.PageInput{{
//	    Number:  1,
//	    Sources: []model.WordSource{src},
//	}}).Chunks(ctx)
func FromPages(pages []layout.PageInput) *Extractor {
	inputs := append([]layout.PageInput(nil), pages...)
	return newExtractor(func() ([]layout.PageInput, error) {
		return inputs, nil
	})
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := docground.Must(docground.Open("scan.json").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is like Must for terminal operations that also return
// warnings. The warnings are discarded.
//
// Example:
//
//	md := docground.MustResult(docground.Open("scan.json").ToMarkdown(ctx))
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
