package reader

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Pratikdalwadi/docground/layout"
	"github.com/Pratikdalwadi/docground/model"
)

// jsonDocument is the recognizer word dump:
//
//	{"pages": [{"page_number": 1, "width": 2480, "height": 3508,
//	            "method": "tesseract", "words": [...]}]}
//
// Each word is {"text", "bbox": {"x","y","width","height"}, "confidence",
// "font_family", "font_size"}.
type jsonDocument struct {
	Pages []jsonPage `json:"pages"`
}

type jsonPage struct {
	PageNumber int          `json:"page_number"`
	Width      float64      `json:"width"`
	Height     float64      `json:"height"`
	Method     string       `json:"method"`
	Words      []model.Word `json:"words"`
}

// DefaultJSONMethod names sources from JSON pages with no method
const DefaultJSONMethod = "json"

// ReadJSON parses a JSON word dump. Entries sharing a page number become
// separate sources of that page, so one file can carry both a native text
// layer and OCR output. A page with no number takes its 1-based position.
func ReadJSON(r io.Reader) ([]layout.PageInput, error) {
	var doc jsonDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode JSON words: %w", err)
	}
	if len(doc.Pages) == 0 {
		return nil, ErrNoPages
	}

	set := newPageSet()
	for i, p := range doc.Pages {
		number := p.PageNumber
		if number <= 0 {
			number = i + 1
		}
		method := p.Method
		if method == "" {
			method = DefaultJSONMethod
		}
		set.add(number, model.WordSource{
			Method: method,
			Width:  p.Width,
			Height: p.Height,
			Words:  p.Words,
		})
	}
	return set.inputs(), nil
}

// WriteJSON writes pages in the format ReadJSON accepts, one entry per
// word source.
func WriteJSON(w io.Writer, pages []layout.PageInput) error {
	doc := jsonDocument{Pages: []jsonPage{}}
	for _, in := range pages {
		for _, src := range in.Sources {
			words := src.Words
			if words == nil {
				words = []model.Word{}
			}
			doc.Pages = append(doc.Pages, jsonPage{
				PageNumber: in.Number,
				Width:      src.Width,
				Height:     src.Height,
				Method:     src.Method,
				Words:      words,
			})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON words: %w", err)
	}
	return nil
}
