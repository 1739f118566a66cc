package layout

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/Pratikdalwadi/docground/model"
)

// Normalizer rescales recognizer coordinates into the unit square.
// It has no state; the zero value is ready to use.
type Normalizer struct{}

// NewNormalizer creates a normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// NormalizeRect rescales r from a pageWidth x pageHeight space into [0,1].
// A zero, negative or NaN page dimension yields the zero rectangle.
func (n *Normalizer) NormalizeRect(r model.Rectangle, pageWidth, pageHeight float64) model.Rectangle {
	if !(pageWidth > 0) || !(pageHeight > 0) {
		return model.Rectangle{}
	}
	return model.Rectangle{
		X:      r.X / pageWidth,
		Y:      r.Y / pageHeight,
		Width:  r.Width / pageWidth,
		Height: r.Height / pageHeight,
	}.Clamp()
}

// NormalizeWords returns a copy of words with every rectangle normalized.
// Word text is trimmed and put in Unicode NFC form; the input slice is not
// modified. Normalizing already-normalized words with a 1x1 page is a no-op.
func (n *Normalizer) NormalizeWords(words []model.Word, pageWidth, pageHeight float64) []model.Word {
	if len(words) == 0 {
		return nil
	}
	out := make([]model.Word, len(words))
	for i, w := range words {
		w.Text = normalizeText(w.Text)
		w.Rect = n.NormalizeRect(w.Rect, pageWidth, pageHeight)
		w.Confidence = clampConfidence(w.Confidence)
		out[i] = w
	}
	return out
}

// NormalizeSource normalizes a word source against its own dimensions
func (n *Normalizer) NormalizeSource(src model.WordSource) []model.Word {
	return n.NormalizeWords(src.Words, src.Width, src.Height)
}

func normalizeText(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

func clampConfidence(c float64) float64 {
	if c != c || c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
