package layout

import (
	"testing"

	"github.com/Pratikdalwadi/docground/model"
)

func pixelWord(text string, x, y, w, h, conf float64) model.Word {
	return model.Word{Text: text, Rect: model.NewRectangle(x, y, w, h), Confidence: conf}
}

func TestReconciler_SingleSource(t *testing.T) {
	src := model.WordSource{
		Method: "pdf_native",
		Width:  1000,
		Height: 1000,
		Words: []model.Word{
			pixelWord("Hello", 100, 100, 80, 20, 1),
			pixelWord("World", 200, 100, 80, 20, 1),
		},
	}

	res := NewReconciler().Reconcile([]model.WordSource{src})
	if len(res.Words) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(res.Words))
	}
	if !approx(res.Words[0].Rect.X, 0.1) {
		t.Errorf("word not normalized: %+v", res.Words[0].Rect)
	}
	if res.Coverage.CoveragePercent != 100 {
		t.Errorf("CoveragePercent = %v, want 100", res.Coverage.CoveragePercent)
	}
	if res.Coverage.SourceWords["pdf_native"] != 2 || res.Coverage.FinalWords != 2 {
		t.Errorf("Coverage = %+v", res.Coverage)
	}
}

func TestReconciler_DropsDuplicatesKeepsHigherConfidence(t *testing.T) {
	native := model.WordSource{
		Method: "pdf_native", Width: 1000, Height: 1000,
		Words: []model.Word{
			pixelWord("Invoice", 100, 100, 100, 20, 0.7),
			pixelWord("Total", 100, 300, 80, 20, 0.9),
		},
	}
	// Same page rendered at twice the resolution
	ocr := model.WordSource{
		Method: "tesseract", Width: 2000, Height: 2000,
		Words: []model.Word{
			pixelWord("INVOICE", 202, 200, 200, 40, 0.95),
			pixelWord("Total", 200, 600, 160, 40, 0.6),
			pixelWord("Extra", 1000, 1000, 100, 40, 0.8),
		},
	}

	res := NewReconciler().Reconcile([]model.WordSource{native, ocr})
	if res.Duplicates != 2 {
		t.Errorf("Duplicates = %d, want 2", res.Duplicates)
	}
	if len(res.Words) != 3 {
		t.Fatalf("Expected 3 words, got %d", len(res.Words))
	}
	if res.Words[0].Text != "INVOICE" || res.Words[0].Confidence != 0.95 {
		t.Errorf("higher-confidence duplicate not kept: %+v", res.Words[0])
	}
	if res.Words[1].Text != "Total" || res.Words[1].Confidence != 0.9 {
		t.Errorf("lower-confidence duplicate replaced the original: %+v", res.Words[1])
	}
	if res.Words[2].Text != "Extra" {
		t.Errorf("Words[2] = %q", res.Words[2].Text)
	}

	if res.Coverage.SourceWords["pdf_native"] != 2 || res.Coverage.SourceWords["tesseract"] != 3 {
		t.Errorf("SourceWords = %v", res.Coverage.SourceWords)
	}
	if res.Coverage.CoveragePercent != 100 {
		t.Errorf("CoveragePercent = %v, want 100", res.Coverage.CoveragePercent)
	}
}

func TestReconciler_DifferentTextIsNotDuplicate(t *testing.T) {
	a := model.WordSource{Method: "a", Width: 100, Height: 100, Words: []model.Word{pixelWord("cat", 10, 10, 10, 5, 1)}}
	b := model.WordSource{Method: "b", Width: 100, Height: 100, Words: []model.Word{pixelWord("dog", 10, 10, 10, 5, 1)}}

	res := NewReconciler().Reconcile([]model.WordSource{a, b})
	if len(res.Words) != 2 || res.Duplicates != 0 {
		t.Errorf("words = %d, duplicates = %d", len(res.Words), res.Duplicates)
	}
}

func TestReconciler_FiltersAndCoverage(t *testing.T) {
	config := DefaultReconcileConfig()
	config.MinConfidence = 0.5
	src := model.WordSource{
		Width: 100, Height: 100,
		Words: []model.Word{
			pixelWord("keep", 10, 10, 10, 5, 0.9),
			pixelWord("   ", 30, 10, 10, 5, 0.9),
			pixelWord("weak", 50, 10, 10, 5, 0.2),
			pixelWord("also", 70, 10, 10, 5, 0.6),
		},
	}

	res := NewReconcilerWithConfig(config).Reconcile([]model.WordSource{src})
	if len(res.Words) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(res.Words))
	}
	if res.Coverage.CoveragePercent != 50 {
		t.Errorf("CoveragePercent = %v, want 50", res.Coverage.CoveragePercent)
	}
	if res.Coverage.SourceWords["unknown"] != 4 {
		t.Errorf("unnamed source not counted as unknown: %v", res.Coverage.SourceWords)
	}
}

func TestReconciler_CoverageSumsSameMethod(t *testing.T) {
	config := DefaultReconcileConfig()
	config.MinConfidence = 0.5
	upper := model.WordSource{
		Method: "tesseract", Width: 100, Height: 100,
		Words: []model.Word{
			pixelWord("one", 10, 10, 10, 5, 0.9),
			pixelWord("two", 30, 10, 10, 5, 0.2),
		},
	}
	lower := model.WordSource{
		Method: "tesseract", Width: 100, Height: 100,
		Words: []model.Word{
			pixelWord("three", 10, 60, 10, 5, 0.9),
			pixelWord("four", 30, 60, 10, 5, 0.2),
		},
	}

	res := NewReconcilerWithConfig(config).Reconcile([]model.WordSource{upper, lower})
	if len(res.Words) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(res.Words))
	}
	if res.Coverage.SourceWords["tesseract"] != 4 {
		t.Errorf("SourceWords = %v", res.Coverage.SourceWords)
	}
	if res.Coverage.CoveragePercent != 50 {
		t.Errorf("CoveragePercent = %v, want 50", res.Coverage.CoveragePercent)
	}
}

func TestReconciler_NoSources(t *testing.T) {
	res := NewReconciler().Reconcile(nil)
	if len(res.Words) != 0 || res.Coverage.FinalWords != 0 || res.Coverage.CoveragePercent != 0 {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestTextSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"hello", "hello", 1},
		{"Hello", "HELLO", 1},
		{"hello world", "world hello", 1},
		{"hello world", "hello", 0.5},
		{"a b", "c d", 0},
		{"", "x", 0},
		{"x", "", 0},
	}
	for _, tt := range tests {
		if got := TextSimilarity(tt.a, tt.b); !approx(got, tt.want) {
			t.Errorf("TextSimilarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
