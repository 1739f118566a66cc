package ocr

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Languages) != 1 || cfg.Languages[0] != "eng" {
		t.Errorf("Languages = %v", cfg.Languages)
	}
	if cfg.PageSegMode != 3 || cfg.MinConfidence != 30 {
		t.Errorf("config = %+v", cfg)
	}
}

func TestWordSource(t *testing.T) {
	boxes := []Box{
		{Text: "Invoice", X0: 100, Y0: 50, X1: 300, Y1: 90, Confidence: 95},
		{Text: "noise", X0: 10, Y0: 10, X1: 20, Y1: 20, Confidence: 30},
		{Text: "  ", X0: 10, Y0: 10, X1: 20, Y1: 20, Confidence: 99},
		{Text: "flat", X0: 10, Y0: 10, X1: 20, Y1: 10, Confidence: 99},
		{Text: " Total ", X0: 0, Y0: 0, X1: 50, Y1: 20, Confidence: 31},
	}

	src := WordSource(boxes, 1000, 800, 30)
	if src.Method != Method || src.Width != 1000 || src.Height != 800 {
		t.Errorf("source = %+v", src)
	}
	if len(src.Words) != 2 {
		t.Fatalf("Expected 2 words, got %d: %+v", len(src.Words), src.Words)
	}

	w := src.Words[0]
	if w.Text != "Invoice" || w.Rect.X != 100 || w.Rect.Y != 50 || w.Rect.Width != 200 || w.Rect.Height != 40 {
		t.Errorf("word 0 = %+v", w)
	}
	if w.Confidence != 0.95 {
		t.Errorf("Confidence = %v, want 0.95", w.Confidence)
	}
	if src.Words[1].Text != "Total" {
		t.Errorf("word 1 text = %q", src.Words[1].Text)
	}
}

func TestWordSource_Empty(t *testing.T) {
	src := WordSource(nil, 10, 10, 0)
	if len(src.Words) != 0 || src.Width != 10 {
		t.Errorf("source = %+v", src)
	}
}
