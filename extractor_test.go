package docground

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Pratikdalwadi/docground/config"
	"github.com/Pratikdalwadi/docground/format"
	"github.com/Pratikdalwadi/docground/layout"
	"github.com/Pratikdalwadi/docground/model"
	"github.com/Pratikdalwadi/docground/rag"
)

// invoicePage is a 1000x1000 pixel page with a header line, a key-value
// line, a three-row table and a footer
func invoicePage(number int) layout.PageInput {
	w := func(text string, x, y, width float64) model.Word {
		return model.Word{Text: text, Rect: model.NewRectangle(x, y, width, 20), Confidence: 0.9}
	}
	words := []model.Word{
		w("ACME", 100, 50, 80),
		w("Corp", 190, 50, 80),

		w("Invoice", 100, 300, 90),
		w("Number:", 200, 300, 90),
		w("INV-100", 300, 300, 90),

		w("Item", 100, 500, 60),
		w("Qty", 450, 500, 50),
		w("Bolt", 100, 530, 60),
		w("12", 450, 530, 30),
		w("Nut", 100, 560, 50),
		w("30", 450, 560, 30),

		w("Page", 450, 950, 50),
		w("1", 510, 950, 10),
	}
	return layout.PageInput{
		Number:  number,
		Sources: []model.WordSource{{Method: "tesseract", Width: 1000, Height: 1000, Words: words}},
	}
}

func countBySource(chunks []model.TextChunk) map[model.ChunkSource]int {
	counts := make(map[model.ChunkSource]int)
	for _, c := range chunks {
		counts[c.Source]++
	}
	return counts
}

func TestExtractor_IR(t *testing.T) {
	ir, warnings, err := FromPages([]layout.PageInput{invoicePage(2), invoicePage(1)}).
		Workers(4).
		IR(context.Background())
	if err != nil {
		t.Fatalf("IR() error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if ir.TotalPages != 2 {
		t.Fatalf("TotalPages = %d, want 2", ir.TotalPages)
	}
	if ir.Pages[0].Number != 2 || ir.Pages[1].Number != 1 {
		t.Errorf("page order not preserved: %d, %d", ir.Pages[0].Number, ir.Pages[1].Number)
	}
	if ir.TotalTables != 2 || ir.OverallCoverage != 100 {
		t.Errorf("TotalTables = %d, OverallCoverage = %v", ir.TotalTables, ir.OverallCoverage)
	}
	if len(ir.ExtractionMethods) != 1 || ir.ExtractionMethods[0] != "tesseract" {
		t.Errorf("ExtractionMethods = %v", ir.ExtractionMethods)
	}
	if len(ir.KeyValuePairs()) != 2 {
		t.Errorf("KeyValuePairs = %d, want 2", len(ir.KeyValuePairs()))
	}
}

func TestExtractor_Pages(t *testing.T) {
	base := FromPages([]layout.PageInput{invoicePage(1), invoicePage(2), invoicePage(3)})

	ir, _, err := base.Pages(3, 1, 3).IR(context.Background())
	if err != nil {
		t.Fatalf("IR() error: %v", err)
	}
	if ir.TotalPages != 2 || ir.Pages[0].Number != 1 || ir.Pages[1].Number != 3 {
		t.Errorf("selected pages = %+v", ir.Pages)
	}

	ir, _, err = base.PageRange(2, 3).IR(context.Background())
	if err != nil || ir.TotalPages != 2 || ir.Pages[0].Number != 2 {
		t.Errorf("PageRange(2, 3) = %v, %v", ir, err)
	}

	if _, _, err := base.Pages(9).IR(context.Background()); err == nil {
		t.Error("expected error for missing page")
	}

	if len(base.options.pages) != 0 {
		t.Errorf("base extractor mutated: %v", base.options.pages)
	}
	if n, err := base.PageCount(); err != nil || n != 3 {
		t.Errorf("PageCount() = %d, %v", n, err)
	}
}

func TestExtractor_Chunks(t *testing.T) {
	chunks, _, err := FromPages([]layout.PageInput{invoicePage(1)}).Chunks(context.Background())
	if err != nil {
		t.Fatalf("Chunks() error: %v", err)
	}
	counts := countBySource(chunks)
	if counts[model.SourceBlock] != 4 || counts[model.SourceTable] != 1 || counts[model.SourceRegion] != 3 {
		t.Errorf("chunk counts = %v", counts)
	}
	var tableBlocks int
	for _, c := range chunks {
		if c.Source == model.SourceBlock && c.Type == model.ChunkTable {
			tableBlocks++
		}
	}
	if tableBlocks != 1 {
		t.Errorf("table source block chunks = %d, want 1", tableBlocks)
	}
	for _, c := range chunks {
		if len(c.Grounding) == 0 {
			t.Errorf("chunk %s has no grounding", c.ID)
		}
		for _, g := range c.Grounding {
			if g.PageIndex != 0 {
				t.Errorf("chunk %s grounded on page index %d", c.ID, g.PageIndex)
			}
		}
	}
}

func TestExtractor_ExcludeHeadersAndFooters(t *testing.T) {
	chunks, _, err := FromPages([]layout.PageInput{invoicePage(1)}).
		ExcludeHeadersAndFooters().
		Chunks(context.Background())
	if err != nil {
		t.Fatalf("Chunks() error: %v", err)
	}
	for _, c := range chunks {
		if strings.Contains(c.Text, "ACME") || strings.Contains(c.Text, "Page 1") {
			t.Errorf("header/footer text in chunk %+v", c)
		}
	}
	counts := countBySource(chunks)
	if counts[model.SourceBlock] != 2 || counts[model.SourceTable] != 1 || counts[model.SourceRegion] != 1 {
		t.Errorf("chunk counts = %v", counts)
	}

	ir, _, err := FromPages([]layout.PageInput{invoicePage(1)}).ExcludeHeaders().IR(context.Background())
	if err != nil || len(ir.Pages[0].Blocks) != 4 {
		t.Errorf("IR should keep header blocks: %v", err)
	}
}

func TestExtractor_ToMarkdown(t *testing.T) {
	md, _, err := FromPages([]layout.PageInput{invoicePage(1)}).ToMarkdown(context.Background())
	if err != nil {
		t.Fatalf("ToMarkdown() error: %v", err)
	}
	for _, want := range []string{"INV-100", "```", "Bolt"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
	if !strings.HasSuffix(md, "\n") {
		t.Error("markdown should end with a newline")
	}
}

func TestExtractor_Export(t *testing.T) {
	var buf bytes.Buffer
	_, err := FromPages([]layout.PageInput{invoicePage(1)}).Export(context.Background(), &buf, rag.DefaultExportConfig())
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 8 {
		t.Errorf("Expected 8 JSONL lines, got %d", len(lines))
	}
}

func TestExtractor_Text(t *testing.T) {
	text, _, err := FromPages([]layout.PageInput{invoicePage(1)}).Text(context.Background())
	if err != nil {
		t.Fatalf("Text() error: %v", err)
	}
	if !strings.Contains(text, "ACME Corp") {
		t.Errorf("Text() = %q", text)
	}
}

func TestExtractor_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ir, _, err := FromPages([]layout.PageInput{invoicePage(1), invoicePage(2)}).IR(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if ir != nil {
		t.Error("cancelled run returned a partial IR")
	}
}

func TestExtractor_Warnings(t *testing.T) {
	noDims := invoicePage(2)
	noDims.Sources[0].Width = 0

	sparse := layout.PageInput{Number: 3, Sources: []model.WordSource{{
		Method: "tesseract", Width: 100, Height: 100,
		Words: []model.Word{
			{Text: "kept", Rect: model.NewRectangle(10, 10, 20, 5), Confidence: 1},
			{Text: "a", Rect: model.NewRectangle(10, 30, 20, 5), Confidence: 0.5},
			{Text: "b", Rect: model.NewRectangle(10, 50, 20, 5), Confidence: 0.5},
			{Text: "c", Rect: model.NewRectangle(10, 70, 20, 5), Confidence: 0.5},
		},
	}}}

	cfg := config.Default()
	cfg.Analyzer.ReconcileConfig.MinConfidence = 0.6

	_, warnings, err := FromPages([]layout.PageInput{{Number: 1}, noDims, sparse}).
		WithConfig(cfg).
		IR(context.Background())
	if err != nil {
		t.Fatalf("IR() error: %v", err)
	}

	got := make(map[WarningCode]int)
	for _, w := range warnings {
		got[w.Code] = w.Page
	}
	want := map[WarningCode]int{
		WarningEmptyPage:         1,
		WarningMissingDimensions: 2,
		WarningLowCoverage:       3,
	}
	for code, page := range want {
		if p, ok := got[code]; !ok || p != page {
			t.Errorf("warning %s on page %d missing (got %v)", code, page, warnings)
		}
	}

	formatted := FormatWarnings(warnings)
	if !strings.Contains(formatted, "page 3: coverage 25% (low_coverage)") {
		t.Errorf("FormatWarnings() = %q", formatted)
	}
}

func TestExtractor_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, _, err := FromPages([]layout.PageInput{invoicePage(1)}).WithLogger(logger).IR(context.Background())
	if err != nil {
		t.Fatalf("IR() error: %v", err)
	}
	if !strings.Contains(buf.String(), "analyzed page") || !strings.Contains(buf.String(), "page=1") {
		t.Errorf("log output = %q", buf.String())
	}
}

const pageJSON = `{"pages":[{"page_number":1,"width":1000,"height":1000,"words":[
  {"text":"Total:","bbox":{"x":100,"y":400,"width":80,"height":20},"confidence":0.95},
  {"text":"42.00","bbox":{"x":190,"y":400,"width":70,"height":20},"confidence":0.95}
]}]}`

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.json")
	if err := os.WriteFile(path, []byte(pageJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	ir, _, err := Open(path).IR(context.Background())
	if err != nil {
		t.Fatalf("IR() error: %v", err)
	}
	pairs := ir.KeyValuePairs()
	if len(pairs) != 1 || pairs[0].Key.Text != "Total" || pairs[0].Value.Text != "42.00" {
		t.Errorf("KeyValuePairs = %+v", pairs)
	}

	if _, _, err := Open(filepath.Join(t.TempDir(), "missing.json")).IR(context.Background()); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFromReader(t *testing.T) {
	ext := FromReader(strings.NewReader(pageJSON), format.JSON)

	// The reader is consumed once and shared by derived extractors
	if n, err := ext.PageCount(); err != nil || n != 1 {
		t.Fatalf("PageCount() = %d, %v", n, err)
	}
	chunks, _, err := ext.ExcludeFooters().Chunks(context.Background())
	if err != nil || len(chunks) == 0 {
		t.Errorf("Chunks() = %d chunks, %v", len(chunks), err)
	}
}

func TestWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docground.yaml")
	if err := os.WriteFile(path, []byte("analyzer:\n  detect_tables: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ir, _, err := FromPages([]layout.PageInput{invoicePage(1)}).WithConfigFile(path).IR(context.Background())
	if err != nil {
		t.Fatalf("IR() error: %v", err)
	}
	if ir.TotalTables != 0 {
		t.Errorf("TotalTables = %d with detect_tables off", ir.TotalTables)
	}

	_, _, err = FromPages(nil).WithConfigFile(filepath.Join(dir, "nope.yaml")).Pages(1).IR(context.Background())
	if err == nil {
		t.Error("expected config load error")
	}
}

func TestMust(t *testing.T) {
	if got := Must(3, nil); got != 3 {
		t.Errorf("Must() = %d", got)
	}
	if got := MustResult("ok", []Warning{{Code: WarningEmptyPage}}, nil); got != "ok" {
		t.Errorf("MustResult() = %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Must should panic on error")
		}
	}()
	Must(0, errors.New("boom"))
}
