package rag

import (
	"strings"
	"testing"

	"github.com/Pratikdalwadi/docground/model"
)

func textBlock(id string, typ model.BlockType, rect model.Rectangle, lines ...string) model.Block {
	b := model.Block{ID: id, Type: typ, Rect: rect, Confidence: 0.9}
	for _, l := range lines {
		var words []model.Word
		for _, f := range strings.Fields(l) {
			words = append(words, model.Word{Text: f})
		}
		b.Lines = append(b.Lines, model.Line{Words: words})
	}
	return b
}

// samplePage has a header title, a paragraph, a table block, and a footer
func samplePage() *model.Page {
	page := model.NewPage(1, 1000, 1000)
	page.Blocks = []model.Block{
		textBlock("block_1_0", model.BlockHeading, model.NewRectangle(0.1, 0.05, 0.3, 0.03), "ACME Corp"),
		textBlock("block_1_1", model.BlockParagraph, model.NewRectangle(0.1, 0.3, 0.8, 0.06), "Thank you for", "your business."),
		textBlock("block_1_2", model.BlockTable, model.NewRectangle(0.1, 0.5, 0.4, 0.09), "Item Qty", "Bolt 12", "Nut 30"),
		textBlock("block_1_3", model.BlockParagraph, model.NewRectangle(0.45, 0.95, 0.07, 0.02), "Page 1"),
	}
	for i := range page.Blocks {
		page.Blocks[i].ReadingOrder = i
		page.ReadingFlow = append(page.ReadingFlow, page.Blocks[i].ID)
	}
	page.Blocks[0].SemanticRole = "title"

	page.Tables = []model.Table{{
		ID:            "table_1_0",
		Rect:          page.Blocks[2].Rect,
		Rows:          3,
		Cols:          2,
		Confidence:    0.85,
		SourceBlockID: "block_1_2",
		Cells: []model.TableCell{
			{Text: "Item", Row: 0, Col: 0, IsHeader: true}, {Text: "Qty", Row: 0, Col: 1, IsHeader: true},
			{Text: "Bolt", Row: 1, Col: 0}, {Text: "12", Row: 1, Col: 1},
			{Text: "Nut", Row: 2, Col: 0}, {Text: "30", Row: 2, Col: 1},
		},
	}}

	page.SemanticRegions = []model.SemanticRegion{
		{ID: "region_1_header", Kind: model.RegionHeader, Rect: page.Blocks[0].Rect, Confidence: 0.8, BlockIDs: []string{"block_1_0"}},
		{ID: "region_1_main_content", Kind: model.RegionMainContent, Rect: model.UnionAll([]model.Rectangle{page.Blocks[1].Rect, page.Blocks[2].Rect}), Confidence: 0.9, BlockIDs: []string{"block_1_1", "block_1_2"}},
		{ID: "region_1_footer", Kind: model.RegionFooter, Rect: page.Blocks[3].Rect, Confidence: 0.8, BlockIDs: []string{"block_1_3"}},
	}
	return page
}

func TestConverter_ScenarioE(t *testing.T) {
	rect := model.NewRectangle(0.2, 0.4, 0.3, 0.05)
	page := model.NewPage(1, 100, 100)
	page.Blocks = []model.Block{textBlock("block_1_0", model.BlockHeading, rect, "Total Due")}

	chunks := NewConverter().ConvertPage(page, 0)

	var titles []model.TextChunk
	for _, c := range chunks {
		if c.Type == model.ChunkTitle {
			titles = append(titles, c)
		}
	}
	if len(titles) != 1 {
		t.Fatalf("Expected 1 title chunk, got %d", len(titles))
	}
	c := titles[0]
	if c.Text != "Total Due" {
		t.Errorf("Text = %q", c.Text)
	}
	if len(c.Grounding) != 1 {
		t.Fatalf("Expected 1 grounding, got %d", len(c.Grounding))
	}
	want := model.GroundingRectangle{Left: 0.2, Top: 0.4, Right: 0.5, Bottom: 0.45}
	got := c.Grounding[0].Box
	if !approxEq(got.Left, want.Left) || !approxEq(got.Top, want.Top) ||
		!approxEq(got.Right, want.Right) || !approxEq(got.Bottom, want.Bottom) {
		t.Errorf("grounding = %+v, want %+v", got, want)
	}
	if got != rect.Grounding() {
		t.Errorf("grounding = %+v, want block rect in corner form %+v", got, rect.Grounding())
	}
	if c.Grounding[0].PageIndex != 0 {
		t.Errorf("PageIndex = %d", c.Grounding[0].PageIndex)
	}
}

func TestConverter_ChunkOrderAndTypes(t *testing.T) {
	chunks := NewConverter().ConvertPage(samplePage(), 2)

	want := []struct {
		typ    model.ChunkType
		source model.ChunkSource
		id     string
	}{
		{model.ChunkTitle, model.SourceBlock, "block_1_0"},
		{model.ChunkText, model.SourceBlock, "block_1_1"},
		{model.ChunkTable, model.SourceBlock, "block_1_2"},
		{model.ChunkText, model.SourceBlock, "block_1_3"},
		{model.ChunkTable, model.SourceTable, "table_1_0"},
		{model.ChunkHeader, model.SourceRegion, "region_1_header"},
		{model.ChunkText, model.SourceRegion, "region_1_main_content"},
		{model.ChunkFooter, model.SourceRegion, "region_1_footer"},
	}
	if len(chunks) != len(want) {
		t.Fatalf("Expected %d chunks, got %d", len(want), len(chunks))
	}
	for i, w := range want {
		c := chunks[i]
		if c.Type != w.typ || c.Source != w.source || c.SourceID != w.id {
			t.Errorf("chunk %d = %s/%s/%s, want %s/%s/%s", i, c.Type, c.Source, c.SourceID, w.typ, w.source, w.id)
		}
		for _, g := range c.Grounding {
			if g.PageIndex != 2 {
				t.Errorf("chunk %d: PageIndex = %d, want 2", i, g.PageIndex)
			}
		}
		if c.Confidence == nil {
			t.Errorf("chunk %d: missing confidence", i)
		}
	}

	if chunks[0].SemanticRole != "title" {
		t.Errorf("SemanticRole = %q", chunks[0].SemanticRole)
	}
	if chunks[2].Text != "Item Qty\nBolt 12\nNut 30" {
		t.Errorf("table block text = %q", chunks[2].Text)
	}
	if chunks[2].Grounding[0].Box != samplePage().Blocks[2].Rect.Grounding() {
		t.Errorf("table block grounding = %+v", chunks[2].Grounding[0].Box)
	}
	if chunks[4].Text != "Item | Qty\nBolt | 12\nNut | 30" {
		t.Errorf("table text = %q", chunks[4].Text)
	}
	if chunks[6].Text != "Thank you for\nyour business.\nItem Qty\nBolt 12\nNut 30" {
		t.Errorf("region text = %q", chunks[6].Text)
	}
}

func TestConverter_SkipTableBlocks(t *testing.T) {
	config := DefaultConverterConfig()
	config.SkipTableBlocks = true
	config.IncludeRegions = false

	chunks := NewConverterWithConfig(config).ConvertPage(samplePage(), 0)
	var tableChunks int
	for _, c := range chunks {
		if c.SourceID == "block_1_2" {
			t.Errorf("table source block produced a chunk: %+v", c)
		}
		if c.Type == model.ChunkTable {
			tableChunks++
		}
	}
	if tableChunks != 1 {
		t.Errorf("table chunks = %d, want 1", tableChunks)
	}
}

func TestConverter_ExcludeRegions(t *testing.T) {
	config := DefaultConverterConfig()
	config.ExcludeRegions = []model.RegionKind{model.RegionHeader, model.RegionFooter}

	for _, c := range NewConverterWithConfig(config).ConvertPage(samplePage(), 0) {
		switch c.SourceID {
		case "block_1_0", "block_1_3", "region_1_header", "region_1_footer":
			t.Errorf("excluded element %s produced a chunk", c.SourceID)
		}
	}
}

func TestConverter_SkipsEmptyText(t *testing.T) {
	page := model.NewPage(1, 100, 100)
	page.Blocks = []model.Block{
		{ID: "block_1_0", Type: model.BlockParagraph, Lines: []model.Line{{}}},
	}
	page.SemanticRegions = []model.SemanticRegion{
		{ID: "region_1_main_content", Kind: model.RegionMainContent, BlockIDs: []string{"block_1_0"}},
	}
	if chunks := NewConverter().ConvertPage(page, 0); len(chunks) != 0 {
		t.Errorf("Expected no chunks, got %+v", chunks)
	}
}

func TestConverter_Convert(t *testing.T) {
	empty := model.NewPage(2, 100, 100)
	ir := model.NewIR([]*model.Page{samplePage(), empty, samplePage()})

	chunks := NewConverter().Convert(ir)
	if len(chunks) != 16 {
		t.Fatalf("Expected 16 chunks, got %d", len(chunks))
	}
	if chunks[0].Grounding[0].PageIndex != 0 || chunks[15].Grounding[0].PageIndex != 2 {
		t.Error("page indexes should follow IR page position")
	}

	if got := NewConverter().Convert(nil); got != nil {
		t.Errorf("Convert(nil) = %v", got)
	}
}

func TestConverter_NoReadingFlowUsesBlockOrder(t *testing.T) {
	page := samplePage()
	page.ReadingFlow = nil
	chunks := NewConverter().ConvertPage(page, 0)
	if len(chunks) == 0 || chunks[0].SourceID != "block_1_0" {
		t.Errorf("first chunk = %+v", chunks)
	}
}

func TestChunkID(t *testing.T) {
	a := ChunkID(model.SourceBlock, "block_1_0")
	if a != ChunkID(model.SourceBlock, "block_1_0") {
		t.Error("ChunkID is not deterministic")
	}
	if a == ChunkID(model.SourceRegion, "block_1_0") {
		t.Error("different sources must give different ids")
	}
	if a == ChunkID(model.SourceBlock, "block_1_1") {
		t.Error("different elements must give different ids")
	}
	if len(a) != 36 {
		t.Errorf("ChunkID() = %q, want a UUID", a)
	}
}

func TestChunkTypeLookups(t *testing.T) {
	blockTests := []struct {
		in   model.BlockType
		want model.ChunkType
	}{
		{model.BlockHeading, model.ChunkTitle},
		{model.BlockParagraph, model.ChunkText},
		{model.BlockList, model.ChunkList},
		{model.BlockTable, model.ChunkTable},
		{model.BlockImage, model.ChunkFigure},
		{model.BlockCaption, model.ChunkCaption},
		{model.BlockSignature, model.ChunkText},
		{model.BlockType("mystery"), model.ChunkText},
	}
	for _, tt := range blockTests {
		if got := BlockChunkType(tt.in); got != tt.want {
			t.Errorf("BlockChunkType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	regionTests := []struct {
		in   model.RegionKind
		want model.ChunkType
	}{
		{model.RegionHeader, model.ChunkHeader},
		{model.RegionFooter, model.ChunkFooter},
		{model.RegionMainContent, model.ChunkText},
		{model.RegionForm, model.ChunkFormField},
		{model.RegionSidebar, model.ChunkText},
	}
	for _, tt := range regionTests {
		if got := RegionChunkType(tt.in); got != tt.want {
			t.Errorf("RegionChunkType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func approxEq(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
