package model

import "strings"

// Word is a single recognized word. Words come from the external recognizer
// and are never modified by the pipeline.
type Word struct {
	Text       string    `json:"text"`
	Rect       Rectangle `json:"bbox"`
	Confidence float64   `json:"confidence"`
	FontFamily string    `json:"font_family,omitempty"`
	FontSize   float64   `json:"font_size,omitempty"`
}

// WordSource is one recognizer's word list for a page, in that
// recognizer's own coordinate space.
type WordSource struct {
	// Method names the recognizer, e.g. "pdf_native" or "tesseract"
	Method string  `json:"method"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Words  []Word  `json:"words"`
}

// Line is a row of words in reading order
type Line struct {
	Words     []Word    `json:"words"`
	Rect      Rectangle `json:"bbox"`
	Index     int       `json:"index"`
	Alignment Alignment `json:"alignment,omitempty"`
}

// Text joins the line's words with single spaces
func (l Line) Text() string {
	parts := make([]string, 0, len(l.Words))
	for _, w := range l.Words {
		parts = append(parts, w.Text)
	}
	return strings.Join(parts, " ")
}

// AverageFontSize returns the mean font size of words that carry one, or 0
func (l Line) AverageFontSize() float64 {
	var total float64
	var n int
	for _, w := range l.Words {
		if w.FontSize > 0 {
			total += w.FontSize
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// Block is a group of adjacent lines (paragraph, heading, list, ...)
type Block struct {
	ID              string    `json:"id"`
	Lines           []Line    `json:"lines"`
	Rect            Rectangle `json:"bbox"`
	Type            BlockType `json:"type"`
	Confidence      float64   `json:"confidence"`
	ReadingOrder    int       `json:"reading_order"`
	VisualHierarchy int       `json:"visual_hierarchy"`
	SemanticRole    string    `json:"semantic_role,omitempty"`
}

// Text joins the block's lines with newlines
func (b Block) Text() string {
	parts := make([]string, 0, len(b.Lines))
	for _, l := range b.Lines {
		parts = append(parts, l.Text())
	}
	return strings.Join(parts, "\n")
}

// WordCount returns the number of words in the block
func (b Block) WordCount() int {
	n := 0
	for _, l := range b.Lines {
		n += len(l.Words)
	}
	return n
}

// Coverage records how many words each recognizer contributed and how many
// survived reconciliation.
type Coverage struct {
	SourceWords     map[string]int `json:"source_words,omitempty"`
	FinalWords      int            `json:"final_words"`
	CoveragePercent float64        `json:"coverage_percent"`
}

// Page is the layout model of a single page
type Page struct {
	Number int `json:"page_number"` // 1-indexed page number

	// Width and Height are the page dimensions in the recognizer's units,
	// before normalization
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Words                []Word                `json:"words"`
	Lines                []Line                `json:"lines"`
	Blocks               []Block               `json:"blocks"`
	Tables               []Table               `json:"tables"`
	SpatialRelationships []SpatialRelationship `json:"spatial_relationships"`
	SpatialGroups        []SpatialGroup        `json:"spatial_groups"`
	SemanticRegions      []SemanticRegion      `json:"semantic_regions"`
	KeyValuePairs        []KeyValuePair        `json:"key_value_pairs"`
	ReadingFlow          []string              `json:"reading_flow"`
	Coverage             Coverage              `json:"coverage"`
}

// NewPage creates a new page with given dimensions
func NewPage(number int, width, height float64) *Page {
	return &Page{
		Number: number,
		Width:  width,
		Height: height,
	}
}

// Block returns the block with the given id, or nil
func (p *Page) Block(id string) *Block {
	for i := range p.Blocks {
		if p.Blocks[i].ID == id {
			return &p.Blocks[i]
		}
	}
	return nil
}

// Region returns the semantic region of the given kind, or nil
func (p *Page) Region(kind RegionKind) *SemanticRegion {
	for i := range p.SemanticRegions {
		if p.SemanticRegions[i].Kind == kind {
			return &p.SemanticRegions[i]
		}
	}
	return nil
}

// ExtractText concatenates the text of all blocks in reading order
func (p *Page) ExtractText() string {
	var sb strings.Builder
	for _, b := range p.Blocks {
		sb.WriteString(b.Text())
		sb.WriteString("\n")
	}
	return sb.String()
}
