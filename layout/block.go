package layout

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/Pratikdalwadi/docground/model"
)

// RoleRule assigns Role to a block whose text contains any of Keywords
type RoleRule struct {
	Role     string   `yaml:"role"`
	Keywords []string `yaml:"keywords"`
}

// BlockConfig holds configuration for block segmentation and
// classification
type BlockConfig struct {
	// GapFactor is the largest vertical gap between consecutive lines, as a
	// multiple of the block's average line height, for the lines to share a
	// block (default: 1.5)
	GapFactor float64 `yaml:"gap_factor"`

	// MinHorizontalOverlap is the minimum ratio of horizontal overlap to the
	// narrower line's width (default: 0.3)
	MinHorizontalOverlap float64 `yaml:"min_horizontal_overlap"`

	// MatchAlignment requires consecutive lines to have compatible
	// alignment (default: true)
	MatchAlignment bool `yaml:"match_alignment"`

	// MaxHeadingLength is the longest single-line text classified as a
	// heading (default: 50 characters)
	MaxHeadingLength int `yaml:"max_heading_length"`

	// HeadingFontSize is the average font size at or above which a block is
	// a heading regardless of length (default: 16)
	HeadingFontSize float64 `yaml:"heading_font_size"`

	// ListPatterns match the first word of list blocks
	ListPatterns []string `yaml:"list_patterns"`

	// MaxHierarchyLevel caps the visual hierarchy level (default: 5)
	MaxHierarchyLevel int `yaml:"max_hierarchy_level"`

	// RoleRules are checked in order against the lower-cased block text
	RoleRules []RoleRule `yaml:"role_rules"`

	// HeadingRole is assigned to headings no rule matched (default: "title")
	HeadingRole string `yaml:"heading_role"`

	// DefaultRole is assigned when nothing else matched (default: "content")
	DefaultRole string `yaml:"default_role"`
}

// DefaultBlockConfig returns sensible default configuration
func DefaultBlockConfig() BlockConfig {
	return BlockConfig{
		GapFactor:            1.5,
		MinHorizontalOverlap: 0.3,
		MatchAlignment:       true,
		MaxHeadingLength:     50,
		HeadingFontSize:      16,
		ListPatterns: []string{
			`^[•◦▪▫●○■□‣⁃·\-\*–—]$`,
			`^\(?\d+[.\)]$`,
			`^\(?[a-zA-Z][.\)]$`,
			`^\(?[ivxlcdmIVXLCDM]+[.\)]$`,
		},
		MaxHierarchyLevel: 5,
		RoleRules: []RoleRule{
			{Role: "amount", Keywords: []string{"total", "amount"}},
			{Role: "date", Keywords: []string{"date"}},
			{Role: "address", Keywords: []string{"address"}},
			{Role: "invoice_number", Keywords: []string{"invoice"}},
		},
		HeadingRole: "title",
		DefaultRole: "content",
	}
}

// BlockDetector segments lines into blocks and classifies them
type BlockDetector struct {
	config       BlockConfig
	listPatterns []*regexp.Regexp
}

// NewBlockDetector creates a new block detector with default configuration
func NewBlockDetector() *BlockDetector {
	return NewBlockDetectorWithConfig(DefaultBlockConfig())
}

// NewBlockDetectorWithConfig creates a block detector with custom
// configuration. List patterns that fail to compile are ignored.
func NewBlockDetectorWithConfig(config BlockConfig) *BlockDetector {
	d := &BlockDetector{config: config}
	for _, p := range config.ListPatterns {
		if re, err := regexp.Compile(p); err == nil {
			d.listPatterns = append(d.listPatterns, re)
		}
	}
	return d
}

// Detect groups lines into blocks for the given page number. Every line
// ends up in exactly one block, and block order follows line order.
func (d *BlockDetector) Detect(lines []model.Line, pageNumber int) []model.Block {
	if len(lines) == 0 {
		return nil
	}

	var groups [][]model.Line
	current := []model.Line{lines[0]}

	for _, candidate := range lines[1:] {
		if d.belongs(current, candidate) {
			current = append(current, candidate)
			continue
		}
		groups = append(groups, current)
		current = []model.Line{candidate}
	}
	groups = append(groups, current)

	blocks := make([]model.Block, 0, len(groups))
	for _, g := range groups {
		blocks = append(blocks, d.buildBlock(g, pageNumber, len(blocks)))
	}
	return blocks
}

// belongs decides whether candidate continues the block made of current
func (d *BlockDetector) belongs(current []model.Line, candidate model.Line) bool {
	last := current[len(current)-1]

	var heightSum float64
	for _, l := range current {
		heightSum += l.Rect.Height
	}
	avgHeight := heightSum / float64(len(current))

	gap := candidate.Rect.Top() - last.Rect.Bottom()
	if gap >= d.config.GapFactor*avgHeight {
		return false
	}

	minWidth := math.Min(last.Rect.Width, candidate.Rect.Width)
	if minWidth <= 0 {
		return false
	}
	if last.Rect.HorizontalOverlap(candidate.Rect)/minWidth <= d.config.MinHorizontalOverlap {
		return false
	}

	if d.config.MatchAlignment && !AlignmentsCompatible(last.Alignment, candidate.Alignment) {
		return false
	}
	return true
}

func (d *BlockDetector) buildBlock(lines []model.Line, pageNumber, index int) model.Block {
	rects := make([]model.Rectangle, len(lines))
	var confSum float64
	var words int
	for i, l := range lines {
		rects[i] = l.Rect
		for _, w := range l.Words {
			confSum += w.Confidence
			words++
		}
	}

	block := model.Block{
		ID:           fmt.Sprintf("block_%d_%d", pageNumber, index),
		Lines:        lines,
		Rect:         model.UnionAll(rects),
		ReadingOrder: index,
	}
	if words > 0 {
		block.Confidence = confSum / float64(words)
	}
	block.Type = d.Classify(block)
	block.VisualHierarchy = d.hierarchyLevel(block.Rect)
	block.SemanticRole = d.Role(block)
	return block
}

// Classify returns the block type: heading, then list, then paragraph
func (d *BlockDetector) Classify(block model.Block) model.BlockType {
	if len(block.Lines) == 0 {
		return model.BlockParagraph
	}

	if len(block.Lines) == 1 && len([]rune(block.Text())) <= d.config.MaxHeadingLength {
		return model.BlockHeading
	}
	if d.config.HeadingFontSize > 0 && averageFontSize(block) >= d.config.HeadingFontSize {
		return model.BlockHeading
	}

	first := block.Lines[0]
	if len(first.Words) > 0 {
		for _, re := range d.listPatterns {
			if re.MatchString(first.Words[0].Text) {
				return model.BlockList
			}
		}
	}

	return model.BlockParagraph
}

// Role guesses the semantic role of a block from keywords in its text
func (d *BlockDetector) Role(block model.Block) string {
	text := strings.ToLower(block.Text())
	for _, rule := range d.config.RoleRules {
		for _, kw := range rule.Keywords {
			if kw != "" && strings.Contains(text, strings.ToLower(kw)) {
				return rule.Role
			}
		}
	}
	if block.Type == model.BlockHeading && d.config.HeadingRole != "" {
		return d.config.HeadingRole
	}
	return d.config.DefaultRole
}

// hierarchyLevel maps the block's top edge to 1 (top of page) through
// MaxHierarchyLevel
func (d *BlockDetector) hierarchyLevel(r model.Rectangle) int {
	maxLevel := d.config.MaxHierarchyLevel
	if maxLevel < 1 {
		maxLevel = 1
	}
	level := int(math.Floor(r.Y*float64(maxLevel))) + 1
	if level > maxLevel {
		level = maxLevel
	}
	if level < 1 {
		level = 1
	}
	return level
}

func averageFontSize(block model.Block) float64 {
	var total float64
	var n int
	for _, l := range block.Lines {
		for _, w := range l.Words {
			if w.FontSize > 0 {
				total += w.FontSize
				n++
			}
		}
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}
