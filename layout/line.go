package layout

import (
	"math"
	"sort"

	"github.com/Pratikdalwadi/docground/model"
)

// LineConfig holds configuration for line clustering. All distances are in
// normalized page units.
type LineConfig struct {
	// VerticalThreshold is the largest difference between a word's vertical
	// center and the running line center for the word to join the line
	// (default: 0.015, i.e. 1.5% of page height)
	VerticalThreshold float64 `yaml:"vertical_threshold"`

	// AlignmentTolerance is how far a line edge or center may sit from the
	// page's content margins or content center and still count as aligned
	// to them (default: 0.02)
	AlignmentTolerance float64 `yaml:"alignment_tolerance"`

	// JustificationThreshold is the minimum ratio of a line's width to the
	// widest line on the page for the line to count as justified
	// (default: 0.9)
	JustificationThreshold float64 `yaml:"justification_threshold"`
}

// DefaultLineConfig returns sensible default configuration
func DefaultLineConfig() LineConfig {
	return LineConfig{
		VerticalThreshold:      0.015,
		AlignmentTolerance:     0.02,
		JustificationThreshold: 0.9,
	}
}

// LineDetector groups normalized words into reading-order lines
type LineDetector struct {
	config LineConfig
}

// NewLineDetector creates a new line detector with default configuration
func NewLineDetector() *LineDetector {
	return &LineDetector{
		config: DefaultLineConfig(),
	}
}

// NewLineDetectorWithConfig creates a line detector with custom configuration
func NewLineDetectorWithConfig(config LineConfig) *LineDetector {
	return &LineDetector{
		config: config,
	}
}

// Detect clusters words into lines. Lines are returned top to bottom with
// their words sorted left to right; empty input gives an empty result.
func (d *LineDetector) Detect(words []model.Word) []model.Line {
	if len(words) == 0 {
		return nil
	}

	// Step 1: Sort by vertical center, then horizontal position
	sorted := make([]model.Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		ci, cj := sorted[i].Rect.Center(), sorted[j].Rect.Center()
		if ci.Y != cj.Y {
			return ci.Y < cj.Y
		}
		return sorted[i].Rect.X < sorted[j].Rect.X
	})

	// Step 2: Scan, starting a new line when the center drifts too far
	var groups [][]model.Word
	var current []model.Word
	var centerSum float64

	for _, w := range sorted {
		cy := w.Rect.Center().Y
		if len(current) > 0 {
			ref := centerSum / float64(len(current))
			if math.Abs(cy-ref) > d.config.VerticalThreshold {
				groups = append(groups, current)
				current = nil
				centerSum = 0
			}
		}
		current = append(current, w)
		centerSum += cy
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	// Step 3: Build lines
	lines := make([]model.Line, 0, len(groups))
	for _, g := range groups {
		sort.SliceStable(g, func(i, j int) bool {
			return g[i].Rect.X < g[j].Rect.X
		})
		rects := make([]model.Rectangle, len(g))
		for i, w := range g {
			rects[i] = w.Rect
		}
		line := model.Line{
			Words: g,
			Rect:  model.UnionAll(rects),
			Index: len(lines),
		}
		lines = append(lines, line)
	}

	d.detectAlignment(lines)
	return lines
}

// detectAlignment tags each line relative to the content margins of the
// page's lines
func (d *LineDetector) detectAlignment(lines []model.Line) {
	if len(lines) == 0 {
		return
	}

	leftMargin := lines[0].Rect.Left()
	rightMargin := lines[0].Rect.Right()
	maxWidth := lines[0].Rect.Width
	for _, line := range lines[1:] {
		leftMargin = math.Min(leftMargin, line.Rect.Left())
		rightMargin = math.Max(rightMargin, line.Rect.Right())
		maxWidth = math.Max(maxWidth, line.Rect.Width)
	}
	contentCenter := (leftMargin + rightMargin) / 2
	tolerance := d.config.AlignmentTolerance

	for i := range lines {
		r := lines[i].Rect

		if maxWidth > 0 && r.Width/maxWidth >= d.config.JustificationThreshold {
			lines[i].Alignment = model.AlignJustify
			continue
		}

		leftAligned := math.Abs(r.Left()-leftMargin) <= tolerance
		rightAligned := math.Abs(r.Right()-rightMargin) <= tolerance
		centerAligned := math.Abs(r.Center().X-contentCenter) <= tolerance

		switch {
		case centerAligned && !leftAligned && !rightAligned:
			lines[i].Alignment = model.AlignCenter
		case rightAligned && !leftAligned:
			lines[i].Alignment = model.AlignRight
		case leftAligned:
			lines[i].Alignment = model.AlignLeft
		case r.Left()-leftMargin > rightMargin-r.Right():
			// indented from both margins: nearest margin wins
			lines[i].Alignment = model.AlignRight
		default:
			lines[i].Alignment = model.AlignLeft
		}
	}
}

// AlignmentsCompatible reports whether two lines may share a block. A
// justified paragraph's short last line reads as left aligned, so left and
// justify are compatible.
func AlignmentsCompatible(a, b model.Alignment) bool {
	if a == b {
		return true
	}
	isLeftish := func(x model.Alignment) bool {
		return x == model.AlignLeft || x == model.AlignJustify
	}
	return isLeftish(a) && isLeftish(b)
}
