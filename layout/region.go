package layout

import (
	"fmt"

	"github.com/Pratikdalwadi/docground/model"
)

// RegionConfig holds configuration for semantic region detection
type RegionConfig struct {
	// HeaderBand is the fraction of page height, from the top, in which a
	// block's top edge must lie to belong to the header (default: 0.2)
	HeaderBand float64 `yaml:"header_band"`

	// FooterBand is the fraction of page height past which a block's bottom
	// edge must lie to belong to the footer (default: 0.85)
	FooterBand float64 `yaml:"footer_band"`

	HeaderConfidence float64 `yaml:"header_confidence"`
	FooterConfidence float64 `yaml:"footer_confidence"`
	MainConfidence   float64 `yaml:"main_confidence"`
}

// DefaultRegionConfig returns sensible default configuration
func DefaultRegionConfig() RegionConfig {
	return RegionConfig{
		HeaderBand:       0.2,
		FooterBand:       0.85,
		HeaderConfidence: 0.8,
		FooterConfidence: 0.8,
		MainConfidence:   0.9,
	}
}

// RegionDetector partitions a page's blocks into header, footer and main
// content by vertical band
type RegionDetector struct {
	config RegionConfig
}

// NewRegionDetector creates a region detector with default configuration
func NewRegionDetector() *RegionDetector {
	return &RegionDetector{config: DefaultRegionConfig()}
}

// NewRegionDetectorWithConfig creates a region detector with custom
// configuration
func NewRegionDetectorWithConfig(config RegionConfig) *RegionDetector {
	return &RegionDetector{config: config}
}

// Detect returns up to three regions in header, main content, footer order.
// Each block lands in exactly one region; a block reaching into both bands
// counts as header. Empty bands are omitted.
func (d *RegionDetector) Detect(blocks []model.Block, pageNumber int) []model.SemanticRegion {
	var header, footer, main []model.Block
	for _, b := range blocks {
		switch {
		case b.Rect.Top() < d.config.HeaderBand:
			header = append(header, b)
		case b.Rect.Bottom() > d.config.FooterBand:
			footer = append(footer, b)
		default:
			main = append(main, b)
		}
	}

	var regions []model.SemanticRegion
	add := func(kind model.RegionKind, members []model.Block, confidence float64) {
		if len(members) == 0 {
			return
		}
		ids := make([]string, len(members))
		rects := make([]model.Rectangle, len(members))
		for i, m := range members {
			ids[i] = m.ID
			rects[i] = m.Rect
		}
		regions = append(regions, model.SemanticRegion{
			ID:         fmt.Sprintf("region_%d_%s", pageNumber, kind),
			Kind:       kind,
			Rect:       model.UnionAll(rects),
			Confidence: confidence,
			BlockIDs:   ids,
		})
	}

	add(model.RegionHeader, header, d.config.HeaderConfidence)
	add(model.RegionMainContent, main, d.config.MainConfidence)
	add(model.RegionFooter, footer, d.config.FooterConfidence)
	return regions
}
