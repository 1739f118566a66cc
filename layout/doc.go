// Package layout reconstructs the structure of a page from recognized
// words.
//
// Words arrive from an external recognizer in its own coordinate space.
// This package normalizes them to the unit square and rebuilds lines,
// blocks, spatial relationships, semantic regions and key-value pairs.
//
// # Page Analysis
//
// The [Analyzer] runs every stage in order for one page:
//
//	analyzer := layout.NewAnalyzer()
//	page := analyzer.Analyze(layout.PageInput{
//	    Number:  1,
//	    Sources: []model.WordSource{{Method: "tesseract", Width: 2480, Height: 3508, Words: words}},
//	})
//
// Analysis never fails. Missing page dimensions produce zero rectangles and
// an empty word list produces an empty page.
//
// # Detectors
//
// Each stage is usable on its own:
//
//   - [Normalizer] - rescales rectangles into [0,1]
//   - [Reconciler] - merges word sources and drops duplicates
//   - [LineDetector] - clusters words into lines by vertical center
//   - [BlockDetector] - groups lines into blocks and classifies them
//   - [SpatialAnalyzer] - left-of/above relationships and containment
//   - [RegionDetector] - header, footer and main content bands
//   - [KeyValueExtractor] - "label: value" pairs
//
// Table detection lives in the tables package.
//
// # Configuration
//
// Thresholds and keyword lists are configuration, not code:
//
//	config := layout.DefaultAnalyzerConfig()
//	config.LineConfig.VerticalThreshold = 0.01
//	config.BlockConfig.MaxHeadingLength = 40
//	analyzer := layout.NewAnalyzerWithConfig(config)
package layout
