package layout

import (
	"sort"

	"github.com/Pratikdalwadi/docground/model"
	"github.com/Pratikdalwadi/docground/tables"
)

// AnalyzerConfig holds configuration for every stage of page analysis.
// Each stage has its own sub-configuration, and there are flags to turn
// optional stages off.
type AnalyzerConfig struct {
	ReconcileConfig ReconcileConfig `yaml:"reconcile"`
	LineConfig      LineConfig      `yaml:"lines"`
	BlockConfig     BlockConfig     `yaml:"blocks"`
	TableConfig     tables.Config   `yaml:"tables"`
	SpatialConfig   SpatialConfig   `yaml:"spatial"`
	RegionConfig    RegionConfig    `yaml:"regions"`
	KeyValueConfig  KeyValueConfig  `yaml:"key_values"`

	// DetectTables enables table detection
	DetectTables bool `yaml:"detect_tables"`

	// DetectRelationships enables spatial relationship analysis
	DetectRelationships bool `yaml:"detect_relationships"`

	// DetectKeyValues enables key-value extraction
	DetectKeyValues bool `yaml:"detect_key_values"`
}

// DefaultAnalyzerConfig returns a configuration with all stages enabled
// and default thresholds
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		ReconcileConfig:     DefaultReconcileConfig(),
		LineConfig:          DefaultLineConfig(),
		BlockConfig:         DefaultBlockConfig(),
		TableConfig:         tables.DefaultConfig(),
		SpatialConfig:       DefaultSpatialConfig(),
		RegionConfig:        DefaultRegionConfig(),
		KeyValueConfig:      DefaultKeyValueConfig(),
		DetectTables:        true,
		DetectRelationships: true,
		DetectKeyValues:     true,
	}
}

// PageInput is everything the analyzer needs for one page
type PageInput struct {
	// Number is the 1-indexed page number
	Number int

	// Sources are the recognizer outputs for the page. The first source's
	// dimensions become the page dimensions.
	Sources []model.WordSource
}

// Analyzer runs the full reconstruction pipeline on one page at a time.
// It holds only configuration, so one Analyzer may be shared by
// goroutines processing different pages.
type Analyzer struct {
	config     AnalyzerConfig
	reconciler *Reconciler
	lines      *LineDetector
	blocks     *BlockDetector
	tables     tables.Detector
	spatial    *SpatialAnalyzer
	regions    *RegionDetector
	keyValues  *KeyValueExtractor
}

// NewAnalyzer creates an analyzer with default configuration
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(DefaultAnalyzerConfig())
}

// NewAnalyzerWithConfig creates an analyzer with custom configuration
func NewAnalyzerWithConfig(config AnalyzerConfig) *Analyzer {
	return &Analyzer{
		config:     config,
		reconciler: NewReconcilerWithConfig(config.ReconcileConfig),
		lines:      NewLineDetectorWithConfig(config.LineConfig),
		blocks:     NewBlockDetectorWithConfig(config.BlockConfig),
		tables:     tables.NewColumnDetectorWithConfig(config.TableConfig),
		spatial:    NewSpatialAnalyzerWithConfig(config.SpatialConfig),
		regions:    NewRegionDetectorWithConfig(config.RegionConfig),
		keyValues:  NewKeyValueExtractorWithConfig(config.KeyValueConfig),
	}
}

// WithTableDetector replaces the table detector
func (a *Analyzer) WithTableDetector(d tables.Detector) *Analyzer {
	a.tables = d
	return a
}

// Config returns the analyzer configuration
func (a *Analyzer) Config() AnalyzerConfig {
	return a.config
}

// Analyze builds the page model for one page. It never fails: missing
// dimensions give zero rectangles and an empty word list gives an empty
// but valid page.
func (a *Analyzer) Analyze(in PageInput) *model.Page {
	var width, height float64
	if len(in.Sources) > 0 {
		width, height = in.Sources[0].Width, in.Sources[0].Height
	}
	page := model.NewPage(in.Number, width, height)

	// Step 1: Normalize and merge word sources
	rec := a.reconciler.Reconcile(in.Sources)
	page.Words = rec.Words
	page.Coverage = rec.Coverage

	// Step 2: Lines
	page.Lines = a.lines.Detect(page.Words)

	// Step 3: Blocks
	page.Blocks = a.blocks.Detect(page.Lines, page.Number)

	// Step 4: Tables
	if a.config.DetectTables && a.tables != nil {
		page.Tables = a.tables.Detect(page.Blocks, page.Number)
		markTableBlocks(page)
	}

	// Step 5: Spatial relationships
	if a.config.DetectRelationships {
		spatial := a.spatial.Analyze(page.Blocks, page.Number)
		page.SpatialRelationships = spatial.Relationships
		page.SpatialGroups = spatial.Groups
	}

	// Step 6: Semantic regions
	page.SemanticRegions = a.regions.Detect(page.Blocks, page.Number)

	// Step 7: Key-value pairs
	if a.config.DetectKeyValues {
		page.KeyValuePairs = a.keyValues.Extract(page.Blocks)
	}

	page.ReadingFlow = ReadingFlow(page.Blocks)
	return page
}

// ReadingFlow returns block ids ordered by reading order
func ReadingFlow(blocks []model.Block) []string {
	ordered := make([]model.Block, len(blocks))
	copy(ordered, blocks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ReadingOrder < ordered[j].ReadingOrder
	})
	ids := make([]string, len(ordered))
	for i, b := range ordered {
		ids[i] = b.ID
	}
	return ids
}

func markTableBlocks(page *model.Page) {
	for _, t := range page.Tables {
		if b := page.Block(t.SourceBlockID); b != nil {
			b.Type = model.BlockTable
		}
	}
}
