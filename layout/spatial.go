package layout

import (
	"fmt"
	"math"

	"github.com/Pratikdalwadi/docground/model"
)

// SpatialConfig holds configuration for spatial relationship analysis
type SpatialConfig struct {
	// RowTolerance is the largest difference in vertical centers for two
	// blocks to be side by side (default: 0.05)
	RowTolerance float64 `yaml:"row_tolerance"`

	// ColumnTolerance is the largest difference in horizontal centers for
	// two blocks to be stacked (default: 0.05)
	ColumnTolerance float64 `yaml:"column_tolerance"`

	// Confidence is assigned to every directional relationship
	// (default: 0.8)
	Confidence float64 `yaml:"confidence"`

	// ContainmentConfidence is assigned to contains relationships
	// (default: 0.9)
	ContainmentConfidence float64 `yaml:"containment_confidence"`
}

// DefaultSpatialConfig returns sensible default configuration
func DefaultSpatialConfig() SpatialConfig {
	return SpatialConfig{
		RowTolerance:          0.05,
		ColumnTolerance:       0.05,
		Confidence:            0.8,
		ContainmentConfidence: 0.9,
	}
}

// SpatialResult holds the relationships and containment groups of a page
type SpatialResult struct {
	Relationships []model.SpatialRelationship
	Groups        []model.SpatialGroup
}

// SpatialAnalyzer computes pairwise block relationships
type SpatialAnalyzer struct {
	config SpatialConfig
}

// NewSpatialAnalyzer creates a spatial analyzer with default configuration
func NewSpatialAnalyzer() *SpatialAnalyzer {
	return &SpatialAnalyzer{config: DefaultSpatialConfig()}
}

// NewSpatialAnalyzerWithConfig creates a spatial analyzer with custom
// configuration
func NewSpatialAnalyzerWithConfig(config SpatialConfig) *SpatialAnalyzer {
	return &SpatialAnalyzer{config: config}
}

// Analyze relates every unordered pair of blocks once. Pairs whose centers
// share a row get left-of/right-of, pairs sharing a column get
// above/below, and other pairs get nothing. Containment is reported both as
// contains relationships and as one group per container.
func (a *SpatialAnalyzer) Analyze(blocks []model.Block, pageNumber int) SpatialResult {
	var result SpatialResult

	for i := 0; i < len(blocks); i++ {
		for j := i + 1; j < len(blocks); j++ {
			if rel, ok := a.relate(blocks[i], blocks[j]); ok {
				result.Relationships = append(result.Relationships, rel)
			}
		}
	}

	for i, outer := range blocks {
		var members []model.Block
		for j, inner := range blocks {
			if i == j || !outer.Rect.Contains(inner.Rect) {
				continue
			}
			members = append(members, inner)
			result.Relationships = append(result.Relationships, model.SpatialRelationship{
				SourceID:   outer.ID,
				TargetID:   inner.ID,
				Kind:       model.RelContains,
				Confidence: a.config.ContainmentConfidence,
			})
		}
		if len(members) == 0 {
			continue
		}

		ids := make([]string, len(members))
		for k, m := range members {
			ids[k] = m.ID
		}
		result.Groups = append(result.Groups, model.SpatialGroup{
			ID:          fmt.Sprintf("group_%d_%d", pageNumber, len(result.Groups)),
			ContainerID: outer.ID,
			MemberIDs:   ids,
			Kind:        groupKind(members),
			Rect:        outer.Rect,
		})
	}

	return result
}

func (a *SpatialAnalyzer) relate(first, second model.Block) (model.SpatialRelationship, bool) {
	c1, c2 := first.Rect.Center(), second.Rect.Center()
	dist := c1.Distance(c2)
	rel := model.SpatialRelationship{
		SourceID:   first.ID,
		TargetID:   second.ID,
		Confidence: a.config.Confidence,
		Distance:   &dist,
	}

	switch {
	case math.Abs(c1.Y-c2.Y) < a.config.RowTolerance:
		rel.Kind = model.RelLeftOf
		if c1.X > c2.X {
			rel.Kind = model.RelRightOf
		}
	case math.Abs(c1.X-c2.X) < a.config.ColumnTolerance:
		rel.Kind = model.RelAbove
		if c1.Y > c2.Y {
			rel.Kind = model.RelBelow
		}
	default:
		return model.SpatialRelationship{}, false
	}
	return rel, true
}

func groupKind(members []model.Block) model.GroupKind {
	allSingle := true
	for _, m := range members {
		if m.Type == model.BlockTable {
			return model.GroupTable
		}
		if len(m.Lines) != 1 {
			allSingle = false
		}
	}
	if allSingle {
		return model.GroupGroup
	}
	return model.GroupSection
}
