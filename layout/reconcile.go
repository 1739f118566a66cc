package layout

import (
	"math"
	"strings"

	"golang.org/x/text/cases"

	"github.com/Pratikdalwadi/docground/model"
)

// ReconcileConfig holds configuration for merging word sources
type ReconcileConfig struct {
	// DuplicateIoU is the intersection-over-union above which two words are
	// candidates for being the same word (default: 0.7)
	DuplicateIoU float64 `yaml:"duplicate_iou"`

	// DuplicateSimilarity is the token Jaccard similarity above which two
	// overlapping words are treated as duplicates (default: 0.8)
	DuplicateSimilarity float64 `yaml:"duplicate_similarity"`

	// MinConfidence drops words below this confidence (default: 0)
	MinConfidence float64 `yaml:"min_confidence"`
}

// DefaultReconcileConfig returns sensible default configuration
func DefaultReconcileConfig() ReconcileConfig {
	return ReconcileConfig{
		DuplicateIoU:        0.7,
		DuplicateSimilarity: 0.8,
		MinConfidence:       0,
	}
}

// ReconcileResult is the merged word list of a page and its coverage
type ReconcileResult struct {
	Words    []model.Word
	Coverage model.Coverage

	// Duplicates is the number of words dropped as duplicates
	Duplicates int
}

// Reconciler merges the word lists of several recognizers for one page
type Reconciler struct {
	config     ReconcileConfig
	normalizer *Normalizer
}

// NewReconciler creates a reconciler with default configuration
func NewReconciler() *Reconciler {
	return NewReconcilerWithConfig(DefaultReconcileConfig())
}

// NewReconcilerWithConfig creates a reconciler with custom configuration
func NewReconcilerWithConfig(config ReconcileConfig) *Reconciler {
	return &Reconciler{
		config:     config,
		normalizer: NewNormalizer(),
	}
}

// Reconcile normalizes every source with its own dimensions, drops empty
// and low-confidence words, removes cross-source duplicates and computes
// coverage. Source order is preserved for surviving words.
func (r *Reconciler) Reconcile(sources []model.WordSource) ReconcileResult {
	counts := make(map[string]int, len(sources))
	var kept []model.Word
	duplicates := 0

	for _, src := range sources {
		method := src.Method
		if method == "" {
			method = "unknown"
		}
		counts[method] += len(src.Words)

		for _, w := range r.normalizer.NormalizeSource(src) {
			if w.Text == "" || w.Confidence < r.config.MinConfidence {
				continue
			}
			if idx := r.findDuplicate(kept, w); idx >= 0 {
				duplicates++
				if w.Confidence > kept[idx].Confidence {
					kept[idx] = w
				}
				continue
			}
			kept = append(kept, w)
		}
	}

	maxSource := 0
	for _, n := range counts {
		maxSource = max(maxSource, n)
	}
	denom := math.Max(float64(maxSource), 1)
	percent := math.Min(100, float64(len(kept))/denom*100)

	return ReconcileResult{
		Words: kept,
		Coverage: model.Coverage{
			SourceWords:     counts,
			FinalWords:      len(kept),
			CoveragePercent: percent,
		},
		Duplicates: duplicates,
	}
}

func (r *Reconciler) findDuplicate(kept []model.Word, w model.Word) int {
	for i, k := range kept {
		if k.Rect.IoU(w.Rect) > r.config.DuplicateIoU &&
			TextSimilarity(k.Text, w.Text) > r.config.DuplicateSimilarity {
			return i
		}
	}
	return -1
}

// TextSimilarity returns the Jaccard similarity of the case-folded
// whitespace tokens of a and b. Empty input scores 0.
func TextSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	fold := cases.Fold()
	set1 := tokenSet(fold.String(a))
	set2 := tokenSet(fold.String(b))
	if len(set1) == 0 && len(set2) == 0 {
		return 1
	}

	inter := 0
	for tok := range set1 {
		if set2[tok] {
			inter++
		}
	}
	union := len(set1) + len(set2) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, f := range strings.Fields(s) {
		set[f] = true
	}
	return set
}
