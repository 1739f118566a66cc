package tables

import (
	"fmt"
	"math"
	"sort"

	"github.com/Pratikdalwadi/docground/model"
)

// Detector is the interface for table detection algorithms
type Detector interface {
	// Detect finds table-like blocks and returns one table per block
	Detect(blocks []model.Block, pageNumber int) []model.Table

	// Name returns the detector name
	Name() string
}

// Config holds detector configuration. Distances are normalized page units.
type Config struct {
	// MinRows is the minimum number of lines in a table-like block
	// (default: 3)
	MinRows int `yaml:"min_rows"`

	// MinCols is the minimum number of repeated column starts (default: 2)
	MinCols int `yaml:"min_cols"`

	// BucketSize is the rounding granularity for column starts
	// (default: 0.05)
	BucketSize float64 `yaml:"bucket_size"`

	// MinColumnGap is the horizontal whitespace before a word that makes it
	// start a new column (default: 0.02)
	MinColumnGap float64 `yaml:"min_column_gap"`

	// MinColumnRepeat is how many lines must share a column start for it to
	// count (default: 2)
	MinColumnRepeat int `yaml:"min_column_repeat"`

	// Confidence is assigned to every detected table (default: 0.85)
	Confidence float64 `yaml:"confidence"`
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		MinRows:         3,
		MinCols:         2,
		BucketSize:      0.05,
		MinColumnGap:    0.02,
		MinColumnRepeat: 2,
		Confidence:      0.85,
	}
}

// ColumnDetector flags blocks whose lines repeatedly start columns at the
// same horizontal positions
type ColumnDetector struct {
	config Config
}

// NewColumnDetector creates a detector with default configuration
func NewColumnDetector() *ColumnDetector {
	return &ColumnDetector{config: DefaultConfig()}
}

// NewColumnDetectorWithConfig creates a detector with custom configuration
func NewColumnDetectorWithConfig(config Config) *ColumnDetector {
	return &ColumnDetector{config: config}
}

// Name returns the detector name
func (d *ColumnDetector) Name() string {
	return "column"
}

// Detect returns a table for every qualifying block, in block order
func (d *ColumnDetector) Detect(blocks []model.Block, pageNumber int) []model.Table {
	var tables []model.Table
	for _, b := range blocks {
		if !d.IsTableLike(b) {
			continue
		}
		t := d.build(b, fmt.Sprintf("table_%d_%d", pageNumber, len(tables)))
		if len(t.Cells) == 0 {
			continue
		}
		tables = append(tables, t)
	}
	return tables
}

// IsTableLike reports whether the block has enough lines and enough
// repeated column starts
func (d *ColumnDetector) IsTableLike(b model.Block) bool {
	if len(b.Lines) < d.config.MinRows {
		return false
	}
	return len(d.ColumnStarts(b)) >= d.config.MinCols
}

// ColumnStarts returns the column buckets shared by at least
// MinColumnRepeat lines, in ascending order
func (d *ColumnDetector) ColumnStarts(b model.Block) []int {
	counts := make(map[int]int)
	for _, line := range b.Lines {
		seen := make(map[int]bool)
		for _, x := range d.segmentStarts(line) {
			bucket := d.bucket(x)
			if !seen[bucket] {
				seen[bucket] = true
				counts[bucket]++
			}
		}
	}

	var starts []int
	for bucket, n := range counts {
		if n >= d.config.MinColumnRepeat {
			starts = append(starts, bucket)
		}
	}
	sort.Ints(starts)
	return starts
}

// segmentStarts returns the left edge of the first word and of every word
// preceded by a gap of at least MinColumnGap
func (d *ColumnDetector) segmentStarts(line model.Line) []float64 {
	var starts []float64
	for i, w := range line.Words {
		if i == 0 || w.Rect.Left()-line.Words[i-1].Rect.Right() >= d.config.MinColumnGap {
			starts = append(starts, w.Rect.Left())
		}
	}
	return starts
}

func (d *ColumnDetector) bucket(x float64) int {
	if d.config.BucketSize <= 0 {
		return int(math.Round(x * 100))
	}
	return int(math.Round(x / d.config.BucketSize))
}

// build turns every line into a row and every word into a cell. Column
// indices follow word order within the row.
func (d *ColumnDetector) build(b model.Block, id string) model.Table {
	t := model.Table{
		ID:            id,
		Rect:          b.Rect,
		Rows:          len(b.Lines),
		Confidence:    d.config.Confidence,
		SourceBlockID: b.ID,
	}
	for r, line := range b.Lines {
		if len(line.Words) > t.Cols {
			t.Cols = len(line.Words)
		}
		for c, w := range line.Words {
			t.Cells = append(t.Cells, model.TableCell{
				Text:       w.Text,
				Rect:       w.Rect,
				Row:        r,
				Col:        c,
				RowSpan:    1,
				ColSpan:    1,
				IsHeader:   r == 0,
				Confidence: w.Confidence,
			})
		}
	}
	return t
}
