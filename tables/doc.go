// Package tables reconstructs table grids from layout blocks.
//
// A block is table-like when it has at least [Config.MinRows] lines and its
// lines repeatedly start text runs at the same horizontal positions. Start
// positions are the first word of a line and any word preceded by a wide
// gap, rounded into buckets of [Config.BucketSize]:
//
//	detector := tables.NewColumnDetector()
//	found := detector.Detect(page.Blocks, page.Number)
//
// Each qualifying block becomes one [model.Table]: lines become rows and
// words become cells with column indices taken from their order in the row.
// The first row is flagged as the header. Table confidence is the fixed
// [Config.Confidence]; it is not derived from alignment strength.
package tables
