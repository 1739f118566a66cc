package model

import "sort"

// IR is the intermediate representation of a whole document: its pages in
// order plus aggregate metrics
type IR struct {
	Pages             []*Page  `json:"pages"`
	TotalPages        int      `json:"total_pages"`
	TotalWords        int      `json:"total_words"`
	TotalLines        int      `json:"total_lines"`
	TotalBlocks       int      `json:"total_blocks"`
	TotalTables       int      `json:"total_tables"`
	OverallCoverage   float64  `json:"overall_coverage"`
	ExtractionMethods []string `json:"extraction_methods,omitempty"`
}

// NewIR builds an IR from pages and computes its aggregate metrics
func NewIR(pages []*Page) *IR {
	ir := &IR{Pages: pages}
	ir.Recount()
	return ir
}

// Recount recomputes the aggregate metrics from the pages
func (d *IR) Recount() {
	d.TotalPages = len(d.Pages)
	d.TotalWords, d.TotalLines, d.TotalBlocks, d.TotalTables = 0, 0, 0, 0
	d.OverallCoverage = 0
	d.ExtractionMethods = nil

	seen := make(map[string]bool)
	var coverage float64
	for _, p := range d.Pages {
		d.TotalWords += len(p.Words)
		d.TotalLines += len(p.Lines)
		d.TotalBlocks += len(p.Blocks)
		d.TotalTables += len(p.Tables)
		coverage += p.Coverage.CoveragePercent
		for _, m := range sortedKeys(p.Coverage.SourceWords) {
			if !seen[m] {
				seen[m] = true
				d.ExtractionMethods = append(d.ExtractionMethods, m)
			}
		}
	}
	if len(d.Pages) > 0 {
		d.OverallCoverage = coverage / float64(len(d.Pages))
	}
}

// GetPage returns a page by number (1-indexed)
func (d *IR) GetPage(number int) *Page {
	for _, p := range d.Pages {
		if p.Number == number {
			return p
		}
	}
	return nil
}

// PageCount returns the total number of pages
func (d *IR) PageCount() int {
	return len(d.Pages)
}

// ExtractText returns all block text, pages separated by blank lines
func (d *IR) ExtractText() string {
	var text string
	for _, page := range d.Pages {
		text += page.ExtractText() + "\n"
	}
	return text
}

// ExtractTables returns all tables from all pages
func (d *IR) ExtractTables() []Table {
	var tables []Table
	for _, page := range d.Pages {
		tables = append(tables, page.Tables...)
	}
	return tables
}

// KeyValuePairs returns the key-value pairs of every page
func (d *IR) KeyValuePairs() []KeyValuePair {
	var pairs []KeyValuePair
	for _, page := range d.Pages {
		pairs = append(pairs, page.KeyValuePairs...)
	}
	return pairs
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
