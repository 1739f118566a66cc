package model

import (
	"strings"
)

// TableCell is one cell of a detected table
type TableCell struct {
	Text       string    `json:"text"`
	Rect       Rectangle `json:"bbox"`
	Row        int       `json:"row"`
	Col        int       `json:"col"`
	RowSpan    int       `json:"row_span"`
	ColSpan    int       `json:"col_span"`
	IsHeader   bool      `json:"is_header"`
	Confidence float64   `json:"confidence"`
}

// Table is a grid of cells reconstructed from a table-like block
type Table struct {
	ID         string      `json:"id"`
	Rect       Rectangle   `json:"bbox"`
	Cells      []TableCell `json:"cells"`
	Rows       int         `json:"rows"`
	Cols       int         `json:"cols"`
	Confidence float64     `json:"confidence"`

	// SourceBlockID is the block the table was built from
	SourceBlockID string `json:"source_block_id,omitempty"`
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return t.Rows
}

// ColCount returns the number of columns
func (t *Table) ColCount() int {
	return t.Cols
}

// GetCell returns the cell at the given row and column (0-indexed), or nil
func (t *Table) GetCell(row, col int) *TableCell {
	for i := range t.Cells {
		if t.Cells[i].Row == row && t.Cells[i].Col == col {
			return &t.Cells[i]
		}
	}
	return nil
}

// Row returns the cells of one row in column order
func (t *Table) Row(row int) []TableCell {
	var out []TableCell
	for _, c := range t.Cells {
		if c.Row == row {
			out = append(out, c)
		}
	}
	return out
}

// GetText renders the table row-major: cells joined by " | ", rows joined
// by newlines
func (t *Table) GetText() string {
	rows := make([]string, 0, t.Rows)
	for r := 0; r < t.Rows; r++ {
		cells := t.Row(r)
		texts := make([]string, 0, len(cells))
		for _, c := range cells {
			texts = append(texts, c.Text)
		}
		rows = append(rows, strings.Join(texts, " | "))
	}
	return strings.Join(rows, "\n")
}

// ToMarkdown converts the table to a markdown pipe table, padding short
// rows to the column count
func (t *Table) ToMarkdown() string {
	if t.Rows == 0 || t.Cols == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(r int) {
		texts := make([]string, t.Cols)
		for _, c := range t.Row(r) {
			if c.Col < t.Cols {
				texts[c.Col] = strings.ReplaceAll(c.Text, "|", "\\|")
			}
		}
		sb.WriteString("| ")
		sb.WriteString(strings.Join(texts, " | "))
		sb.WriteString(" |\n")
	}

	writeRow(0)
	sb.WriteString("|")
	for j := 0; j < t.Cols; j++ {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")
	for r := 1; r < t.Rows; r++ {
		writeRow(r)
	}
	return sb.String()
}
