package rag

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Pratikdalwadi/docground/model"
)

// ExportFormat defines the available export formats
type ExportFormat int

const (
	// ExportFormatJSONL exports as JSON Lines (one JSON object per line)
	ExportFormatJSONL ExportFormat = iota
	// ExportFormatJSON exports as a JSON array
	ExportFormatJSON
	// ExportFormatCSV exports as comma-separated values, one row per grounding
	ExportFormatCSV
	// ExportFormatTSV exports as tab-separated values, one row per grounding
	ExportFormatTSV
	// ExportFormatMarkdown exports the markdown rendering
	ExportFormatMarkdown
)

// String returns a human-readable representation of the export format
func (ef ExportFormat) String() string {
	switch ef {
	case ExportFormatJSONL:
		return "jsonl"
	case ExportFormatJSON:
		return "json"
	case ExportFormatCSV:
		return "csv"
	case ExportFormatTSV:
		return "tsv"
	case ExportFormatMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format
func (ef ExportFormat) FileExtension() string {
	switch ef {
	case ExportFormatJSONL:
		return ".jsonl"
	case ExportFormatJSON:
		return ".json"
	case ExportFormatCSV:
		return ".csv"
	case ExportFormatTSV:
		return ".tsv"
	case ExportFormatMarkdown:
		return ".md"
	default:
		return ".txt"
	}
}

// ParseExportFormat maps a format name ("jsonl", "json", "csv", "tsv",
// "markdown" or "md") to an ExportFormat
func ParseExportFormat(name string) (ExportFormat, error) {
	switch name {
	case "jsonl":
		return ExportFormatJSONL, nil
	case "json":
		return ExportFormatJSON, nil
	case "csv":
		return ExportFormatCSV, nil
	case "tsv":
		return ExportFormatTSV, nil
	case "markdown", "md":
		return ExportFormatMarkdown, nil
	default:
		return 0, fmt.Errorf("unknown export format %q", name)
	}
}

// ExportConfig holds configuration options for export
type ExportConfig struct {
	// Format specifies the export format
	Format ExportFormat

	// PrettyPrint enables indentation for JSON formats
	PrettyPrint bool

	// IncludeHeader includes a header row in CSV/TSV exports
	IncludeHeader bool

	// Markdown controls the markdown format
	Markdown MarkdownOptions
}

// DefaultExportConfig returns sensible defaults for export configuration
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		Format:        ExportFormatJSONL,
		IncludeHeader: true,
		Markdown:      DefaultMarkdownOptions(),
	}
}

// Exporter writes chunk lists in one of the export formats
type Exporter struct {
	config ExportConfig
}

// NewExporter creates a new exporter with default configuration
func NewExporter() *Exporter {
	return &Exporter{
		config: DefaultExportConfig(),
	}
}

// NewExporterWithConfig creates an exporter with custom configuration
func NewExporterWithConfig(config ExportConfig) *Exporter {
	return &Exporter{
		config: config,
	}
}

// Export writes chunks to w
func (e *Exporter) Export(chunks []model.TextChunk, w io.Writer) error {
	switch e.config.Format {
	case ExportFormatJSONL:
		return e.exportJSONL(chunks, w)
	case ExportFormatJSON:
		return e.exportJSON(chunks, w)
	case ExportFormatCSV:
		return e.exportCSV(chunks, w, ',')
	case ExportFormatTSV:
		return e.exportCSV(chunks, w, '\t')
	case ExportFormatMarkdown:
		_, err := io.WriteString(w, ToMarkdownWithOptions(chunks, e.config.Markdown))
		return err
	default:
		return fmt.Errorf("unsupported export format: %v", e.config.Format)
	}
}

// ExportToFile writes chunks to a file
func (e *Exporter) ExportToFile(chunks []model.TextChunk, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := e.Export(chunks, f); err != nil {
		return err
	}
	return f.Close()
}

// ExportToString writes chunks to a string
func (e *Exporter) ExportToString(chunks []model.TextChunk) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(chunks, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// exportJSONL writes one JSON object per line
func (e *Exporter) exportJSONL(chunks []model.TextChunk, w io.Writer) error {
	encoder := json.NewEncoder(w)
	if e.config.PrettyPrint {
		encoder.SetIndent("", "  ")
	}

	for i, chunk := range chunks {
		if err := encoder.Encode(chunk); err != nil {
			return fmt.Errorf("encoding chunk %d: %w", i, err)
		}
	}

	return nil
}

// exportJSON writes chunks as a single JSON array
func (e *Exporter) exportJSON(chunks []model.TextChunk, w io.Writer) error {
	if chunks == nil {
		chunks = []model.TextChunk{}
	}
	encoder := json.NewEncoder(w)
	if e.config.PrettyPrint {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(chunks)
}

var csvColumns = []string{"id", "chunk_type", "page", "left", "top", "right", "bottom", "confidence", "semantic_role", "source_id", "text"}

// exportCSV writes one row per grounding, so a chunk spanning disjoint
// regions takes several rows with the same id
func (e *Exporter) exportCSV(chunks []model.TextChunk, w io.Writer, delimiter rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delimiter

	if e.config.IncludeHeader {
		if err := writer.Write(csvColumns); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, chunk := range chunks {
		confidence := ""
		if chunk.Confidence != nil {
			confidence = formatFloat(*chunk.Confidence)
		}
		for _, g := range chunk.Grounding {
			row := []string{
				chunk.ID,
				string(chunk.Type),
				strconv.Itoa(g.PageIndex),
				formatFloat(g.Box.Left),
				formatFloat(g.Box.Top),
				formatFloat(g.Box.Right),
				formatFloat(g.Box.Bottom),
				confidence,
				chunk.SemanticRole,
				chunk.SourceID,
				chunk.Text,
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("writing chunk %d: %w", i, err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
