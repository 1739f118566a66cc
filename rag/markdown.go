package rag

import (
	"regexp"
	"strings"

	"github.com/Pratikdalwadi/docground/model"
)

// listMarker matches a leading bullet or enumerator on a list line
var listMarker = regexp.MustCompile(`^\s*(?:[•◦▪▫●○■□‣⁃·\-\*–—]|\(?\d+[.\)]|\(?[a-zA-Z][.\)])\s+`)

// MarkdownOptions control markdown rendering of a chunk list
type MarkdownOptions struct {
	// IncludeRegions renders region chunks too. Region text repeats the
	// text of its member blocks, so it is off by default.
	IncludeRegions bool

	// PageBreaks inserts a horizontal rule whenever the page changes
	PageBreaks bool
}

// DefaultMarkdownOptions returns the default rendering options
func DefaultMarkdownOptions() MarkdownOptions {
	return MarkdownOptions{}
}

// ToMarkdown renders chunks in order with default options. The defaults
// skip region chunks, and header regions are the only source of header
// chunks from an analyzed page, so the output carries no level-two
// headings unless IncludeRegions is set.
func ToMarkdown(chunks []model.TextChunk) string {
	return ToMarkdownWithOptions(chunks, DefaultMarkdownOptions())
}

// ToMarkdownWithOptions renders chunks in their original order: titles as
// level-one headings, headers as level-two headings, tables as fenced
// blocks, lists as bullet lines, and everything else as paragraphs. A
// block chunk grounded on the same rectangle as a table chunk is rendered
// once, through the table.
func ToMarkdownWithOptions(chunks []model.TextChunk, opts MarkdownOptions) string {
	var sb strings.Builder
	lastPage := -1
	tables := tableGroundings(chunks)

	for _, c := range chunks {
		if c.Source == model.SourceRegion && !opts.IncludeRegions {
			continue
		}
		if c.Source == model.SourceBlock && c.Type == model.ChunkTable && len(c.Grounding) > 0 && tables[c.Grounding[0]] {
			continue
		}
		text := strings.TrimSpace(c.Text)
		if text == "" {
			continue
		}

		page := chunkPage(c)
		if opts.PageBreaks && lastPage >= 0 && page != lastPage {
			sb.WriteString("---\n\n")
		}
		lastPage = page

		switch c.Type {
		case model.ChunkTitle:
			sb.WriteString("# " + singleLine(text) + "\n\n")
		case model.ChunkHeader:
			sb.WriteString("## " + singleLine(text) + "\n\n")
		case model.ChunkTable:
			sb.WriteString("```\n" + text + "\n```\n\n")
		case model.ChunkList:
			for _, line := range strings.Split(text, "\n") {
				line = strings.TrimSpace(listMarker.ReplaceAllString(line, ""))
				if line != "" {
					sb.WriteString("- " + line + "\n")
				}
			}
			sb.WriteString("\n")
		default:
			sb.WriteString(text + "\n\n")
		}
	}

	if sb.Len() == 0 {
		return ""
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func tableGroundings(chunks []model.TextChunk) map[model.Grounding]bool {
	seen := make(map[model.Grounding]bool)
	for _, c := range chunks {
		if c.Source == model.SourceTable && len(c.Grounding) > 0 {
			seen[c.Grounding[0]] = true
		}
	}
	return seen
}

func chunkPage(c model.TextChunk) int {
	if len(c.Grounding) == 0 {
		return 0
	}
	return c.Grounding[0].PageIndex
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
