package rag

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Pratikdalwadi/docground/model"
)

// chunkNamespace seeds the name-based chunk ids
var chunkNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/Pratikdalwadi/docground/chunk"))

// blockChunkTypes maps block types to chunk types. Unlisted types become
// text chunks.
var blockChunkTypes = map[model.BlockType]model.ChunkType{
	model.BlockHeading:   model.ChunkTitle,
	model.BlockParagraph: model.ChunkText,
	model.BlockList:      model.ChunkList,
	model.BlockTable:     model.ChunkTable,
	model.BlockImage:     model.ChunkFigure,
	model.BlockHeader:    model.ChunkHeader,
	model.BlockFooter:    model.ChunkFooter,
	model.BlockCaption:   model.ChunkCaption,
	model.BlockFormField: model.ChunkFormField,
}

// regionChunkTypes maps region kinds to chunk types. Unlisted kinds become
// text chunks.
var regionChunkTypes = map[model.RegionKind]model.ChunkType{
	model.RegionHeader:      model.ChunkHeader,
	model.RegionFooter:      model.ChunkFooter,
	model.RegionMainContent: model.ChunkText,
	model.RegionTable:       model.ChunkTable,
	model.RegionFigure:      model.ChunkFigure,
	model.RegionForm:        model.ChunkFormField,
}

// BlockChunkType returns the chunk type for a block type
func BlockChunkType(t model.BlockType) model.ChunkType {
	if ct, ok := blockChunkTypes[t]; ok {
		return ct
	}
	return model.ChunkText
}

// RegionChunkType returns the chunk type for a region kind
func RegionChunkType(k model.RegionKind) model.ChunkType {
	if ct, ok := regionChunkTypes[k]; ok {
		return ct
	}
	return model.ChunkText
}

// ConverterConfig holds configuration for flattening an IR into chunks
type ConverterConfig struct {
	// IncludeBlocks emits one chunk per block (default: true)
	IncludeBlocks bool `yaml:"include_blocks"`

	// IncludeTables emits one chunk per table (default: true)
	IncludeTables bool `yaml:"include_tables"`

	// IncludeRegions emits one chunk per semantic region (default: true)
	IncludeRegions bool `yaml:"include_regions"`

	// SkipTableBlocks drops block chunks for blocks that became tables,
	// leaving only the table chunk (default: false)
	SkipTableBlocks bool `yaml:"skip_table_blocks"`

	// ExcludeRegions drops the member blocks and region chunks of these
	// region kinds, e.g. header and footer
	ExcludeRegions []model.RegionKind `yaml:"exclude_regions"`
}

// DefaultConverterConfig returns sensible default configuration
func DefaultConverterConfig() ConverterConfig {
	return ConverterConfig{
		IncludeBlocks:  true,
		IncludeTables:  true,
		IncludeRegions: true,
	}
}

// Converter flattens the IR into grounded text chunks
type Converter struct {
	config ConverterConfig
}

// NewConverter creates a converter with default configuration
func NewConverter() *Converter {
	return &Converter{config: DefaultConverterConfig()}
}

// NewConverterWithConfig creates a converter with custom configuration
func NewConverterWithConfig(config ConverterConfig) *Converter {
	return &Converter{config: config}
}

// Convert flattens every page of ir. Chunks come out page by page; within
// a page blocks come first in reading order, then tables, then regions.
func (c *Converter) Convert(ir *model.IR) []model.TextChunk {
	if ir == nil {
		return nil
	}
	var chunks []model.TextChunk
	for i, page := range ir.Pages {
		if page == nil {
			continue
		}
		chunks = append(chunks, c.ConvertPage(page, i)...)
	}
	return chunks
}

// ConvertPage flattens one page. pageIndex is the zero-based index stored
// in every grounding.
func (c *Converter) ConvertPage(page *model.Page, pageIndex int) []model.TextChunk {
	excluded := c.excludedBlocks(page)
	var chunks []model.TextChunk

	if c.config.IncludeBlocks {
		for _, b := range orderedBlocks(page) {
			if excluded[b.ID] {
				continue
			}
			if c.config.SkipTableBlocks && b.Type == model.BlockTable {
				continue
			}
			if chunk, ok := c.blockChunk(b, pageIndex); ok {
				chunks = append(chunks, chunk)
			}
		}
	}

	if c.config.IncludeTables {
		for i := range page.Tables {
			t := &page.Tables[i]
			if excluded[t.SourceBlockID] {
				continue
			}
			if chunk, ok := tableChunk(t, pageIndex); ok {
				chunks = append(chunks, chunk)
			}
		}
	}

	if c.config.IncludeRegions {
		for i := range page.SemanticRegions {
			r := &page.SemanticRegions[i]
			if c.isExcluded(r.Kind) {
				continue
			}
			if chunk, ok := regionChunk(page, r, pageIndex); ok {
				chunks = append(chunks, chunk)
			}
		}
	}

	return chunks
}

func (c *Converter) blockChunk(b *model.Block, pageIndex int) (model.TextChunk, bool) {
	text := strings.TrimSpace(b.Text())
	if text == "" {
		return model.TextChunk{}, false
	}
	confidence := b.Confidence
	return model.TextChunk{
		ID:           ChunkID(model.SourceBlock, b.ID),
		Text:         text,
		Type:         BlockChunkType(b.Type),
		Grounding:    []model.Grounding{{PageIndex: pageIndex, Box: b.Rect.Grounding()}},
		Confidence:   &confidence,
		SemanticRole: b.SemanticRole,
		Source:       model.SourceBlock,
		SourceID:     b.ID,
	}, true
}

func tableChunk(t *model.Table, pageIndex int) (model.TextChunk, bool) {
	text := t.GetText()
	if strings.TrimSpace(text) == "" {
		return model.TextChunk{}, false
	}
	confidence := t.Confidence
	return model.TextChunk{
		ID:         ChunkID(model.SourceTable, t.ID),
		Text:       text,
		Type:       model.ChunkTable,
		Grounding:  []model.Grounding{{PageIndex: pageIndex, Box: t.Rect.Grounding()}},
		Confidence: &confidence,
		Source:     model.SourceTable,
		SourceID:   t.ID,
	}, true
}

// regionChunk joins the text of the region's member blocks. A region
// whose members are all empty produces nothing.
func regionChunk(page *model.Page, r *model.SemanticRegion, pageIndex int) (model.TextChunk, bool) {
	var parts []string
	for _, id := range r.BlockIDs {
		b := page.Block(id)
		if b == nil {
			continue
		}
		if text := strings.TrimSpace(b.Text()); text != "" {
			parts = append(parts, text)
		}
	}
	if len(parts) == 0 {
		return model.TextChunk{}, false
	}
	confidence := r.Confidence
	return model.TextChunk{
		ID:         ChunkID(model.SourceRegion, r.ID),
		Text:       strings.Join(parts, "\n"),
		Type:       RegionChunkType(r.Kind),
		Grounding:  []model.Grounding{{PageIndex: pageIndex, Box: r.Rect.Grounding()}},
		Confidence: &confidence,
		Source:     model.SourceRegion,
		SourceID:   r.ID,
	}, true
}

// orderedBlocks follows the page's reading flow, falling back to block
// order when the flow is missing
func orderedBlocks(page *model.Page) []*model.Block {
	var out []*model.Block
	if len(page.ReadingFlow) == 0 {
		for i := range page.Blocks {
			out = append(out, &page.Blocks[i])
		}
		return out
	}
	for _, id := range page.ReadingFlow {
		if b := page.Block(id); b != nil {
			out = append(out, b)
		}
	}
	return out
}

func (c *Converter) isExcluded(kind model.RegionKind) bool {
	for _, k := range c.config.ExcludeRegions {
		if k == kind {
			return true
		}
	}
	return false
}

func (c *Converter) excludedBlocks(page *model.Page) map[string]bool {
	if len(c.config.ExcludeRegions) == 0 {
		return nil
	}
	excluded := make(map[string]bool)
	for _, r := range page.SemanticRegions {
		if !c.isExcluded(r.Kind) {
			continue
		}
		for _, id := range r.BlockIDs {
			excluded[id] = true
		}
	}
	return excluded
}

// ChunkID derives a stable chunk id from the element it was flattened from
func ChunkID(source model.ChunkSource, sourceID string) string {
	return uuid.NewSHA1(chunkNamespace, []byte(string(source)+":"+sourceID)).String()
}
