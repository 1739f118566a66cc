package model

// Grounding ties a chunk to a rectangle on a page. PageIndex is zero-based.
type Grounding struct {
	PageIndex int                `json:"page"`
	Box       GroundingRectangle `json:"box"`
}

// ChunkSource names the IR element kind a chunk was flattened from
type ChunkSource string

const (
	SourceBlock  ChunkSource = "block"
	SourceTable  ChunkSource = "table"
	SourceRegion ChunkSource = "region"
)

// TextChunk is a flattened, grounded unit of text. A chunk may carry
// several groundings when its text comes from disjoint regions.
type TextChunk struct {
	ID           string      `json:"id"`
	Text         string      `json:"text"`
	Type         ChunkType   `json:"chunk_type"`
	Grounding    []Grounding `json:"grounding"`
	Confidence   *float64    `json:"confidence,omitempty"`
	SemanticRole string      `json:"semantic_role,omitempty"`

	Source   ChunkSource `json:"source"`
	SourceID string      `json:"source_id"`
}
