package model

// SpatialRelationship is a directional relationship from one element to
// another
type SpatialRelationship struct {
	SourceID   string       `json:"source_id"`
	TargetID   string       `json:"target_id"`
	Kind       RelationKind `json:"kind"`
	Confidence float64      `json:"confidence"`
	Distance   *float64     `json:"distance,omitempty"`
}

// SpatialGroup lists the blocks fully contained in a container block
type SpatialGroup struct {
	ID          string    `json:"id"`
	ContainerID string    `json:"container_id"`
	MemberIDs   []string  `json:"member_ids"`
	Kind        GroupKind `json:"kind"`
	Rect        Rectangle `json:"bbox"`
}

// Span is a piece of text with its grounding rectangle
type Span struct {
	Text       string    `json:"text"`
	Rect       Rectangle `json:"bbox"`
	Confidence float64   `json:"confidence"`
}

// KeyValuePair is a label/value pair found in block text
type KeyValuePair struct {
	Key          Span         `json:"key"`
	Value        Span         `json:"value"`
	Relationship PairRelation `json:"relationship"`
	SemanticType string       `json:"semantic_type,omitempty"`

	// BlockID is the block the pair was read from
	BlockID string `json:"block_id,omitempty"`
}

// SemanticRegion is a coarse page zone and the blocks that fall in it
type SemanticRegion struct {
	ID         string     `json:"id"`
	Kind       RegionKind `json:"kind"`
	Rect       Rectangle  `json:"bbox"`
	Confidence float64    `json:"confidence"`
	BlockIDs   []string   `json:"block_ids"`
}
