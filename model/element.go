package model

// BlockType is the structural classification of a block
type BlockType string

const (
	BlockParagraph BlockType = "paragraph"
	BlockHeading   BlockType = "heading"
	BlockList      BlockType = "list"
	BlockTable     BlockType = "table"
	BlockImage     BlockType = "image"
	BlockLine      BlockType = "line"
	BlockFooter    BlockType = "footer"
	BlockHeader    BlockType = "header"
	BlockFormField BlockType = "form_field"
	BlockSignature BlockType = "signature"
	BlockLogo      BlockType = "logo"
	BlockCaption   BlockType = "caption"
)

// ChunkType is the classification of a grounded text chunk
type ChunkType string

const (
	ChunkText      ChunkType = "text"
	ChunkTable     ChunkType = "table"
	ChunkFigure    ChunkType = "figure"
	ChunkTitle     ChunkType = "title"
	ChunkHeader    ChunkType = "header"
	ChunkFooter    ChunkType = "footer"
	ChunkList      ChunkType = "list"
	ChunkCaption   ChunkType = "caption"
	ChunkFormField ChunkType = "form_field"
)

// Alignment is the horizontal alignment of a line on the page
type Alignment string

const (
	AlignUnknown Alignment = ""
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// RelationKind is the directional relationship between two elements
type RelationKind string

const (
	RelLeftOf      RelationKind = "left-of"
	RelRightOf     RelationKind = "right-of"
	RelAbove       RelationKind = "above"
	RelBelow       RelationKind = "below"
	RelContains    RelationKind = "contains"
	RelContainedBy RelationKind = "contained-by"
	RelOverlaps    RelationKind = "overlaps"
)

// Inverse returns the relationship seen from the other element
func (k RelationKind) Inverse() RelationKind {
	switch k {
	case RelLeftOf:
		return RelRightOf
	case RelRightOf:
		return RelLeftOf
	case RelAbove:
		return RelBelow
	case RelBelow:
		return RelAbove
	case RelContains:
		return RelContainedBy
	case RelContainedBy:
		return RelContains
	default:
		return k
	}
}

// RegionKind is the coarse page zone of a semantic region
type RegionKind string

const (
	RegionHeader      RegionKind = "header"
	RegionFooter      RegionKind = "footer"
	RegionMainContent RegionKind = "main_content"
	RegionSidebar     RegionKind = "sidebar"
	RegionNavigation  RegionKind = "navigation"
	RegionForm        RegionKind = "form"
	RegionTable       RegionKind = "table"
	RegionFigure      RegionKind = "figure"
)

// PairRelation describes how a key span relates to its value span
type PairRelation string

const (
	PairAdjacent PairRelation = "adjacent"
	PairAligned  PairRelation = "aligned"
	PairGrouped  PairRelation = "grouped"
)

// GroupKind is the guessed type of a containment group's container
type GroupKind string

const (
	GroupTable   GroupKind = "table"
	GroupGroup   GroupKind = "group"
	GroupSection GroupKind = "section"
)
