// Package model provides the intermediate representation (IR) produced by
// layout reconstruction.
//
// Every type here is plain data. Detectors in the layout and tables
// packages fill a [Page] from its recognized [Word] values; the rag package
// flattens the finished [IR] into [TextChunk] values.
//
// # Page Structure
//
// A [Page] holds, from the leaves up:
//
//   - Words - recognizer output, normalized to the unit square
//   - Lines - words grouped by vertical position
//   - Blocks - lines grouped into paragraphs, headings, lists and tables
//   - Tables - cell grids built from table-like blocks
//   - SpatialRelationships, SpatialGroups - block-to-block geometry
//   - SemanticRegions - header, footer and main content zones
//   - KeyValuePairs - label/value spans read from block text
//
// # Geometry
//
// Two rectangle forms are used:
//
//   - [Rectangle] - x, y, width, height with a top-left origin
//   - [GroundingRectangle] - left, top, right, bottom edges
//
// [Rectangle.Grounding] and [GroundingRectangle.Rectangle] convert between
// them without loss beyond floating point rounding.
package model
