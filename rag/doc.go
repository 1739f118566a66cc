// Package rag flattens the document IR into grounded text chunks for
// retrieval and overlay highlighting.
//
// # Chunking
//
// The [Converter] emits one chunk per block, one per table and one per
// semantic region. Every chunk carries at least one grounding: a zero-based
// page index and a rectangle in left/top/right/bottom form.
//
//	chunks := rag.NewConverter().Convert(ir)
//
// Block types map to chunk types through a fixed table (heading becomes
// title, list stays list, and so on); anything unmapped becomes text. Blocks
// that were turned into tables are skipped by default because the table
// chunk already carries their text.
//
// Chunk ids are name-based UUIDs derived from the source element id, so the
// same input always yields the same ids.
//
// # Filtering
//
// Use [ConverterConfig] to drop header or footer content from the chunk
// list without touching the IR:
//
//	config := rag.DefaultConverterConfig()
//	config.ExcludeRegions = []model.RegionKind{model.RegionHeader, model.RegionFooter}
//	chunks := rag.NewConverterWithConfig(config).Convert(ir)
//
// # Export Formats
//
// [ToMarkdown] renders chunks as a linear document: titles as #, headers as
// ##, tables fenced, lists as bullets. Region chunks, which carry the page
// header as a header chunk, are rendered only with
// [MarkdownOptions].IncludeRegions. The [Exporter] also writes JSON Lines,
// a JSON array, CSV and TSV.
package rag
