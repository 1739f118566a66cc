package docground

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Pratikdalwadi/docground/config"
	"github.com/Pratikdalwadi/docground/layout"
	"github.com/Pratikdalwadi/docground/model"
	"github.com/Pratikdalwadi/docground/rag"
)

// source loads page inputs once and shares them between clones
type source struct {
	load  func() ([]layout.PageInput, error)
	once  sync.Once
	pages []layout.PageInput
	err   error
}

func (s *source) inputs() ([]layout.PageInput, error) {
	s.once.Do(func() {
		s.pages, s.err = s.load()
	})
	return s.pages, s.err
}

// Extractor provides a fluent interface for reconstructing document
// layout and producing grounded chunks. Each configuration method returns
// a new Extractor instance, making it safe for concurrent use and allowing
// method chaining.
type Extractor struct {
	src *source

	// Configuration
	config  config.Config
	logger  *slog.Logger
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

func newExtractor(load func() ([]layout.PageInput, error)) *Extractor {
	return &Extractor{
		src:     &source{load: load},
		config:  config.Default(),
		logger:  slog.Default(),
		options: defaultOptions(),
	}
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		src:     e.src,
		config:  e.config,
		logger:  e.logger,
		options: e.options.clone(),
		err:     e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to process (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	md, _, err := docground.Open("scan.json").Pages(1, 3, 5).ToMarkdown(ctx)
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to process (1-indexed, inclusive).
//
// Example:
//
//	md, _, err := docground.Open("scan.json").PageRange(5, 10).ToMarkdown(ctx)
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// ExcludeHeaders drops header region blocks from chunk output.
// The IR is unaffected.
func (e *Extractor) ExcludeHeaders() *Extractor {
	newExt := e.clone()
	newExt.options.excludeHeaders = true
	return newExt
}

// ExcludeFooters drops footer region blocks from chunk output.
// The IR is unaffected.
func (e *Extractor) ExcludeFooters() *Extractor {
	newExt := e.clone()
	newExt.options.excludeFooters = true
	return newExt
}

// ExcludeHeadersAndFooters is equivalent to calling
// ExcludeHeaders().ExcludeFooters().
//
// Example:
//
//	chunks, _, err := docground.Open("scan.json").ExcludeHeadersAndFooters().Chunks(ctx)
func (e *Extractor) ExcludeHeadersAndFooters() *Extractor {
	newExt := e.clone()
	newExt.options.excludeHeaders = true
	newExt.options.excludeFooters = true
	return newExt
}

// WithConfig replaces the analyzer and converter configuration.
func (e *Extractor) WithConfig(cfg config.Config) *Extractor {
	newExt := e.clone()
	newExt.config = cfg
	return newExt
}

// WithConfigFile loads configuration from a YAML file. A load error is
// returned by the next terminal operation.
//
// Example:
//
//	ir, _, err := docground.Open("scan.json").WithConfigFile("docground.yaml").IR(ctx)
func (e *Extractor) WithConfigFile(path string) *Extractor {
	newExt := e.clone()
	if newExt.err != nil {
		return newExt
	}
	cfg, err := config.Load(path)
	if err != nil {
		newExt.err = err
		return newExt
	}
	newExt.config = cfg
	return newExt
}

// WithLogger sets the logger used for page progress. Default: slog.Default()
func (e *Extractor) WithLogger(logger *slog.Logger) *Extractor {
	newExt := e.clone()
	if logger != nil {
		newExt.logger = logger
	}
	return newExt
}

// Workers sets how many pages are analyzed in parallel, overriding the
// configured value.
func (e *Extractor) Workers(n int) *Extractor {
	newExt := e.clone()
	newExt.options.workers = n
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// PageCount returns the number of pages in the input, ignoring page
// selection.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	inputs, err := e.src.inputs()
	if err != nil {
		return 0, err
	}
	return len(inputs), nil
}

// IR analyzes the selected pages and returns the document model.
// Pages are analyzed in parallel; the result lists them in page order.
// If ctx is cancelled no partial IR is returned.
//
// Example:
//
//	ir, warnings, err := docground.Open("scan.json").IR(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, kv := range ir.KeyValuePairs() {
//	    fmt.Println(kv.Key.Text, "=", kv.Value.Text)
//	}
func (e *Extractor) IR(ctx context.Context) (*model.IR, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	all, err := e.src.inputs()
	if err != nil {
		return nil, nil, err
	}
	selected, err := e.resolvePages(all)
	if err != nil {
		return nil, nil, err
	}

	analyzer := layout.NewAnalyzerWithConfig(e.config.Analyzer)
	pages := make([]*model.Page, len(selected))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers())
	for i, in := range selected {
		i, in := i, in
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			page := analyzer.Analyze(in)
			e.logger.Debug("analyzed page",
				"page", page.Number,
				"words", len(page.Words),
				"blocks", len(page.Blocks),
				"tables", len(page.Tables),
				"coverage", page.Coverage.CoveragePercent)
			pages[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	for i, page := range pages {
		for _, w := range pageWarnings(selected[i].Sources, page) {
			e.logger.Warn("degraded page", "page", w.Page, "code", string(w.Code), "detail", w.Message)
			warnings = append(warnings, w)
		}
	}

	ir := model.NewIR(pages)
	e.logger.Debug("document analyzed",
		"pages", ir.TotalPages,
		"blocks", ir.TotalBlocks,
		"coverage", ir.OverallCoverage)
	return ir, warnings, nil
}

// Text returns the block text of the selected pages.
func (e *Extractor) Text(ctx context.Context) (string, []Warning, error) {
	ir, warnings, err := e.IR(ctx)
	if err != nil {
		return "", warnings, err
	}
	return ir.ExtractText(), warnings, nil
}

// Chunks analyzes the selected pages and returns grounded chunks.
//
// Example:
//
//	chunks, _, err := docground.Open("scan.json").ExcludeHeadersAndFooters().Chunks(ctx)
//	for _, c := range chunks {
//	    fmt.Printf("[%s] %s\n", c.Type, c.Text)
//	}
func (e *Extractor) Chunks(ctx context.Context) ([]model.TextChunk, []Warning, error) {
	ir, warnings, err := e.IR(ctx)
	if err != nil {
		return nil, warnings, err
	}
	return rag.NewConverterWithConfig(e.converterConfig()).Convert(ir), warnings, nil
}

// ToMarkdown returns the selected pages rendered as markdown. Region
// chunks are left out, so header regions do not appear as ## headings; use
// ToMarkdownWithOptions with IncludeRegions to render them.
func (e *Extractor) ToMarkdown(ctx context.Context) (string, []Warning, error) {
	return e.ToMarkdownWithOptions(ctx, rag.DefaultMarkdownOptions())
}

// ToMarkdownWithOptions returns markdown with custom rendering options.
//
// Example:
//
//	opts := rag.MarkdownOptions{PageBreaks: true}
//	md, _, err := docground.Open("scan.json").ToMarkdownWithOptions(ctx, opts)
func (e *Extractor) ToMarkdownWithOptions(ctx context.Context, opts rag.MarkdownOptions) (string, []Warning, error) {
	chunks, warnings, err := e.Chunks(ctx)
	if err != nil {
		return "", warnings, err
	}
	return rag.ToMarkdownWithOptions(chunks, opts), warnings, nil
}

// Export writes the chunks to w in the configured format.
//
// Example:
//
//	cfg := rag.DefaultExportConfig() // JSON Lines
//	_, err := docground.Open("scan.json").Export(ctx, os.Stdout, cfg)
func (e *Extractor) Export(ctx context.Context, w io.Writer, cfg rag.ExportConfig) ([]Warning, error) {
	chunks, warnings, err := e.Chunks(ctx)
	if err != nil {
		return warnings, err
	}
	if err := rag.NewExporterWithConfig(cfg).Export(chunks, w); err != nil {
		return warnings, err
	}
	return warnings, nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// resolvePages returns the inputs for the selected page numbers in page
// order. With no selection every input is returned.
func (e *Extractor) resolvePages(all []layout.PageInput) ([]layout.PageInput, error) {
	if len(e.options.pages) == 0 {
		return all, nil
	}

	byNumber := make(map[int]layout.PageInput, len(all))
	for _, in := range all {
		byNumber[in.Number] = in
	}

	seen := make(map[int]bool)
	var numbers []int
	for _, p := range e.options.pages {
		if _, ok := byNumber[p]; !ok {
			return nil, fmt.Errorf("page %d not found (document has %d pages)", p, len(all))
		}
		if !seen[p] {
			seen[p] = true
			numbers = append(numbers, p)
		}
	}
	sort.Ints(numbers)

	selected := make([]layout.PageInput, len(numbers))
	for i, n := range numbers {
		selected[i] = byNumber[n]
	}
	return selected, nil
}

func (e *Extractor) workers() int {
	n := e.config.Workers
	if e.options.workers > 0 {
		n = e.options.workers
	}
	if n < 1 {
		n = 1
	}
	return n
}

// converterConfig applies header/footer exclusion to the configured converter
func (e *Extractor) converterConfig() rag.ConverterConfig {
	cfg := e.config.Converter
	cfg.ExcludeRegions = append([]model.RegionKind(nil), cfg.ExcludeRegions...)
	if e.options.excludeHeaders {
		cfg.ExcludeRegions = append(cfg.ExcludeRegions, model.RegionHeader)
	}
	if e.options.excludeFooters {
		cfg.ExcludeRegions = append(cfg.ExcludeRegions, model.RegionFooter)
	}
	return cfg
}
