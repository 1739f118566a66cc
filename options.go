package docground

// ExtractOptions holds configuration for a single extraction.
type ExtractOptions struct {
	// Page selection (1-indexed)
	pages []int

	// Region filtering for chunk output
	excludeHeaders bool
	excludeFooters bool

	// workers overrides config.Workers when > 0
	workers int
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:          nil, // nil means all pages
		excludeHeaders: false,
		excludeFooters: false,
		workers:        0,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		excludeHeaders: o.excludeHeaders,
		excludeFooters: o.excludeFooters,
		workers:        o.workers,
	}

	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
