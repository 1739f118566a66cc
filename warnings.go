package docground

import (
	"fmt"
	"strings"

	"github.com/Pratikdalwadi/docground/model"
)

// WarningCode classifies a non-fatal problem with the input
type WarningCode string

const (
	// WarningMissingDimensions means a word source had no usable width or
	// height; its words were given zero rectangles
	WarningMissingDimensions WarningCode = "missing_dimensions"

	// WarningEmptyPage means a page produced no words
	WarningEmptyPage WarningCode = "empty_page"

	// WarningLowCoverage means fewer than half of the best source's words
	// survived reconciliation
	WarningLowCoverage WarningCode = "low_coverage"
)

// lowCoveragePercent is the coverage below which WarningLowCoverage is raised
const lowCoveragePercent = 50

// Warning is a non-fatal issue found while processing a page. Extraction
// still succeeds but results may be incomplete.
type Warning struct {
	Code    WarningCode
	Page    int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("page %d: %s (%s)", w.Page, w.Message, w.Code)
}

// FormatWarnings joins warnings one per line.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}

// pageWarnings inspects one analyzed page and its input sources
func pageWarnings(sources []model.WordSource, page *model.Page) []Warning {
	var warnings []Warning

	for _, src := range sources {
		if len(src.Words) > 0 && (src.Width <= 0 || src.Height <= 0) {
			warnings = append(warnings, Warning{
				Code:    WarningMissingDimensions,
				Page:    page.Number,
				Message: fmt.Sprintf("source %q has no page dimensions", src.Method),
			})
		}
	}

	if len(page.Words) == 0 {
		warnings = append(warnings, Warning{
			Code:    WarningEmptyPage,
			Page:    page.Number,
			Message: "no words",
		})
		return warnings
	}

	if page.Coverage.CoveragePercent < lowCoveragePercent {
		warnings = append(warnings, Warning{
			Code:    WarningLowCoverage,
			Page:    page.Number,
			Message: fmt.Sprintf("coverage %.0f%%", page.Coverage.CoveragePercent),
		})
	}
	return warnings
}
