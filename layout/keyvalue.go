package layout

import (
	"regexp"
	"strings"

	"github.com/Pratikdalwadi/docground/model"
)

// KeyValueConfig holds configuration for key-value extraction
type KeyValueConfig struct {
	// Pattern must have two capture groups: key and value
	// (default: `([^:]+):\s*([^:]+)`)
	Pattern string `yaml:"pattern"`

	// TypeRules are checked in order against the lower-cased key text
	TypeRules []RoleRule `yaml:"type_rules"`

	// DefaultType is used when no rule matches (default: "general")
	DefaultType string `yaml:"default_type"`

	// PerLine runs the pattern on each line separately instead of on the
	// block's newline-joined text, so values stop at the line end
	// (default: false)
	PerLine bool `yaml:"per_line"`
}

// DefaultKeyValueConfig returns sensible default configuration
func DefaultKeyValueConfig() KeyValueConfig {
	return KeyValueConfig{
		Pattern: `([^:]+):\s*([^:]+)`,
		TypeRules: []RoleRule{
			{Role: "invoice_number", Keywords: []string{"invoice"}},
			{Role: "total_amount", Keywords: []string{"total"}},
			{Role: "date", Keywords: []string{"date"}},
			{Role: "address", Keywords: []string{"address"}},
		},
		DefaultType: "general",
	}
}

// KeyValueExtractor finds "label: value" pairs in block text
type KeyValueExtractor struct {
	config  KeyValueConfig
	pattern *regexp.Regexp
}

// NewKeyValueExtractor creates an extractor with default configuration
func NewKeyValueExtractor() *KeyValueExtractor {
	return NewKeyValueExtractorWithConfig(DefaultKeyValueConfig())
}

// NewKeyValueExtractorWithConfig creates an extractor with custom
// configuration. A pattern that does not compile, or has fewer than two
// groups, falls back to the default pattern.
func NewKeyValueExtractorWithConfig(config KeyValueConfig) *KeyValueExtractor {
	re, err := regexp.Compile(config.Pattern)
	if err != nil || re.NumSubexp() < 2 {
		re = regexp.MustCompile(DefaultKeyValueConfig().Pattern)
	}
	return &KeyValueExtractor{config: config, pattern: re}
}

// Extract scans the text of each block, or of each line with PerLine set.
// A value may run across lines up to the next colon-delimited key. Both
// spans of a pair carry the whole block's rectangle and confidence. Text
// without a match yields nothing.
func (e *KeyValueExtractor) Extract(blocks []model.Block) []model.KeyValuePair {
	var pairs []model.KeyValuePair
	for _, b := range blocks {
		if e.config.PerLine {
			for _, line := range b.Lines {
				pairs = e.appendMatches(pairs, b, line.Text())
			}
			continue
		}
		pairs = e.appendMatches(pairs, b, b.Text())
	}
	return pairs
}

func (e *KeyValueExtractor) appendMatches(pairs []model.KeyValuePair, b model.Block, text string) []model.KeyValuePair {
	for _, m := range e.pattern.FindAllStringSubmatch(text, -1) {
		key := strings.TrimSpace(m[1])
		value := strings.TrimSpace(m[2])
		if key == "" || value == "" {
			continue
		}
		pairs = append(pairs, model.KeyValuePair{
			Key:          model.Span{Text: key, Rect: b.Rect, Confidence: b.Confidence},
			Value:        model.Span{Text: value, Rect: b.Rect, Confidence: b.Confidence},
			Relationship: model.PairAdjacent,
			SemanticType: e.semanticType(key),
			BlockID:      b.ID,
		})
	}
	return pairs
}

func (e *KeyValueExtractor) semanticType(key string) string {
	lower := strings.ToLower(key)
	for _, rule := range e.config.TypeRules {
		for _, kw := range rule.Keywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				return rule.Role
			}
		}
	}
	return e.config.DefaultType
}
