// Package config loads and saves docground settings as YAML.
//
// A file only needs the keys it changes; everything else keeps the
// value from [Default]:
//
//	analyzer:
//	  regions:
//	    header_band: 0.12
//	  tables:
//	    min_rows: 3
//	converter:
//	  exclude_regions: [header, footer]
//	workers: 4
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/Pratikdalwadi/docground/layout"
	"github.com/Pratikdalwadi/docground/ocr"
	"github.com/Pratikdalwadi/docground/rag"
)

// Config is the complete docground configuration.
type Config struct {
	Analyzer  layout.AnalyzerConfig `yaml:"analyzer"`
	Converter rag.ConverterConfig   `yaml:"converter"`
	OCR       ocr.Config            `yaml:"ocr"`

	// Workers is the number of pages processed in parallel. Default: runtime.NumCPU()
	Workers int `yaml:"workers"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Analyzer:  layout.DefaultAnalyzerConfig(),
		Converter: rag.DefaultConverterConfig(),
		OCR:       ocr.DefaultConfig(),
		Workers:   runtime.NumCPU(),
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and patterns.
func (c Config) Validate() error {
	var errs []error

	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be >= 1, got %d", c.Workers))
	}

	a := c.Analyzer
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"analyzer.reconcile.duplicate_iou", a.ReconcileConfig.DuplicateIoU},
		{"analyzer.reconcile.duplicate_similarity", a.ReconcileConfig.DuplicateSimilarity},
		{"analyzer.reconcile.min_confidence", a.ReconcileConfig.MinConfidence},
		{"analyzer.regions.header_band", a.RegionConfig.HeaderBand},
		{"analyzer.regions.footer_band", a.RegionConfig.FooterBand},
		{"analyzer.tables.confidence", a.TableConfig.Confidence},
		{"analyzer.spatial.confidence", a.SpatialConfig.Confidence},
		{"analyzer.lines.alignment_tolerance", a.LineConfig.AlignmentTolerance},
		{"analyzer.lines.justification_threshold", a.LineConfig.JustificationThreshold},
	} {
		if f.value < 0 || f.value > 1 {
			errs = append(errs, fmt.Errorf("%s must be in [0,1], got %v", f.name, f.value))
		}
	}

	if a.LineConfig.VerticalThreshold <= 0 {
		errs = append(errs, fmt.Errorf("analyzer.lines.vertical_threshold must be > 0"))
	}
	if a.TableConfig.MinRows < 1 || a.TableConfig.MinCols < 1 {
		errs = append(errs, fmt.Errorf("analyzer.tables min_rows and min_cols must be >= 1"))
	}

	for i, p := range a.BlockConfig.ListPatterns {
		if _, err := regexp.Compile(p); err != nil {
			errs = append(errs, fmt.Errorf("analyzer.blocks.list_patterns[%d]: %w", i, err))
		}
	}
	if a.KeyValueConfig.Pattern != "" {
		if _, err := regexp.Compile(a.KeyValueConfig.Pattern); err != nil {
			errs = append(errs, fmt.Errorf("analyzer.key_values.pattern: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// Save writes the configuration to path as YAML.
func (c Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
