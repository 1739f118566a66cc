package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Pratikdalwadi/docground"
	"github.com/Pratikdalwadi/docground/config"
)

var (
	cfgFile string
	verbose bool

	// set by PersistentPreRunE
	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "docground",
	Short: "Document layout reconstruction and grounding",
	Long: `docground rebuilds the layout of a recognized document page by page:
lines, blocks, tables, regions and key-value pairs, all with normalized
coordinates. The result can be written as the full layout model, as
grounded chunks for retrieval, or as markdown.

Input is a recognizer JSON word dump, an hOCR document, or a page image.`,
	Version:      Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		if cfgFile == "" {
			cfg = config.Default()
			return nil
		}
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debug("loaded config", "path", cfgFile)
		return nil
	},
}

// extractorFlags are shared by commands that analyze a document
type extractorFlags struct {
	pages          []int
	excludeHeaders bool
	excludeFooters bool
	workers        int
}

func (f *extractorFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntSliceVarP(&f.pages, "pages", "p", nil, "pages to process (1-indexed, default all)")
	cmd.Flags().BoolVar(&f.excludeHeaders, "exclude-headers", false, "drop header regions from chunk output")
	cmd.Flags().BoolVar(&f.excludeFooters, "exclude-footers", false, "drop footer regions from chunk output")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "pages analyzed in parallel (default from config)")
}

func (f *extractorFlags) extractor(path string) *docground.Extractor {
	ext := docground.Open(path).
		WithConfig(cfg).
		WithLogger(logger).
		Pages(f.pages...)
	if f.excludeHeaders {
		ext = ext.ExcludeHeaders()
	}
	if f.excludeFooters {
		ext = ext.ExcludeFooters()
	}
	if f.workers > 0 {
		ext = ext.Workers(f.workers)
	}
	return ext
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "YAML config file (default: built-in settings)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "log page progress to stderr",
	)

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(chunksCmd)
	rootCmd.AddCommand(markdownCmd)
	rootCmd.AddCommand(ocrCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
