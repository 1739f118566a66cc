package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var (
	analyzeFlags   extractorFlags
	analyzeCompact bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Print the layout model as JSON",
	Long: `Analyze a document and print its layout model (pages with words,
lines, blocks, tables, spatial relationships, regions and key-value pairs)
as JSON on stdout.

Examples:
  docground analyze scan.json
  docground analyze -p 1,2 page.hocr > layout.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ir, _, err := analyzeFlags.extractor(args[0]).IR(cmd.Context())
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		if !analyzeCompact {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(ir)
	},
}

func init() {
	analyzeFlags.register(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeCompact, "compact", false, "single-line JSON")
}
