package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Pratikdalwadi/docground/rag"
)

var (
	markdownFlags      extractorFlags
	markdownPageBreaks bool
	markdownRegions    bool
)

var markdownCmd = &cobra.Command{
	Use:     "markdown <file>",
	Aliases: []string{"md"},
	Short:   "Render a document as markdown",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := rag.MarkdownOptions{
			IncludeRegions: markdownRegions,
			PageBreaks:     markdownPageBreaks,
		}
		md, _, err := markdownFlags.extractor(args[0]).ToMarkdownWithOptions(cmd.Context(), opts)
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), md)
		return err
	},
}

func init() {
	markdownFlags.register(markdownCmd)
	markdownCmd.Flags().BoolVar(&markdownPageBreaks, "page-breaks", false, "insert --- between pages")
	markdownCmd.Flags().BoolVar(&markdownRegions, "regions", false, "also render region chunks")
}
