package main

import (
	"github.com/spf13/cobra"

	"github.com/Pratikdalwadi/docground/layout"
	"github.com/Pratikdalwadi/docground/ocr"
	"github.com/Pratikdalwadi/docground/reader"
)

var ocrLanguages []string

var ocrCmd = &cobra.Command{
	Use:   "ocr <image>...",
	Short: "Recognize page images with Tesseract",
	Long: `Run Tesseract on page images and print the words as a JSON word dump
that the other commands accept. Each image becomes one page, numbered in
argument order.

Requires a binary built with -tags ocr.

Examples:
  docground ocr page1.png page2.png > scan.json
  docground ocr --lang eng,deu scan.tiff | docground chunks /dev/stdin`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ocrCfg := cfg.OCR
		if len(ocrLanguages) > 0 {
			ocrCfg.Languages = ocrLanguages
		}

		client, err := ocr.NewWithConfig(ocrCfg)
		if err != nil {
			return err
		}
		defer client.Close()

		pages := make([]layout.PageInput, 0, len(args))
		for i, path := range args {
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			in, err := client.RecognizePage(i+1, path)
			if err != nil {
				return err
			}
			logger.Debug("recognized page", "page", in.Number, "path", path, "words", len(in.Sources[0].Words))
			pages = append(pages, in)
		}
		return reader.WriteJSON(cmd.OutOrStdout(), pages)
	},
}

func init() {
	ocrCmd.Flags().StringSliceVarP(&ocrLanguages, "lang", "l", nil, "Tesseract languages (default from config)")
}
