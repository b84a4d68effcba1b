// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkutashi/standards-extractor/internal/pdftext"
)

var pagesCmd = &cobra.Command{
	Use:   "pages [pdf]",
	Short: "Dump the extracted per-page text",
	Long: `Pages prints the raw plain text of each PDF page with page markers,
before any trimming or segmentation. Useful for checking whether a new
listing edition still matches the configured layout constants.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := pipelineConfig(cmd, args)

		pages, err := pdftext.Extract(cfg.InputPath)
		if err != nil {
			return err
		}

		only, _ := cmd.Flags().GetInt("page")
		for i, text := range pages {
			if only > 0 && only != i+1 {
				continue
			}
			fmt.Printf("--- page %d of %d ---\n%s\n", i+1, len(pages), text)
		}
		return nil
	},
}

func init() {
	pagesCmd.Flags().String("input", "", "path to the listing PDF")
	pagesCmd.Flags().Int("page", 0, "print only this page (1-based)")

	rootCmd.AddCommand(pagesCmd)
}
