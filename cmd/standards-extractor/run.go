// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mkutashi/standards-extractor/internal/parse"
	"github.com/mkutashi/standards-extractor/internal/pdftext"
	"github.com/mkutashi/standards-extractor/internal/report"
	"github.com/mkutashi/standards-extractor/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run [pdf]",
	Short: "Run the full extraction pipeline",
	Long: `Run extracts per-page text from the listing PDF, parses it into
records, and writes the output table. Without an argument it looks for
the PDF at the default input path and prints placement instructions if
the file is absent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd, args)

	// Zero-configuration convenience mode: a missing default input is
	// instructions, not an error.
	if cfg.InputPath == types.DefaultInputPath {
		if _, err := os.Stat(cfg.InputPath); os.IsNotExist(err) {
			fmt.Printf("Please place your PDF file at: %s\n", cfg.InputPath)
			return nil
		}
	}

	records, stats, err := extractRecords(cfg, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("Extracted %d records\n", len(records))
	reportGaps(stats)

	fmt.Println("Saving output...")
	if _, err := report.Write(records, cfg.Output, os.Stdout); err != nil {
		return err
	}

	table := report.Build(records)
	rows, cols := table.Shape()
	fmt.Printf("Table shape: %d rows x %d columns\n", rows, cols)
	report.Preview(os.Stdout, table, cfg.Output.PreviewRows)
	return nil
}

// extractRecords runs the extract and parse stages and returns the
// normalized records.
func extractRecords(cfg types.PipelineConfig, w io.Writer) ([]types.Record, parse.Stats, error) {
	fmt.Fprintln(w, "Extracting text from PDF...")
	pages, err := pdftext.Extract(cfg.InputPath)
	if err != nil {
		return nil, parse.Stats{}, err
	}

	fmt.Fprintln(w, "Parsing text data...")
	builder := parse.New(cfg.Layout, cfg.Parse, w)
	for _, page := range pages {
		if err := builder.AddPage(page); err != nil {
			return nil, builder.Stats(), err
		}
	}

	records, err := builder.Records()
	if err != nil {
		return nil, builder.Stats(), err
	}
	return report.Normalize(records), builder.Stats(), nil
}

// reportGaps summarizes the repairs the lenient mode applied.
func reportGaps(stats parse.Stats) {
	if stats.DocGaps > 0 {
		fmt.Printf("  %d segment(s) lacked a document-identifier line\n", stats.DocGaps)
	}
	if stats.DateGaps > 0 {
		fmt.Printf("  %d segment(s) lacked a publishing date\n", stats.DateGaps)
	}
	if stats.NamePads+stats.WebsitePads > 0 {
		fmt.Printf("  %d column value(s) backfilled\n", stats.NamePads+stats.WebsitePads)
	}
	if stats.Truncated > 0 {
		fmt.Printf("  %d extra column value(s) dropped\n", stats.Truncated)
	}
}

// pipelineConfig resolves the pipeline configuration from flags, the
// viper config file, and defaults, in that order.
func pipelineConfig(cmd *cobra.Command, args []string) types.PipelineConfig {
	cfg := types.PipelineConfig{
		InputPath: types.DefaultInputPath,
		Layout:    types.DefaultLayout(),
		Parse:     types.DefaultParseConfig(),
		Output:    types.DefaultOutputConfig(),
		Index:     types.IndexConfig{IndexDir: "data/index"},
	}

	if v := viper.GetString("input_path"); v != "" {
		cfg.InputPath = v
	}
	applyLayoutConfig(&cfg.Layout)
	if viper.IsSet("parse.strict") {
		cfg.Parse.Strict = viper.GetBool("parse.strict")
	}
	if viper.IsSet("parse.pad_missing") {
		cfg.Parse.PadMissing = viper.GetBool("parse.pad_missing")
	}
	if v := viper.GetString("output.output_dir"); v != "" {
		cfg.Output.OutputDir = v
	}
	if v := viper.GetString("output.filename"); v != "" {
		cfg.Output.Filename = v
	}
	if v := viper.GetString("index.index_dir"); v != "" {
		cfg.Index.IndexDir = v
	}

	if len(args) > 0 {
		cfg.InputPath = args[0]
	}
	if v, _ := cmd.Flags().GetString("input"); v != "" {
		cfg.InputPath = v
	}
	if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
		cfg.Output.OutputDir = v
	}
	if v, _ := cmd.Flags().GetString("filename"); v != "" {
		cfg.Output.Filename = v
	}
	if v, _ := cmd.Flags().GetString("format"); v != "" {
		cfg.Output.Format = types.OutputFormat(v)
	}
	if cmd.Flags().Changed("strict") {
		cfg.Parse.Strict, _ = cmd.Flags().GetBool("strict")
	}
	if cmd.Flags().Changed("pad-missing") {
		cfg.Parse.PadMissing, _ = cmd.Flags().GetBool("pad-missing")
	}
	if v, _ := cmd.Flags().GetInt("preview-rows"); v > 0 {
		cfg.Output.PreviewRows = v
	}
	return cfg
}

// applyLayoutConfig overrides layout constants set in the config file.
// Absent keys keep the default edition's values.
func applyLayoutConfig(layout *types.LayoutConfig) {
	if viper.IsSet("layout.header_skip") {
		layout.HeaderSkip = viper.GetInt("layout.header_skip")
	}
	if viper.IsSet("layout.footer_skip") {
		layout.FooterSkip = viper.GetInt("layout.footer_skip")
	}
	if v := viper.GetString("layout.marker"); v != "" {
		layout.Marker = v
	}
	if v := viper.GetString("layout.date_prefix"); v != "" {
		layout.DatePrefix = v
	}
	if v := viper.GetString("layout.website_prefix"); v != "" {
		layout.WebsitePrefix = v
	}
	if v := viper.GetString("layout.boilerplate_marker"); v != "" {
		layout.BoilerplateMarker = v
	}
	if viper.IsSet("layout.boilerplate_trim") {
		layout.BoilerplateTrim = viper.GetInt("layout.boilerplate_trim")
	}
	if v := viper.GetStringSlice("layout.doc_prefixes"); len(v) > 0 {
		layout.DocPrefixes = v
	}
}

func init() {
	runCmd.Flags().String("input", "", "path to the listing PDF")
	runCmd.Flags().String("output-dir", "", "directory for the output file (default data/output)")
	runCmd.Flags().String("filename", "", "output file name (default ANSI_Extracted.xlsx)")
	runCmd.Flags().String("format", "", "output format: xlsx, yaml, or json (default xlsx)")
	runCmd.Flags().Bool("strict", false, "abort on any segment the heuristics cannot parse")
	runCmd.Flags().Bool("pad-missing", true, "backfill gap fields with the previous record's value")
	runCmd.Flags().Int("preview-rows", 5, "rows to echo after the run")

	rootCmd.AddCommand(runCmd)
}
