// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkutashi/standards-extractor/internal/index"
	"github.com/mkutashi/standards-extractor/internal/report"
	"github.com/mkutashi/standards-extractor/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Persist and query extracted records (ingest, query)",
	Long: `Index manages a local SQLite database of extracted records. Ingest
runs the pipeline and stores the records with run provenance; query
filters stored records by name, document, or date.`,
}

// --- ingest subcommand ---

var indexIngestCmd = &cobra.Command{
	Use:   "ingest [pdf]",
	Short: "Extract records from a PDF and store them in the index",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIndexIngest,
}

func runIndexIngest(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd, args)

	records, stats, err := extractRecords(cfg, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("Extracted %d records\n", len(records))
	reportGaps(stats)

	store, err := index.NewStore(indexConfig(cmd, cfg))
	if err != nil {
		return err
	}
	defer store.Close()

	runID, err := store.Ingest(context.Background(), cfg.InputPath, records)
	if err != nil {
		return err
	}
	fmt.Printf("Stored %d records as run %d\n", len(records), runID)
	return nil
}

// --- query subcommand ---

var indexQueryCmd = &cobra.Command{
	Use:   "query [name terms]",
	Short: "Query stored records by name, document, or date",
	RunE:  runIndexQuery,
}

func runIndexQuery(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd, nil)

	store, err := index.NewStore(indexConfig(cmd, cfg))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("filter required: provide name terms, --document, --date, or --run")
	}

	results, err := store.Query(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatQueryOutput(results, jsonOutput)
}

func formatQueryOutput(results []index.StoredRecord, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-12s  %-24s  %-30s  %-12s\n",
		"Run", "Operating", "Document", "Title", "Date")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 92))

	for _, r := range results {
		fmt.Fprintf(os.Stdout, "%-4d  %-12s  %-24s  %-30s  %-12s\n",
			r.RunID, r.OperatingName,
			report.Truncate(r.DocumentName, 24),
			report.Truncate(r.StandardTitle, 30),
			r.PublishingDate)
	}
	return nil
}

// --- shared helpers ---

func indexConfig(cmd *cobra.Command, cfg types.PipelineConfig) types.IndexConfig {
	out := cfg.Index
	if v, _ := cmd.Flags().GetString("index-dir"); v != "" {
		out.IndexDir = v
	}
	if v, _ := cmd.Flags().GetInt("max-results"); v > 0 {
		out.MaxResults = v
	}
	if out.IndexDir == "" {
		out.IndexDir = "data/index"
	}
	return out
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) index.QueryOptions {
	name, _ := cmd.Flags().GetString("name")
	if name == "" && len(args) > 0 {
		name = strings.Join(args, " ")
	}

	document, _ := cmd.Flags().GetString("document")
	date, _ := cmd.Flags().GetString("date")
	runID, _ := cmd.Flags().GetInt64("run")
	limit, _ := cmd.Flags().GetInt("limit")

	return index.QueryOptions{
		Name:       name,
		Document:   document,
		Date:       date,
		RunID:      runID,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	indexCmd.PersistentFlags().String("index-dir", "", "directory for the index database (default data/index)")
	indexCmd.PersistentFlags().Int("max-results", 20, "maximum number of query results")

	indexIngestCmd.Flags().String("input", "", "path to the listing PDF")
	indexIngestCmd.Flags().Bool("strict", false, "abort on any segment the heuristics cannot parse")
	indexIngestCmd.Flags().Bool("pad-missing", true, "backfill gap fields with the previous record's value")

	indexQueryCmd.Flags().String("name", "", "substring filter on operating or legal name")
	indexQueryCmd.Flags().String("document", "", "prefix filter on document name")
	indexQueryCmd.Flags().String("date", "", "exact publishing date filter")
	indexQueryCmd.Flags().Int64("run", 0, "restrict to one ingest run")
	indexQueryCmd.Flags().Int("limit", 0, "maximum results (overrides --max-results)")
	indexQueryCmd.Flags().Bool("json", false, "output results as JSON")

	indexCmd.AddCommand(indexIngestCmd, indexQueryCmd)
	rootCmd.AddCommand(indexCmd)
}
