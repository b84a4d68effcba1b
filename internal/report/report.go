// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report assembles extracted records into the output table and
// serializes it to spreadsheet, YAML, or JSON form.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/mkutashi/standards-extractor/pkg/types"
)

// parens strips the literal parenthesis characters the legal-name
// heuristic carries over from the source layout.
var parens = strings.NewReplacer("(", "", ")", "")

// Normalize applies the table-level cleanup to records: parentheses are
// stripped from the legal name and the constant classification column
// is filled in. The input slice is not modified.
func Normalize(records []types.Record) []types.Record {
	out := make([]types.Record, len(records))
	for i, r := range records {
		r.LegalName = parens.Replace(r.LegalName)
		r.Classification = types.ClassificationAmerican
		out[i] = r
	}
	return out
}

// Table is the assembled output: a header row plus one row of cells per
// record, in extraction order.
type Table struct {
	Header []string
	Rows   [][]string
}

// Build assembles normalized records into a Table.
func Build(records []types.Record) Table {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = r.Values()
	}
	return Table{Header: types.Columns, Rows: rows}
}

// Shape returns the table's row and column counts, header excluded.
func (t Table) Shape() (rows, cols int) {
	return len(t.Rows), len(t.Header)
}

// Write serializes normalized records per the output configuration and
// returns the path written. The output directory is created if absent;
// an existing file is overwritten. The configured filename's extension
// is adjusted to match the format.
func Write(records []types.Record, cfg types.OutputConfig, w io.Writer) (string, error) {
	path := filepath.Join(cfg.OutputDir, withExt(cfg.Filename, cfg.Format))

	switch cfg.Format {
	case types.FormatXLSX, "":
		if err := WriteXLSX(Build(records), path); err != nil {
			return "", err
		}
	case types.FormatYAML:
		if err := WriteYAML(records, path); err != nil {
			return "", err
		}
	case types.FormatJSON:
		if err := WriteJSON(records, path); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unsupported format %q: use xlsx, yaml, or json", cfg.Format)
	}

	fmt.Fprintf(w, "Data saved to: %s\n", path)
	return path, nil
}

// withExt replaces the filename's extension to match the format.
func withExt(filename string, format types.OutputFormat) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	switch format {
	case types.FormatYAML:
		return base + ".yaml"
	case types.FormatJSON:
		return base + ".json"
	default:
		return base + ".xlsx"
	}
}
