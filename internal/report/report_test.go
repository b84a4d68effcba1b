// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"go.yaml.in/yaml/v3"

	"github.com/mkutashi/standards-extractor/pkg/types"
)

func sampleRecords() []types.Record {
	return []types.Record{
		{
			OperatingName:  "ACME",
			LegalName:      "(Example Corp, Inc.)",
			Website:        "www.acme.org",
			DocumentName:   "ANSI X9.24-2021",
			StandardTitle:  "Retail Financial Services Key Management",
			PublishingDate: "2021-05-01",
		},
		{
			OperatingName:  "BETA",
			LegalName:      "(Beta Standards Body)",
			Website:        "Nil",
			DocumentName:   "INCITS 499-2018",
			StandardTitle:  "Information Technology Access Control",
			PublishingDate: "2018-06-30",
		},
	}
}

func TestNormalize(t *testing.T) {
	in := sampleRecords()
	out := Normalize(in)

	if out[0].LegalName != "Example Corp, Inc." {
		t.Errorf("LegalName = %q, want parentheses stripped", out[0].LegalName)
	}
	for i, r := range out {
		if r.Classification != "American" {
			t.Errorf("record %d Classification = %q, want %q", i, r.Classification, "American")
		}
	}
	// Input untouched.
	if in[0].LegalName != "(Example Corp, Inc.)" {
		t.Errorf("Normalize modified its input: %q", in[0].LegalName)
	}
}

func TestBuildShape(t *testing.T) {
	table := Build(Normalize(sampleRecords()))

	rows, cols := table.Shape()
	if rows != 2 || cols != 7 {
		t.Fatalf("Shape = %d x %d, want 2 x 7", rows, cols)
	}
	if table.Header[6] != "American Standard" {
		t.Errorf("header[6] = %q, want %q", table.Header[6], "American Standard")
	}
	if table.Rows[0][0] != "ACME" || table.Rows[0][6] != "American" {
		t.Errorf("row 0 = %v", table.Rows[0])
	}
}

func TestWriteXLSX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "records.xlsx")

	table := Build(Normalize(sampleRecords()))
	if err := WriteXLSX(table, path); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := f.GetCellValue(sheetName, "A1")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Operating Name" {
		t.Errorf("A1 = %q, want %q", got, "Operating Name")
	}
	got, err = f.GetCellValue(sheetName, "D2")
	if err != nil {
		t.Fatal(err)
	}
	if got != "ANSI X9.24-2021" {
		t.Errorf("D2 = %q, want %q", got, "ANSI X9.24-2021")
	}
	got, err = f.GetCellValue(sheetName, "G3")
	if err != nil {
		t.Fatal(err)
	}
	if got != "American" {
		t.Errorf("G3 = %q, want %q", got, "American")
	}
}

func TestWriteYAMLAndJSON(t *testing.T) {
	dir := t.TempDir()
	records := Normalize(sampleRecords())

	yamlPath := filepath.Join(dir, "records.yaml")
	if err := WriteYAML(records, yamlPath); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(yamlPath)
	if err != nil {
		t.Fatal(err)
	}
	var fromYAML []types.Record
	if err := yaml.Unmarshal(data, &fromYAML); err != nil {
		t.Fatal(err)
	}
	if len(fromYAML) != 2 || fromYAML[0].OperatingName != "ACME" {
		t.Errorf("YAML round trip = %+v", fromYAML)
	}

	jsonPath := filepath.Join(dir, "records.json")
	if err := WriteJSON(records, jsonPath); err != nil {
		t.Fatal(err)
	}
	data, err = os.ReadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	var fromJSON []types.Record
	if err := json.Unmarshal(data, &fromJSON); err != nil {
		t.Fatal(err)
	}
	if len(fromJSON) != 2 || fromJSON[1].Website != "Nil" {
		t.Errorf("JSON round trip = %+v", fromJSON)
	}
}

func TestWriteDispatch(t *testing.T) {
	tests := []struct {
		format   types.OutputFormat
		wantFile string
	}{
		{types.FormatXLSX, "records.xlsx"},
		{types.FormatYAML, "records.yaml"},
		{types.FormatJSON, "records.json"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			dir := t.TempDir()
			cfg := types.OutputConfig{
				OutputDir: dir,
				Filename:  "records.xlsx",
				Format:    tt.format,
			}
			var log bytes.Buffer
			path, err := Write(Normalize(sampleRecords()), cfg, &log)
			if err != nil {
				t.Fatal(err)
			}
			if filepath.Base(path) != tt.wantFile {
				t.Errorf("path = %q, want base %q", path, tt.wantFile)
			}
			if _, err := os.Stat(path); err != nil {
				t.Errorf("output file missing: %v", err)
			}
			if !strings.Contains(log.String(), "Data saved to:") {
				t.Errorf("log = %q, want save confirmation", log.String())
			}
		})
	}

	t.Run("unsupported format", func(t *testing.T) {
		cfg := types.OutputConfig{OutputDir: t.TempDir(), Filename: "r.xlsx", Format: "csv"}
		if _, err := Write(nil, cfg, &bytes.Buffer{}); err == nil {
			t.Fatal("expected error for unsupported format")
		}
	})
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short string untouched", "ACME", 24, "ACME"},
		{"exact length untouched", "abcdef", 6, "abcdef"},
		{"long string marked", "abcdefghij", 8, "abcde..."},
		{
			// Multibyte runes at the cut point must not be split
			// into invalid UTF-8.
			name: "multibyte cut point",
			in:   "Gestión de Claves Criptográficas",
			max:  10,
			want: "Gestión...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("Truncate(%q, %d) produced invalid UTF-8", tt.in, tt.max)
			}
		})
	}
}

func TestPreviewMultibyteRows(t *testing.T) {
	records := []types.Record{{
		OperatingName:  "ACME",
		LegalName:      "Compañía de Normalización y Certificación, S.A.",
		Website:        "www.acme.example",
		DocumentName:   "ANSI X9.24-2021",
		StandardTitle:  "Gestión de Claves Criptográficas para Servicios Financieros",
		PublishingDate: "2021-05-01",
	}}

	var buf bytes.Buffer
	Preview(&buf, Build(Normalize(records)), 5)

	if !utf8.ValidString(buf.String()) {
		t.Errorf("preview output is not valid UTF-8: %q", buf.String())
	}
}

func TestPreview(t *testing.T) {
	var buf bytes.Buffer
	Preview(&buf, Build(Normalize(sampleRecords())), 5)

	out := buf.String()
	if !strings.Contains(out, "First 2 rows") {
		t.Errorf("preview = %q, want row count capped at table size", out)
	}
	if !strings.Contains(out, "ACME") {
		t.Errorf("preview missing first row: %q", out)
	}
	if !strings.Contains(out, "Operating Name") {
		t.Errorf("preview missing header: %q", out)
	}
}
