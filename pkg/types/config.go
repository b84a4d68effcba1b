// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LayoutConfig names the layout constants of the standards-listing PDF.
// The published listing changes layout between editions; keeping the
// constants here makes a new edition a configuration change rather than
// a code change.
type LayoutConfig struct {
	// HeaderSkip is the number of title-page header lines dropped from
	// the first page.
	HeaderSkip int `json:"header_skip" yaml:"header_skip"`

	// FooterSkip is the number of trailing boilerplate lines dropped
	// from every page.
	FooterSkip int `json:"footer_skip" yaml:"footer_skip"`

	// Marker is the substring that terminates each record's line group.
	Marker string `json:"marker" yaml:"marker"`

	// DatePrefix is the prefix preceding the publishing date on the
	// marker line.
	DatePrefix string `json:"date_prefix" yaml:"date_prefix"`

	// WebsitePrefix is the prefix preceding the organization website.
	WebsitePrefix string `json:"website_prefix" yaml:"website_prefix"`

	// BoilerplateMarker identifies name lines that have absorbed the
	// page footer disclaimer.
	BoilerplateMarker string `json:"boilerplate_marker" yaml:"boilerplate_marker"`

	// BoilerplateTrim is the number of trailing disclaimer characters
	// to cut from the legal name. Fixed-width in the source layout.
	BoilerplateTrim int `json:"boilerplate_trim" yaml:"boilerplate_trim"`

	// DocPrefixes are the designators that open a document-identifier
	// line.
	DocPrefixes []string `json:"doc_prefixes" yaml:"doc_prefixes"`
}

// DefaultLayout returns the layout of the January 2023 listing edition.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		HeaderSkip:        11,
		FooterSkip:        2,
		Marker:            "Final Action Date",
		DatePrefix:        "Final Action Date: ",
		WebsitePrefix:     "w: ",
		BoilerplateMarker: "The data in this document is reported",
		BoilerplateTrim:   106,
		DocPrefixes:       []string{"ANSI", "INCITS"},
	}
}

// ParseConfig holds settings for the parsing stage.
type ParseConfig struct {
	// Strict aborts the run when a segment lacks a document-identifier
	// line or a column cannot be backfilled, matching the legacy
	// all-or-nothing behavior. When false, such segments get gap fields
	// and the run continues.
	Strict bool `json:"strict" yaml:"strict"`

	// PadMissing backfills gap fields by duplicating the previous
	// record's value (legacy policy). When false, gaps stay empty and
	// are counted in the run summary.
	PadMissing bool `json:"pad_missing" yaml:"pad_missing"`
}

// DefaultParseConfig returns the lenient, duplicate-padding defaults.
func DefaultParseConfig() ParseConfig {
	return ParseConfig{Strict: false, PadMissing: true}
}

// OutputFormat selects the serialization of the extracted table.
type OutputFormat string

const (
	FormatXLSX OutputFormat = "xlsx"
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
)

// OutputConfig holds settings for the reporting stage.
type OutputConfig struct {
	// OutputDir is the directory for the serialized table (created if
	// absent).
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Filename is the output file name under OutputDir.
	Filename string `json:"filename" yaml:"filename"`

	// Format selects the output serialization: xlsx, yaml, or json.
	Format OutputFormat `json:"format" yaml:"format"`

	// PreviewRows is the number of leading rows echoed to the console
	// after a run (default 5).
	PreviewRows int `json:"preview_rows" yaml:"preview_rows"`
}

// DefaultOutputConfig returns the conventional output location.
func DefaultOutputConfig() OutputConfig {
	return OutputConfig{
		OutputDir:   "data/output",
		Filename:    "ANSI_Extracted.xlsx",
		Format:      FormatXLSX,
		PreviewRows: 5,
	}
}

// IndexConfig holds settings for the record index.
type IndexConfig struct {
	// IndexDir is the directory containing the SQLite database.
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// MaxResults is the default maximum number of query results
	// (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	// InputPath is the source PDF.
	InputPath string `json:"input_path" yaml:"input_path"`

	Layout LayoutConfig `json:"layout" yaml:"layout"`
	Parse  ParseConfig  `json:"parse" yaml:"parse"`
	Output OutputConfig `json:"output" yaml:"output"`
	Index  IndexConfig  `json:"index" yaml:"index"`
}

// DefaultInputPath is where the run command looks for the listing PDF
// when no path is given.
const DefaultInputPath = "data/input/Ansi_Standards_asof_Jan2323.pdf"
