// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse turns per-page listing text into structured records.
//
// Each page is trimmed of header/footer boilerplate, segmented on the
// marker phrase that closes every entry, and run through per-field
// heuristics. The heuristics are positional and layout-coupled; all
// layout constants live in types.LayoutConfig.
package parse

import (
	"fmt"
	"io"
	"strings"

	"github.com/mkutashi/standards-extractor/pkg/types"
)

// Stats summarizes repairs and gaps encountered during a parse run.
type Stats struct {
	Pages       int
	Segments    int
	DocGaps     int // segments without a document-identifier line
	DateGaps    int // marker lines without a parseable date
	NamePads    int // name columns backfilled by reconciliation
	WebsitePads int // website columns backfilled by reconciliation
	Truncated   int // trailing overrun values dropped at assembly
}

// Builder accumulates column values page by page and assembles them
// into records. The zero value is not usable; construct with New.
//
// Columns may transiently diverge in length by one within a segment;
// reconciliation restores the invariant before the next segment starts.
type Builder struct {
	layout types.LayoutConfig
	cfg    types.ParseConfig
	w      io.Writer

	operating []string
	legal     []string
	website   []string
	document  []string
	title     []string
	date      []string

	stats Stats
}

// New returns a Builder using the given layout and parse settings.
// Progress and warnings are written to w.
func New(layout types.LayoutConfig, cfg types.ParseConfig, w io.Writer) *Builder {
	if w == nil {
		w = io.Discard
	}
	return &Builder{layout: layout, cfg: cfg, w: w}
}

// AddPage parses one page of extracted text. Pages must be added in
// document order; the first page gets the title-page header skip.
func (b *Builder) AddPage(text string) error {
	pageIndex := b.stats.Pages
	b.stats.Pages++

	lines := trimPage(strings.Split(text, "\n"), pageIndex, b.layout)

	// The website fallback is page-scoped: a page with no website line
	// at all contributes a single "Nil" before its segments are read.
	if !containsAny(lines, b.layout.WebsitePrefix) {
		b.website = append(b.website, "Nil")
	}

	for segIndex, seg := range splitSegments(lines, b.layout.Marker) {
		if err := b.addSegment(pageIndex, segIndex, seg); err != nil {
			return err
		}
	}
	return nil
}

// addSegment runs the field heuristics for one segment and reconciles
// the column lengths.
func (b *Builder) addSegment(pageIndex, segIndex int, seg []string) error {
	b.stats.Segments++
	pos := position{page: pageIndex, segment: segIndex}

	if err := b.extractDate(pos, seg); err != nil {
		return err
	}
	b.extractNames(seg)
	if err := b.extractWebsite(pos, seg); err != nil {
		return err
	}
	if err := b.extractDocInfo(pos, seg); err != nil {
		return err
	}
	return b.reconcile(pos)
}

// Records assembles the accumulated columns into records, verifying the
// equal-length invariant. In strict mode any residual misalignment is
// an error; otherwise trailing overruns are dropped with a warning.
func (b *Builder) Records() ([]types.Record, error) {
	n := b.stats.Segments

	columns := []struct {
		name   string
		values *[]string
	}{
		{"operating name", &b.operating},
		{"legal name", &b.legal},
		{"website", &b.website},
		{"document name", &b.document},
		{"standard title", &b.title},
		{"publishing date", &b.date},
	}

	for _, c := range columns {
		switch {
		case len(*c.values) < n:
			// Reconciliation keeps every column at or above the
			// segment count; a shortfall means a heuristic bug.
			return nil, fmt.Errorf("column %s has %d values for %d segments", c.name, len(*c.values), n)
		case len(*c.values) > n:
			if b.cfg.Strict {
				return nil, fmt.Errorf("column %s has %d values for %d segments", c.name, len(*c.values), n)
			}
			dropped := len(*c.values) - n
			b.stats.Truncated += dropped
			fmt.Fprintf(b.w, "warning: dropping %d extra %s value(s)\n", dropped, c.name)
			*c.values = (*c.values)[:n]
		}
	}

	records := make([]types.Record, n)
	for i := 0; i < n; i++ {
		records[i] = types.Record{
			OperatingName:  b.operating[i],
			LegalName:      b.legal[i],
			Website:        b.website[i],
			DocumentName:   b.document[i],
			StandardTitle:  b.title[i],
			PublishingDate: b.date[i],
		}
	}
	return records, nil
}

// Stats returns the counters accumulated so far.
func (b *Builder) Stats() Stats {
	return b.stats
}

// position locates a segment for error messages and warnings.
type position struct {
	page    int
	segment int
}

func (p position) String() string {
	return fmt.Sprintf("page %d segment %d", p.page+1, p.segment+1)
}

// trimPage drops the trailing boilerplate lines from every page and the
// title-page header from the first page. Out-of-range skips clamp to an
// empty page rather than failing.
func trimPage(lines []string, pageIndex int, layout types.LayoutConfig) []string {
	end := len(lines) - layout.FooterSkip
	if end < 0 {
		end = 0
	}
	start := 0
	if pageIndex == 0 {
		start = layout.HeaderSkip
	}
	if start > end {
		start = end
	}
	return lines[start:end]
}

// splitSegments cuts the page's lines at each occurrence of the marker
// substring. Each segment includes its terminating marker line; lines
// after the last marker are discarded. A page without markers yields no
// segments.
func splitSegments(lines []string, marker string) [][]string {
	var segments [][]string
	start := -1
	for idx, line := range lines {
		if strings.Contains(line, marker) {
			segments = append(segments, lines[start+1:idx+1])
			start = idx
		}
	}
	return segments
}

// containsAny reports whether any line contains the substring.
func containsAny(lines []string, substr string) bool {
	for _, line := range lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
