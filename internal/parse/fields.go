// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"fmt"
	"regexp"
	"strings"
)

// nameLine matches an operating-name line: a non-whitespace token
// followed by the opening parenthesis of the legal name.
var nameLine = regexp.MustCompile(`^\S+ \(`)

// extractDate reads the publishing date from the segment's marker line.
// The marker line is pipe-delimited; the piece carrying the marker holds
// the date after the DatePrefix. A marker line without a parseable date
// is an error in strict mode and a counted gap otherwise.
func (b *Builder) extractDate(pos position, seg []string) error {
	appended := false
	if len(seg) > 0 {
		last := seg[len(seg)-1]
		for _, piece := range strings.Split(last, "|") {
			if !strings.Contains(piece, b.layout.Marker) {
				continue
			}
			parts := strings.SplitN(piece, b.layout.DatePrefix, 2)
			if len(parts) < 2 {
				continue
			}
			b.date = append(b.date, strings.TrimSpace(parts[1]))
			appended = true
		}
	}
	if appended {
		return nil
	}

	b.stats.DateGaps++
	if b.cfg.Strict {
		return fmt.Errorf("%s: marker line has no %q date", pos, b.layout.DatePrefix)
	}
	fmt.Fprintf(b.w, "warning: %s: marker line has no date, padding\n", pos)
	b.date = append(b.date, b.padValue(b.date))
	return nil
}

// extractNames appends operating and legal names for every name line in
// the segment. The operating name is the first whitespace-delimited
// token; the legal name is the rest of the line. Name lines that have
// absorbed the page disclaimer lose its fixed trailing width.
func (b *Builder) extractNames(seg []string) {
	for _, line := range seg {
		if !nameLine.MatchString(line) {
			continue
		}
		fields := strings.Fields(line)
		b.operating = append(b.operating, fields[0])

		legal := strings.Join(fields[1:], " ")
		if strings.Contains(line, b.layout.BoilerplateMarker) {
			legal = trimTrailing(legal, b.layout.BoilerplateTrim)
		}
		b.legal = append(b.legal, legal)
	}
}

// extractWebsite appends the website for every line in the segment that
// carries the website prefix. The value sits in the second pipe-field,
// after the prefix.
func (b *Builder) extractWebsite(pos position, seg []string) error {
	for _, line := range seg {
		if !strings.Contains(line, b.layout.WebsitePrefix) {
			continue
		}
		pieces := strings.Split(line, "|")
		if len(pieces) < 2 {
			if b.cfg.Strict {
				return fmt.Errorf("%s: website line is not pipe-delimited: %q", pos, line)
			}
			fmt.Fprintf(b.w, "warning: %s: skipping malformed website line\n", pos)
			continue
		}
		parts := strings.SplitN(pieces[1], b.layout.WebsitePrefix, 2)
		if len(parts) < 2 {
			if b.cfg.Strict {
				return fmt.Errorf("%s: website field lacks %q prefix: %q", pos, b.layout.WebsitePrefix, line)
			}
			fmt.Fprintf(b.w, "warning: %s: skipping malformed website line\n", pos)
			continue
		}
		b.website = append(b.website, strings.TrimSpace(parts[1]))
	}
	return nil
}

// extractDocInfo appends the document name and standard title. The
// segment's first document-identifier line (a DocPrefixes designator
// containing a comma) opens the span; the span runs to the line before
// the marker line, joined with spaces. Text before the first comma is
// the document name, the remainder is the title.
//
// A segment without an identifier line fails the run in strict mode and
// gets gap fields otherwise.
func (b *Builder) extractDocInfo(pos position, seg []string) error {
	index := -1
	for idx, line := range seg {
		if b.hasDocPrefix(line) && strings.Contains(line, ",") {
			index = idx
			break
		}
	}
	if index < 0 {
		b.stats.DocGaps++
		if b.cfg.Strict {
			return fmt.Errorf("%s: no document-identifier line (%s)", pos, strings.Join(b.layout.DocPrefixes, "/"))
		}
		fmt.Fprintf(b.w, "warning: %s: no document-identifier line, padding\n", pos)
		b.document = append(b.document, b.padValue(b.document))
		b.title = append(b.title, b.padValue(b.title))
		return nil
	}

	joined := strings.Join(seg[index:len(seg)-1], " ")
	pieces := strings.Split(joined, ",")
	b.document = append(b.document, pieces[0])
	b.title = append(b.title, strings.TrimLeft(strings.Join(pieces[1:], " "), " "))
	return nil
}

// reconcile restores the equal-length invariant after a segment whose
// name or website heuristic produced nothing: the lagging columns are
// backfilled up to the title count.
func (b *Builder) reconcile(pos position) error {
	if len(b.operating) < len(b.title) {
		if b.cfg.Strict && len(b.operating) == 0 {
			return fmt.Errorf("%s: no operating name to backfill", pos)
		}
		b.stats.NamePads++
		b.operating = append(b.operating, b.padValue(b.operating))
		b.legal = append(b.legal, b.padValue(b.legal))
	}
	if len(b.website) < len(b.title) {
		if b.cfg.Strict && len(b.website) == 0 {
			return fmt.Errorf("%s: no website to backfill", pos)
		}
		b.stats.WebsitePads++
		b.website = append(b.website, b.padValue(b.website))
	}
	return nil
}

// padValue returns the backfill value for a lagging column: the last
// value under the duplicate-padding policy, an empty string otherwise.
func (b *Builder) padValue(column []string) string {
	if b.cfg.PadMissing && len(column) > 0 {
		return column[len(column)-1]
	}
	return ""
}

// hasDocPrefix reports whether the line opens with one of the document
// designators.
func (b *Builder) hasDocPrefix(line string) bool {
	for _, p := range b.layout.DocPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// trimTrailing removes the last n characters of s, or everything when s
// is shorter than n.
func trimTrailing(s string, n int) string {
	r := []rune(s)
	if n >= len(r) {
		return ""
	}
	return string(r[:len(r)-n])
}
