// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strings"
)

// columnWidth caps the rendered width of each preview cell.
const columnWidth = 24

// Preview writes the first n table rows and a per-column summary to w.
func Preview(w io.Writer, t Table, n int) {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}

	fmt.Fprintf(w, "\nFirst %d rows:\n", n)
	writePreviewRow(w, t.Header)
	fmt.Fprintln(w, strings.Repeat("-", (columnWidth+2)*len(t.Header)))
	for _, row := range t.Rows[:n] {
		writePreviewRow(w, row)
	}

	fmt.Fprintf(w, "\nColumns (%d rows):\n", len(t.Rows))
	for i, name := range t.Header {
		nonEmpty := 0
		for _, row := range t.Rows {
			if i < len(row) && row[i] != "" {
				nonEmpty++
			}
		}
		fmt.Fprintf(w, "  %-20s %d non-empty\n", name, nonEmpty)
	}
}

func writePreviewRow(w io.Writer, cells []string) {
	for _, c := range cells {
		fmt.Fprintf(w, "%-*s  ", columnWidth, Truncate(c, columnWidth))
	}
	fmt.Fprintln(w)
}

// Truncate shortens s to at most max runes, marking the cut with an
// ellipsis. Truncation is rune-based so a multibyte character at the
// cut point cannot be split.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
