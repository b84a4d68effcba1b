// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.pdf")

	_, err := Extract(path)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error = %v, want it to carry the path", err)
	}
}

// fakeSource implements pageSource for testing. Pages are 1-based; the
// page at failAt returns an error instead of text.
type fakeSource struct {
	pages  []string
	failAt int
}

func (f fakeSource) NumPage() int {
	return len(f.pages)
}

func (f fakeSource) PageText(n int) (string, error) {
	if n == f.failAt {
		return "", errors.New("bad content stream")
	}
	return f.pages[n-1], nil
}

func TestReadPagesInOrder(t *testing.T) {
	src := fakeSource{pages: []string{"first page", "second page", ""}}

	pages, err := readPages(src, "listing.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(pages))
	}
	for i, want := range src.pages {
		if pages[i] != want {
			t.Errorf("page %d = %q, want %q", i, pages[i], want)
		}
	}
}

func TestReadPagesDecodeFailureAborts(t *testing.T) {
	src := fakeSource{pages: []string{"first page", "second page"}, failAt: 2}

	pages, err := readPages(src, "listing.pdf")
	if err == nil {
		t.Fatal("expected error for undecodable page")
	}
	if pages != nil {
		t.Errorf("pages = %v, want nil on failure", pages)
	}
	if !strings.Contains(err.Error(), "page 2 of listing.pdf") {
		t.Errorf("error = %v, want page number and path", err)
	}
	if !strings.Contains(err.Error(), "bad content stream") {
		t.Errorf("error = %v, want wrapped cause", err)
	}
}
