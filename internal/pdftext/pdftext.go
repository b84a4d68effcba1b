// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts per-page plain text from a PDF document.
package pdftext

import (
	"errors"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// ErrNotFound indicates the input PDF path does not exist.
var ErrNotFound = errors.New("input PDF not found")

// Extract opens the PDF at path and returns the extracted plain text of
// each page, in document order. A missing path yields an error wrapping
// ErrNotFound; any other failure, including a page whose text cannot be
// decoded, aborts with a wrapped error.
func Extract(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("reading PDF %s: %w", path, err)
	}

	reader, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("reading PDF %s: %w", path, err)
	}

	return readPages(docPages{reader}, path)
}

// pageSource yields per-page plain text, 1-based like pdf.Reader.
type pageSource interface {
	NumPage() int
	PageText(n int) (string, error)
}

// docPages adapts a pdf.Reader to the pageSource interface.
type docPages struct {
	r *pdf.Reader
}

func (d docPages) NumPage() int {
	return d.r.NumPage()
}

// PageText returns the page's plain text. A null page object is an
// absent page, not a read failure; it yields empty text.
func (d docPages) PageText(n int) (string, error) {
	page := d.r.Page(n)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}

// readPages collects the text of every page in order. Any page that
// fails to decode aborts the extraction.
func readPages(src pageSource, path string) ([]string, error) {
	pages := make([]string, 0, src.NumPage())
	for n := 1; n <= src.NumPage(); n++ {
		text, err := src.PageText(n)
		if err != nil {
			return nil, fmt.Errorf("extracting page %d of %s: %w", n, path, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}
