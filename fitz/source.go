// Package fitz provides a PDF-backed page source using go-fitz (MuPDF).
package fitz

import (
	"context"
	"fmt"

	"github.com/fwojciec/alfroster"
	"github.com/gen2brain/go-fitz"
)

// Ensure Source implements alfroster.PageSource at compile time.
var _ alfroster.PageSource = (*Source)(nil)

// Source reads page text from a PDF document.
type Source struct {
	doc *fitz.Document
}

// Open opens the PDF at path. Close must be called when the Source is
// no longer needed.
func Open(path string) (*Source, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %q: %w", path, err)
	}
	return &Source{doc: doc}, nil
}

// NumPages returns the number of pages in the document.
func (s *Source) NumPages() int {
	return s.doc.NumPage()
}

// PageText returns the plain text of the zero-based page i.
func (s *Source) PageText(ctx context.Context, i int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := s.doc.Text(i)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
	}
	return text, nil
}

// Close releases document resources.
func (s *Source) Close() error {
	return s.doc.Close()
}
