package alfroster

import "context"

// PageSource exposes the ordered pages of a roster document.
// Implementations hide the PDF library behind a text-per-page contract.
type PageSource interface {
	// NumPages returns the number of pages in the document.
	NumPages() int

	// PageText returns the plain text of the zero-based page i.
	// An empty string means the page has no extractable text.
	PageText(ctx context.Context, i int) (string, error)

	// Close releases document resources.
	// Must be called when the PageSource is no longer needed.
	Close() error
}

// ExtractProgress reports progress during roster extraction.
type ExtractProgress struct {
	Page    int
	Total   int
	Records int
	Err     error
}

// ExtractProgressFunc is called as pages are processed.
type ExtractProgressFunc func(ExtractProgress)
