// Package extract provides roster extraction orchestration. It walks
// the pages of a roster document, parses each page's text
// independently, and concatenates the per-page records preserving page
// order and in-page order.
//
// Pages are independent: no parse state crosses a page boundary. A
// facility entry split by a page break therefore yields two fragments,
// and the fragment without a name or license number is dropped.
package extract

import (
	"context"

	"github.com/fwojciec/alfroster"
	"golang.org/x/sync/errgroup"
)

// Extractor coordinates page-by-page parsing of a roster document.
type Extractor struct {
	// Pages supplies the document's page text.
	Pages alfroster.PageSource

	// SkipPages is the number of leading pages (cover and summary) to
	// ignore entirely. Skipped pages are never retrieved.
	SkipPages int

	// RosterDate is stamped on every extracted record.
	RosterDate string

	// Concurrency is the number of pages parsed in parallel. Values
	// below 2 select the sequential path. Output order is identical
	// either way.
	Concurrency int
}

// Result holds the outcome of an extraction.
type Result struct {
	Pages      int
	Skipped    int
	Facilities []*alfroster.Facility
}

// Extract parses all pages past SkipPages and returns records in page
// order. Empty or unreadable pages contribute zero records rather than
// failing the extraction; per-page errors are reported through the
// progress callback.
func (e *Extractor) Extract(ctx context.Context, progress alfroster.ExtractProgressFunc) (*Result, error) {
	total := e.Pages.NumPages()
	skip := e.SkipPages
	if skip < 0 {
		skip = 0
	}

	result := &Result{Pages: total, Skipped: min(skip, total)}
	if total <= skip {
		return result, nil
	}

	// Results are collected by page index so concurrent parsing cannot
	// reorder output.
	pageRecords := make([][]*alfroster.Facility, total)

	if e.Concurrency > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(e.Concurrency)
		for i := skip; i < total; i++ {
			g.Go(func() error {
				pageRecords[i] = e.parsePage(gctx, i, total, progress)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := skip; i < total; i++ {
			pageRecords[i] = e.parsePage(ctx, i, total, progress)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i := skip; i < total; i++ {
		result.Facilities = append(result.Facilities, pageRecords[i]...)
	}

	return result, nil
}

// parsePage retrieves and parses a single page. Retrieval failures
// yield zero records.
func (e *Extractor) parsePage(ctx context.Context, i, total int, progress alfroster.ExtractProgressFunc) []*alfroster.Facility {
	if ctx.Err() != nil {
		return nil
	}

	text, err := e.Pages.PageText(ctx, i)
	if err != nil {
		if progress != nil {
			progress(alfroster.ExtractProgress{Page: i, Total: total, Err: err})
		}
		return nil
	}
	if text == "" {
		if progress != nil {
			progress(alfroster.ExtractProgress{Page: i, Total: total})
		}
		return nil
	}

	records := alfroster.ParsePage(text, e.RosterDate)
	if progress != nil {
		progress(alfroster.ExtractProgress{Page: i, Total: total, Records: len(records)})
	}
	return records
}
