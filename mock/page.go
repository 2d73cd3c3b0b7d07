package mock

import (
	"context"

	"github.com/fwojciec/alfroster"
)

var _ alfroster.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of alfroster.PageSource.
type PageSource struct {
	NumPagesFn func() int
	PageTextFn func(ctx context.Context, i int) (string, error)
	CloseFn    func() error
}

func (s *PageSource) NumPages() int {
	return s.NumPagesFn()
}

func (s *PageSource) PageText(ctx context.Context, i int) (string, error) {
	return s.PageTextFn(ctx, i)
}

func (s *PageSource) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}

// StaticPageSource is a PageSource backed by a fixed slice of page
// texts, convenient for extraction tests.
type StaticPageSource struct {
	Pages []string
}

var _ alfroster.PageSource = (*StaticPageSource)(nil)

func (s *StaticPageSource) NumPages() int {
	return len(s.Pages)
}

func (s *StaticPageSource) PageText(_ context.Context, i int) (string, error) {
	return s.Pages[i], nil
}

func (s *StaticPageSource) Close() error {
	return nil
}
