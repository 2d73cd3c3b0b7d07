// Package slog provides logging decorators for alfroster services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/alfroster"
)

// Ensure LoggingPageSource implements alfroster.PageSource.
var _ alfroster.PageSource = (*LoggingPageSource)(nil)

// LoggingPageSource wraps a PageSource with debug logging.
type LoggingPageSource struct {
	next   alfroster.PageSource
	logger *slog.Logger
}

// NewLoggingPageSource creates a new LoggingPageSource.
func NewLoggingPageSource(next alfroster.PageSource, logger *slog.Logger) *LoggingPageSource {
	return &LoggingPageSource{next: next, logger: logger}
}

// NumPages delegates to the wrapped source.
func (s *LoggingPageSource) NumPages() int {
	return s.next.NumPages()
}

// PageText delegates to the wrapped source and logs the operation.
func (s *LoggingPageSource) PageText(ctx context.Context, i int) (text string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("page text",
			"page", i,
			"chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.PageText(ctx, i)
}

// Close delegates to the wrapped source.
func (s *LoggingPageSource) Close() error {
	return s.next.Close()
}
