package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/alfroster/mock"
	alfslog "github.com/fwojciec/alfroster/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingPageSource_PageText(t *testing.T) {
	t.Parallel()

	t.Run("logs page retrieval with size and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PageSource{
			NumPagesFn: func() int { return 1 },
			PageTextFn: func(_ context.Context, i int) (string, error) {
				return "ADAMS (GAGE) - 68301 ALF", nil
			},
		}

		src := alfslog.NewLoggingPageSource(inner, debugLogger(&buf))
		text, err := src.PageText(context.Background(), 0)

		require.NoError(t, err)
		assert.NotEmpty(t, text)
		output := buf.String()
		assert.Contains(t, output, "page text")
		assert.Contains(t, output, "page=0")
		assert.Contains(t, output, "chars=24")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PageSource{
			NumPagesFn: func() int { return 1 },
			PageTextFn: func(_ context.Context, i int) (string, error) {
				return "", errors.New("damaged page")
			},
		}

		src := alfslog.NewLoggingPageSource(inner, debugLogger(&buf))
		_, err := src.PageText(context.Background(), 0)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"damaged page\"")
	})
}
