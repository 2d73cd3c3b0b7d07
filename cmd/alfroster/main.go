package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/alfroster"
	alfcsv "github.com/fwojciec/alfroster/csv"
	"github.com/fwojciec/alfroster/fitz"
	alfslog "github.com/fwojciec/alfroster/slog"
	"github.com/fwojciec/alfroster/sqlite"
	"github.com/fwojciec/alfroster/xlsx"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	FacilityService alfroster.FacilityService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("alfroster"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'alfroster --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set ALFROSTER_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	logger := newLogger(stderr)

	// Wire core services into dependencies
	m.FacilityService = alfslog.NewLoggingFacilityService(sqlite.NewFacilityService(m.DB), logger)
	deps.DB = m.DB
	deps.Facilities = m.FacilityService
	deps.OpenSource = func(path string) (alfroster.PageSource, error) {
		src, err := fitz.Open(path)
		if err != nil {
			return nil, err
		}
		return alfslog.NewLoggingPageSource(src, logger), nil
	}
	deps.NewWriter = func(path string, asXLSX bool) alfroster.FacilityWriter {
		if asXLSX {
			return xlsx.NewWriter(path)
		}
		return alfcsv.NewWriter(path)
	}

	return kongCtx.Run(deps)
}

// newLogger builds the CLI logger. Debug logging is opt-in via
// ALFROSTER_DEBUG.
func newLogger(stderr io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("ALFROSTER_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("ALFROSTER_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "alfroster.db"
	}
	dir := filepath.Join(home, ".alfroster")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "alfroster.db")
}
