package main

import (
	"context"
	"io"

	"github.com/fwojciec/alfroster"
	"github.com/fwojciec/alfroster/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Facilities alfroster.FacilityService

	// OpenSource opens the roster document at the given path.
	OpenSource func(path string) (alfroster.PageSource, error)

	// NewWriter returns a tabular writer for the given output path.
	NewWriter func(path string, xlsx bool) alfroster.FacilityWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract facility records from a roster PDF"`
	Stats   StatsCmd   `cmd:"" help:"Report per-column fill rates for a roster PDF"`
	List    ListCmd    `cmd:"" help:"List stored facility records"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored roster snapshot"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	PDF         string `arg:"" optional:"" default:"ALF Roster.pdf" help:"Path to the roster PDF"`
	Output      string `short:"o" default:"alf_roster.csv" help:"Output file path"`
	SkipPages   int    `default:"2" help:"Leading pages (cover and summary) to skip"`
	Date        string `help:"Roster date (YYYY-MM-DD) stamped on every record"`
	Xlsx        bool   `help:"Write an XLSX workbook instead of CSV"`
	Save        bool   `help:"Also store extracted records in the local database"`
	Concurrency int    `short:"c" default:"1" help:"Concurrent page parse limit"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct {
	PDF       string `arg:"" optional:"" default:"ALF Roster.pdf" help:"Path to the roster PDF"`
	SkipPages int    `default:"2" help:"Leading pages (cover and summary) to skip"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Date string `help:"Filter by roster date"`
	Town string `help:"Filter by town"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Date  string `arg:"" help:"Roster date of the snapshot to delete"`
	Force bool   `help:"Confirm deletion"`
}
