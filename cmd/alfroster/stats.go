package main

import (
	"fmt"

	"github.com/fwojciec/alfroster"
	"github.com/fwojciec/alfroster/extract"
)

// Run executes the stats command. It extracts the roster and reports
// how many records carry a value for each column, a quick data-quality
// signal for downstream users.
func (c *StatsCmd) Run(deps *Dependencies) error {
	src, err := deps.OpenSource(c.PDF)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	defer src.Close()

	extractor := &extract.Extractor{
		Pages:     src,
		SkipPages: c.SkipPages,
	}

	result, err := extractor.Extract(deps.Ctx, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	total := len(result.Facilities)
	if total == 0 {
		fmt.Fprintln(deps.Stdout, "No facilities found.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Column fill rates (%d facilities)\n", total)

	columns := alfroster.Columns()
	filled := make([]int, len(columns))
	for _, f := range result.Facilities {
		for i, v := range f.Row() {
			if v != "" {
				filled[i]++
			}
		}
	}

	// roster_date is extraction-time input, not page content, so it is
	// omitted from the report.
	for i, col := range columns {
		if col == "roster_date" {
			continue
		}
		rate := float64(filled[i]) / float64(total) * 100
		fmt.Fprintf(deps.Stdout, "%-20s %4d/%-4d (%5.1f%%)\n", col, filled[i], total, rate)
	}

	return nil
}
