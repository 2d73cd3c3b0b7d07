package main

import (
	"fmt"

	"github.com/fwojciec/alfroster"
	"github.com/fwojciec/alfroster/extract"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	src, err := deps.OpenSource(c.PDF)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	defer src.Close()

	fmt.Fprintf(deps.Stdout, "Extracting facilities from: %s\n", c.PDF)

	extractor := &extract.Extractor{
		Pages:       src,
		SkipPages:   c.SkipPages,
		RosterDate:  c.Date,
		Concurrency: c.Concurrency,
	}

	progress := func(p alfroster.ExtractProgress) {
		if p.Err != nil {
			// Page indexes are zero-based; print the human page number.
			fmt.Fprintf(deps.Stderr, "  skip page %d: %v\n", p.Page+1, p.Err)
		}
	}

	result, err := extractor.Extract(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Found %d facilities\n", len(result.Facilities))

	writer := deps.NewWriter(c.Output, c.Xlsx)
	if err := writer.WriteAll(deps.Ctx, result.Facilities); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", alfroster.ErrorMessage(err))
		return err
	}

	if c.Save {
		for i, f := range result.Facilities {
			f.Position = i
			if err := deps.Facilities.CreateFacility(deps.Ctx, f); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", alfroster.ErrorMessage(err))
				return err
			}
		}
		fmt.Fprintf(deps.Stdout, "Saved %d facilities to the local database\n", len(result.Facilities))
	}

	fmt.Fprintf(deps.Stdout, "Output written to: %s\n", c.Output)
	return nil
}
