package main

import (
	"fmt"

	"github.com/fwojciec/alfroster"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := alfroster.FacilityFilter{}
	if c.Date != "" {
		filter.RosterDate = &c.Date
	}
	if c.Town != "" {
		filter.Town = &c.Town
	}

	facilities, err := deps.Facilities.FindFacilities(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", alfroster.ErrorMessage(err))
		return err
	}

	if len(facilities) == 0 {
		fmt.Fprintln(deps.Stdout, "No facilities found. Use 'alfroster extract --save' to store a roster.")
		return nil
	}

	for _, f := range facilities {
		fmt.Fprintf(deps.Stdout, "%s  %-40s  %s (%s)  beds=%s\n",
			f.LicenseNumber, f.FacilityName, f.Town, f.County, f.TotalBeds)
	}

	return nil
}
