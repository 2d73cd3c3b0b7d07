package main

import (
	"fmt"

	"github.com/fwojciec/alfroster"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return alfroster.Errorf(alfroster.EINVALID, "use --force to confirm deletion")
	}

	date := c.Date
	facilities, err := deps.Facilities.FindFacilities(deps.Ctx, alfroster.FacilityFilter{RosterDate: &date})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", alfroster.ErrorMessage(err))
		return err
	}

	if len(facilities) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no snapshot for roster date %q. Use 'alfroster list' to see stored records.\n", c.Date)
		return alfroster.Errorf(alfroster.ENOTFOUND, "no snapshot for roster date %q", c.Date)
	}

	if err := deps.Facilities.DeleteFacilitiesByDate(deps.Ctx, c.Date); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", alfroster.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %d facilities for roster date %q\n", len(facilities), c.Date)
	return nil
}
