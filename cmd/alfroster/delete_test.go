package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/alfroster"
	main "github.com/fwojciec/alfroster/cmd/alfroster"
	"github.com/fwojciec/alfroster/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes snapshot when --force is set", func(t *testing.T) {
		t.Parallel()

		var deletedDate string
		facilities := &mock.FacilityService{
			FindFacilitiesFn: func(_ context.Context, filter alfroster.FacilityFilter) ([]*alfroster.Facility, error) {
				if filter.RosterDate != nil && *filter.RosterDate == "2026-08-01" {
					return []*alfroster.Facility{
						{LicenseNumber: "ALF066", RosterDate: "2026-08-01"},
						{LicenseNumber: "ALF046", RosterDate: "2026-08-01"},
					}, nil
				}
				return []*alfroster.Facility{}, nil
			},
			DeleteFacilitiesByDateFn: func(_ context.Context, rosterDate string) error {
				deletedDate = rosterDate
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Facilities: facilities,
		}

		cmd := &main.DeleteCmd{Date: "2026-08-01", Force: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "2026-08-01", deletedDate)
		assert.Contains(t, stdout.String(), "Deleted 2 facilities")
	})

	t.Run("requires --force flag", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.DeleteCmd{Date: "2026-08-01", Force: false}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, alfroster.EINVALID, alfroster.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("returns not found for unknown roster date", func(t *testing.T) {
		t.Parallel()

		facilities := &mock.FacilityService{
			FindFacilitiesFn: func(_ context.Context, _ alfroster.FacilityFilter) ([]*alfroster.Facility, error) {
				return []*alfroster.Facility{}, nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     &bytes.Buffer{},
			Stderr:     stderr,
			Facilities: facilities,
		}

		cmd := &main.DeleteCmd{Date: "1999-01-01", Force: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, alfroster.ENOTFOUND, alfroster.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no snapshot")
	})
}
