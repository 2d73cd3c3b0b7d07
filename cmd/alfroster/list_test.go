package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/alfroster"
	main "github.com/fwojciec/alfroster/cmd/alfroster"
	"github.com/fwojciec/alfroster/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists facilities with license, name, and location", func(t *testing.T) {
		t.Parallel()

		facilities := &mock.FacilityService{
			FindFacilitiesFn: func(_ context.Context, _ alfroster.FacilityFilter) ([]*alfroster.Facility, error) {
				return []*alfroster.Facility{
					{
						LicenseNumber: "ALF066",
						FacilityName:  "GOLD CREST RETIREMENT CENTER",
						Town:          "ADAMS",
						County:        "GAGE",
						TotalBeds:     "35",
					},
					{
						LicenseNumber: "ALF046",
						FacilityName:  "COTTONWOOD VILLA",
						Town:          "AINSWORTH",
						County:        "BROWN",
						TotalBeds:     "36",
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Facilities: facilities,
		}

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "ALF066")
		assert.Contains(t, output, "GOLD CREST RETIREMENT CENTER")
		assert.Contains(t, output, "ADAMS")
		assert.Contains(t, output, "ALF046")
		assert.Contains(t, output, "COTTONWOOD VILLA")
	})

	t.Run("passes date and town filters through", func(t *testing.T) {
		t.Parallel()

		var got alfroster.FacilityFilter
		facilities := &mock.FacilityService{
			FindFacilitiesFn: func(_ context.Context, filter alfroster.FacilityFilter) ([]*alfroster.Facility, error) {
				got = filter
				return []*alfroster.Facility{}, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     &bytes.Buffer{},
			Stderr:     &bytes.Buffer{},
			Facilities: facilities,
		}

		cmd := &main.ListCmd{Date: "2026-08-01", Town: "LINCOLN"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, got.RosterDate)
		assert.Equal(t, "2026-08-01", *got.RosterDate)
		require.NotNil(t, got.Town)
		assert.Equal(t, "LINCOLN", *got.Town)
	})

	t.Run("shows helpful message when nothing is stored", func(t *testing.T) {
		t.Parallel()

		facilities := &mock.FacilityService{
			FindFacilitiesFn: func(_ context.Context, _ alfroster.FacilityFilter) ([]*alfroster.Facility, error) {
				return []*alfroster.Facility{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Facilities: facilities,
		}

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No facilities")
	})

	t.Run("returns error when FindFacilities fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")

		facilities := &mock.FacilityService{
			FindFacilitiesFn: func(_ context.Context, _ alfroster.FacilityFilter) ([]*alfroster.Facility, error) {
				return nil, dbErr
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     &bytes.Buffer{},
			Stderr:     stderr,
			Facilities: facilities,
		}

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
