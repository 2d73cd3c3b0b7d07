package alfroster_test

import (
	"testing"

	"github.com/fwojciec/alfroster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacility_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid with facility name only", func(t *testing.T) {
		t.Parallel()

		f := &alfroster.Facility{FacilityName: "GOLD CREST RETIREMENT CENTER"}

		assert.NoError(t, f.Validate())
	})

	t.Run("valid with license number only", func(t *testing.T) {
		t.Parallel()

		f := &alfroster.Facility{LicenseNumber: "ALF066"}

		assert.NoError(t, f.Validate())
	})

	t.Run("invalid without name or license number", func(t *testing.T) {
		t.Parallel()

		f := &alfroster.Facility{Town: "ADAMS", County: "GAGE"}

		err := f.Validate()

		require.Error(t, err)
		assert.Equal(t, alfroster.EINVALID, alfroster.ErrorCode(err))
	})
}

func TestFacility_AppendService(t *testing.T) {
	t.Parallel()

	t.Run("sets first service directly", func(t *testing.T) {
		t.Parallel()

		f := &alfroster.Facility{}
		f.AppendService("AGED/DISABLED")

		assert.Equal(t, "AGED/DISABLED", f.Services)
	})

	t.Run("accumulates with semicolon separator", func(t *testing.T) {
		t.Parallel()

		f := &alfroster.Facility{Services: "AGED/DISABLED"}
		f.AppendService("MEMORY CARE")

		assert.Equal(t, "AGED/DISABLED; MEMORY CARE", f.Services)
	})
}

func TestFacility_Row(t *testing.T) {
	t.Parallel()

	f := &alfroster.Facility{
		RosterDate:    "2025-08-15",
		Town:          "ADAMS",
		County:        "GAGE",
		ZipCode:       "68301",
		FacilityName:  "GOLD CREST RETIREMENT CENTER",
		FacilityType:  alfroster.FacilityTypeALF,
		LicenseNumber: "ALF066",
		TotalBeds:     "35",
	}

	row := f.Row()
	cols := alfroster.Columns()

	require.Len(t, row, len(cols))
	assert.Equal(t, "roster_date", cols[0])
	assert.Equal(t, "2025-08-15", row[0])
	assert.Equal(t, "town", cols[1])
	assert.Equal(t, "ADAMS", row[1])
	assert.Equal(t, "facility_type", cols[10])
	assert.Equal(t, "ALF", row[10])
	assert.Equal(t, "license_number", cols[11])
	assert.Equal(t, "ALF066", row[11])
	assert.Equal(t, "care_of_address", cols[15])
}
