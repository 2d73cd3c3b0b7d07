package alfroster

import (
	"context"
	"time"
)

// FacilityTypeALF is the facility type marker carried by every roster
// record. The roster lists assisted living facilities exclusively.
const FacilityTypeALF = "ALF"

// Facility represents one assisted living facility entry parsed from
// the roster. All parsed fields are kept as text, including TotalBeds,
// to preserve the roster's values verbatim and tolerate non-numeric
// anomalies.
type Facility struct {
	ID            string `json:"id"`
	RosterDate    string `json:"rosterDate"`
	Town          string `json:"town"`
	County        string `json:"county"`
	ZipCode       string `json:"zipCode"`
	FacilityName  string `json:"facilityName"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Fax           string `json:"fax"`
	Licensee      string `json:"licensee"`
	Administrator string `json:"administrator"`
	FacilityType  string `json:"facilityType"`
	LicenseNumber string `json:"licenseNumber"`
	TotalBeds     string `json:"totalBeds"`
	Services      string `json:"services"`
	Accreditation string `json:"accreditation"`
	CareOfAddress string `json:"careOfAddress"`

	// Storage metadata. Zero-valued until the facility is persisted.
	ContentHash string    `json:"contentHash"`
	Position    int       `json:"position"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// Columns returns the fixed column order used by tabular serializers.
func Columns() []string {
	return []string{
		"roster_date", "town", "county", "zip_code", "facility_name",
		"address", "phone", "fax", "licensee", "administrator",
		"facility_type", "license_number", "total_beds", "services",
		"accreditation", "care_of_address",
	}
}

// Row returns the facility's field values in Columns order.
func (f *Facility) Row() []string {
	return []string{
		f.RosterDate, f.Town, f.County, f.ZipCode, f.FacilityName,
		f.Address, f.Phone, f.Fax, f.Licensee, f.Administrator,
		f.FacilityType, f.LicenseNumber, f.TotalBeds, f.Services,
		f.Accreditation, f.CareOfAddress,
	}
}

// Validate returns an error if the facility contains invalid fields.
func (f *Facility) Validate() error {
	if f.FacilityName == "" && f.LicenseNumber == "" {
		return Errorf(EINVALID, "facility name or license number required")
	}
	return nil
}

// Keep reports whether the record carries enough identity to be
// retained. Records without a name or license number are noise left
// over from partially matched page text.
func (f *Facility) Keep() bool {
	return f.FacilityName != "" || f.LicenseNumber != ""
}

// AppendService adds a service tag to the accumulated services list.
// Unlike the first-match-wins fields, services accumulate across lines.
func (f *Facility) AppendService(s string) {
	if f.Services != "" {
		f.Services += "; " + s
		return
	}
	f.Services = s
}

// FacilityWriter serializes an ordered facility sequence to a tabular
// output file.
type FacilityWriter interface {
	// WriteAll writes a header row plus one row per facility.
	// Returns EEMPTY if the sequence is empty.
	WriteAll(ctx context.Context, facilities []*Facility) error
}

// FacilityService represents a service for managing stored facilities.
type FacilityService interface {
	// CreateFacility persists a new facility record.
	CreateFacility(ctx context.Context, facility *Facility) error

	// FindFacilities retrieves facilities matching the filter, ordered
	// by their position in the roster.
	FindFacilities(ctx context.Context, filter FacilityFilter) ([]*Facility, error)

	// DeleteFacilitiesByDate removes all facilities stamped with the
	// given roster date.
	DeleteFacilitiesByDate(ctx context.Context, rosterDate string) error
}

// FacilityFilter represents a filter for FindFacilities.
type FacilityFilter struct {
	RosterDate    *string `json:"rosterDate"`
	Town          *string `json:"town"`
	County        *string `json:"county"`
	LicenseNumber *string `json:"licenseNumber"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
