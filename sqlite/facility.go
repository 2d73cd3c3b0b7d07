package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/alfroster"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ alfroster.FacilityService = (*FacilityService)(nil)

// FacilityService implements alfroster.FacilityService using SQLite.
type FacilityService struct {
	db *DB
}

// NewFacilityService creates a new FacilityService.
func NewFacilityService(db *DB) *FacilityService {
	return &FacilityService{db: db}
}

// hashFacility computes xxHash over the facility's tabular row and
// returns a hex string. Identical records across re-extractions hash
// identically.
func hashFacility(f *alfroster.Facility) string {
	h := xxhash.Sum64String(strings.Join(f.Row(), "\x1f"))
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h)
	return hex.EncodeToString(b)
}

// facilityColumns is the column list shared by insert and select
// statements, in schema order.
const facilityColumns = `id, roster_date, town, county, zip_code, facility_name, address, phone, fax,
	licensee, administrator, facility_type, license_number, total_beds, services,
	accreditation, care_of_address, content_hash, position, extracted_at`

// CreateFacility persists a new facility record.
func (s *FacilityService) CreateFacility(ctx context.Context, f *alfroster.Facility) error {
	if err := f.Validate(); err != nil {
		return err
	}

	f.ID = uuid.New().String()
	f.ExtractedAt = time.Now().UTC()
	f.ContentHash = hashFacility(f)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO facilities (`+facilityColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, f.ID, f.RosterDate, f.Town, f.County, f.ZipCode, f.FacilityName, f.Address,
		f.Phone, f.Fax, f.Licensee, f.Administrator, f.FacilityType, f.LicenseNumber,
		f.TotalBeds, f.Services, f.Accreditation, f.CareOfAddress, f.ContentHash,
		f.Position, f.ExtractedAt.Format(time.RFC3339))

	return err
}

// FindFacilities retrieves facilities matching the filter, ordered by
// roster position.
func (s *FacilityService) FindFacilities(ctx context.Context, filter alfroster.FacilityFilter) ([]*alfroster.Facility, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + facilityColumns + " FROM facilities WHERE 1=1")

	if filter.RosterDate != nil {
		query.WriteString(" AND roster_date = ?")
		args = append(args, *filter.RosterDate)
	}
	if filter.Town != nil {
		query.WriteString(" AND town = ?")
		args = append(args, *filter.Town)
	}
	if filter.County != nil {
		query.WriteString(" AND county = ?")
		args = append(args, *filter.County)
	}
	if filter.LicenseNumber != nil {
		query.WriteString(" AND license_number = ?")
		args = append(args, *filter.LicenseNumber)
	}

	query.WriteString(" ORDER BY position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var facilities []*alfroster.Facility
	for rows.Next() {
		f, err := scanFacility(rows.Scan)
		if err != nil {
			return nil, err
		}
		facilities = append(facilities, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return facilities, nil
}

// DeleteFacilitiesByDate removes all facilities stamped with the given
// roster date.
func (s *FacilityService) DeleteFacilitiesByDate(ctx context.Context, rosterDate string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM facilities WHERE roster_date = ?`, rosterDate)
	return err
}

// scanFacility scans one facility row using the provided scan function.
func scanFacility(scan func(dest ...any) error) (*alfroster.Facility, error) {
	var f alfroster.Facility
	var extractedAt string

	if err := scan(&f.ID, &f.RosterDate, &f.Town, &f.County, &f.ZipCode, &f.FacilityName,
		&f.Address, &f.Phone, &f.Fax, &f.Licensee, &f.Administrator, &f.FacilityType,
		&f.LicenseNumber, &f.TotalBeds, &f.Services, &f.Accreditation, &f.CareOfAddress,
		&f.ContentHash, &f.Position, &extractedAt); err != nil {
		return nil, err
	}

	var err error
	f.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at")
	if err != nil {
		return nil, err
	}

	return &f, nil
}
