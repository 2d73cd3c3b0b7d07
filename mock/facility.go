package mock

import (
	"context"

	"github.com/fwojciec/alfroster"
)

var _ alfroster.FacilityService = (*FacilityService)(nil)

// FacilityService is a mock implementation of alfroster.FacilityService.
type FacilityService struct {
	CreateFacilityFn         func(ctx context.Context, facility *alfroster.Facility) error
	FindFacilitiesFn         func(ctx context.Context, filter alfroster.FacilityFilter) ([]*alfroster.Facility, error)
	DeleteFacilitiesByDateFn func(ctx context.Context, rosterDate string) error
}

func (s *FacilityService) CreateFacility(ctx context.Context, facility *alfroster.Facility) error {
	return s.CreateFacilityFn(ctx, facility)
}

func (s *FacilityService) FindFacilities(ctx context.Context, filter alfroster.FacilityFilter) ([]*alfroster.Facility, error) {
	return s.FindFacilitiesFn(ctx, filter)
}

func (s *FacilityService) DeleteFacilitiesByDate(ctx context.Context, rosterDate string) error {
	return s.DeleteFacilitiesByDateFn(ctx, rosterDate)
}
