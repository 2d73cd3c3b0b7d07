package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/alfroster"
)

// Ensure LoggingFacilityService implements alfroster.FacilityService.
var _ alfroster.FacilityService = (*LoggingFacilityService)(nil)

// LoggingFacilityService wraps a FacilityService with debug logging.
type LoggingFacilityService struct {
	next   alfroster.FacilityService
	logger *slog.Logger
}

// NewLoggingFacilityService creates a new LoggingFacilityService.
func NewLoggingFacilityService(next alfroster.FacilityService, logger *slog.Logger) *LoggingFacilityService {
	return &LoggingFacilityService{next: next, logger: logger}
}

// CreateFacility delegates to the wrapped service and logs the operation.
func (s *LoggingFacilityService) CreateFacility(ctx context.Context, f *alfroster.Facility) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create facility",
			"license", f.LicenseNumber,
			"town", f.Town,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateFacility(ctx, f)
}

// FindFacilities delegates to the wrapped service and logs the operation.
func (s *LoggingFacilityService) FindFacilities(ctx context.Context, filter alfroster.FacilityFilter) (facilities []*alfroster.Facility, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find facilities",
			"count", len(facilities),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindFacilities(ctx, filter)
}

// DeleteFacilitiesByDate delegates to the wrapped service and logs the operation.
func (s *LoggingFacilityService) DeleteFacilitiesByDate(ctx context.Context, rosterDate string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete facilities",
			"rosterDate", rosterDate,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteFacilitiesByDate(ctx, rosterDate)
}
