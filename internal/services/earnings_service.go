package services

import (
	"context"
	"fmt"
	"time"

	"github.com/pmcb87/earnings-tv/internal/models"
	log "github.com/sirupsen/logrus"
)

// EarningsSource fetches raw earnings calendar rows for a date range
type EarningsSource interface {
	GetCalendar(ctx context.Context, start, end string) ([]models.EarningsRecord, error)
}

// EarningsService wraps the calendar source with the "failure means no data" policy
type EarningsService struct {
	source EarningsSource
}

// NewEarningsService creates a new EarningsService
func NewEarningsService(source EarningsSource) *EarningsService {
	return &EarningsService{source: source}
}

// GetEarnings returns the week's raw earnings records. Any fetch failure is
// logged, recorded as a warning on ctx and reported as an empty result
// with failed=true so callers can tell "no data" apart from "fetch failed".
func (s *EarningsService) GetEarnings(ctx context.Context, week models.Week) (records []models.EarningsRecord, failed bool) {
	defer TrackTime("GetEarnings", time.Now())

	records, err := s.source.GetCalendar(ctx, week.Start, week.End)
	if err != nil {
		log.Errorf("Error fetching earnings data for %v: %v", week, err)
		AddWarning(ctx, models.Warning{
			Code:    models.WarnEarningsFetchFailed,
			Message: fmt.Sprintf("earnings fetch failed for %v: %v", week, err),
		})
		return []models.EarningsRecord{}, true
	}
	if records == nil {
		records = []models.EarningsRecord{}
	}
	return records, false
}
