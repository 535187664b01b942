package services

import (
	"context"
	"time"

	"github.com/pmcb87/earnings-tv/internal/models"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// WeekStatus is the terminal state of one week's pipeline run
type WeekStatus string

const (
	WeekSaved   WeekStatus = "saved"   // watchlist written
	WeekSkipped WeekStatus = "skipped" // calendar returned no records
	WeekFailed  WeekStatus = "failed"  // calendar fetch or file write failed
)

// WeekResult summarizes the pipeline run for a single week
type WeekResult struct {
	Week     models.Week
	Status   WeekStatus
	Path     string
	Fetched  int
	Filtered int
	Resolved int
	Dropped  []models.LookupFailure
}

// RunSummary collects every week's result plus the warnings raised along the way
type RunSummary struct {
	Weeks    []WeekResult
	Warnings []models.Warning
}

// AllFailed reports whether every week ended in WeekFailed.
// Weeks skipped for lack of data are not failures.
func (s *RunSummary) AllFailed() bool {
	if len(s.Weeks) == 0 {
		return false
	}
	for _, w := range s.Weeks {
		if w.Status != WeekFailed {
			return false
		}
	}
	return true
}

// WatchlistService runs fetch -> filter -> resolve -> group -> format -> save for each week
type WatchlistService struct {
	earningsSvc *EarningsService
	resolver    *ExchangeResolver
	writer      *WatchlistWriter
	threshold   decimal.Decimal
}

// NewWatchlistService creates a new WatchlistService
func NewWatchlistService(
	earningsSvc *EarningsService,
	resolver *ExchangeResolver,
	writer *WatchlistWriter,
	threshold decimal.Decimal,
) *WatchlistService {
	return &WatchlistService{
		earningsSvc: earningsSvc,
		resolver:    resolver,
		writer:      writer,
		threshold:   threshold,
	}
}

// Run processes weeks in order. A week never affects another week's outcome.
func (s *WatchlistService) Run(ctx context.Context, weeks []models.Week) *RunSummary {
	defer TrackTime("Run", time.Now())
	ctx, wc := NewWarningContext(ctx)

	summary := &RunSummary{}
	for _, week := range weeks {
		summary.Weeks = append(summary.Weeks, s.RunWeek(ctx, week))
	}
	summary.Warnings = wc.GetWarnings()
	return summary
}

// RunWeek runs the full pipeline for a single week
func (s *WatchlistService) RunWeek(ctx context.Context, week models.Week) WeekResult {
	logger := log.WithFields(log.Fields{"week_start": week.Start, "week_end": week.End})
	result := WeekResult{Week: week}

	records, failed := s.earningsSvc.GetEarnings(ctx, week)
	result.Fetched = len(records)
	if len(records) == 0 {
		logger.Infof("No earnings data available for %v.", week)
		result.Status = WeekSkipped
		if failed {
			result.Status = WeekFailed
		}
		return result
	}

	filtered := FilterByMarketCap(records, s.threshold)
	result.Filtered = len(filtered)
	logger.Infof("%d of %d records above market cap threshold %s", len(filtered), len(records), s.threshold.String())

	resolved, dropped := s.resolver.Resolve(ctx, filtered)
	result.Resolved = len(resolved)
	result.Dropped = dropped

	watchlist := FormatWatchlist(GroupByDate(resolved))

	path, err := s.writer.Save(ctx, watchlist, week)
	if err != nil {
		result.Status = WeekFailed
		return result
	}

	result.Path = path
	result.Status = WeekSaved
	return result
}
