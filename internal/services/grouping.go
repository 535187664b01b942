package services

import "github.com/pmcb87/earnings-tv/internal/models"

// GroupByDate buckets resolved tickers under their earnings date.
// Date order follows first appearance; order within a date follows input order.
func GroupByDate(tickers []models.ResolvedTicker) *models.EarningsByDate {
	grouped := models.NewEarningsByDate()
	for _, t := range tickers {
		grouped.Add(t.EarningsDate, models.WatchlistEntry{
			Symbol:   t.Symbol,
			Exchange: t.Exchange,
		})
	}
	return grouped
}
