package services

import (
	"github.com/pmcb87/earnings-tv/internal/models"
	"github.com/shopspring/decimal"
)

// DefaultMarketCapThreshold is the large-cap cutoff: ten billion in the
// record's reported currency. No currency normalization is performed.
var DefaultMarketCapThreshold = decimal.NewFromInt(10_000_000_000)

// FilterByMarketCap keeps records whose market cap is strictly greater than
// threshold and projects them to {symbol, earningsDate}. Records without a
// market cap count as zero. Input order is preserved.
func FilterByMarketCap(records []models.EarningsRecord, threshold decimal.Decimal) []models.FilteredTicker {
	filtered := []models.FilteredTicker{}
	for _, r := range records {
		if !r.MarketCap.GreaterThan(threshold) {
			continue
		}
		filtered = append(filtered, models.FilteredTicker{
			Symbol:       r.Symbol,
			EarningsDate: r.EarningsDate,
		})
	}
	return filtered
}
