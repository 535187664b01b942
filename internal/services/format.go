package services

import (
	"strings"

	"github.com/pmcb87/earnings-tv/internal/models"
)

// FormatWatchlist renders grouped tickers in TradingView's watchlist import
// syntax: "###<date>, <EX>:<SYM>, ..." per date, all groups joined by ", ".
// Section headers are the "###" entries; TradingView treats everything as one
// comma separated list.
func FormatWatchlist(grouped *models.EarningsByDate) string {
	if grouped == nil {
		return ""
	}

	sections := make([]string, 0, grouped.Len())
	for _, date := range grouped.Dates() {
		parts := []string{"###" + date}
		for _, e := range grouped.Entries(date) {
			parts = append(parts, e.Exchange+":"+e.Symbol)
		}
		sections = append(sections, strings.Join(parts, ", "))
	}
	return strings.Join(sections, ", ")
}
