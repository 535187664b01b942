package models

import "github.com/shopspring/decimal"

// EarningsRecord is a single row from the earnings calendar endpoint.
// MarketCap is zero when the source omits it.
type EarningsRecord struct {
	Symbol       string          `json:"symbol"`
	EarningsDate string          `json:"earningsDate"`
	MarketCap    decimal.Decimal `json:"marketCap"`
}

// FilteredTicker is an earnings record that passed the market cap filter
type FilteredTicker struct {
	Symbol       string `json:"symbol"`
	EarningsDate string `json:"earningsDate"`
}

// ResolvedTicker is a FilteredTicker with its TradingView exchange code attached
type ResolvedTicker struct {
	Symbol       string `json:"symbol"`
	EarningsDate string `json:"earningsDate"`
	Exchange     string `json:"exchange"`
}

// LookupFailure records why a ticker was dropped during exchange resolution
type LookupFailure struct {
	Symbol string
	Reason error
}

// WatchlistEntry is one exchange-qualified symbol under a date header
type WatchlistEntry struct {
	Symbol   string `json:"symbol"`
	Exchange string `json:"exchange"`
}

// EarningsByDate groups watchlist entries by earnings date.
// Dates keep first-insertion order; entries keep append order.
type EarningsByDate struct {
	dates   []string
	entries map[string][]WatchlistEntry
}

// NewEarningsByDate returns an empty grouping
func NewEarningsByDate() *EarningsByDate {
	return &EarningsByDate{entries: make(map[string][]WatchlistEntry)}
}

// Add appends an entry under date, registering the date on first use
func (e *EarningsByDate) Add(date string, entry WatchlistEntry) {
	if _, ok := e.entries[date]; !ok {
		e.dates = append(e.dates, date)
	}
	e.entries[date] = append(e.entries[date], entry)
}

// Dates returns the date keys in insertion order
func (e *EarningsByDate) Dates() []string {
	return e.dates
}

// Entries returns the entries recorded for date
func (e *EarningsByDate) Entries(date string) []WatchlistEntry {
	return e.entries[date]
}

// Len returns the number of distinct dates
func (e *EarningsByDate) Len() int {
	return len(e.dates)
}
