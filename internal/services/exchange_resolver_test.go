package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pmcb87/earnings-tv/internal/models"
	"github.com/pmcb87/earnings-tv/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLookup answers from a fixed table and records the order of calls
type fakeLookup struct {
	exchanges map[string]string
	errs      map[string]error
	calls     []string
}

func (f *fakeLookup) GetExchange(_ context.Context, symbol string) (string, error) {
	f.calls = append(f.calls, symbol)
	if err, ok := f.errs[symbol]; ok {
		return "", err
	}
	return f.exchanges[symbol], nil
}

func TestExchangeResolver_Resolve(t *testing.T) {
	lookup := &fakeLookup{
		exchanges: map[string]string{
			"AAPL": "NMS",
			"JPM":  "NYQ",
			"TSM":  "PNK",
		},
		errs: map[string]error{
			"GONE": errors.New("no data found, symbol may be delisted"),
		},
	}
	resolver := services.NewExchangeResolver(lookup)
	ctx, wc := services.NewWarningContext(context.Background())

	tickers := []models.FilteredTicker{
		{Symbol: "AAPL", EarningsDate: "2024-06-10"},
		{Symbol: "GONE", EarningsDate: "2024-06-10"},
		{Symbol: "JPM", EarningsDate: "2024-06-11"},
		{Symbol: "TSM", EarningsDate: "2024-06-11"},
	}

	resolved, failures := resolver.Resolve(ctx, tickers)

	assert.Equal(t, []string{"AAPL", "GONE", "JPM", "TSM"}, lookup.calls, "lookups should run once each, in order")
	assert.Equal(t, []models.ResolvedTicker{
		{Symbol: "AAPL", EarningsDate: "2024-06-10", Exchange: "NASDAQ"},
		{Symbol: "JPM", EarningsDate: "2024-06-11", Exchange: "NYSE"},
		{Symbol: "TSM", EarningsDate: "2024-06-11", Exchange: "Unknown"},
	}, resolved)

	require.Len(t, failures, 1)
	assert.Equal(t, "GONE", failures[0].Symbol)
	assert.Error(t, failures[0].Reason)

	codes := []models.WarningCode{}
	for _, w := range wc.GetWarnings() {
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []models.WarningCode{models.WarnLookupFailed, models.WarnUnmappedExchange}, codes)
}

func TestExchangeResolver_FailedLookupIsNeverUnknown(t *testing.T) {
	lookup := &fakeLookup{errs: map[string]error{"BAD": errors.New("boom")}}
	resolver := services.NewExchangeResolver(lookup)

	resolved, failures := resolver.Resolve(context.Background(), []models.FilteredTicker{
		{Symbol: "BAD", EarningsDate: "2024-06-10"},
	})

	assert.Empty(t, resolved)
	assert.NotNil(t, resolved)
	assert.Len(t, failures, 1)
}

func TestExchangeResolver_EmptyInput(t *testing.T) {
	lookup := &fakeLookup{}
	resolved, failures := services.NewExchangeResolver(lookup).Resolve(context.Background(), nil)

	assert.Empty(t, resolved)
	assert.Empty(t, failures)
	assert.Empty(t, lookup.calls)
}
