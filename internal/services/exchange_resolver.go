package services

import (
	"context"
	"fmt"
	"time"

	"github.com/pmcb87/earnings-tv/internal/models"
	log "github.com/sirupsen/logrus"
)

// UnknownExchange is emitted for identifiers missing from exchangeConversion
const UnknownExchange = "Unknown"

// exchangeConversion maps Yahoo venue identifiers to TradingView exchange prefixes
var exchangeConversion = map[string]string{
	"NYQ":  "NYSE",
	"NMS":  "NASDAQ",
	"NGM":  "NASDAQ",
	"OTC":  "OTC",
	"AMEX": "ASE",
}

// ExchangeLookup returns the upstream listing exchange identifier for a symbol
type ExchangeLookup interface {
	GetExchange(ctx context.Context, symbol string) (string, error)
}

// MapExchange converts a Yahoo exchange identifier into a TradingView exchange
// code. Anything not in the conversion table, including "", becomes "Unknown".
func MapExchange(identifier string) string {
	if code, ok := exchangeConversion[identifier]; ok {
		return code
	}
	return UnknownExchange
}

// ExchangeResolver attaches TradingView exchange codes to filtered tickers
type ExchangeResolver struct {
	lookup ExchangeLookup
}

// NewExchangeResolver creates a new ExchangeResolver
func NewExchangeResolver(lookup ExchangeLookup) *ExchangeResolver {
	return &ExchangeResolver{lookup: lookup}
}

// Resolve looks up every ticker one at a time, in order.
//
// Returns:
//   - resolved: tickers whose lookup succeeded, in input order. The exchange may
//     be "Unknown" when the identifier is not in the conversion table.
//   - failures: tickers whose lookup failed. These are dropped from resolved,
//     never annotated "Unknown".
func (r *ExchangeResolver) Resolve(ctx context.Context, tickers []models.FilteredTicker) (resolved []models.ResolvedTicker, failures []models.LookupFailure) {
	defer TrackTime("Resolve", time.Now())
	resolved = []models.ResolvedTicker{}

	for _, t := range tickers {
		identifier, err := r.lookup.GetExchange(ctx, t.Symbol)
		if err != nil {
			log.Errorf("Failed to fetch info for %s: %v", t.Symbol, err)
			AddWarning(ctx, models.Warning{
				Code:    models.WarnLookupFailed,
				Message: fmt.Sprintf("exchange lookup failed for %s: %v", t.Symbol, err),
			})
			failures = append(failures, models.LookupFailure{Symbol: t.Symbol, Reason: err})
			continue
		}

		exchange := MapExchange(identifier)
		if exchange == UnknownExchange {
			log.Warnf("Unmapped exchange %q for %s", identifier, t.Symbol)
			AddWarning(ctx, models.Warning{
				Code:    models.WarnUnmappedExchange,
				Message: fmt.Sprintf("%s listed on unmapped exchange %q", t.Symbol, identifier),
			})
		}

		resolved = append(resolved, models.ResolvedTicker{
			Symbol:       t.Symbol,
			EarningsDate: t.EarningsDate,
			Exchange:     exchange,
		})
	}

	if len(failures) > 0 {
		log.Infof("Resolved %d of %d tickers, %d dropped", len(resolved), len(tickers), len(failures))
	}
	return resolved, failures
}
