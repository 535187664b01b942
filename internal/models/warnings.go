package models

// WarningCode categorizes warnings by subsystem.
// W1xxx = earnings fetch, W2xxx = exchange resolution, W3xxx = output.
type WarningCode string

const (
	WarnEarningsFetchFailed WarningCode = "W1001" // earnings calendar unreachable or bad response (week skipped)
	WarnLookupFailed        WarningCode = "W2001" // exchange lookup failed (ticker dropped)
	WarnUnmappedExchange    WarningCode = "W2002" // exchange identifier not in the conversion table (mapped to Unknown)
	WarnWriteFailed         WarningCode = "W3001" // watchlist file could not be written
)

// Warning represents a non-fatal issue encountered during processing.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
