package yahoo

// ChartResponse is the top-level container returned by /v8/finance/chart
type ChartResponse struct {
	Chart ChartData `json:"chart"`
}

type ChartData struct {
	Result []ChartResult `json:"result"`
	Error  *ChartError   `json:"error"`
}

type ChartResult struct {
	Meta ChartMeta `json:"meta"`
}

// ChartMeta carries the listing metadata. ExchangeName is Yahoo's short
// venue identifier (NYQ, NMS, NGM, ...), not the display name.
type ChartMeta struct {
	Symbol           string `json:"symbol"`
	Currency         string `json:"currency"`
	ExchangeName     string `json:"exchangeName"`
	FullExchangeName string `json:"fullExchangeName"`
	InstrumentType   string `json:"instrumentType"`
}

type ChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
