package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pmcb87/earnings-tv/internal/httpclient"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// ErrNoExchange is returned when Yahoo answers but reports no listing exchange
var ErrNoExchange = errors.New("no exchange in chart metadata")

// Client looks up listing metadata from Yahoo Finance
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithRateLimit caps lookups at requestsPerSecond. Zero or less disables the limit.
func WithRateLimit(requestsPerSecond float64) ClientOption {
	return func(c *Client) {
		if requestsPerSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}
}

// NewClient creates a new Yahoo client that sends requests through httpClient
func NewClient(httpClient *http.Client, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Inf, 1),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetExchange returns Yahoo's exchange identifier for symbol (e.g. "NMS" for AAPL)
func (c *Client) GetExchange(ctx context.Context, symbol string) (string, error) {
	meta, err := c.GetChartMeta(ctx, symbol)
	if err != nil {
		return "", err
	}
	if meta.ExchangeName == "" {
		return "", fmt.Errorf("%s: %w", symbol, ErrNoExchange)
	}
	return meta.ExchangeName, nil
}

// GetChartMeta fetches the chart metadata block for symbol
func (c *Client) GetChartMeta(ctx context.Context, symbol string) (*ChartMeta, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("range", "1d")
	params.Set("interval", "1d")
	reqURL := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.baseURL, url.PathEscape(symbol), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	log.Debugf("Yahoo chart request for %s", symbol)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if !httpclient.IsSuccess(resp.StatusCode) {
		return nil, &httpclient.APIError{StatusCode: resp.StatusCode, Endpoint: "yahoo chart " + symbol}
	}

	var chartResp ChartResponse
	if err := json.NewDecoder(resp.Body).Decode(&chartResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if chartResp.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo error %s: %s", chartResp.Chart.Error.Code, chartResp.Chart.Error.Description)
	}
	if len(chartResp.Chart.Result) == 0 {
		return nil, fmt.Errorf("%s: no chart result", symbol)
	}

	return &chartResp.Chart.Result[0].Meta, nil
}
