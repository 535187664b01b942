package earnings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pmcb87/earnings-tv/internal/httpclient"
	"github.com/pmcb87/earnings-tv/internal/models"
	log "github.com/sirupsen/logrus"
)

// Savvy Trader backs the earningshub.com calendar. The endpoint is
// unauthenticated; requests carry the same referer as the earningshub site.
const (
	defaultBaseURL = "https://api.savvytrader.com/pricing/assets/earnings/calendar"
	referer        = "https://earningshub.com/"
)

// Client is an HTTP client for the earnings calendar API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new earnings calendar client using the shared httpClient
func NewClient(httpClient *http.Client) *Client {
	return NewClientWithBaseURL(defaultBaseURL, httpClient)
}

// NewClientWithBaseURL creates a new earnings calendar client with a custom base URL (for testing)
func NewClientWithBaseURL(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// GetCalendar fetches every earnings announcement between start and end (inclusive, YYYY-MM-DD)
func (c *Client) GetCalendar(ctx context.Context, start, end string) ([]models.EarningsRecord, error) {
	log.Debugf("GetCalendar begins (%s to %s)", start, end)
	params := url.Values{}
	params.Set("start", start)
	params.Set("end", end)

	resp, err := c.doRequest(ctx, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var records []models.EarningsRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	log.Debugf("GetCalendar ends (%d records)", len(records))
	return records, nil
}

func (c *Client) doRequest(ctx context.Context, params url.Values) (*http.Response, error) {
	reqURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Referer", referer)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if !httpclient.IsSuccess(resp.StatusCode) {
		resp.Body.Close()
		return nil, &httpclient.APIError{StatusCode: resp.StatusCode, Endpoint: "earnings calendar"}
	}

	return resp, nil
}
