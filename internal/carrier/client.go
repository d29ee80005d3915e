// Package carrier talks to external carrier rate APIs. The client is a
// best-effort enhancement over the locally configured rate tables: callers
// treat any error as a signal to fall back, never as a pricing answer.
package carrier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultTimeout = 3 * time.Second

type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Quote asks the carrier's rate endpoint for a base price in cents for the
// given weight and service type.
func (c *Client) Quote(ctx context.Context, baseURL string, weightKg float64, service string) (int64, error) {
	params := url.Values{}
	params.Set("weight_kg", strconv.FormatFloat(weightKg, 'f', 3, 64))
	params.Set("service", service)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/quote?"+params.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("carrier.Quote: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("carrier.Quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("carrier.Quote: carrier responded %d", resp.StatusCode)
	}

	var out struct {
		PriceCents int64 `json:"price_cents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("carrier.Quote: decode response: %w", err)
	}
	if out.PriceCents <= 0 {
		return 0, fmt.Errorf("carrier.Quote: carrier returned non-positive price %d", out.PriceCents)
	}
	return out.PriceCents, nil
}

// TestConnection probes the carrier's health endpoint.
func (c *Client) TestConnection(ctx context.Context, baseURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("carrier.TestConnection: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("carrier.TestConnection: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("carrier.TestConnection: carrier responded %d", resp.StatusCode)
	}
	return nil
}
