package shop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/lusterstudio/luster-backend/internal/checkout"
)

// Client submits an aggregated cart to the storefront checkout endpoint
// and mirrors the browser fetch contract: non-2xx statuses and bodies
// without a URL are failures.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    httpClient,
	}
}

type checkoutBody struct {
	Items []checkout.RawItem `json:"items"`
}

type checkoutResult struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// Checkout POSTs the line items and returns the provider redirect URL.
func (c *Client) Checkout(ctx context.Context, items []checkout.RawItem) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("cart is empty")
	}

	payload, err := json.Marshal(checkoutBody{Items: items})
	if err != nil {
		return "", fmt.Errorf("encode checkout request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/checkout", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build checkout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("checkout request: %w", err)
	}
	defer resp.Body.Close()

	var result checkoutResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode checkout response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if result.Error != "" {
			return "", fmt.Errorf("%s", result.Error)
		}
		return "", fmt.Errorf("checkout failed")
	}
	if result.URL == "" {
		return "", fmt.Errorf("checkout failed")
	}
	return result.URL, nil
}

// Submit drives one full submission: guard and aggregate, call the
// backend, then settle into Redirecting or Failed. A guarded no-op
// returns the state unchanged.
func (c *Client) Submit(ctx context.Context, state State) State {
	next, items := state.BeginSubmit()
	if items == nil {
		return next
	}
	url, err := c.Checkout(ctx, items)
	if err != nil {
		return next.FailSubmit(err)
	}
	return next.CompleteSubmit(url)
}
