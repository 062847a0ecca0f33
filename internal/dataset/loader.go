// Package dataset loads sales datasets from local files and remote URLs.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"resty.dev/v3"

	"sales_report/internal/sales"
)

// LoadFile decodes a JSON dataset file.
func LoadFile(path string) (*sales.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening dataset %s: %w", path, err)
	}
	defer f.Close()

	var data sales.Dataset
	if err := json.NewDecoder(f).Decode(&data); err != nil {
		return nil, fmt.Errorf("error decoding dataset %s: %w", path, err)
	}
	return &data, nil
}

// Client fetches datasets over HTTP.
type Client struct {
	http *resty.Client
}

// NewClient creates a Client whose requests time out after timeout.
func NewClient(timeout time.Duration) *Client {
	c := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

// Fetch downloads and decodes the dataset served at url.
func (c *Client) Fetch(ctx context.Context, url string) (*sales.Dataset, error) {
	var data sales.Dataset
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&data).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("error making request to dataset source: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("dataset source returned unexpected status: %d", resp.StatusCode())
	}
	return &data, nil
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.http.Close()
}
