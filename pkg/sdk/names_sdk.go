package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ethanbaker/names/pkg/names"
)

// ListNames returns every stored name, newest first
func (c *Client) ListNames(ctx context.Context) ([]names.Name, error) {
	var out []names.Name
	if err := c.doJSON(ctx, http.MethodGet, "/names", nil, &out); err != nil {
		return nil, err
	}

	if out == nil {
		out = []names.Name{}
	}
	return out, nil
}

// CreateName stores a new name and returns the created record
func (c *Client) CreateName(ctx context.Context, value string) (*names.Name, error) {
	req := &CreateNameRequest{Name: value}

	var out names.Name
	if err := c.doJSON(ctx, http.MethodPost, "/names", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Health returns the server's view of the store. When the store is down the server answers
// 500 and both the decoded status and the API error are returned
func (c *Client) Health(ctx context.Context) (*names.HealthStatus, error) {
	var out names.HealthStatus
	err := c.doJSON(ctx, http.MethodGet, "/health", nil, &out)
	if err == nil {
		return &out, nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && json.Unmarshal(apiErr.Body, &out) == nil && out.Status != "" {
		return &out, err
	}

	return nil, err
}
