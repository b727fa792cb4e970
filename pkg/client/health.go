package client

import (
	"context"
	"net/http"
)

// Health checks the liveness of the API
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	return c.probe(ctx, "/healthz")
}

// Ready reports readiness and whether the assistant credential is configured
func (c *Client) Ready(ctx context.Context) (*HealthResponse, error) {
	return c.probe(ctx, "/readyz")
}

// Ping is a simple connectivity test
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Health(ctx)
	return err
}

func (c *Client) probe(ctx context.Context, path string) (*HealthResponse, error) {
	var health HealthResponse
	if _, err := c.doRequest(ctx, http.MethodGet, path, nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Views lists the dashboard views
func (c *Client) Views(ctx context.Context) ([]View, error) {
	var out list[View]
	if _, err := c.doRequest(ctx, http.MethodGet, "/api/v1/views", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// Overview retrieves the landing dashboard
func (c *Client) Overview(ctx context.Context) (*Overview, error) {
	var ov Overview
	if _, err := c.doRequest(ctx, http.MethodGet, "/api/v1/overview", nil, &ov); err != nil {
		return nil, err
	}
	return &ov, nil
}
