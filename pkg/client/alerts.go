package client

import (
	"context"
	"net/http"
	"net/url"
)

// AlertService handles security API calls
type AlertService struct {
	client *Client
}

// AlertListOptions contains options for listing alerts
type AlertListOptions struct {
	Severity string // low, medium, high, critical
	Status   string // open, fixed
}

// List retrieves security alerts
func (s *AlertService) List(ctx context.Context, opts *AlertListOptions) ([]Alert, error) {
	query := url.Values{}
	if opts != nil {
		if opts.Severity != "" {
			query.Set("severity", opts.Severity)
		}
		if opts.Status != "" {
			query.Set("status", opts.Status)
		}
	}

	path := "/api/v1/security/alerts"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var out list[Alert]
	if _, err := s.client.doRequest(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// Get retrieves a single alert by ID
func (s *AlertService) Get(ctx context.Context, id string) (*Alert, error) {
	var alert Alert
	if _, err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/security/alerts/"+url.PathEscape(id), nil, &alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

// Summary retrieves alert statistics
func (s *AlertService) Summary(ctx context.Context) (*AlertSummary, error) {
	var sum AlertSummary
	if _, err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/security/summary", nil, &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

// Compliance retrieves the framework scores and active policies
func (s *AlertService) Compliance(ctx context.Context) (*Compliance, error) {
	var c Compliance
	if _, err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/security/compliance", nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
