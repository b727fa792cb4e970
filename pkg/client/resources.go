package client

import (
	"context"
	"net/http"
	"net/url"
)

// ResourceService handles cost-audit API calls
type ResourceService struct {
	client *Client
}

// ResourceListOptions contains options for listing resources
type ResourceListOptions struct {
	Provider string // AWS, Azure, GCP
	Status   string // idle, active, zombie, terminated
	Type     string
	Query    string // case-insensitive match on id, name or type
}

// List retrieves the audited resources in store order
func (s *ResourceService) List(ctx context.Context, opts *ResourceListOptions) ([]Resource, error) {
	query := url.Values{}
	if opts != nil {
		if opts.Provider != "" {
			query.Set("provider", opts.Provider)
		}
		if opts.Status != "" {
			query.Set("status", opts.Status)
		}
		if opts.Type != "" {
			query.Set("type", opts.Type)
		}
		if opts.Query != "" {
			query.Set("q", opts.Query)
		}
	}

	path := "/api/v1/cost-audit/resources"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var out list[Resource]
	if _, err := s.client.doRequest(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// Get retrieves a resource with its efficiency and cost history
func (s *ResourceService) Get(ctx context.Context, id string) (*ResourceDetail, error) {
	var detail ResourceDetail
	if _, err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/cost-audit/resources/"+url.PathEscape(id), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Terminate removes a resource from the audit. Unknown ids succeed.
func (s *ResourceService) Terminate(ctx context.Context, id string) error {
	_, err := s.client.doRequest(ctx, http.MethodDelete, "/api/v1/cost-audit/resources/"+url.PathEscape(id), nil, nil)
	return err
}

// Summary retrieves the waste statistics
func (s *ResourceService) Summary(ctx context.Context) (*WasteSummary, error) {
	var sum WasteSummary
	if _, err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/cost-audit/summary", nil, &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

// Reset restores the seed resources and returns the new summary
func (s *ResourceService) Reset(ctx context.Context) (*WasteSummary, error) {
	var sum WasteSummary
	if _, err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/cost-audit/reset", nil, &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

// ScanService controls the deep-scan simulator
type ScanService struct {
	client *Client
}

// Start begins a scan. A scan already in progress yields a conflict APIError.
func (s *ScanService) Start(ctx context.Context) (*ScanStatus, error) {
	return s.do(ctx, http.MethodPost)
}

// Status retrieves the scan state
func (s *ScanService) Status(ctx context.Context) (*ScanStatus, error) {
	return s.do(ctx, http.MethodGet)
}

// Cancel stops the active scan. It reports whether one was running.
func (s *ScanService) Cancel(ctx context.Context) (bool, error) {
	var st ScanStatus
	msg, err := s.client.doRequest(ctx, http.MethodDelete, "/api/v1/cost-audit/scan", nil, &st)
	if err != nil {
		return false, err
	}
	return msg == "Scan cancelled", nil
}

func (s *ScanService) do(ctx context.Context, method string) (*ScanStatus, error) {
	var st ScanStatus
	if _, err := s.client.doRequest(ctx, method, "/api/v1/cost-audit/scan", nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}
