package client

import (
	"context"
	"net/http"
	"net/url"
)

// ApprovalService handles the approval queue
type ApprovalService struct {
	client *Client
}

// List retrieves the approval queue
func (s *ApprovalService) List(ctx context.Context) (*ApprovalList, error) {
	var out ApprovalList
	if _, err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/approvals", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get retrieves a single request
func (s *ApprovalService) Get(ctx context.Context, id string) (*Approval, error) {
	return s.do(ctx, http.MethodGet, "/api/v1/approvals/"+url.PathEscape(id))
}

// Approve approves a pending request. Approving twice is a no-op; approving
// a denied request yields a conflict APIError.
func (s *ApprovalService) Approve(ctx context.Context, id string) (*Approval, error) {
	return s.do(ctx, http.MethodPost, "/api/v1/approvals/"+url.PathEscape(id)+"/approve")
}

// Deny denies a pending request
func (s *ApprovalService) Deny(ctx context.Context, id string) (*Approval, error) {
	return s.do(ctx, http.MethodPost, "/api/v1/approvals/"+url.PathEscape(id)+"/deny")
}

// Reset restores the seed requests
func (s *ApprovalService) Reset(ctx context.Context) (*ApprovalList, error) {
	var out ApprovalList
	if _, err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/approvals/reset", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ApprovalService) do(ctx context.Context, method, path string) (*Approval, error) {
	var a Approval
	if _, err := s.client.doRequest(ctx, method, path, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
