package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL})
}

func writeEnvelope(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestResourceService_List(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/cost-audit/resources", r.URL.Path)
		assert.Equal(t, "AWS", r.URL.Query().Get("provider"))
		assert.Equal(t, "db", r.URL.Query().Get("q"))
		assert.Empty(t, r.URL.Query().Get("status"))
		writeEnvelope(w, http.StatusOK, `{"success":true,"data":{"items":[{"id":"i-98b7654c","name":"dev-sandbox-db","type":"RDS","provider":"AWS","monthlyCost":120,"status":"idle","wasteScore":85}],"total":1}}`)
	})

	resources, err := c.Resources().List(context.Background(), &ResourceListOptions{Provider: "AWS", Query: "db"})
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "dev-sandbox-db", resources[0].Name)
	assert.Equal(t, 85, resources[0].WasteScore)
}

func TestClient_ErrorEnvelope(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		code     string
		conflict bool
		notFound bool
	}{
		{
			name:     "conflict",
			status:   http.StatusConflict,
			body:     `{"success":false,"error":{"code":"CONFLICT","message":"Request apr-101 is already approved"}}`,
			code:     "CONFLICT",
			conflict: true,
		},
		{
			name:     "not found",
			status:   http.StatusNotFound,
			body:     `{"success":false,"error":{"code":"NOT_FOUND","message":"Approval request not found"}}`,
			code:     "NOT_FOUND",
			notFound: true,
		},
		{
			name:   "non-json body",
			status: http.StatusBadGateway,
			body:   `upstream unavailable`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(w, tt.status, tt.body)
			})

			_, err := c.Approvals().Deny(context.Background(), "apr-101")
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.conflict, apiErr.IsConflict())
			assert.Equal(t, tt.notFound, apiErr.IsNotFound())
		})
	}
}

func TestScanService_Cancel(t *testing.T) {
	for _, msg := range []string{"Scan cancelled", "No scan in progress"} {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			writeEnvelope(w, http.StatusOK, `{"success":true,"message":"`+msg+`","data":{"state":"idle","progress":0}}`)
		})

		cancelled, err := c.Scan().Cancel(context.Background())
		require.NoError(t, err)
		assert.Equal(t, msg == "Scan cancelled", cancelled)
	}
}

func TestChatService_Send(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hello", body["content"])

		writeEnvelope(w, http.StatusCreated, `{"success":true,"data":{"id":"m-1","role":"assistant","content":"hi there","timestamp":"2024-05-20T14:30:00Z"}}`)
	})

	msg, err := c.Chat().Send(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "assistant", msg.Role)
	assert.Equal(t, "hi there", msg.Content)
}

func TestClient_Views(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, `{"success":true,"data":{"items":[{"name":"overview","title":"Overview","path":"/api/v1/overview"}],"total":1}}`)
	})

	views, err := c.Views(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "/api/v1/overview", views[0].Path)
}
