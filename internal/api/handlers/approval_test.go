package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidotu-spec/AegisFlow-AI/internal/api/dto"
	"github.com/davidotu-spec/AegisFlow-AI/internal/testutil"
)

func TestApprovalHandler_Decisions(t *testing.T) {
	handler := newApprovalHandler()

	steps := []struct {
		name           string
		action         http.HandlerFunc
		id             string
		expectedStatus int
		expectedState  string
	}{
		{"approve pending", handler.Approve, "apr-101", http.StatusOK, "approved"},
		{"approve again", handler.Approve, "apr-101", http.StatusOK, "approved"},
		{"deny approved", handler.Deny, "apr-101", http.StatusConflict, ""},
		{"deny pending", handler.Deny, "apr-102", http.StatusOK, "denied"},
		{"approve denied", handler.Approve, "apr-102", http.StatusConflict, ""},
		{"unknown id", handler.Approve, "apr-404", http.StatusNotFound, ""},
	}

	for _, st := range steps {
		t.Run(st.name, func(t *testing.T) {
			req := withURLParam(httptest.NewRequest(http.MethodPost, "/", nil), "id", st.id)
			rr := serve(st.action, req)
			require.Equal(t, st.expectedStatus, rr.Code, rr.Body.String())

			if st.expectedState != "" {
				var a dto.ApprovalDTO
				testutil.DecodeData(t, rr, &a)
				assert.Equal(t, st.expectedState, a.Status)
			}
		})
	}

	var list dto.ApprovalListDTO
	testutil.DecodeData(t, serve(handler.List, httptest.NewRequest(http.MethodGet, "/", nil)), &list)
	assert.True(t, list.AllResolved)
	assert.Equal(t, "approved", list.Items[0].Status)
	assert.Equal(t, "denied", list.Items[1].Status)

	testutil.DecodeData(t, serve(handler.Reset, httptest.NewRequest(http.MethodPost, "/", nil)), &list)
	assert.False(t, list.AllResolved)
	assert.Equal(t, 2, list.Total)
}

func TestApprovalHandler_Get(t *testing.T) {
	handler := newApprovalHandler()

	var a dto.ApprovalDTO
	testutil.DecodeData(t, serve(handler.Get, withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "apr-101")), &a)
	assert.Equal(t, 2400.0, a.EstimatedCost)
	assert.Equal(t, "resource_provision", a.Type)
}
