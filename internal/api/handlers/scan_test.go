package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davidotu-spec/AegisFlow-AI/internal/api/dto"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/errors"
	"github.com/davidotu-spec/AegisFlow-AI/internal/testutil"
	"github.com/davidotu-spec/AegisFlow-AI/internal/worker"
)

func TestScanHandler_Start(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "starts", expectedStatus: http.StatusAccepted},
		{name: "already running", err: errors.Conflict("busy"), expectedStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := new(mockScanner)
			sc.On("Start").Return(worker.ScanStatus{State: worker.ScanRunning, Message: worker.ScanPhases[0]}, tt.err)
			handler := NewScanHandler(sc, testutil.NewTestLogger())

			rr := serve(handler.Start, httptest.NewRequest(http.MethodPost, "/api/v1/cost-audit/scan", nil))
			assert.Equal(t, tt.expectedStatus, rr.Code)

			if rr.Code == http.StatusAccepted {
				var st dto.ScanStatusDTO
				testutil.DecodeData(t, rr, &st)
				assert.Equal(t, "running", st.State)
				assert.Equal(t, len(worker.ScanPhases), st.PhaseCount)
			}
			sc.AssertExpectations(t)
		})
	}
}

func TestScanHandler_Cancel(t *testing.T) {
	for _, active := range []bool{true, false} {
		sc := new(mockScanner)
		sc.On("Cancel").Return(active)
		sc.On("Status").Return(worker.ScanStatus{State: worker.ScanIdle})
		handler := NewScanHandler(sc, testutil.NewTestLogger())

		rr := serve(handler.Cancel, httptest.NewRequest(http.MethodDelete, "/", nil))
		assert.Equal(t, http.StatusOK, rr.Code)

		env := testutil.DecodeEnvelope(t, rr)
		if active {
			assert.Equal(t, "Scan cancelled", env.Message)
		} else {
			assert.Equal(t, "No scan in progress", env.Message)
		}
	}
}
