package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/alert"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/approval"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/resource"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/validator"
	"github.com/davidotu-spec/AegisFlow-AI/internal/repository/memory"
	"github.com/davidotu-spec/AegisFlow-AI/internal/services"
	"github.com/davidotu-spec/AegisFlow-AI/internal/testutil"
	"github.com/davidotu-spec/AegisFlow-AI/internal/worker"
)

// withURLParam sets a chi route parameter on req
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func newResourceHandler() *ResourceHandler {
	log := testutil.NewTestLogger()
	repo := memory.NewResourceRepository(resource.Seed())
	return NewResourceHandler(services.NewResourceService(repo, resource.Seed, log), log, validator.New())
}

func newAlertHandler() *AlertHandler {
	log := testutil.NewTestLogger()
	return NewAlertHandler(services.NewAlertService(memory.NewAlertRepository(alert.Seed()), log), log, validator.New())
}

func newApprovalHandler() *ApprovalHandler {
	log := testutil.NewTestLogger()
	return NewApprovalHandler(services.NewApprovalService(memory.NewApprovalRepository(approval.Seed()), log), log)
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

type mockScanner struct {
	mock.Mock
}

func (m *mockScanner) Start() (worker.ScanStatus, error) {
	args := m.Called()
	return args.Get(0).(worker.ScanStatus), args.Error(1)
}

func (m *mockScanner) Status() worker.ScanStatus {
	return m.Called().Get(0).(worker.ScanStatus)
}

func (m *mockScanner) Cancel() bool {
	return m.Called().Bool(0)
}
