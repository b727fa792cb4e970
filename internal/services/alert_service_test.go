package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/alert"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/compliance"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/errors"
	"github.com/davidotu-spec/AegisFlow-AI/internal/repository/memory"
	"github.com/davidotu-spec/AegisFlow-AI/internal/testutil"
)

var _ alert.Service = (*AlertService)(nil)

func TestAlertService_List(t *testing.T) {
	service := NewAlertService(memory.NewAlertRepository(alert.Seed()), testutil.NewTestLogger())
	ctx := context.Background()

	tests := []struct {
		name   string
		filter alert.Filter
		want   int
	}{
		{"all", alert.Filter{}, 3},
		{"open", alert.Filter{Status: alert.StatusOpen}, 2},
		{"critical", alert.Filter{Severity: alert.SeverityCritical}, 1},
		{"open critical", alert.Filter{Severity: alert.SeverityCritical, Status: alert.StatusOpen}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestAlertService_GetAndSummary(t *testing.T) {
	service := NewAlertService(memory.NewAlertRepository(alert.Seed()), testutil.NewTestLogger())
	ctx := context.Background()

	a, err := service.Get(ctx, "sec-002")
	require.NoError(t, err)
	assert.Equal(t, "Unencrypted EBS Volume", a.Title)

	sum, err := service.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 1, sum.AutoRemediated)
}

func TestAlertService_ListError(t *testing.T) {
	repo := testutil.NewMockAlertRepository()
	repo.ListError = fmt.Errorf("unavailable")
	service := NewAlertService(repo, testutil.NewTestLogger())

	_, err := service.List(context.Background(), alert.Filter{})
	assert.True(t, errors.IsCode(err, errors.ErrCodeInternal))
}

func TestAlertService_Compliance(t *testing.T) {
	service := NewAlertService(memory.NewAlertRepository(nil), testutil.NewTestLogger())
	p := service.Compliance(context.Background())

	require.Len(t, p.Frameworks, 4)
	assert.Equal(t, compliance.Framework{Name: "GDPR", Score: 72, Status: compliance.StatusFail}, p.Frameworks[3])
	assert.Contains(t, p.Policies, "Close Exposed SSH Ports")
}
