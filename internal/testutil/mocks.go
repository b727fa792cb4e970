package testutil

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"github.com/davidotu-spec/AegisFlow-AI/internal/assistant"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/alert"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/resource"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/errors"
)

// MockResourceRepository is a mock implementation of resource.Repository
type MockResourceRepository struct {
	Resources   []*resource.Resource
	ListError   error
	AppendError error
	RemoveError error
}

func NewMockResourceRepository(seed ...*resource.Resource) *MockResourceRepository {
	return &MockResourceRepository{Resources: seed}
}

func (m *MockResourceRepository) Append(ctx context.Context, records ...*resource.Resource) error {
	if m.AppendError != nil {
		return m.AppendError
	}
	m.Resources = append(m.Resources, records...)
	return nil
}

func (m *MockResourceRepository) Remove(ctx context.Context, id string) (int, error) {
	if m.RemoveError != nil {
		return 0, m.RemoveError
	}
	kept := m.Resources[:0]
	n := 0
	for _, r := range m.Resources {
		if r.ID == id {
			n++
			continue
		}
		kept = append(kept, r)
	}
	m.Resources = kept
	return n, nil
}

func (m *MockResourceRepository) Get(ctx context.Context, id string) (*resource.Resource, error) {
	for _, r := range m.Resources {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errors.NotFound("Resource")
}

func (m *MockResourceRepository) List(ctx context.Context) ([]*resource.Resource, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return append([]*resource.Resource(nil), m.Resources...), nil
}

func (m *MockResourceRepository) Reset(ctx context.Context, seed []*resource.Resource) error {
	m.Resources = append([]*resource.Resource(nil), seed...)
	return nil
}

// MockAlertRepository is a mock implementation of alert.Repository
type MockAlertRepository struct {
	Alerts    []*alert.Alert
	ListError error
}

func NewMockAlertRepository(seed ...*alert.Alert) *MockAlertRepository {
	return &MockAlertRepository{Alerts: seed}
}

func (m *MockAlertRepository) List(ctx context.Context) ([]*alert.Alert, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Alerts, nil
}

func (m *MockAlertRepository) Get(ctx context.Context, id string) (*alert.Alert, error) {
	for _, a := range m.Alerts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("alert %s not found", id)
}

// MockAssistant records queries and returns canned replies
type MockAssistant struct {
	mock.Mock
}

func (m *MockAssistant) Query(ctx context.Context, text string, snap assistant.Snapshot) string {
	args := m.Called(ctx, text, snap)
	return args.String(0)
}
