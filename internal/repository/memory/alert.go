package memory

import (
	"context"

	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/alert"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/errors"
)

// AlertRepository implements alert.Repository. The list is fixed at construction.
type AlertRepository struct {
	alerts []*alert.Alert
}

// NewAlertRepository creates an alert repository
func NewAlertRepository(seed []*alert.Alert) *AlertRepository {
	alerts := make([]*alert.Alert, 0, len(seed))
	for _, a := range seed {
		alerts = append(alerts, a.Clone())
	}
	return &AlertRepository{alerts: alerts}
}

func (r *AlertRepository) List(ctx context.Context) ([]*alert.Alert, error) {
	out := make([]*alert.Alert, len(r.alerts))
	for i, a := range r.alerts {
		out[i] = a.Clone()
	}
	return out, nil
}

func (r *AlertRepository) Get(ctx context.Context, id string) (*alert.Alert, error) {
	for _, a := range r.alerts {
		if a.ID == id {
			return a.Clone(), nil
		}
	}
	return nil, errors.NotFound("Alert")
}
