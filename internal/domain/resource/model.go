package resource

// Provider identifies the cloud a resource lives in
type Provider string

// Cloud providers
const (
	ProviderAWS   Provider = "AWS"
	ProviderAzure Provider = "Azure"
	ProviderGCP   Provider = "GCP"
)

// Valid reports whether p is a known provider
func (p Provider) Valid() bool {
	switch p {
	case ProviderAWS, ProviderAzure, ProviderGCP:
		return true
	}
	return false
}

// Status is the lifecycle status of a resource
type Status string

// Resource status
const (
	StatusIdle       Status = "idle"
	StatusActive     Status = "active"
	StatusZombie     Status = "zombie"
	StatusTerminated Status = "terminated"
)

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	switch s {
	case StatusIdle, StatusActive, StatusZombie, StatusTerminated:
		return true
	}
	return false
}

// Resource is a cloud resource tracked by the cost audit.
// WasteScore and Status are set independently by whatever produced the record.
type Resource struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Provider    Provider `json:"provider"`
	MonthlyCost float64  `json:"monthly_cost"`
	Status      Status   `json:"status"`
	WasteScore  int      `json:"waste_score"` // 0 to 100
}

// Clone returns a copy of r
func (r *Resource) Clone() *Resource {
	c := *r
	return &c
}

// Filter contains resource filtering options for the audit list
type Filter struct {
	Provider Provider
	Status   Status
	Type     string
	// Query matches id, name, or type case-insensitively
	Query string
}
