package approval

// Type of an approval request
type Type string

// Request types
const (
	TypeResourceProvision Type = "resource_provision"
	TypeSecurityException Type = "security_exception"
)

// Status of an approval request
type Status string

// Request status. Pending moves once to approved or denied; both are terminal.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

// Terminal reports whether no further transition is allowed
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusDenied
}

// Request is a human-in-the-loop approval for an agent action
type Request struct {
	ID            string  `json:"id"`
	Requester     string  `json:"requester"`
	Description   string  `json:"description"`
	EstimatedCost float64 `json:"estimated_cost"`
	Type          Type    `json:"type"`
	Status        Status  `json:"status"`
}

// Clone returns a copy of r
func (r *Request) Clone() *Request {
	c := *r
	return &c
}

// Decide checks decision against the current status. ok is false when the
// request is terminal with the opposite outcome; repeating the same outcome
// is allowed and reports changed == false.
func (r *Request) Decide(decision Status) (changed bool, ok bool) {
	switch {
	case r.Status == StatusPending:
		return true, true
	case r.Status == decision:
		return false, true
	default:
		return false, false
	}
}

// AllResolved reports whether no request is pending
func AllResolved(requests []*Request) bool {
	for _, r := range requests {
		if r.Status == StatusPending {
			return false
		}
	}
	return true
}
