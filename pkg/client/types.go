package client

import "time"

// Resource is an audited cloud resource
type Resource struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Provider    string  `json:"provider"`
	MonthlyCost float64 `json:"monthlyCost"`
	Status      string  `json:"status"`
	WasteScore  int     `json:"wasteScore"`
}

// CostPoint is one month of cost history
type CostPoint struct {
	Month string  `json:"month"`
	Cost  float64 `json:"cost"`
}

// ResourceDetail is a resource with its derived analysis
type ResourceDetail struct {
	Resource
	Efficiency           int         `json:"efficiency"`
	Wasteful             bool        `json:"wasteful"`
	RightsizingCandidate bool        `json:"rightsizingCandidate"`
	History              []CostPoint `json:"history"`
}

// WasteSummary holds the cost-audit statistics
type WasteSummary struct {
	TotalLeakage     float64 `json:"totalLeakage"`
	ZombieCount      int     `json:"zombieCount"`
	RightsizingCount int     `json:"rightsizingCount"`
	ResourceCount    int     `json:"resourceCount"`
}

// ScanStatus reports the deep-scan state
type ScanStatus struct {
	State         string     `json:"state"` // idle, running, completing
	Progress      float64    `json:"progress"`
	Phase         int        `json:"phase"`
	PhaseCount    int        `json:"phaseCount"`
	Message       string     `json:"message"`
	CompletedRuns int        `json:"completedRuns"`
	StartedAt     *time.Time `json:"startedAt,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

// Alert is a security finding
type Alert struct {
	ID             string    `json:"id"`
	Severity       string    `json:"severity"` // low, medium, high, critical
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Timestamp      time.Time `json:"timestamp"`
	AutoRemediated bool      `json:"autoRemediated"`
	Status         string    `json:"status"` // open, fixed
}

// AlertSummary holds alert statistics
type AlertSummary struct {
	Total          int            `json:"total"`
	Open           int            `json:"open"`
	Fixed          int            `json:"fixed"`
	AutoRemediated int            `json:"autoRemediated"`
	OpenCritical   int            `json:"openCritical"`
	BySeverity     map[string]int `json:"bySeverity"`
}

// Framework is one compliance framework score
type Framework struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Status string `json:"status"`
}

// Compliance is the compliance posture
type Compliance struct {
	Frameworks []Framework `json:"frameworks"`
	Policies   []string    `json:"policies"`
}

// Approval is a request waiting on a human decision
type Approval struct {
	ID            string  `json:"id"`
	Requester     string  `json:"requester"`
	Description   string  `json:"description"`
	EstimatedCost float64 `json:"estimatedCost"`
	Type          string  `json:"type"`
	Status        string  `json:"status"` // pending, approved, denied
}

// ApprovalList is the approval queue
type ApprovalList struct {
	Items       []Approval `json:"items"`
	Total       int        `json:"total"`
	AllResolved bool       `json:"allResolved"`
}

// Message is one chat message
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // user, assistant
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// View is a dashboard view and the endpoint that backs it
type View struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

// Stat is an overview headline figure
type Stat struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

// SpendPoint is one day of the spend chart
type SpendPoint struct {
	Day       string  `json:"day"`
	Spend     float64 `json:"spend"`
	Potential float64 `json:"potential"`
}

// Activity is an entry in the agent activity feed
type Activity struct {
	Time     string `json:"time"`
	Action   string `json:"action"`
	Resource string `json:"resource"`
	Category string `json:"category"`
}

// Recommendation is the highlighted overview recommendation
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// Overview is the landing dashboard
type Overview struct {
	Stats          []Stat         `json:"stats"`
	Spend          []SpendPoint   `json:"spend"`
	Activity       []Activity     `json:"activity"`
	Recommendation Recommendation `json:"recommendation"`
}

// HealthResponse is returned by the probe endpoints
type HealthResponse struct {
	Status    string `json:"status"`
	Assistant string `json:"assistant,omitempty"`
}

// list is the data shape of collection endpoints
type list[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
