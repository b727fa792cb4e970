package alert

import "time"

// Severity ranks how serious a finding is
type Severity string

// Alert severity levels
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Status of a security alert
type Status string

// Alert status
const (
	StatusOpen  Status = "open"
	StatusFixed Status = "fixed"
)

// Alert is a security finding shown in the security view. Alerts are read only.
type Alert struct {
	ID             string    `json:"id"`
	Severity       Severity  `json:"severity"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Timestamp      time.Time `json:"timestamp"`
	AutoRemediated bool      `json:"auto_remediated"`
	Status         Status    `json:"status"`
}

// Clone returns a copy of a
func (a *Alert) Clone() *Alert {
	c := *a
	return &c
}

// Filter contains alert filtering options
type Filter struct {
	Severity Severity
	Status   Status
}

// Matches reports whether a passes the filter
func (f Filter) Matches(a *Alert) bool {
	if f.Severity != "" && a.Severity != f.Severity {
		return false
	}
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	return true
}

// Summary aggregates the alert list for the security view
type Summary struct {
	Total          int              `json:"total"`
	Open           int              `json:"open"`
	Fixed          int              `json:"fixed"`
	AutoRemediated int              `json:"auto_remediated"`
	OpenCritical   int              `json:"open_critical"`
	BySeverity     map[Severity]int `json:"by_severity"`
}

// Summarize counts alerts by status and severity
func Summarize(alerts []*Alert) Summary {
	s := Summary{
		Total: len(alerts),
		BySeverity: map[Severity]int{
			SeverityLow:      0,
			SeverityMedium:   0,
			SeverityHigh:     0,
			SeverityCritical: 0,
		},
	}
	for _, a := range alerts {
		s.BySeverity[a.Severity]++
		switch a.Status {
		case StatusOpen:
			s.Open++
			if a.Severity == SeverityCritical {
				s.OpenCritical++
			}
		case StatusFixed:
			s.Fixed++
		}
		if a.AutoRemediated {
			s.AutoRemediated++
		}
	}
	return s
}
