package overview

// Stat is one headline card
type Stat struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

// SpendPoint is one day of actual spend against the optimized target
type SpendPoint struct {
	Day       string  `json:"day"`
	Spend     float64 `json:"spend"`
	Potential float64 `json:"potential"`
}

// Activity is one entry of the recent agentic activity feed
type Activity struct {
	Time     string `json:"time"`
	Action   string `json:"action"`
	Resource string `json:"resource"`
	Category string `json:"category"`
}

// Recommendation is the highlighted suggestion on the overview
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// Overview is the landing view
type Overview struct {
	Stats          []Stat         `json:"stats"`
	Spend          []SpendPoint   `json:"spend"`
	Activity       []Activity     `json:"activity"`
	Recommendation Recommendation `json:"recommendation"`
}

// View names the dashboard sections
type View struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

// Views lists the dashboard sections in navigation order
func Views() []View {
	return []View{
		{Name: "overview", Title: "Overview", Path: "/api/v1/overview"},
		{Name: "cost-audit", Title: "Cost Audit", Path: "/api/v1/cost-audit/resources"},
		{Name: "security", Title: "Security", Path: "/api/v1/security/alerts"},
		{Name: "approvals", Title: "Approvals", Path: "/api/v1/approvals"},
		{Name: "assistant", Title: "AI Assistant", Path: "/api/v1/assistant/messages"},
	}
}

// Default returns the static overview data
func Default() Overview {
	return Overview{
		Stats: []Stat{
			{Label: "Estimated Monthly Spend", Value: "$34,120", Change: "+12%"},
			{Label: "Potential Savings", Value: "$8,450", Change: "24.7%"},
			{Label: "Security Score", Value: "88/100", Change: "+5"},
			{Label: "Open Critical Vulnerabilities", Value: "2", Change: "-4"},
		},
		Spend: []SpendPoint{
			{Day: "Mon", Spend: 4200, Potential: 3800},
			{Day: "Tue", Spend: 4500, Potential: 3900},
			{Day: "Wed", Spend: 5100, Potential: 4000},
			{Day: "Thu", Spend: 4800, Potential: 3750},
			{Day: "Fri", Spend: 5300, Potential: 4100},
			{Day: "Sat", Spend: 3900, Potential: 3500},
			{Day: "Sun", Spend: 3700, Potential: 3400},
		},
		Activity: []Activity{
			{Time: "2m ago", Action: "Port 22 closed", Resource: "db-tier-1", Category: "Security Fix"},
			{Time: "15m ago", Action: "EC2 Right-sized", Resource: "api-gateway", Category: "Cost Optimization"},
			{Time: "1h ago", Action: "Zombie Volume Purged", Resource: "vol-998x", Category: "Cost Optimization"},
			{Time: "3h ago", Action: "S3 Permissions Revoked", Resource: "backup-bucket", Category: "Security Fix"},
			{Time: "5h ago", Action: "New Spot Instance request", Resource: "batch-worker-4", Category: "Optimization"},
		},
		Recommendation: Recommendation{
			Title:       "Top AI Recommendation",
			Description: "We identified 4 non-critical dev environments currently running on On-Demand instances.",
			Action:      "Execute Agentic Fix",
		},
	}
}
