package resource

// Thresholds used to classify waste scores
const (
	WastefulThreshold    = 60
	RightsizingThreshold = 30
)

// Summary holds the aggregate waste statistics of a set of resources
type Summary struct {
	TotalLeakage     float64 `json:"total_leakage"`
	ZombieCount      int     `json:"zombie_count"`
	RightsizingCount int     `json:"rightsizing_count"`
	ResourceCount    int     `json:"resource_count"`
}

// Summarize derives the waste statistics from resources. It is recomputed on
// every call and has no side effects; an empty slice yields zeros.
func Summarize(resources []*Resource) Summary {
	s := Summary{ResourceCount: len(resources)}
	for _, r := range resources {
		if IsWasteful(r) {
			s.TotalLeakage += r.MonthlyCost
		}
		if r.Status == StatusZombie {
			s.ZombieCount++
		}
		if IsRightsizingCandidate(r) {
			s.RightsizingCount++
		}
	}
	return s
}

// IsWasteful reports whether a resource's cost counts as leakage
func IsWasteful(r *Resource) bool {
	return r.WasteScore > WastefulThreshold
}

// IsRightsizingCandidate reports whether a resource scores in (30, 60]
func IsRightsizingCandidate(r *Resource) bool {
	return r.WasteScore > RightsizingThreshold && r.WasteScore <= WastefulThreshold
}

// Efficiency is the complement of the waste score
func Efficiency(r *Resource) int {
	return 100 - r.WasteScore
}

// CostPoint is one month of a resource's cost history
type CostPoint struct {
	Month string  `json:"month"`
	Cost  float64 `json:"cost"`
}

var historyFactors = []struct {
	month  string
	factor float64
}{
	{"Mar", 1.08},
	{"Apr", 1.02},
	{"May", 0.98},
	{"Jun", 1.0},
}

// CostHistory returns the trailing four months of cost derived from the
// current monthly cost.
func CostHistory(r *Resource) []CostPoint {
	points := make([]CostPoint, len(historyFactors))
	for i, h := range historyFactors {
		points[i] = CostPoint{Month: h.month, Cost: r.MonthlyCost * h.factor}
	}
	return points
}

// Analyze builds the detail view of r
func Analyze(r *Resource) *Analysis {
	return &Analysis{
		Resource:    r,
		Efficiency:  Efficiency(r),
		Wasteful:    IsWasteful(r),
		Rightsizing: IsRightsizingCandidate(r),
		History:     CostHistory(r),
	}
}
