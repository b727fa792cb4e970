package resource

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		resources []*Resource
		want      Summary
	}{
		{
			name: "empty store yields zeros",
			want: Summary{},
		},
		{
			name: "only scores above 60 leak",
			resources: []*Resource{
				{ID: "a", MonthlyCost: 100, WasteScore: 70, Status: StatusIdle},
				{ID: "b", MonthlyCost: 200, WasteScore: 10, Status: StatusActive},
			},
			want: Summary{TotalLeakage: 100, ResourceCount: 2},
		},
		{
			name: "boundaries",
			resources: []*Resource{
				{ID: "at-30", MonthlyCost: 1, WasteScore: 30},
				{ID: "at-31", MonthlyCost: 2, WasteScore: 31},
				{ID: "at-60", MonthlyCost: 4, WasteScore: 60},
				{ID: "at-61", MonthlyCost: 8, WasteScore: 61},
			},
			want: Summary{TotalLeakage: 8, RightsizingCount: 2, ResourceCount: 4},
		},
		{
			name:      "seed",
			resources: Seed(),
			want:      Summary{TotalLeakage: 165, ZombieCount: 1, RightsizingCount: 0, ResourceCount: 5},
		},
		{
			name:      "seed plus discovered",
			resources: append(Seed(), Discovered()...),
			want:      Summary{TotalLeakage: 165 + 412 + 650 + 85, ZombieCount: 3, ResourceCount: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.resources))
		})
	}
}

func TestSummarize_ZombieCountIsOrderIndependent(t *testing.T) {
	resources := append(Seed(), Discovered()...)
	want := Summarize(resources)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]*Resource(nil), resources...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got := Summarize(shuffled)
		assert.Equal(t, want.ZombieCount, got.ZombieCount)
		assert.InDelta(t, want.TotalLeakage, got.TotalLeakage, 1e-9)
	}
}

func TestSummarize_ZombieRequiresExactStatus(t *testing.T) {
	resources := []*Resource{
		{ID: "z", Status: StatusZombie},
		{ID: "t", Status: StatusTerminated, WasteScore: 100},
		{ID: "u", Status: Status("Zombie")},
	}
	assert.Equal(t, 1, Summarize(resources).ZombieCount)
}

func TestAnalyze(t *testing.T) {
	r := &Resource{ID: "i-1", MonthlyCost: 100, WasteScore: 85}

	a := Analyze(r)

	assert.Equal(t, 15, a.Efficiency)
	assert.True(t, a.Wasteful)
	assert.False(t, a.Rightsizing)
	if assert.Len(t, a.History, 4) {
		assert.Equal(t, "Mar", a.History[0].Month)
		assert.InDelta(t, 108.0, a.History[0].Cost, 1e-9)
		assert.Equal(t, "Jun", a.History[3].Month)
		assert.InDelta(t, 100.0, a.History[3].Cost, 1e-9)
	}
}
