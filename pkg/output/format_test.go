package output

import (
	"testing"

	"github.com/kolodyr/f1nanc3/pkg/fire"
)

func TestHorizonLabel(t *testing.T) {
	tests := []struct {
		name     string
		horizon  fire.Horizon
		expected string
	}{
		{
			name:     "plain horizon",
			horizon:  fire.Horizon{Years: 23.5},
			expected: "23.5 years",
		},
		{
			name:     "unreachable",
			horizon:  fire.Horizon{Unreachable: true},
			expected: "unreachable without contributions",
		},
		{
			name:     "capped at ceiling",
			horizon:  fire.Horizon{Years: 100, Capped: true},
			expected: "100.0 years (planning ceiling)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := horizonLabel(tt.horizon); got != tt.expected {
				t.Errorf("horizonLabel(%+v) = %q, expected %q", tt.horizon, got, tt.expected)
			}
		})
	}
}

func TestCsvHorizon(t *testing.T) {
	if got := csvHorizon(fire.Horizon{Unreachable: true}); got != "unreachable" {
		t.Errorf("csvHorizon(unreachable) = %q, expected \"unreachable\"", got)
	}
	if got := csvHorizon(fire.Horizon{Years: 12.25}); got != "12.25" {
		t.Errorf("csvHorizon(12.25) = %q, expected \"12.25\"", got)
	}
}

func TestSortedScenarios(t *testing.T) {
	scenarios := map[fire.ScenarioKey]fire.Scenario{
		{MonthlySavings: 300, AnnualReturn: 0.06}: {Key: fire.ScenarioKey{MonthlySavings: 300, AnnualReturn: 0.06}},
		{MonthlySavings: 200, AnnualReturn: 0.08}: {Key: fire.ScenarioKey{MonthlySavings: 200, AnnualReturn: 0.08}},
		{MonthlySavings: 200, AnnualReturn: 0.06}: {Key: fire.ScenarioKey{MonthlySavings: 200, AnnualReturn: 0.06}},
	}

	ordered := sortedScenarios(scenarios)
	if len(ordered) != 3 {
		t.Fatalf("sortedScenarios returned %d entries, expected 3", len(ordered))
	}

	expected := []fire.ScenarioKey{
		{MonthlySavings: 200, AnnualReturn: 0.06},
		{MonthlySavings: 200, AnnualReturn: 0.08},
		{MonthlySavings: 300, AnnualReturn: 0.06},
	}
	for i, key := range expected {
		if ordered[i].Key != key {
			t.Errorf("position %d: got %+v, expected %+v", i, ordered[i].Key, key)
		}
	}
}
