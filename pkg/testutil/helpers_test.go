package testutil

import (
	"testing"

	"github.com/kolodyr/f1nanc3/pkg/fire"
)

func TestFindScenario(t *testing.T) {
	scenarios := map[fire.ScenarioKey]fire.Scenario{
		{MonthlySavings: 200, AnnualReturn: 0.06}: {FireNumber: 240000},
	}

	if found := FindScenario(scenarios, 200, 0.06); found == nil {
		t.Error("FindScenario returned nil for a present scenario")
	}
	if found := FindScenario(scenarios, 300, 0.06); found != nil {
		t.Errorf("FindScenario returned %+v for an absent scenario", found)
	}
}

func TestSampleConfigurationIsValid(t *testing.T) {
	conf := SampleConfiguration()

	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("sample configuration produced warnings: %v", warnings)
	}

	if err := conf.FireProfile().Validate(); err != nil {
		t.Errorf("sample profile failed validation: %v", err)
	}

	p, err := conf.BuildPortfolio()
	if err != nil {
		t.Fatalf("BuildPortfolio returned error: %v", err)
	}
	if len(p.Assets()) != 3 {
		t.Errorf("sample portfolio has %d assets, expected 3", len(p.Assets()))
	}
}
