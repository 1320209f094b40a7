// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/kolodyr/f1nanc3/internal/config"
	"github.com/kolodyr/f1nanc3/pkg/fire"
)

// FindScenario finds a sweep result by its savings/return pair.
// Returns a pointer to the scenario if found, nil otherwise.
func FindScenario(scenarios map[fire.ScenarioKey]fire.Scenario, monthlySavings, annualReturn float64) *fire.Scenario {
	key := fire.ScenarioKey{MonthlySavings: monthlySavings, AnnualReturn: annualReturn}
	if scenario, ok := scenarios[key]; ok {
		return &scenario
	}
	return nil
}

// SampleConfiguration returns a fully populated configuration matching the
// example config file, for report-level tests.
func SampleConfiguration() config.Configuration {
	voo := 112.0
	qqq := 56.0
	wtai := 18.0

	return config.Configuration{
		Profile: config.ProfileConfig{
			CurrentNetWorth:    3581,
			MonthlySavings:     200,
			AnnualReturn:       0.08,
			AnnualExpenses:     9600,
			SafeWithdrawalRate: 0.04,
			InflationRate:      0.03,
		},
		Timeline: config.TimelineConfig{Years: 30},
		Scenarios: config.ScenariosConfig{
			Savings: []float64{200, 300, 500},
			Returns: []float64{0.07, 0.08, 0.10},
		},
		Coast: &config.CoastConfig{CurrentAge: 30, TargetAge: 50},
		Portfolio: &config.PortfolioConfig{
			Name:      "IBKR Portfolio",
			Tolerance: 0.05,
			Assets: []config.AssetConfig{
				{Name: "VOO", Category: "stocks", Value: &voo, TargetAllocation: 0.6, RiskLevel: 3},
				{Name: "QQQ", Category: "stocks", Value: &qqq, TargetAllocation: 0.3, RiskLevel: 4},
				{Name: "WTAI", Category: "stocks", Value: &wtai, TargetAllocation: 0.1, RiskLevel: 5},
			},
		},
	}
}
