package fire

import (
	"fmt"

	"github.com/kolodyr/f1nanc3/pkg/format"
	"go.uber.org/zap"
)

// ScenarioKey identifies one cell of a scenario sweep by its literal input
// pair. Using the numeric pair as the map key keeps numerically close
// inputs from colliding the way formatted labels can.
type ScenarioKey struct {
	MonthlySavings float64
	AnnualReturn   float64
}

// Label renders the key in the conventional human-readable form,
// e.g. "$300/mo @ 8%".
func (k ScenarioKey) Label() string {
	return fmt.Sprintf("$%g/mo @ %s", k.MonthlySavings, format.Percent(k.AnnualReturn))
}

// Scenario is one independent projection within a sweep.
type Scenario struct {
	Key        ScenarioKey
	Horizon    Horizon
	FireNumber float64
}

// SimulateScenarios evaluates the Cartesian product of candidate monthly
// savings amounts and annual return rates. Each cell runs an independent
// projection with the base profile's net worth, expenses, and withdrawal
// rate but the cell's own savings and return. A candidate return at or
// below -1 fails the whole sweep.
func (c *Calculator) SimulateScenarios(savings, returns []float64) (map[ScenarioKey]Scenario, error) {
	scenarios := make(map[ScenarioKey]Scenario, len(savings)*len(returns))

	for _, monthlySavings := range savings {
		for _, annualReturn := range returns {
			profile := c.profile
			profile.MonthlySavings = monthlySavings
			profile.AnnualReturn = annualReturn

			calc, err := NewCalculator(c.logger, profile)
			if err != nil {
				return nil, fmt.Errorf("scenario ($%g/mo, %g): %w", monthlySavings, annualReturn, err)
			}

			key := ScenarioKey{MonthlySavings: monthlySavings, AnnualReturn: annualReturn}
			scenarios[key] = Scenario{
				Key:        key,
				Horizon:    calc.YearsToFire(),
				FireNumber: calc.FireNumber(),
			}

			c.logger.Debug("evaluated scenario",
				zap.String("op", "fire.SimulateScenarios"),
				zap.String("scenario", key.Label()),
			)
		}
	}

	return scenarios, nil
}
