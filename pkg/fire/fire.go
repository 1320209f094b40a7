// Package fire implements financial-independence projections: the FIRE
// target, time-to-target simulation, scenario sweeps, Coast-FIRE present
// values, and month-by-month growth timelines. All computations are pure
// functions of a validated Profile.
package fire

import (
	"fmt"
	"math"

	"github.com/kolodyr/f1nanc3/pkg/constants"
	"github.com/kolodyr/f1nanc3/pkg/mathutil"
	"go.uber.org/zap"
)

// Profile holds the financial position and assumptions a projection is
// computed from. Profiles are immutable inputs; nothing mutates them after
// construction.
type Profile struct {
	CurrentNetWorth    float64
	MonthlySavings     float64
	AnnualReturn       float64
	AnnualExpenses     float64
	SafeWithdrawalRate float64
	InflationRate      float64
}

// Validate rejects profiles that would produce undefined or nonsensical
// projections. A zero safe withdrawal rate divides the FIRE target; returns
// at or below -100% have no monthly equivalent.
func (p Profile) Validate() error {
	if p.CurrentNetWorth < 0 {
		return fmt.Errorf("currentNetWorth must be non-negative, got %.2f", p.CurrentNetWorth)
	}
	if p.AnnualExpenses < 0 {
		return fmt.Errorf("annualExpenses must be non-negative, got %.2f", p.AnnualExpenses)
	}
	if p.SafeWithdrawalRate <= 0 {
		return fmt.Errorf("safeWithdrawalRate must be positive, got %.4f", p.SafeWithdrawalRate)
	}
	if p.AnnualReturn <= -1 {
		return fmt.Errorf("annualReturn must be greater than -1, got %.4f", p.AnnualReturn)
	}
	if p.InflationRate <= -1 {
		return fmt.Errorf("inflationRate must be greater than -1, got %.4f", p.InflationRate)
	}
	return nil
}

// Horizon is the outcome of a time-to-FIRE projection. Unreachable marks
// positions that cannot cross the target with non-positive contributions;
// Capped marks projections that ran to the planning ceiling without
// crossing. Years is valid whenever Unreachable is false.
type Horizon struct {
	Years       float64
	Unreachable bool
	Capped      bool
}

// Calculator computes FIRE projections for a single validated profile.
type Calculator struct {
	logger  *zap.Logger
	profile Profile
}

// NewCalculator validates the profile and returns a calculator over it.
func NewCalculator(logger *zap.Logger, profile Profile) (*Calculator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &Calculator{logger: logger, profile: profile}, nil
}

// Profile returns the profile the calculator was constructed with.
func (c *Calculator) Profile() Profile {
	return c.profile
}

// FireNumber is the capital needed to sustain annual expenses at the safe
// withdrawal rate (25x expenses under the 4% rule).
func (c *Calculator) FireNumber() float64 {
	return c.profile.AnnualExpenses / c.profile.SafeWithdrawalRate
}

// YearsToFire simulates monthly compounding until the net worth crosses the
// FIRE target. An already-met target reports zero years regardless of the
// savings sign; otherwise non-positive savings are unreachable, and the
// iteration is bounded by the 100-year planning ceiling.
func (c *Calculator) YearsToFire() Horizon {
	fireNumber := c.FireNumber()

	if c.profile.CurrentNetWorth >= fireNumber {
		return Horizon{Years: 0}
	}

	if c.profile.MonthlySavings <= 0 {
		c.logger.Debug("target unreachable without positive contributions",
			zap.String("op", "fire.YearsToFire"),
			zap.Float64("monthlySavings", c.profile.MonthlySavings),
		)
		return Horizon{Unreachable: true}
	}

	monthlyRate := mathutil.MonthlyRate(c.profile.AnnualReturn)
	netWorth := c.profile.CurrentNetWorth
	months := 0

	for netWorth < fireNumber && months < constants.MaxProjectionMonths {
		netWorth = netWorth*(1+monthlyRate) + c.profile.MonthlySavings
		months++
	}

	if netWorth < fireNumber {
		c.logger.Debug("projection hit the planning ceiling before crossing the target",
			zap.String("op", "fire.YearsToFire"),
			zap.Float64("finalNetWorth", netWorth),
			zap.Float64("fireNumber", fireNumber),
		)
		return Horizon{Years: constants.MaxProjectionYears, Capped: true}
	}

	return Horizon{Years: float64(months) / constants.MonthsPerYear}
}

// CoastFire is the present value that grows, with no further contributions,
// to the FIRE target by targetAge. Supplying ages in the wrong order yields
// a mathematically valid but semantically meaningless future value; age
// ordering is the caller's responsibility.
func (c *Calculator) CoastFire(targetAge, currentAge int) float64 {
	years := float64(targetAge - currentAge)
	return c.FireNumber() / math.Pow(1+c.profile.AnnualReturn, years)
}

// Summary is a read-only snapshot of the projection for one profile.
type Summary struct {
	FireNumber      float64
	CurrentNetWorth float64
	ProgressPercent float64
	Horizon         Horizon

	// FireNumberAtTarget restates the FIRE target in dollars of the
	// projected FIRE date, growing expenses at the inflation rate. Equals
	// FireNumber when no FIRE date exists.
	FireNumberAtTarget float64

	Profile Profile
}

// Summarize aggregates the headline projection figures. It performs no
// computation beyond the individual operations it composes.
func (c *Calculator) Summarize() Summary {
	fireNumber := c.FireNumber()
	horizon := c.YearsToFire()

	fireNumberAtTarget := fireNumber
	if !horizon.Unreachable {
		fireNumberAtTarget = fireNumber * math.Pow(1+c.profile.InflationRate, horizon.Years)
	}

	return Summary{
		FireNumber:         fireNumber,
		CurrentNetWorth:    c.profile.CurrentNetWorth,
		ProgressPercent:    mathutil.CalculatePercentage(c.profile.CurrentNetWorth, fireNumber),
		Horizon:            horizon,
		FireNumberAtTarget: fireNumberAtTarget,
		Profile:            c.profile,
	}
}
