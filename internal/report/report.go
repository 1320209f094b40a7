// Package report orchestrates the FIRE engine and portfolio analytics over
// a loaded configuration and produces the full result set for rendering.
package report

import (
	"time"

	"github.com/kolodyr/f1nanc3/internal/config"
	"github.com/kolodyr/f1nanc3/pkg/constants"
	"github.com/kolodyr/f1nanc3/pkg/fire"
	"github.com/kolodyr/f1nanc3/pkg/portfolio"
	"go.uber.org/zap"
)

// CoastFigure pairs the configured ages with their Coast-FIRE present value.
type CoastFigure struct {
	CurrentAge int
	TargetAge  int
	Amount     float64
}

// Report is everything a single run computes. Scenarios, CoastFire, and
// Portfolio are present only when the configuration asked for them.
type Report struct {
	StartDate string
	Summary   fire.Summary
	Timeline  []fire.TimelinePoint
	Scenarios map[fire.ScenarioKey]fire.Scenario
	CoastFire *CoastFigure
	Portfolio *portfolio.Analysis
}

// Generate computes a report using the current month as the timeline start.
func Generate(logger *zap.Logger, conf config.Configuration) (*Report, error) {
	return GenerateWithFixedTime(logger, conf, time.Now())
}

// GenerateWithFixedTime computes a report with an injectable start time for
// deterministic tests.
func GenerateWithFixedTime(logger *zap.Logger, conf config.Configuration, fixedTime time.Time) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	calc, err := fire.NewCalculator(logger, conf.FireProfile())
	if err != nil {
		return nil, err
	}

	result := &Report{
		StartDate: fixedTime.Format(constants.DateTimeLayout),
		Summary:   calc.Summarize(),
	}

	result.Timeline, err = calc.Timeline(conf.Timeline.Years)
	if err != nil {
		return nil, err
	}

	if len(conf.Scenarios.Savings) > 0 && len(conf.Scenarios.Returns) > 0 {
		result.Scenarios, err = calc.SimulateScenarios(conf.Scenarios.Savings, conf.Scenarios.Returns)
		if err != nil {
			return nil, err
		}
	}

	if conf.Coast != nil {
		result.CoastFire = &CoastFigure{
			CurrentAge: conf.Coast.CurrentAge,
			TargetAge:  conf.Coast.TargetAge,
			Amount:     calc.CoastFire(conf.Coast.TargetAge, conf.Coast.CurrentAge),
		}
	}

	p, err := conf.BuildPortfolio()
	if err != nil {
		return nil, err
	}
	if p != nil {
		analysis := p.Analyze(conf.PriceSnapshot(), conf.Portfolio.Tolerance)
		result.Portfolio = &analysis
		logger.Debug("analyzed portfolio",
			zap.String("op", "report.GenerateWithFixedTime"),
			zap.String("portfolio", analysis.Name),
			zap.Int("assets", analysis.AssetCount),
		)
	}

	return result, nil
}
