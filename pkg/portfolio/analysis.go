package portfolio

import (
	"math"

	"github.com/kolodyr/f1nanc3/pkg/constants"
)

// Action is a rebalancing direction.
type Action string

// Rebalancing actions.
const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
)

// Suggestion is a rebalancing recommendation for one asset whose allocation
// drifted beyond tolerance.
type Suggestion struct {
	Action     Action
	Amount     float64
	Current    float64
	Target     float64
	Difference float64
}

// TotalValue sums the resolvable asset values. Quantity-based assets with
// no price in the snapshot contribute nothing.
func (p *Portfolio) TotalValue(prices Prices) float64 {
	total := 0.0
	for _, asset := range p.assets {
		if value, ok := asset.Value(prices); ok {
			total += value
		}
	}
	return total
}

// Weights returns each resolvable asset's share of the total value. Assets
// without a price are absent from the result, and a zero total yields an
// empty map rather than a division by zero.
func (p *Portfolio) Weights(prices Prices) map[string]float64 {
	total := p.TotalValue(prices)
	weights := make(map[string]float64)
	if total == 0 {
		return weights
	}

	for _, asset := range p.assets {
		if value, ok := asset.Value(prices); ok {
			weights[asset.Name] = value / total
		}
	}
	return weights
}

// CategoryAllocation groups resolvable asset values by category and returns
// each category's fraction of the total.
func (p *Portfolio) CategoryAllocation(prices Prices) map[Category]float64 {
	total := p.TotalValue(prices)
	allocation := make(map[Category]float64)
	if total == 0 {
		return allocation
	}

	categoryTotals := make(map[Category]float64)
	for _, asset := range p.assets {
		if value, ok := asset.Value(prices); ok {
			categoryTotals[asset.Category] += value
		}
	}

	for category, value := range categoryTotals {
		allocation[category] = value / total
	}
	return allocation
}

// RiskScore is the value-weighted average of the per-asset 1-5 risk levels,
// rescaled onto a 1-10 display scale. An empty or unpriced portfolio scores
// zero.
func (p *Portfolio) RiskScore(prices Prices) float64 {
	total := p.TotalValue(prices)
	if total == 0 {
		return 0
	}

	weightedRisk := 0.0
	for _, asset := range p.assets {
		if value, ok := asset.Value(prices); ok {
			weightedRisk += value * float64(asset.RiskLevel)
		}
	}
	return (weightedRisk / total) * constants.RiskScaleFactor
}

// SuggestRebalancing compares each asset's current allocation to its target
// and emits a buy or sell suggestion when the drift exceeds the tolerance.
// Assets within tolerance produce no entry. A non-positive tolerance falls
// back to the default.
func (p *Portfolio) SuggestRebalancing(prices Prices, tolerance float64) map[string]Suggestion {
	if tolerance <= 0 {
		tolerance = constants.DefaultRebalanceTolerance
	}

	total := p.TotalValue(prices)
	weights := p.Weights(prices)
	suggestions := make(map[string]Suggestion)

	for _, asset := range p.assets {
		current, ok := weights[asset.Name]
		if !ok {
			continue
		}

		difference := current - asset.TargetAllocation
		if math.Abs(difference) <= tolerance {
			continue
		}

		action := ActionBuy
		if difference > 0 {
			action = ActionSell
		}

		suggestions[asset.Name] = Suggestion{
			Action:     action,
			Amount:     math.Abs(difference) * total,
			Current:    current,
			Target:     asset.TargetAllocation,
			Difference: difference,
		}
	}

	return suggestions
}

// Analysis aggregates every portfolio computation into one snapshot.
type Analysis struct {
	Name               string
	TotalValue         float64
	AssetCount         int
	Weights            map[string]float64
	CategoryAllocation map[Category]float64
	RiskScore          float64
	Rebalancing        map[string]Suggestion
}

// Analyze runs the full set of portfolio computations against one price
// snapshot.
func (p *Portfolio) Analyze(prices Prices, tolerance float64) Analysis {
	return Analysis{
		Name:               p.Name,
		TotalValue:         p.TotalValue(prices),
		AssetCount:         len(p.assets),
		Weights:            p.Weights(prices),
		CategoryAllocation: p.CategoryAllocation(prices),
		RiskScore:          p.RiskScore(prices),
		Rebalancing:        p.SuggestRebalancing(prices, tolerance),
	}
}
