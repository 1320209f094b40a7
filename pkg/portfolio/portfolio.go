// Package portfolio provides investment-portfolio analytics: total value,
// allocation weights, a value-weighted risk score, and rebalancing
// suggestions. Assets carry their value either as a stored amount or as a
// quantity priced against a caller-supplied snapshot; both forms share one
// model and one set of computations.
package portfolio

import (
	"fmt"

	"github.com/kolodyr/f1nanc3/pkg/constants"
)

// Category classifies an asset into one of a fixed, closed set.
type Category string

// The supported asset categories.
const (
	CategoryStocks      Category = "stocks"
	CategoryBonds       Category = "bonds"
	CategoryCrypto      Category = "crypto"
	CategoryCash        Category = "cash"
	CategoryRealEstate  Category = "real_estate"
	CategoryCommodities Category = "commodities"
)

// ParseCategory maps a string onto a known Category and rejects anything
// outside the closed set.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryStocks, CategoryBonds, CategoryCrypto, CategoryCash, CategoryRealEstate, CategoryCommodities:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown asset category %q", s)
}

// RiskLevel is the per-asset ordinal risk scale, 1 (minimal) through 5
// (very high).
type RiskLevel int

// The supported risk levels.
const (
	RiskMinimal  RiskLevel = 1
	RiskLow      RiskLevel = 2
	RiskMedium   RiskLevel = 3
	RiskHigh     RiskLevel = 4
	RiskVeryHigh RiskLevel = 5
)

// ParseRiskLevel validates an integer risk level against the 1-5 scale.
func ParseRiskLevel(level int) (RiskLevel, error) {
	if level < constants.MinRiskLevel || level > constants.MaxRiskLevel {
		return 0, fmt.Errorf("risk level must be between %d and %d, got %d",
			constants.MinRiskLevel, constants.MaxRiskLevel, level)
	}
	return RiskLevel(level), nil
}

// Prices is a snapshot of market prices keyed by ticker. Quantity-based
// assets whose ticker is absent from the snapshot are skipped by every
// computation, never treated as errors.
type Prices map[string]float64

// Asset is a single position. Its value comes from one of two sources: a
// stored amount fixed at construction, or a held quantity multiplied by a
// snapshot price at computation time.
type Asset struct {
	Name             string
	Category         Category
	RiskLevel        RiskLevel
	TargetAllocation float64

	value         float64
	quantity      float64
	quantityBased bool
}

// NewAsset constructs a stored-value asset.
func NewAsset(name, category string, value, targetAllocation float64, riskLevel int) (Asset, error) {
	if value < 0 {
		return Asset{}, fmt.Errorf("asset %s: value must be non-negative, got %.2f", name, value)
	}
	return newAsset(name, category, targetAllocation, riskLevel, value, 0, false)
}

// NewHolding constructs a quantity-based asset priced against a snapshot at
// computation time. The same holding can be analyzed against different
// price snapshots.
func NewHolding(name, category string, quantity, targetAllocation float64, riskLevel int) (Asset, error) {
	if quantity < 0 {
		return Asset{}, fmt.Errorf("holding %s: quantity must be non-negative, got %.4f", name, quantity)
	}
	return newAsset(name, category, targetAllocation, riskLevel, 0, quantity, true)
}

func newAsset(name, category string, targetAllocation float64, riskLevel int, value, quantity float64, quantityBased bool) (Asset, error) {
	if name == "" {
		return Asset{}, fmt.Errorf("asset name cannot be empty")
	}
	cat, err := ParseCategory(category)
	if err != nil {
		return Asset{}, fmt.Errorf("asset %s: %w", name, err)
	}
	risk, err := ParseRiskLevel(riskLevel)
	if err != nil {
		return Asset{}, fmt.Errorf("asset %s: %w", name, err)
	}
	if targetAllocation < 0 || targetAllocation > 1 {
		return Asset{}, fmt.Errorf("asset %s: target allocation must be within [0, 1], got %.4f", name, targetAllocation)
	}

	return Asset{
		Name:             name,
		Category:         cat,
		RiskLevel:        risk,
		TargetAllocation: targetAllocation,
		value:            value,
		quantity:         quantity,
		quantityBased:    quantityBased,
	}, nil
}

// Value resolves the asset's current value. For quantity-based assets the
// second return reports whether the snapshot carried a price; stored-value
// assets always resolve.
func (a Asset) Value(prices Prices) (float64, bool) {
	if !a.quantityBased {
		return a.value, true
	}
	price, ok := prices[a.Name]
	if !ok {
		return 0, false
	}
	return a.quantity * price, true
}

// Portfolio is an ordered collection of assets under one name.
type Portfolio struct {
	Name   string
	assets []Asset
}

// New creates an empty portfolio.
func New(name string) *Portfolio {
	return &Portfolio{Name: name}
}

// AddAsset appends a constructed asset.
func (p *Portfolio) AddAsset(asset Asset) {
	p.assets = append(p.assets, asset)
}

// Assets returns the assets in insertion order.
func (p *Portfolio) Assets() []Asset {
	return p.assets
}
