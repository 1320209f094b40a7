package portfolio

import (
	"math"
	"testing"
)

func mustAsset(t *testing.T, name, category string, value, target float64, risk int) Asset {
	t.Helper()
	asset, err := NewAsset(name, category, value, target, risk)
	if err != nil {
		t.Fatalf("NewAsset(%s) returned error: %v", name, err)
	}
	return asset
}

func mustHolding(t *testing.T, name, category string, quantity, target float64, risk int) Asset {
	t.Helper()
	asset, err := NewHolding(name, category, quantity, target, risk)
	if err != nil {
		t.Fatalf("NewHolding(%s) returned error: %v", name, err)
	}
	return asset
}

func TestParseCategory(t *testing.T) {
	valid := []string{"stocks", "bonds", "crypto", "cash", "real_estate", "commodities"}
	for _, name := range valid {
		if _, err := ParseCategory(name); err != nil {
			t.Errorf("ParseCategory(%q) returned error: %v", name, err)
		}
	}

	invalid := []string{"", "Stocks", "equities", "realestate"}
	for _, name := range invalid {
		if _, err := ParseCategory(name); err == nil {
			t.Errorf("ParseCategory(%q) = nil error, expected rejection", name)
		}
	}
}

func TestParseRiskLevel(t *testing.T) {
	for level := 1; level <= 5; level++ {
		if _, err := ParseRiskLevel(level); err != nil {
			t.Errorf("ParseRiskLevel(%d) returned error: %v", level, err)
		}
	}

	for _, level := range []int{0, -1, 6, 100} {
		if _, err := ParseRiskLevel(level); err == nil {
			t.Errorf("ParseRiskLevel(%d) = nil error, expected rejection", level)
		}
	}
}

func TestAssetConstructionRejections(t *testing.T) {
	tests := []struct {
		name      string
		construct func() error
	}{
		{
			name: "unknown category",
			construct: func() error {
				_, err := NewAsset("VOO", "equities", 100, 0.5, 3)
				return err
			},
		},
		{
			name: "risk level out of range",
			construct: func() error {
				_, err := NewAsset("VOO", "stocks", 100, 0.5, 6)
				return err
			},
		},
		{
			name: "negative value",
			construct: func() error {
				_, err := NewAsset("VOO", "stocks", -100, 0.5, 3)
				return err
			},
		},
		{
			name: "negative quantity",
			construct: func() error {
				_, err := NewHolding("TSLA", "stocks", -5, 0.5, 3)
				return err
			},
		},
		{
			name: "empty name",
			construct: func() error {
				_, err := NewAsset("", "stocks", 100, 0.5, 3)
				return err
			},
		},
		{
			name: "target allocation above 1",
			construct: func() error {
				_, err := NewAsset("VOO", "stocks", 100, 1.5, 3)
				return err
			},
		},
		{
			name: "negative target allocation",
			construct: func() error {
				_, err := NewAsset("VOO", "stocks", 100, -0.1, 3)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.construct(); err == nil {
				t.Error("construction succeeded, expected rejection")
			}
		})
	}
}

func TestAssetValueResolution(t *testing.T) {
	stored := mustAsset(t, "VOO", "stocks", 112, 0.6, 3)
	holding := mustHolding(t, "TSLA", "stocks", 5, 0.5, 4)

	prices := Prices{"TSLA": 250}

	t.Run("stored value ignores prices", func(t *testing.T) {
		value, ok := stored.Value(nil)
		if !ok || math.Abs(value-112) > 1e-9 {
			t.Errorf("Value() = (%.2f, %v), expected (112, true)", value, ok)
		}
	})

	t.Run("holding multiplies quantity by price", func(t *testing.T) {
		value, ok := holding.Value(prices)
		if !ok || math.Abs(value-1250) > 1e-9 {
			t.Errorf("Value() = (%.2f, %v), expected (1250, true)", value, ok)
		}
	})

	t.Run("holding without price does not resolve", func(t *testing.T) {
		if _, ok := holding.Value(Prices{"AAPL": 180}); ok {
			t.Error("Value() resolved a holding with no price in the snapshot")
		}
	})

	t.Run("same holding against a second snapshot", func(t *testing.T) {
		value, ok := holding.Value(Prices{"TSLA": 300})
		if !ok || math.Abs(value-1500) > 1e-9 {
			t.Errorf("Value() = (%.2f, %v), expected (1500, true)", value, ok)
		}
	})
}

func TestPortfolioAssetsOrder(t *testing.T) {
	p := New("Test")
	p.AddAsset(mustAsset(t, "VOO", "stocks", 112, 0.6, 3))
	p.AddAsset(mustAsset(t, "BND", "bonds", 50, 0.4, 2))

	assets := p.Assets()
	if len(assets) != 2 {
		t.Fatalf("Assets() has %d entries, expected 2", len(assets))
	}
	if assets[0].Name != "VOO" || assets[1].Name != "BND" {
		t.Errorf("assets out of insertion order: %s, %s", assets[0].Name, assets[1].Name)
	}
}
