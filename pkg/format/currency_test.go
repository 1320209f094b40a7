package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{name: "small amount", amount: 42.5, expected: "$42.50"},
		{name: "thousands separator", amount: 240000, expected: "$240,000.00"},
		{name: "millions", amount: 1234567.89, expected: "$1,234,567.89"},
		{name: "negative", amount: -1234.56, expected: "-$1,234.56"},
		{name: "zero", amount: 0, expected: "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		expected string
	}{
		{name: "whole percent", rate: 0.08, expected: "8%"},
		{name: "whole percent with float noise", rate: 0.06, expected: "6%"},
		{name: "fractional percent", rate: 0.075, expected: "7.5%"},
		{name: "zero", rate: 0, expected: "0%"},
		{name: "negative", rate: -0.02, expected: "-2%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.rate); got != tt.expected {
				t.Errorf("Percent(%v) = %q, expected %q", tt.rate, got, tt.expected)
			}
		})
	}
}

func TestYears(t *testing.T) {
	if got := Years(23.47); got != "23.5 years" {
		t.Errorf("Years(23.47) = %q, expected \"23.5 years\"", got)
	}
}
