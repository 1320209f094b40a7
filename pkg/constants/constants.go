// Package constants provides shared constants for the f1nanc3 application.
package constants

// DateTimeLayout is the month granularity used when labeling timeline output.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// MaxProjectionYears is the planning horizon ceiling for the
	// years-to-FIRE iteration
	MaxProjectionYears = 100

	// MaxProjectionMonths bounds the monthly compounding loop; projections
	// that have not crossed the target by then report the capped horizon
	MaxProjectionMonths = MaxProjectionYears * MonthsPerYear

	// DefaultSafeWithdrawalRate is the conventional 4% rule
	DefaultSafeWithdrawalRate = 0.04

	// DefaultInflationRate is the assumed annual expense growth rate
	DefaultInflationRate = 0.03

	// DefaultTimelineYears is the default projection horizon for timelines
	DefaultTimelineYears = 30

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100
)

// Portfolio constants
const (
	// DefaultRebalanceTolerance is the allocation drift beyond which a
	// rebalancing suggestion is emitted (5%)
	DefaultRebalanceTolerance = 0.05

	// RiskScaleFactor rescales the value-weighted 1-5 ordinal risk average
	// onto the 1-10 display scale
	RiskScaleFactor = 2.0

	// MinRiskLevel and MaxRiskLevel bound the per-asset ordinal risk scale
	MinRiskLevel = 1
	MaxRiskLevel = 5
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)
