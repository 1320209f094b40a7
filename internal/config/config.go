// Package config defines the data structures related to configuration and
// includes functions for loading and converting the config.
package config

import (
	"fmt"

	"github.com/kolodyr/f1nanc3/pkg/constants"
	"github.com/kolodyr/f1nanc3/pkg/fire"
	"github.com/kolodyr/f1nanc3/pkg/mathutil"
	"github.com/kolodyr/f1nanc3/pkg/portfolio"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for f1nanc3.
type Configuration struct {
	Profile   ProfileConfig    `yaml:"profile"`
	Timeline  TimelineConfig   `yaml:"timeline,omitempty"`
	Scenarios ScenariosConfig  `yaml:"scenarios,omitempty"`
	Coast     *CoastConfig     `yaml:"coast,omitempty"`
	Portfolio *PortfolioConfig `yaml:"portfolio,omitempty"`
	Logging   LoggingConfig    `yaml:"logging,omitempty"`
	Output    OutputConfig     `yaml:"output,omitempty"`
}

// ProfileConfig holds the financial position and assumptions.
type ProfileConfig struct {
	CurrentNetWorth    float64 `yaml:"currentNetWorth"`
	MonthlySavings     float64 `yaml:"monthlySavings"`
	AnnualReturn       float64 `yaml:"annualReturn"`
	AnnualExpenses     float64 `yaml:"annualExpenses"`
	SafeWithdrawalRate float64 `yaml:"safeWithdrawalRate,omitempty"`
	InflationRate      float64 `yaml:"inflationRate,omitempty"`
}

// TimelineConfig selects the projection horizon.
type TimelineConfig struct {
	Years int `yaml:"years,omitempty"`
}

// ScenariosConfig lists the candidate inputs for the scenario sweep.
type ScenariosConfig struct {
	Savings []float64 `yaml:"savings,omitempty"`
	Returns []float64 `yaml:"returns,omitempty"`
}

// CoastConfig holds the age pair for the Coast-FIRE present value.
type CoastConfig struct {
	CurrentAge int `yaml:"currentAge"`
	TargetAge  int `yaml:"targetAge"`
}

// PortfolioConfig describes the assets to analyze plus an optional price
// snapshot for quantity-based holdings. Prices are a list rather than a map
// because viper lowercases map keys, which would corrupt tickers.
type PortfolioConfig struct {
	Name      string        `yaml:"name,omitempty"`
	Assets    []AssetConfig `yaml:"assets"`
	Prices    []PriceConfig `yaml:"prices,omitempty"`
	Tolerance float64       `yaml:"tolerance,omitempty"`
}

// PriceConfig is one ticker's quote within the snapshot.
type PriceConfig struct {
	Ticker string  `yaml:"ticker"`
	Price  float64 `yaml:"price"`
}

// AssetConfig describes one asset. Exactly one of Value or Quantity should
// be set; a quantity-based asset is priced from the snapshot.
type AssetConfig struct {
	Name             string   `yaml:"name"`
	Category         string   `yaml:"category"`
	Value            *float64 `yaml:"value,omitempty"`
	Quantity         *float64 `yaml:"quantity,omitempty"`
	TargetAllocation float64  `yaml:"targetAllocation"`
	RiskLevel        int      `yaml:"riskLevel,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()

	return &configuration, nil
}

// applyDefaults fills the optional knobs the way the original calculator
// defaulted them.
func (c *Configuration) applyDefaults() {
	if c.Profile.SafeWithdrawalRate == 0 {
		c.Profile.SafeWithdrawalRate = constants.DefaultSafeWithdrawalRate
	}
	if c.Profile.InflationRate == 0 {
		c.Profile.InflationRate = constants.DefaultInflationRate
	}
	if c.Timeline.Years == 0 {
		c.Timeline.Years = constants.DefaultTimelineYears
	}
	if c.Portfolio != nil {
		if c.Portfolio.Tolerance == 0 {
			c.Portfolio.Tolerance = constants.DefaultRebalanceTolerance
		}
		for i := range c.Portfolio.Assets {
			if c.Portfolio.Assets[i].RiskLevel == 0 {
				c.Portfolio.Assets[i].RiskLevel = int(portfolio.RiskMedium)
			}
		}
	}
}

// FireProfile converts the profile section into an engine profile. The
// engine's own validation applies at calculator construction.
func (c *Configuration) FireProfile() fire.Profile {
	return fire.Profile{
		CurrentNetWorth:    c.Profile.CurrentNetWorth,
		MonthlySavings:     c.Profile.MonthlySavings,
		AnnualReturn:       c.Profile.AnnualReturn,
		AnnualExpenses:     c.Profile.AnnualExpenses,
		SafeWithdrawalRate: c.Profile.SafeWithdrawalRate,
		InflationRate:      c.Profile.InflationRate,
	}
}

// BuildPortfolio constructs the portfolio from the asset list. Assets
// carrying a quantity become snapshot-priced holdings; assets carrying a
// value are stored-value assets. Specifying both or neither is rejected.
func (c *Configuration) BuildPortfolio() (*portfolio.Portfolio, error) {
	if c.Portfolio == nil {
		return nil, nil
	}

	name := c.Portfolio.Name
	if name == "" {
		name = "My Portfolio"
	}
	p := portfolio.New(name)

	for i, assetConf := range c.Portfolio.Assets {
		if assetConf.Value != nil && assetConf.Quantity != nil {
			return nil, fmt.Errorf("asset %d (%s): specify either value or quantity, not both", i, assetConf.Name)
		}
		if assetConf.Value == nil && assetConf.Quantity == nil {
			return nil, fmt.Errorf("asset %d (%s): must specify value or quantity", i, assetConf.Name)
		}

		var asset portfolio.Asset
		var err error
		if assetConf.Quantity != nil {
			asset, err = portfolio.NewHolding(assetConf.Name, assetConf.Category, *assetConf.Quantity, assetConf.TargetAllocation, assetConf.RiskLevel)
		} else {
			asset, err = portfolio.NewAsset(assetConf.Name, assetConf.Category, *assetConf.Value, assetConf.TargetAllocation, assetConf.RiskLevel)
		}
		if err != nil {
			return nil, fmt.Errorf("asset %d: %w", i, err)
		}

		p.AddAsset(asset)
	}

	return p, nil
}

// PriceSnapshot converts the configured quotes into the analytics price map.
func (c *Configuration) PriceSnapshot() portfolio.Prices {
	if c.Portfolio == nil || len(c.Portfolio.Prices) == 0 {
		return nil
	}
	prices := make(portfolio.Prices, len(c.Portfolio.Prices))
	for _, quote := range c.Portfolio.Prices {
		prices[quote.Ticker] = quote.Price
	}
	return prices
}

// ValidateConfiguration performs general validation of the configuration
// and returns warnings for suspect-but-legal input. Hard invariant
// violations surface as errors from the typed constructors instead.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Profile.MonthlySavings <= 0 {
		warnings = append(warnings, fmt.Sprintf("monthly savings of %.2f cannot reach a FIRE target that is not already met", c.Profile.MonthlySavings))
	}

	if (len(c.Scenarios.Savings) == 0) != (len(c.Scenarios.Returns) == 0) {
		warnings = append(warnings, "scenario sweep needs both savings and returns candidates; the sweep will be skipped")
	}

	if c.Coast != nil && c.Coast.TargetAge < c.Coast.CurrentAge {
		warnings = append(warnings, fmt.Sprintf("coast target age %d is before current age %d", c.Coast.TargetAge, c.Coast.CurrentAge))
	}

	if c.Portfolio != nil && len(c.Portfolio.Assets) > 0 {
		totalTarget := 0.0
		for _, asset := range c.Portfolio.Assets {
			totalTarget += asset.TargetAllocation
		}
		if totalTarget != 0 && !mathutil.WithinTolerance(totalTarget, 1.0, 1e-6) {
			warnings = append(warnings, fmt.Sprintf("portfolio target allocations sum to %.2f, expected 1.00", totalTarget))
		}
	}

	return warnings
}
