// Package output provides utilities for formatting and displaying
// projection reports.
package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kolodyr/f1nanc3/internal/report"
	"github.com/kolodyr/f1nanc3/pkg/datetime"
	"github.com/kolodyr/f1nanc3/pkg/fire"
	"github.com/kolodyr/f1nanc3/pkg/format"
	"github.com/kolodyr/f1nanc3/pkg/portfolio"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(result *report.Report) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- FIRE projection ---\n")
	_, _ = p.Printf("FIRE number:     %s\n", format.Currency(result.Summary.FireNumber))
	_, _ = p.Printf("Net worth:       %s (%.1f%% of target)\n",
		format.Currency(result.Summary.CurrentNetWorth), result.Summary.ProgressPercent)
	fmt.Printf("Years to FIRE:   %s\n", horizonLabel(result.Summary.Horizon))
	if !result.Summary.Horizon.Unreachable {
		_, _ = p.Printf("Target in %s dollars: %s\n",
			fireDate(result), format.Currency(result.Summary.FireNumberAtTarget))
	}

	if result.CoastFire != nil {
		fmt.Printf("\n--- Coast FIRE ---\n")
		_, _ = p.Printf("Needed today to coast from age %d to %d: %s\n",
			result.CoastFire.CurrentAge, result.CoastFire.TargetAge, format.Currency(result.CoastFire.Amount))
	}

	if len(result.Scenarios) > 0 {
		fmt.Printf("\n--- Scenarios ---\n")
		for _, scenario := range sortedScenarios(result.Scenarios) {
			fmt.Printf("%-18s | %s\n", scenario.Key.Label(), horizonLabel(scenario.Horizon))
		}
	}

	fmt.Printf("\n--- Timeline ---\n")
	fmt.Printf("Date    | Net worth     | Progress\n")
	fmt.Printf("____    | _____________ | ________\n")
	for _, point := range result.Timeline {
		// December of each projected year keeps the table readable.
		if point.Month != 11 && point.MonthIndex != len(result.Timeline)-1 {
			continue
		}
		date, err := datetime.OffsetDate(result.StartDate, datetime.DateTimeLayout, point.MonthIndex+1)
		if err != nil {
			date = result.StartDate
		}
		_, _ = p.Printf("%s | %13s | %.1f%%\n", date, format.Currency(point.NetWorth), point.Progress)
	}

	if result.Portfolio != nil {
		prettyPortfolio(p, result.Portfolio)
	}
}

func prettyPortfolio(p *message.Printer, analysis *portfolio.Analysis) {
	fmt.Printf("\n--- Portfolio: %s ---\n", analysis.Name)
	_, _ = p.Printf("Total value: %s across %d assets\n", format.Currency(analysis.TotalValue), analysis.AssetCount)
	_, _ = p.Printf("Risk score:  %.1f/10\n", analysis.RiskScore)

	fmt.Printf("Allocation:\n")
	for _, name := range sortedKeys(analysis.Weights) {
		fmt.Printf("  %-12s %s\n", name, format.Percent(analysis.Weights[name]))
	}

	if len(analysis.Rebalancing) > 0 {
		fmt.Printf("Rebalancing:\n")
		for _, name := range sortedSuggestionKeys(analysis.Rebalancing) {
			suggestion := analysis.Rebalancing[name]
			fmt.Printf("  %-12s %s %s\n", name, strings.ToUpper(string(suggestion.Action)), format.Currency(suggestion.Amount))
		}
	} else {
		fmt.Printf("Rebalancing: none needed\n")
	}
}

// CsvFormat outputs the timeline and scenarios in comma-separated value format.
func CsvFormat(result *report.Report) {
	fmt.Printf("\"date\",\"net worth\",\"progress\"\n")
	for _, point := range result.Timeline {
		date, err := datetime.OffsetDate(result.StartDate, datetime.DateTimeLayout, point.MonthIndex+1)
		if err != nil {
			date = result.StartDate
		}
		fmt.Printf("\"%s\",\"%.2f\",\"%.2f\"\n", date, point.NetWorth, point.Progress)
	}

	if len(result.Scenarios) == 0 {
		return
	}
	fmt.Printf("\n\"scenario\",\"monthly savings\",\"annual return\",\"years to fire\"\n")
	for _, scenario := range sortedScenarios(result.Scenarios) {
		fmt.Printf("\"%s\",\"%.2f\",\"%.4f\",\"%s\"\n",
			scenario.Key.Label(), scenario.Key.MonthlySavings, scenario.Key.AnnualReturn, csvHorizon(scenario.Horizon))
	}
}

func horizonLabel(h fire.Horizon) string {
	if h.Unreachable {
		return "unreachable without contributions"
	}
	if h.Capped {
		return format.Years(h.Years) + " (planning ceiling)"
	}
	return format.Years(h.Years)
}

func csvHorizon(h fire.Horizon) string {
	if h.Unreachable {
		return "unreachable"
	}
	return fmt.Sprintf("%.2f", h.Years)
}

func fireDate(result *report.Report) string {
	months := int(result.Summary.Horizon.Years * 12)
	date, err := datetime.OffsetDate(result.StartDate, datetime.DateTimeLayout, months)
	if err != nil {
		return result.StartDate
	}
	return date
}

// sortedScenarios orders sweep results by savings then return so output is
// stable across runs.
func sortedScenarios(scenarios map[fire.ScenarioKey]fire.Scenario) []fire.Scenario {
	ordered := make([]fire.Scenario, 0, len(scenarios))
	for _, scenario := range scenarios {
		ordered = append(ordered, scenario)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Key.MonthlySavings != ordered[j].Key.MonthlySavings {
			return ordered[i].Key.MonthlySavings < ordered[j].Key.MonthlySavings
		}
		return ordered[i].Key.AnnualReturn < ordered[j].Key.AnnualReturn
	})
	return ordered
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedSuggestionKeys(m map[string]portfolio.Suggestion) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
