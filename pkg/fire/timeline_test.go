package fire

import (
	"math"
	"testing"

	"github.com/kolodyr/f1nanc3/pkg/mathutil"
)

func TestTimelineLengthAndDecomposition(t *testing.T) {
	calc := mustCalculator(t, baseProfile())

	timeline, err := calc.Timeline(5)
	if err != nil {
		t.Fatalf("Timeline(5) returned error: %v", err)
	}

	if len(timeline) != 60 {
		t.Fatalf("Timeline(5) has %d points, expected 60", len(timeline))
	}

	for _, point := range timeline {
		if point.Year != point.MonthIndex/12 {
			t.Errorf("point %d: Year = %d, expected %d", point.MonthIndex, point.Year, point.MonthIndex/12)
		}
		if point.Month != point.MonthIndex%12 {
			t.Errorf("point %d: Month = %d, expected %d", point.MonthIndex, point.Month, point.MonthIndex%12)
		}
	}

	last := timeline[len(timeline)-1]
	if last.Year != 4 || last.Month != 11 {
		t.Errorf("last point decomposes to year %d month %d, expected year 4 month 11", last.Year, last.Month)
	}
}

func TestTimelineMatchesDirectIteration(t *testing.T) {
	profile := baseProfile()
	calc := mustCalculator(t, profile)

	const years = 10
	timeline, err := calc.Timeline(years)
	if err != nil {
		t.Fatalf("Timeline(%d) returned error: %v", years, err)
	}

	monthlyRate := mathutil.MonthlyRate(profile.AnnualReturn)
	netWorth := profile.CurrentNetWorth
	for month := 0; month < years*12; month++ {
		netWorth = netWorth*(1+monthlyRate) + profile.MonthlySavings
	}

	last := timeline[len(timeline)-1]
	if math.Abs(last.NetWorth-netWorth) > 1e-9 {
		t.Errorf("final net worth = %.4f, expected %.4f from direct iteration", last.NetWorth, netWorth)
	}

	fireNumber := calc.FireNumber()
	expectedProgress := netWorth / fireNumber * 100
	if math.Abs(last.Progress-expectedProgress) > 1e-9 {
		t.Errorf("final progress = %.4f, expected %.4f", last.Progress, expectedProgress)
	}
}

func TestTimelineRunsFullHorizonPastTarget(t *testing.T) {
	// The timeline never terminates early, even once the target is crossed.
	profile := baseProfile()
	profile.CurrentNetWorth = 250000

	calc := mustCalculator(t, profile)
	timeline, err := calc.Timeline(3)
	if err != nil {
		t.Fatalf("Timeline(3) returned error: %v", err)
	}

	if len(timeline) != 36 {
		t.Fatalf("Timeline(3) has %d points, expected 36", len(timeline))
	}
	if timeline[0].Progress <= 100 {
		t.Errorf("first point progress = %.2f, expected above 100%%", timeline[0].Progress)
	}
}

func TestTimelineZeroTargetProgress(t *testing.T) {
	profile := baseProfile()
	profile.AnnualExpenses = 0

	calc := mustCalculator(t, profile)
	timeline, err := calc.Timeline(1)
	if err != nil {
		t.Fatalf("Timeline(1) returned error: %v", err)
	}

	for _, point := range timeline {
		if point.Progress != 0 {
			t.Fatalf("point %d: progress = %.2f, expected 0 for zero target", point.MonthIndex, point.Progress)
		}
	}
}

func TestTimelineRejectsNonPositiveHorizon(t *testing.T) {
	calc := mustCalculator(t, baseProfile())

	for _, years := range []int{0, -1} {
		if _, err := calc.Timeline(years); err == nil {
			t.Errorf("Timeline(%d) = nil error, expected rejection", years)
		}
	}
}
