package fire

import (
	"fmt"

	"github.com/kolodyr/f1nanc3/pkg/constants"
	"github.com/kolodyr/f1nanc3/pkg/mathutil"
)

// TimelinePoint is the projected position after one elapsed month. Year and
// Month decompose the zero-based month index; Progress is the percentage of
// the FIRE target reached.
type TimelinePoint struct {
	MonthIndex int
	Year       int
	Month      int
	NetWorth   float64
	Progress   float64
}

// Timeline simulates monthly compounding for the full horizon and records
// one point per elapsed month. Unlike YearsToFire it never terminates early:
// the timeline is meant for display and plotting, not target detection.
func (c *Calculator) Timeline(years int) ([]TimelinePoint, error) {
	if years <= 0 {
		return nil, fmt.Errorf("timeline horizon must be positive, got %d years", years)
	}

	fireNumber := c.FireNumber()
	monthlyRate := mathutil.MonthlyRate(c.profile.AnnualReturn)
	netWorth := c.profile.CurrentNetWorth

	months := years * constants.MonthsPerYear
	timeline := make([]TimelinePoint, 0, months)

	for month := 0; month < months; month++ {
		netWorth = netWorth*(1+monthlyRate) + c.profile.MonthlySavings

		timeline = append(timeline, TimelinePoint{
			MonthIndex: month,
			Year:       month / constants.MonthsPerYear,
			Month:      month % constants.MonthsPerYear,
			NetWorth:   netWorth,
			Progress:   mathutil.CalculatePercentage(netWorth, fireNumber),
		})
	}

	return timeline, nil
}
