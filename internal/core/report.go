package core

import (
	"math"

	"wingetup/internal/types"
)

// BuildReport tallies outcomes across one run. The success rate counts
// Success, Updated, and AlreadyLatest entries, rounded to one decimal
// place. An empty run leaves RateKnown false; the rate is undefined, not
// zero.
func BuildReport(results []types.AppResult) types.Report {
	counts := make(map[types.Outcome]int, len(types.AllOutcomes))
	for _, outcome := range types.AllOutcomes {
		counts[outcome] = 0
	}
	succeeded := 0
	for _, result := range results {
		counts[result.Outcome]++
		if result.Outcome.Succeeded() {
			succeeded++
		}
	}
	report := types.Report{
		Counts: counts,
		Total:  len(results),
	}
	if report.Total == 0 {
		return report
	}
	report.SuccessRate = math.Round(float64(succeeded)/float64(report.Total)*1000) / 10
	report.RateKnown = true
	return report
}
