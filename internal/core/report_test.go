package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wingetup/internal/types"
)

func resultsWith(outcomes ...types.Outcome) []types.AppResult {
	results := make([]types.AppResult, 0, len(outcomes))
	for i, outcome := range outcomes {
		results = append(results, types.AppResult{
			App:     types.Application{Name: "app", ID: string(rune('a' + i))},
			Outcome: outcome,
		})
	}
	return results
}

func TestBuildReportSuccessRate(t *testing.T) {
	report := BuildReport(resultsWith(
		types.OutcomeSuccess,
		types.OutcomeSuccess,
		types.OutcomeUpdated,
		types.OutcomeAlreadyLatest,
		types.OutcomeFailed,
	))

	require.True(t, report.RateKnown)
	assert.Equal(t, 5, report.Total)
	assert.Equal(t, 2, report.Counts[types.OutcomeSuccess])
	assert.Equal(t, 1, report.Counts[types.OutcomeUpdated])
	assert.Equal(t, 1, report.Counts[types.OutcomeAlreadyLatest])
	assert.Equal(t, 1, report.Counts[types.OutcomeFailed])
	assert.Equal(t, 0, report.Counts[types.OutcomeSkipped])
	assert.InDelta(t, 80.0, report.SuccessRate, 0.001)
}

func TestBuildReportRoundsToOneDecimal(t *testing.T) {
	report := BuildReport(resultsWith(
		types.OutcomeSuccess,
		types.OutcomeFailed,
		types.OutcomeFailed,
	))

	require.True(t, report.RateKnown)
	assert.InDelta(t, 33.3, report.SuccessRate, 0.001)
}

func TestBuildReportEmptyRun(t *testing.T) {
	report := BuildReport(nil)

	assert.False(t, report.RateKnown, "rate is undefined for an empty run")
	assert.Equal(t, 0, report.Total)
	for _, outcome := range types.AllOutcomes {
		assert.Equal(t, 0, report.Counts[outcome])
	}
}

func TestBuildReportSkippedDoesNotCount(t *testing.T) {
	report := BuildReport(resultsWith(
		types.OutcomeSkipped,
		types.OutcomeSkipped,
	))

	require.True(t, report.RateKnown)
	assert.InDelta(t, 0.0, report.SuccessRate, 0.001)
}
