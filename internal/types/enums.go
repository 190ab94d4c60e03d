package types

// Outcome is the per-application result of one processing pass.
type Outcome string

const (
	OutcomeSuccess       Outcome = "success"
	OutcomeUpdated       Outcome = "updated"
	OutcomeAlreadyLatest Outcome = "already-latest"
	OutcomeSkipped       Outcome = "skipped"
	OutcomeFailed        Outcome = "failed"
)

// AllOutcomes lists every outcome in report order.
var AllOutcomes = []Outcome{
	OutcomeSuccess,
	OutcomeUpdated,
	OutcomeAlreadyLatest,
	OutcomeSkipped,
	OutcomeFailed,
}

// Succeeded reports whether the outcome counts toward the success rate.
func (o Outcome) Succeeded() bool {
	switch o {
	case OutcomeSuccess, OutcomeUpdated, OutcomeAlreadyLatest:
		return true
	default:
		return false
	}
}
