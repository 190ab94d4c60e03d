package types

// Report is the aggregate view over one run's results.
//
// RateKnown is false when no applications were processed; the success
// rate is undefined for an empty run and must not be rendered as 0%.
type Report struct {
	Counts      map[Outcome]int
	Total       int
	SuccessRate float64
	RateKnown   bool
}
