package assignment

type Outcome string

const (
	OutcomeAssigned        Outcome = "assigned"
	OutcomeNoCandidate     Outcome = "no_candidate"
	OutcomeConflict        Outcome = "conflict"
	OutcomeNotDispatchable Outcome = "order_not_dispatchable"
)

func (o Outcome) String() string {
	return string(o)
}

type Result struct {
	Outcome  Outcome
	DriverID int64
}
