package structs

// OutcomeKind is what a poller should do given some status.
type OutcomeKind string

const (
	StillRunning OutcomeKind = "StillRunning"
	Succeeded    OutcomeKind = "Succeeded"
	Failed       OutcomeKind = "Failed"
)

// PollOutcome is the result of resolving a status.
type PollOutcome struct {
	Kind OutcomeKind

	// Status is the parsed status, UNKNOWN if we didn't recognise it
	Status JobStatus

	// Raw is the upper cased status as given to us
	Raw string

	// Reason is set for Failed outcomes only
	Reason string
}
