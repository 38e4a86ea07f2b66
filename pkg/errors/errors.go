package errors

import (
	"fmt"

	"github.com/voidshard/cavatica/pkg/structs"
)

var (
	ErrTransport          = fmt.Errorf("transport error")
	ErrResponseParse      = fmt.Errorf("unable to parse response")
	ErrHeaderBuild        = fmt.Errorf("unable to build headers")
	ErrUnrecognizedStatus = fmt.Errorf("unrecognized status")
	ErrJobFailed          = fmt.Errorf("job failed")
	ErrTimeout            = fmt.Errorf("timed out")
	ErrInvalidArg         = fmt.Errorf("invalid arg")
	ErrConnectionNotFound = fmt.Errorf("connection not found")
)

// JobFailedError is returned when a remote task reaches a terminal state
// other than COMPLETED.
type JobFailedError struct {
	// TaskID is the remote task (or import / export job) ID
	TaskID string

	// Status is the status we were given, upper cased
	Status structs.JobStatus

	// Reason is a short human readable reason, eg. "did not finish"
	Reason string
}

func (e *JobFailedError) Error() string {
	return fmt.Sprintf("%v: %s %s (status %s)", ErrJobFailed, e.TaskID, e.Reason, e.Status)
}

// Unwrap allows errors.Is(err, ErrJobFailed), and for statuses we don't
// know about, errors.Is(err, ErrUnrecognizedStatus).
func (e *JobFailedError) Unwrap() []error {
	if structs.IsKnownStatus(e.Status) {
		return []error{ErrJobFailed}
	}
	return []error{ErrJobFailed, ErrUnrecognizedStatus}
}
