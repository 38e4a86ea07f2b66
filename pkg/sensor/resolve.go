package sensor

import (
	"strings"

	"github.com/voidshard/cavatica/pkg/structs"
)

const (
	reasonPending   = "pending and needs to be started"
	reasonFailed    = "did not finish"
	reasonUnhandled = "unhandled job state"
)

// Resolve decides what a poller should do given a raw status (any case).
//
// PENDING is a failure; the task was never started & nothing here will start it.
func Resolve(raw string) *structs.PollOutcome {
	raw = strings.ToUpper(raw)
	status := structs.ToStatus(raw)
	out := &structs.PollOutcome{Status: status, Raw: raw}

	if !structs.IsFinalStatus(status) {
		out.Kind = structs.StillRunning
		return out
	}

	switch status {
	case structs.COMPLETED:
		out.Kind = structs.Succeeded
	case structs.PENDING:
		out.Kind = structs.Failed
		out.Reason = reasonPending
	case structs.ABORTED, structs.FAILED:
		out.Kind = structs.Failed
		out.Reason = reasonFailed
	default:
		out.Kind = structs.Failed
		out.Reason = reasonUnhandled
	}

	return out
}
