package structs

import (
	"strings"
)

// JobStatus is the status of a remote task as reported by the platform.
type JobStatus string

const (
	// transient states
	QUEUED  JobStatus = "QUEUED"
	RUNNING JobStatus = "RUNNING"

	// PENDING means the task exists but was never started. We treat this as
	// an end state; nothing here will start it for you.
	PENDING JobStatus = "PENDING"

	// end states
	COMPLETED JobStatus = "COMPLETED"
	ABORTED   JobStatus = "ABORTED"
	FAILED    JobStatus = "FAILED"

	// UNKNOWN is never sent by the platform, it marks a status we can't parse.
	UNKNOWN JobStatus = "UNKNOWN"
)

// IsFinalStatus returns if the platform will not move the task out of this state
// without outside intervention.
func IsFinalStatus(status JobStatus) bool {
	switch status {
	case QUEUED, RUNNING:
		return false
	default:
		return true
	}
}

// IsKnownStatus returns if the status is one the platform documents.
func IsKnownStatus(status JobStatus) bool {
	return ToStatus(string(status)) != UNKNOWN
}

// ToStatus parses a raw status string, case-insensitive.
func ToStatus(s string) JobStatus {
	switch strings.ToUpper(s) {
	case "QUEUED":
		return QUEUED
	case "RUNNING":
		return RUNNING
	case "PENDING":
		return PENDING
	case "COMPLETED":
		return COMPLETED
	case "ABORTED":
		return ABORTED
	case "FAILED":
		return FAILED
	default:
		return UNKNOWN
	}
}
