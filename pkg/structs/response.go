package structs

// TaskState is the part of a task (or import / export job) GET response we read.
type TaskState struct {
	// Status is required; nil means the platform didn't send it
	Status *string `json:"status"`
}

// JobCreated is the part of a POST /storage/{imports,exports} response we read.
type JobCreated struct {
	ID string `json:"id"`
}

// ImportResult is the file created by a finished import.
type ImportResult struct {
	ID string `json:"id"`
}

// ImportJob is the part of a GET /storage/imports/{id} response we read.
type ImportJob struct {
	ID     string        `json:"id"`
	Result *ImportResult `json:"result"`
}
