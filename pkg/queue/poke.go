package queue

import (
	"time"

	"github.com/voidshard/cavatica/pkg/api"
)

// Poke is everything we need to check on a task later.
//
// Credentials are not part of a Poke; they're looked up by ConnID each time.
type Poke struct {
	// TaskID of the remote task (or import / export job)
	TaskID string `json:"task_id"`

	// ConnID names the connection to use
	ConnID string `json:"conn_id"`

	// Endpoint is the path prefix of the task, eg. /tasks
	Endpoint string `json:"endpoint"`

	// Interval between pokes
	Interval time.Duration `json:"interval"`

	// Deadline (unix seconds) after which we give up
	Deadline int64 `json:"deadline"`

	// Polls made so far
	Polls int `json:"polls"`
}

// SensorFactory returns something to Poll for the given Poke.
type SensorFactory func(p *Poke) (api.Pollable, error)
