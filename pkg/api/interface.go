package api

//go:generate mockgen -source=interface.go -destination=../../internal/mocks/pkg/api_mock/interface.go -package=api_mock

import (
	"context"

	"github.com/voidshard/cavatica/pkg/structs"
)

// Pollable is something that can be asked, repeatedly, if it's done yet.
type Pollable interface {
	// Poll returns true when done, false if it should be asked again later.
	// Any error is final; callers must not Poll again.
	Poll(ctx context.Context) (bool, error)
}

// Executable is a unit of work run once to completion.
type Executable interface {
	// Execute runs the work and returns a result identifier (if any).
	Execute(ctx context.Context) (string, error)
}

// Scheduler owns the poll interval & overall timeout when waiting on a Pollable.
type Scheduler interface {
	// Await polls until p reports done (nil), p errors, or we time out.
	Await(ctx context.Context, p Pollable) error
}

// Client talks JSON to the platform API.
type Client interface {
	// Get the given path & unmarshal the response into out
	Get(ctx context.Context, path string, headers structs.Headers, out interface{}) error

	// Post in (as JSON) to the given path & unmarshal the response into out
	Post(ctx context.Context, path string, headers structs.Headers, in, out interface{}) error
}
