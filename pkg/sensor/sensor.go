package sensor

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/voidshard/cavatica/pkg/api"
	"github.com/voidshard/cavatica/pkg/api/http/common"
	"github.com/voidshard/cavatica/pkg/credentials"
	"github.com/voidshard/cavatica/pkg/errors"
	"github.com/voidshard/cavatica/pkg/structs"
)

// Options describe the task a Sensor watches.
type Options struct {
	// TaskID is the ID of the remote task (or import / export job).
	//
	// Required.
	TaskID string

	// ConnID names the connection whose token we use if Headers are not given.
	ConnID string

	// Endpoint is the path prefix the task lives under, defaults to /tasks.
	// Import and export jobs live under /storage/imports & /storage/exports.
	Endpoint string

	// Headers (optional) to send with each request. If not set these are
	// built from ConnID on first Poll.
	Headers structs.Headers
}

// Sensor checks the status of a remote task, once per Poll.
type Sensor struct {
	taskID   string
	connID   string
	endpoint string
	headers  structs.Headers

	cli   api.Client
	creds credentials.Store
	log   logrus.FieldLogger
}

// New returns a Sensor watching the task given in opts.
func New(cli api.Client, creds credentials.Store, log logrus.FieldLogger, opts *Options) *Sensor {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Sensor{
		taskID:   opts.TaskID,
		connID:   opts.ConnID,
		endpoint: opts.Endpoint,
		cli:      cli,
		creds:    creds,
		log:      log.WithField("task_id", opts.TaskID),
	}
	if s.endpoint == "" {
		s.endpoint = common.API_TASKS
	}
	if len(opts.Headers) > 0 {
		s.headers = structs.Headers{}
		for k, v := range opts.Headers {
			s.headers[k] = v
		}
	}
	return s
}

// TaskID returns the ID of the task we're watching.
func (s *Sensor) TaskID() string {
	return s.taskID
}

// Poll fetches the task status once.
//
// Returns false if the task is still queued or running, true if it completed.
// Any other status is returned as a *errors.JobFailedError and the caller should
// not Poll again.
func (s *Sensor) Poll(ctx context.Context) (bool, error) {
	if s.taskID == "" {
		return false, fmt.Errorf("%w task id required", errors.ErrInvalidArg)
	}

	if len(s.headers) == 0 {
		headers, err := credentials.BuildHeaders(ctx, s.creds, s.connID)
		if err != nil {
			s.log.WithError(err).Error("unable to generate headers")
			return false, err
		}
		s.headers = headers
	}

	state := &structs.TaskState{}
	err := s.cli.Get(ctx, common.ItemPath(s.endpoint, s.taskID), s.headers, state)
	if err != nil {
		s.log.WithError(err).Error("unable to get task status")
		return false, err
	}
	if state.Status == nil {
		err = fmt.Errorf("%w response for %s has no status", errors.ErrResponseParse, s.taskID)
		s.log.WithError(err).Error("unable to parse api response")
		return false, err
	}

	out := Resolve(*state.Status)
	log := s.log.WithField("status", out.Raw)

	switch out.Kind {
	case structs.StillRunning:
		log.Infof("%s is still running...", s.taskID)
		return false, nil
	case structs.Succeeded:
		log.Infof("%s finished successfully!", s.taskID)
		return true, nil
	}

	switch out.Status {
	case structs.PENDING:
		log.Errorf("%s is pending and needs to be started!", s.taskID)
	case structs.UNKNOWN:
		log.Errorf("%s has unhandled job state %q, this run will be failed", s.taskID, out.Raw)
	default:
		log.Errorf("%s did not finish!", s.taskID)
	}
	return false, &errors.JobFailedError{TaskID: s.taskID, Status: structs.JobStatus(out.Raw), Reason: out.Reason}
}
