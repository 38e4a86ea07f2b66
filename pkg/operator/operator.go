package operator

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/voidshard/cavatica/pkg/api"
	"github.com/voidshard/cavatica/pkg/credentials"
	"github.com/voidshard/cavatica/pkg/errors"
	"github.com/voidshard/cavatica/pkg/scheduler"
	"github.com/voidshard/cavatica/pkg/sensor"
	"github.com/voidshard/cavatica/pkg/structs"
)

// Options common to import & export operators.
type Options struct {
	// ConnID names the platform connection.
	ConnID string

	// Headers (optional) sent with every request, including by the sensor we
	// use to wait on the job. If not given they're built from ConnID.
	Headers structs.Headers
}

// operator is the shared submit & wait logic for storage jobs.
type operator struct {
	connID  string
	headers structs.Headers

	cli   api.Client
	sched api.Scheduler
	creds credentials.Store
	log   logrus.FieldLogger
}

func newOperator(cli api.Client, sched api.Scheduler, creds credentials.Store, log logrus.FieldLogger, opts *Options) operator {
	if opts == nil {
		opts = &Options{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	if sched == nil {
		sched = scheduler.NewTicker(scheduler.OptionsDefault(), log)
	}
	return operator{
		connID:  opts.ConnID,
		headers: opts.Headers,
		cli:     cli,
		sched:   sched,
		creds:   creds,
		log:     log,
	}
}

// submit POSTs the payload to endpoint & waits for the job it creates to complete.
// The job ID is returned if it was created, even if it later fails.
func (o *operator) submit(ctx context.Context, endpoint string, payload map[string]interface{}) (string, error) {
	if len(o.headers) == 0 {
		headers, err := credentials.BuildHeaders(ctx, o.creds, o.connID)
		if err != nil {
			o.log.WithError(err).Error("unable to generate headers")
			return "", err
		}
		o.headers = headers
	}

	created := &structs.JobCreated{}
	err := o.cli.Post(ctx, endpoint, o.headers, payload, created)
	if err != nil {
		o.log.WithError(err).WithField("endpoint", endpoint).Error("unable to start job")
		return "", err
	}
	if created.ID == "" {
		err = fmt.Errorf("%w response from %s has no id", errors.ErrResponseParse, endpoint)
		o.log.WithError(err).Error("unable to parse api response")
		return "", err
	}

	log := o.log.WithFields(logrus.Fields{"job_id": created.ID, "endpoint": endpoint})
	log.Info("started job, waiting for it to complete")

	wait := sensor.New(o.cli, o.creds, o.log, &sensor.Options{
		TaskID:   created.ID,
		ConnID:   o.connID,
		Endpoint: endpoint + "/",
		Headers:  o.headers,
	})
	err = o.sched.Await(ctx, wait)
	if err != nil {
		log.WithError(err).Error("job did not complete")
	}
	return created.ID, err
}

// field is a required request value & the top level payload key it's sent under.
type field struct {
	key   string
	name  string
	value string
}

// required returns ErrInvalidArg naming any of the given fields that are empty.
// Fields sent under a key that opt replaces are not checked; the caller has
// chosen to supply that part of the payload themselves.
func required(opt structs.Fields, fields ...field) error {
	missing := []string{}
	for _, f := range fields {
		if _, ok := opt[f.key]; ok {
			continue
		}
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("%w missing required field(s): %s", errors.ErrInvalidArg, strings.Join(missing, ", "))
}
