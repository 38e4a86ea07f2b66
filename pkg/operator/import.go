package operator

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

// Import copies a file from a volume into the platform.
type Import struct {
	operator
	req *structs.ImportRequest
}

var _ api.Executable = &Import{}

// NewImport returns an operator that will run the given import.
//
// If sched is nil we wait in process with scheduler.OptionsDefault().
func NewImport(cli api.Client, sched api.Scheduler, creds credentials.Store, log logrus.FieldLogger, opts *Options, req *structs.ImportRequest) *Import {
	return &Import{operator: newOperator(cli, sched, creds, log, opts), req: req}
}

// Execute starts the import, waits for it to complete & returns the
// platform ID of the imported file.
func (i *Import) Execute(ctx context.Context) (string, error) {
	err := required(
		i.req.OptionalFields,
		field{"source", "source_volume", i.req.SourceVolume},
		field{"source", "source_location", i.req.SourceLocation},
		field{"destination", "destination_parent", i.req.DestinationParent},
	)
	if err != nil {
		return "", err
	}

	id, err := i.submit(ctx, common.API_STORAGE_IMPORTS, i.req.Payload())
	if err != nil {
		return "", err
	}

	job := &structs.ImportJob{}
	err = i.cli.Get(ctx, common.ItemPath(common.API_STORAGE_IMPORTS, id), i.headers, job)
	if err != nil {
		i.log.WithError(err).WithField("job_id", id).Error("unable to get import result")
		return "", err
	}
	if job.Result == nil || job.Result.ID == "" {
		return "", fmt.Errorf("%w import %s has no result id", errors.ErrResponseParse, id)
	}

	i.log.WithFields(logrus.Fields{"job_id": id, "file_id": job.Result.ID}).Info("imported file")
	return job.Result.ID, nil
}
