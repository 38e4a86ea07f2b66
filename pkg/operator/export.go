package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/voidshard/cavatica/pkg/api"
	"github.com/voidshard/cavatica/pkg/api/http/common"
	"github.com/voidshard/cavatica/pkg/credentials"
	"github.com/voidshard/cavatica/pkg/structs"
)

// Export copies a platform file out to a volume.
type Export struct {
	operator
	req *structs.ExportRequest
}

var _ api.Executable = &Export{}

// NewExport returns an operator that will run the given export.
//
// If sched is nil we wait in process with scheduler.OptionsDefault().
func NewExport(cli api.Client, sched api.Scheduler, creds credentials.Store, log logrus.FieldLogger, opts *Options, req *structs.ExportRequest) *Export {
	return &Export{operator: newOperator(cli, sched, creds, log, opts), req: req}
}

// Execute starts the export & waits for it to complete. The export job ID is returned.
func (e *Export) Execute(ctx context.Context) (string, error) {
	err := required(
		e.req.OptionalFields,
		field{"source", "source_file", e.req.SourceFile},
		field{"destination", "destination_volume", e.req.DestinationVolume},
		field{"destination", "destination_location", e.req.DestinationLocation},
	)
	if err != nil {
		return "", err
	}
	return e.submit(ctx, common.API_STORAGE_EXPORTS, e.req.Payload())
}
