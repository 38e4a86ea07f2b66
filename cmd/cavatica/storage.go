package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/voidshard/cavatica/pkg/api"
	"github.com/voidshard/cavatica/pkg/credentials"
	"github.com/voidshard/cavatica/pkg/operator"
	"github.com/voidshard/cavatica/pkg/scheduler"
	"github.com/voidshard/cavatica/pkg/structs"
)

const (
	docExport = `Start an export job copying a platform file to a volume & wait for it to complete.

Prints the export job ID on success. Values given as flags replace those in --job-file.`

	docImport = `Start an import job copying a file from a volume into the platform & wait for it to complete.

Prints the ID of the imported file on success. Values given as flags replace those in --job-file.`
)

type optsStorage struct {
	optsGeneral
	optsConnection
	optsWait

	JobFile string   `long:"job-file" env:"CAVATICA_JOB_FILE" description:"YAML / JSON file describing the job"`
	Fields  []string `long:"field" description:"key=value to add to the request body, may be repeated. JSON values are decoded"`
}

// run builds an operator with the configured connection & runs it, printing the result
func (c *optsStorage) run(build func(cli api.Client, sched api.Scheduler, creds credentials.Store, log logrus.FieldLogger, opts *operator.Options) api.Executable) error {
	log := c.logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	conn, store, closer, err := c.connect(ctx)
	if err != nil {
		return err
	}
	defer closer()

	cli, err := c.client(conn)
	if err != nil {
		return err
	}

	sched := scheduler.NewTicker(&scheduler.Options{Interval: c.Interval, Timeout: c.Timeout}, log)
	op := build(cli, sched, store, log, &operator.Options{ConnID: c.ConnID})

	result, err := op.Execute(ctx)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

type optsExport struct {
	optsStorage

	SourceFile          string `long:"source-file" description:"Platform ID of the file to export"`
	DestinationVolume   string `long:"destination-volume" description:"Volume name as mounted on the platform"`
	DestinationLocation string `long:"destination-location" description:"Key to create, relative to the volume"`
}

func (c *optsExport) request() (*structs.ExportRequest, error) {
	file := &structs.ExportRequest{}
	if c.JobFile != "" {
		if err := loadJobFile(c.JobFile, file); err != nil {
			return nil, err
		}
	}
	fields, err := parseFields(c.Fields)
	if err != nil {
		return nil, err
	}
	return structs.NewExportRequest(
		firstSet(c.SourceFile, file.SourceFile),
		firstSet(c.DestinationVolume, file.DestinationVolume),
		firstSet(c.DestinationLocation, file.DestinationLocation),
		merge(file.OptionalFields, fields),
	), nil
}

func (c *optsExport) Execute(args []string) error {
	req, err := c.request()
	if err != nil {
		return err
	}
	return c.run(func(cli api.Client, sched api.Scheduler, creds credentials.Store, log logrus.FieldLogger, opts *operator.Options) api.Executable {
		return operator.NewExport(cli, sched, creds, log, opts, req)
	})
}

type optsImport struct {
	optsStorage

	SourceVolume      string `long:"source-volume" description:"Volume name as mounted on the platform"`
	SourceLocation    string `long:"source-location" description:"Key of the file, relative to the volume"`
	DestinationParent string `long:"destination-parent" description:"Platform ID of the folder to import into"`
}

func (c *optsImport) request() (*structs.ImportRequest, error) {
	file := &structs.ImportRequest{}
	if c.JobFile != "" {
		if err := loadJobFile(c.JobFile, file); err != nil {
			return nil, err
		}
	}
	fields, err := parseFields(c.Fields)
	if err != nil {
		return nil, err
	}
	return structs.NewImportRequest(
		firstSet(c.SourceVolume, file.SourceVolume),
		firstSet(c.SourceLocation, file.SourceLocation),
		firstSet(c.DestinationParent, file.DestinationParent),
		merge(file.OptionalFields, fields),
	), nil
}

func (c *optsImport) Execute(args []string) error {
	req, err := c.request()
	if err != nil {
		return err
	}
	return c.run(func(cli api.Client, sched api.Scheduler, creds credentials.Store, log logrus.FieldLogger, opts *operator.Options) api.Executable {
		return operator.NewImport(cli, sched, creds, log, opts, req)
	})
}
