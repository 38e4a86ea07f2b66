package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/voidshard/cavatica/pkg/queue"
	"github.com/voidshard/cavatica/pkg/scheduler"
	"github.com/voidshard/cavatica/pkg/sensor"
)

const (
	docSense = `Poll a task until it completes, fails or we time out.

With --defer the first poll is queued for a worker (see "worker") and this returns right away.`
)

type optsSense struct {
	optsGeneral
	optsConnection
	optsWait
	optsQueue

	Endpoint string `long:"endpoint" env:"CAVATICA_ENDPOINT" default:"/tasks" description:"Path prefix the task lives under, eg. /storage/imports"`
	Defer    bool   `long:"defer" description:"Queue the sensor for a worker rather than waiting here"`

	Args struct {
		TaskID string `positional-arg-name:"task-id" required:"yes"`
	} `positional-args:"yes"`
}

func (c *optsSense) Execute(args []string) error {
	log := c.logger()

	if c.Defer {
		q, err := c.queue(nil, log)
		if err != nil {
			return err
		}
		defer q.Close()

		id, err := q.Defer(&queue.Poke{
			TaskID:   c.Args.TaskID,
			ConnID:   c.ConnID,
			Endpoint: c.Endpoint,
			Interval: c.Interval,
		}, c.Timeout)
		if err != nil {
			return err
		}
		log.WithField("queued_id", id).Infof("deferred sensor for %s", c.Args.TaskID)
		return nil
	}

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

	s := sensor.New(cli, store, log, &sensor.Options{
		TaskID:   c.Args.TaskID,
		ConnID:   c.ConnID,
		Endpoint: c.Endpoint,
	})
	return scheduler.NewTicker(&scheduler.Options{Interval: c.Interval, Timeout: c.Timeout}, log).Await(ctx, s)
}

