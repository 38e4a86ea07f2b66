package main

import (
	"context"
	"sync"

	"github.com/voidshard/cavatica/pkg/api"
	"github.com/voidshard/cavatica/pkg/api/http/client"
	"github.com/voidshard/cavatica/pkg/queue"
	"github.com/voidshard/cavatica/pkg/sensor"
)

const (
	docWorker = `Run sensors queued with "sense --defer".

Each poke makes one request. Tasks still running are queued again after their interval.`
)

type optsWorker struct {
	optsGeneral
	optsConnection
	optsQueue
}

func (c *optsWorker) Execute(args []string) error {
	log := c.logger()

	inner, closer, err := c.store()
	if err != nil {
		return err
	}
	defer closer()
	store := &overrideStore{inner: inner, host: c.APIURL, token: c.Token}

	// one client per host, so pokes share any rate limit
	var lock sync.Mutex
	clients := map[string]*client.Client{}

	build := func(p *queue.Poke) (api.Pollable, error) {
		// connections are looked up on every poke so rotated tokens are picked up
		conn, err := store.Connection(context.Background(), p.ConnID)
		if err != nil {
			return nil, err
		}

		lock.Lock()
		cli, ok := clients[conn.Host]
		if !ok {
			cli, err = c.client(conn)
			if err != nil {
				lock.Unlock()
				return nil, err
			}
			clients[conn.Host] = cli
		}
		lock.Unlock()

		return sensor.New(cli, store, log, &sensor.Options{
			TaskID:   p.TaskID,
			ConnID:   p.ConnID,
			Endpoint: p.Endpoint,
		}), nil
	}

	q, err := c.queue(build, log)
	if err != nil {
		return err
	}
	defer q.Close()

	log.Infof("worker listening on queue %s", c.QueueURL)
	return q.Run()
}
