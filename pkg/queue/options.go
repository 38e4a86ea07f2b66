package queue

import (
	"crypto/tls"
	"time"
)

const (
	defaultConcurrency = 10

	// used for pokes that don't set an interval
	defaultPokeInterval = 10 * time.Second
)

// Options are options for the queue.
type Options struct {
	// URL encodes how we'll connect to the queue (redis), eg. redis://localhost:6379/0
	URL string

	// TLSConfig needed to connect to the queue (optional).
	TLSConfig *tls.Config

	// Concurrency is how many pokes a worker runs at once. Defaults to 10.
	Concurrency int
}

func (o *Options) SetDefaults() {
	if o.Concurrency <= 0 {
		o.Concurrency = defaultConcurrency
	}
}
