package scheduler

import (
	"time"
)

const (
	defaultInterval = 10 * time.Second
	defaultTimeout  = 3600 * time.Second
)

// Options controls how we wait on a Pollable.
type Options struct {
	// Interval is the time between polls. Defaults to 10s.
	Interval time.Duration

	// Timeout is the absolute maximum time we'll wait in total.
	// Defaults to 1 hour.
	Timeout time.Duration
}

// OptionsDefault returns the default wait policy for import & export jobs.
func OptionsDefault() *Options {
	return &Options{Interval: defaultInterval, Timeout: defaultTimeout}
}

func (o *Options) SetDefaults() {
	if o.Interval <= 0 {
		o.Interval = defaultInterval
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
}
