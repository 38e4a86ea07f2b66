package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/voidshard/cavatica/pkg/api"
	ie "github.com/voidshard/cavatica/pkg/errors"
)

// Ticker polls in process; once immediately then every Interval until done.
type Ticker struct {
	opts *Options
	log  logrus.FieldLogger
}

// NewTicker returns a Ticker, nil opts means OptionsDefault()
func NewTicker(opts *Options, log logrus.FieldLogger) *Ticker {
	if opts == nil {
		opts = OptionsDefault()
	}
	opts.SetDefaults()
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Ticker{opts: opts, log: log}
}

// Await polls p until it's done, returns an error or we exceed our Timeout.
func (t *Ticker) Await(ctx context.Context, p api.Pollable) error {
	deadline, cancel := context.WithTimeout(ctx, t.opts.Timeout)
	defer cancel()

	tick := time.NewTicker(t.opts.Interval)
	defer tick.Stop()

	start := time.Now()
	for polls := 1; ; polls++ {
		done, err := p.Poll(deadline)
		if err != nil {
			if ctx.Err() == nil && deadline.Err() != nil && cutShort(err) {
				return t.timeout(start, polls)
			}
			return err
		}
		if done {
			t.log.WithField("polls", polls).Debugf("finished after %s", time.Since(start))
			return nil
		}

		select {
		case <-deadline.Done():
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return t.timeout(start, polls)
		case <-tick.C:
		}
	}
}

func (t *Ticker) timeout(start time.Time, polls int) error {
	err := fmt.Errorf("%w after %s (%d polls, limit %s)", ie.ErrTimeout, time.Since(start).Round(time.Millisecond), polls, t.opts.Timeout)
	t.log.WithError(err).Error("gave up waiting")
	return err
}

// cutShort returns if err is what a Poll interrupted by our deadline returns,
// rather than an answer about the task itself.
func cutShort(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ie.ErrTransport)
}
