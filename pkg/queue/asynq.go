package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"github.com/voidshard/cavatica/pkg/errors"
)

const (
	asyncPokeQueue = "cavatica:sensors"
	asyncPokeTask  = "cavatica:poke"
)

var (
	timeNow = func() int64 { return time.Now().Unix() }
)

// enqueuer is the part of asynq.Client we use
type enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// Asynq runs sensors in "reschedule" mode; each poke is a queued task and
// a sensor that is still running re-enqueues itself to run again after its
// interval. Nothing is held in memory between pokes.
type Asynq struct {
	opts  *Options
	redis asynq.RedisConnOpt
	log   logrus.FieldLogger

	cli   enqueuer
	build SensorFactory

	// if Run is called we're intended to start a server
	lock sync.Mutex
	mux  *asynq.ServeMux
	srv  *asynq.Server
}

// NewAsynqQueue returns a queue connected to redis. The given factory is
// used to build sensors when we're running as a worker.
func NewAsynqQueue(opts *Options, build SensorFactory, log logrus.FieldLogger) (*Asynq, error) {
	opts.SetDefaults()
	if log == nil {
		log = logrus.StandardLogger()
	}

	redis, err := asynq.ParseRedisURI(opts.URL)
	if err != nil {
		return nil, err
	}
	if opts.TLSConfig != nil {
		if rc, ok := redis.(asynq.RedisClientOpt); ok {
			rc.TLSConfig = opts.TLSConfig
			redis = rc
		}
	}

	return &Asynq{
		opts:  opts,
		redis: redis,
		log:   log,
		cli:   asynq.NewClient(redis),
		build: build,
	}, nil
}

// Close & shutdown the queue.
func (a *Asynq) Close() error {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.srv != nil {
		a.srv.Stop()
		a.srv.Shutdown()
	}
	return a.cli.Close()
}

// Defer enqueues the first poke for a task, to run right away. We'll give up
// on the task after timeout.
func (a *Asynq) Defer(p *Poke, timeout time.Duration) (string, error) {
	p.Deadline = timeNow() + int64(timeout.Seconds())
	p.Polls = 0
	if p.Interval <= 0 {
		p.Interval = defaultPokeInterval
	}
	return a.enqueue(p, 0)
}

// Run processes pokes until Close() is called.
func (a *Asynq) Run() error {
	a.buildServer()
	return a.srv.Run(a.mux)
}

func (a *Asynq) enqueue(p *Poke, delay time.Duration) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	opts := []asynq.Option{
		asynq.Queue(asyncPokeQueue),
		asynq.TaskID(uuid.New().String()),
	}
	if delay > 0 {
		opts = append(opts, asynq.ProcessIn(delay))
	}
	info, err := a.cli.Enqueue(asynq.NewTask(asyncPokeTask, data), opts...)
	if err != nil {
		return "", err
	}
	return info.ID, nil
}

// handle runs a single poke. Errors wrapping asynq.SkipRetry are final.
func (a *Asynq) handle(ctx context.Context, t *asynq.Task) error {
	p := &Poke{}
	err := json.Unmarshal(t.Payload(), p)
	if err != nil {
		return fmt.Errorf("%w: bad poke payload: %v", asynq.SkipRetry, err)
	}
	log := a.log.WithFields(logrus.Fields{"task_id": p.TaskID, "endpoint": p.Endpoint})

	s, err := a.build(p)
	if err != nil {
		log.WithError(err).Error("unable to build sensor")
		return fmt.Errorf("%w: %w", asynq.SkipRetry, err)
	}

	done, err := s.Poll(ctx)
	p.Polls++
	if err != nil {
		return fmt.Errorf("%w: %w", asynq.SkipRetry, err)
	} else if done {
		log.WithField("polls", p.Polls).Info("sensor finished")
		return nil
	}

	if timeNow() >= p.Deadline {
		err = fmt.Errorf("%w waiting for %s after %d polls", errors.ErrTimeout, p.TaskID, p.Polls)
		log.WithError(err).Error("gave up waiting")
		return fmt.Errorf("%w: %w", asynq.SkipRetry, err)
	}

	if p.Interval <= 0 {
		p.Interval = defaultPokeInterval
	}

	// returning an error here lets asynq retry this poke
	_, err = a.enqueue(p, p.Interval)
	return err
}

func (a *Asynq) buildServer() {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.mux != nil {
		// someone locked and set this first
		return
	}
	srv := asynq.NewServer(
		a.redis,
		asynq.Config{
			Concurrency: a.opts.Concurrency,
			Queues:      map[string]int{asyncPokeQueue: 1},
			Logger:      a.log,
		},
	)
	mux := asynq.NewServeMux()
	mux.HandleFunc(asyncPokeTask, a.handle)
	a.srv = srv
	a.mux = mux
}
