package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/voidshard/cavatica/internal/utils"
	"github.com/voidshard/cavatica/pkg/api/http/client"
	"github.com/voidshard/cavatica/pkg/credentials"
	"github.com/voidshard/cavatica/pkg/queue"
	"github.com/voidshard/cavatica/pkg/structs"
)

type optsGeneral struct {
	Debug     bool   `long:"debug" env:"CAVATICA_DEBUG" description:"Enable debug logging"`
	LogFormat string `long:"log-format" env:"CAVATICA_LOG_FORMAT" default:"text" choice:"text" choice:"json" description:"Log output format"`
}

func (c *optsGeneral) logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if c.Debug {
		log.SetLevel(logrus.DebugLevel)
	}
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log
}

type optsDatabase struct {
	ConnectionsURL string `long:"connections-url" env:"CAVATICA_CONNECTIONS_URL" description:"Postgres URL of the connection store. If not set connections are read from $CAVATICA_CONN_<ID>"`
}

// store returns the configured connection store & a func to close it
func (c *optsDatabase) store() (credentials.Store, func(), error) {
	if c.ConnectionsURL == "" {
		return &credentials.Env{}, func() {}, nil
	}
	pg, err := credentials.NewPostgres(&credentials.Options{URL: c.ConnectionsURL})
	if err != nil {
		return nil, nil, err
	}
	return pg, func() { pg.Close() }, nil
}

type optsConnection struct {
	optsDatabase

	ConnID         string        `long:"conn-id" env:"CAVATICA_CONN_ID" default:"cavatica" description:"Name of the platform connection"`
	APIURL         string        `long:"api-url" env:"CAVATICA_API_URL" description:"Use this API URL rather than the connection's host"`
	Token          string        `long:"token" env:"CAVATICA_TOKEN" description:"Use this auth token rather than the connection's password"`
	CACert         string        `long:"ca-cert" env:"CAVATICA_CA_CERT" description:"Path to a CA certificate to trust when talking to the API"`
	RequestTimeout time.Duration `long:"request-timeout" env:"CAVATICA_REQUEST_TIMEOUT" default:"30s" description:"Timeout of a single API request"`
	RateLimit      float64       `long:"rate-limit" env:"CAVATICA_RATE_LIMIT" description:"Max API requests per second, 0 for no limit"`
}

// connect returns the connection to use, the store to fetch credentials from
// and a func to close the store.
func (c *optsConnection) connect(ctx context.Context) (*structs.Connection, credentials.Store, func(), error) {
	inner, closer, err := c.store()
	if err != nil {
		return nil, nil, nil, err
	}
	store := &overrideStore{inner: inner, host: c.APIURL, token: c.Token}

	conn, err := store.Connection(ctx, c.ConnID)
	if err != nil {
		closer()
		return nil, nil, nil, err
	}
	return conn, store, closer, nil
}

// client returns an API client for the given connection
func (c *optsConnection) client(conn *structs.Connection) (*client.Client, error) {
	tlsCfg, err := utils.TLSConfig(&utils.TLSFiles{CACert: c.CACert})
	if err != nil {
		return nil, err
	}
	return client.New(conn.Host, &client.Options{Timeout: c.RequestTimeout, TLSConfig: tlsCfg, RateLimit: c.RateLimit})
}

type optsWait struct {
	Interval time.Duration `long:"interval" env:"CAVATICA_POLL_INTERVAL" default:"10s" description:"Time between polls"`
	Timeout  time.Duration `long:"timeout" env:"CAVATICA_POLL_TIMEOUT" default:"1h" description:"Give up after this long"`
}

type optsQueue struct {
	QueueURL       string `long:"queue-url" env:"CAVATICA_QUEUE_URL" default:"redis://localhost:6379/0" description:"Queue (redis) connection string"`
	QueueTLSCaCert string `long:"queue-ca-cert" env:"CAVATICA_QUEUE_CA_CERT" description:"Path to queue CA certificate"`
	QueueTLSCert   string `long:"queue-cert" env:"CAVATICA_QUEUE_CERT" description:"Path to queue TLS certificate"`
	QueueTLSKey    string `long:"queue-key" env:"CAVATICA_QUEUE_KEY" description:"Path to queue TLS key"`
	Concurrency    int    `long:"concurrency" env:"CAVATICA_QUEUE_CONCURRENCY" default:"10" description:"Pokes to run at once (worker only)"`
}

func (c *optsQueue) queue(build queue.SensorFactory, log logrus.FieldLogger) (*queue.Asynq, error) {
	tlsCfg, err := utils.TLSConfig(&utils.TLSFiles{CACert: c.QueueTLSCaCert, Cert: c.QueueTLSCert, Key: c.QueueTLSKey})
	if err != nil {
		return nil, err
	}
	return queue.NewAsynqQueue(&queue.Options{URL: c.QueueURL, TLSConfig: tlsCfg, Concurrency: c.Concurrency}, build, log)
}
