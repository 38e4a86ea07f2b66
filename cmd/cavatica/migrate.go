package main

import (
	"context"
	"fmt"

	"github.com/voidshard/cavatica/pkg/credentials"
	"github.com/voidshard/cavatica/pkg/errors"
	"github.com/voidshard/cavatica/pkg/structs"
)

const (
	docMigrate = `Create or update the tables of the postgres connection store.`

	docConnection = `Add a named connection to the postgres connection store, replacing any existing connection of the same name.`
)

type optsPostgres struct {
	ConnectionsURL string `long:"connections-url" env:"CAVATICA_CONNECTIONS_URL" required:"yes" description:"Postgres URL of the connection store"`
}

func (c *optsPostgres) options() *credentials.Options {
	return &credentials.Options{URL: c.ConnectionsURL}
}

type optsMigrate struct {
	optsGeneral
	optsPostgres
}

func (c *optsMigrate) Execute(args []string) error {
	log := c.logger()
	if err := credentials.Migrate(c.options()); err != nil {
		return err
	}
	log.Info("connection store is up to date")
	return nil
}

type optsConnectionSet struct {
	optsGeneral
	optsPostgres

	Host     string `long:"host" env:"CAVATICA_CONN_HOST" default:"https://cavatica-api.sbgenomics.com/v2" description:"API URL of the platform"`
	Password string `long:"password" env:"CAVATICA_CONN_PASSWORD" description:"Auth token for the platform"`

	Args struct {
		ConnID string `positional-arg-name:"conn-id" required:"yes"`
	} `positional-args:"yes"`
}

func (c *optsConnectionSet) Execute(args []string) error {
	log := c.logger()
	if c.Password == "" {
		return fmt.Errorf("%w password required", errors.ErrInvalidArg)
	}

	pg, err := credentials.NewPostgres(c.options())
	if err != nil {
		return err
	}
	defer pg.Close()

	err = pg.SetConnection(context.Background(), &structs.Connection{
		ID:       c.Args.ConnID,
		Host:     c.Host,
		Password: c.Password,
	})
	if err != nil {
		return err
	}
	log.WithField("conn_id", c.Args.ConnID).Info("connection saved")
	return nil
}
