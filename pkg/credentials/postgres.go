package credentials

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	ie "github.com/voidshard/cavatica/pkg/errors"
	"github.com/voidshard/cavatica/pkg/structs"
)

// Postgres is a Store that keeps connections in a postgres table.
type Postgres struct {
	opts *Options
	pool *pgxpool.Pool
}

// NewPostgres returns a new Postgres connection store.
func NewPostgres(opts *Options) (*Postgres, error) {
	opts.SetDefaults()
	pool, err := pgxpool.New(context.Background(), opts.connString())
	return &Postgres{pool: pool, opts: opts}, err
}

// Close shuts down the database connection.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

// Connection returns the named connection.
func (p *Postgres) Connection(ctx context.Context, id string) (*structs.Connection, error) {
	conn := &structs.Connection{}
	err := p.pool.QueryRow(ctx, sqlSelect, id).Scan(&conn.ID, &conn.Host, &conn.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w %s", ie.ErrConnectionNotFound, id)
	}
	return conn, err
}

// SetConnection inserts or updates the given connection.
func (p *Postgres) SetConnection(ctx context.Context, conn *structs.Connection) error {
	if conn.ID == "" {
		return fmt.Errorf("%w connection id required", ie.ErrInvalidArg)
	}
	_, err := p.pool.Exec(ctx, sqlUpsert, conn.ID, conn.Host, conn.Password, time.Now().Unix())
	return err
}

// table is created by migrations/000001_connections.up.sql
const (
	sqlSelect = `SELECT conn_id, host, password FROM connections WHERE conn_id = $1;`
	sqlUpsert = `INSERT INTO connections (conn_id, host, password, created_at, updated_at) VALUES ($1, $2, $3, $4, $4)
ON CONFLICT (conn_id) DO UPDATE SET host = EXCLUDED.host, password = EXCLUDED.password, updated_at = EXCLUDED.updated_at;`
)
