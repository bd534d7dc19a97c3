package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/database"
)

// PoolOptions tune the connection pool. Zero values keep the pgx defaults.
type PoolOptions struct {
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

func (o PoolOptions) apply(conf *pgxpool.Config) {
	if o.MaxConns > 0 {
		conf.MaxConns = o.MaxConns
	}
	if o.MinConns > 0 {
		conf.MinConns = o.MinConns
	}
	if o.MaxConnLifetime > 0 {
		conf.MaxConnLifetime = o.MaxConnLifetime
	}
}

// Connection is a postgres pool over a migrated schema.
type Connection struct {
	*pgxpool.Pool
}

// NewConnection migrates the schema behind dsn, then opens and verifies a pool.
func NewConnection(ctx context.Context, dsn string, opts PoolOptions) (*Connection, error) {
	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}
	opts.apply(conf)

	if err := database.Migrate(ctx, dsn); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach postgres: %w", err)
	}

	return &Connection{Pool: pool}, nil
}

// Close releases every pooled connection.
func (c *Connection) Close() error {
	if c.Pool != nil {
		c.Pool.Close()
	}
	return nil
}

// Ping checks that the database answers.
func (c *Connection) Ping(ctx context.Context) error {
	if c.Pool == nil {
		return errors.New("connection pool is not initialized")
	}
	return c.Pool.Ping(ctx)
}
