package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Pool struct {
	pool *pgxpool.Pool
}

// NewPool builds a pgx pool against the named database. MinConns stays 0, so no
// connection is made until first use.
func NewPool(ctx context.Context, dbURL, name string) (*Pool, error) {
	cfg, err := pgxpool.ParseConfig(dbURL)

	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}

	cfg.MaxConns = 5
	cfg.MinConns = 0

	if name != "" {
		cfg.ConnConfig.Database = name
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)

	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}

	return &Pool{pool: pool}, nil
}

func (p *Pool) Driver() string {
	return "postgres"
}

func (p *Pool) Database() string {
	return p.pool.Config().ConnConfig.Database
}

func (p *Pool) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Pool) Close(context.Context) error {
	p.pool.Close()
	return nil
}
