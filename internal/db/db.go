package db

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

var ErrUnsupportedScheme = errors.New("unsupported database url scheme")

// Handle is the process-wide database resource. It is opened at startup and closed
// on shutdown; no route queries it.
type Handle interface {
	Driver() string
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Open builds a handle for the URL's scheme without waiting for a connection.
func Open(ctx context.Context, dbURL, name string) (Handle, error) {
	u, err := url.Parse(dbURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	switch u.Scheme {
	case "mongodb", "mongodb+srv":
		m, err := NewMongo(dbURL, name, MongoOptions{})
		if err != nil {
			return nil, err
		}
		return m, nil
	case "postgres", "postgresql":
		p, err := NewPool(ctx, dbURL, name)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}
