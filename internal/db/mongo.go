package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type MongoOptions struct {
	ConnectTimeout time.Duration
	MaxPoolSize    uint64
}

type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongo constructs the client lazily. mongo.Connect only starts background
// monitoring, so a server that is down surfaces on Ping, not here.
func NewMongo(dbURL, name string, o MongoOptions) (*Mongo, error) {
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = 10 * time.Second
	}

	if o.MaxPoolSize == 0 {
		o.MaxPoolSize = 100
	}

	client, err := mongo.Connect(
		options.Client().
			ApplyURI(dbURL).
			SetConnectTimeout(o.ConnectTimeout).
			SetMaxPoolSize(o.MaxPoolSize),
	)
	if err != nil {
		return nil, fmt.Errorf("create mongo client: %w", err)
	}

	return &Mongo{client: client, db: client.Database(name)}, nil
}

func (m *Mongo) Driver() string {
	return "mongo"
}

func (m *Mongo) Database() *mongo.Database {
	return m.db
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
