package database

import (
	"context"
	"fmt"
	"time"

	"bistro-boss/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB wraps the shared mongo client and the application database.
type DB struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
}

// Collection returns a handle to the named collection.
func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Timeout is the per-operation deadline applied by repositories.
func (d *DB) Timeout() time.Duration {
	return d.timeout
}

func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// InitDB connects to MongoDB and verifies the connection with a ping.
func InitDB(config utils.DatabaseConfig) (*DB, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)

	clientOpts := options.Client().
		ApplyURI(config.ConnectionURI()).
		SetServerAPIOptions(serverAPI).
		// free-form document fields decode as maps so they encode back to JSON objects
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true}).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)
	if config.MaxPoolSize > 0 {
		clientOpts.SetMaxPoolSize(config.MaxPoolSize)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancelPing()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo failed: %w", err)
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &DB{
		client:  client,
		db:      client.Database(config.Name),
		timeout: timeout,
	}, nil
}
