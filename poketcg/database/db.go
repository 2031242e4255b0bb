package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultConnTimeout   = 5 * time.Second
	defaultMaxRetries    = 3
	defaultRetryInterval = time.Second
)

type DBConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

func New(ctx context.Context, cfg DBConfig) (*DB, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(defaultConnTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	// The driver connects lazily; ping with retries so startup fails fast
	// on a bad URI instead of on the first command.
	for i := 0; i < defaultMaxRetries; i++ {
		err = client.Ping(ctx, readpref.Primary())
		if err == nil {
			break
		}
		time.Sleep(defaultRetryInterval)
	}
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("document store unreachable after %d attempts: %w", defaultMaxRetries, err)
	}

	db := &DB{client: client, db: client.Database(cfg.Database)}
	if err := db.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return db, nil
}

// ensureIndexes creates the unique index backing the one-record-per-user
// invariant. Creation races on the same discord_id resolve to a
// duplicate-key error for the loser.
func (d *DB) ensureIndexes(ctx context.Context) error {
	_, err := d.db.Collection("players").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "discord_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create players index: %w", err)
	}

	slog.Info("Document store indexes ready",
		slog.String("type", "db"),
		slog.String("database", d.db.Name()))
	return nil
}

// Mongo exposes the underlying database handle for repositories.
func (d *DB) Mongo() *mongo.Database {
	return d.db
}

func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
