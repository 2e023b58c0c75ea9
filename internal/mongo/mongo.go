package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mongouri/internal/common"
	"mongouri/internal/config"
	"mongouri/internal/connstring"
)

// Connect normalizes the configured connection string, establishes a
// connection, and verifies it with a ping.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	uri := connstring.Normalize(cfg.GetURI())

	ctx, cancel := context.WithTimeout(ctx, cfg.GetConnectTimeout())
	defer cancel()

	clientOpts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, &common.DatabaseConnectionError{Database: "mongodb", Reason: "failed to connect", Err: err}
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, &common.DatabaseConnectionError{Database: "mongodb", Reason: "failed to ping", Err: err}
	}

	return client, nil
}
