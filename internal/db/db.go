package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"priyansh-be/internal/config"
	"priyansh-be/internal/logger"
	"priyansh-be/internal/store"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const appName = "priyansh-api"

var (
	ErrNoDatabaseURL = errors.New("DATABASE_URL is not set")
	ErrUnknownDriver = errors.New("unknown DB_DRIVER")
)

var connectTimeout = 10 * time.Second

func clientOptions(cfg *config.Config) *options.ClientOptions {
	return options.Client().
		ApplyURI(cfg.DatabaseURL).
		SetAppName(appName).
		SetServerSelectionTimeout(connectTimeout)
}

// NewDatabase connects to MongoDB and verifies the primary is reachable.
func NewDatabase(ctx context.Context, cfg *config.Config) (*mongo.Database, error) {
	if cfg.DatabaseURL == "" {
		return nil, ErrNoDatabaseURL
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	return client.Database(cfg.DatabaseName), nil
}

// NewGateway opens the gateway selected by cfg.DBDriver. The returned
// close func releases the underlying connection.
func NewGateway(ctx context.Context, cfg *config.Config) (store.Gateway, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.DBDriver {
	case config.DriverMemory:
		return store.NewMemory(cfg.DatabaseName), noop, nil
	case config.DriverMongo, "":
		database, err := NewDatabase(ctx, cfg)
		if err != nil {
			return nil, noop, err
		}
		return store.NewMongo(database), database.Client().Disconnect, nil
	default:
		return nil, noop, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DBDriver)
	}
}

// InitGateway never fails: if the database cannot be opened the server
// still starts, and data endpoints answer with a configuration error.
func InitGateway(ctx context.Context, cfg *config.Config) (store.Gateway, func(context.Context) error) {
	gw, closeFn, err := NewGateway(ctx, cfg)
	if err != nil {
		logger.L().Warn("database unavailable, starting without persistence",
			zap.String("driver", cfg.DBDriver),
			zap.Error(err),
		)
		return store.NewUnavailable(err.Error()), closeFn
	}

	logger.L().Info("database connection established",
		zap.String("driver", cfg.DBDriver),
		zap.String("database", gw.Name()),
	)
	return gw, closeFn
}
