package db

import (
	"context"
	"fmt"
	"log/slog"

	"weddingplanner/internal/config"
	"weddingplanner/internal/repository"
)

// Open connects to the backend selected by cfg, prepares its schema and
// returns the repositories served by it. The returned close func releases
// the connection.
func Open(ctx context.Context, cfg *config.Config) (*repository.Repositories, func(context.Context) error, error) {
	switch cfg.StoreBackend {
	case config.BackendSQL:
		dsn := cfg.MySQLDSN
		if cfg.DBDriver == config.DriverSQLite {
			dsn = cfg.SQLitePath
		}
		gormDB, err := NewSQL(cfg.DBDriver, dsn, slog.Default())
		if err != nil {
			return nil, nil, err
		}
		if err := Migrate(gormDB, cfg.ResetDB); err != nil {
			return nil, nil, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("sql handle: %w", err)
		}
		slog.Info("store ready", "backend", cfg.StoreBackend, "driver", cfg.DBDriver)
		return repository.NewGormRepositories(gormDB), func(context.Context) error { return sqlDB.Close() }, nil

	case config.BackendRedis:
		client, err := NewRedis(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("store ready", "backend", cfg.StoreBackend, "addr", cfg.RedisAddr)
		return repository.NewRedisRepositories(client), func(context.Context) error { return client.Close() }, nil

	case config.BackendMongo:
		client, database, err := NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		if err := EnsureMongoIndexes(ctx, database); err != nil {
			_ = client.Disconnect(ctx)
			return nil, nil, err
		}
		slog.Info("store ready", "backend", cfg.StoreBackend, "database", cfg.MongoDatabase)
		return repository.NewMongoRepositories(database), client.Disconnect, nil

	default:
		return nil, nil, fmt.Errorf("unsupported store backend %q", cfg.StoreBackend)
	}
}
