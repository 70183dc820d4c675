// Package users parses users service flags and launches the service.
package users

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/userboard/internal/platform/cmd"
	server "github.com/louisbranch/userboard/internal/services/users/app"
)

// Config holds users command configuration.
type Config struct {
	Port  int `env:"USERBOARD_USERS_PORT" envDefault:"8093"`
	Store server.StoreConfig
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The users gRPC server port")
	fs.StringVar(&cfg.Store.Driver, "db-driver", cfg.Store.Driver, "storage driver (sqlite, postgres)")
	fs.StringVar(&cfg.Store.Path, "db-path", cfg.Store.Path, "sqlite database path")
	fs.StringVar(&cfg.Store.DSN, "db-dsn", cfg.Store.DSN, "postgres connection string")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the users gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceUsers, func(ctx context.Context) error {
		return server.Run(ctx, cfg.Port, cfg.Store)
	})
}
