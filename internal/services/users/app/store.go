package server

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/userboard/internal/services/users/storage"
	userspostgres "github.com/louisbranch/userboard/internal/services/users/storage/postgres"
	userssqlite "github.com/louisbranch/userboard/internal/services/users/storage/sqlite"
)

// Storage drivers accepted by StoreConfig.Driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// StoreConfig selects and locates the users store.
type StoreConfig struct {
	Driver string `env:"USERBOARD_USERS_DB_DRIVER" envDefault:"sqlite"`
	Path   string `env:"USERBOARD_USERS_DB_PATH" envDefault:"data/users.db"`
	DSN    string `env:"USERBOARD_USERS_DB_DSN"`
}

// OpenStore opens the store named by cfg.Driver.
func OpenStore(ctx context.Context, cfg StoreConfig) (storage.Store, error) {
	switch driver := strings.ToLower(strings.TrimSpace(cfg.Driver)); driver {
	case "", DriverSQLite:
		path := strings.TrimSpace(cfg.Path)
		if path == "" {
			path = filepath.Join("data", "users.db")
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create storage dir: %w", err)
			}
		}
		store, err := userssqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open users sqlite store: %w", err)
		}
		return store, nil
	case DriverPostgres:
		store, err := userspostgres.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("open users postgres store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported users storage driver %q", cfg.Driver)
	}
}
