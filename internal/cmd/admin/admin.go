// Package admin parses admin command flags and starts the web server.
package admin

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/userboard/internal/platform/cmd"
	"github.com/louisbranch/userboard/internal/platform/discovery"
	"github.com/louisbranch/userboard/internal/services/admin"
)

// Config holds the admin command configuration.
type Config struct {
	HTTPAddr        string        `env:"USERBOARD_ADMIN_ADDR" envDefault:":8082"`
	UsersAddr       string        `env:"USERBOARD_USERS_ADDR"`
	RedisURL        string        `env:"USERBOARD_REDIS_URL"`
	GRPCDialTimeout time.Duration `env:"USERBOARD_GRPC_DIAL_TIMEOUT" envDefault:"2s"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	cfg.UsersAddr = discovery.OrDefaultGRPCAddr(cfg.UsersAddr, discovery.ServiceUsers)
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.UsersAddr, "users-addr", cfg.UsersAddr, "users service address")
	fs.StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for cross-instance live refresh, e.g. "+discovery.DefaultRedisURL()+" (optional)")
	fs.DurationVar(&cfg.GRPCDialTimeout, "grpc-dial-timeout", cfg.GRPCDialTimeout, "users service dial timeout")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the admin server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceAdmin, func(ctx context.Context) error {
		server, err := admin.NewServer(ctx, admin.Config{
			HTTPAddr:        cfg.HTTPAddr,
			UsersAddr:       cfg.UsersAddr,
			RedisURL:        cfg.RedisURL,
			GRPCDialTimeout: cfg.GRPCDialTimeout,
		})
		if err != nil {
			return fmt.Errorf("init admin server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve admin: %w", err)
		}
		return nil
	})
}
