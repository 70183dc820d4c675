// Package seed parses seed command flags and fills the users store with
// demo data.
package seed

import (
	"context"
	"flag"
	"fmt"
	"io"

	entrypoint "github.com/louisbranch/userboard/internal/platform/cmd"
	server "github.com/louisbranch/userboard/internal/services/users/app"
	"github.com/louisbranch/userboard/internal/tools/seed/generator"
)

// Config holds seed command configuration.
type Config struct {
	Users int `env:"USERBOARD_SEED_USERS" envDefault:"12"`
	Store server.StoreConfig

	Seed    int64
	Verbose bool
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Users, "users", cfg.Users, "number of users to generate")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed for reproducibility (0 = random)")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	fs.StringVar(&cfg.Store.Driver, "db-driver", cfg.Store.Driver, "storage driver (sqlite, postgres)")
	fs.StringVar(&cfg.Store.Path, "db-path", cfg.Store.Path, "sqlite database path")
	fs.StringVar(&cfg.Store.DSN, "db-dsn", cfg.Store.DSN, "postgres connection string")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the seed command against the configured store.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	store, err := server.OpenStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	return generate(ctx, store, cfg, out)
}

func generate(ctx context.Context, store generator.Writer, cfg Config, out io.Writer) error {
	genCfg := generator.DefaultConfig()
	genCfg.Users = cfg.Users
	genCfg.Seed = cfg.Seed
	genCfg.Verbose = cfg.Verbose

	gen, err := generator.New(store, genCfg, out)
	if err != nil {
		return err
	}
	summary, err := gen.Run(ctx)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	fmt.Fprintf(out, "Seeded %d user(s), %d post(s), %d comment(s)\n", summary.Users, summary.Posts, summary.Comments)
	return nil
}
