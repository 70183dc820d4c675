package admin

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != ":8082" {
		t.Fatalf("http addr = %q, want %q", cfg.HTTPAddr, ":8082")
	}
	if cfg.UsersAddr != "users:8093" {
		t.Fatalf("users addr = %q, want %q", cfg.UsersAddr, "users:8093")
	}
	if cfg.RedisURL != "" {
		t.Fatalf("redis url = %q, want empty", cfg.RedisURL)
	}
	if cfg.GRPCDialTimeout != 2*time.Second {
		t.Fatalf("dial timeout = %v, want 2s", cfg.GRPCDialTimeout)
	}
}

func TestParseConfigEnvThenFlags(t *testing.T) {
	t.Setenv("USERBOARD_ADMIN_ADDR", "env-admin")
	t.Setenv("USERBOARD_USERS_ADDR", "env-users")
	t.Setenv("USERBOARD_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("USERBOARD_GRPC_DIAL_TIMEOUT", "5s")

	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "flag-admin"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "flag-admin" {
		t.Fatalf("http addr = %q, want flag value", cfg.HTTPAddr)
	}
	if cfg.UsersAddr != "env-users" {
		t.Fatalf("users addr = %q, want env value", cfg.UsersAddr)
	}
	if cfg.RedisURL != "redis://localhost:6379/0" {
		t.Fatalf("redis url = %q", cfg.RedisURL)
	}
	if cfg.GRPCDialTimeout != 5*time.Second {
		t.Fatalf("dial timeout = %v, want 5s", cfg.GRPCDialTimeout)
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	fs.SetOutput(discard{})
	if _, err := ParseConfig(fs, []string{"-nope"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
