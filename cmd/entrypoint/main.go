// Package main runs the users service and admin web server in one container.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	entrypoint "github.com/louisbranch/userboard/internal/platform/cmd"
	platformconfig "github.com/louisbranch/userboard/internal/platform/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log.SetPrefix("[ENTRYPOINT] ")

	var cfg config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		platformconfig.Exitf("parse env: %v", err)
	}

	os.Exit(supervise(ctx, cfg.children()))
}
