// Package main is the entry point for the rulekit CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/rulekit/cmd/rulekit/commands"
	"github.com/dmitrymomot/rulekit/pkg/config"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "rulekit:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.NewRootCmd().ExecuteContext(ctx)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, commands.ErrInvalid):
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, "rulekit:", err)
		os.Exit(2)
	}
}
