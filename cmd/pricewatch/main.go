// ABOUTME: Entry point for the pricewatch command line tool
// ABOUTME: Runs the root command with a context cancelled on interrupt

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd(newApp).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
