// maze generates weighted grid worlds and searches a route through them.
//
// Usage:
//
//	maze solve  [--seed=N] [--width=W --height=H] [--maze-file=F] [--animate] [--png=out.png]
//	maze view   [--seed=N] [--tick=16ms]
//	maze bench  [--runs=N] [--workers=W] [--format=ascii|markdown]
//	maze replay [--animate] [--png=out.png]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
