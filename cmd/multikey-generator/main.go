// Package main provides the CLI entrypoint for multikey-generator.
//
// multikey-generator writes Go source for N-dimensional multi-key containers:
//   - gen expands the container template once per dimension into a package
//   - prim expands primitive-token templates once per primitive kind
//
// Run with --help for usage information.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
