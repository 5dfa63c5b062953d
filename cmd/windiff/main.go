// Package main provides the windiff command: it resolves a file against a left and a right
// directory tree and opens both copies in an external diff viewer.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/Cyclone1070/windiff/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return cli.Run(ctx, args, stdout, stderr, cli.DefaultDependencies())
}
