// Package main is the entry point for the pactester tool.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/pactester/cmd/pactester/commands"
	"go.trai.ch/pactester/internal/app"
	"go.trai.ch/pactester/internal/core/domain"
	_ "go.trai.ch/pactester/internal/wiring"
)

// Process exit codes.
const (
	exitOK             = 0
	exitSourceNotFound = 1
	exitMissingSource  = 2
	exitFetch          = 3
	exitEvaluation     = 4
	exitCacheDir       = 5
	exitUsage          = 64
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return exitUsage
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return exitCode(err)
	}
	return exitOK
}

// exitCode maps a failure to the process exit status.
func exitCode(err error) int {
	switch domain.KindOf(err) {
	case domain.KindSourceNotFound:
		return exitSourceNotFound
	case domain.KindMissingSource:
		return exitMissingSource
	case domain.KindFetch:
		return exitFetch
	case domain.KindEvaluation:
		return exitEvaluation
	case domain.KindCacheDirCreation:
		return exitCacheDir
	default:
		return exitUsage
	}
}
