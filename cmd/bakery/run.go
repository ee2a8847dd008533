package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

// run starts app with the signal context so background workers live until
// shutdown, then stops it when a signal arrives or fx requests shutdown.
func run(ctx context.Context, app *fx.App) {
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build application: %v\n", err)
		os.Exit(1)
	}

	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start application: %v\n", err)
		os.Exit(1)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop application: %v\n", err)
		os.Exit(1)
	}
}
