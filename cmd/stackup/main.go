// Command stackup clones a frontend and a backend repository into a new
// project folder and wires Supabase credentials into the backend.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/NielsdaWheelz/stackup/internal/cli"
	"github.com/NielsdaWheelz/stackup/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
