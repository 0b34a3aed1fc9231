package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/onchainsentry/internal/app"

	"github.com/urfave/cli/v3"
)

// startCommand returns a CLI command that starts every configured watch.
//
// Usage example:
//
//	sentry start
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM) or ctx is canceled.
func startCommand(svc app.Service) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts polling every configured chain and delivering alerts.",
		Usage:       "Runs the sentry. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := svc.Start(ctx); err != nil {
				return err
			}
			defer svc.Close()

			select {
			case <-quit:
			case <-ctx.Done():
			}

			return nil
		},
	}
}
