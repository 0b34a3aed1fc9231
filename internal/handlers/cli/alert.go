package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/onchainsentry/internal/app"

	"github.com/urfave/cli/v3"
)

// testAlertCommand returns a CLI command that sends a single test alert.
//
// Usage example:
//
//	sentry test-alert --note "deploy check"
func testAlertCommand(svc app.Service) *cli.Command {
	return &cli.Command{
		Name:        "test-alert",
		Description: "Sends a test alert through the configured gateway or webhook.",
		Usage:       "Delivers one test alert. Falls back to the log when no transport accepts it.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "note",
				Usage: "Extra line appended to the alert body",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if svc.SendTestAlert(ctx, c.String("note")) {
				_, err := fmt.Fprintln(c.Root().Writer, "test alert delivered")
				return err
			}

			_, err := fmt.Fprintln(c.Root().Writer, "no transport accepted the alert, it was written to the log")
			return err
		},
	}
}
