package cli

import (
	"context"
	"os"

	"github.com/gabapcia/onchainsentry/internal/app"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the sentry CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Starts watching every configured chain.
//   - `test-alert`: Sends a test alert through the configured transports.
//   - `link`: Prints the explorer URL of a transaction or block.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, svc app.Service) error {
	cmd := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "sentry",
		Description:           "Watches Solana and EVM chains and sends alerts on new activity.",
		Usage:                 "sentry [command] [flags]",
		Commands: []*cli.Command{
			startCommand(svc),
			testAlertCommand(svc),
			linkCommand(svc),
		},
	}

	return cmd.Run(ctx, os.Args)
}
