package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/onchainsentry/internal/app"

	"github.com/urfave/cli/v3"
)

// ErrInvalidLinkTarget is returned when link gets both or none of --tx and --block.
var ErrInvalidLinkTarget = errors.New("exactly one of --tx or --block must be set")

// linkCommand returns a CLI command that prints explorer URLs.
//
// Usage example:
//
//	sentry link --chain solana --tx 5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnb...
//	sentry link --chain ethereum --block 19000000
func linkCommand(svc app.Service) *cli.Command {
	return &cli.Command{
		Name:        "link",
		Description: "Prints the explorer URL of a transaction or a block.",
		Usage:       "Builds an explorer link with the configured cluster and explorer bases.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "chain",
				Usage:    "Chain name (solana, evm or the configured EVM chain name)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "tx",
				Usage: "Transaction signature or hash",
			},
			&cli.Uint64Flag{
				Name:  "block",
				Usage: "Slot or block number",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				chain    = c.String("chain")
				tx       = c.String("tx")
				hasBlock = c.IsSet("block")
			)

			if (tx == "") == !hasBlock {
				return ErrInvalidLinkTarget
			}

			var (
				url string
				err error
			)
			if tx != "" {
				url, err = svc.TxURL(chain, tx)
			} else {
				url, err = svc.BlockURL(chain, c.Uint64("block"))
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.Root().Writer, url)
			return err
		},
	}
}
