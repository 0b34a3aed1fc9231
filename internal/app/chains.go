package app

import (
	"net/http"
	"strings"

	"github.com/gabapcia/onchainsentry/internal/alert"
	"github.com/gabapcia/onchainsentry/internal/chainwatch"
	"github.com/gabapcia/onchainsentry/internal/config"
	"github.com/gabapcia/onchainsentry/internal/explorer"
	"github.com/gabapcia/onchainsentry/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/onchainsentry/internal/infra/blockchain/solana"
	"github.com/gabapcia/onchainsentry/internal/pkg/transport/jsonrpc"

	"github.com/gagliardetto/solana-go/rpc"
)

// solanaWatch watches the configured address, or the slot height when no
// address is set.
func (s *sentry) solanaWatch(cfg config.Config, httpClient *http.Client) *chainwatch.Watch {
	client := solana.NewClient(
		solana.Dial(cfg.Solana.RPCURL, httpClient),
		solana.WithCommitment(rpc.CommitmentType(cfg.Solana.Commitment)),
	)

	links := explorer.NewSolscan(cfg.Solana.Cluster)
	s.links[strings.ToLower(solanaChainName)] = links

	var (
		detector chainwatch.Detector
		target   = "slot height"
	)
	if cfg.Solana.WatchAddress != "" {
		detector = chainwatch.NewAddressActivity(solanaChainName, cfg.Solana.WatchAddress, client, cfg.Solana.Lookback)
		target = cfg.Solana.WatchAddress
	} else {
		detector = chainwatch.NewHeightJump(solanaChainName, client, cfg.Solana.JumpThreshold)
	}

	sink := &alertSink{
		formatter: alert.NewFormatter(alert.ChainProfile{
			Name:   solanaChainName,
			Family: alert.FamilySolana,
			Links:  links,
		}),
		notifier: s.notifier,
	}

	return chainwatch.NewWatch(solanaChainName, detector, sink,
		chainwatch.WithInterval(cfg.PollInterval()),
		chainwatch.WithTarget(target),
	)
}

// evmWatch scans every block for the configured address, or watches the
// block height when no address is set.
func (s *sentry) evmWatch(cfg config.Config, httpClient *http.Client) *chainwatch.Watch {
	client := ethereum.NewClient(jsonrpc.NewClient(httpClient, cfg.Ethereum.RPCURL))

	links := explorer.NewEVM(cfg.Ethereum.ExplorerTx, cfg.Ethereum.ExplorerBlock)
	s.links[strings.ToLower(cfg.Ethereum.ChainName)] = links
	s.links["evm"] = links

	var (
		detector chainwatch.Detector
		target   = "block height"
	)
	if cfg.Ethereum.WatchAddress != "" {
		detector = chainwatch.NewRangeScan(cfg.Ethereum.ChainName, cfg.Ethereum.WatchAddress, client)
		target = cfg.Ethereum.WatchAddress
	} else {
		detector = chainwatch.NewHeightJump(cfg.Ethereum.ChainName, client, cfg.Ethereum.JumpThreshold)
	}

	sink := &alertSink{
		formatter: alert.NewFormatter(alert.ChainProfile{
			Name:     cfg.Ethereum.ChainName,
			Family:   alert.FamilyEVM,
			Symbol:   cfg.Ethereum.NativeSymbol,
			Decimals: cfg.Ethereum.NativeDecimals,
			Links:    links,
		}),
		notifier: s.notifier,
	}

	return chainwatch.NewWatch(cfg.Ethereum.ChainName, detector, sink,
		chainwatch.WithInterval(cfg.PollInterval()),
		chainwatch.WithTarget(target),
	)
}
