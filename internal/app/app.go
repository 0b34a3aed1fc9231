// Package app wires the configuration into a running sentry: chain clients,
// detectors, watches, the alert formatter and the notifier.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/onchainsentry/internal/alert"
	"github.com/gabapcia/onchainsentry/internal/chainwatch"
	"github.com/gabapcia/onchainsentry/internal/config"
	"github.com/gabapcia/onchainsentry/internal/explorer"
	"github.com/gabapcia/onchainsentry/internal/infra/storage/redis"
	"github.com/gabapcia/onchainsentry/internal/notify"
	"github.com/gabapcia/onchainsentry/internal/pkg/logger"
	httpclient "github.com/gabapcia/onchainsentry/internal/pkg/transport/http"
)

const solanaChainName = "Solana"

// ErrUnknownChain is returned when a link is requested for a chain the sentry
// does not watch.
var ErrUnknownChain = errors.New("unknown chain")

// Service is the running sentry as seen by the command line.
type Service interface {
	// Start launches every watch and sends the startup banner when an
	// external transport is configured.
	Start(ctx context.Context) error

	// Close stops the watches and releases external connections.
	Close()

	// SendTestAlert delivers a test alert and reports whether a transport
	// accepted it.
	SendTestAlert(ctx context.Context, note string) bool

	// TxURL returns the explorer URL of transaction id on chain.
	TxURL(chain, id string) (string, error)

	// BlockURL returns the explorer URL of the block at height on chain.
	BlockURL(chain string, height uint64) (string, error)
}

type closer interface {
	Close() error
}

type sentry struct {
	watches  chainwatch.Service
	notifier Notifier
	banner   bool
	targets  []string
	links    map[string]explorer.Links
	closers  []closer
}

var _ Service = (*sentry)(nil)

func (s *sentry) Start(ctx context.Context) error {
	if err := s.watches.Start(ctx); err != nil {
		return err
	}

	logger.Info(ctx, "on-chain sentry started", "sentry.chains", strings.Join(s.targets, " | "))

	if s.banner {
		s.notifier.Deliver(ctx, alert.Startup(s.targets))
	}

	return nil
}

func (s *sentry) Close() {
	s.watches.Close()

	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			logger.Warn(context.Background(), "failed to close connection", "error", err)
		}
	}
	s.closers = nil
}

func (s *sentry) SendTestAlert(ctx context.Context, note string) bool {
	return s.notifier.Deliver(ctx, alert.Test(note))
}

func (s *sentry) linksFor(chain string) (explorer.Links, error) {
	links, ok := s.links[strings.ToLower(strings.TrimSpace(chain))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChain, chain)
	}
	return links, nil
}

func (s *sentry) TxURL(chain, id string) (string, error) {
	links, err := s.linksFor(chain)
	if err != nil {
		return "", err
	}
	return links.TxURL(id), nil
}

func (s *sentry) BlockURL(chain string, height uint64) (string, error) {
	links, err := s.linksFor(chain)
	if err != nil {
		return "", err
	}
	return links.BlockURL(height), nil
}

// newNotifier builds the notifier from cfg. When the de-duplication guard is
// enabled it also returns its redis connection so the caller can close it.
func newNotifier(ctx context.Context, cfg config.Config) (Notifier, closer, error) {
	var transports []notify.Transport

	if cfg.Notify.GatewayTarget != "" {
		transports = append(transports, notify.NewGateway(cfg.Notify.GatewayTarget,
			notify.WithGatewayBinary(cfg.Notify.GatewayBinary),
			notify.WithGatewayTimeout(cfg.Notify.GatewayTimeout),
		))
	}

	if cfg.Notify.WebhookURL != "" {
		transports = append(transports, notify.NewWebhook(
			httpclient.NewClient(httpclient.WithTimeout(cfg.RPCTimeout), httpclient.WithRetryMax(cfg.RPCRetryMax)),
			cfg.Notify.WebhookURL,
			cfg.Notify.WebhookUsername,
		))
	}

	opts := []notify.Option{
		notify.WithTransports(transports...),
		notify.WithAttempts(cfg.Notify.Attempts),
	}

	if !cfg.Redis.Enabled() {
		return notify.New(opts...), nil, nil
	}

	guard, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB,
		redis.WithAlertTTL(cfg.Notify.DedupTTL),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}

	opts = append(opts, notify.WithGuard(guard))
	return notify.New(opts...), guard, nil
}

// New builds the sentry described by cfg. Nothing is polled until Start.
func New(ctx context.Context, cfg config.Config) (*sentry, error) {
	notifier, guard, err := newNotifier(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s := &sentry{
		notifier: notifier,
		banner:   cfg.Notify.HasExternalTransport(),
		links:    make(map[string]explorer.Links),
	}
	if guard != nil {
		s.closers = append(s.closers, guard)
	}

	rpcClient := httpclient.NewStandardClient(
		httpclient.WithTimeout(cfg.RPCTimeout),
		httpclient.WithRetryMax(cfg.RPCRetryMax),
	)

	watches := []*chainwatch.Watch{
		s.solanaWatch(cfg, rpcClient),
	}
	if cfg.Ethereum.Enabled() {
		watches = append(watches, s.evmWatch(cfg, rpcClient))
	}

	for _, w := range watches {
		s.targets = append(s.targets, w.Chain()+": "+w.Target())
	}

	s.watches = chainwatch.New(watches...)
	return s, nil
}
