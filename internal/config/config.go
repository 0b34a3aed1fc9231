// Package config loads the sentry configuration from the environment.
//
// A .env file in the working directory is read first when present; variables
// already set in the environment take precedence over it. Every key has a
// default except the watch addresses and the notification targets.
package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/gabapcia/onchainsentry/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type (
	// Solana configures the Solana watch. Without an address the watch runs in
	// height-jump mode. A zero JumpThreshold means chainwatch.DefaultJumpThreshold.
	Solana struct {
		RPCURL        string `envconfig:"RPC_URL" default:"https://api.devnet.solana.com" validate:"required,url"`
		WatchAddress  string `envconfig:"WATCH_ADDRESS" validate:"omitempty,solana_addr"`
		JumpThreshold uint64 `envconfig:"SLOT_JUMP_THRESHOLD" default:"20"`
		Lookback      int    `envconfig:"SOLANA_SIGNATURE_LOOKBACK" default:"5" validate:"min=1,max=1000"`
		Commitment    string `envconfig:"SOLANA_COMMITMENT" default:"confirmed" validate:"oneof=processed confirmed finalized"`
		Cluster       string `envconfig:"SOLSCAN_CLUSTER"`
	}

	// Ethereum configures the optional EVM watch. It is enabled by RPCURL;
	// without an address the watch runs in height-jump mode. ChainName keys the
	// explorer links next to "solana" and "evm", so those names are rejected.
	Ethereum struct {
		RPCURL         string `envconfig:"RPC_URL_ETH" validate:"omitempty,url"`
		WatchAddress   string `envconfig:"WATCH_ADDRESS_ETH" validate:"omitempty,eth_addr"`
		JumpThreshold  uint64 `envconfig:"ETH_BLOCK_JUMP_THRESHOLD" default:"20"`
		ChainName      string `envconfig:"ETH_CHAIN_NAME" default:"Ethereum" validate:"required,notin_fold=solana evm"`
		ExplorerTx     string `envconfig:"ETH_EXPLORER_TX" default:"https://etherscan.io/tx" validate:"url"`
		ExplorerBlock  string `envconfig:"ETH_EXPLORER_BLOCK" default:"https://etherscan.io/block" validate:"url"`
		NativeSymbol   string `envconfig:"ETH_NATIVE_SYMBOL" default:"ETH" validate:"required"`
		NativeDecimals int32  `envconfig:"ETH_NATIVE_DECIMALS" default:"18" validate:"min=0,max=36"`
	}

	// Notify configures the alert transports.
	Notify struct {
		GatewayTarget   string        `envconfig:"OPENCLAW_ALERT_TARGET"`
		GatewayBinary   string        `envconfig:"OPENCLAW_BIN" default:"openclaw" validate:"required"`
		GatewayTimeout  time.Duration `envconfig:"OPENCLAW_TIMEOUT" default:"15s" validate:"gt=0"`
		WebhookURL      string        `envconfig:"ALERT_WEBHOOK_URL" validate:"omitempty,url"`
		WebhookUsername string        `envconfig:"ALERT_WEBHOOK_USERNAME" default:"On-Chain Sentry"`
		Attempts        uint          `envconfig:"NOTIFY_ATTEMPTS" default:"1" validate:"min=1,max=10"`
		DedupTTL        time.Duration `envconfig:"ALERT_DEDUP_TTL" default:"24h" validate:"gt=0"`
	}

	// Redis configures the optional alert de-duplication store. It is enabled
	// by Addr.
	Redis struct {
		Addr     string `envconfig:"REDIS_ADDR" validate:"omitempty,hostname_port"`
		Username string `envconfig:"REDIS_USERNAME"`
		Password string `envconfig:"REDIS_PASSWORD"`
		DB       int    `envconfig:"REDIS_DB" default:"0" validate:"min=0"`
	}

	// Telemetry configures the OpenTelemetry exporters.
	Telemetry struct {
		Enabled     bool   `envconfig:"OTEL_ENABLED" default:"false"`
		ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"onchain-sentry" validate:"required"`
	}

	// Config is the complete sentry configuration.
	Config struct {
		LogLevel       string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error dpanic panic fatal"`
		PollIntervalMS int64         `envconfig:"POLL_INTERVAL_MS" default:"15000" validate:"min=0"`
		RPCTimeout     time.Duration `envconfig:"RPC_TIMEOUT" default:"10s" validate:"gt=0"`
		RPCRetryMax    int           `envconfig:"RPC_RETRY_MAX" default:"2" validate:"min=0,max=10"`

		Solana    Solana
		Ethereum  Ethereum
		Notify    Notify
		Redis     Redis
		Telemetry Telemetry
	}
)

// DefaultPollInterval is used when POLL_INTERVAL_MS is zero.
const DefaultPollInterval = 15 * time.Second

// PollInterval returns the tick interval of every watch.
func (c Config) PollInterval() time.Duration {
	if c.PollIntervalMS <= 0 {
		return DefaultPollInterval
	}
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// Enabled reports whether the EVM watch is configured.
func (e Ethereum) Enabled() bool {
	return e.RPCURL != ""
}

// Enabled reports whether the de-duplication store is configured.
func (r Redis) Enabled() bool {
	return r.Addr != ""
}

// HasExternalTransport reports whether alerts can leave the process.
func (n Notify) HasExternalTransport() bool {
	return n.GatewayTarget != "" || n.WebhookURL != ""
}

// Option configures Load.
type Option func(*options)

type options struct {
	envFiles []string
}

// WithEnvFiles replaces the .env files read before the environment.
// Missing files are ignored.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.envFiles = paths
	}
}

// Load reads the configuration from the .env files and the environment and
// validates it.
func Load(opts ...Option) (Config, error) {
	o := options{envFiles: []string{".env"}}
	for _, opt := range opts {
		opt(&o)
	}

	for _, path := range o.envFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
