// Package notify delivers alerts through an ordered list of transports.
//
// Transports are tried in order and the first one that succeeds wins. When
// none is configured or all of them fail, the alert is written to the log so
// it is never silently dropped. Delivery errors never reach the caller.
package notify

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/onchainsentry/internal/alert"
	"github.com/gabapcia/onchainsentry/internal/pkg/logger"
	"github.com/gabapcia/onchainsentry/internal/pkg/resilience/retry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationScope = "github.com/gabapcia/onchainsentry/internal/notify"

// logTransportName is the transport label used when an alert only reaches the log.
const logTransportName = "log"

// ErrUnexpectedStatus is returned by the webhook transport on non-2xx responses.
var ErrUnexpectedStatus = errors.New("unexpected status code")

// Transport sends one alert to an external destination.
type Transport interface {
	// Name identifies the transport in logs and metrics.
	Name() string

	// Send delivers a. A nil error means the destination accepted it.
	Send(ctx context.Context, a alert.Alert) error
}

// DeliveryGuard prevents the same alert from being delivered twice when
// several sentries watch the same chain.
type DeliveryGuard interface {
	// Claim reserves key. It reports false when the key was already claimed.
	Claim(ctx context.Context, key string) (bool, error)

	// Release gives key back after a delivery that reached no transport.
	Release(ctx context.Context, key string) error
}

// Notifier delivers alerts on a best-effort basis.
type Notifier interface {
	// Deliver reports whether a transport accepted the alert. A false return
	// means the alert was only logged.
	Deliver(ctx context.Context, a alert.Alert) bool
}

type config struct {
	transports []Transport
	guard      DeliveryGuard
	attempts   uint
	retryDelay time.Duration
}

// Option configures the notifier.
type Option func(*config)

// WithTransports appends transports, in priority order.
func WithTransports(transports ...Transport) Option {
	return func(c *config) {
		c.transports = append(c.transports, transports...)
	}
}

// WithGuard enables cross-instance de-duplication of keyed alerts.
func WithGuard(guard DeliveryGuard) Option {
	return func(c *config) {
		c.guard = guard
	}
}

// WithAttempts sets how many times each transport is tried before moving to
// the next one. Values below 1 are ignored.
func WithAttempts(n uint) Option {
	return func(c *config) {
		if n > 0 {
			c.attempts = n
		}
	}
}

// WithRetryDelay sets the base delay between attempts on the same transport.
func WithRetryDelay(d time.Duration) Option {
	return func(c *config) {
		c.retryDelay = d
	}
}

type notifier struct {
	transports []Transport
	guard      DeliveryGuard
	retry      retry.Retry

	tracer    trace.Tracer
	delivered metric.Int64Counter
}

var _ Notifier = (*notifier)(nil)

// Configured reports whether at least one external transport is set up.
func (n *notifier) Configured() bool {
	return len(n.transports) > 0
}

func (n *notifier) Deliver(ctx context.Context, a alert.Alert) bool {
	ctx, span := n.tracer.Start(ctx, "notify.deliver", trace.WithAttributes(
		attribute.String("alert.title", a.Title),
		attribute.String("alert.severity", string(a.Severity)),
	))
	defer span.End()

	claimed := false
	if n.guard != nil && a.Key != "" {
		ok, err := n.guard.Claim(ctx, a.Key)
		switch {
		case err != nil:
			logger.Warn(ctx, "alert de-duplication unavailable", "alert.key", a.Key, "error", err)
		case !ok:
			logger.Info(ctx, "alert already delivered", "alert.key", a.Key, "alert.title", a.Title)
			span.SetAttributes(attribute.Bool("alert.duplicate", true))
			return true
		default:
			claimed = true
		}
	}

	for _, t := range n.transports {
		err := n.retry.Execute(ctx, func() error {
			return t.Send(ctx, a)
		})
		if err == nil {
			n.delivered.Add(ctx, 1, metric.WithAttributes(attribute.String("transport", t.Name())))
			span.SetAttributes(attribute.String("alert.transport", t.Name()))
			logger.Debug(ctx, "alert delivered", "alert.title", a.Title, "alert.transport", t.Name())
			return true
		}

		span.RecordError(err)
		logger.Error(ctx, "alert delivery failed",
			"alert.title", a.Title,
			"alert.transport", t.Name(),
			"error", err,
		)
	}

	if len(n.transports) > 0 {
		span.SetStatus(codes.Error, "no transport accepted the alert")
	}

	if claimed {
		if err := n.guard.Release(ctx, a.Key); err != nil {
			logger.Warn(ctx, "failed to release alert key", "alert.key", a.Key, "error", err)
		}
	}

	n.delivered.Add(ctx, 1, metric.WithAttributes(attribute.String("transport", logTransportName)))
	logger.Warn(ctx, "alert logged only",
		"alert.title", a.Title,
		"alert.severity", a.Severity,
		"alert.message", a.Message(),
	)

	return false
}

// New creates a Notifier. Without transports every alert goes to the log.
func New(opts ...Option) *notifier {
	cfg := config{
		attempts:   1,
		retryDelay: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := otel.Meter(instrumentationScope)
	delivered, _ := meter.Int64Counter("sentry.alerts.delivered", metric.WithDescription("Number of alerts handed to a transport or to the log"))

	return &notifier{
		transports: cfg.transports,
		guard:      cfg.guard,
		retry: retry.New(
			retry.WithAttempts(cfg.attempts),
			retry.WithDelay(cfg.retryDelay),
		),
		tracer:    otel.Tracer(instrumentationScope),
		delivered: delivered,
	}
}
