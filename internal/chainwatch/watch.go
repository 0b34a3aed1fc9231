package chainwatch

import (
	"context"
	"time"

	"github.com/gabapcia/onchainsentry/internal/pkg/logger"
	"github.com/gabapcia/onchainsentry/internal/pkg/x/chflow"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// DefaultInterval is the time between two ticks of a Watch.
const DefaultInterval = 15 * time.Second

// instrumentationScope names the tracer and meter used by this package.
const instrumentationScope = "github.com/gabapcia/onchainsentry/internal/chainwatch"

// EventHandler receives the events detected by a Watch. HandleEvent is
// called synchronously from the tick, so a slow handler delays the next tick.
// It must not panic and has no way to report failures back to the Watch.
type EventHandler interface {
	HandleEvent(ctx context.Context, event ActivityEvent)
}

// Watch polls one chain on a fixed interval with a single Detector and owns
// the WatchState that detector works on.
type Watch struct {
	chain    string
	target   string
	detector Detector
	handler  EventHandler
	interval time.Duration

	state WatchState

	tracer trace.Tracer
	ticks  metric.Int64Counter
	errors metric.Int64Counter
	events metric.Int64Counter
}

// WatchOption configures a Watch.
type WatchOption func(*Watch)

// WithInterval sets the time between ticks. Non-positive values are ignored.
func WithInterval(d time.Duration) WatchOption {
	return func(w *Watch) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithTarget sets a human readable description of what is watched (an
// address, or the chain height), used in logs and in the startup summary.
func WithTarget(target string) WatchOption {
	return func(w *Watch) {
		w.target = target
	}
}

// NewWatch creates a Watch for chain that runs detector every interval and
// hands every event to handler.
func NewWatch(chain string, detector Detector, handler EventHandler, opts ...WatchOption) *Watch {
	w := &Watch{
		chain:    chain,
		detector: detector,
		handler:  handler,
		interval: DefaultInterval,
		tracer:   otel.Tracer(instrumentationScope),
	}
	for _, opt := range opts {
		opt(w)
	}

	meter := otel.Meter(instrumentationScope)
	w.ticks, _ = meter.Int64Counter("sentry.poll.ticks", metric.WithDescription("Number of completed poll ticks"))
	w.errors, _ = meter.Int64Counter("sentry.poll.errors", metric.WithDescription("Number of ticks that ended with an error"))
	w.events, _ = meter.Int64Counter("sentry.events.emitted", metric.WithDescription("Number of activity events emitted"))

	return w
}

// Chain returns the display name of the watched chain.
func (w *Watch) Chain() string {
	return w.chain
}

// Mode returns the detection mode of the Watch.
func (w *Watch) Mode() Mode {
	return w.detector.Mode()
}

// Target returns the description set with WithTarget.
func (w *Watch) Target() string {
	return w.target
}

// Interval returns the time between ticks.
func (w *Watch) Interval() time.Duration {
	return w.interval
}

// Tick runs the detector once and delivers its events in order. Detection
// errors are logged and never returned: the next tick starts again from the
// state the detector left behind.
func (w *Watch) Tick(ctx context.Context) {
	attrs := metric.WithAttributes(
		attribute.String("chain", w.chain),
		attribute.String("mode", string(w.detector.Mode())),
	)

	ctx, span := w.tracer.Start(ctx, "chainwatch.tick", trace.WithAttributes(
		attribute.String("chain", w.chain),
		attribute.String("mode", string(w.detector.Mode())),
	))
	defer span.End()

	events, err := w.detector.Detect(ctx, &w.state)

	for _, event := range events {
		w.events.Add(ctx, 1, metric.WithAttributes(
			attribute.String("chain", w.chain),
			attribute.String("kind", string(event.Kind)),
		))

		logger.Info(ctx, "activity detected",
			"chain.name", w.chain,
			"event.kind", event.Kind,
			"event.position", event.Position,
			"event.identifier", event.Identifier,
		)

		w.handler.HandleEvent(ctx, event)
	}

	w.ticks.Add(ctx, 1, attrs)

	if err != nil {
		w.errors.Add(ctx, 1, attrs)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		logger.Error(ctx, "poll error",
			"chain.name", w.chain,
			"watch.mode", w.detector.Mode(),
			"error", err,
		)
	}
}

// Run ticks immediately and then every interval until ctx is canceled. Ticks
// never overlap: the ticker drops ticks that fire while one is running.
func (w *Watch) Run(ctx context.Context) {
	logger.Info(ctx, "watch started",
		"chain.name", w.chain,
		"watch.mode", w.detector.Mode(),
		"watch.target", w.target,
		"watch.interval", w.interval.String(),
	)

	w.Tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if _, ok := chflow.Receive(ctx, ticker.C); !ok {
			logger.Info(ctx, "watch stopped", "chain.name", w.chain)
			return
		}

		w.Tick(ctx)
	}
}
