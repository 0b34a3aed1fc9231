package app

import (
	"context"

	"github.com/gabapcia/onchainsentry/internal/alert"
	"github.com/gabapcia/onchainsentry/internal/chainwatch"
)

// Notifier delivers formatted alerts.
type Notifier interface {
	Deliver(ctx context.Context, a alert.Alert) bool
}

// alertSink formats the events of one chain and hands them to the notifier.
type alertSink struct {
	formatter *alert.Formatter
	notifier  Notifier
}

var _ chainwatch.EventHandler = (*alertSink)(nil)

func (s *alertSink) HandleEvent(ctx context.Context, event chainwatch.ActivityEvent) {
	s.notifier.Deliver(ctx, s.formatter.Format(event))
}
