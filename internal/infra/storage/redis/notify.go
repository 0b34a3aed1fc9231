package redis

import (
	"context"
	"fmt"

	"github.com/gabapcia/onchainsentry/internal/notify"
)

const (
	// notifyKeyPrefix is the Redis key namespace used for alert de-duplication.
	notifyKeyPrefix = "notify"

	// notifyDeliveredValue marks a claimed alert key.
	notifyDeliveredValue = "delivered"
)

// notifyDeliveryKey builds the Redis key that marks an alert as delivered:
//
//	"notify:delivery:<alert key>"
func notifyDeliveryKey(alertKey string) string {
	return fmt.Sprintf("%s:delivery:%s", notifyKeyPrefix, alertKey)
}

// Claim reserves alertKey with SET NX and the configured TTL. It reports false
// when another sentry already claimed the same key.
func (c *client) Claim(ctx context.Context, alertKey string) (bool, error) {
	return c.conn.SetNX(ctx, notifyDeliveryKey(alertKey), notifyDeliveredValue, c.alertTTL).Result()
}

// Release removes the claim on alertKey so that a later attempt can deliver it.
func (c *client) Release(ctx context.Context, alertKey string) error {
	return c.conn.Del(ctx, notifyDeliveryKey(alertKey)).Err()
}

// Compile-time assertion to ensure client implements the DeliveryGuard interface.
var _ notify.DeliveryGuard = new(client)
