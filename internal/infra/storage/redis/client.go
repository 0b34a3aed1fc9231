// Package redis provides the Redis-backed stores of the sentry.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// DefaultAlertTTL is how long a delivered alert key is remembered.
const DefaultAlertTTL = 24 * time.Hour

type client struct {
	conn     *redis.Client
	alertTTL time.Duration
}

// Option configures the client.
type Option func(*client)

// WithAlertTTL sets how long delivered alert keys are kept. Non-positive
// values are ignored.
func WithAlertTTL(ttl time.Duration) Option {
	return func(c *client) {
		if ttl > 0 {
			c.alertTTL = ttl
		}
	}
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and checks the connection with a PING.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	c := &client{
		conn:     conn,
		alertTTL: DefaultAlertTTL,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}
