package notify

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/gabapcia/onchainsentry/internal/alert"
	"github.com/gabapcia/onchainsentry/internal/pkg/logger"
)

const (
	DefaultGatewayBinary  = "openclaw"
	DefaultGatewayTimeout = 15 * time.Second
)

// runFunc executes name with args and returns what the process wrote to stderr.
type runFunc func(ctx context.Context, name string, args ...string) (stderr string, err error)

func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	err := cmd.Run()
	return strings.TrimSpace(stderr.String()), err
}

// Gateway delivers alerts through a messaging gateway CLI:
//
//	openclaw message send --target <target> --message <message>
//
// Arguments are passed to the process directly, never through a shell.
type Gateway struct {
	binary  string
	target  string
	timeout time.Duration
	run     runFunc
}

var _ Transport = (*Gateway)(nil)

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithGatewayBinary overrides the gateway executable.
func WithGatewayBinary(path string) GatewayOption {
	return func(g *Gateway) {
		if path != "" {
			g.binary = path
		}
	}
}

// WithGatewayTimeout bounds a single invocation.
func WithGatewayTimeout(d time.Duration) GatewayOption {
	return func(g *Gateway) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// NewGateway returns a Gateway sending to target (a chat id, phone number or
// channel, depending on the gateway's configuration).
func NewGateway(target string, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		binary:  DefaultGatewayBinary,
		target:  target,
		timeout: DefaultGatewayTimeout,
		run:     runCommand,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) Name() string {
	return "gateway"
}

func (g *Gateway) Send(ctx context.Context, a alert.Alert) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	stderr, err := g.run(ctx, g.binary, "message", "send", "--target", g.target, "--message", a.Message())
	if err != nil {
		if stderr != "" {
			return fmt.Errorf("%s: %w: %s", g.binary, err, stderr)
		}
		return fmt.Errorf("%s: %w", g.binary, err)
	}

	if stderr != "" {
		logger.Warn(ctx, "gateway wrote to stderr", "gateway.binary", g.binary, "gateway.stderr", stderr)
	}

	return nil
}
