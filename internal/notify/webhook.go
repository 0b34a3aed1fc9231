package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gabapcia/onchainsentry/internal/alert"

	"github.com/hashicorp/go-retryablehttp"
)

// DefaultWebhookUsername is the author name shown by chat webhooks.
const DefaultWebhookUsername = "On-Chain Sentry"

type webhookPayload struct {
	Content  string `json:"content"`
	Username string `json:"username"`
}

// Webhook posts alerts as JSON to a chat webhook (Discord, Slack compatible
// endpoints and the like).
type Webhook struct {
	url      string
	username string
	client   *retryablehttp.Client
}

var _ Transport = (*Webhook)(nil)

// NewWebhook returns a Webhook posting to url with client. An empty username
// falls back to DefaultWebhookUsername.
func NewWebhook(client *retryablehttp.Client, url, username string) *Webhook {
	if username == "" {
		username = DefaultWebhookUsername
	}

	return &Webhook{
		url:      url,
		username: username,
		client:   client,
	}
}

func (w *Webhook) Name() string {
	return "webhook"
}

func (w *Webhook) Send(ctx context.Context, a alert.Alert) error {
	body, err := json.Marshal(webhookPayload{
		Content:  a.Message(),
		Username: w.username,
	})
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, w.url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return nil
}
