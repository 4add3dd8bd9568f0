// Package slack delivers notifications through a Slack-compatible incoming
// webhook.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// message is the incoming-webhook payload.
type message struct {
	// Channel overrides the webhook's default channel
	Channel string `json:"channel,omitempty"`

	// Text the message body
	Text string `json:"text"`
}

// Notifier Posts messages to a Slack incoming webhook
type Notifier struct {
	webhookURL string
	client     *http.Client
}

// NewNotifier Constructor
func NewNotifier(webhookURL string, client *http.Client) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		client:     client,
	}
}

// Notify Implementation
func (n *Notifier) Notify(ctx context.Context, channel, text string) error {
	body, err := json.Marshal(message{Channel: channel, Text: text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("unable to create notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	zerolog.Ctx(ctx).Info().Str("channel", channel).Msg("Posting notification to Slack webhook")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode >= 400 {
		return unmarshalError(resp)
	}

	_, err = readBody(resp)
	return err
}

func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("invalid response: %w", err)
	}

	return body, nil
}

func unmarshalError(resp *http.Response) error {
	body, err := readBody(resp)
	if err != nil {
		return err
	}

	// Incoming webhooks answer errors with a short plain-text body.
	res := &APIError{Message: strings.TrimSpace(string(body))}
	if res.Message == "" {
		res.Message = resp.Status
	}
	res.Code = resp.StatusCode
	return res
}
