package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rileyhilliard/moonwatch/internal/errors"
	"github.com/rileyhilliard/moonwatch/internal/logger"
)

const (
	defaultTelegramBaseURL = "https://api.telegram.org"
	deliverTimeout         = 10 * time.Second
)

// Telegram delivers reports to a Telegram chat via the Bot API.
// Transient connection errors are retried at the HTTP layer within one
// delivery attempt; a failed delivery is never re-queued.
type Telegram struct {
	token   string
	chatID  string
	baseURL string
	client  *retryablehttp.Client
	log     logger.Logger
}

// TelegramOption customizes a Telegram notifier.
type TelegramOption func(*Telegram)

// WithBaseURL overrides the Bot API endpoint (used in tests).
func WithBaseURL(url string) TelegramOption {
	return func(t *Telegram) { t.baseURL = url }
}

// WithLogger sets the logger for delivery diagnostics.
func WithLogger(log logger.Logger) TelegramOption {
	return func(t *Telegram) { t.log = log }
}

// NewTelegram creates a Telegram notifier for the given bot token and chat.
func NewTelegram(token, chatID string, opts ...TelegramOption) *Telegram {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.Logger = nil // Disable retryablehttp logging
	client.HTTPClient.Timeout = deliverTimeout

	t := &Telegram{
		token:   token,
		chatID:  chatID,
		baseURL: defaultTelegramBaseURL,
		client:  client,
		log:     logger.Noop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// sendMessageRequest is the Bot API sendMessage payload.
type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// apiResponse is the envelope every Bot API call returns.
type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Deliver sends the text to the configured chat as a Markdown message.
func (t *Telegram) Deliver(ctx context.Context, text string) error {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    t.chatID,
		Text:      text,
		ParseMode: "Markdown",
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrNotify,
			"Failed to encode Telegram message", "")
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrNotify,
			"Failed to build Telegram request", "")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrNotify,
			"Couldn't reach the Telegram API",
			"Check network connectivity from the monitor host")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrNotify,
			"Failed to read Telegram response", "")
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return errors.New(errors.ErrNotify,
			fmt.Sprintf("Unexpected Telegram response (HTTP %d)", resp.StatusCode),
			"The Bot API may be unavailable")
	}

	if !apiResp.OK {
		return errors.New(errors.ErrNotify,
			fmt.Sprintf("Telegram rejected the message: %s", apiResp.Description),
			"Verify the bot token and chat id, and that the bot is in the chat")
	}

	t.log.Debug("telegram message delivered (%d bytes)", len(text))
	return nil
}
