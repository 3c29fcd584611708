// Package nusacontact pushes customer cards to the Nusacontact inbox and
// reads its waiting queues.
package nusacontact

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"opsworker/internal/adapters/out/httpclient"
	"opsworker/internal/core/domain/model/contact"
	"opsworker/internal/core/ports"

	"github.com/cenkalti/backoff/v4"
)

const api = "nusacontact"

// Defaults applied by NewClient to zero Config fields.
const (
	DefaultMaxAttempts = 8
	DefaultRetryDelay  = time.Second
)

var _ ports.ContactSync = (*Client)(nil)

// Config holds the sync endpoint and its retry policy, and the metrics
// endpoint of the inbox.
type Config struct {
	URL         string
	APIKey      string
	MaxAttempts int
	RetryDelay  time.Duration
	MetricsURL  string
}

// Client posts contacts to the sync endpoint.
//
// The inbox answers 4xx while a conversation for the phone is still being
// created, so client errors are retried up to MaxAttempts times, RetryDelay
// apart. Any other failure stops at once.
type Client struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

// NewClient creates a Client. A nil client uses httpclient.New.
func NewClient(cfg Config, client *http.Client, logger *slog.Logger) *Client {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	if client == nil {
		client = httpclient.New()
	}
	return &Client{cfg: cfg, client: client, logger: logger.With("component", "NusacontactClient")}
}

// Sync posts payload. It does nothing when no URL is configured.
func (c *Client) Sync(ctx context.Context, payload contact.SyncPayload) error {
	if c.cfg.URL == "" {
		c.logger.DebugContext(ctx, "sync url not configured, skipping", "phone", payload.PhoneNumber)
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.cfg.RetryDelay), uint64(c.cfg.MaxAttempts-1)),
		ctx,
	)

	attempt := 0
	operation := func() error {
		attempt++
		err := c.post(ctx, payload)
		if err == nil || httpclient.IsClientError(err) {
			return err
		}
		return backoff.Permanent(err)
	}
	notify := func(err error, wait time.Duration) {
		c.logger.WarnContext(ctx, "sync rejected, retrying",
			"phone", payload.PhoneNumber,
			"attempt", attempt,
			"wait", wait,
			"error", err)
	}

	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return err
	}
	c.logger.InfoContext(ctx, "contact synced", "phone", payload.PhoneNumber, "attempts", attempt)
	return nil
}

func (c *Client) post(ctx context.Context, payload contact.SyncPayload) error {
	req, err := httpclient.NewJSONRequest(ctx, http.MethodPost, c.cfg.URL, payload)
	if err != nil {
		return err
	}
	req.Header.Set("X-Api-Key", c.cfg.APIKey)
	return httpclient.Do(c.client, api, req, nil)
}
