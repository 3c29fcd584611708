// Package alertmanager talks to the Prometheus Alertmanager v2 API.
package alertmanager

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"opsworker/internal/adapters/out/httpclient"
	"opsworker/internal/core/domain/model/alert"
	"opsworker/internal/core/ports"
)

const api = "alertmanager"

var (
	_ ports.AlertSource      = (*Client)(nil)
	_ ports.SilenceSubmitter = (*Client)(nil)
)

// Client reads alert groups from groupsURL and posts silences to silencesURL.
type Client struct {
	groupsURL   string
	silencesURL string
	client      *http.Client
}

// NewClient creates a Client. A nil client uses httpclient.New.
func NewClient(groupsURL, silencesURL string, client *http.Client) *Client {
	if client == nil {
		client = httpclient.New()
	}
	return &Client{groupsURL: groupsURL, silencesURL: silencesURL, client: client}
}

type alertDTO struct {
	StartsAt time.Time         `json:"startsAt"`
	Labels   map[string]string `json:"labels"`
}

type groupDTO struct {
	Alerts []alertDTO `json:"alerts"`
}

// FetchAlerts returns the alerts of the first alert group. The groups URL is
// expected to be filtered down to the mass-incident receiver.
func (c *Client) FetchAlerts(ctx context.Context) ([]alert.Alert, error) {
	req, err := httpclient.NewJSONRequest(ctx, http.MethodGet, c.groupsURL, nil)
	if err != nil {
		return nil, err
	}

	var groups []groupDTO
	if err := httpclient.Do(c.client, api, req, &groups); err != nil {
		return nil, fmt.Errorf("fetch alert groups: %w", err)
	}
	if len(groups) == 0 {
		return nil, nil
	}

	alerts := make([]alert.Alert, 0, len(groups[0].Alerts))
	for _, a := range groups[0].Alerts {
		alerts = append(alerts, alert.Alert{StartsAt: a.StartsAt, Labels: a.Labels})
	}
	return alerts, nil
}

type silenceResponse struct {
	SilenceID string `json:"silenceID"`
}

// CreateSilence posts s and returns the id Alertmanager assigned to it.
func (c *Client) CreateSilence(ctx context.Context, s alert.Silence) (string, error) {
	req, err := httpclient.NewJSONRequest(ctx, http.MethodPost, c.silencesURL, s)
	if err != nil {
		return "", err
	}

	var resp silenceResponse
	if err := httpclient.Do(c.client, api, req, &resp); err != nil {
		return "", fmt.Errorf("create silence: %w", err)
	}
	return resp.SilenceID, nil
}
