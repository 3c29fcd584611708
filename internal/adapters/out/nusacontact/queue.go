package nusacontact

import (
	"context"
	"errors"
	"io"
	"net/http"

	"opsworker/internal/adapters/out/httpclient"
	"opsworker/internal/core/domain/model/contact"
	"opsworker/internal/core/ports"

	"github.com/prometheus/common/expfmt"
)

// waitingMetric has one sample per conversation waiting in the inbox.
const waitingMetric = "inbox_waiting_start_time"

var _ ports.SupportQueue = (*Client)(nil)

// FetchWaiting scrapes the inbox metrics endpoint and returns the samples of
// the waiting-time metric. An exposition without that metric yields none.
func (c *Client) FetchWaiting(ctx context.Context) ([]contact.Waiting, error) {
	if c.cfg.MetricsURL == "" {
		return nil, errors.New("nusacontact metrics url is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.MetricsURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", c.cfg.APIKey)

	var waiting []contact.Waiting
	err = httpclient.Read(c.client, api, req, func(body io.Reader) error {
		var parser expfmt.TextParser
		families, err := parser.TextToMetricFamilies(body)
		if err != nil {
			return err
		}

		family, ok := families[waitingMetric]
		if !ok {
			return nil
		}
		for _, m := range family.GetMetric() {
			var w contact.Waiting
			for _, label := range m.GetLabel() {
				switch label.GetName() {
				case "type":
					w.Type = label.GetValue()
				case "tags":
					w.Tags = label.GetValue()
				}
			}
			waiting = append(waiting, w)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return waiting, nil
}
