// Package whatsapp sends text messages through the WhatsApp gateway.
package whatsapp

import (
	"context"
	"net/http"

	"opsworker/internal/adapters/out/httpclient"
	"opsworker/internal/core/ports"
)

var _ ports.Notifier = (*Notifier)(nil)

// Notifier posts messages to the gateway's send endpoint.
type Notifier struct {
	url    string
	apiKey string
	client *http.Client
}

type message struct {
	To   string `json:"to"`
	Type string `json:"type"`
	Msg  string `json:"msg"`
}

// NewNotifier creates a Notifier. A nil client uses httpclient.New.
func NewNotifier(url, apiKey string, client *http.Client) *Notifier {
	if client == nil {
		client = httpclient.New()
	}
	return &Notifier{url: url, apiKey: apiKey, client: client}
}

// Send delivers msg to the phone number or group id to.
func (n *Notifier) Send(ctx context.Context, to, msg string) error {
	req, err := httpclient.NewJSONRequest(ctx, http.MethodPost, n.url, message{To: to, Type: "text", Msg: msg})
	if err != nil {
		return err
	}
	req.Header.Set("X-Api-Key", n.apiKey)

	return httpclient.Do(n.client, "whatsapp", req, nil)
}
