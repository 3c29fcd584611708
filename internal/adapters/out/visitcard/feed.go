// Package visitcard reads the live field-visit summary.
package visitcard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"opsworker/internal/adapters/out/httpclient"
	"opsworker/internal/core/domain/model/engineer"
	"opsworker/internal/core/domain/model/fieldtrack"
	"opsworker/internal/core/domain/model/ticket"
	"opsworker/internal/core/ports"
)

const api = "visitcard"

var _ ports.FieldTrackingFeed = (*Feed)(nil)

// Feed is the visit-card summary client.
type Feed struct {
	url    string
	token  string
	client *http.Client
}

// NewFeed creates a Feed. A nil client uses httpclient.New.
func NewFeed(summaryURL, token string, client *http.Client) *Feed {
	if client == nil {
		client = httpclient.New()
	}
	return &Feed{url: summaryURL, token: token, client: client}
}

// number accepts JSON numbers and numeric strings.
type number int64

var _ json.Unmarshaler = (*number)(nil)

func (n *number) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("visitcard: %q is not a number", data)
	}
	*n = number(v)
	return nil
}

func (n number) millis() time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.UnixMilli(int64(n))
}

type summaryItem struct {
	ID             number `json:"id"`
	VisitCardID    number `json:"ca_id"`
	LastUpdateTime number `json:"last_update_time"`
	Detail         struct {
		Status string `json:"status"`
		Time   number `json:"time"`
	} `json:"status_ticket_detail"`
}

type summaryResponse struct {
	Embedded []summaryItem `json:"_embedded"`
}

// FetchFieldTrackingSnapshot returns the current record of every field user.
// A status the field app adds later maps to fieldtrack.LiveUnknown.
func (f *Feed) FetchFieldTrackingSnapshot(ctx context.Context) ([]fieldtrack.State, error) {
	endpoint, err := url.Parse(f.url)
	if err != nil {
		return nil, fmt.Errorf("summary url: %w", err)
	}
	params := endpoint.Query()
	params.Set("status", "0,1,2,3")
	params.Set("row", "all")
	endpoint.RawQuery = params.Encode()

	req, err := httpclient.NewJSONRequest(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+f.token)

	var resp summaryResponse
	if err := httpclient.Do(f.client, api, req, &resp); err != nil {
		return nil, fmt.Errorf("fetch summary: %w", err)
	}

	states := make([]fieldtrack.State, 0, len(resp.Embedded))
	for _, item := range resp.Embedded {
		status, _ := fieldtrack.ParseLiveStatus(item.Detail.Status)
		states = append(states, fieldtrack.State{
			UserID:       engineer.VisitCardUserID(item.ID),
			VisitCardID:  ticket.VisitCardID(item.VisitCardID),
			Status:       status,
			LastUpdateAt: item.LastUpdateTime.millis(),
			LastActionAt: item.Detail.Time.millis(),
		})
	}
	return states, nil
}
