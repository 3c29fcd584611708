package alertmanager_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"opsworker/internal/adapters/out/alertmanager"
	"opsworker/internal/core/domain/model/alert"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchAlerts(t *testing.T) {
	t.Run("should return the first group's alerts", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[
				{"alerts":[{"startsAt":"2024-05-14T05:00:00.000Z","labels":{"host":"ont-1","link":"olt-a","region":"medan"}}]},
				{"alerts":[{"startsAt":"2024-05-14T06:00:00.000Z","labels":{"host":"ont-9"}}]}
			]`))
		}))
		defer srv.Close()

		alerts, err := alertmanager.NewClient(srv.URL, "", srv.Client()).FetchAlerts(t.Context())

		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.True(t, time.Date(2024, 5, 14, 5, 0, 0, 0, time.UTC).Equal(alerts[0].StartsAt))
		assert.Equal(t, "ont-1", alerts[0].Host())
		assert.Equal(t, "olt-a", alerts[0].Link())
		assert.Equal(t, "medan", alerts[0].Region())
	})

	t.Run("should return nothing when there are no groups", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		alerts, err := alertmanager.NewClient(srv.URL, "", srv.Client()).FetchAlerts(t.Context())

		require.NoError(t, err)
		assert.Empty(t, alerts)
	})
}

func TestClient_CreateSilence(t *testing.T) {
	t.Run("should post the silence and return its id", func(t *testing.T) {
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"silenceID":"abc-123"}`))
		}))
		defer srv.Close()

		s := alert.Silence{
			Matchers:  []alert.Matcher{{Name: "host", Value: "ont-1"}},
			StartsAt:  time.Date(2024, 5, 14, 5, 0, 0, 0, time.UTC),
			EndsAt:    time.Date(2024, 5, 14, 6, 0, 0, 0, time.UTC),
			CreatedBy: "62811",
			Comment:   "maintenance",
		}
		id, err := alertmanager.NewClient("", srv.URL, srv.Client()).CreateSilence(t.Context(), s)

		require.NoError(t, err)
		assert.Equal(t, "abc-123", id)
		assert.Equal(t, "62811", got["createdBy"])
		assert.Equal(t, "maintenance", got["comment"])
		assert.Equal(t, "2024-05-14T06:00:00Z", got["endsAt"])
		assert.Equal(t, []any{map[string]any{"name": "host", "value": "ont-1", "isRegex": false}}, got["matchers"])
	})

	t.Run("should surface a rejected silence", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "bad matcher", http.StatusBadRequest)
		}))
		defer srv.Close()

		_, err := alertmanager.NewClient("", srv.URL, srv.Client()).CreateSilence(t.Context(), alert.Silence{})
		assert.ErrorContains(t, err, "bad matcher")
	})
}
