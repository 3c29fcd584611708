package nusacontact_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"opsworker/internal/adapters/out/httpclient"
	"opsworker/internal/adapters/out/nusacontact"
	"opsworker/internal/core/domain/model/contact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var payload = contact.SyncPayload{
	PhoneNumber: "6281234567890",
	Name:        "Budi",
	Timezone:    "Asia/Jakarta",
	BranchCode:  "020",
	Attributes:  `{"ids":"C1"}`,
}

func newClient(url string, client *http.Client) *nusacontact.Client {
	cfg := nusacontact.Config{URL: url, APIKey: "key", MaxAttempts: 3, RetryDelay: time.Millisecond}
	return nusacontact.NewClient(cfg, client, slog.New(slog.DiscardHandler))
}

// serverReplying answers each request with the next status code and counts
// the calls.
func serverReplying(t *testing.T, calls *atomic.Int32, codes ...int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := int(calls.Add(1))
		assert.Equal(t, "key", r.Header.Get("X-Api-Key"))
		var got contact.SyncPayload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, payload, got)
		w.WriteHeader(codes[min(n, len(codes))-1])
	}))
}

func TestClient_Sync(t *testing.T) {
	t.Run("should post once when accepted", func(t *testing.T) {
		var calls atomic.Int32
		srv := serverReplying(t, &calls, http.StatusOK)
		defer srv.Close()

		require.NoError(t, newClient(srv.URL, srv.Client()).Sync(t.Context(), payload))
		assert.EqualValues(t, 1, calls.Load())
	})

	t.Run("should retry client errors until accepted", func(t *testing.T) {
		var calls atomic.Int32
		srv := serverReplying(t, &calls, http.StatusNotFound, http.StatusNotFound, http.StatusOK)
		defer srv.Close()

		require.NoError(t, newClient(srv.URL, srv.Client()).Sync(t.Context(), payload))
		assert.EqualValues(t, 3, calls.Load())
	})

	t.Run("should give up after the maximum attempts", func(t *testing.T) {
		var calls atomic.Int32
		srv := serverReplying(t, &calls, http.StatusNotFound)
		defer srv.Close()

		err := newClient(srv.URL, srv.Client()).Sync(t.Context(), payload)

		assert.True(t, httpclient.IsClientError(err))
		assert.EqualValues(t, 3, calls.Load())
	})

	t.Run("should stop at once on server errors", func(t *testing.T) {
		var calls atomic.Int32
		srv := serverReplying(t, &calls, http.StatusBadGateway, http.StatusOK)
		defer srv.Close()

		err := newClient(srv.URL, srv.Client()).Sync(t.Context(), payload)

		var statusErr *httpclient.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusBadGateway, statusErr.Code)
		assert.EqualValues(t, 1, calls.Load())
	})

	t.Run("should skip when no url is configured", func(t *testing.T) {
		assert.NoError(t, newClient("", nil).Sync(t.Context(), payload))
	})
}
