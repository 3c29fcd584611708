package whatsapp_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"opsworker/internal/adapters/out/whatsapp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_Send(t *testing.T) {
	t.Run("should post a text message with the api key", func(t *testing.T) {
		var got map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		n := whatsapp.NewNotifier(srv.URL, "secret", srv.Client())
		require.NoError(t, n.Send(t.Context(), "62811", "hello"))

		assert.Equal(t, map[string]string{"to": "62811", "type": "text", "msg": "hello"}, got)
	})

	t.Run("should fail when the gateway rejects the message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		n := whatsapp.NewNotifier(srv.URL, "wrong", srv.Client())
		assert.ErrorContains(t, n.Send(t.Context(), "62811", "hello"), "whatsapp http error: 403")
	})
}
