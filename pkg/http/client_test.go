package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		cfg := &HTTPClientConfig{URL: "https://hooks.example.com/T000/B000"}

		client, err := NewHTTPClient(cfg, "test")

		require.NoError(t, err)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
		assert.Equal(t, 3, cfg.RetryCount)
		assert.Equal(t, cfg.URL, client.URL())
	})

	t.Run("should validate config", func(t *testing.T) {
		_, err := NewHTTPClient(&HTTPClientConfig{URL: "not a url"}, "test")
		assert.Error(t, err)

		_, err = NewHTTPClient(&HTTPClientConfig{
			URL:  "https://hooks.example.com",
			Auth: &HTTPAuthConfig{Type: "bearer"},
		}, "test")
		assert.Error(t, err)
	})
}

func TestHTTPClient_PostJSON(t *testing.T) {
	t.Run("should send headers, auth and body", func(t *testing.T) {
		var received *http.Request
		var receivedBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			received = r
			b, _ := io.ReadAll(r.Body)
			receivedBody = string(b)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client, err := NewHTTPClient(&HTTPClientConfig{
			URL:     server.URL,
			Headers: map[string]string{"X-Source": "engagement"},
			Auth: &HTTPAuthConfig{
				Type:  "api_key",
				In:    "query",
				Key:   "token",
				Value: "secret",
			},
		}, "test")
		require.NoError(t, err)

		err = client.PostJSON(context.Background(), []byte(`{"text":"hello"}`))

		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, received.Method)
		assert.Equal(t, "application/json", received.Header.Get("Content-Type"))
		assert.Equal(t, "engagement", received.Header.Get("X-Source"))
		assert.Equal(t, "secret", received.URL.Query().Get("token"))
		assert.Equal(t, `{"text":"hello"}`, receivedBody)
	})

	t.Run("should fail on client errors without retrying", func(t *testing.T) {
		attempts := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client, err := NewHTTPClient(&HTTPClientConfig{
			URL:  server.URL,
			Auth: &HTTPAuthConfig{Type: "bearer", Token: "t"},
		}, "test")
		require.NoError(t, err)

		err = client.PostJSON(context.Background(), []byte(`{}`))

		assert.ErrorContains(t, err, "unexpected response status 400")
		assert.Equal(t, 1, attempts)
	})
}
