package mailer

import (
	"circle/internal/api/config"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setupMailConfig(apiURL string, enabled bool) {
	config.Cfg = &config.Config{
		Mail: config.MailConfig{
			APIURL:  apiURL,
			APIKey:  "testkey",
			From:    "Circle <noreply@circle.app>",
			Enabled: enabled,
		},
	}
}

func TestSend_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer testkey", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	setupMailConfig(srv.URL, true)

	err := NewMailer().Send(context.Background(), "adam@example.org", "hello", "<p>hi</p>")

	assert.NoError(t, err)
}

func TestSend_FailureIsAttemptedOnce(t *testing.T) {
	var attempts int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&attempts, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	setupMailConfig(srv.URL, true)

	err := NewMailer().Send(context.Background(), "adam@example.org", "hello", "<p>hi</p>")

	assert.Error(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(&attempts))
}

func TestSend_DisabledIsNoop(t *testing.T) {
	setupMailConfig("http://localhost:1", false)

	err := NewMailer().Send(context.Background(), "adam@example.org", "hello", "<p>hi</p>")

	assert.NoError(t, err)
}
