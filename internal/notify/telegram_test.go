package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rileyhilliard/moonwatch/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramDeliver(t *testing.T) {
	var gotPath string
	var gotBody sendMessageRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	n := NewTelegram("123456:ABC", "-100777", WithBaseURL(srv.URL))

	err := n.Deliver(context.Background(), "📈 *Panel Monitoring - Live Status*")
	require.NoError(t, err)

	assert.Equal(t, "/bot123456:ABC/sendMessage", gotPath)
	assert.Equal(t, "-100777", gotBody.ChatID)
	assert.Equal(t, "Markdown", gotBody.ParseMode)
	assert.Contains(t, gotBody.Text, "Live Status")
}

func TestTelegramDeliverRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	n := NewTelegram("123456:ABC", "wrong", WithBaseURL(srv.URL))

	err := n.Deliver(context.Background(), "report")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrNotify))
	assert.Contains(t, err.Error(), "chat not found")
}

func TestTelegramDeliverRetriesTransientFailures(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	n := NewTelegram("tok", "chat", WithBaseURL(srv.URL))

	err := n.Deliver(context.Background(), "report")
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestTelegramDeliverUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately unreachable

	n := NewTelegram("tok", "chat", WithBaseURL(srv.URL))

	err := n.Deliver(context.Background(), "report")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrNotify))
}

func TestNotifierFunc(t *testing.T) {
	var got string
	n := Func(func(_ context.Context, text string) error {
		got = text
		return nil
	})

	require.NoError(t, n.Deliver(context.Background(), "hello"))
	assert.Equal(t, "hello", got)
}
