package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramSender_Send(t *testing.T) {
	var got telegramMessage
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sender := NewTelegramSender("bot-token", "chat-42")
	sender.baseURL = srv.URL

	err := sender.Send(context.Background(), "New order #7", "Customer: Jordan")
	require.NoError(t, err)

	assert.Equal(t, "/botbot-token/sendMessage", gotPath)
	assert.Equal(t, "chat-42", got.ChatID)
	assert.Equal(t, "New order #7\n\nCustomer: Jordan", got.Text)
}

func TestTelegramSender_SendAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	sender := NewTelegramSender("bad-token", "chat-42")
	sender.baseURL = srv.URL

	err := sender.Send(context.Background(), "subject", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
