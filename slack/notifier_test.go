package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_PostsChannelAndText(t *testing.T) {
	var received message
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	notifier := NewNotifier(server.URL, server.Client())
	err := notifier.Notify(context.Background(), "#staging-updates", "Build 7 for develop")

	require.NoError(t, err)
	assert.Equal(t, "#staging-updates", received.Channel)
	assert.Equal(t, "Build 7 for develop", received.Text)
}

func TestNotify_ErrorStatusBecomesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("channel_not_found"))
	}))
	defer server.Close()

	notifier := NewNotifier(server.URL, server.Client())
	err := notifier.Notify(context.Background(), "#nope", "hello")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "channel_not_found", apiErr.Message)
	assert.Equal(t, http.StatusNotFound, apiErr.Code)
}

func TestNotify_UnreachableEndpoint(t *testing.T) {
	notifier := NewNotifier("http://127.0.0.1:0", http.DefaultClient)
	err := notifier.Notify(context.Background(), "#x", "hello")

	assert.Error(t, err)
}
