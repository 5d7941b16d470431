package notify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNtfyNotifierSuccess(t *testing.T) {
	var gotBody, gotTitle string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotTitle = r.Header.Get("Title")
	}))
	defer server.Close()

	n := NewNtfyNotifier(server.URL, "New Tacticus Code!", 5*time.Second, zap.NewNop())

	assert.True(t, n.Notify(context.Background(), "WARHAMMER40K"))
	assert.Equal(t, "WARHAMMER40K", gotBody)
	assert.Equal(t, "New Tacticus Code!", gotTitle)
}

func TestNtfyNotifierErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	n := NewNtfyNotifier(server.URL, "title", 5*time.Second, zap.NewNop())
	assert.False(t, n.Notify(context.Background(), "WARHAMMER40K"))
}

func TestNtfyNotifierUnreachable(t *testing.T) {
	n := NewNtfyNotifier("http://127.0.0.1:1", "title", time.Second, zap.NewNop())
	assert.False(t, n.Notify(context.Background(), "WARHAMMER40K"))
}

func TestNtfyNotifierSchemePrefix(t *testing.T) {
	n := NewNtfyNotifier("ntfy.sh/topic", "title", time.Second, zap.NewNop())
	assert.Equal(t, "https://ntfy.sh/topic", n.topicURL)
}
