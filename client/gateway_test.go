package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydash/backend/models"
)

// fakeBackend emulates the proxy plus the XP endpoint and counts grants.
type fakeBackend struct {
	chatStatus int
	chatBody   models.ChatResponse
	xpGrants   []int
}

func (f *fakeBackend) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(f.chatStatus)
		_ = json.NewEncoder(w).Encode(f.chatBody)
	})
	mux.HandleFunc("/api/progress/xp", func(w http.ResponseWriter, r *http.Request) {
		var req models.GrantXPRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		f.xpGrants = append(f.xpGrants, req.Amount)
		_ = json.NewEncoder(w).Encode(models.ProgressView{})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAskSuccessGrantsXPOnce(t *testing.T) {
	backend := &fakeBackend{
		chatStatus: http.StatusOK,
		chatBody:   models.ChatResponse{Reply: "Keep going! 💪"},
	}
	g := NewGateway(backend.server(t).URL)

	reply := g.Ask(context.Background(), "motivate me", "gym")

	assert.Equal(t, "Keep going! 💪", reply)
	assert.Equal(t, []int{10}, backend.xpGrants)
}

func TestAskErrorPayloadGrantsNothing(t *testing.T) {
	backend := &fakeBackend{
		chatStatus: http.StatusInternalServerError,
		chatBody:   models.ChatResponse{Error: "Server missing OPENAI_KEY"},
	}
	g := NewGateway(backend.server(t).URL)

	reply := g.Ask(context.Background(), "hello", "friend")

	assert.Equal(t, "Server missing OPENAI_KEY", reply)
	assert.Empty(t, backend.xpGrants)
}

func TestAskTransportFailureIsAValue(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	g := NewGateway(srv.URL)

	reply := g.Ask(context.Background(), "hello", "friend")

	assert.True(t, strings.HasPrefix(reply, "Server request failed: "), "got %q", reply)
}

func TestAskEmptyEnvelope(t *testing.T) {
	backend := &fakeBackend{
		chatStatus: http.StatusOK,
		chatBody:   models.ChatResponse{},
	}
	g := NewGateway(backend.server(t).URL)

	reply := g.Ask(context.Background(), "hello", "friend")

	assert.Equal(t, "No reply from server.", reply)
	assert.Empty(t, backend.xpGrants)
}

func TestGetProgressDecodesView(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/progress", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Aarav","doneChapters":5,"level":2,"badges":[{"name":"First Chapter","color":"#35ff9b"}]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	view, err := NewGateway(srv.URL).GetProgress(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Aarav", view.Name)
	assert.Equal(t, 5, view.DoneChapters)
	assert.Equal(t, 2, view.Level)
	require.Len(t, view.Badges, 1)
	assert.Equal(t, "First Chapter", view.Badges[0].Name)
}

func TestProgressErrorStatusSurfaces(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/progress/boost", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Unknown field: stamina"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	_, err := NewGateway(srv.URL).Boost(context.Background(), "stamina")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown field: stamina")
}
