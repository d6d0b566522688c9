// Package client is the dashboard's gateway to the studydash backend.
// Chat failures are returned as displayable text, not errors: the transcript
// shows whatever came back, and the caller never has to recover.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"studydash/backend/engine"
	"studydash/backend/models"
)

const DefaultServer = "http://localhost:8080"

type Gateway struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewGateway(baseURL string) *Gateway {
	if baseURL == "" {
		baseURL = DefaultServer
	}
	return &Gateway{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
	}
}

// Ask sends the prompt with the given mode and returns the text to display.
// On a successful reply it grants the fixed chat reward once; error payloads
// and transport failures come back as text and grant nothing. Overlapping
// calls race independently; nothing is coalesced or cancelled.
func (g *Gateway) Ask(ctx context.Context, prompt, mode string) string {
	body, err := json.Marshal(models.ChatRequest{Message: prompt, Mode: mode})
	if err != nil {
		return "Server request failed: " + err.Error()
	}

	resp, err := g.post(ctx, "/api/chat", body)
	if err != nil {
		return "Server request failed: " + err.Error()
	}
	defer resp.Body.Close()

	var chat models.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return "Server request failed: " + err.Error()
	}

	switch {
	case chat.Reply != "":
		// Best-effort reward; the reply is still shown if the grant fails.
		_, _ = g.GrantXP(ctx, engine.ChatRewardXP)
		return chat.Reply
	case chat.Error != "":
		return chat.Error
	default:
		return "No reply from server."
	}
}

// GetProgress fetches the current state with its derived fields.
func (g *Gateway) GetProgress(ctx context.Context) (models.ProgressView, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"/api/progress", nil)
	if err != nil {
		return models.ProgressView{}, err
	}
	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return models.ProgressView{}, err
	}
	defer resp.Body.Close()
	return decodeView(resp)
}

// UpdateProfile applies a partial profile edit.
func (g *Gateway) UpdateProfile(ctx context.Context, update models.UpdateProfileRequest) (models.ProgressView, error) {
	body, err := json.Marshal(update)
	if err != nil {
		return models.ProgressView{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, g.BaseURL+"/api/progress", bytes.NewReader(body))
	if err != nil {
		return models.ProgressView{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return models.ProgressView{}, err
	}
	defer resp.Body.Close()
	return decodeView(resp)
}

// ChapterDone marks one more chapter finished.
func (g *Gateway) ChapterDone(ctx context.Context) (models.ProgressView, error) {
	return g.postView(ctx, "/api/progress/chapter", nil)
}

// Boost bumps focus or discipline by the fixed step.
func (g *Gateway) Boost(ctx context.Context, field string) (models.ProgressView, error) {
	body, err := json.Marshal(models.BoostRequest{Field: field})
	if err != nil {
		return models.ProgressView{}, err
	}
	return g.postView(ctx, "/api/progress/boost", body)
}

// GrantXP adds XP into today's weekly bucket.
func (g *Gateway) GrantXP(ctx context.Context, amount int) (models.ProgressView, error) {
	body, err := json.Marshal(models.GrantXPRequest{Amount: amount})
	if err != nil {
		return models.ProgressView{}, err
	}
	return g.postView(ctx, "/api/progress/xp", body)
}

func (g *Gateway) post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return g.HTTPClient.Do(req)
}

func (g *Gateway) postView(ctx context.Context, path string, body []byte) (models.ProgressView, error) {
	resp, err := g.post(ctx, path, body)
	if err != nil {
		return models.ProgressView{}, err
	}
	defer resp.Body.Close()
	return decodeView(resp)
}

func decodeView(resp *http.Response) (models.ProgressView, error) {
	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return models.ProgressView{}, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(payload))
	}
	var view models.ProgressView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		return models.ProgressView{}, err
	}
	return view, nil
}
