package models

// ChatRequest is the canonical proxy request body.
type ChatRequest struct {
	Message string `json:"message"`
	Mode    string `json:"mode"`
}

// AskRequest is the legacy alias body. Unlike ChatRequest, an empty prompt
// is rejected with a 400.
type AskRequest struct {
	Prompt string `json:"prompt"`
	Mode   string `json:"mode"`
}

// ChatResponse is the proxy reply envelope. Exactly one of Reply/Error is
// set; the client treats both as displayable text.
type ChatResponse struct {
	Reply string `json:"reply,omitempty"`
	Error string `json:"error,omitempty"`
}
