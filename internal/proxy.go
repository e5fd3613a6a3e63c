package internal

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// ChatRequest is the inbound proxy body. All four fields are required.
type ChatRequest struct {
	UserID    string `json:"userId"`
	AgentID   string `json:"agentId"`
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

// ChatResponse is the successful proxy reply.
type ChatResponse struct {
	AgentMessage string `json:"agentMessage"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Proxy forwards chat turns from the UI to the hosted inference service.
// It validates the inbound body, attaches the server-held API key, and
// passes upstream failures through with their original status. No retry,
// no rate limiting.
type Proxy struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewProxy creates a proxy for the given upstream endpoint. An empty apiKey
// is allowed at construction; requests will fail with a configuration error
// until one is set, mirroring an operator-fixable deployment mistake.
func NewProxy(apiKey, endpoint string) *Proxy {
	if endpoint == "" {
		endpoint = DefaultAgentEndpoint
	}
	return &Proxy{
		apiKey:   apiKey,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Handler returns the HTTP handler for the proxy routes.
func (p *Proxy) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", p.handleChat)
	return mux
}

func (p *Proxy) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		LogError("Failed to decode chat request body: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if req.UserID == "" || req.AgentID == "" || req.SessionID == "" || req.Message == "" {
		LogError("Missing required parameters in chat request body")
		writeError(w, http.StatusBadRequest, "Missing required parameters")
		return
	}

	if p.apiKey == "" {
		LogError("Lyzr API key is not configured")
		writeError(w, http.StatusInternalServerError, "Lyzr API key not configured")
		return
	}

	upstream := inferenceRequest{
		UserID:    req.UserID,
		AgentID:   req.AgentID,
		SessionID: req.SessionID,
		Message:   req.Message,
	}
	rawBody, err := json.Marshal(upstream)
	if err != nil {
		LogError("Failed to encode upstream request: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	LogDebug("Forwarding chat turn for agent %s, session %s", req.AgentID, req.SessionID)

	request, err := http.NewRequestWithContext(r.Context(), http.MethodPost, p.endpoint, bytes.NewReader(rawBody))
	if err != nil {
		LogError("Failed to create upstream request: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("x-api-key", p.apiKey)

	response, err := p.httpClient.Do(request)
	if err != nil {
		LogError("Upstream call failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		LogError("Failed to read upstream response: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		statusText := http.StatusText(response.StatusCode)
		LogError("Upstream returned %d %s", response.StatusCode, statusText)
		writeError(w, response.StatusCode, "Error from Lyzr API: "+statusText)
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{AgentMessage: ReplyText(body)})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		LogError("Failed to encode response: %v", err)
	}
}
