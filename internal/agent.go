package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultAgentEndpoint is the hosted Lyzr inference endpoint.
const DefaultAgentEndpoint = "https://agent-prod.studio.lyzr.ai/v3/inference/chat/"

// ErrMissingAPIKey is returned when no API key is configured for the agent.
var ErrMissingAPIKey = errors.New("agent: api key is required")

// AgentClient calls the hosted inference service over HTTP.
type AgentClient struct {
	apiKey     string
	endpoint   string
	agentID    string
	userID     string
	httpClient *http.Client
}

// AgentOption configures an AgentClient.
type AgentOption func(*AgentClient)

// WithEndpoint overrides the inference endpoint.
func WithEndpoint(endpoint string) AgentOption {
	return func(c *AgentClient) {
		if strings.TrimSpace(endpoint) != "" {
			c.endpoint = endpoint
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) AgentOption {
	return func(c *AgentClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewAgentClient creates a client for the given agent and user identity.
func NewAgentClient(apiKey, agentID, userID string, opts ...AgentOption) (*AgentClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	c := &AgentClient{
		apiKey:   apiKey,
		endpoint: DefaultAgentEndpoint,
		agentID:  agentID,
		userID:   userID,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// inferenceRequest is the upstream wire format.
type inferenceRequest struct {
	UserID    string `json:"user_id"`
	AgentID   string `json:"agent_id"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// Send posts one chat turn and returns the assistant's reply text. The reply
// is taken from the upstream JSON's "answer" field, falling back to "text",
// falling back to the raw body when neither is present.
func (c *AgentClient) Send(ctx context.Context, sessionID, message string) (string, error) {
	resp, err := c.post(ctx, sessionID, message)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &AgentError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &AgentError{Status: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode)}
	}

	return ReplyText(body), nil
}

// post sends the raw inference request and returns the HTTP response.
// Callers own the response body.
func (c *AgentClient) post(ctx context.Context, sessionID, message string) (*http.Response, error) {
	payload := inferenceRequest{
		UserID:    c.userID,
		AgentID:   c.agentID,
		SessionID: sessionID,
		Message:   message,
	}
	rawBody, err := json.Marshal(payload)
	if err != nil {
		return nil, &AgentError{Err: fmt.Errorf("encode request: %w", err)}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(rawBody))
	if err != nil {
		return nil, &AgentError{Err: fmt.Errorf("create request: %w", err)}
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("x-api-key", c.apiKey)

	LogDebug("Calling agent %s for session %s", c.agentID, sessionID)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, &AgentError{Err: fmt.Errorf("send request: %w", err)}
	}

	return response, nil
}

// ReplyText extracts the assistant reply from an upstream response body:
// "answer" field, else "text" field, else the body itself as a string.
func ReplyText(body []byte) string {
	var parsed struct {
		Answer string `json:"answer"`
		Text   string `json:"text"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Answer != "" {
			return parsed.Answer
		}
		if parsed.Text != "" {
			return parsed.Text
		}
	}
	return string(body)
}
