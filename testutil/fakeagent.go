package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// InferenceCall records one request seen by the fake agent endpoint.
type InferenceCall struct {
	UserID    string `json:"user_id"`
	AgentID   string `json:"agent_id"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	APIKey    string `json:"-"`
}

// FakeAgent is an httptest stand-in for the hosted inference endpoint.
type FakeAgent struct {
	Server *httptest.Server
	Calls  []InferenceCall

	// Status and Body control the next response. Defaults: 200 with
	// {"answer": Answer}.
	Status int
	Body   string
	Answer string
}

// NewFakeAgent starts a fake inference endpoint that records calls and
// replies with the configured answer.
func NewFakeAgent(t *testing.T) *FakeAgent {
	t.Helper()
	fa := &FakeAgent{Status: http.StatusOK, Answer: "ok"}

	fa.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var call InferenceCall
		if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		call.APIKey = r.Header.Get("x-api-key")
		fa.Calls = append(fa.Calls, call)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(fa.Status)
		if fa.Body != "" {
			_, _ = w.Write([]byte(fa.Body))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"answer": fa.Answer})
	}))

	t.Cleanup(fa.Server.Close)
	return fa
}

// URL returns the fake endpoint URL.
func (fa *FakeAgent) URL() string {
	return fa.Server.URL
}

// LastCall returns the most recent recorded call, failing the test when the
// endpoint was never hit.
func (fa *FakeAgent) LastCall(t *testing.T) InferenceCall {
	t.Helper()
	if len(fa.Calls) == 0 {
		t.Fatal("fake agent was never called")
	}
	return fa.Calls[len(fa.Calls)-1]
}
