package internal

import (
	"errors"
	"strings"
	"testing"
)

func TestSnapshotError(t *testing.T) {
	cause := errors.New("disk full")
	err := &SnapshotError{Backend: "json", Op: "save", Err: cause}

	if !strings.Contains(err.Error(), "json") || !strings.Contains(err.Error(), "save") {
		t.Errorf("Error() = %q, want backend and op included", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestAgentError(t *testing.T) {
	tests := []struct {
		name string
		err  *AgentError
		want string
	}{
		{
			name: "upstream status",
			err:  &AgentError{Status: 502, StatusText: "Bad Gateway"},
			want: "upstream status 502 Bad Gateway",
		},
		{
			name: "transport failure",
			err:  &AgentError{Err: errors.New("connection refused")},
			want: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.err.Error(), tt.want) {
				t.Errorf("Error() = %q, want substring %q", tt.err.Error(), tt.want)
			}
		})
	}
}

func TestExportError(t *testing.T) {
	cause := errors.New("permission denied")
	err := &ExportError{Format: "jsonl", Path: "/tmp/out.jsonl", Err: cause}

	if !strings.Contains(err.Error(), "jsonl") || !strings.Contains(err.Error(), "/tmp/out.jsonl") {
		t.Errorf("Error() = %q, want format and path included", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}
