package internal

import "fmt"

// SnapshotError represents errors reading or writing persisted session state
type SnapshotError struct {
	Backend string // "json", "sqlite"
	Op      string // "load", "save", "open"
	Err     error
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("snapshot error: %s %s: %v", e.Backend, e.Op, e.Err)
}

func (e *SnapshotError) Unwrap() error {
	return e.Err
}

// AgentError represents a failed call to the hosted inference service
type AgentError struct {
	Status     int    // HTTP status from the upstream, 0 for transport errors
	StatusText string // upstream status text, if any
	Err        error
}

func (e *AgentError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("agent error: upstream status %d %s", e.Status, e.StatusText)
	}
	return fmt.Sprintf("agent error: %v", e.Err)
}

func (e *AgentError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
