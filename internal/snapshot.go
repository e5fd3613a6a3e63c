package internal

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// SnapshotStore persists the whole session collection. Every save is a full
// overwrite of the previous snapshot; there is no incremental diff and no
// guarantee against partial writes beyond what the backing medium gives.
type SnapshotStore interface {
	// Load reads the persisted collection. A missing snapshot is not an
	// error; it yields an empty collection.
	Load() ([]*ChatSession, error)
	// Save overwrites the persisted collection.
	Save(sessions []*ChatSession) error
}

// JSONSnapshotStore keeps the session collection in a single JSON file.
type JSONSnapshotStore struct {
	path string
}

// NewJSONSnapshotStore creates a JSON-file snapshot store at path.
func NewJSONSnapshotStore(path string) *JSONSnapshotStore {
	return &JSONSnapshotStore{path: path}
}

// Path returns the snapshot file path.
func (s *JSONSnapshotStore) Path() string {
	return s.path
}

// Load reads the snapshot file and decodes the session collection.
func (s *JSONSnapshotStore) Load() ([]*ChatSession, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &SnapshotError{Backend: "json", Op: "load", Err: err}
	}

	var sessions []*ChatSession
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, &SnapshotError{Backend: "json", Op: "load", Err: err}
	}

	return sessions, nil
}

// Save serializes the collection and overwrites the snapshot file.
func (s *JSONSnapshotStore) Save(sessions []*ChatSession) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return &SnapshotError{Backend: "json", Op: "save", Err: err}
	}

	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return &SnapshotError{Backend: "json", Op: "save", Err: err}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return &SnapshotError{Backend: "json", Op: "save", Err: err}
	}

	return nil
}
