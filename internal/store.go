package internal

import (
	"context"
	"time"
)

// AgentCaller dispatches a chat turn to the hosted inference service and
// returns the assistant's reply text.
type AgentCaller interface {
	Send(ctx context.Context, sessionID, message string) (string, error)
}

// SessionStore owns the ordered session collection and the single active
// session. All mutation goes through its operations; every mutation is
// followed by a full-snapshot persist.
//
// The store is a single logical actor: callers are expected to serialize
// access, matching the one-interaction-at-a-time UI model it backs.
type SessionStore struct {
	sessions []*ChatSession
	active   *ChatSession
	snapshot SnapshotStore
	agent    AgentCaller
	pending  bool
}

// NewSessionStore creates a store over the given persistence port and agent
// caller, loading any previously persisted collection. A snapshot that fails
// to parse is discarded and the store starts empty; losing the collection
// beats refusing to start.
func NewSessionStore(snapshot SnapshotStore, agent AgentCaller) *SessionStore {
	store := &SessionStore{snapshot: snapshot, agent: agent}

	sessions, err := snapshot.Load()
	if err != nil {
		LogWarn("Failed to load persisted sessions, starting empty: %v", err)
		return store
	}

	store.sessions = sessions
	for _, sess := range sessions {
		if sess.IsActive {
			store.active = sess
			break
		}
	}

	return store
}

// Sessions returns the collection, newest-created first.
func (st *SessionStore) Sessions() []*ChatSession {
	return st.sessions
}

// Active returns the active session, or nil if none.
func (st *SessionStore) Active() *ChatSession {
	return st.active
}

// Pending reports whether an agent call is outstanding.
func (st *SessionStore) Pending() bool {
	return st.pending
}

// Find returns the session with the given id, or nil.
func (st *SessionStore) Find(id string) *ChatSession {
	for _, sess := range st.sessions {
		if sess.ID == id {
			return sess
		}
	}
	return nil
}

// CreateSession builds a new empty session, marks it active, demotes all
// other sessions, and prepends it to the collection.
func (st *SessionStore) CreateSession() *ChatSession {
	sess := NewChatSession()
	st.demoteAll()
	st.sessions = append([]*ChatSession{sess}, st.sessions...)
	st.active = sess
	st.persist()
	return sess
}

// SelectSession marks the session with the given id active and demotes all
// others. No-op if the id does not exist.
func (st *SessionStore) SelectSession(id string) *ChatSession {
	sess := st.Find(id)
	if sess == nil {
		return nil
	}
	st.demoteAll()
	sess.IsActive = true
	st.active = sess
	st.persist()
	return sess
}

// SendMessage appends a user message to the active session (creating one
// implicitly when none is active), persists, then dispatches the text to the
// agent. On success the assistant reply is appended and persisted. On any
// failure the session keeps its post-user-message state, the pending flag is
// cleared, and the error comes back as a value; nothing is retried.
func (st *SessionStore) SendMessage(ctx context.Context, text string) (*ChatSession, error) {
	if IsBlank(text) {
		return st.active, nil
	}

	sess := st.active
	if sess == nil {
		sess = NewChatSession()
		sess.Title = DeriveTitle(text)
		st.demoteAll()
		st.sessions = append([]*ChatSession{sess}, st.sessions...)
		st.active = sess
	}

	firstMessage := len(sess.Messages) == 0
	sess.Messages = append(sess.Messages, NewMessage(RoleUser, text))
	sess.LastModified = time.Now()
	if firstMessage {
		sess.Title = DeriveTitle(text)
	}
	st.persist()

	st.pending = true
	targetID := sess.ID
	reply, err := st.agent.Send(ctx, targetID, text)
	st.pending = false
	if err != nil {
		return sess, err
	}

	// The user may have deleted the target session while the call was in
	// flight; a reply for a session that no longer exists is dropped.
	target := st.Find(targetID)
	if target == nil {
		LogDebug("Dropping agent reply for deleted session %s", targetID)
		return nil, nil
	}

	target.Messages = append(target.Messages, NewMessage(RoleAssistant, reply))
	target.LastModified = time.Now()
	st.persist()

	return target, nil
}

// RenameSession updates the title of the matching session. Blank titles and
// unknown ids are no-ops.
func (st *SessionStore) RenameSession(id, newTitle string) {
	if IsBlank(newTitle) {
		return
	}
	sess := st.Find(id)
	if sess == nil {
		return
	}
	sess.Title = newTitle
	sess.LastModified = time.Now()
	st.persist()
}

// DeleteSession removes the matching session from the collection. Deleting
// the active session clears the active reference.
func (st *SessionStore) DeleteSession(id string) {
	for i, sess := range st.sessions {
		if sess.ID != id {
			continue
		}
		st.sessions = append(st.sessions[:i], st.sessions[i+1:]...)
		if st.active != nil && st.active.ID == id {
			st.active = nil
		}
		st.persist()
		return
	}
}

func (st *SessionStore) demoteAll() {
	for _, sess := range st.sessions {
		sess.IsActive = false
	}
}

// persist writes the whole collection whenever it is non-empty. A failed
// write is logged and otherwise ignored; the in-memory state stays
// authoritative for the rest of the run.
func (st *SessionStore) persist() {
	if len(st.sessions) == 0 {
		return
	}
	if err := st.snapshot.Save(st.sessions); err != nil {
		LogError("Failed to persist sessions: %v", err)
	}
}
