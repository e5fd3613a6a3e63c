package internal

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// memorySnapshot is an in-memory SnapshotStore that records saves.
type memorySnapshot struct {
	sessions  []*ChatSession
	loadErr   error
	saveErr   error
	saveCount int
}

func (m *memorySnapshot) Load() ([]*ChatSession, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.sessions, nil
}

func (m *memorySnapshot) Save(sessions []*ChatSession) error {
	m.saveCount++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sessions = sessions
	return nil
}

// scriptedAgent returns a fixed reply or error, and can run a hook while the
// call is "in flight" to simulate concurrent store mutation.
type scriptedAgent struct {
	reply  string
	err    error
	onSend func()
	calls  int
}

func (a *scriptedAgent) Send(ctx context.Context, sessionID, message string) (string, error) {
	a.calls++
	if a.onSend != nil {
		a.onSend()
	}
	if a.err != nil {
		return "", a.err
	}
	return a.reply, nil
}

func newTestStore(t *testing.T) (*SessionStore, *memorySnapshot, *scriptedAgent) {
	t.Helper()
	snapshot := &memorySnapshot{}
	agent := &scriptedAgent{reply: "Happy to help with cost planning."}
	return NewSessionStore(snapshot, agent), snapshot, agent
}

func TestNewSessionStoreRestoresActive(t *testing.T) {
	older := CreateTestSession("s-old")
	newer := CreateTestSession("s-new")
	newer.IsActive = true

	snapshot := &memorySnapshot{sessions: []*ChatSession{newer, older}}
	store := NewSessionStore(snapshot, &scriptedAgent{})

	if len(store.Sessions()) != 2 {
		t.Fatalf("Sessions() has %d entries, want 2", len(store.Sessions()))
	}
	if store.Active() == nil || store.Active().ID != "s-new" {
		t.Errorf("Active() = %v, want session s-new", store.Active())
	}
}

func TestNewSessionStoreStartsEmptyOnLoadError(t *testing.T) {
	snapshot := &memorySnapshot{loadErr: errors.New("corrupt snapshot")}
	store := NewSessionStore(snapshot, &scriptedAgent{})

	if len(store.Sessions()) != 0 {
		t.Errorf("Sessions() has %d entries, want 0 after load failure", len(store.Sessions()))
	}
	if store.Active() != nil {
		t.Errorf("Active() = %v, want nil", store.Active())
	}
}

func TestCreateSessionDemotesOthers(t *testing.T) {
	store, snapshot, _ := newTestStore(t)

	first := store.CreateSession()
	second := store.CreateSession()

	if first.IsActive {
		t.Error("first session should be demoted after creating the second")
	}
	if !second.IsActive {
		t.Error("second session should be active")
	}
	if store.Active() != second {
		t.Error("Active() should be the newest session")
	}
	if store.Sessions()[0] != second {
		t.Error("newest session should be first in the collection")
	}
	if snapshot.saveCount != 2 {
		t.Errorf("saveCount = %d, want 2 (one per creation)", snapshot.saveCount)
	}
}

func TestSelectSession(t *testing.T) {
	store, _, _ := newTestStore(t)
	first := store.CreateSession()
	store.CreateSession()

	got := store.SelectSession(first.ID)
	if got != first {
		t.Fatalf("SelectSession() = %v, want the first session", got)
	}
	if !first.IsActive || store.Active() != first {
		t.Error("selected session should be active")
	}

	active := 0
	for _, sess := range store.Sessions() {
		if sess.IsActive {
			active++
		}
	}
	if active != 1 {
		t.Errorf("%d sessions are active, want exactly 1", active)
	}

	if store.SelectSession("no-such-id") != nil {
		t.Error("SelectSession() with unknown id should return nil")
	}
	if store.Active() != first {
		t.Error("unknown id should not change the active session")
	}
}

func TestSendMessageAppendsExchange(t *testing.T) {
	store, snapshot, agent := newTestStore(t)

	sess, err := store.SendMessage(context.Background(), "What will AI cost us?")
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if sess == nil {
		t.Fatal("SendMessage() returned nil session")
	}

	// No session was active, so one is created implicitly and titled from
	// the first message.
	if store.Active() != sess {
		t.Error("implicit session should be active")
	}
	if sess.Title != "What will AI cost us?" {
		t.Errorf("Title = %q, want the message text", sess.Title)
	}

	if len(sess.Messages) != 2 {
		t.Fatalf("session has %d messages, want 2", len(sess.Messages))
	}
	if sess.Messages[0].Role != RoleUser || sess.Messages[0].Content != "What will AI cost us?" {
		t.Errorf("first message = %+v, want the user turn", sess.Messages[0])
	}
	if sess.Messages[1].Role != RoleAssistant || sess.Messages[1].Content != agent.reply {
		t.Errorf("second message = %+v, want the agent reply", sess.Messages[1])
	}

	if agent.calls != 1 {
		t.Errorf("agent called %d times, want 1", agent.calls)
	}
	if snapshot.saveCount != 2 {
		t.Errorf("saveCount = %d, want 2 (after user turn and after reply)", snapshot.saveCount)
	}
	if store.Pending() {
		t.Error("Pending() should be false after the call completes")
	}
}

func TestSendMessageBlankIsNoOp(t *testing.T) {
	store, snapshot, agent := newTestStore(t)

	for _, text := range []string{"", "   ", "\n\t"} {
		sess, err := store.SendMessage(context.Background(), text)
		if err != nil {
			t.Errorf("SendMessage(%q) error = %v", text, err)
		}
		if sess != nil {
			t.Errorf("SendMessage(%q) = %v, want nil (no active session)", text, sess)
		}
	}

	if len(store.Sessions()) != 0 {
		t.Error("blank sends should not create sessions")
	}
	if agent.calls != 0 {
		t.Errorf("agent called %d times, want 0", agent.calls)
	}
	if snapshot.saveCount != 0 {
		t.Errorf("saveCount = %d, want 0", snapshot.saveCount)
	}
}

func TestSendMessageTitleOnlyFromFirstMessage(t *testing.T) {
	store, _, _ := newTestStore(t)

	sess, err := store.SendMessage(context.Background(), "First question about pricing")
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if _, err := store.SendMessage(context.Background(), "Second, unrelated question"); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}

	if sess.Title != "First question about pricing" {
		t.Errorf("Title = %q, want it derived from the first message only", sess.Title)
	}
}

func TestSendMessageTruncatesLongTitle(t *testing.T) {
	store, _, _ := newTestStore(t)

	text := strings.Repeat("x", 80)
	sess, err := store.SendMessage(context.Background(), text)
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}

	want := strings.Repeat("x", 50) + "..."
	if sess.Title != want {
		t.Errorf("Title = %q, want %q", sess.Title, want)
	}
}

func TestSendMessageAgentFailureKeepsUserTurn(t *testing.T) {
	store, snapshot, agent := newTestStore(t)
	agent.err = errors.New("upstream timeout")

	sess, err := store.SendMessage(context.Background(), "Will this work offline?")
	if err == nil {
		t.Fatal("SendMessage() error = nil, want the agent error")
	}
	if sess == nil {
		t.Fatal("SendMessage() should still return the session on agent failure")
	}

	if len(sess.Messages) != 1 {
		t.Fatalf("session has %d messages, want just the user turn", len(sess.Messages))
	}
	if sess.Messages[0].Role != RoleUser {
		t.Errorf("surviving message role = %q, want %q", sess.Messages[0].Role, RoleUser)
	}
	if store.Pending() {
		t.Error("Pending() should be cleared after a failed call")
	}
	if snapshot.saveCount != 1 {
		t.Errorf("saveCount = %d, want 1 (the user turn persisted before the call)", snapshot.saveCount)
	}
}

func TestSendMessagePendingDuringCall(t *testing.T) {
	store, _, agent := newTestStore(t)

	var sawPending bool
	agent.onSend = func() { sawPending = store.Pending() }

	if _, err := store.SendMessage(context.Background(), "hello"); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if !sawPending {
		t.Error("Pending() should be true while the agent call is in flight")
	}
}

func TestSendMessageDropsReplyForDeletedSession(t *testing.T) {
	store, _, agent := newTestStore(t)
	sess := store.CreateSession()

	agent.onSend = func() { store.DeleteSession(sess.ID) }

	got, err := store.SendMessage(context.Background(), "soon to be orphaned")
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if got != nil {
		t.Errorf("SendMessage() = %v, want nil when the target was deleted mid-call", got)
	}
	if store.Find(sess.ID) != nil {
		t.Error("deleted session should stay deleted")
	}
}

func TestSendMessageAppliesReplyToInactiveSession(t *testing.T) {
	store, _, agent := newTestStore(t)
	first := store.CreateSession()

	// Switch the active session while the call is in flight. The reply
	// still belongs to the session that sent the message.
	agent.onSend = func() { store.CreateSession() }

	got, err := store.SendMessage(context.Background(), "question from first session")
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if got != first {
		t.Fatalf("SendMessage() = %v, want the original session", got)
	}
	if len(first.Messages) != 2 {
		t.Errorf("original session has %d messages, want 2", len(first.Messages))
	}
	if store.Active() == first {
		t.Error("active session should be the one created mid-call")
	}
}

func TestRenameSession(t *testing.T) {
	store, snapshot, _ := newTestStore(t)
	sess := store.CreateSession()
	before := sess.LastModified
	savesBefore := snapshot.saveCount

	store.RenameSession(sess.ID, "Q3 budget planning")
	if sess.Title != "Q3 budget planning" {
		t.Errorf("Title = %q, want %q", sess.Title, "Q3 budget planning")
	}
	if !sess.LastModified.After(before) && !sess.LastModified.Equal(before) {
		t.Error("LastModified should be bumped on rename")
	}
	if snapshot.saveCount != savesBefore+1 {
		t.Errorf("saveCount = %d, want %d", snapshot.saveCount, savesBefore+1)
	}

	// Blank titles and unknown ids are no-ops.
	store.RenameSession(sess.ID, "   ")
	if sess.Title != "Q3 budget planning" {
		t.Errorf("blank rename changed title to %q", sess.Title)
	}
	store.RenameSession("no-such-id", "whatever")
	if snapshot.saveCount != savesBefore+1 {
		t.Errorf("no-op renames should not persist, saveCount = %d", snapshot.saveCount)
	}
}

func TestDeleteSession(t *testing.T) {
	store, _, _ := newTestStore(t)
	first := store.CreateSession()
	second := store.CreateSession()

	store.DeleteSession(first.ID)
	if store.Find(first.ID) != nil {
		t.Error("deleted session should not be findable")
	}
	if store.Active() != second {
		t.Error("deleting an inactive session should not touch the active one")
	}

	store.DeleteSession(second.ID)
	if store.Active() != nil {
		t.Error("deleting the active session should clear the active reference")
	}
	if len(store.Sessions()) != 0 {
		t.Errorf("Sessions() has %d entries, want 0", len(store.Sessions()))
	}

	// Unknown id is a no-op.
	store.DeleteSession("no-such-id")
}

func TestPersistSkippedWhenEmpty(t *testing.T) {
	store, snapshot, _ := newTestStore(t)
	sess := store.CreateSession()

	savesBefore := snapshot.saveCount
	store.DeleteSession(sess.ID)

	// The collection is empty after the delete, so nothing is written and
	// the previous snapshot survives on disk.
	if snapshot.saveCount != savesBefore {
		t.Errorf("saveCount = %d, want %d (empty collection is not persisted)", snapshot.saveCount, savesBefore)
	}
}

func TestPersistFailureIsNotFatal(t *testing.T) {
	store, snapshot, _ := newTestStore(t)
	snapshot.saveErr = errors.New("disk full")

	sess := store.CreateSession()
	if store.Active() != sess {
		t.Error("in-memory state should survive a failed persist")
	}

	if _, err := store.SendMessage(context.Background(), "still works"); err != nil {
		t.Errorf("SendMessage() error = %v, want nil despite persist failures", err)
	}
	if len(sess.Messages) != 2 {
		t.Errorf("session has %d messages, want 2", len(sess.Messages))
	}
}
