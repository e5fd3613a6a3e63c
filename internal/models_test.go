package internal

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "short text unchanged",
			text: "What will AI cost us?",
			want: "What will AI cost us?",
		},
		{
			name: "exactly fifty characters unchanged",
			text: strings.Repeat("a", 50),
			want: strings.Repeat("a", 50),
		},
		{
			name: "long text truncated with ellipsis",
			text: strings.Repeat("a", 51),
			want: strings.Repeat("a", 50) + "...",
		},
		{
			name: "multibyte text truncated on runes",
			text: strings.Repeat("€", 60),
			want: strings.Repeat("€", 50) + "...",
		},
		{
			name: "empty text",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveTitle(tt.text)
			if got != tt.want {
				t.Errorf("DeriveTitle(%q) = %q, want %q", tt.text, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("DeriveTitle(%q) produced invalid UTF-8", tt.text)
			}
		})
	}
}

func TestNewChatSession(t *testing.T) {
	sess := NewChatSession()
	if sess.ID == "" {
		t.Error("NewChatSession() produced an empty ID")
	}
	if sess.Title != DefaultTitle {
		t.Errorf("NewChatSession() title = %q, want %q", sess.Title, DefaultTitle)
	}
	if !sess.IsActive {
		t.Error("NewChatSession() should be active")
	}
	if len(sess.Messages) != 0 {
		t.Errorf("NewChatSession() has %d messages, want 0", len(sess.Messages))
	}
}

func TestNewMessage(t *testing.T) {
	before := time.Now()
	msg := NewMessage(RoleUser, "hello")
	after := time.Now()

	if msg.ID == "" {
		t.Error("NewMessage() produced an empty ID")
	}
	if msg.Role != RoleUser {
		t.Errorf("NewMessage() role = %q, want %q", msg.Role, RoleUser)
	}
	if msg.Content != "hello" {
		t.Errorf("NewMessage() content = %q, want %q", msg.Content, "hello")
	}
	if msg.Timestamp.Before(before) || msg.Timestamp.After(after) {
		t.Error("NewMessage() timestamp is outside the call window")
	}

	other := NewMessage(RoleUser, "hello")
	if other.ID == msg.ID {
		t.Error("NewMessage() produced duplicate IDs")
	}
}

func TestLastAssistantMessage(t *testing.T) {
	tests := []struct {
		name string
		sess *ChatSession
		want string // content of expected message, "" for nil
	}{
		{
			name: "nil session",
			sess: nil,
			want: "",
		},
		{
			name: "no messages",
			sess: CreateTestSessionWithMessages("s1", nil),
			want: "",
		},
		{
			name: "only user messages",
			sess: CreateTestSessionWithMessages("s1", []Message{
				{Role: RoleUser, Content: "hi"},
			}),
			want: "",
		},
		{
			name: "latest assistant wins",
			sess: CreateTestSessionWithMessages("s1", []Message{
				{Role: RoleUser, Content: "q1"},
				{Role: RoleAssistant, Content: "a1"},
				{Role: RoleUser, Content: "q2"},
				{Role: RoleAssistant, Content: "a2"},
			}),
			want: "a2",
		},
		{
			name: "assistant followed by user",
			sess: CreateTestSessionWithMessages("s1", []Message{
				{Role: RoleAssistant, Content: "a1"},
				{Role: RoleUser, Content: "q2"},
			}),
			want: "a1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.sess.LastAssistantMessage()
			if tt.want == "" {
				if got != nil {
					t.Errorf("LastAssistantMessage() = %q, want nil", got.Content)
				}
				return
			}
			if got == nil {
				t.Fatalf("LastAssistantMessage() = nil, want %q", tt.want)
			}
			if got.Content != tt.want {
				t.Errorf("LastAssistantMessage() = %q, want %q", got.Content, tt.want)
			}
		})
	}
}

func TestFirstUserText(t *testing.T) {
	sess := CreateTestSessionWithMessages("s1", []Message{
		{Role: RoleAssistant, Content: "welcome"},
		{Role: RoleUser, Content: "first question"},
		{Role: RoleUser, Content: "second question"},
	})
	if got := sess.FirstUserText(); got != "first question" {
		t.Errorf("FirstUserText() = %q, want %q", got, "first question")
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"x", false},
		{"  x  ", false},
	}

	for _, tt := range tests {
		if got := IsBlank(tt.text); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
