package internal

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// DefaultTitle is the title of a session created before any message is sent.
const DefaultTitle = "New Conversation"

// TitleLimit is the maximum derived-title length before truncation.
const TitleLimit = 50

// Message is a single chat message. Messages are immutable once created;
// ordering within a session is insertion order.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatSession is one conversation thread with a title and ordered history.
type ChatSession struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Messages     []Message `json:"messages"`
	LastModified time.Time `json:"lastModified"`
	IsActive     bool      `json:"isActive"`
}

// NewMessage creates a message with a fresh ID and the current time.
func NewMessage(role Role, content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewChatSession creates an empty active session with the default title.
func NewChatSession() *ChatSession {
	return &ChatSession{
		ID:           uuid.NewString(),
		Title:        DefaultTitle,
		Messages:     []Message{},
		LastModified: time.Now(),
		IsActive:     true,
	}
}

// DeriveTitle builds a session title from the first user message,
// truncated to TitleLimit characters with an ellipsis. The cut is on
// runes, not bytes, so multibyte text stays valid UTF-8.
func DeriveTitle(text string) string {
	runes := []rune(text)
	if len(runes) > TitleLimit {
		return string(runes[:TitleLimit]) + "..."
	}
	return text
}

// LastAssistantMessage returns the most recent assistant message, or nil
// if the session has none.
func (s *ChatSession) LastAssistantMessage() *Message {
	if s == nil {
		return nil
	}
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == RoleAssistant {
			return &s.Messages[i]
		}
	}
	return nil
}

// FirstUserText returns the content of the first user message, or "".
func (s *ChatSession) FirstUserText() string {
	for _, msg := range s.Messages {
		if msg.Role == RoleUser {
			return msg.Content
		}
	}
	return ""
}

// IsBlank reports whether text is empty after trimming whitespace.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
