// Package conversation holds the chat domain: conversations, their messages,
// the in-memory store that owns the list, and the list filters.
package conversation

import "errors"

var (
	ErrNotFound = errors.New("conversation not found")
)

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one chat entry. Messages are append-only.
type Message struct {
	ID     string `yaml:"id" validate:"required"`
	Text   string `yaml:"text"`
	Sender Sender `yaml:"sender" validate:"oneof=user assistant"`
	SentAt string `yaml:"sent_at"` // display time, e.g. "10:45 AM"
}

// IsUser reports whether the message was written by the local user.
func (m Message) IsUser() bool {
	return m.Sender == SenderUser
}

// Conversation is a named thread plus its list flags. Pinned, Muted, Unread
// and Online are independent of each other.
type Conversation struct {
	ID          string    `yaml:"id" validate:"required"`
	Title       string    `yaml:"title"`
	Icon        string    `yaml:"icon"`
	AccentColor string    `yaml:"accent"`
	Description string    `yaml:"description,omitempty"`
	Preview     string    `yaml:"preview,omitempty"`   // shown when there are no messages
	Timestamp   string    `yaml:"timestamp,omitempty"` // display label, e.g. "Yesterday"
	Messages    []Message `yaml:"messages" validate:"unique=ID,dive"`
	Pinned      bool      `yaml:"pinned"`
	Muted       bool      `yaml:"muted"`
	Unread      int       `yaml:"unread" validate:"gte=0"`
	Online      bool      `yaml:"online"`
}

// LastMessage returns the text of the newest message, falling back to the
// preview line for conversations that have none.
func (c Conversation) LastMessage() string {
	if n := len(c.Messages); n > 0 {
		return c.Messages[n-1].Text
	}
	return c.Preview
}

// Clone returns a copy whose message slice does not alias the original.
func (c Conversation) Clone() Conversation {
	out := c
	if c.Messages != nil {
		out.Messages = make([]Message, len(c.Messages))
		copy(out.Messages, c.Messages)
	}
	return out
}
