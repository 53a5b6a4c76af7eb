package conversation

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	newChatTitle   = "New Chat"
	newChatIcon    = "Sparkles"
	newChatAccent  = "#A78BFA"
	newChatPreview = "Start a new conversation..."
)

// Store owns the ordered conversation list. All reads return copies, so
// callers never share message slices with the store.
type Store struct {
	mu    sync.RWMutex
	items []Conversation
	newID func() string
}

// NewStore builds a store seeded with the given conversations in order.
func NewStore(seed []Conversation) *Store {
	s := &Store{newID: uuid.NewString}
	s.Replace(seed)
	return s
}

// Replace swaps the whole list, as a refresh from seed data does.
func (s *Store) Replace(seed []Conversation) {
	items := lo.Map(seed, func(c Conversation, _ int) Conversation {
		return c.Clone()
	})

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// List returns every conversation in insertion order.
func (s *Store) List() []Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Map(s.items, func(c Conversation, _ int) Conversation {
		return c.Clone()
	})
}

// Len returns the number of conversations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns the conversation with the given id.
func (s *Store) Get(id string) (Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := lo.Find(s.items, func(c Conversation) bool { return c.ID == id })
	if !ok {
		return Conversation{}, fmt.Errorf("get %q: %w", id, ErrNotFound)
	}
	return c.Clone(), nil
}

// Create starts an empty conversation at the head of the list.
func (s *Store) Create() Conversation {
	c := Conversation{
		ID:          s.newID(),
		Title:       newChatTitle,
		Icon:        newChatIcon,
		AccentColor: newChatAccent,
		Preview:     newChatPreview,
		Timestamp:   "Now",
		Messages:    []Message{},
		Online:      true,
	}

	s.mu.Lock()
	s.items = append([]Conversation{c}, s.items...)
	s.mu.Unlock()

	return c.Clone()
}

// TogglePin flips the pinned flag and returns the new value.
func (s *Store) TogglePin(id string) (bool, error) {
	var pinned bool
	err := s.update(id, func(c *Conversation) {
		c.Pinned = !c.Pinned
		pinned = c.Pinned
	})
	return pinned, err
}

// ToggleMute flips the muted flag and returns the new value. Muting is
// cosmetic and does not affect reply simulation.
func (s *Store) ToggleMute(id string) (bool, error) {
	var muted bool
	err := s.update(id, func(c *Conversation) {
		c.Muted = !c.Muted
		muted = c.Muted
	})
	return muted, err
}

// MarkRead zeroes the unread counter.
func (s *Store) MarkRead(id string) error {
	return s.update(id, func(c *Conversation) {
		c.Unread = 0
	})
}

// Delete removes a conversation. It is irreversible.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, idx, ok := lo.FindIndexOf(s.items, func(c Conversation) bool { return c.ID == id })
	if !ok {
		return fmt.Errorf("delete %q: %w", id, ErrNotFound)
	}
	s.items = append(s.items[:idx:idx], s.items[idx+1:]...)
	return nil
}

// Messages returns a copy of a conversation's messages.
func (s *Store) Messages(id string) ([]Message, error) {
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if c.Messages == nil {
		return []Message{}, nil
	}
	return c.Messages, nil
}

// AppendMessage adds a message at the end of a conversation and moves its
// timestamp label to the message time.
func (s *Store) AppendMessage(id string, msg Message) error {
	return s.update(id, func(c *Conversation) {
		c.Messages = append(c.Messages, msg)
		if msg.SentAt != "" {
			c.Timestamp = msg.SentAt
		}
	})
}

// ClearMessages empties a conversation's message list.
func (s *Store) ClearMessages(id string) error {
	return s.update(id, func(c *Conversation) {
		c.Messages = []Message{}
	})
}

func (s *Store) update(id string, fn func(c *Conversation)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			fn(&s.items[i])
			return nil
		}
	}
	return fmt.Errorf("update %q: %w", id, ErrNotFound)
}
