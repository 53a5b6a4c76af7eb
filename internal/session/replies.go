package session

import (
	"math/rand"
	"sync"
	"time"

	"github.com/samber/lo"
)

// DefaultReplies is the canned reply set.
var DefaultReplies = []string{
	"That's a great question! Let me help you with that...",
	"I understand what you're looking for. Here's my suggestion...",
	"Great question! I'd recommend exploring these options...",
	"I'm happy to help with that. Here's what I think...",
}

// ReplySource produces the text of the next assistant message.
type ReplySource interface {
	Next() string
}

// CannedReplies picks uniformly at random from a fixed set.
type CannedReplies struct {
	mu      sync.Mutex
	replies []string
	rng     *rand.Rand
}

// NewCannedReplies uses DefaultReplies when replies is empty. A zero seed
// seeds from the clock.
func NewCannedReplies(replies []string, seed int64) *CannedReplies {
	if len(replies) == 0 {
		replies = DefaultReplies
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &CannedReplies{
		replies: append([]string(nil), replies...),
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (c *CannedReplies) Next() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.replies[c.rng.Intn(len(c.replies))]
}

// Contains reports whether text is one of the canned replies.
func (c *CannedReplies) Contains(text string) bool {
	return lo.Contains(c.replies, text)
}
