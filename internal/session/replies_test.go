package session_test

import (
	"testing"

	"glasschat/internal/session"

	"github.com/stretchr/testify/assert"
)

func TestCannedReplies_DrawsFromSet(t *testing.T) {
	r := session.NewCannedReplies(nil, 7)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		text := r.Next()
		assert.Contains(t, session.DefaultReplies, text)
		seen[text] = true
	}
	assert.Len(t, seen, len(session.DefaultReplies), "every reply should come up eventually")
}

func TestCannedReplies_SeedIsDeterministic(t *testing.T) {
	a := session.NewCannedReplies(nil, 99)
	b := session.NewCannedReplies(nil, 99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestCannedReplies_Custom(t *testing.T) {
	r := session.NewCannedReplies([]string{"only"}, 1)
	assert.Equal(t, "only", r.Next())
	assert.True(t, r.Contains("only"))
	assert.False(t, r.Contains(session.DefaultReplies[0]))
}
