package ui

import (
	"strings"
	"testing"

	"glasschat/internal/conversation"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestConversationCard(t *testing.T) {
	s := NewStyles(DarkTheme())
	c := conversation.Conversation{
		Title:     "Code Assistant",
		Icon:      "Code2",
		Timestamp: "9:30 AM",
		Unread:    3,
		Pinned:    true,
		Muted:     true,
		Messages:  []conversation.Message{{Text: "The bug is in line 42. You need to add a null check before reading the field."}},
	}

	out := ansi.Strip(ConversationCard(s, c, 40, true, 1))
	assert.Contains(t, out, "Code Assistant")
	assert.Contains(t, out, "9:30 AM")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, GlyphPinned)
	assert.Contains(t, out, GlyphMuted)
	assert.Contains(t, out, "…", "long preview should be truncated")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 40)
	}
}

func TestBubble_Alignment(t *testing.T) {
	s := NewStyles(LightTheme())
	user := conversation.Message{Text: "hi", Sender: conversation.SenderUser, SentAt: "10:00 AM"}
	ai := conversation.Message{Text: "hello", Sender: conversation.SenderAssistant, SentAt: "10:01 AM"}

	u := ansi.Strip(Bubble(s, user, "hi", 40, 30, false, ""))
	a := ansi.Strip(Bubble(s, ai, "hello", 40, 30, true, GlyphLiked))

	first := strings.Split(u, "\n")[0]
	assert.True(t, strings.HasPrefix(first, "   "), "user bubble should be right-aligned: %q", first)
	assert.Contains(t, u, "10:00 AM")
	assert.Contains(t, a, GlyphLiked)
	assert.Contains(t, a, "▸")
}

func TestProgressBar(t *testing.T) {
	s := NewStyles(DarkTheme())
	out := ansi.Strip(ProgressBar(s, 0.5, 10))
	assert.Equal(t, "█████░░░░░", out)
	assert.Equal(t, "░░░░", ansi.Strip(ProgressBar(s, -1, 4)))
	assert.Equal(t, "", ProgressBar(s, 0.5, 0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hel…", Truncate("hello world", 4))
	assert.Equal(t, "", Truncate("x", 0))
}

func TestIcon(t *testing.T) {
	assert.Equal(t, "⌘", Icon("Code2"))
	assert.Equal(t, Icon("Bot"), Icon("Unknown"))
}

func TestSkeletonAndOverlay(t *testing.T) {
	s := NewStyles(DarkTheme())
	assert.NotEmpty(t, SkeletonRow(s, 30, 0))

	out := Overlay(s, "Clear all messages?", 60, 20)
	assert.Equal(t, 20, lipgloss.Height(out))
	assert.Contains(t, ansi.Strip(out), "Clear all messages?")
}

func TestLayout(t *testing.T) {
	l := NewLayoutConfig(100, 30)
	assert.False(t, l.IsCompact)
	assert.Equal(t, 96, l.ContentWidth())
	assert.Greater(t, l.ChatHeight(), 3)
	assert.GreaterOrEqual(t, l.VisibleCards(), 1)
	assert.False(t, l.TooSmall())

	assert.True(t, NewLayoutConfig(30, 10).TooSmall())
	assert.True(t, NewLayoutConfig(60, 30).IsCompact)
}
