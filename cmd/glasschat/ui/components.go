package ui

import (
	"fmt"
	"strings"
	"time"

	"glasschat/internal/conversation"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Card glyphs.
const (
	GlyphPinned   = "⚑"
	GlyphMuted    = "⊘"
	GlyphOnline   = "●"
	GlyphLiked    = "♥"
	GlyphDisliked = "✕"
	GlyphBookmark = "⚐"
	GlyphCopied   = "✓"
)

// Truncate cuts s to width cells, ending with an ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// ConversationCard renders one list entry as a glass card. fade in [0,1]
// brings the text in from the background color.
func ConversationCard(s Styles, c conversation.Conversation, width int, selected bool, fade float64) string {
	inner := max(10, width-4)

	accent := lipgloss.Color(c.AccentColor)
	if c.AccentColor == "" {
		accent = s.Theme.Primary
	}
	icon := lipgloss.NewStyle().
		Background(accent).
		Foreground(lipgloss.Color("#FFF1F1")).
		Padding(0, 1).
		Render(Icon(c.Icon))

	var flags []string
	if c.Pinned {
		flags = append(flags, s.Accent.Render(GlyphPinned))
	}
	if c.Muted {
		flags = append(flags, s.Muted.Render(GlyphMuted))
	}
	if c.Online {
		flags = append(flags, s.Online.Render(GlyphOnline))
	}

	textColor := Blend(s.Theme.Background, s.Theme.Text, fade)
	title := s.Title.Foreground(textColor).Render(c.Title)

	right := s.Muted.Render(c.Timestamp)
	if c.Unread > 0 {
		right = s.Badge.Render(fmt.Sprint(c.Unread)) + " " + right
	}

	head := strings.TrimSpace(icon + " " + title + " " + strings.Join(flags, " "))
	gap := inner - lipgloss.Width(head) - lipgloss.Width(right)
	if gap < 1 {
		head = Truncate(head, max(1, inner-lipgloss.Width(right)-1))
		gap = 1
	}
	line1 := head + strings.Repeat(" ", gap) + right

	preview := s.Subtitle.Foreground(Blend(s.Theme.Background, s.Theme.TextSecondary, fade)).
		Render(Truncate(c.LastMessage(), inner))

	style := s.Card
	if selected {
		style = s.CardSelected
	}
	return style.Width(width - 2).Render(line1 + "\n" + preview)
}

// Bubble renders a message body, right-aligned for the user and
// left-aligned for the assistant. body may already be styled (markdown).
func Bubble(s Styles, m conversation.Message, body string, contentWidth, maxWidth int, selected bool, badges string) string {
	style := s.AIBubble
	align := lipgloss.Left
	if m.IsUser() {
		style = s.UserBubble
		align = lipgloss.Right
	}
	if w := lipgloss.Width(body) + 2; w < maxWidth {
		maxWidth = w
	}
	box := style.MaxWidth(maxWidth + 2).Render(body)

	meta := m.SentAt
	if badges != "" {
		meta = badges + "  " + meta
	}
	if selected {
		meta = s.Selected.Render("▸ ") + meta
	}
	block := lipgloss.JoinVertical(align, box, s.BubbleMeta.Render(meta))
	return lipgloss.PlaceHorizontal(contentWidth, align, block)
}

// ProgressBar renders a bar of width cells filled to fraction.
func ProgressBar(s Styles, fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	fraction = max(0, min(1, fraction))
	full := int(fraction*float64(width) + 0.5)
	return s.ProgressFull.Render(strings.Repeat("█", full)) +
		s.ProgressEmpty.Render(strings.Repeat("░", width-full))
}

// SkeletonRow renders a placeholder card with a moving highlight.
func SkeletonRow(s Styles, width int, elapsed time.Duration) string {
	inner := max(4, width-4)
	lit := Shimmer(elapsed, inner)

	bar := func(n int) string {
		var b strings.Builder
		for i := 0; i < n; i++ {
			if i >= lit-2 && i <= lit+2 {
				b.WriteString(s.SkeletonLit.Render("▆"))
			} else {
				b.WriteString(s.Skeleton.Render("▆"))
			}
		}
		return b.String()
	}
	return s.Card.Width(width - 2).Render(bar(inner/2) + "\n" + bar(inner*3/4))
}

// Toggle renders an on/off switch.
func Toggle(s Styles, on bool) string {
	if on {
		return s.Accent.Render("● on")
	}
	return s.Muted.Render("○ off")
}

// Overlay centres a modal box in a width×height area.
func Overlay(s Styles, body string, width, height int) string {
	box := s.Modal.Width(min(ModalWidth, max(20, width-4))).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
