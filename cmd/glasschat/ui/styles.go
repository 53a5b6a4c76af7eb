// Package ui provides the visual styling for the glasschat terminal client:
// the purple glass palette in light and dark variants, and the lipgloss
// styles built from it.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the color scheme. It is passed explicitly from the
// composition root; nothing reads a global theme.
type Theme struct {
	Name   string
	IsDark bool

	Background lipgloss.Color
	Surface    lipgloss.Color // glass card fill
	Raised     lipgloss.Color // inputs, skeleton bars
	Border     lipgloss.Color

	Primary      lipgloss.Color
	PrimaryDark  lipgloss.Color
	PrimaryLight lipgloss.Color

	Text          lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color

	Online  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	UserBubble     lipgloss.Color
	UserBubbleText lipgloss.Color
	AIBubble       lipgloss.Color
	AIBubbleText   lipgloss.Color
}

// DarkTheme is the default palette.
func DarkTheme() Theme {
	return Theme{
		Name:   "dark",
		IsDark: true,

		Background: lipgloss.Color("#0A0A0F"),
		Surface:    lipgloss.Color("#1A1A24"),
		Raised:     lipgloss.Color("#25252F"),
		Border:     lipgloss.Color("#33333D"),

		Primary:      lipgloss.Color("#A78BFA"),
		PrimaryDark:  lipgloss.Color("#8B5CF6"),
		PrimaryLight: lipgloss.Color("#C4B5FD"),

		Text:          lipgloss.Color("#FFFFFF"),
		TextSecondary: lipgloss.Color("#B5B5B7"),
		TextMuted:     lipgloss.Color("#858587"),

		Online:  lipgloss.Color("#4ADE80"),
		Success: lipgloss.Color("#4ADE80"),
		Error:   lipgloss.Color("#F87171"),
		Warning: lipgloss.Color("#FBBF24"),

		UserBubble:     lipgloss.Color("#A78BFA"),
		UserBubbleText: lipgloss.Color("#FFFFFF"),
		AIBubble:       lipgloss.Color("#23232B"),
		AIBubbleText:   lipgloss.Color("#FFFFFF"),
	}
}

// LightTheme is the light palette.
func LightTheme() Theme {
	return Theme{
		Name:   "light",
		IsDark: false,

		Background: lipgloss.Color("#F8F9FC"),
		Surface:    lipgloss.Color("#FFFFFF"),
		Raised:     lipgloss.Color("#EEEDF5"),
		Border:     lipgloss.Color("#DCDCE6"),

		Primary:      lipgloss.Color("#8B5CF6"),
		PrimaryDark:  lipgloss.Color("#7C3AED"),
		PrimaryLight: lipgloss.Color("#A78BFA"),

		Text:          lipgloss.Color("#1A1A2E"),
		TextSecondary: lipgloss.Color("#5F5F6D"),
		TextMuted:     lipgloss.Color("#8C8C97"),

		Online:  lipgloss.Color("#22C55E"),
		Success: lipgloss.Color("#22C55E"),
		Error:   lipgloss.Color("#EF4444"),
		Warning: lipgloss.Color("#D97706"),

		UserBubble:     lipgloss.Color("#8B5CF6"),
		UserBubbleText: lipgloss.Color("#FFFFFF"),
		AIBubble:       lipgloss.Color("#FFFFFF"),
		AIBubbleText:   lipgloss.Color("#1A1A2E"),
	}
}

// ResolveTheme maps a configured mode to a palette. "auto" asks hasDark,
// which is lipgloss.HasDarkBackground in production.
func ResolveTheme(mode string, hasDark func() bool) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	case "", "auto":
		if hasDark == nil || hasDark() {
			return DarkTheme(), nil
		}
		return LightTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", mode)
	}
}

// Toggle returns the other palette.
func (t Theme) Toggle() Theme {
	if t.IsDark {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds all the styled components.
type Styles struct {
	Theme Theme

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Section  lipgloss.Style
	Accent   lipgloss.Style

	// List
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	Badge        lipgloss.Style
	Online       lipgloss.Style
	SearchBox    lipgloss.Style
	Skeleton     lipgloss.Style
	SkeletonLit  lipgloss.Style

	// Chat
	Header      lipgloss.Style
	UserBubble  lipgloss.Style
	AIBubble    lipgloss.Style
	BubbleMeta  lipgloss.Style
	Selected    lipgloss.Style
	Typing      lipgloss.Style
	Recording   lipgloss.Style
	Composer    lipgloss.Style
	Counter     lipgloss.Style
	CounterWarn lipgloss.Style
	Pill        lipgloss.Style

	// Overlays
	Modal        lipgloss.Style
	ModalTitle   lipgloss.Style
	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style
	Destructive  lipgloss.Style
	ToastOK      lipgloss.Style
	ToastErr     lipgloss.Style

	// Chrome
	Help          lipgloss.Style
	Divider       lipgloss.Style
	ProgressFull  lipgloss.Style
	ProgressEmpty lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme.
func NewStyles(theme Theme) Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Background(theme.Surface).
		Foreground(theme.Text).
		Padding(0, 1)

	bubble := lipgloss.NewStyle().Padding(0, 1)

	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(theme.TextSecondary),
		Body: lipgloss.NewStyle().
			Foreground(theme.Text),
		Muted: lipgloss.NewStyle().
			Foreground(theme.TextMuted),
		Section: lipgloss.NewStyle().
			Foreground(theme.TextMuted).
			Bold(true).
			MarginTop(1),
		Accent: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Card:         card,
		CardSelected: card.BorderForeground(theme.Primary),
		TabActive: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(theme.TextSecondary).
			Padding(0, 2),
		Badge: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1),
		Online: lipgloss.NewStyle().
			Foreground(theme.Online),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		Skeleton: lipgloss.NewStyle().
			Foreground(theme.Raised),
		SkeletonLit: lipgloss.NewStyle().
			Foreground(theme.Border),

		Header: lipgloss.NewStyle().
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		UserBubble: bubble.
			Background(theme.UserBubble).
			Foreground(theme.UserBubbleText),
		AIBubble: bubble.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Background(theme.AIBubble).
			Foreground(theme.AIBubbleText),
		BubbleMeta: lipgloss.NewStyle().
			Foreground(theme.TextMuted),
		Selected: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
		Typing: lipgloss.NewStyle().
			Foreground(theme.Primary),
		Recording: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),
		Composer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary),
		Counter: lipgloss.NewStyle().
			Foreground(theme.TextMuted),
		CounterWarn: lipgloss.NewStyle().
			Foreground(theme.Warning).
			Bold(true),
		Pill: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.PrimaryLight).
			Foreground(theme.Primary).
			Padding(0, 1),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Background(theme.Surface).
			Foreground(theme.Text).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			MarginBottom(1),
		MenuItem: lipgloss.NewStyle().
			Foreground(theme.Text).
			PaddingLeft(2),
		MenuSelected: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(theme.Primary),
		Destructive: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),
		ToastOK: lipgloss.NewStyle().
			Background(theme.Success).
			Foreground(lipgloss.Color("#0A0A0F")).
			Padding(0, 1),
		ToastErr: lipgloss.NewStyle().
			Background(theme.Error).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.TextMuted).
			Padding(0, 1),
		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),
		ProgressFull: lipgloss.NewStyle().
			Foreground(theme.Primary),
		ProgressEmpty: lipgloss.NewStyle().
			Foreground(theme.Raised),
	}
}

// RenderDivider returns a horizontal divider.
func (s Styles) RenderDivider(width int) string {
	if width < 1 {
		return ""
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
