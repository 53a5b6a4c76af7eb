package ui

// Layout constants.
const (
	HeaderHeight   = 2
	FooterHeight   = 1
	TabBarHeight   = 1
	SearchHeight   = 3
	ComposerHeight = 3
	StatusHeight   = 1
	CardHeight     = 4

	MinimumTerminalWidth  = 40
	MinimumTerminalHeight = 12
	CompactModeWidth      = 70

	// MaxBubbleRatio is the widest a bubble gets relative to the content.
	MaxBubbleRatio = 0.78
	ModalWidth     = 44
)

// LayoutConfig provides computed layout dimensions based on terminal size.
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	IsCompact      bool
}

// NewLayoutConfig creates a layout configuration for the given terminal size.
func NewLayoutConfig(width, height int) LayoutConfig {
	return LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		IsCompact:      width < CompactModeWidth,
	}
}

// ContentWidth is the usable width inside the side padding.
func (l LayoutConfig) ContentWidth() int {
	pad := 4
	if l.IsCompact {
		pad = 2
	}
	return max(MinimumTerminalWidth-pad, l.TerminalWidth-pad)
}

// BubbleWidth is the widest a chat bubble may render.
func (l LayoutConfig) BubbleWidth() int {
	return max(16, int(float64(l.ContentWidth())*MaxBubbleRatio))
}

// ListHeight is the room left for conversation cards below the header,
// search box and tabs.
func (l LayoutConfig) ListHeight() int {
	return max(CardHeight, l.TerminalHeight-HeaderHeight-SearchHeight-TabBarHeight-FooterHeight-StatusHeight)
}

// ChatHeight is the message viewport height above the composer.
func (l LayoutConfig) ChatHeight() int {
	return max(3, l.TerminalHeight-HeaderHeight-ComposerHeight-StatusHeight-FooterHeight-1)
}

// VisibleCards is how many conversation cards fit on screen.
func (l LayoutConfig) VisibleCards() int {
	return max(1, l.ListHeight()/CardHeight)
}

// TooSmall reports whether the terminal is below the supported minimum.
func (l LayoutConfig) TooSmall() bool {
	return l.TerminalWidth < MinimumTerminalWidth || l.TerminalHeight < MinimumTerminalHeight
}
