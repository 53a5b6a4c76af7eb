package chat

import (
	"strings"
	"sync"
	"time"

	"glasschat/cmd/glasschat/ui"
	"glasschat/internal/clipboard"
	"glasschat/internal/content"
	"glasschat/internal/conversation"
	"glasschat/internal/logging"
	"glasschat/internal/profile"
	"glasschat/internal/session"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

// reaction on an assistant bubble; like and dislike exclude each other.
type reaction int

const (
	reactionNone reaction = iota
	reactionLiked
	reactionDisliked
)

// Model is the bubbletea model for the whole client.
type Model struct {
	cfg    Config
	styles ui.Styles
	layout ui.LayoutConfig
	width  int
	height int
	ready  bool
	mode   ViewMode
	help   help.Model
	logger *zap.Logger

	// List screen
	search         textinput.Model
	searching      bool
	filter         conversation.Filter
	cursor         ui.Cursor
	listOffset     int
	mountedAt      time.Time
	refreshing     bool
	refreshStarted time.Time

	// Chat screen
	ctrl        *session.Controller
	bridge      *eventBridge
	unsubscribe func()
	conv        conversation.Conversation
	messages    []conversation.Message
	state       session.State
	textarea    textarea.Model
	viewport    viewport.Model
	spinner     spinner.Model
	renderer    *glamour.TermRenderer
	rendered    map[string]string
	selectedMsg int
	suggestion  int
	menuIndex   int
	reactions   map[string]reaction
	bookmarks   map[string]bool
	copiedID    string
	recordStart time.Time

	// Profile screen
	profileRow int

	confirm   *confirmDialog
	toast     *toast
	toastSeq  int
	now       time.Time
	animating bool
	quitting  bool

	shutdownOnce *sync.Once
}

// New builds the model. cfg.Store must be set.
func New(cfg Config) Model {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.RefreshDelay <= 0 {
		cfg.RefreshDelay = DefaultRefreshDelay
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = clipboard.System{}
	}
	if cfg.Theme.Name == "" {
		cfg.Theme = ui.DarkTheme()
	}
	cfg.Settings.DarkMode = cfg.Theme.IsDark
	if cfg.Settings.Mode == "" {
		cfg.Settings.Mode = profile.ModeBalanced
	}

	ti := textinput.New()
	ti.Placeholder = "Search conversations..."
	ti.Prompt = "⌕ "
	ti.CharLimit = 120

	ta := textarea.New()
	ta.Placeholder = "Message..."
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = content.MaxLength
	ta.SetHeight(1)
	ta.KeyMap.InsertNewline.SetKeys("alt+enter", "ctrl+j")

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	now := cfg.Now()
	m := Model{
		cfg:          cfg,
		styles:       ui.NewStyles(cfg.Theme),
		layout:       ui.NewLayoutConfig(80, 24),
		width:        80,
		height:       24,
		mode:         ListView,
		help:         help.New(),
		logger:       logging.Get(logging.CategoryUI),
		search:       ti,
		filter:       conversation.FilterAll,
		cursor:       ui.NewCursor(),
		mountedAt:    now,
		now:          now,
		textarea:     ta,
		viewport:     viewport.New(80, 10),
		spinner:      sp,
		rendered:     make(map[string]string),
		selectedMsg:  -1,
		suggestion:   -1,
		reactions:    make(map[string]reaction),
		bookmarks:    make(map[string]bool),
		shutdownOnce: &sync.Once{},
	}
	m.applyTheme()
	m.resize(80, 24)
	return m
}

// Init starts the entry animation.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, frameTick())
}

// Shutdown releases the open conversation's timers. Safe to call more
// than once.
func (m Model) Shutdown() {
	m.shutdownOnce.Do(func() {
		m.closeConversation()
	})
}

// Mode reports the active screen.
func (m Model) Mode() ViewMode {
	return m.mode
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.layout = ui.NewLayoutConfig(width, height)
	m.ready = true

	cw := m.layout.ContentWidth()
	m.search.Width = max(10, cw-6)
	m.textarea.SetWidth(max(10, cw-4))
	m.viewport.Width = cw
	m.viewport.Height = m.layout.ChatHeight()
	m.help.Width = cw

	m.rebuildRenderer()
	m.ensureListVisible()
	if m.mode == ChatView {
		m.refreshViewport(false)
	}
}

// applyTheme restyles every component after a theme change.
func (m *Model) applyTheme() {
	m.styles = ui.NewStyles(m.cfg.Theme)
	m.cfg.Settings.DarkMode = m.cfg.Theme.IsDark

	m.spinner.Style = m.styles.Typing
	m.search.PromptStyle = m.styles.Accent
	m.search.TextStyle = m.styles.Body
	m.search.PlaceholderStyle = m.styles.Muted
	m.textarea.FocusedStyle.Placeholder = m.styles.Muted
	m.textarea.BlurredStyle.Placeholder = m.styles.Muted
	m.textarea.FocusedStyle.Text = m.styles.Body
	m.textarea.FocusedStyle.CursorLine = m.styles.Body
	m.help.Styles.ShortKey = m.styles.Accent
	m.help.Styles.ShortDesc = m.styles.Help
	m.help.Styles.ShortSeparator = m.styles.Help
	m.help.Styles.FullKey = m.styles.Accent
	m.help.Styles.FullDesc = m.styles.Help

	m.rebuildRenderer()
	if m.mode == ChatView {
		m.refreshViewport(false)
	}
}

func (m *Model) rebuildRenderer() {
	style := "dark"
	if !m.cfg.Theme.IsDark {
		style = "light"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(max(10, m.layout.BubbleWidth()-4)),
	)
	if err != nil {
		m.logger.Warn("markdown renderer unavailable", zap.Error(err))
		r = nil
	}
	m.renderer = r
	m.rendered = make(map[string]string)
}

// safeRenderMarkdown renders an assistant reply, falling back to the raw
// text if glamour fails or panics.
func (m Model) safeRenderMarkdown(text string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = text
		}
	}()

	if m.renderer != nil && text != "" {
		out, err := m.renderer.Render(text)
		if err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return text
}

func frameTick() tea.Cmd {
	return tea.Tick(ui.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// startAnimation arms the frame ticker unless it is already running.
func (m *Model) startAnimation() tea.Cmd {
	if m.animating {
		return nil
	}
	m.animating = true
	return frameTick()
}

func (m Model) needsAnimation() bool {
	switch m.mode {
	case ListView:
		if m.refreshing || !m.cursor.Settled() {
			return true
		}
		entry := ui.EntryDuration + ui.Stagger(m.layout.VisibleCards(), ui.ListStagger)
		return m.now.Sub(m.mountedAt) < entry
	case ChatView:
		return m.state.Recording
	}
	return false
}

func (m *Model) showToast(text string, isErr bool) tea.Cmd {
	m.toastSeq++
	id := m.toastSeq
	m.toast = &toast{id: id, text: text, err: isErr}
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.Shutdown()
	return m, tea.Quit
}
