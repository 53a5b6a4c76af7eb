package chat

import (
	"time"

	"glasschat/internal/logging"
	"glasschat/internal/session"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Update routes a message to the active screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, chatKeys.ForceQuit) {
			return m.quit()
		}
		if m.confirm != nil {
			return m.handleConfirmKey(msg)
		}
		switch m.mode {
		case ChatView:
			return m.handleChatKey(msg)
		case ProfileView:
			return m.handleProfileKey(msg)
		default:
			return m.handleListKey(msg)
		}

	case sessionEventsMsg:
		if m.bridge == nil || msg.bridge != m.bridge {
			return m, nil
		}
		cmd := m.applyEvents(msg.events)
		return m, tea.Batch(cmd, m.bridge.wait())

	case spinner.TickMsg:
		if m.mode != ChatView || !m.state.AssistantTyping {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case frameMsg:
		m.now = time.Time(msg)
		m.cursor.Step()
		if m.needsAnimation() {
			return m, frameTick()
		}
		m.animating = false
		return m, nil

	case refreshDoneMsg:
		return m.finishRefresh()

	case toastExpiredMsg:
		if m.toast != nil && m.toast.id == msg.id {
			m.toast = nil
		}
		return m, nil

	case ConfigChangedMsg:
		m.cfg.Theme = msg.Theme
		m.cfg.Session = msg.Session
		m.applyTheme()
		m.logger.Info("configuration applied", zap.String("theme", msg.Theme.Name))
		return m, nil
	}

	// Cursor blink and other component traffic.
	var cmd tea.Cmd
	switch {
	case m.mode == ChatView:
		m.textarea, cmd = m.textarea.Update(msg)
	case m.mode == ListView && m.searching:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

// openConversation binds a controller to id and switches to the chat
// screen.
func (m Model) openConversation(id string) (Model, tea.Cmd) {
	m.closeConversation()

	if err := m.cfg.Store.MarkRead(id); err != nil {
		cmd := m.showToast("Conversation not found", true)
		return m, cmd
	}
	conv, err := m.cfg.Store.Get(id)
	if err != nil {
		cmd := m.showToast("Conversation not found", true)
		return m, cmd
	}

	opts := m.cfg.Session
	opts.Logger = logging.Get(logging.CategorySession)
	m.ctrl = session.New(id, m.cfg.Store, opts)
	m.bridge = newEventBridge()
	m.unsubscribe = m.ctrl.Subscribe(m.bridge.push)

	m.conv = conv
	m.mode = ChatView
	m.selectedMsg = -1
	m.suggestion = -1
	m.menuIndex = 0
	m.copiedID = ""
	m.reactions = make(map[string]reaction)
	m.bookmarks = make(map[string]bool)
	m.textarea.Reset()
	m.search.Blur()
	m.searching = false
	m.syncFromController()
	m.refreshViewport(true)

	m.logger.Info("conversation opened", zap.String("conversation", id))
	cmd := tea.Batch(m.textarea.Focus(), m.bridge.wait())
	return m, cmd
}

// closeConversation tears down the open controller. Its pending timers
// are stopped, so nothing it scheduled can land afterwards.
func (m *Model) closeConversation() {
	if m.ctrl == nil {
		return
	}
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.bridge.close()
	m.ctrl.Close()
	m.logger.Info("conversation closed", zap.String("conversation", m.ctrl.ConversationID()))
	m.ctrl = nil
	m.bridge = nil
	m.state = session.State{}
	m.messages = nil
}

// backToList leaves the chat or profile screen.
func (m Model) backToList() (Model, tea.Cmd) {
	m.closeConversation()
	m.textarea.Blur()
	m.mode = ListView
	m.mountedAt = m.now
	m.ensureListVisible()
	cmd := m.startAnimation()
	return m, cmd
}

// syncFromController copies the controller's flags and messages into the
// model after a synchronous call.
func (m *Model) syncFromController() {
	if m.ctrl == nil {
		return
	}
	m.state = m.ctrl.State()
	msgs, err := m.ctrl.Messages()
	if err != nil {
		m.logger.Warn("messages unavailable", zap.Error(err))
		msgs = nil
	}
	m.messages = msgs
	if m.selectedMsg >= len(m.messages) {
		m.selectedMsg = -1
	}
	if m.textarea.Value() != m.state.Draft {
		m.textarea.SetValue(m.state.Draft)
		m.textarea.CursorEnd()
	}
	if conv, err := m.cfg.Store.Get(m.ctrl.ConversationID()); err == nil {
		m.conv = conv
	}
}

// applyEvents folds a batch of controller events into the view.
func (m *Model) applyEvents(events []session.Event) tea.Cmd {
	scroll := false
	for _, ev := range events {
		switch ev.Kind {
		case session.EventMessageAppended, session.EventScrollToNewest:
			scroll = true
		case session.EventCleared:
			m.selectedMsg = -1
			m.copiedID = ""
			m.rendered = make(map[string]string)
		}
	}
	return m.resync(scroll)
}

// resync refreshes the view from the controller and starts the spinner or
// the recording pulse when those flags turn on.
func (m *Model) resync(scroll bool) tea.Cmd {
	wasTyping := m.state.AssistantTyping
	wasRecording := m.state.Recording

	m.now = m.cfg.Now()
	m.syncFromController()
	m.refreshViewport(scroll)

	var cmds []tea.Cmd
	if m.state.AssistantTyping && !wasTyping {
		cmds = append(cmds, m.spinner.Tick)
	}
	if m.state.Recording && !wasRecording {
		m.recordStart = m.now
		cmds = append(cmds, m.startAnimation())
	}
	return tea.Batch(cmds...)
}

// animationElapsed is the time since start on the model clock.
func (m Model) animationElapsed(start time.Time) time.Duration {
	if d := m.now.Sub(start); d > 0 {
		return d
	}
	return 0
}
