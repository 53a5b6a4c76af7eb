package chat

import (
	"strings"

	"glasschat/cmd/glasschat/ui"
	"glasschat/internal/clipboard"
	"glasschat/internal/content"
	"glasschat/internal/conversation"
	"glasschat/internal/logging"
	"glasschat/internal/session"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// suggestions returns the prompts currently on offer: quick prompts on an
// empty chat, pills once there is history.
func (m Model) suggestions() []string {
	if len(m.messages) == 0 {
		return QuickPrompts
	}
	if m.state.ShowSuggestions {
		return SuggestionPills
	}
	return nil
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.Modal != session.ModalNone {
		return m.handleMenuKey(msg)
	}

	switch {
	case key.Matches(msg, chatKeys.Back):
		if m.selectedMsg >= 0 {
			m.selectedMsg = -1
			m.refreshViewport(false)
			return m, nil
		}
		if m.suggestion >= 0 {
			m.suggestion = -1
			m.refreshViewport(false)
			return m, nil
		}
		return m.backToList()

	case key.Matches(msg, chatKeys.Send):
		if m.suggestion >= 0 {
			if opts := m.suggestions(); m.suggestion < len(opts) {
				m.ctrl.SelectQuickPrompt(opts[m.suggestion])
			}
			m.suggestion = -1
			cmd := m.resync(false)
			return m, cmd
		}
		m.ctrl.SetDraft(m.textarea.Value())
		if strings.TrimSpace(m.textarea.Value()) == "" {
			m.ctrl.ToggleVoiceCapture()
			cmd := m.resync(false)
			return m, cmd
		}
		m.ctrl.SubmitDraft()
		cmd := m.resync(true)
		return m, cmd

	case key.Matches(msg, chatKeys.Suggest), msg.Type == tea.KeyShiftTab:
		opts := m.suggestions()
		if len(opts) == 0 || m.textarea.Value() != "" {
			break
		}
		step := 1
		if msg.Type == tea.KeyShiftTab {
			step = len(opts) - 1
		}
		if m.suggestion < 0 {
			m.suggestion = 0
			if step != 1 {
				m.suggestion = len(opts) - 1
			}
		} else {
			m.suggestion = (m.suggestion + step) % len(opts)
		}
		m.refreshViewport(false)
		return m, nil

	case key.Matches(msg, chatKeys.Voice):
		m.ctrl.ToggleVoiceCapture()
		cmd := m.resync(false)
		return m, cmd

	case key.Matches(msg, chatKeys.Attach):
		return m.openMenu(session.ModalAttach)

	case key.Matches(msg, chatKeys.Tools):
		return m.openMenu(session.ModalTools)

	case key.Matches(msg, chatKeys.Options):
		return m.openMenu(session.ModalOptions)

	case key.Matches(msg, chatKeys.PrevMsg):
		return m.moveSelection(-1), nil

	case key.Matches(msg, chatKeys.NextMsg):
		return m.moveSelection(1), nil

	case key.Matches(msg, chatKeys.Copy):
		return m.copyMessage()

	case key.Matches(msg, chatKeys.Like):
		return m.react(reactionLiked), nil

	case key.Matches(msg, chatKeys.Dislike):
		return m.react(reactionDisliked), nil

	case key.Matches(msg, chatKeys.Bookmark):
		return m.toggleBookmark()

	case msg.Type == tea.KeyPgUp, msg.Type == tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.suggestion >= 0 {
		m.suggestion = -1
		m.refreshViewport(false)
	}
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	m.ctrl.SetDraft(m.textarea.Value())
	return m, cmd
}

func (m Model) openMenu(modal session.Modal) (tea.Model, tea.Cmd) {
	m.ctrl.OpenModal(modal)
	m.menuIndex = 0
	m.syncFromController()
	return m, nil
}

// moveSelection steps the highlighted bubble; from none it starts at the
// newest message.
func (m Model) moveSelection(delta int) Model {
	n := len(m.messages)
	if n == 0 {
		return m
	}
	switch {
	case m.selectedMsg < 0:
		m.selectedMsg = n - 1
	default:
		m.selectedMsg = max(0, min(n-1, m.selectedMsg+delta))
	}
	m.refreshViewport(false)
	return m
}

// targetMessage is the selected bubble, or the newest one.
func (m Model) targetMessage() (conversation.Message, bool) {
	if len(m.messages) == 0 {
		return conversation.Message{}, false
	}
	if m.selectedMsg >= 0 && m.selectedMsg < len(m.messages) {
		return m.messages[m.selectedMsg], true
	}
	return m.messages[len(m.messages)-1], true
}

func (m Model) copyMessage() (tea.Model, tea.Cmd) {
	msg, ok := m.targetMessage()
	if !ok {
		return m, nil
	}
	log := logging.Get(logging.CategoryClipboard)
	if err := clipboard.Copy(m.cfg.Clipboard, msg.Text); err != nil {
		log.Warn("copy failed", zap.String("message", msg.ID), zap.Error(err))
		cmd := m.showToast("Copy failed", true)
		return m, cmd
	}
	log.Debug("message copied", zap.String("message", msg.ID))
	m.copiedID = msg.ID
	m.refreshViewport(false)
	cmd := m.showToast("Copied to clipboard", false)
	return m, cmd
}

// react toggles like or dislike on an assistant bubble.
func (m Model) react(r reaction) Model {
	msg, ok := m.targetMessage()
	if !ok || msg.IsUser() {
		return m
	}
	if m.reactions[msg.ID] == r {
		delete(m.reactions, msg.ID)
	} else {
		m.reactions[msg.ID] = r
	}
	m.refreshViewport(false)
	return m
}

func (m Model) toggleBookmark() (tea.Model, tea.Cmd) {
	msg, ok := m.targetMessage()
	if !ok {
		return m, nil
	}
	if m.bookmarks[msg.ID] {
		delete(m.bookmarks, msg.ID)
		m.refreshViewport(false)
		cmd := m.showToast("Bookmark removed", false)
		return m, cmd
	}
	m.bookmarks[msg.ID] = true
	m.refreshViewport(false)
	cmd := m.showToast("Bookmarked", false)
	return m, cmd
}

// badges renders the reaction and bookmark marks under a bubble.
func (m Model) badges(msg conversation.Message) string {
	var out []string
	switch m.reactions[msg.ID] {
	case reactionLiked:
		out = append(out, m.styles.Accent.Render(ui.GlyphLiked))
	case reactionDisliked:
		out = append(out, m.styles.Destructive.Render(ui.GlyphDisliked))
	}
	if m.bookmarks[msg.ID] {
		out = append(out, m.styles.Accent.Render(ui.GlyphBookmark))
	}
	if m.copiedID == msg.ID {
		out = append(out, m.styles.Online.Render(ui.GlyphCopied))
	}
	return strings.Join(out, " ")
}

// refreshViewport re-renders the message list into the viewport.
func (m *Model) refreshViewport(gotoBottom bool) {
	if m.mode != ChatView {
		return
	}
	m.viewport.SetContent(m.renderMessages())
	if gotoBottom {
		m.viewport.GotoBottom()
	}
}

func (m *Model) renderMessages() string {
	width := m.layout.ContentWidth()
	if len(m.messages) == 0 {
		return m.renderEmptyChat(width)
	}

	bubbleW := m.layout.BubbleWidth()
	blocks := make([]string, 0, len(m.messages))
	for i, msg := range m.messages {
		var body string
		if msg.IsUser() {
			body = msg.Text
			if lipgloss.Width(body) > bubbleW-2 {
				body = lipgloss.NewStyle().Width(bubbleW - 2).Render(body)
			}
		} else {
			cached, ok := m.rendered[msg.ID]
			if !ok {
				cached = m.safeRenderMarkdown(msg.Text)
				m.rendered[msg.ID] = cached
			}
			body = cached
		}
		blocks = append(blocks, ui.Bubble(m.styles, msg, body, width, bubbleW, i == m.selectedMsg, m.badges(msg)))
	}
	return strings.Join(blocks, "\n")
}

func (m Model) renderEmptyChat(width int) string {
	s := m.styles
	lines := []string{
		s.Accent.Render(ui.Icon(m.conv.Icon)),
		s.Title.Render("How can I help you today?"),
		s.Subtitle.Render("Ask anything or pick a prompt to get started"),
		"",
	}
	for i, p := range QuickPrompts {
		if i == m.suggestion {
			lines = append(lines, s.MenuSelected.Render("▸ "+p))
		} else {
			lines = append(lines, s.MenuItem.Render("  "+p))
		}
	}
	return lipgloss.Place(width, m.layout.ChatHeight(), lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// renderChat draws the chat screen.
func (m Model) renderChat() string {
	s := m.styles
	width := m.layout.ContentWidth()

	icon := ui.Icon(m.conv.Icon)
	title := s.Muted.Render("← ") + s.Accent.Render(icon) + " " + s.Title.Render(m.conv.Title)
	if m.conv.Muted {
		title += " " + s.Muted.Render(ui.GlyphMuted)
	}
	status := s.Muted.Render("Offline")
	if m.conv.Online {
		status = s.Online.Render(ui.GlyphOnline + " Online")
	}
	if m.state.AssistantTyping {
		status = s.Typing.Render("typing...")
	}
	header := s.Header.Width(width).Render(title + "\n" + status)

	composer := s.Composer.Width(width - 2).Render(m.textarea.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		m.renderActivity(width),
		composer,
		m.renderChatFooter(width),
	)
}

// renderActivity is the line above the composer: recording, typing, or
// suggestion pills.
func (m Model) renderActivity(width int) string {
	s := m.styles
	switch {
	case m.state.Recording:
		label := ui.GlyphOnline + " Recording..."
		if ui.Pulse(m.animationElapsed(m.recordStart), ui.PulsePeriod) > 1.05 {
			return s.Recording.Bold(true).Render(label)
		}
		return s.Recording.Render(label)

	case m.state.AssistantTyping:
		return m.spinner.View() + s.Typing.Render(" "+m.conv.Title+" is thinking...")

	case len(m.messages) > 0 && m.state.ShowSuggestions:
		pills := make([]string, 0, len(SuggestionPills))
		for i, p := range SuggestionPills {
			if i == m.suggestion {
				pills = append(pills, s.MenuSelected.Render(p))
			} else {
				pills = append(pills, s.Pill.Render(p))
			}
		}
		return ui.Truncate(strings.Join(pills, " "), width)
	}
	return ""
}

func (m Model) renderChatFooter(width int) string {
	left := m.renderStatus()
	if left == "" {
		left = m.help.View(chatKeys)
	}

	draft := m.textarea.Value()
	if draft == "" {
		return left
	}
	counter := m.styles.Counter.Render(content.Counter(draft))
	if content.NearLimit(draft) {
		counter = m.styles.CounterWarn.Render(content.Counter(draft))
	}
	left = ui.Truncate(left, max(1, width-lipgloss.Width(counter)-1))
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(counter))
	return left + strings.Repeat(" ", gap) + counter
}
