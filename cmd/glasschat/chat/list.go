package chat

import (
	"fmt"
	"strings"
	"time"

	"glasschat/cmd/glasschat/ui"
	"glasschat/internal/conversation"
	"glasschat/internal/logging"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// query is the active search and filter.
func (m Model) query() conversation.Query {
	return conversation.Query{Search: m.search.Value(), Filter: m.filter}
}

// sections returns the visible list split into pinned and recent.
func (m Model) sections() conversation.Sections {
	return conversation.Split(m.cfg.Store.List(), m.query())
}

// visible is the flattened list the cursor moves over.
func (m Model) visible() []conversation.Conversation {
	return m.sections().Flatten()
}

// selected returns the conversation under the cursor.
func (m Model) selected() (conversation.Conversation, bool) {
	items := m.visible()
	i := m.cursor.Target()
	if i < 0 || i >= len(items) {
		return conversation.Conversation{}, false
	}
	return items[i], true
}

// ensureListVisible clamps the cursor to the list and scrolls the window
// so it stays on screen.
func (m *Model) ensureListVisible() {
	n := len(m.visible())
	target := m.cursor.Target()
	if n == 0 {
		m.cursor.Jump(0)
		m.listOffset = 0
		return
	}
	if target >= n {
		m.cursor.Jump(n - 1)
		target = n - 1
	}
	if target < 0 {
		m.cursor.Jump(0)
		target = 0
	}

	page := m.layout.VisibleCards()
	if target < m.listOffset {
		m.listOffset = target
	}
	if target >= m.listOffset+page {
		m.listOffset = target - page + 1
	}
	m.listOffset = max(0, min(m.listOffset, n-1))
}

func (m Model) moveCursor(delta int) (Model, tea.Cmd) {
	n := len(m.visible())
	if n == 0 {
		return m, nil
	}
	next := max(0, min(n-1, m.cursor.Target()+delta))
	m.cursor.SetTarget(next)
	m.ensureListVisible()
	cmd := m.startAnimation()
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, listKeys.Quit):
		return m.quit()

	case key.Matches(msg, listKeys.Up):
		return m.moveCursor(-1)

	case key.Matches(msg, listKeys.Down):
		return m.moveCursor(1)

	case key.Matches(msg, listKeys.Open):
		c, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m.openConversation(c.ID)

	case key.Matches(msg, listKeys.Search):
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, listKeys.Filter):
		m.filter = m.filter.Next()
		m.cursor.Jump(0)
		m.listOffset = 0
		m.mountedAt = m.now
		cmd := m.startAnimation()
		return m, cmd

	case key.Matches(msg, listKeys.New):
		c := m.cfg.Store.Create()
		logging.Get(logging.CategoryStore).Info("conversation created", zap.String("conversation", c.ID))
		m.filter = conversation.FilterAll
		m.search.Reset()
		m.cursor.Jump(0)
		return m.openConversation(c.ID)

	case key.Matches(msg, listKeys.Pin):
		c, ok := m.selected()
		if !ok {
			return m, nil
		}
		pinned, err := m.cfg.Store.TogglePin(c.ID)
		if err != nil {
			cmd := m.showToast(err.Error(), true)
			return m, cmd
		}
		m.followConversation(c.ID)
		if pinned {
			cmd := m.showToast("Pinned "+c.Title, false)
			return m, cmd
		}
		cmd := m.showToast("Unpinned "+c.Title, false)
		return m, cmd

	case key.Matches(msg, listKeys.Mute):
		c, ok := m.selected()
		if !ok {
			return m, nil
		}
		muted, err := m.cfg.Store.ToggleMute(c.ID)
		if err != nil {
			cmd := m.showToast(err.Error(), true)
			return m, cmd
		}
		if muted {
			cmd := m.showToast("Muted "+c.Title, false)
			return m, cmd
		}
		cmd := m.showToast("Unmuted "+c.Title, false)
		return m, cmd

	case key.Matches(msg, listKeys.Delete):
		c, ok := m.selected()
		if !ok {
			return m, nil
		}
		id := c.ID
		m.confirm = &confirmDialog{
			title:  "Delete conversation?",
			body:   fmt.Sprintf("%q and its messages will be removed.", c.Title),
			action: "Delete",
			confirm: func(m Model) (Model, tea.Cmd) {
				return m.deleteConversation(id)
			},
		}
		return m, nil

	case key.Matches(msg, listKeys.Refresh):
		return m.startRefresh()

	case key.Matches(msg, listKeys.Profile):
		m.mode = ProfileView
		m.profileRow = 0
		return m, nil
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.search.Reset()
		m.search.Blur()
		m.searching = false
		m.cursor.Jump(0)
		m.ensureListVisible()
		return m, nil
	case tea.KeyEnter:
		m.search.Blur()
		m.searching = false
		return m, nil
	case tea.KeyUp, tea.KeyDown:
		delta := 1
		if msg.Type == tea.KeyUp {
			delta = -1
		}
		return m.moveCursor(delta)
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.cursor.Jump(0)
		m.listOffset = 0
	}
	m.ensureListVisible()
	return m, cmd
}

// followConversation keeps the cursor on id after the list reorders.
func (m *Model) followConversation(id string) {
	for i, c := range m.visible() {
		if c.ID == id {
			m.cursor.Jump(i)
			break
		}
	}
	m.ensureListVisible()
}

func (m Model) deleteConversation(id string) (Model, tea.Cmd) {
	if m.ctrl != nil && m.ctrl.ConversationID() == id {
		m.closeConversation()
	}
	if err := m.cfg.Store.Delete(id); err != nil {
		cmd := m.showToast(err.Error(), true)
		return m, cmd
	}
	logging.Get(logging.CategoryStore).Info("conversation deleted", zap.String("conversation", id))

	var back tea.Cmd
	if m.mode == ChatView {
		m, back = m.backToList()
	}
	m.ensureListVisible()
	cmd := tea.Batch(back, m.showToast("Conversation deleted", false))
	return m, cmd
}

func (m Model) startRefresh() (tea.Model, tea.Cmd) {
	if m.refreshing {
		return m, nil
	}
	m.refreshing = true
	m.refreshStarted = m.now
	anim := m.startAnimation()
	return m, tea.Batch(
		anim,
		tea.Tick(m.cfg.RefreshDelay, func(time.Time) tea.Msg { return refreshDoneMsg{} }),
	)
}

// finishRefresh restores the seed list.
func (m Model) finishRefresh() (tea.Model, tea.Cmd) {
	m.refreshing = false
	if m.cfg.ReloadSeed == nil {
		return m, nil
	}
	items, err := m.cfg.ReloadSeed()
	if err != nil {
		m.logger.Warn("refresh failed", zap.Error(err))
		cmd := m.showToast("Refresh failed", true)
		return m, cmd
	}
	m.cfg.Store.Replace(items)
	m.cursor.Jump(0)
	m.listOffset = 0
	m.mountedAt = m.now
	m.ensureListVisible()
	logging.Get(logging.CategoryStore).Info("conversations refreshed", zap.Int("count", len(items)))
	cmd := m.startAnimation()
	return m, cmd
}

// renderList draws the conversation list screen.
func (m Model) renderList() string {
	s := m.styles
	width := m.layout.ContentWidth()
	all := m.cfg.Store.List()
	counts := conversation.Counts(all)

	title := s.Title.Render("Chats")
	hint := s.Muted.Render("P profile")
	gap := max(1, width-lipgloss.Width(title)-lipgloss.Width(hint))
	header := title + strings.Repeat(" ", gap) + hint
	sub := s.Subtitle.Render(fmt.Sprintf("%d conversations · %d unread", counts[conversation.FilterAll], counts[conversation.FilterUnread]))

	search := s.SearchBox.Width(width - 2).Render(m.search.View())

	var tabs []string
	for _, f := range conversation.Filters {
		label := fmt.Sprintf("%s %d", f.Label(), counts[f])
		if f == m.filter {
			tabs = append(tabs, s.TabActive.Render(label))
		} else {
			tabs = append(tabs, s.TabInactive.Render(label))
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	body := m.renderCards(width)
	return lipgloss.JoinVertical(lipgloss.Left,
		header, sub, search, tabBar,
		lipgloss.NewStyle().Height(m.layout.ListHeight()).MaxHeight(m.layout.ListHeight()).Render(body),
		m.renderStatus(),
		m.help.View(listKeys),
	)
}

func (m Model) renderCards(width int) string {
	s := m.styles
	if m.refreshing {
		elapsed := m.animationElapsed(m.refreshStarted)
		rows := make([]string, 0, 3)
		for i := 0; i < min(3, m.layout.VisibleCards()); i++ {
			rows = append(rows, ui.SkeletonRow(s, width, elapsed+time.Duration(i)*ui.ListStagger))
		}
		return strings.Join(rows, "\n")
	}

	sec := m.sections()
	items := sec.Flatten()
	if len(items) == 0 {
		return lipgloss.Place(width, m.layout.ListHeight(), lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center,
				s.Muted.Render(ui.Icon("Sparkles")),
				s.Title.Render("No conversations"),
				s.Subtitle.Render("Try a different search or filter"),
			))
	}

	page := m.layout.VisibleCards()
	end := min(len(items), m.listOffset+page)
	highlight := m.cursor.Row()
	elapsed := m.animationElapsed(m.mountedAt)

	var rows []string
	for i := m.listOffset; i < end; i++ {
		switch {
		case i == 0 && len(sec.Pinned) > 0:
			rows = append(rows, s.Section.Render("PINNED"))
		case i == len(sec.Pinned):
			rows = append(rows, s.Section.Render("RECENT"))
		}
		fade := ui.Fade(elapsed, ui.Stagger(i-m.listOffset, ui.ListStagger), ui.EntryDuration)
		// The target card stays pressed until the cursor lands on it.
		cardWidth := width
		if i == m.cursor.Target() && !m.cursor.Settled() {
			cardWidth = int(float64(width) * ui.PressScale(true))
		}
		rows = append(rows, ui.ConversationCard(s, items[i], cardWidth, i == highlight, fade))
	}
	return strings.Join(rows, "\n")
}

// renderStatus is the toast line shared by every screen.
func (m Model) renderStatus() string {
	if m.toast == nil {
		return ""
	}
	if m.toast.err {
		return m.styles.ToastErr.Render(m.toast.text)
	}
	return m.styles.ToastOK.Render(m.toast.text)
}
