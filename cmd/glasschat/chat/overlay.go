package chat

import (
	"strings"

	"glasschat/cmd/glasschat/ui"
	"glasschat/internal/session"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// menu returns the title and rows of the open chat modal.
func (m Model) menu() (string, []menuItem) {
	switch m.state.Modal {
	case session.ModalAttach:
		return "Attach", attachItems
	case session.ModalTools:
		return "AI Tools", toolItems
	case session.ModalOptions:
		return "Options", optionItems(m.conv.Muted)
	}
	return "", nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	_, items := m.menu()
	switch {
	case key.Matches(msg, menuKeys.Back):
		m.ctrl.CloseModal()
		m.syncFromController()
		return m, nil
	case key.Matches(msg, menuKeys.Up):
		if m.menuIndex > 0 {
			m.menuIndex--
		}
		return m, nil
	case key.Matches(msg, menuKeys.Down):
		if m.menuIndex < len(items)-1 {
			m.menuIndex++
		}
		return m, nil
	case key.Matches(msg, menuKeys.Select):
		if m.menuIndex < 0 || m.menuIndex >= len(items) {
			return m, nil
		}
		return m.selectMenuItem(items[m.menuIndex])
	}
	return m, nil
}

func (m Model) selectMenuItem(item menuItem) (tea.Model, tea.Cmd) {
	m.logger.Debug("menu item selected",
		zap.String("modal", m.state.Modal.String()),
		zap.String("item", item.id))

	switch m.state.Modal {
	case session.ModalAttach:
		m.ctrl.SubmitAttachment(session.AttachmentKind(item.id))
		cmd := m.resync(true)
		return m, cmd

	case session.ModalTools:
		m.ctrl.SelectTool(session.Tool(item.id))
		cmd := m.resync(false)
		return m, cmd

	case session.ModalOptions:
		return m.selectOption(item.id)
	}
	return m, nil
}

func (m Model) selectOption(id string) (tea.Model, tea.Cmd) {
	switch id {
	case optionClear:
		m.confirm = &confirmDialog{
			title:  "Clear chat?",
			body:   "All messages in this conversation will be removed.",
			action: "Clear",
			confirm: func(m Model) (Model, tea.Cmd) {
				if m.ctrl == nil {
					return m, nil
				}
				m.ctrl.Clear()
				m.selectedMsg = -1
				m.copiedID = ""
				cmd := tea.Batch(m.resync(true), m.showToast("Chat cleared", false))
				return m, cmd
			},
		}
		return m, nil

	case optionMute:
		muted, err := m.cfg.Store.ToggleMute(m.conv.ID)
		m.ctrl.CloseModal()
		m.syncFromController()
		if err != nil {
			cmd := m.showToast(err.Error(), true)
			return m, cmd
		}
		if muted {
			cmd := m.showToast("Notifications muted", false)
			return m, cmd
		}
		cmd := m.showToast("Notifications on", false)
		return m, cmd

	case optionDelete:
		convID := m.conv.ID
		m.confirm = &confirmDialog{
			title:  "Delete chat?",
			body:   "This conversation and its messages will be removed.",
			action: "Delete",
			confirm: func(m Model) (Model, tea.Cmd) {
				return m.deleteConversation(convID)
			},
		}
		return m, nil

	default:
		m.ctrl.CloseModal()
		m.syncFromController()
		cmd := m.showToast("Action: "+id, false)
		return m, cmd
	}
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, confirmKeys.Yes):
		dialog := m.confirm
		m.confirm = nil
		return dialog.confirm(m)
	case key.Matches(msg, confirmKeys.No):
		m.confirm = nil
		return m, nil
	}
	return m, nil
}

func (m Model) renderMenu() string {
	s := m.styles
	title, items := m.menu()

	lines := []string{s.ModalTitle.Render(title), ""}
	for i, it := range items {
		label := it.label
		if it.desc != "" {
			label += s.Muted.Render("  " + it.desc)
		}
		style := s.MenuItem
		if it.destructive {
			style = s.Destructive
		}
		if i == m.menuIndex {
			lines = append(lines, s.MenuSelected.Render("▸ ")+style.Render(label))
		} else {
			lines = append(lines, "  "+style.Render(label))
		}
	}
	lines = append(lines, "", m.help.View(menuKeys))
	return ui.Overlay(s, strings.Join(lines, "\n"), m.width, m.height)
}

func (m Model) renderConfirm() string {
	s := m.styles
	d := m.confirm
	buttons := s.Muted.Render("[n] Cancel") + "   " + s.Destructive.Render("[y] "+d.action)
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.ModalTitle.Render(d.title),
		"",
		s.Body.Render(d.body),
		"",
		buttons,
	)
	return ui.Overlay(s, body, m.width, m.height)
}
