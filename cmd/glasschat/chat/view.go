package chat

import (
	"fmt"

	"glasschat/internal/session"

	"github.com/charmbracelet/lipgloss"
)

// View renders the active screen with any overlay on top.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}
	if m.layout.TooSmall() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.styles.Muted.Render(fmt.Sprintf("Terminal too small (%dx%d)", m.width, m.height)))
	}

	if m.confirm != nil {
		return m.renderConfirm()
	}
	if m.mode == ChatView && m.ctrl != nil && m.state.Modal != session.ModalNone {
		return m.renderMenu()
	}

	var body string
	switch m.mode {
	case ChatView:
		body = m.renderChat()
	case ProfileView:
		body = m.renderProfile()
	default:
		body = m.renderList()
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(body)
}
