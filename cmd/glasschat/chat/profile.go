package chat

import (
	"strings"

	"glasschat/cmd/glasschat/ui"
	"glasschat/internal/profile"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// nextMode cycles the AI mode picker.
func nextMode(current profile.AIMode, step int) profile.AIMode {
	modes := profile.Modes()
	idx := 0
	for i, info := range modes {
		if info.ID == current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(modes)) % len(modes)
	return modes[idx].ID
}

func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, menuKeys.Back), msg.String() == "q":
		m.mode = ListView
		return m, nil

	case key.Matches(msg, menuKeys.Up):
		if m.profileRow > 0 {
			m.profileRow--
		}
		return m, nil

	case key.Matches(msg, menuKeys.Down):
		if m.profileRow < profileRows-1 {
			m.profileRow++
		}
		return m, nil

	case msg.Type == tea.KeyLeft, msg.Type == tea.KeyRight:
		if m.profileRow != rowAIMode {
			return m, nil
		}
		step := 1
		if msg.Type == tea.KeyLeft {
			step = -1
		}
		m.cfg.Settings.Mode = nextMode(m.cfg.Settings.Mode, step)
		return m, nil

	case key.Matches(msg, menuKeys.Select):
		return m.activateProfileRow()
	}
	return m, nil
}

func (m Model) activateProfileRow() (tea.Model, tea.Cmd) {
	switch m.profileRow {
	case rowAIMode:
		m.cfg.Settings.Mode = nextMode(m.cfg.Settings.Mode, 1)
		m.logger.Info("ai mode changed", zap.String("mode", string(m.cfg.Settings.Mode)))
		return m, nil

	case rowDarkMode:
		m.cfg.Theme = m.cfg.Theme.Toggle()
		m.applyTheme()
		m.logger.Info("theme toggled", zap.String("theme", m.cfg.Theme.Name))
		return m, nil

	case rowNotifications:
		m.cfg.Settings.Notifications = !m.cfg.Settings.Notifications
		return m, nil

	case rowClearCache:
		m.confirm = &confirmDialog{
			title:  "Clear cache?",
			body:   "Cached media and drafts will be removed.",
			action: "Clear",
			confirm: func(m Model) (Model, tea.Cmd) {
				cmd := m.showToast("Cache cleared", false)
				return m, cmd
			},
		}
		return m, nil

	case rowLogout:
		m.confirm = &confirmDialog{
			title:  "Log out?",
			body:   "You will need to sign in again.",
			action: "Log out",
			confirm: func(m Model) (Model, tea.Cmd) {
				cmd := m.showToast("Signed out (demo)", false)
				return m, cmd
			},
		}
		return m, nil
	}
	return m, nil
}

// Settings reports the profile toggles.
func (m Model) Settings() profile.Settings {
	return m.cfg.Settings
}

func (m Model) renderProfile() string {
	s := m.styles
	u := m.cfg.User
	width := m.layout.ContentWidth()

	avatar := s.Badge.Padding(1, 2).Render(u.Initials())
	ident := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(u.Name),
		s.Subtitle.Render(u.Email),
		s.Pill.Render(u.Plan)+" "+s.Muted.Render("Joined "+u.JoinDate),
	)
	card := s.Card.Width(width - 2).Render(lipgloss.JoinHorizontal(lipgloss.Center, avatar, "  ", ident))

	stats := u.Stats()
	cellW := max(8, (width-2)/max(1, len(stats))-2)
	cells := make([]string, 0, len(stats))
	for _, st := range stats {
		cells = append(cells, s.Card.Width(cellW).Align(lipgloss.Center).Render(
			s.Title.Render(st.Value)+"\n"+s.Muted.Render(st.Label)))
	}
	statRow := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	storage := lipgloss.JoinVertical(lipgloss.Left,
		s.Section.Render("STORAGE"),
		ui.ProgressBar(s, u.StorageFraction(), max(10, width-4)),
		s.Muted.Render(u.StorageLabel()),
	)

	mode := m.cfg.Settings.Mode.Info()
	rows := []string{
		m.profileLine(rowAIMode, "AI mode", lipgloss.NewStyle().Foreground(lipgloss.Color(mode.Color)).Render("‹ "+mode.Name+" ›")),
		m.profileLine(rowDarkMode, "Dark mode", ui.Toggle(s, m.cfg.Theme.IsDark)),
		m.profileLine(rowNotifications, "Notifications", ui.Toggle(s, m.cfg.Settings.Notifications)),
		m.profileLine(rowClearCache, "Clear cache", ""),
		m.profileLine(rowLogout, s.Destructive.Render("Log out"), ""),
	}
	settings := lipgloss.JoinVertical(lipgloss.Left,
		s.Section.Render("SETTINGS"),
		strings.Join(rows, "\n"),
		s.Muted.Render(mode.Desc),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Profile"),
		card,
		statRow,
		storage,
		"",
		settings,
		"",
		m.renderStatus(),
		m.help.View(menuKeys),
	)
}

func (m Model) profileLine(row int, label, value string) string {
	width := m.layout.ContentWidth()
	prefix := "  "
	style := m.styles.MenuItem
	if row == m.profileRow {
		prefix = m.styles.MenuSelected.Render("▸ ")
		style = m.styles.MenuSelected
	}
	left := prefix + style.Render(label)
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(value))
	return left + strings.Repeat(" ", gap) + value
}
