// Package chat implements the interactive glasschat client: the
// conversation list, the chat screen with its simulated assistant, and the
// profile screen.
package chat

import (
	"time"

	"glasschat/cmd/glasschat/ui"
	"glasschat/internal/clipboard"
	"glasschat/internal/conversation"
	"glasschat/internal/profile"
	"glasschat/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

// ViewMode is the active screen.
type ViewMode int

const (
	ListView ViewMode = iota
	ChatView
	ProfileView
)

func (v ViewMode) String() string {
	switch v {
	case ChatView:
		return "chat"
	case ProfileView:
		return "profile"
	default:
		return "list"
	}
}

// DefaultRefreshDelay is the simulated pull-to-refresh wait.
const DefaultRefreshDelay = time.Second

// ToastDuration is how long a toast stays up.
const ToastDuration = 2 * time.Second

// Config wires the model to its collaborators.
type Config struct {
	Store *conversation.Store
	// ReloadSeed supplies the list that refresh restores.
	ReloadSeed func() ([]conversation.Conversation, error)

	User     profile.User
	Settings profile.Settings
	Theme    ui.Theme

	// Session is the template for every opened conversation's controller.
	Session   session.Options
	Clipboard clipboard.Writer

	RefreshDelay time.Duration
	Now          func() time.Time
}

// ConfigChangedMsg carries a reloaded configuration into the running
// program. The theme applies at once; session options apply to the next
// conversation opened.
type ConfigChangedMsg struct {
	Theme   ui.Theme
	Session session.Options
}

// sessionEventsMsg is a batch drained from an event bridge.
type sessionEventsMsg struct {
	bridge *eventBridge
	events []session.Event
}

// frameMsg drives animations.
type frameMsg time.Time

type refreshDoneMsg struct{}

type toastExpiredMsg struct{ id int }

type toast struct {
	id   int
	text string
	err  bool
}

// confirmDialog guards a destructive action.
type confirmDialog struct {
	title   string
	body    string
	action  string
	confirm func(Model) (Model, tea.Cmd)
}

// menuItem is one row of a chat modal.
type menuItem struct {
	id          string
	label       string
	desc        string
	destructive bool
}

var attachItems = []menuItem{
	{id: string(session.AttachCamera), label: "Camera", desc: "Take a photo"},
	{id: string(session.AttachGallery), label: "Gallery", desc: "Choose an image"},
	{id: string(session.AttachDocument), label: "Document", desc: "Share a file"},
}

var toolItems = []menuItem{
	{id: string(session.ToolSummarize), label: "Summarize", desc: "Condense the conversation"},
	{id: string(session.ToolTranslate), label: "Translate", desc: "Into Spanish"},
	{id: string(session.ToolSimplify), label: "Simplify", desc: "Explain it simpler"},
	{id: string(session.ToolExpand), label: "Expand", desc: "Elaborate more"},
}

const (
	optionClear  = "clear"
	optionMute   = "mute"
	optionShare  = "share"
	optionReport = "report"
	optionInfo   = "info"
	optionDelete = "delete"
)

func optionItems(muted bool) []menuItem {
	mute := "Mute notifications"
	if muted {
		mute = "Unmute notifications"
	}
	return []menuItem{
		{id: optionClear, label: "Clear chat", desc: "Remove all messages", destructive: true},
		{id: optionMute, label: mute},
		{id: optionShare, label: "Share chat"},
		{id: optionReport, label: "Report"},
		{id: optionInfo, label: "Chat info"},
		{id: optionDelete, label: "Delete chat", desc: "Remove this conversation", destructive: true},
	}
}

// QuickPrompts fill the draft on an empty chat.
var QuickPrompts = []string{"Write a story", "Help me code", "Summarize", "Creative ideas"}

// SuggestionPills are offered under a conversation until the first reply
// is scheduled.
var SuggestionPills = []string{"What can you do?", "Explain AI", "Write a poem", "Debug code"}

// profile screen rows
const (
	rowAIMode = iota
	rowDarkMode
	rowNotifications
	rowClearCache
	rowLogout
	profileRows
)
