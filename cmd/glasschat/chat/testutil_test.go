package chat

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"glasschat/cmd/glasschat/ui"
	"glasschat/internal/clipboard"
	"glasschat/internal/conversation"
	"glasschat/internal/profile"
	"glasschat/internal/session"
	"glasschat/internal/session/sessiontest"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

var clockStart = time.Date(2024, 1, 15, 10, 40, 0, 0, time.UTC)

// fixture is the list the tests start from: one pinned unread chat, two
// recent ones, one of them empty.
func fixture() []conversation.Conversation {
	return []conversation.Conversation{
		{
			ID: "1", Title: "Open AI GPT-4", Icon: "Bot", Pinned: true, Unread: 2, Online: true,
			Messages: []conversation.Message{
				{ID: "m1", Text: "Explain hooks", Sender: conversation.SenderUser, SentAt: "10:30 AM"},
				{ID: "m2", Text: "Hooks let you use **state**.", Sender: conversation.SenderAssistant, SentAt: "10:31 AM"},
			},
		},
		{
			ID: "2", Title: "Code Assistant", Icon: "Code2", Unread: 1, Online: true,
			Messages: []conversation.Message{
				{ID: "m3", Text: "The bug is in line 42.", Sender: conversation.SenderAssistant, SentAt: "9:00 AM"},
			},
		},
		{ID: "3", Title: "Math Solver", Icon: "Calculator", Preview: "The derivative is 2x + 3", Messages: []conversation.Message{}},
	}
}

// testHarness bundles a model with the fakes behind it.
type testHarness struct {
	t         *testing.T
	model     Model
	store     *conversation.Store
	scheduler *sessiontest.ManualScheduler
	clip      *clipboard.Memory
	reloads   int
}

type TestModelOption func(*Config)

func WithReloadError() TestModelOption {
	return func(c *Config) {
		c.ReloadSeed = func() ([]conversation.Conversation, error) {
			return nil, errors.New("seed unavailable")
		}
	}
}

func WithTheme(theme ui.Theme) TestModelOption {
	return func(c *Config) { c.Theme = theme }
}

// NewTestModel builds a model over the fixture with a manual clock for
// reply and voice timers.
func NewTestModel(t *testing.T, opts ...TestModelOption) *testHarness {
	t.Helper()

	h := &testHarness{
		t:         t,
		store:     conversation.NewStore(fixture()),
		scheduler: sessiontest.NewManualScheduler(clockStart),
		clip:      &clipboard.Memory{},
	}

	n := 0
	sessionOpts := session.DefaultOptions()
	sessionOpts.Scheduler = h.scheduler
	sessionOpts.Replies = session.NewCannedReplies(nil, 42)
	sessionOpts.Now = h.scheduler.Now
	sessionOpts.NewID = func() string {
		n++
		return fmt.Sprintf("new%d", n)
	}

	cfg := Config{
		Store: h.store,
		ReloadSeed: func() ([]conversation.Conversation, error) {
			h.reloads++
			return fixture(), nil
		},
		User: profile.User{
			Name: "Izzat Shafran", Email: "izzat@example.com", Plan: "Pro", JoinDate: "Jan 2024",
			TotalChats: 156, TotalMessages: 2847, SavedHours: 48,
			StorageUsed: 2_400_000_000, StorageTotal: 5_000_000_000,
		},
		Settings:     profile.Settings{Mode: profile.ModeBalanced, Notifications: true},
		Theme:        ui.DarkTheme(),
		Session:      sessionOpts,
		Clipboard:    h.clip,
		RefreshDelay: time.Second,
		Now:          func() time.Time { return clockStart },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := New(cfg)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	h.model = updated.(Model)
	t.Cleanup(func() { h.model.Shutdown() })
	return h
}

// keyMsg builds the key message bubbletea would deliver for k.
func keyMsg(k string) tea.KeyMsg {
	special := map[string]tea.KeyType{
		"enter":     tea.KeyEnter,
		"esc":       tea.KeyEsc,
		"tab":       tea.KeyTab,
		"shift+tab": tea.KeyShiftTab,
		"up":        tea.KeyUp,
		"down":      tea.KeyDown,
		"left":      tea.KeyLeft,
		"right":     tea.KeyRight,
		"backspace": tea.KeyBackspace,
		"pgup":      tea.KeyPgUp,
		"ctrl+a":    tea.KeyCtrlA,
		"ctrl+b":    tea.KeyCtrlB,
		"ctrl+c":    tea.KeyCtrlC,
		"ctrl+d":    tea.KeyCtrlD,
		"ctrl+l":    tea.KeyCtrlL,
		"ctrl+n":    tea.KeyCtrlN,
		"ctrl+o":    tea.KeyCtrlO,
		"ctrl+p":    tea.KeyCtrlP,
		"ctrl+r":    tea.KeyCtrlR,
		"ctrl+t":    tea.KeyCtrlT,
		"ctrl+y":    tea.KeyCtrlY,
	}
	if kt, ok := special[k]; ok {
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press feeds keys to the model and returns the last command.
func (h *testHarness) press(keys ...string) tea.Cmd {
	h.t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = h.model.Update(keyMsg(k))
		h.model = updated.(Model)
	}
	return cmd
}

// typeText types s into whichever input has focus.
func (h *testHarness) typeText(s string) {
	h.t.Helper()
	updated, _ := h.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	h.model = updated.(Model)
}

// send delivers an arbitrary message.
func (h *testHarness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	updated, cmd := h.model.Update(msg)
	h.model = updated.(Model)
	return cmd
}

// advance moves the session clock and delivers whatever the controller
// published.
func (h *testHarness) advance(d time.Duration) {
	h.t.Helper()
	h.scheduler.Advance(d)
	h.pump()
}

// pump hands queued controller events to the model the way the bridge
// command would.
func (h *testHarness) pump() {
	h.t.Helper()
	b := h.model.bridge
	if b == nil {
		return
	}
	events := b.drain()
	if len(events) == 0 {
		return
	}
	h.send(sessionEventsMsg{bridge: b, events: events})
}

// openChat opens conversation id through the list.
func (h *testHarness) openChat(id string) {
	h.t.Helper()
	for i, c := range h.model.visible() {
		if c.ID == id {
			h.model.cursor.Jump(i)
			h.press("enter")
			require.Equal(h.t, ChatView, h.model.Mode())
			require.Equal(h.t, id, h.model.ctrl.ConversationID())
			return
		}
	}
	h.t.Fatalf("conversation %q not visible", id)
}

func (h *testHarness) messages(id string) []conversation.Message {
	h.t.Helper()
	msgs, err := h.store.Messages(id)
	require.NoError(h.t, err)
	return msgs
}
