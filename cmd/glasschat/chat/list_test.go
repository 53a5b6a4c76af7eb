package chat

import (
	"testing"

	"glasschat/internal/conversation"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visibleIDs(m Model) []string {
	var out []string
	for _, c := range m.visible() {
		out = append(out, c.ID)
	}
	return out
}

func selectedID(t *testing.T, m Model) string {
	t.Helper()
	c, ok := m.selected()
	require.True(t, ok)
	return c.ID
}

func TestList_InitialRender(t *testing.T) {
	h := NewTestModel(t)

	view := h.model.View()
	assert.Contains(t, view, "Chats")
	assert.Contains(t, view, "PINNED")
	assert.Contains(t, view, "RECENT")
	assert.Contains(t, view, "Open AI GPT-4")
	assert.Contains(t, view, "The derivative is 2x + 3")
	assert.Contains(t, view, "All 3")
	assert.Contains(t, view, "Pinned 1")
	assert.Contains(t, view, "Unread 2")
}

func TestList_Navigation(t *testing.T) {
	h := NewTestModel(t)
	assert.Equal(t, "1", selectedID(t, h.model))

	h.press("down")
	assert.Equal(t, "2", selectedID(t, h.model))

	h.press("j", "j", "j")
	assert.Equal(t, "3", selectedID(t, h.model), "cursor stops at the last row")

	h.press("up", "k", "k")
	assert.Equal(t, "1", selectedID(t, h.model))
}

func TestList_CursorAnimates(t *testing.T) {
	h := NewTestModel(t)

	cmd := h.press("down")
	require.NotNil(t, cmd)
	assert.Equal(t, 1, h.model.cursor.Target())

	for i := 0; i < 200 && !h.model.cursor.Settled(); i++ {
		h.send(frameMsg(clockStart))
	}
	assert.Equal(t, 1, h.model.cursor.Row())
}

func TestList_Search(t *testing.T) {
	h := NewTestModel(t)

	h.press("/")
	require.True(t, h.model.searching)

	h.typeText("CODE")
	assert.Equal(t, []string{"2"}, visibleIDs(h.model))

	h.press("enter")
	assert.False(t, h.model.searching)
	assert.Equal(t, []string{"2"}, visibleIDs(h.model), "query survives leaving the field")

	h.press("/", "esc")
	assert.Equal(t, []string{"1", "2", "3"}, visibleIDs(h.model))
	assert.Empty(t, h.model.search.Value())
}

func TestList_SearchMatchesLastMessage(t *testing.T) {
	h := NewTestModel(t)

	h.press("/")
	h.typeText("line 42")
	assert.Equal(t, []string{"2"}, visibleIDs(h.model))
}

func TestList_EmptyState(t *testing.T) {
	h := NewTestModel(t)

	h.press("/")
	h.typeText("zzz")
	assert.Empty(t, visibleIDs(h.model))
	assert.Contains(t, h.model.View(), "No conversations")

	// Nothing to act on.
	h.press("enter", "p")
	assert.Equal(t, ListView, h.model.Mode())
}

func TestList_FilterCycles(t *testing.T) {
	h := NewTestModel(t)

	h.press("tab")
	assert.Equal(t, conversation.FilterPinned, h.model.filter)
	assert.Equal(t, []string{"1"}, visibleIDs(h.model))

	h.press("tab")
	assert.Equal(t, conversation.FilterUnread, h.model.filter)
	assert.Equal(t, []string{"1", "2"}, visibleIDs(h.model))

	h.press("tab")
	assert.Equal(t, conversation.FilterAll, h.model.filter)
	assert.Len(t, visibleIDs(h.model), 3)
}

func TestList_PinFollowsConversation(t *testing.T) {
	h := NewTestModel(t)

	h.press("down", "down")
	require.Equal(t, "3", selectedID(t, h.model))

	h.press("p")
	c, err := h.store.Get("3")
	require.NoError(t, err)
	assert.True(t, c.Pinned)
	assert.Equal(t, []string{"1", "3", "2"}, visibleIDs(h.model))
	assert.Equal(t, "3", selectedID(t, h.model))
	require.NotNil(t, h.model.toast)
	assert.Equal(t, "Pinned Math Solver", h.model.toast.text)

	h.press("p")
	c, _ = h.store.Get("3")
	assert.False(t, c.Pinned)
	assert.Equal(t, "Unpinned Math Solver", h.model.toast.text)
}

func TestList_Mute(t *testing.T) {
	h := NewTestModel(t)

	h.press("m")
	c, _ := h.store.Get("1")
	assert.True(t, c.Muted)
	assert.Equal(t, "Muted Open AI GPT-4", h.model.toast.text)
}

func TestList_DeleteAsksFirst(t *testing.T) {
	h := NewTestModel(t)
	h.press("down", "down")

	h.press("d")
	require.NotNil(t, h.model.confirm)
	assert.Contains(t, h.model.View(), "Delete conversation?")

	h.press("n")
	assert.Nil(t, h.model.confirm)
	assert.Equal(t, 3, h.store.Len())

	h.press("d", "y")
	assert.Nil(t, h.model.confirm)
	assert.Equal(t, []string{"1", "2"}, visibleIDs(h.model))
	assert.Equal(t, "2", selectedID(t, h.model), "cursor clamps to the new last row")
	assert.Equal(t, "Conversation deleted", h.model.toast.text)
}

func TestList_NewChat(t *testing.T) {
	h := NewTestModel(t)
	h.press("tab")

	h.press("n")
	require.Equal(t, ChatView, h.model.Mode())
	assert.Equal(t, 4, h.store.Len())

	first := h.store.List()[0]
	assert.Equal(t, "New Chat", first.Title)
	assert.Equal(t, first.ID, h.model.ctrl.ConversationID())
	assert.Equal(t, conversation.FilterAll, h.model.filter)
	assert.Contains(t, h.model.View(), "How can I help you today?")
}

func TestList_Refresh(t *testing.T) {
	h := NewTestModel(t)
	h.press("d", "y")
	require.Equal(t, 2, h.store.Len())

	cmd := h.press("r")
	require.NotNil(t, cmd)
	assert.True(t, h.model.refreshing)
	assert.NotContains(t, h.model.View(), "Code Assistant", "skeleton rows replace the cards")

	h.send(refreshDoneMsg{})
	assert.False(t, h.model.refreshing)
	assert.Equal(t, 1, h.reloads)
	assert.Equal(t, 3, h.store.Len())
	assert.Contains(t, h.model.View(), "Open AI GPT-4")
}

func TestList_RefreshFailureKeepsList(t *testing.T) {
	h := NewTestModel(t, WithReloadError())

	h.press("r")
	h.send(refreshDoneMsg{})
	assert.False(t, h.model.refreshing)
	assert.Equal(t, 3, h.store.Len())
	require.NotNil(t, h.model.toast)
	assert.True(t, h.model.toast.err)
	assert.Equal(t, "Refresh failed", h.model.toast.text)
}

func TestList_OpenMarksRead(t *testing.T) {
	h := NewTestModel(t)

	h.openChat("1")
	c, err := h.store.Get("1")
	require.NoError(t, err)
	assert.Zero(t, c.Unread)
}

func TestList_ToastExpires(t *testing.T) {
	h := NewTestModel(t)
	h.press("m")
	require.NotNil(t, h.model.toast)
	id := h.model.toast.id

	h.press("m")
	h.send(toastExpiredMsg{id: id})
	assert.NotNil(t, h.model.toast, "a newer toast outlives the old timer")

	h.send(toastExpiredMsg{id: h.model.toast.id})
	assert.Nil(t, h.model.toast)
}

func TestList_Quit(t *testing.T) {
	h := NewTestModel(t)

	cmd := h.press("q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, h.model.View())
}

func TestList_TooSmall(t *testing.T) {
	h := NewTestModel(t)
	h.send(tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Contains(t, h.model.View(), "Terminal too small")
}
