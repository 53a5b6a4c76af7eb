package chat

import (
	"testing"

	"glasschat/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openProfile(t *testing.T) *testHarness {
	t.Helper()
	h := NewTestModel(t)
	h.press("P")
	require.Equal(t, ProfileView, h.model.Mode())
	return h
}

func TestProfile_Render(t *testing.T) {
	h := openProfile(t)

	view := h.model.View()
	assert.Contains(t, view, "Izzat Shafran")
	assert.Contains(t, view, "IS")
	assert.Contains(t, view, "2,847")
	assert.Contains(t, view, "2.4 GB of 5.0 GB")
	assert.Contains(t, view, "Balanced")
}

func TestProfile_AIModeCycles(t *testing.T) {
	h := openProfile(t)

	h.press("enter")
	assert.Equal(t, profile.ModePrecise, h.model.Settings().Mode)

	h.press("right")
	assert.Equal(t, profile.ModeCreative, h.model.Settings().Mode)

	h.press("left")
	assert.Equal(t, profile.ModePrecise, h.model.Settings().Mode)
}

func TestProfile_DarkModeToggle(t *testing.T) {
	h := openProfile(t)
	require.True(t, h.model.Settings().DarkMode)

	h.press("down", "enter")
	assert.False(t, h.model.Settings().DarkMode)
	assert.Equal(t, "light", h.model.styles.Theme.Name)

	h.press("enter")
	assert.True(t, h.model.Settings().DarkMode)
}

func TestProfile_Notifications(t *testing.T) {
	h := openProfile(t)

	h.press("down", "down", "enter")
	assert.False(t, h.model.Settings().Notifications)

	// Arrows only move the mode picker.
	h.press("right")
	assert.Equal(t, profile.ModeBalanced, h.model.Settings().Mode)
}

func TestProfile_ConfirmedActions(t *testing.T) {
	tests := []struct {
		name  string
		downs int
		title string
		toast string
	}{
		{"clear cache", 3, "Clear cache?", "Cache cleared"},
		{"log out", 4, "Log out?", "Signed out (demo)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := openProfile(t)
			for i := 0; i < tt.downs; i++ {
				h.press("down")
			}

			h.press("enter")
			require.NotNil(t, h.model.confirm)
			assert.Contains(t, h.model.View(), tt.title)

			h.press("y")
			assert.Nil(t, h.model.confirm)
			require.NotNil(t, h.model.toast)
			assert.Equal(t, tt.toast, h.model.toast.text)
			assert.Equal(t, ProfileView, h.model.Mode())
		})
	}
}

func TestProfile_RowsClamp(t *testing.T) {
	h := openProfile(t)

	h.press("up")
	assert.Equal(t, rowAIMode, h.model.profileRow)

	for i := 0; i < 10; i++ {
		h.press("down")
	}
	assert.Equal(t, rowLogout, h.model.profileRow)
}

func TestProfile_Back(t *testing.T) {
	h := openProfile(t)
	h.press("esc")
	assert.Equal(t, ListView, h.model.Mode())
}
