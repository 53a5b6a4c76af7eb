package seed

import (
	"os"
	"path/filepath"
	"testing"

	"glasschat/internal/conversation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	require.Len(t, d.Conversations, 8)
	first := d.Conversations[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "Open AI GPT-4", first.Title)
	assert.True(t, first.Pinned)
	assert.Equal(t, 2, first.Unread)
	require.Len(t, first.Messages, 4)
	assert.Equal(t, conversation.SenderUser, first.Messages[0].Sender)
	assert.Equal(t, conversation.SenderAssistant, first.Messages[3].Sender)

	assert.Equal(t, "Izzat Shafran", d.Profile.Name)
	assert.Equal(t, 2847, d.Profile.TotalMessages)
}

func TestLoad_EmptyPathUsesBuiltin(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)
	assert.Len(t, d.Conversations, 8)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	doc := `
conversations:
  - id: a
    title: Alpha
    messages:
      - {id: "1", sender: user, text: hi}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	require.Len(t, d.Conversations, 1)
	assert.Equal(t, "hi", d.Conversations[0].LastMessage())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing id", "conversations:\n  - title: x\n"},
		{"duplicate id", "conversations:\n  - id: a\n  - id: a\n"},
		{"bad sender", "conversations:\n  - id: a\n    messages:\n      - {id: '1', sender: bot, text: x}\n"},
		{"missing message id", "conversations:\n  - id: a\n    messages:\n      - {sender: user, text: first question}\n      - {sender: assistant, text: first answer}\n"},
		{"duplicate message id", "conversations:\n  - id: a\n    messages:\n      - {id: x, sender: user, text: hi}\n      - {id: x, sender: assistant, text: hello}\n"},
		{"negative unread", "conversations:\n  - id: a\n    unread: -1\n"},
		{"bad yaml", "conversations: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParse_MessageIDsScopedToConversation(t *testing.T) {
	doc := `
conversations:
  - id: a
    messages:
      - {id: "1", sender: user, text: hi}
  - id: b
    messages:
      - {id: "1", sender: user, text: hi again}
`
	d, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Len(t, d.Conversations, 2)
}

func TestMarshal_RoundTrip(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	out, err := d.Marshal()
	require.NoError(t, err)

	again, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, d.Conversations, again.Conversations)
	assert.Equal(t, d.Profile, again.Profile)
}
