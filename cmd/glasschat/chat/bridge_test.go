package chat

import (
	"testing"

	"glasschat/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBridge_DeliversInOrder(t *testing.T) {
	b := newEventBridge()
	b.push(session.Event{Kind: session.EventMessageAppended})
	b.push(session.Event{Kind: session.EventTypingChanged, Typing: true})

	msg := b.wait()()
	batch, ok := msg.(sessionEventsMsg)
	require.True(t, ok)
	assert.Same(t, b, batch.bridge)
	require.Len(t, batch.events, 2)
	assert.Equal(t, session.EventMessageAppended, batch.events[0].Kind)
	assert.Equal(t, session.EventTypingChanged, batch.events[1].Kind)
	assert.Empty(t, b.drain())
}

func TestEventBridge_PushNeverBlocks(t *testing.T) {
	b := newEventBridge()
	for i := 0; i < 10_000; i++ {
		b.push(session.Event{Kind: session.EventDraftChanged})
	}
	assert.Len(t, b.drain(), 10_000)
}

func TestEventBridge_CloseEndsWait(t *testing.T) {
	b := newEventBridge()
	b.close()
	b.close()
	assert.Nil(t, b.wait()())
}
