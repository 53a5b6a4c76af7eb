package chat

import (
	"sync"

	"glasschat/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

// eventBridge carries controller events into the program loop. push never
// blocks, so controller callbacks cannot stall on a busy Update.
type eventBridge struct {
	mu     sync.Mutex
	queue  []session.Event
	signal chan struct{}
	done   chan struct{}
	once   sync.Once
}

func newEventBridge() *eventBridge {
	return &eventBridge{
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

func (b *eventBridge) push(ev session.Event) {
	b.mu.Lock()
	b.queue = append(b.queue, ev)
	b.mu.Unlock()

	select {
	case b.signal <- struct{}{}:
	default:
	}
}

func (b *eventBridge) drain() []session.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.queue
	b.queue = nil
	return out
}

// wait returns a command that yields the next batch, or nil once the
// bridge is closed.
func (b *eventBridge) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-b.signal:
			return sessionEventsMsg{bridge: b, events: b.drain()}
		case <-b.done:
			return nil
		}
	}
}

func (b *eventBridge) close() {
	b.once.Do(func() { close(b.done) })
}
