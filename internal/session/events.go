package session

import "glasschat/internal/conversation"

// EventKind tags an Event.
type EventKind int

const (
	EventMessageAppended EventKind = iota
	EventTypingChanged
	EventRecordingChanged
	EventDraftChanged
	EventCleared
	// EventScrollToNewest asks the view to scroll to the last message.
	EventScrollToNewest
)

func (k EventKind) String() string {
	switch k {
	case EventMessageAppended:
		return "message_appended"
	case EventTypingChanged:
		return "typing_changed"
	case EventRecordingChanged:
		return "recording_changed"
	case EventDraftChanged:
		return "draft_changed"
	case EventCleared:
		return "cleared"
	case EventScrollToNewest:
		return "scroll_to_newest"
	default:
		return "unknown"
	}
}

// Event is published to subscribers after a state change. Only the fields
// relevant to Kind are set.
type Event struct {
	Kind           EventKind
	ConversationID string
	Message        conversation.Message
	Typing         bool
	Recording      bool
	Draft          string
}
