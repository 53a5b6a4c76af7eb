// Package session drives one open conversation: it appends the user's
// messages, simulates the assistant's replies and voice capture on timers,
// and tracks the transient flags the chat screen renders.
//
// All timers are owned by the Controller and released by Close. State
// changes are published as Events to subscribers.
package session

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"glasschat/internal/conversation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VoicePlaceholder is the draft text left behind by a voice capture.
const VoicePlaceholder = "Voice transcription..."

// TimeFormat formats Message.SentAt.
const TimeFormat = "3:04 PM"

// Log is the message storage the controller appends to.
type Log interface {
	Messages(id string) ([]conversation.Message, error)
	AppendMessage(id string, m conversation.Message) error
	ClearMessages(id string) error
}

// Policy decides what happens when the user sends again while a reply is
// still pending.
type Policy string

const (
	// PolicyOverlap arms an independent timer for every submit.
	PolicyOverlap Policy = "overlap"
	// PolicySerialize keeps one timer armed and queues the rest, so replies
	// land one delay apart in submit order.
	PolicySerialize Policy = "serialize"
)

// ParsePolicy validates a policy name.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyOverlap, PolicySerialize:
		return p, nil
	case "":
		return PolicySerialize, nil
	default:
		return "", fmt.Errorf("unknown reply policy %q", s)
	}
}

// Modal is the overlay open on the chat screen. At most one is open.
type Modal int

const (
	ModalNone Modal = iota
	ModalOptions
	ModalAttach
	ModalTools
)

func (m Modal) String() string {
	switch m {
	case ModalOptions:
		return "options"
	case ModalAttach:
		return "attach"
	case ModalTools:
		return "tools"
	default:
		return "none"
	}
}

// AttachmentKind is a simulated attachment source.
type AttachmentKind string

const (
	AttachCamera   AttachmentKind = "camera"
	AttachGallery  AttachmentKind = "gallery"
	AttachDocument AttachmentKind = "document"
)

// Placeholder is the message text sent for the attachment.
func (k AttachmentKind) Placeholder() string {
	switch k {
	case AttachCamera:
		return "[Photo]"
	case AttachGallery:
		return "[Image]"
	case AttachDocument:
		return "[Document]"
	default:
		return "[Attachment]"
	}
}

// Tool is an entry of the tools modal.
type Tool string

const (
	ToolSummarize Tool = "summarize"
	ToolTranslate Tool = "translate"
	ToolSimplify  Tool = "simplify"
	ToolExpand    Tool = "expand"
)

// Prompt is the draft text the tool fills in; empty for unknown tools.
func (t Tool) Prompt() string {
	switch t {
	case ToolSummarize:
		return "Summarize our conversation."
	case ToolTranslate:
		return "Translate to Spanish."
	case ToolSimplify:
		return "Explain simpler."
	case ToolExpand:
		return "Elaborate more."
	default:
		return ""
	}
}

// Options configures a Controller. Zero fields take the defaults.
type Options struct {
	ReplyDelay        time.Duration
	VoiceCaptureDelay time.Duration
	VoiceStopDelay    time.Duration
	Policy            Policy

	Scheduler Scheduler
	Replies   ReplySource
	Now       func() time.Time
	NewID     func() string
	Logger    *zap.Logger
}

// DefaultOptions returns the stock timings: 1.5s reply, 3s capture, 500ms stop.
func DefaultOptions() Options {
	return Options{
		ReplyDelay:        1500 * time.Millisecond,
		VoiceCaptureDelay: 3 * time.Second,
		VoiceStopDelay:    500 * time.Millisecond,
		Policy:            PolicySerialize,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.ReplyDelay <= 0 {
		o.ReplyDelay = d.ReplyDelay
	}
	if o.VoiceCaptureDelay <= 0 {
		o.VoiceCaptureDelay = d.VoiceCaptureDelay
	}
	if o.VoiceStopDelay <= 0 {
		o.VoiceStopDelay = d.VoiceStopDelay
	}
	if o.Policy == "" {
		o.Policy = d.Policy
	}
	if o.Scheduler == nil {
		o.Scheduler = SystemScheduler{}
	}
	if o.Replies == nil {
		o.Replies = NewCannedReplies(nil, 0)
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// State is a snapshot of the transient flags.
type State struct {
	AssistantTyping bool
	Recording       bool
	Draft           string
	Modal           Modal
	// PendingReplies counts replies owed, armed or queued.
	PendingReplies int
	// ShowSuggestions is true until the first reply is scheduled or a
	// prompt is picked.
	ShowSuggestions bool
}

// Controller is the session state holder and response simulator for one
// conversation. It is safe for concurrent use.
type Controller struct {
	id   string
	log  Log
	opts Options

	mu          sync.Mutex
	state       State
	closed      bool
	nextToken   int
	replyTimers map[int]Timer
	voiceToken  int
	voiceTimer  Timer
	subscribers map[int]func(Event)

	// emitMu keeps delivery in publish order and lets Close wait for an
	// in-flight delivery.
	emitMu sync.Mutex
}

// New returns a controller for conversation id.
func New(id string, log Log, opts Options) *Controller {
	opts = opts.withDefaults()
	return &Controller{
		id:          id,
		log:         log,
		opts:        opts,
		state:       State{ShowSuggestions: true},
		replyTimers: make(map[int]Timer),
		subscribers: make(map[int]func(Event)),
	}
}

// ConversationID returns the conversation this controller drives.
func (c *Controller) ConversationID() string {
	return c.id
}

// Subscribe registers fn for every event. fn runs synchronously on the
// goroutine that caused the change and must neither block nor call back
// into the controller. The returned func unsubscribes.
func (c *Controller) Subscribe(fn func(Event)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextToken++
	token := c.nextToken
	c.subscribers[token] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subscribers, token)
	}
}

// State returns a snapshot of the flags.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Messages returns the conversation's messages.
func (c *Controller) Messages() ([]conversation.Message, error) {
	return c.log.Messages(c.id)
}

// SetDraft mirrors the input field. It publishes nothing since the caller
// already knows the text.
func (c *Controller) SetDraft(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.state.Draft = text
	}
}

// Submit sends text as a user message and schedules a reply. The message
// holds text with surrounding whitespace trimmed and is otherwise stored as
// typed. Empty or whitespace-only text is ignored.
func (c *Controller) Submit(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	var events []Event
	if !c.appendLocked(conversation.SenderUser, text, &events) {
		c.mu.Unlock()
		return
	}
	if c.state.Draft != "" {
		c.state.Draft = ""
		events = append(events, Event{Kind: EventDraftChanged})
	}
	c.scheduleReplyLocked(&events)
	c.publishLocked(events)
}

// SubmitDraft submits the current draft.
func (c *Controller) SubmitDraft() {
	c.mu.Lock()
	draft := c.state.Draft
	c.mu.Unlock()
	c.Submit(draft)
}

// SubmitAttachment sends the placeholder for kind, closes the attach modal
// and schedules a reply. No file is read.
func (c *Controller) SubmitAttachment(kind AttachmentKind) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	var events []Event
	if c.state.Modal == ModalAttach {
		c.state.Modal = ModalNone
	}
	if !c.appendLocked(conversation.SenderUser, kind.Placeholder(), &events) {
		c.mu.Unlock()
		return
	}
	c.scheduleReplyLocked(&events)
	c.publishLocked(events)
}

// ToggleVoiceCapture starts a simulated recording, or stops the running
// one. Either way the draft ends up holding VoicePlaceholder: after the
// capture delay when left alone, after the stop delay when stopped early.
func (c *Controller) ToggleVoiceCapture() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	var events []Event
	c.stopVoiceLocked()
	c.voiceToken++
	token := c.voiceToken

	if !c.state.Recording {
		c.state.Recording = true
		events = append(events, Event{Kind: EventRecordingChanged, Recording: true})
		c.voiceTimer = c.opts.Scheduler.AfterFunc(c.opts.VoiceCaptureDelay, func() {
			c.voiceDue(token, true)
		})
		c.opts.Logger.Debug("voice capture started", zap.String("conversation", c.id))
	} else {
		c.state.Recording = false
		events = append(events, Event{Kind: EventRecordingChanged, Recording: false})
		c.voiceTimer = c.opts.Scheduler.AfterFunc(c.opts.VoiceStopDelay, func() {
			c.voiceDue(token, false)
		})
		c.opts.Logger.Debug("voice capture stopped", zap.String("conversation", c.id))
	}
	c.publishLocked(events)
}

func (c *Controller) voiceDue(token int, stopRecording bool) {
	c.mu.Lock()
	if c.closed || token != c.voiceToken {
		c.mu.Unlock()
		return
	}
	c.voiceTimer = nil

	var events []Event
	if stopRecording && c.state.Recording {
		c.state.Recording = false
		events = append(events, Event{Kind: EventRecordingChanged, Recording: false})
	}
	c.state.Draft = VoicePlaceholder
	events = append(events, Event{Kind: EventDraftChanged, Draft: VoicePlaceholder})
	c.publishLocked(events)
}

// Clear empties the message log. Pending replies still land.
func (c *Controller) Clear() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.state.Modal == ModalOptions {
		c.state.Modal = ModalNone
	}
	if err := c.log.ClearMessages(c.id); err != nil {
		c.opts.Logger.Warn("clear failed", zap.String("conversation", c.id), zap.Error(err))
		c.mu.Unlock()
		return
	}
	c.opts.Logger.Info("conversation cleared", zap.String("conversation", c.id))
	c.publishLocked([]Event{{Kind: EventCleared}})
}

// SelectQuickPrompt fills the draft without sending it.
func (c *Controller) SelectQuickPrompt(text string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.state.Draft = text
	c.state.ShowSuggestions = false
	c.publishLocked([]Event{{Kind: EventDraftChanged, Draft: text}})
}

// SelectTool closes the tools modal and fills the draft with the tool's
// prompt. Unknown tools only close the modal.
func (c *Controller) SelectTool(tool Tool) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.state.Modal == ModalTools {
		c.state.Modal = ModalNone
	}
	prompt := tool.Prompt()
	if prompt == "" {
		c.mu.Unlock()
		return
	}
	c.state.Draft = prompt
	c.publishLocked([]Event{{Kind: EventDraftChanged, Draft: prompt}})
}

// OpenModal replaces whatever modal is open.
func (c *Controller) OpenModal(m Modal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.state.Modal = m
	}
}

// CloseModal closes the open modal, if any.
func (c *Controller) CloseModal() {
	c.OpenModal(ModalNone)
}

// Close stops every outstanding timer. No event is published once Close
// returns, and later calls are no-ops.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	for token, t := range c.replyTimers {
		t.Stop()
		delete(c.replyTimers, token)
	}
	c.stopVoiceLocked()
	c.voiceToken++
	c.subscribers = map[int]func(Event){}
	c.mu.Unlock()

	// Wait out a delivery that started before closed was set.
	c.emitMu.Lock()
	c.emitMu.Unlock()
	c.opts.Logger.Debug("session closed", zap.String("conversation", c.id))
}

func (c *Controller) stopVoiceLocked() {
	if c.voiceTimer != nil {
		c.voiceTimer.Stop()
		c.voiceTimer = nil
	}
}

func (c *Controller) appendLocked(sender conversation.Sender, text string, events *[]Event) bool {
	msg := conversation.Message{
		ID:     c.opts.NewID(),
		Text:   text,
		Sender: sender,
		SentAt: c.opts.Now().Format(TimeFormat),
	}
	if err := c.log.AppendMessage(c.id, msg); err != nil {
		c.opts.Logger.Warn("append failed",
			zap.String("conversation", c.id),
			zap.String("sender", string(sender)),
			zap.Error(err))
		return false
	}
	*events = append(*events,
		Event{Kind: EventMessageAppended, Message: msg},
		Event{Kind: EventScrollToNewest},
	)
	return true
}

func (c *Controller) scheduleReplyLocked(events *[]Event) {
	c.state.PendingReplies++
	c.state.ShowSuggestions = false
	if !c.state.AssistantTyping {
		c.state.AssistantTyping = true
		*events = append(*events, Event{Kind: EventTypingChanged, Typing: true})
	}

	if c.opts.Policy == PolicyOverlap || len(c.replyTimers) == 0 {
		c.armReplyLocked()
	}
	c.opts.Logger.Debug("reply scheduled",
		zap.String("conversation", c.id),
		zap.Int("pending", c.state.PendingReplies))
}

func (c *Controller) armReplyLocked() {
	c.nextToken++
	token := c.nextToken
	c.replyTimers[token] = c.opts.Scheduler.AfterFunc(c.opts.ReplyDelay, func() {
		c.replyDue(token)
	})
}

func (c *Controller) replyDue(token int) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if _, ok := c.replyTimers[token]; !ok {
		c.mu.Unlock()
		return
	}
	delete(c.replyTimers, token)
	c.state.PendingReplies--

	var events []Event
	if c.state.PendingReplies == 0 {
		c.state.AssistantTyping = false
		events = append(events, Event{Kind: EventTypingChanged, Typing: false})
	} else if c.opts.Policy == PolicySerialize {
		c.armReplyLocked()
	}
	c.appendLocked(conversation.SenderAssistant, c.opts.Replies.Next(), &events)
	c.publishLocked(events)
}

// publishLocked hands events to the subscribers. It must be called with mu
// held and releases it; delivery happens outside mu but under emitMu.
func (c *Controller) publishLocked(events []Event) {
	if len(events) == 0 || len(c.subscribers) == 0 {
		c.mu.Unlock()
		return
	}
	subs := make([]func(Event), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subs = append(subs, fn)
	}
	for i := range events {
		events[i].ConversationID = c.id
	}

	c.emitMu.Lock()
	c.mu.Unlock()
	defer c.emitMu.Unlock()

	for _, ev := range events {
		for _, fn := range subs {
			fn(ev)
		}
	}
}
