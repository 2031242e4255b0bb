package pagination

import (
	"log/slog"
	"sync"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
)

const (
	emojiPrev = "⬅️"
	emojiNext = "➡️"
)

// Manager routes reaction events to the session attached to the reacted
// message. It registers as a gateway event listener, the same way the bot
// registers its other listeners.
type Manager struct {
	mu       sync.Mutex
	sessions map[snowflake.ID]*Session
	timeout  time.Duration
}

type ManagerOpt func(*Manager)

func WithSessionTimeout(d time.Duration) ManagerOpt {
	return func(m *Manager) {
		m.timeout = d
	}
}

func New(opts ...ManagerOpt) *Manager {
	m := &Manager{
		sessions: make(map[snowflake.ID]*Session),
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open attaches the navigation reactions to an existing message showing
// the first page and starts an independent session for it.
func (m *Manager) Open(client bot.Client, channelID, messageID, userID snowflake.ID, entries []Paginatable) error {
	surface := &messageSurface{
		client:    client,
		channelID: channelID,
		messageID: messageID,
	}

	session, err := NewSession(entries, userID, surface, WithTimeout(m.timeout))
	if err != nil {
		return err
	}
	session.onClose = func() {
		m.mu.Lock()
		delete(m.sessions, messageID)
		m.mu.Unlock()
	}

	for _, emoji := range []string{emojiPrev, emojiNext} {
		if err := client.Rest().AddReaction(channelID, messageID, emoji); err != nil {
			return err
		}
	}

	m.mu.Lock()
	m.sessions[messageID] = session
	m.mu.Unlock()

	session.Start()
	return nil
}

// OnEvent implements bot.EventListener. Malformed or unexpected reactions
// are dropped so the session keeps listening for valid ones.
func (m *Manager) OnEvent(event bot.Event) {
	e, ok := event.(*events.MessageReactionAdd)
	if !ok {
		return
	}
	if e.UserID == e.Client().ID() {
		return
	}

	var name string
	if e.Emoji.Name != nil {
		name = *e.Emoji.Name
	}

	var sig Signal
	switch name {
	case emojiPrev:
		sig = SignalPrev
	case emojiNext:
		sig = SignalNext
	default:
		return
	}

	m.mu.Lock()
	session := m.sessions[e.MessageID]
	m.mu.Unlock()
	if session == nil {
		return
	}

	session.Handle(e.UserID, sig)

	// Put the arrow back so the same control can be pressed again.
	if err := e.Client().Rest().RemoveUserReaction(e.ChannelID, e.MessageID, name, e.UserID); err != nil {
		slog.Debug("Failed to remove navigation reaction",
			slog.String("type", "sys"),
			slog.Any("error", err))
	}
}
