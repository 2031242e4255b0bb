package pagination

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// DefaultTimeout is the inactivity window after which a session stops
// listening and freezes on the current page.
const DefaultTimeout = 90 * time.Second

type Signal int

const (
	SignalPrev Signal = iota
	SignalNext
	SignalStop
)

type State int

const (
	// StateAwaiting means the session is listening for navigation signals.
	StateAwaiting State = iota
	// StateTerminated is terminal: affordances removed, page frozen.
	StateTerminated
)

// Surface is the display a session renders onto. Implementations edit a
// Discord message; tests substitute a recorder.
type Surface interface {
	Render(page Page) error
	// Close removes the navigation affordances. Called exactly once.
	Close()
}

// Session is one independent browsing interaction over an ordered sequence
// of entries. Each session owns its own index; sessions share no state.
type Session struct {
	mu      sync.Mutex
	entries []Paginatable
	index   int
	userID  snowflake.ID
	surface Surface
	state   State
	timeout time.Duration
	timer   *time.Timer
	onClose func()
}

type SessionOpt func(*Session)

func WithTimeout(d time.Duration) SessionOpt {
	return func(s *Session) {
		s.timeout = d
	}
}

// NewSession builds a session for userID over entries. The sequence must
// be non-empty.
func NewSession(entries []Paginatable, userID snowflake.ID, surface Surface, opts ...SessionOpt) (*Session, error) {
	if len(entries) == 0 {
		return nil, errors.New("pagination: empty page sequence")
	}
	s := &Session{
		entries: entries,
		userID:  userID,
		surface: surface,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Start arms the inactivity timer. The surface is assumed to already show
// the page at index 0 (the message the session was opened on); renders
// happen on navigation.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timeout > 0 {
		s.timer = time.AfterFunc(s.timeout, s.Terminate)
	}
}

// Handle processes one navigation signal. Signals from anyone but the
// session's requester are ignored, as is anything after termination.
// Boundary signals are no-ops on the index but still count as activity.
func (s *Session) Handle(userID snowflake.ID, sig Signal) {
	s.mu.Lock()
	if s.state == StateTerminated || userID != s.userID {
		s.mu.Unlock()
		return
	}

	if sig == SignalStop {
		s.terminateLocked()
		s.mu.Unlock()
		return
	}

	if s.timer != nil {
		s.timer.Reset(s.timeout)
	}

	next := s.index
	switch sig {
	case SignalNext:
		if s.index < len(s.entries)-1 {
			next = s.index + 1
		}
	case SignalPrev:
		if s.index > 0 {
			next = s.index - 1
		}
	}
	if next == s.index {
		s.mu.Unlock()
		return
	}

	s.index = next
	page := s.entries[next].Page()
	s.mu.Unlock()

	if err := s.surface.Render(page); err != nil {
		slog.Warn("Failed to render page",
			slog.String("type", "sys"),
			slog.Int("page", next),
			slog.Any("error", err))
	}
}

// Terminate stops the session exactly once. The displayed page stays
// static; late signals are dropped.
func (s *Session) Terminate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terminateLocked()
}

func (s *Session) terminateLocked() {
	if s.state == StateTerminated {
		return
	}
	s.state = StateTerminated
	if s.timer != nil {
		s.timer.Stop()
	}
	s.surface.Close()
	if s.onClose != nil {
		s.onClose()
	}
}

func (s *Session) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
