package selection

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Tracker holds the live selection sessions
type Tracker struct {
	mu       sync.Mutex
	sessions map[string]*Session
	idle     time.Duration
	now      func() time.Time
}

// NewTracker creates a tracker that forgets sessions idle for longer than idle
func NewTracker(idle time.Duration) *Tracker {
	if idle <= 0 {
		idle = 30 * time.Minute
	}
	return &Tracker{
		sessions: make(map[string]*Session),
		idle:     idle,
		now:      time.Now,
	}
}

// Open returns the session with id, or a new session when id is empty,
// malformed or unknown
func (t *Tracker) Open(id string) *Session {
	t.mu.Lock()
	defer t.mu.Unlock()

	if s, ok := t.sessions[id]; ok {
		return s
	}
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}

	s := newSession(id, t.now())
	t.sessions[id] = s
	return s
}

// Get returns an existing session
func (t *Tracker) Get(id string) (*Session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[id]
	if !ok {
		return nil, ErrUnknownSession
	}
	return s, nil
}

// Select records a selection on the session id (opening one if needed)
func (t *Tracker) Select(id string, sel Selection) (Ticket, error) {
	if err := sel.Validate(); err != nil {
		return Ticket{}, err
	}
	return t.Open(id).Select(sel), nil
}

// Remove closes and forgets a session
func (t *Tracker) Remove(id string) {
	t.mu.Lock()
	s, ok := t.sessions[id]
	delete(t.sessions, id)
	t.mu.Unlock()

	if ok {
		s.Close()
	}
}

// Len returns the number of live sessions
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}

// Sweep removes sessions idle for longer than the idle timeout
func (t *Tracker) Sweep() int {
	cutoff := t.now().Add(-t.idle)

	t.mu.Lock()
	var expired []*Session
	for id, s := range t.sessions {
		if s.idleSince().Before(cutoff) {
			expired = append(expired, s)
			delete(t.sessions, id)
		}
	}
	t.mu.Unlock()

	for _, s := range expired {
		s.Close()
	}
	return len(expired)
}

// Run sweeps idle sessions until ctx is cancelled
func (t *Tracker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.idle / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := t.Sweep(); n > 0 {
				log.Printf("[SelectionTracker] Expired %d idle sessions", n)
			}
		}
	}
}
