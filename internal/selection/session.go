// Package selection tracks which competition, season and player each client
// currently has selected, so that only the newest selection's heat map is
// ever delivered.
package selection

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	// ErrStaleSelection means a newer selection superseded the one being served
	ErrStaleSelection = errors.New("selection superseded by a newer one")
	// ErrUnknownSession means the session expired or never existed
	ErrUnknownSession = errors.New("unknown selection session")
)

// Selection is the competition, season and player a client is looking at
type Selection struct {
	CompetitionID int64 `json:"competition_id" binding:"required"`
	SeasonID      int64 `json:"season_id" binding:"required"`
	PlayerID      int64 `json:"player_id" binding:"required"`
}

// Validate reports whether all ids are positive
func (s Selection) Validate() error {
	if s.CompetitionID <= 0 || s.SeasonID <= 0 || s.PlayerID <= 0 {
		return fmt.Errorf("invalid selection %+v: ids must be positive", s)
	}
	return nil
}

// Ticket identifies one selection event of one session
type Ticket struct {
	SessionID  string    `json:"session_id"`
	Generation uint64    `json:"generation"`
	Selection  Selection `json:"selection"`
}

// Session is one client's selection state. Each Select starts a new
// generation and cancels the context of the previous one.
type Session struct {
	ID string

	mu         sync.Mutex
	generation uint64
	current    Selection
	genCtx     context.Context
	cancel     context.CancelFunc
	lastSeen   time.Time
	closed     bool
}

func newSession(id string, now time.Time) *Session {
	return &Session{ID: id, lastSeen: now}
}

// Select supersedes the current selection and returns the new ticket
func (s *Session) Select(sel Selection) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	s.current = sel
	s.genCtx, s.cancel = context.WithCancel(context.Background())
	if s.closed {
		s.cancel()
	}
	s.lastSeen = time.Now()

	return Ticket{SessionID: s.ID, Generation: s.generation, Selection: sel}
}

// Current returns the latest ticket, or false if nothing was selected yet
func (s *Session) Current() (Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation == 0 {
		return Ticket{}, false
	}
	return Ticket{SessionID: s.ID, Generation: s.generation, Selection: s.current}, true
}

// IsCurrent reports whether generation is still the latest one
func (s *Session) IsCurrent(generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed && generation != 0 && generation == s.generation
}

// Bind derives a context from parent that is also cancelled as soon as
// generation is superseded or the session closes
func (s *Session) Bind(parent context.Context, generation uint64) (context.Context, context.CancelFunc, error) {
	s.mu.Lock()
	if s.closed || generation == 0 || generation != s.generation {
		s.mu.Unlock()
		return nil, nil, ErrStaleSelection
	}
	genCtx := s.genCtx
	s.lastSeen = time.Now()
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(parent)
	stop := context.AfterFunc(genCtx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}, nil
}

// Close cancels any in-flight work; later Selects yield cancelled contexts
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
