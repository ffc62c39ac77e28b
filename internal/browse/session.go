// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package browse

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bookdex/bookdex/internal/catalog"
	"github.com/bookdex/bookdex/internal/platform/apperr"
	"github.com/bookdex/bookdex/internal/platform/constants"
	"github.com/bookdex/bookdex/pkg/uuidv7"
)

// Session pairs a query debouncer with a list coordinator for one reader.
//
// The debouncer owns intent resolution; its emissions drive the coordinator's
// primary loads on a background deadline, so an HTTP caller that typed a
// query gets its response long before the quiet period elapses.
type Session struct {
	ID          string
	coordinator *Coordinator
	debouncer   *Debouncer

	mu         sync.Mutex
	rawQuery   string
	lastActive time.Time
}

// SubmitQuery feeds raw query text into the session's debouncer and refreshes
// the idle clock.
func (s *Session) SubmitQuery(rawQuery string) {
	s.mu.Lock()
	s.rawQuery = rawQuery
	s.lastActive = time.Now()
	s.mu.Unlock()

	s.debouncer.Submit(rawQuery)
}

// ReportVisible signals which row the reader is looking at, possibly
// triggering a next-page load. It returns whether a load was triggered.
func (s *Session) ReportVisible(ctx context.Context, index int) bool {
	s.touch()
	return s.coordinator.LoadMoreIfNeeded(ctx, index)
}

// State returns the session's current query text and list snapshot.
func (s *Session) State() (string, ListState) {
	s.touch()

	s.mu.Lock()
	raw := s.rawQuery
	s.mu.Unlock()

	return raw, s.coordinator.Snapshot()
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastActive)
}

// close tears down the session's debouncer.
func (s *Session) close() {
	s.debouncer.Close()
}

// Manager owns the live session registry and evicts idle sessions.
type Manager struct {
	gateway catalog.Gateway
	quiet   time.Duration
	ttl     time.Duration
	logger  *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty registry. Call [Manager.StartSweeper] to begin
// idle eviction.
func NewManager(gateway catalog.Gateway, quiet, ttl time.Duration, logger *slog.Logger) *Manager {
	return &Manager{
		gateway:  gateway,
		quiet:    quiet,
		ttl:      ttl,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// Create registers a new session and kicks off its first load. The initial
// submission is empty text, so after one quiet period the list fills with the
// new-releases feed.
func (m *Manager) Create() *Session {
	coordinator := NewCoordinator(m.gateway, m.logger)
	session := &Session{
		ID:          uuidv7.New(),
		coordinator: coordinator,
		lastActive:  time.Now(),
	}
	session.debouncer = NewDebouncer(m.quiet, func(intent Intent) {
		ctx, cancel := context.WithTimeout(context.Background(), constants.GlobalRequestTimeout)
		defer cancel()

		if err := coordinator.ResetAndLoad(ctx, intent); err != nil {
			// Forget the emission so re-submitting the same text retries the
			// load instead of being suppressed as a duplicate.
			session.debouncer.ResetLast()
			m.logger.Warn("session load failed",
				slog.String("session_id", session.ID),
				slog.String("kind", string(intent.Kind)),
				slog.String("error", err.Error()))
		}
	})

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	m.logger.Info("browse session created", slog.String("session_id", session.ID))

	session.SubmitQuery("")
	return session
}

// Get returns the live session with the given id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	session, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, apperr.Gone("Browse session not found or expired")
	}
	return session, nil
}

// Close removes a session and stops its debouncer.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	session, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return apperr.Gone("Browse session not found or expired")
	}
	session.close()

	m.logger.Info("browse session closed", slog.String("session_id", id))
	return nil
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// StartSweeper launches the idle-eviction loop. It stops when ctx is done.
func (m *Manager) StartSweeper(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(constants.SessionSweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.sweep()
			}
		}
	}()
}

func (m *Manager) sweep() {
	now := time.Now()

	m.mu.Lock()
	var expired []*Session
	for id, session := range m.sessions {
		if session.idleSince(now) > m.ttl {
			delete(m.sessions, id)
			expired = append(expired, session)
		}
	}
	m.mu.Unlock()

	for _, session := range expired {
		session.close()
		m.logger.Info("browse session expired", slog.String("session_id", session.ID))
	}
}
