package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"bartile/internal/domain/configurator"
	domainerrors "bartile/internal/domain/errors"

	"github.com/google/uuid"
)

// sessionEntry serializes the events of one session.
type sessionEntry struct {
	mu      sync.Mutex
	session *configurator.Session
}

// sessionStore keeps configurator sessions in memory.
// Lock order is store then entry; callbacks run under the entry lock only.
type sessionStore struct {
	mu          sync.Mutex
	sessions    map[uuid.UUID]*sessionEntry
	idleTTL     time.Duration
	maxSessions int
	now         func() time.Time
	logger      *slog.Logger

	stop context.CancelFunc
	done chan struct{}
}

func newSessionStore(idleTTL time.Duration, maxSessions int, logger *slog.Logger) *sessionStore {
	return &sessionStore{
		sessions:    make(map[uuid.UUID]*sessionEntry),
		idleTTL:     idleTTL,
		maxSessions: maxSessions,
		now:         time.Now,
		logger:      logger,
	}
}

// create registers a new session, evicting the least recently touched one when full.
func (s *sessionStore) create(init func(*configurator.Session)) uuid.UUID {
	session := configurator.NewSession(uuid.New(), s.now())
	if init != nil {
		init(session)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		s.evictOldestLocked()
	}
	s.sessions[session.ID()] = &sessionEntry{session: session}

	return session.ID()
}

func (s *sessionStore) evictOldestLocked() {
	var (
		oldestID uuid.UUID
		oldestAt time.Time
		found    bool
	)
	for id, entry := range s.sessions {
		entry.mu.Lock()
		touched, busy := entry.session.TouchedAt(), entry.session.Submitting()
		entry.mu.Unlock()

		if busy {
			continue
		}
		if !found || touched.Before(oldestAt) {
			oldestID, oldestAt, found = id, touched, true
		}
	}
	if found {
		delete(s.sessions, oldestID)
		s.logger.Info("Evicted configurator session at capacity", slog.String("sessionID", oldestID.String()))
	}
}

// with runs fn on the session under its lock and marks it as touched.
func (s *sessionStore) with(id uuid.UUID, fn func(*configurator.Session) error) error {
	s.mu.Lock()
	entry, ok := s.sessions[id]
	s.mu.Unlock()

	if !ok {
		return domainerrors.ErrSessionNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.session.Touch(s.now())

	return fn(entry.session)
}

// remove drops a session. A session with a submission in flight is kept and
// ErrSubmissionInFlight is returned.
func (s *sessionStore) remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return domainerrors.ErrSessionNotFound
	}

	entry.mu.Lock()
	submitting := entry.session.Submitting()
	entry.mu.Unlock()
	if submitting {
		return domainerrors.ErrSubmissionInFlight
	}
	delete(s.sessions, id)

	return nil
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

// sweep removes sessions idle for longer than the TTL and returns how many were dropped.
// A session with a submission in flight is never swept.
func (s *sessionStore) sweep() int {
	if s.idleTTL <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, entry := range s.sessions {
		entry.mu.Lock()
		expired := entry.session.TouchedAt().Before(cutoff) && !entry.session.Submitting()
		entry.mu.Unlock()

		if expired {
			delete(s.sessions, id)
			removed++
		}
	}

	return removed
}

// start launches the background sweeper.
func (s *sessionStore) start(interval time.Duration) {
	if interval <= 0 || s.stop != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.stop = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.sweep(); n > 0 {
					s.logger.Debug("Swept idle configurator sessions", slog.Int("removed", n), slog.Int("remaining", s.len()))
				}
			}
		}
	}()
}

// shutdown stops the sweeper and waits for it to exit or for ctx to expire.
func (s *sessionStore) shutdown(ctx context.Context) error {
	if s.stop == nil {
		return nil
	}
	s.stop()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
