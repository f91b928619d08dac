package impl

import (
	"context"
	"testing"
	"time"

	"bartile/config"
	"bartile/internal/domain/configurator"
	domainerrors "bartile/internal/domain/errors"
	"bartile/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestStore(idleTTL time.Duration, maxSessions int) (*sessionStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
	store := newSessionStore(idleTTL, maxSessions, newDiscardLogger())
	store.now = clock.Now

	return store, clock
}

func TestSessionStore_SweepRemovesIdleSessions(t *testing.T) {
	store, clock := newTestStore(30*time.Minute, 0)

	idle := store.create(nil)
	clock.Advance(20 * time.Minute)
	active := store.create(nil)
	clock.Advance(15 * time.Minute)

	assert.Equal(t, 1, store.sweep())
	assert.Equal(t, 1, store.len())

	err := store.with(idle, func(*configurator.Session) error { return nil })
	require.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
	require.NoError(t, store.with(active, func(*configurator.Session) error { return nil }))
}

func TestSessionStore_TouchKeepsSessionAlive(t *testing.T) {
	store, clock := newTestStore(30*time.Minute, 0)

	id := store.create(nil)
	clock.Advance(25 * time.Minute)
	require.NoError(t, store.with(id, func(*configurator.Session) error { return nil }))
	clock.Advance(25 * time.Minute)

	assert.Zero(t, store.sweep())
	assert.Equal(t, 1, store.len())
}

func TestSessionStore_SweepSparesPendingSubmission(t *testing.T) {
	store, clock := newTestStore(time.Minute, 0)

	id := store.create(func(s *configurator.Session) {
		s.Restore(newCompleteConfiguration())
	})
	require.NoError(t, store.with(id, func(s *configurator.Session) error {
		_, err := s.BeginSubmit()

		return err
	}))
	clock.Advance(time.Hour)

	assert.Zero(t, store.sweep())
}

func TestSessionStore_RemoveSparesPendingSubmission(t *testing.T) {
	store, _ := newTestStore(time.Hour, 0)

	id := store.create(func(s *configurator.Session) {
		s.Restore(newCompleteConfiguration())
	})
	require.NoError(t, store.with(id, func(s *configurator.Session) error {
		_, err := s.BeginSubmit()

		return err
	}))

	require.ErrorIs(t, store.remove(id), domainerrors.ErrSubmissionInFlight)
	assert.Equal(t, 1, store.len())

	require.NoError(t, store.with(id, func(s *configurator.Session) error {
		s.EndSubmit()

		return nil
	}))
	require.NoError(t, store.remove(id))
	require.ErrorIs(t, store.remove(id), domainerrors.ErrSessionNotFound)
}

func TestSessionStore_EvictsLeastRecentlyTouched(t *testing.T) {
	store, clock := newTestStore(time.Hour, 2)

	first := store.create(nil)
	clock.Advance(time.Second)
	second := store.create(nil)
	clock.Advance(time.Second)
	require.NoError(t, store.with(first, func(*configurator.Session) error { return nil }))
	clock.Advance(time.Second)

	third := store.create(nil)

	assert.Equal(t, 2, store.len())
	for id, wantFound := range map[uuid.UUID]bool{first: true, second: false, third: true} {
		err := store.with(id, func(*configurator.Session) error { return nil })
		if wantFound {
			assert.NoError(t, err)
		} else {
			assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
		}
	}
}

func TestSessionStore_SweeperStopsCleanly(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := newSessionStore(time.Millisecond, 0, newDiscardLogger())
	store.create(nil)
	store.start(time.Millisecond)

	assert.Eventually(t, func() bool { return store.len() == 0 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, store.shutdown(ctx))
}

func TestNewConfiguratorService_Lifecycle(t *testing.T) {
	defer goleak.VerifyNone(t)

	lc := fxtest.NewLifecycle(t)
	svc := NewConfiguratorService(ConfiguratorServiceParams{
		Lc: lc,
		Config: &config.Config{
			Session: &config.SessionConfig{IdleTTL: time.Minute, SweepInterval: 10 * time.Millisecond, MaxSessions: 10},
		},
		Logger: newDiscardLogger(),
	})

	lc.RequireStart()

	out, err := svc.StartSession(context.Background(), usecase.StartSessionInput{})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, out.ID)

	lc.RequireStop()
}
