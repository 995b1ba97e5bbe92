package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/interaction"
)

// SessionStoreSuite runs the same contract against every store. advance moves
// the store's clock forward.
type SessionStoreSuite struct {
	suite.Suite
	newStore func(ttl time.Duration) (store service.SessionStore, advance func(time.Duration))
}

func (s *SessionStoreSuite) TestUnknownSessionIsNotFound() {
	store, _ := s.newStore(time.Minute)

	state, found, err := store.Load(context.Background(), uuid.New())
	s.Require().NoError(err)
	s.False(found)
	s.True(interaction.DefaultState().Equal(state))
}

func (s *SessionStoreSuite) TestRoundTrip() {
	store, _ := s.newStore(time.Minute)
	id := uuid.New()
	hovered := 3

	want := interaction.State{HoveredProjectID: &hovered, MobileMenuOpen: true}
	s.Require().NoError(store.Save(context.Background(), id, want))

	got, found, err := store.Load(context.Background(), id)
	s.Require().NoError(err)
	s.True(found)
	s.True(want.Equal(got))

	hovered = 9
	s.Equal(3, *got.HoveredProjectID, "stored state must not alias the caller's pointer")
}

func (s *SessionStoreSuite) TestExpiresAfterTTL() {
	store, advance := s.newStore(time.Minute)
	id := uuid.New()
	s.Require().NoError(store.Save(context.Background(), id, interaction.State{MobileMenuOpen: true}))

	advance(59 * time.Second)
	_, found, err := store.Load(context.Background(), id)
	s.Require().NoError(err)
	s.True(found)

	advance(2 * time.Second)
	_, found, err = store.Load(context.Background(), id)
	s.Require().NoError(err)
	s.False(found)
}

func (s *SessionStoreSuite) TestLockIsExclusivePerSession() {
	store, _ := s.newStore(time.Minute)
	id := uuid.New()

	unlock, err := store.Lock(context.Background(), id)
	s.Require().NoError(err)

	acquired := make(chan func(), 1)
	go func() {
		next, err := store.Lock(context.Background(), id)
		if err == nil {
			acquired <- next
		}
	}()

	select {
	case <-acquired:
		s.Fail("second holder got the lock while the first still held it")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()
	select {
	case next := <-acquired:
		next()
	case <-time.After(time.Second):
		s.Fail("lock was not handed over after unlock")
	}
}

func (s *SessionStoreSuite) TestLockDoesNotBlockOtherSessions() {
	store, _ := s.newStore(time.Minute)

	unlockA, err := store.Lock(context.Background(), uuid.New())
	s.Require().NoError(err)
	defer unlockA()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	unlockB, err := store.Lock(ctx, uuid.New())
	s.Require().NoError(err)
	unlockB()
}

func (s *SessionStoreSuite) TestLockWaitEndsWithContext() {
	store, _ := s.newStore(time.Minute)
	id := uuid.New()

	unlock, err := store.Lock(context.Background(), id)
	s.Require().NoError(err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err = store.Lock(ctx, id)
	s.ErrorIs(err, context.DeadlineExceeded)
}

func TestMemorySessionStore(t *testing.T) {
	suite.Run(t, &SessionStoreSuite{
		newStore: func(ttl time.Duration) (service.SessionStore, func(time.Duration)) {
			store := NewMemorySessionStore(ttl)
			now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			store.now = func() time.Time { return now }
			return store, func(d time.Duration) { now = now.Add(d) }
		},
	})
}

func TestRedisSessionStore(t *testing.T) {
	suite.Run(t, &SessionStoreSuite{
		newStore: func(ttl time.Duration) (service.SessionStore, func(time.Duration)) {
			mr := miniredis.RunT(t)
			rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
			t.Cleanup(func() { rdb.Close() })
			return NewRedisSessionStore(rdb, ttl), mr.FastForward
		},
	})
}

func TestRedisSessionStoreCorruptValue(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	id := uuid.New()
	require.NoError(t, mr.Set(sessionKey(id), "{not json"))

	_, found, err := NewRedisSessionStore(rdb, time.Minute).Load(context.Background(), id)
	assert.Error(t, err)
	assert.False(t, found)
}

func TestMemorySessionStoreSweep(t *testing.T) {
	store := NewMemorySessionStore(time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(context.Background(), uuid.New(), interaction.DefaultState()))
	require.NoError(t, store.Save(context.Background(), uuid.New(), interaction.DefaultState()))
	assert.Equal(t, 0, store.Sweep())

	now = now.Add(time.Hour)
	assert.Equal(t, 2, store.Sweep())
}

func TestMemorySessionStoreForgetsIdleLocks(t *testing.T) {
	store := NewMemorySessionStore(time.Minute)
	id := uuid.New()

	unlock, err := store.Lock(context.Background(), id)
	require.NoError(t, err)
	unlock()
	unlock()

	assert.Empty(t, store.locks)
}

func TestRedisSessionStoreUnlockKeepsForeignLock(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	store := NewRedisSessionStore(rdb, time.Minute)
	id := uuid.New()

	unlock, err := store.Lock(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, mr.Exists(sessionLockKey(id)))

	// The lock expired and another holder took it.
	mr.FastForward(sessionLockTTL + time.Second)
	require.NoError(t, mr.Set(sessionLockKey(id), "other-holder"))

	unlock()
	got, err := mr.Get(sessionLockKey(id))
	require.NoError(t, err)
	assert.Equal(t, "other-holder", got)
}
