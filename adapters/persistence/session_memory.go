package persistence

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/interaction"
)

type memorySession struct {
	state     interaction.State
	expiresAt time.Time
}

// sessionLock is a one-slot channel so a waiter can give up when its context ends.
type sessionLock struct {
	slot chan struct{}
	refs int
}

// MemorySessionStore keeps sessions in process memory. Expired entries are
// dropped lazily on access and by Sweep.
type MemorySessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[uuid.UUID]memorySession

	locksMu sync.Mutex
	locks   map[uuid.UUID]*sessionLock
}

var _ service.SessionStore = (*MemorySessionStore)(nil)

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[uuid.UUID]memorySession),
		locks:    make(map[uuid.UUID]*sessionLock),
	}
}

func (s *MemorySessionStore) Lock(ctx context.Context, sessionID uuid.UUID) (func(), error) {
	s.locksMu.Lock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sessionLock{slot: make(chan struct{}, 1)}
		s.locks[sessionID] = l
	}
	l.refs++
	s.locksMu.Unlock()

	select {
	case l.slot <- struct{}{}:
	case <-ctx.Done():
		s.releaseLock(sessionID, l)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-l.slot
			s.releaseLock(sessionID, l)
		})
	}, nil
}

// releaseLock drops the lock entry once nobody holds or waits on it.
func (s *MemorySessionStore) releaseLock(sessionID uuid.UUID, l *sessionLock) {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(s.locks, sessionID)
	}
}

func (s *MemorySessionStore) Load(ctx context.Context, sessionID uuid.UUID) (interaction.State, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return interaction.DefaultState(), false, nil
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.sessions, sessionID)
		return interaction.DefaultState(), false, nil
	}
	return copyState(entry.state), true, nil
}

func (s *MemorySessionStore) Save(ctx context.Context, sessionID uuid.UUID, state interaction.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = memorySession{state: copyState(state), expiresAt: s.now().Add(s.ttl)}
	return nil
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *MemorySessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	dropped := 0
	for id, entry := range s.sessions {
		if !now.Before(entry.expiresAt) {
			delete(s.sessions, id)
			dropped++
		}
	}
	return dropped
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *MemorySessionStore) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// copyState detaches the hovered id pointer from the caller's value.
func copyState(st interaction.State) interaction.State {
	if st.HoveredProjectID != nil {
		id := *st.HoveredProjectID
		st.HoveredProjectID = &id
	}
	return st
}
