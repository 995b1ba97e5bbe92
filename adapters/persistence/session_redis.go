package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/interaction"
)

const (
	sessionKeyPrefix = "portfolio:session:"

	// A crashed holder loses the lock after sessionLockTTL.
	sessionLockTTL   = 5 * time.Second
	sessionLockWait  = 3 * time.Second
	sessionLockRetry = 10 * time.Millisecond
)

// releaseLock deletes the lock only while it still carries the caller's token.
var releaseLock = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

var ErrSessionLockTimeout = errors.New("timed out waiting for session lock")

// RedisSessionStore keeps each session as a JSON value with a TTL that is
// refreshed on every save.
type RedisSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ service.SessionStore = (*RedisSessionStore)(nil)

func NewRedisSessionStore(rdb *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, ttl: ttl}
}

func sessionKey(id uuid.UUID) string {
	return sessionKeyPrefix + id.String()
}

func sessionLockKey(id uuid.UUID) string {
	return sessionKey(id) + ":lock"
}

// Lock takes a SET NX lock with a random token and polls until it is free.
func (s *RedisSessionStore) Lock(ctx context.Context, sessionID uuid.UUID) (func(), error) {
	key := sessionLockKey(sessionID)
	token := uuid.NewString()

	ctx, cancel := context.WithTimeout(ctx, sessionLockWait)
	defer cancel()

	ticker := time.NewTicker(sessionLockRetry)
	defer ticker.Stop()
	for {
		ok, err := s.rdb.SetNX(ctx, key, token, sessionLockTTL).Result()
		if err != nil && ctx.Err() == nil {
			return nil, fmt.Errorf("redis lock session: %w", err)
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w %s: %w", ErrSessionLockTimeout, sessionID, ctx.Err())
		case <-ticker.C:
		}
	}

	return func() {
		// The request context may already be gone; release on a short fresh one.
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = releaseLock.Run(releaseCtx, s.rdb, []string{key}, token).Err()
	}, nil
}

func (s *RedisSessionStore) Load(ctx context.Context, sessionID uuid.UUID) (interaction.State, bool, error) {
	raw, err := s.rdb.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return interaction.DefaultState(), false, nil
	}
	if err != nil {
		return interaction.DefaultState(), false, fmt.Errorf("redis get session: %w", err)
	}

	var state interaction.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return interaction.DefaultState(), false, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	return state, true, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, sessionID uuid.UUID, state interaction.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.rdb.Set(ctx, sessionKey(sessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}
