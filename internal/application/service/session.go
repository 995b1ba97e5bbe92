package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/domain/interaction"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// SessionStore keeps the UI state of one browser session between requests.
// Load reports found=false for unknown or expired sessions.
//
// Lock blocks until the caller holds the session exclusively, or ctx is done.
// Events of one session are applied one at a time between Lock and unlock.
type SessionStore interface {
	Load(ctx context.Context, sessionID uuid.UUID) (state interaction.State, found bool, err error)
	Save(ctx context.Context, sessionID uuid.UUID, state interaction.State) error
	Lock(ctx context.Context, sessionID uuid.UUID) (unlock func(), err error)
}

// LoadOrDefault returns the stored state, or the default state when the session
// is unknown or the store fails. A failing store never breaks page rendering.
func LoadOrDefault(ctx context.Context, store SessionStore, sessionID uuid.UUID, log logger.Logger) interaction.State {
	state, found, err := store.Load(ctx, sessionID)
	if err != nil {
		log.Warn("Failed to load session state, using defaults", zap.String("session_id", sessionID.String()), zap.Error(err))
		return interaction.DefaultState()
	}
	if !found {
		return interaction.DefaultState()
	}
	return state
}
