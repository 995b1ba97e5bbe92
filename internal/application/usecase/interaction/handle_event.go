package interaction

import (
	"bytes"
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/adapters/view"
	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/interaction"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// HandleEventUseCase runs one UI event of a session through the reducer and
// returns what the browser has to apply: the new state, the commands and the
// re-rendered regions whose output changed.
type HandleEventUseCase struct {
	contentRepo portfolio.Repository
	sessions    service.SessionStore
	logger      logger.Logger
}

func NewHandleEventUseCase(repo portfolio.Repository, sessions service.SessionStore, log logger.Logger) *HandleEventUseCase {
	return &HandleEventUseCase{contentRepo: repo, sessions: sessions, logger: log}
}

type HandleEventInput struct {
	SessionID uuid.UUID
	Event     interaction.Event
	// Offsets are the document offsets of page anchors measured by the browser,
	// keyed by fragment ("#projects").
	Offsets map[string]float64
}

type HandleEventOutput struct {
	State     interaction.State
	Commands  []interaction.Command
	Fragments map[string]string
}

func (uc *HandleEventUseCase) Execute(ctx context.Context, input HandleEventInput) (*HandleEventOutput, error) {
	if input.Event == nil {
		return nil, apperror.NewInvalidInput("event is required", nil)
	}
	c, err := uc.contentRepo.Content(ctx)
	if err != nil {
		return nil, apperror.NewInternal("load page content", err)
	}

	unlock, err := uc.sessions.Lock(ctx, input.SessionID)
	if err != nil {
		return nil, apperror.NewInternal("lock session", err)
	}
	defer unlock()

	prev := service.LoadOrDefault(ctx, uc.sessions, input.SessionID, uc.logger)

	// Only navigation looks anything up in the page.
	var doc interaction.Document
	if _, ok := input.Event.(interaction.Navigate); ok {
		parsed, err := view.DocumentFor(c, prev, input.Offsets)
		if err != nil {
			return nil, apperror.NewInternal("build page document", err)
		}
		doc = parsed
	}

	ctrl := interaction.NewController(prev, doc, nil)
	cmds := ctrl.Dispatch(input.Event)
	next := ctrl.State()

	if nav, ok := input.Event.(interaction.Navigate); ok && len(cmds) == 0 {
		uc.logger.Debug("Navigation target not found", zap.String("anchor", nav.Anchor))
	}

	if !next.Equal(prev) {
		if err := uc.sessions.Save(ctx, input.SessionID, next); err != nil {
			return nil, apperror.NewInternal("save session state", err)
		}
	}

	fragments, err := changedFragments(c, prev, next)
	if err != nil {
		return nil, apperror.NewInternal("render fragments", err)
	}
	return &HandleEventOutput{State: next, Commands: cmds, Fragments: fragments}, nil
}

func changedFragments(c *portfolio.Content, prev, next interaction.State) (map[string]string, error) {
	fragments := map[string]string{}
	var buf bytes.Buffer

	if prev.MobileMenuOpen != next.MobileMenuOpen {
		if err := view.RenderNavbar(&buf, c, next); err != nil {
			return nil, err
		}
		fragments[view.NavbarID] = buf.String()
		buf.Reset()
	}

	if !hoverEqual(prev, next) {
		if err := view.RenderProjectGrid(&buf, c, next); err != nil {
			return nil, err
		}
		fragments[view.ProjectGridID] = buf.String()
	}
	return fragments, nil
}

func hoverEqual(a, b interaction.State) bool {
	a.MobileMenuOpen, b.MobileMenuOpen = false, false
	return a.Equal(b)
}
