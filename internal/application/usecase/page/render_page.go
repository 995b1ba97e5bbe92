package page

import (
	"bytes"
	"context"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio/adapters/view"
	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/interaction"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type RenderPageUseCase struct {
	contentRepo portfolio.Repository
	sessions    service.SessionStore
	logger      logger.Logger
}

func NewRenderPageUseCase(repo portfolio.Repository, sessions service.SessionStore, log logger.Logger) *RenderPageUseCase {
	return &RenderPageUseCase{contentRepo: repo, sessions: sessions, logger: log}
}

type RenderPageInput struct {
	SessionID uuid.UUID
}

type RenderPageOutput struct {
	HTML  []byte
	State interaction.State
}

func (uc *RenderPageUseCase) Execute(ctx context.Context, input RenderPageInput) (*RenderPageOutput, error) {
	c, err := uc.contentRepo.Content(ctx)
	if err != nil {
		return nil, apperror.NewInternal("load page content", err)
	}
	state := service.LoadOrDefault(ctx, uc.sessions, input.SessionID, uc.logger)

	var buf bytes.Buffer
	if err := view.RenderPage(&buf, c, state); err != nil {
		return nil, apperror.NewInternal("render page", err)
	}
	return &RenderPageOutput{HTML: buf.Bytes(), State: state}, nil
}
