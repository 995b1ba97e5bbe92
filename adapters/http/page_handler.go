package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	interactionUC "github.com/khoahotran/portfolio/internal/application/usecase/interaction"
	pageUC "github.com/khoahotran/portfolio/internal/application/usecase/page"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type PageHandler struct {
	renderPageUseCase  *pageUC.RenderPageUseCase
	handleEventUseCase *interactionUC.HandleEventUseCase
	logger             logger.Logger
}

func NewPageHandler(renderUC *pageUC.RenderPageUseCase, eventUC *interactionUC.HandleEventUseCase, log logger.Logger) *PageHandler {
	return &PageHandler{
		renderPageUseCase:  renderUC,
		handleEventUseCase: eventUC,
		logger:             log,
	}
}

func (h *PageHandler) Index(c *gin.Context) {
	sessionID, ok := GetSessionIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewInternal("session id missing from context", nil))
		return
	}

	output, err := h.renderPageUseCase.Execute(c.Request.Context(), pageUC.RenderPageInput{SessionID: sessionID})
	if err != nil {
		c.Error(err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/html; charset=utf-8", output.HTML)
}

// HandleEvent handles POST /api/ui/events. A navigation to an anchor that does
// not resolve is answered 200 with the state unchanged and no commands.
func (h *PageHandler) HandleEvent(c *gin.Context) {
	sessionID, ok := GetSessionIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewInternal("session id missing from context", nil))
		return
	}

	var req UIEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid event body", err))
		return
	}
	event, err := req.ToDomainEvent()
	if err != nil {
		c.Error(apperror.NewInvalidInput(err.Error(), nil))
		return
	}

	output, err := h.handleEventUseCase.Execute(c.Request.Context(), interactionUC.HandleEventInput{
		SessionID: sessionID,
		Event:     event,
		Offsets:   req.Offsets,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, UIEventResponse{
		State:     ToUIStateDTO(output.State),
		Commands:  ToCommandDTOs(output.Commands),
		Fragments: output.Fragments,
	})
}
