package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/khoahotran/portfolio/internal/application/usecase/profile"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		logger:         log,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context())
	if err != nil {
		c.Error(apperror.NewInternal("failed to load profile", err))
		return
	}

	p := output.Profile
	c.JSON(http.StatusOK, ProfileDTO{
		Name:     p.Name,
		Title:    p.Title,
		Bio:      p.Bio,
		GitHub:   p.GitHub,
		LinkedIn: p.LinkedIn,
		Email:    p.Email,
		Mailto:   output.Mailto,
		Image:    p.Image,
		Resume:   output.Resume,
	})
}

func (h *ProfileHandler) ListSkills(c *gin.Context) {
	output, err := h.profileUseCase.ExecuteListSkills(c.Request.Context())
	if err != nil {
		c.Error(apperror.NewInternal("failed to load skills", err))
		return
	}
	c.JSON(http.StatusOK, ToSkillsDTO(output.Skills, output.TechIcons))
}
