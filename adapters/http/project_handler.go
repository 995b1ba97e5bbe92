package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	projectUC "github.com/khoahotran/portfolio/internal/application/usecase/project"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type ProjectHandler struct {
	listProjectsUseCase *projectUC.ListProjectsUseCase
	getProjectUseCase   *projectUC.GetProjectUseCase
	logger              logger.Logger
}

func NewProjectHandler(
	listUC *projectUC.ListProjectsUseCase,
	getUC *projectUC.GetProjectUseCase,
	log logger.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		listProjectsUseCase: listUC,
		getProjectUseCase:   getUC,
		logger:              log,
	}
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}
	output, err := h.getProjectUseCase.Execute(c.Request.Context(), projectUC.GetProjectInput{ProjectID: projectID})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTO(*output.Project))
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	withDemo, err := strconv.ParseBool(c.DefaultQuery("with_demo", "false"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("with_demo must be a boolean", err))
		return
	}

	output, err := h.listProjectsUseCase.Execute(c.Request.Context(), projectUC.ListProjectsInput{WithDemoOnly: withDemo})
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]ProjectDTO, len(output.Projects))
	for i, p := range output.Projects {
		dtos[i] = ToProjectDTO(p)
	}
	c.JSON(http.StatusOK, dtos)
}
