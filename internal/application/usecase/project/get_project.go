package project

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type GetProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Logger
}

func NewGetProjectUseCase(pRepo project.Repository, log logger.Logger) *GetProjectUseCase {
	return &GetProjectUseCase{projectRepo: pRepo, logger: log}
}

type GetProjectInput struct {
	ProjectID int
}
type GetProjectOutput struct {
	Project *project.Project
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, input GetProjectInput) (*GetProjectOutput, error) {
	p, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		uc.logger.Debug("Project lookup failed", zap.Int("project_id", input.ProjectID), zap.Error(err))
		return nil, err
	}
	return &GetProjectOutput{Project: p}, nil
}
