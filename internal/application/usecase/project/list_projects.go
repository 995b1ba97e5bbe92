package project

import (
	"context"

	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
	logger      logger.Logger
}

func NewListProjectsUseCase(pRepo project.Repository, log logger.Logger) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: pRepo, logger: log}
}

type ListProjectsInput struct {
	// WithDemoOnly keeps only projects that have a live demo.
	WithDemoOnly bool
}
type ListProjectsOutput struct {
	Projects []project.Project
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if !input.WithDemoOnly {
		return &ListProjectsOutput{Projects: projects}, nil
	}
	filtered := make([]project.Project, 0, len(projects))
	for _, p := range projects {
		if p.HasDemo() {
			filtered = append(filtered, p)
		}
	}
	return &ListProjectsOutput{Projects: filtered}, nil
}
