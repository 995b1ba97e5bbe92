package persistence

import (
	"context"
	"strconv"

	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/pkg/apperror"
)

// ContentRepo serves a content model fixed at construction. It implements both
// portfolio.Repository and project.Repository.
type ContentRepo struct {
	content *portfolio.Content
}

var (
	_ portfolio.Repository = (*ContentRepo)(nil)
	_ project.Repository   = (*ContentRepo)(nil)
)

// NewContentRepo validates c against the rendered section anchors and wraps it.
func NewContentRepo(c *portfolio.Content, sectionIDs []string) (*ContentRepo, error) {
	if err := c.Validate(sectionIDs); err != nil {
		return nil, apperror.NewInvalidInput("page content failed validation", err)
	}
	return &ContentRepo{content: c}, nil
}

func (r *ContentRepo) Content(ctx context.Context) (*portfolio.Content, error) {
	return r.content, nil
}

func (r *ContentRepo) FindByID(ctx context.Context, id int) (*project.Project, error) {
	p, ok := r.content.ProjectByID(id)
	if !ok {
		return nil, apperror.NewNotFound("project", strconv.Itoa(id))
	}
	cp := *p
	return &cp, nil
}

func (r *ContentRepo) List(ctx context.Context) ([]project.Project, error) {
	out := make([]project.Project, len(r.content.Projects))
	copy(out, r.content.Projects)
	return out, nil
}
