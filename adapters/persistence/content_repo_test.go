package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/adapters/view"
	"github.com/khoahotran/portfolio/internal/content"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
)

func TestContentRepoRejectsInvalidContent(t *testing.T) {
	c := content.Default()
	c.NavItems = append(c.NavItems, portfolio.NavItem{Name: "Blog", Href: "#blog"})

	_, err := NewContentRepo(c, view.SectionIDs())
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.ErrorIs(t, err, portfolio.ErrDanglingNavItem)
}

func TestContentRepoProjects(t *testing.T) {
	repo, err := NewContentRepo(content.Default(), view.SectionIDs())
	require.NoError(t, err)
	ctx := context.Background()

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 3)

	p, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Scheduler4U", p.Title)

	p.Title = "mutated"
	c, err := repo.Content(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Scheduler4U", c.Projects[1].Title)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
