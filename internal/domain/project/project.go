package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/khoahotran/portfolio/internal/domain/profile"
)

// Gradient is the two-color accent strip drawn on top of a project card.
type Gradient struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Project struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	GitHub      *string  `json:"github"`
	Demo        *string  `json:"demo"`
	Accent      Gradient `json:"accent"`
}

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrDuplicateID     = errors.New("duplicate project id")
	ErrInvalidLink     = errors.New("project link must be an absolute URI")
)

func (p *Project) HasGitHub() bool { return p.GitHub != nil }

func (p *Project) HasDemo() bool { return p.Demo != nil }

func (p *Project) Validate() error {
	var errs []error
	if p.Title == "" {
		errs = append(errs, fmt.Errorf("project %d: title is required", p.ID))
	}
	if p.GitHub != nil && !profile.IsAbsoluteURI(*p.GitHub) {
		errs = append(errs, fmt.Errorf("%w: project %d github=%q", ErrInvalidLink, p.ID, *p.GitHub))
	}
	if p.Demo != nil && !profile.IsAbsoluteURI(*p.Demo) {
		errs = append(errs, fmt.Errorf("%w: project %d demo=%q", ErrInvalidLink, p.ID, *p.Demo))
	}
	return errors.Join(errs...)
}

// ValidateSet checks every project and the uniqueness of ids.
func ValidateSet(projects []Project) error {
	var errs []error
	seen := make(map[int]struct{}, len(projects))
	for i := range projects {
		p := &projects[i]
		if _, dup := seen[p.ID]; dup {
			errs = append(errs, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID))
		}
		seen[p.ID] = struct{}{}
		if err := p.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type Repository interface {
	FindByID(ctx context.Context, id int) (*Project, error)
	List(ctx context.Context) ([]Project, error)
}
