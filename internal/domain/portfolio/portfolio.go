// Package portfolio holds the immutable content model of the page: the profile,
// the project gallery, the skill list and the navigation entries.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/khoahotran/portfolio/internal/domain/profile"
	"github.com/khoahotran/portfolio/internal/domain/project"
)

// SkillCategory groups skill names under one heading. The same skill may appear
// in several categories.
type SkillCategory struct {
	Name  string   `json:"name"`
	Icon  string   `json:"icon"`
	Items []string `json:"items"`
}

// NavItem links a menu entry to a section anchor such as "#projects".
// The order of NavItems is the menu order and the section order.
type NavItem struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// Anchor returns the element id targeted by Href, or "" if Href is not a fragment.
func (n NavItem) Anchor() string {
	id, ok := strings.CutPrefix(n.Href, "#")
	if !ok {
		return ""
	}
	return id
}

// TechIcon is one entry of the technology icon strip.
type TechIcon struct {
	Name       string `json:"name"`
	IconURL    string `json:"icon_url"`
	HoverColor string `json:"hover_color"`
}

type Contact struct {
	Heading string   `json:"heading"`
	Lines   []string `json:"lines"`
	CTA     string   `json:"cta"`
}

type Content struct {
	Profile    profile.Profile   `json:"profile"`
	Projects   []project.Project `json:"projects"`
	Skills     []SkillCategory   `json:"skills"`
	NavItems   []NavItem         `json:"nav_items"`
	TechIcons  []TechIcon        `json:"tech_icons"`
	Contact    Contact           `json:"contact"`
	ResumePath string            `json:"resume_path"`
	Year       int               `json:"year"`
}

var ErrDanglingNavItem = errors.New("nav item does not target a page section")

// Validate checks the content invariants. sectionIDs are the anchor ids the
// renderer emits; every NavItem must target one of them.
func (c *Content) Validate(sectionIDs []string) error {
	var errs []error
	if err := c.Profile.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := project.ValidateSet(c.Projects); err != nil {
		errs = append(errs, err)
	}

	sections := make(map[string]struct{}, len(sectionIDs))
	for _, id := range sectionIDs {
		sections[id] = struct{}{}
	}
	for _, item := range c.NavItems {
		if _, ok := sections[item.Anchor()]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s -> %q", ErrDanglingNavItem, item.Name, item.Href))
		}
	}
	return errors.Join(errs...)
}

func (c *Content) ProjectByID(id int) (*project.Project, bool) {
	for i := range c.Projects {
		if c.Projects[i].ID == id {
			return &c.Projects[i], true
		}
	}
	return nil, false
}

// Repository serves the content model. Implementations return the same
// immutable value for the process lifetime.
type Repository interface {
	Content(ctx context.Context) (*Content, error)
}
