package http

import (
	"fmt"

	"github.com/khoahotran/portfolio/internal/domain/interaction"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/internal/domain/project"
)

// UI event DTOs

const (
	EventNavigate          = "navigate"
	EventToggleMenu        = "toggle_menu"
	EventProjectHoverEnter = "project_hover_enter"
	EventProjectHoverLeave = "project_hover_leave"
)

type UIEventRequest struct {
	Type      string             `json:"type" binding:"required"`
	Anchor    string             `json:"anchor"`
	ProjectID *int               `json:"project_id"`
	Offsets   map[string]float64 `json:"offsets"`
}

func (req *UIEventRequest) ToDomainEvent() (interaction.Event, error) {
	switch req.Type {
	case EventNavigate:
		return interaction.Navigate{Anchor: req.Anchor}, nil
	case EventToggleMenu:
		return interaction.ToggleMenu{}, nil
	case EventProjectHoverEnter:
		if req.ProjectID == nil {
			return nil, fmt.Errorf("project_id is required for %s", req.Type)
		}
		return interaction.ProjectHoverEnter{ProjectID: *req.ProjectID}, nil
	case EventProjectHoverLeave:
		return interaction.ProjectHoverLeave{}, nil
	}
	return nil, fmt.Errorf("unknown event type %q", req.Type)
}

type UIStateDTO struct {
	HoveredProjectID *int `json:"hovered_project_id"`
	MobileMenuOpen   bool `json:"mobile_menu_open"`
}

type CommandDTO struct {
	Op       string  `json:"op"`
	Y        float64 `json:"y"`
	Behavior string  `json:"behavior"`
}

type UIEventResponse struct {
	State     UIStateDTO        `json:"state"`
	Commands  []CommandDTO      `json:"commands"`
	Fragments map[string]string `json:"fragments"`
}

func ToUIStateDTO(s interaction.State) UIStateDTO {
	return UIStateDTO{HoveredProjectID: s.HoveredProjectID, MobileMenuOpen: s.MobileMenuOpen}
}

func ToCommandDTOs(cmds []interaction.Command) []CommandDTO {
	dtos := make([]CommandDTO, 0, len(cmds))
	for _, cmd := range cmds {
		switch cmd := cmd.(type) {
		case interaction.ScrollTo:
			behavior := "auto"
			if cmd.Smooth {
				behavior = "smooth"
			}
			dtos = append(dtos, CommandDTO{Op: "scroll_to", Y: cmd.Y, Behavior: behavior})
		}
	}
	return dtos
}

// Content DTOs

type ProfileDTO struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Email    string `json:"email"`
	Mailto   string `json:"mailto"`
	Image    string `json:"image"`
	Resume   string `json:"resume,omitempty"`
}

type ProjectDTO struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	GitHub      *string  `json:"github"`
	Demo        *string  `json:"demo"`
	Accent      []string `json:"accent"`
}

func ToProjectDTO(p project.Project) ProjectDTO {
	tech := p.Tech
	if tech == nil {
		tech = []string{}
	}
	return ProjectDTO{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Tech:        tech,
		GitHub:      p.GitHub,
		Demo:        p.Demo,
		Accent:      []string{p.Accent.From, p.Accent.To},
	}
}

type SkillCategoryDTO struct {
	Name  string   `json:"name"`
	Icon  string   `json:"icon"`
	Items []string `json:"items"`
}

type SkillsDTO struct {
	Categories []SkillCategoryDTO    `json:"categories"`
	Icons      []portfolio.TechIcon `json:"icons"`
}

func ToSkillsDTO(cats []portfolio.SkillCategory, icons []portfolio.TechIcon) SkillsDTO {
	dto := SkillsDTO{Categories: make([]SkillCategoryDTO, len(cats)), Icons: icons}
	for i, c := range cats {
		dto.Categories[i] = SkillCategoryDTO{Name: c.Name, Icon: c.Icon, Items: c.Items}
	}
	if dto.Icons == nil {
		dto.Icons = []portfolio.TechIcon{}
	}
	return dto
}
