// Package view renders the portfolio page as a gomponents tree. Every function is
// a pure projection of the content model and the UI state.
package view

import (
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/khoahotran/portfolio/internal/domain/interaction"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
)

const (
	SectionAbout    = "about"
	SectionProjects = "projects"
	SectionSkills   = "skills"
	SectionContact  = "contact"

	NavbarID      = "navbar"
	MobileMenuID  = "mobile-menu"
	ProjectGridID = "project-grid"
)

// SectionIDs lists the section anchors in page order.
func SectionIDs() []string {
	return []string{SectionAbout, SectionProjects, SectionSkills, SectionContact}
}

func Page(c *portfolio.Content, s interaction.State) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Textf("%s | %s", c.Profile.Name, c.Profile.Title)),
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				h.Link(h.Rel("stylesheet"), h.Href("/static/portfolio.css")),
				h.Script(h.Src("/static/portfolio.js"), g.Attr("defer")),
			),
			h.Body(
				h.Class("min-h-screen bg-gradient-to-br from-gray-900 via-gray-800 to-gray-900 text-white"),
				Navbar(c, s),
				hero(c),
				projectsSection(c, s),
				skillsSection(c),
				contactSection(c),
				footer(c),
			),
		),
	)
}

func RenderPage(w io.Writer, c *portfolio.Content, s interaction.State) error {
	return Page(c, s).Render(w)
}

func RenderNavbar(w io.Writer, c *portfolio.Content, s interaction.State) error {
	return Navbar(c, s).Render(w)
}

func RenderProjectGrid(w io.Writer, c *portfolio.Content, s interaction.State) error {
	return ProjectGrid(c, s).Render(w)
}

const (
	newTab = "_blank"
	noRef  = "noopener noreferrer"
)

func externalLink(href, class string, children ...g.Node) g.Node {
	return h.A(h.Href(href), h.Target(newTab), h.Rel(noRef), h.Class(class), g.Group(children))
}

// mailHref falls back to a plain mailto: prefix for content that skipped validation.
func mailHref(c *portfolio.Content) string {
	if href, err := c.Profile.MailtoURL(); err == nil {
		return href
	}
	return "mailto:" + c.Profile.Email
}

// hideOnError hides an image that fails to load instead of showing a broken icon.
func hideOnError() g.Node {
	return g.Attr("onerror", "this.style.display='none'")
}
