package view

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/khoahotran/portfolio/internal/domain/interaction"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/internal/domain/project"
)

func hero(c *portfolio.Content) g.Node {
	const button = "px-6 sm:px-8 py-3 rounded-lg font-semibold transition-all cursor-pointer text-center"

	return h.Section(
		h.ID(SectionAbout),
		h.Class("pt-32 pb-20 px-4 sm:px-6 lg:px-8"),
		h.Div(
			h.Class("max-w-7xl mx-auto grid lg:grid-cols-2 gap-12 items-center"),
			h.Div(
				h.Class("space-y-4 sm:space-y-6"),
				h.H2(
					h.Class("text-4xl sm:text-5xl md:text-6xl lg:text-7xl font-bold leading-tight"),
					g.Text("Hi, I'm "),
					h.Span(h.Class("bg-gradient-to-r from-cyan-400 via-blue-500 to-purple-600 bg-clip-text text-transparent"), g.Text(c.Profile.Name)),
				),
				h.P(h.Class("text-2xl sm:text-3xl text-gray-400"), g.Text(c.Profile.Title)),
				h.P(h.Class("text-lg sm:text-xl text-justify text-gray-300 leading-relaxed"), g.Text(c.Profile.Bio)),
				h.Div(
					h.Class("flex flex-col sm:flex-row gap-4 pt-4"),
					h.A(h.Href("#"+SectionProjects), g.Attr("data-nav"), h.Class(button+" bg-gradient-to-r from-cyan-500 to-blue-600 hover:shadow-lg hover:shadow-cyan-500/50"), g.Text("View Projects")),
					h.A(h.Href("#"+SectionContact), g.Attr("data-nav"), h.Class(button+" border-2 border-gray-600 hover:border-cyan-400 hover:text-cyan-400"), g.Text("Get in Touch")),
					g.If(c.ResumePath != "",
						externalLink(c.ResumePath, button+" bg-gradient-to-r from-purple-200 to-purple-800 font-bold hover:shadow-lg hover:shadow-purple-500/50", g.Text("MY RESUME")),
					),
				),
			),
			h.Div(
				h.Class("relative flex justify-center lg:justify-end"),
				h.Div(
					h.Class("relative w-72 h-72 sm:w-80 sm:h-80 lg:w-96 lg:h-96 rounded-full border-4 border-white overflow-hidden bg-gray-700"),
					h.Img(
						h.Src(c.Profile.Image),
						h.Alt(c.Profile.Name),
						h.Class("w-full h-full object-cover"),
						hideOnError(),
					),
				),
			),
		),
	)
}

func projectsSection(c *portfolio.Content, s interaction.State) g.Node {
	return h.Section(
		h.ID(SectionProjects),
		h.Class("py-12 sm:py-16 lg:py-20 px-4 sm:px-6 lg:px-8 bg-gray-900/50"),
		h.Div(
			h.Class("max-w-7xl mx-auto"),
			h.H3(h.Class("text-3xl sm:text-4xl font-bold mb-8 sm:mb-12 text-center"), g.Text("My Featured Projects")),
			ProjectGrid(c, s),
		),
	)
}

// ProjectGrid renders the project cards. It is re-sent on hover changes.
func ProjectGrid(c *portfolio.Content, s interaction.State) g.Node {
	return h.Div(
		h.ID(ProjectGridID),
		h.Class("grid sm:grid-cols-2 lg:grid-cols-3 gap-6 lg:gap-8"),
		g.Map(c.Projects, func(p project.Project) g.Node {
			return projectCard(p, s.IsHovered(p.ID))
		}),
	)
}

func projectCard(p project.Project, hovered bool) g.Node {
	const linkClass = "flex items-center gap-2 text-gray-400 hover:text-cyan-400 transition-colors text-sm sm:text-base"

	class := "bg-gray-800/50 rounded-xl overflow-hidden border transition-all duration-300 "
	if hovered {
		class += "border-cyan-500 scale-105"
	} else {
		class += "border-gray-700"
	}

	return h.Div(
		h.Class(class),
		g.Attr("data-project-id", strconv.Itoa(p.ID)),
		g.If(hovered, g.Attr("data-hovered", "true")),
		h.Div(h.Class(fmt.Sprintf("h-2 bg-gradient-to-r from-%s to-%s", p.Accent.From, p.Accent.To))),
		h.Div(
			h.Class("p-5 sm:p-6 space-y-4"),
			h.H4(h.Class("text-xl sm:text-2xl font-bold"), g.Text(p.Title)),
			h.P(h.Class("text-gray-400 leading-relaxed text-sm sm:text-base"), g.Text(p.Description)),
			h.Div(
				h.Class("flex flex-wrap gap-2"),
				g.Map(p.Tech, func(tech string) g.Node {
					return h.Span(h.Class("px-2 sm:px-3 py-1 bg-gray-700 rounded-full text-xs sm:text-sm text-cyan-400"), g.Text(tech))
				}),
			),
			h.Div(
				h.Class("flex gap-4 pt-2"),
				codeLink(p, linkClass),
				demoLink(p, linkClass),
			),
		),
	)
}

// codeLink is always shown. Without a repository it is rendered disabled rather
// than as an anchor with no destination.
func codeLink(p project.Project, class string) g.Node {
	if !p.HasGitHub() {
		return h.Span(
			h.Class(class+" opacity-50 cursor-not-allowed"),
			g.Attr("aria-disabled", "true"),
			g.Attr("data-link", "code"),
			h.Title("Source not public"),
			icon(iconGitHub),
			g.Text("Code"),
		)
	}
	return externalLink(*p.GitHub, class, g.Attr("data-link", "code"), icon(iconGitHub), g.Text("Code"))
}

func demoLink(p project.Project, class string) g.Node {
	if !p.HasDemo() {
		return nil
	}
	return externalLink(*p.Demo, class, g.Attr("data-link", "demo"), icon(iconExternal), g.Text("Demo"))
}

func skillsSection(c *portfolio.Content) g.Node {
	return h.Section(
		h.ID(SectionSkills),
		h.Class("py-12 sm:py-16 lg:py-20 px-4 sm:px-6 lg:px-8"),
		h.Div(
			h.Class("max-w-7xl mx-auto"),
			h.H3(h.Class("text-3xl sm:text-4xl font-bold mb-8 sm:mb-12 text-center"), g.Text("Skills & Tools")),
			h.Div(
				h.Class("mb-12 sm:mb-16 flex flex-wrap justify-center items-center gap-6 sm:gap-8 lg:gap-10"),
				g.Map(c.TechIcons, techIcon),
			),
			h.Div(
				h.Class("grid sm:grid-cols-2 lg:grid-cols-3 gap-6 lg:gap-8"),
				g.Map(c.Skills, skillCard),
			),
		),
	)
}

func techIcon(t portfolio.TechIcon) g.Node {
	return h.Div(
		h.Class("group flex flex-col items-center gap-3"),
		h.Div(
			h.Class("w-16 h-16 sm:w-20 sm:h-20 bg-gray-800 rounded-2xl flex items-center justify-center border-2 border-gray-700 group-hover:border-"+t.HoverColor+" transition-all p-3 sm:p-4"),
			h.Img(h.Src(t.IconURL), h.Alt(t.Name), h.Class("w-full h-full object-contain"), g.Attr("loading", "lazy"), hideOnError()),
		),
		h.Span(h.Class("text-xs sm:text-sm text-gray-400 group-hover:text-"+t.HoverColor), g.Text(t.Name)),
	)
}

func skillCard(cat portfolio.SkillCategory) g.Node {
	return h.Div(
		h.Class("bg-gray-800/50 rounded-xl p-5 sm:p-6 border border-gray-700 hover:border-cyan-500 transition-all"),
		h.Div(
			h.Class("flex items-center gap-3 mb-4 text-cyan-400"),
			skillIcon(cat.Icon),
			h.H4(h.Class("text-xl sm:text-2xl font-bold text-white"), g.Text(cat.Name)),
		),
		h.Ul(
			h.Class("space-y-2"),
			g.Map(cat.Items, func(item string) g.Node {
				return h.Li(
					h.Class("text-gray-400 flex items-center gap-2 text-sm sm:text-base"),
					h.Span(h.Class("w-2 h-2 bg-cyan-400 rounded-full shrink-0")),
					g.Text(item),
				)
			}),
		),
	)
}

func contactSection(c *portfolio.Content) g.Node {
	return h.Section(
		h.ID(SectionContact),
		h.Class("py-12 sm:py-16 lg:py-20 px-4 sm:px-6 lg:px-8 bg-gray-900/50"),
		h.Div(
			h.Class("max-w-4xl mx-auto text-center space-y-4 sm:space-y-6"),
			h.H3(h.Class("text-3xl sm:text-4xl font-bold"), g.Text(c.Contact.Heading)),
			g.Map(c.Contact.Lines, func(line string) g.Node {
				return h.P(h.Class("text-lg sm:text-xl text-gray-400 px-4"), g.Text(line))
			}),
			h.A(
				h.Href(mailHref(c)),
				h.Class("inline-block px-6 sm:px-8 py-3 bg-gradient-to-r from-cyan-500 to-blue-600 rounded-lg font-semibold hover:shadow-lg hover:shadow-cyan-500/50 transition-all"),
				g.Text(c.Contact.CTA),
			),
		),
	)
}

func footer(c *portfolio.Content) g.Node {
	return h.Footer(
		h.Class("py-6 sm:py-8 px-4 sm:px-6 border-t border-gray-800"),
		h.Div(
			h.Class("max-w-7xl mx-auto text-center text-gray-400 text-sm sm:text-base"),
			h.P(g.Textf("© %d %s. Built with Go & Tailwind CSS.", c.Year, c.Profile.Name)),
		),
	)
}
