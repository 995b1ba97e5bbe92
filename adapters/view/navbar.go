package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/khoahotran/portfolio/internal/domain/interaction"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
)

// Navbar is the fixed top bar. Desktop links are always emitted and hidden by
// breakpoint; the mobile panel exists only while the menu is open.
func Navbar(c *portfolio.Content, s interaction.State) g.Node {
	toggleLabel, toggleGlyph := "Open menu", glyphMenu
	if s.MobileMenuOpen {
		toggleLabel, toggleGlyph = "Close menu", glyphClose
	}

	return h.Nav(
		h.ID(NavbarID),
		h.Class("fixed top-0 w-full bg-gray-900/80 backdrop-blur-md z-50 border-b border-gray-800"),
		h.Div(
			h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-4 flex justify-between items-center"),
			h.H1(
				h.Class("text-xl sm:text-2xl font-bold bg-gradient-to-r from-cyan-400 to-blue-500 bg-clip-text text-transparent"),
				g.Text(c.Profile.Name),
			),
			h.Div(
				h.Class("hidden lg:flex gap-6 xl:gap-8"),
				g.Attr("data-menu", "desktop"),
				navLinks(c.NavItems, "text-gray-300 hover:text-cyan-400 transition-colors font-medium cursor-pointer"),
			),
			h.Div(
				h.Class("hidden sm:flex gap-3 lg:gap-4"),
				socialLinks(c),
			),
			h.Button(
				h.Type("button"),
				h.Class("lg:hidden text-gray-300 hover:text-cyan-400 transition-colors"),
				g.Attr("data-action", "toggle-menu"),
				g.Attr("aria-label", toggleLabel),
				g.Attr("aria-expanded", boolAttr(s.MobileMenuOpen)),
				g.Attr("aria-controls", MobileMenuID),
				g.Text(toggleGlyph),
			),
		),
		mobileMenu(c, s),
	)
}

func mobileMenu(c *portfolio.Content, s interaction.State) g.Node {
	if !s.MobileMenuOpen {
		return nil
	}
	return h.Div(
		h.ID(MobileMenuID),
		h.Class("lg:hidden bg-gray-900 border-t border-gray-800"),
		h.Div(
			h.Class("px-4 py-4 space-y-3"),
			navLinks(c.NavItems, "block text-gray-300 hover:text-cyan-400 transition-colors font-medium cursor-pointer py-2"),
			h.Div(h.Class("flex gap-4 pt-4 sm:hidden"), socialLinks(c)),
		),
	)
}

func navLinks(items []portfolio.NavItem, class string) g.Node {
	return g.Map(items, func(item portfolio.NavItem) g.Node {
		return h.A(h.Href(item.Href), h.Class(class), g.Attr("data-nav"), g.Text(item.Name))
	})
}

func socialLinks(c *portfolio.Content) g.Node {
	const class = "hover:text-cyan-400 transition-colors"
	return g.Group{
		externalLink(c.Profile.GitHub, class, g.Attr("aria-label", "GitHub"), icon(iconGitHub)),
		externalLink(c.Profile.LinkedIn, class, g.Attr("aria-label", "LinkedIn"), icon(iconLinkedIn)),
		h.A(h.Href(mailHref(c)), h.Class(class), g.Attr("aria-label", "Email"), icon(iconMail)),
	}
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
