package view

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/khoahotran/portfolio/internal/content"
	"github.com/khoahotran/portfolio/internal/domain/interaction"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/internal/domain/project"
)

func render(t *testing.T, c *portfolio.Content, s interaction.State) *html.Node {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, c, s))
	root, err := html.Parse(&buf)
	require.NoError(t, err)
	return root
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	if n.Type == html.ElementNode && match(n) {
		out = append(out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, findAll(c, match)...)
	}
	return out
}

func hasAttr(key, val string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		v, ok := attr(n, key)
		return ok && v == val
	}
}

func card(t *testing.T, root *html.Node, id int) *html.Node {
	t.Helper()
	cards := findAll(root, hasAttr("data-project-id", strconv.Itoa(id)))
	require.Len(t, cards, 1)
	return cards[0]
}

func TestDemoLinkPresentIffDemoSet(t *testing.T) {
	c := content.Default()
	root := render(t, c, interaction.DefaultState())

	for _, p := range c.Projects {
		demos := findAll(card(t, root, p.ID), hasAttr("data-link", "demo"))
		if p.Demo == nil {
			assert.Empty(t, demos, p.Title)
			continue
		}
		require.Len(t, demos, 1, p.Title)
		assert.Equal(t, "a", demos[0].Data)
		href, _ := attr(demos[0], "href")
		assert.Equal(t, *p.Demo, href)
	}
}

func TestEmptyDemoStringIsStillPresent(t *testing.T) {
	empty := ""
	c := &portfolio.Content{Projects: []project.Project{{ID: 7, Title: "Odd", Demo: &empty}}}
	root := render(t, c, interaction.DefaultState())

	assert.Len(t, findAll(card(t, root, 7), hasAttr("data-link", "demo")), 1)
}

func TestCodeLinkDisabledWithoutRepository(t *testing.T) {
	c := content.Default()
	root := render(t, c, interaction.DefaultState())

	// Library Manager App has neither a repository nor a demo.
	library := card(t, root, 3)
	codes := findAll(library, hasAttr("data-link", "code"))
	require.Len(t, codes, 1)
	assert.Equal(t, "span", codes[0].Data)
	disabled, _ := attr(codes[0], "aria-disabled")
	assert.Equal(t, "true", disabled)
	assert.Empty(t, findAll(library, hasAttr("data-link", "demo")))

	codes = findAll(card(t, root, 1), hasAttr("data-link", "code"))
	require.Len(t, codes, 1)
	assert.Equal(t, "a", codes[0].Data)
}

func TestNoAnchorWithoutHref(t *testing.T) {
	root := render(t, content.Default(), interaction.State{MobileMenuOpen: true})

	anchors := findAll(root, func(n *html.Node) bool { return n.Data == "a" })
	require.NotEmpty(t, anchors)
	for _, a := range anchors {
		href, ok := attr(a, "href")
		assert.True(t, ok && href != "", "anchor without destination")
	}
}

func TestMobileMenuPresentIffOpen(t *testing.T) {
	c := content.Default()

	closed := render(t, c, interaction.State{MobileMenuOpen: false})
	assert.Empty(t, findAll(closed, hasAttr("id", MobileMenuID)))

	open := render(t, c, interaction.State{MobileMenuOpen: true})
	panels := findAll(open, hasAttr("id", MobileMenuID))
	require.Len(t, panels, 1)
	assert.Len(t, findAll(panels[0], hasAttr("data-nav", "")), len(c.NavItems))

	for _, root := range []*html.Node{closed, open} {
		desktop := findAll(root, hasAttr("data-menu", "desktop"))
		require.Len(t, desktop, 1)
		assert.Len(t, findAll(desktop[0], hasAttr("data-nav", "")), len(c.NavItems))
	}
}

func TestHoverOnlyChangesHighlight(t *testing.T) {
	c := content.Default()
	id := 2

	var plain, hovered bytes.Buffer
	require.NoError(t, RenderProjectGrid(&plain, c, interaction.DefaultState()))
	require.NoError(t, RenderProjectGrid(&hovered, c, interaction.State{HoveredProjectID: &id}))

	assert.NotContains(t, plain.String(), `data-hovered`)
	assert.Equal(t, 1, strings.Count(hovered.String(), `data-hovered="true"`))

	root, err := html.Parse(&hovered)
	require.NoError(t, err)
	marked := findAll(root, hasAttr("data-hovered", "true"))
	require.Len(t, marked, 1)
	got, _ := attr(marked[0], "data-project-id")
	assert.Equal(t, "2", got)
}

func TestUnknownHoverIDMatchesNothing(t *testing.T) {
	id := 404
	var buf bytes.Buffer
	require.NoError(t, RenderProjectGrid(&buf, content.Default(), interaction.State{HoveredProjectID: &id}))
	assert.NotContains(t, buf.String(), "data-hovered")
}

func TestImagesHideOnError(t *testing.T) {
	root := render(t, content.Default(), interaction.DefaultState())

	imgs := findAll(root, func(n *html.Node) bool { return n.Data == "img" })
	require.NotEmpty(t, imgs)
	for _, img := range imgs {
		handler, ok := attr(img, "onerror")
		assert.True(t, ok)
		assert.Contains(t, handler, "display='none'")
	}
}

func TestContactUsesMailto(t *testing.T) {
	c := content.Default()
	root := render(t, c, interaction.DefaultState())

	mail := findAll(root, hasAttr("href", "mailto:"+c.Profile.Email))
	assert.NotEmpty(t, mail)
}

func TestSectionsRenderedInNavOrder(t *testing.T) {
	c := content.Default()
	root := render(t, c, interaction.DefaultState())

	sections := findAll(root, func(n *html.Node) bool { return n.Data == "section" })
	var ids []string
	for _, s := range sections {
		id, _ := attr(s, "id")
		ids = append(ids, id)
	}
	assert.Equal(t, SectionIDs(), ids)

	var anchors []string
	for _, item := range c.NavItems {
		anchors = append(anchors, item.Anchor())
	}
	assert.Equal(t, ids, anchors)
}
