package view

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/khoahotran/portfolio/internal/domain/interaction"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
)

// Document is a queryable copy of a rendered page. Element ids come from the
// parsed markup; vertical offsets come from the host, which is the only party
// that knows the layout. An anchor resolves only when both are present.
type Document struct {
	ids     map[string]struct{}
	offsets map[string]float64
}

var _ interaction.Document = (*Document)(nil)

func ParseDocument(r io.Reader, offsets map[string]float64) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse rendered page: %w", err)
	}
	d := &Document{ids: make(map[string]struct{}), offsets: make(map[string]float64, len(offsets))}
	collectIDs(root, d.ids)
	for anchor, top := range offsets {
		if id, ok := interaction.AnchorID(anchor); ok {
			d.offsets[id] = top
		}
	}
	return d, nil
}

// DocumentFor renders the page for c and s and parses it back.
func DocumentFor(c *portfolio.Content, s interaction.State, offsets map[string]float64) (*Document, error) {
	var buf bytes.Buffer
	if err := RenderPage(&buf, c, s); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return ParseDocument(&buf, offsets)
}

func collectIDs(n *html.Node, into map[string]struct{}) {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val != "" {
				into[a.Val] = struct{}{}
			}
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectIDs(child, into)
	}
}

func (d *Document) Has(id string) bool {
	_, ok := d.ids[id]
	return ok
}

func (d *Document) FindElementByAnchor(anchor string) (interaction.Element, bool) {
	id, ok := interaction.AnchorID(anchor)
	if !ok || !d.Has(id) {
		return interaction.Element{}, false
	}
	top, measured := d.offsets[id]
	if !measured {
		return interaction.Element{}, false
	}
	return interaction.Element{ID: id, Top: top}, true
}
