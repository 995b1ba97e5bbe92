// Package interaction is the page's only behavior: the UI state value, the typed
// events that change it, and the side-effect commands a transition asks the host
// to perform.
package interaction

import "strings"

// NavbarOffset is the height of the fixed navbar. Scroll targets land this far
// above a section's top edge so the navbar does not cover it.
const NavbarOffset = 80

// State is the ephemeral UI state. It is a value; transitions return a new one.
type State struct {
	HoveredProjectID *int `json:"hovered_project_id"`
	MobileMenuOpen   bool `json:"mobile_menu_open"`
}

func DefaultState() State {
	return State{}
}

// IsHovered reports whether the project card with id is the hover target.
func (s State) IsHovered(id int) bool {
	return s.HoveredProjectID != nil && *s.HoveredProjectID == id
}

func (s State) Equal(o State) bool {
	if s.MobileMenuOpen != o.MobileMenuOpen {
		return false
	}
	if s.HoveredProjectID == nil || o.HoveredProjectID == nil {
		return s.HoveredProjectID == nil && o.HoveredProjectID == nil
	}
	return *s.HoveredProjectID == *o.HoveredProjectID
}

// Element is a resolved page element. Top is its offset from the top of the document.
type Element struct {
	ID  string
	Top float64
}

// Document resolves a fragment identifier like "#projects" to an element.
type Document interface {
	FindElementByAnchor(anchor string) (Element, bool)
}

// Scroller animates the viewport. Calls are fire-and-forget.
type Scroller interface {
	AnimateScrollTo(y float64)
}

// AnchorID strips the leading '#' of a fragment identifier. It returns false for
// anything that is not a non-empty fragment.
func AnchorID(anchor string) (string, bool) {
	id, ok := strings.CutPrefix(anchor, "#")
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

type Event interface {
	isEvent()
}

type Navigate struct {
	Anchor string
}

type ToggleMenu struct{}

type ProjectHoverEnter struct {
	ProjectID int
}

type ProjectHoverLeave struct{}

func (Navigate) isEvent()          {}
func (ToggleMenu) isEvent()        {}
func (ProjectHoverEnter) isEvent() {}
func (ProjectHoverLeave) isEvent() {}

type Command interface {
	isCommand()
}

// ScrollTo asks the host to scroll the viewport to Y. The host clamps Y to the
// scrollable range.
type ScrollTo struct {
	Y      float64
	Smooth bool
}

func (ScrollTo) isCommand() {}
