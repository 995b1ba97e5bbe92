package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControllerClickProjectsNavEntry(t *testing.T) {
	scroller := &recordingScroller{}
	c := NewController(DefaultState(), page, scroller)

	c.NavigateTo("#projects")

	assert.True(t, DefaultState().Equal(c.State()))
	assert.Equal(t, []float64{900 - 80}, scroller.calls)
}

func TestControllerOpenMenuThenNavigate(t *testing.T) {
	scroller := &recordingScroller{}
	c := NewController(DefaultState(), page, scroller)

	c.ToggleMenu()
	assert.True(t, c.State().MobileMenuOpen)

	c.NavigateTo("#contact")
	assert.False(t, c.State().MobileMenuOpen)
	assert.Equal(t, []float64{2600 - 80}, scroller.calls)
}

func TestControllerMissingAnchorIssuesNoScroll(t *testing.T) {
	scroller := &recordingScroller{}
	c := NewController(State{MobileMenuOpen: true}, page, scroller)

	c.NavigateTo("#does-not-exist")

	assert.True(t, c.State().MobileMenuOpen)
	assert.Empty(t, scroller.calls)
}

func TestControllerHover(t *testing.T) {
	c := NewController(DefaultState(), page, nil)

	c.HoverEnter(3)
	assert.True(t, c.State().IsHovered(3))
	assert.False(t, c.State().IsHovered(1))

	c.HoverLeave()
	assert.Nil(t, c.State().HoveredProjectID)
}

func TestControllerWithoutScroller(t *testing.T) {
	c := NewController(DefaultState(), page, nil)

	var cmds []Command
	assert.NotPanics(t, func() { cmds = c.Dispatch(Navigate{Anchor: "#skills"}) })
	assert.Equal(t, []Command{ScrollTo{Y: 1720, Smooth: true}}, cmds)
}
