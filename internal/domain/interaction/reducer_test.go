package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDocument map[string]float64

func (d fakeDocument) FindElementByAnchor(anchor string) (Element, bool) {
	top, ok := d[anchor]
	if !ok {
		return Element{}, false
	}
	id, _ := AnchorID(anchor)
	return Element{ID: id, Top: top}, true
}

type recordingScroller struct {
	calls []float64
}

func (r *recordingScroller) AnimateScrollTo(y float64) {
	r.calls = append(r.calls, y)
}

var page = fakeDocument{
	"#about":    0,
	"#projects": 900,
	"#skills":   1800,
	"#contact":  2600,
}

func intPtr(i int) *int { return &i }

func TestNavigateAlwaysClosesMenu(t *testing.T) {
	for anchor := range page {
		for _, open := range []bool{true, false} {
			next, cmds := Reduce(State{MobileMenuOpen: open, HoveredProjectID: intPtr(2)}, Navigate{Anchor: anchor}, page)

			assert.False(t, next.MobileMenuOpen, anchor)
			assert.Equal(t, 2, *next.HoveredProjectID, "hover is untouched")
			require.Len(t, cmds, 1)
			assert.Equal(t, ScrollTo{Y: page[anchor] - NavbarOffset, Smooth: true}, cmds[0])
		}
	}
}

func TestNavigateToMissingAnchorIsNoop(t *testing.T) {
	before := State{MobileMenuOpen: true, HoveredProjectID: intPtr(1)}

	for _, anchor := range []string{"#does-not-exist", "", "#", "projects"} {
		var next State
		var cmds []Command
		assert.NotPanics(t, func() {
			next, cmds = Reduce(before, Navigate{Anchor: anchor}, page)
		})
		assert.True(t, before.Equal(next), anchor)
		assert.Empty(t, cmds, anchor)
	}
}

func TestNavigateWithoutDocumentIsNoop(t *testing.T) {
	next, cmds := Reduce(State{MobileMenuOpen: true}, Navigate{Anchor: "#about"}, nil)
	assert.True(t, next.MobileMenuOpen)
	assert.Empty(t, cmds)
}

func TestNavigateDoesNotClamp(t *testing.T) {
	_, cmds := Reduce(DefaultState(), Navigate{Anchor: "#about"}, page)
	require.Len(t, cmds, 1)
	assert.Equal(t, float64(-80), cmds[0].(ScrollTo).Y)
}

func TestToggleMenuTwiceRestoresState(t *testing.T) {
	for _, open := range []bool{true, false} {
		s := State{MobileMenuOpen: open}
		once, cmds := Reduce(s, ToggleMenu{}, page)
		assert.Equal(t, !open, once.MobileMenuOpen)
		assert.Empty(t, cmds)

		twice, _ := Reduce(once, ToggleMenu{}, page)
		assert.Equal(t, open, twice.MobileMenuOpen)
	}
}

func TestHoverEnterThenLeaveClears(t *testing.T) {
	for _, id := range []int{1, 3, -7, 999} {
		s, _ := Reduce(DefaultState(), ProjectHoverEnter{ProjectID: id}, page)
		require.NotNil(t, s.HoveredProjectID)
		assert.Equal(t, id, *s.HoveredProjectID)
		assert.True(t, s.IsHovered(id))

		s, _ = Reduce(s, ProjectHoverLeave{}, page)
		assert.Nil(t, s.HoveredProjectID)
	}
}

func TestHoverLeaveWithoutEnter(t *testing.T) {
	s, _ := Reduce(DefaultState(), ProjectHoverLeave{}, page)
	assert.True(t, DefaultState().Equal(s))
}

func TestReduceDoesNotAliasInput(t *testing.T) {
	s, _ := Reduce(DefaultState(), ProjectHoverEnter{ProjectID: 1}, page)
	next, _ := Reduce(s, ProjectHoverEnter{ProjectID: 2}, page)

	assert.Equal(t, 1, *s.HoveredProjectID)
	assert.Equal(t, 2, *next.HoveredProjectID)
}

func TestStateEqual(t *testing.T) {
	assert.True(t, State{}.Equal(State{}))
	assert.True(t, State{HoveredProjectID: intPtr(3)}.Equal(State{HoveredProjectID: intPtr(3)}))
	assert.False(t, State{HoveredProjectID: intPtr(3)}.Equal(State{}))
	assert.False(t, State{MobileMenuOpen: true}.Equal(State{}))
}
