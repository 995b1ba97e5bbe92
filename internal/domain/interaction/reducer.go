package interaction

// Reduce applies ev to s and returns the next state together with the commands the
// host must run. It never mutates s and never fails: events it cannot apply leave
// the state unchanged.
func Reduce(s State, ev Event, doc Document) (State, []Command) {
	switch e := ev.(type) {
	case Navigate:
		return navigate(s, e, doc)
	case ToggleMenu:
		s.MobileMenuOpen = !s.MobileMenuOpen
		return s, nil
	case ProjectHoverEnter:
		id := e.ProjectID
		s.HoveredProjectID = &id
		return s, nil
	case ProjectHoverLeave:
		s.HoveredProjectID = nil
		return s, nil
	}
	return s, nil
}

func navigate(s State, e Navigate, doc Document) (State, []Command) {
	if doc == nil {
		return s, nil
	}
	if _, ok := AnchorID(e.Anchor); !ok {
		return s, nil
	}
	el, ok := doc.FindElementByAnchor(e.Anchor)
	if !ok {
		return s, nil
	}
	s.MobileMenuOpen = false
	return s, []Command{ScrollTo{Y: el.Top - NavbarOffset, Smooth: true}}
}
