package interaction

// Controller owns one State and runs the commands produced by Reduce on a Scroller.
// It is driven from a single event loop and is not safe for concurrent use.
type Controller struct {
	state    State
	doc      Document
	scroller Scroller
}

func NewController(initial State, doc Document, scroller Scroller) *Controller {
	return &Controller{state: initial, doc: doc, scroller: scroller}
}

func (c *Controller) State() State {
	return c.state
}

// Dispatch applies ev and executes the resulting commands. The commands are also
// returned so callers can forward them to a remote host.
func (c *Controller) Dispatch(ev Event) []Command {
	next, cmds := Reduce(c.state, ev, c.doc)
	c.state = next
	for _, cmd := range cmds {
		c.run(cmd)
	}
	return cmds
}

func (c *Controller) run(cmd Command) {
	switch cmd := cmd.(type) {
	case ScrollTo:
		if c.scroller != nil {
			c.scroller.AnimateScrollTo(cmd.Y)
		}
	}
}

func (c *Controller) NavigateTo(anchor string) {
	c.Dispatch(Navigate{Anchor: anchor})
}

func (c *Controller) ToggleMenu() {
	c.Dispatch(ToggleMenu{})
}

func (c *Controller) HoverEnter(projectID int) {
	c.Dispatch(ProjectHoverEnter{ProjectID: projectID})
}

func (c *Controller) HoverLeave() {
	c.Dispatch(ProjectHoverLeave{})
}
