package editor

import "pondeditor/internal/codegen"

// Editor wires a RepresentationLink and a ViewController over one Session.
type Editor struct {
	Session *Session
	Link    *RepresentationLink
	View    *ViewController
}

// New builds an Editor in the initial (visual, linked) state and applies
// the initial tab setup once.
func New(c Collaborators, opts ...Option) *Editor {
	h := newHooks(opts)
	render := c.Render
	if render == nil {
		render = codegen.Generate
	}
	s := &Session{state: VisualLinked}
	link := &RepresentationLink{
		session: s,
		visual:  c.Visual,
		text:    c.Text,
		render:  render,
		tabs:    c.Tabs,
		hooks:   h,
	}
	c.Tabs.SetTabEnabled(ViewVisual, true)
	c.Tabs.SetTabEnabled(ViewText, true)
	c.Tabs.ShowView(ViewVisual)
	return &Editor{
		Session: s,
		Link:    link,
		View:    &ViewController{session: s, link: link, tabs: c.Tabs, hooks: h},
	}
}

// State returns the current state.
func (e *Editor) State() State {
	return e.Session.State()
}
