package editor

// ViewController owns which representation is displayed.
type ViewController struct {
	session *Session
	link    *RepresentationLink
	tabs    Tabs
	hooks   *hooks
}

// Active returns the displayed view.
func (c *ViewController) Active() View {
	return c.session.state.View()
}

// Enabled reports whether v can be selected. The text tab is always
// enabled; the visual tab only while linked.
func (c *ViewController) Enabled(v View) bool {
	return v == ViewText || c.session.state.Linked()
}

// SelectView switches to v. It returns false, changing nothing, when v is
// disabled or a confirmation is pending.
func (c *ViewController) SelectView(v View) (ok bool) {
	from := c.session.state
	end := c.hooks.span("editor.SelectView", from)
	defer func() {
		outcome := "selected"
		if !ok {
			outcome = "blocked"
		}
		end(c.session.state, outcome)
	}()

	ev := EventSelectVisual
	if v == ViewText {
		ev = EventSelectText
	}
	if !c.Enabled(v) || c.link.Pending() {
		c.hooks.record(Transition{From: from, To: from, Event: ev, Effect: EffectBlocked})
		return false
	}
	effect := EffectNone
	if v == ViewText && from.Linked() {
		c.link.RegenerateText()
		effect = EffectRegenerate
	}
	c.tabs.ShowView(v)
	c.session.state = from.withView(v)
	c.hooks.record(Transition{From: from, To: c.session.state, Event: ev, Effect: effect})
	return true
}
