package editor

// View identifies one of the two editing surfaces.
type View int

const (
	ViewVisual View = iota
	ViewText
)

func (v View) String() string {
	switch v {
	case ViewVisual:
		return "visual"
	case ViewText:
		return "text"
	default:
		return "unknown"
	}
}

// State is the active view and link state as a single value.
// The visual tab is enabled exactly when the state is linked.
type State int

const (
	VisualLinked State = iota
	TextLinked
	VisualUnlinked
	TextUnlinked
)

func stateOf(v View, linked bool) State {
	switch {
	case v == ViewVisual && linked:
		return VisualLinked
	case v == ViewText && linked:
		return TextLinked
	case v == ViewVisual:
		return VisualUnlinked
	default:
		return TextUnlinked
	}
}

// View returns the active view.
func (s State) View() View {
	if s == TextLinked || s == TextUnlinked {
		return ViewText
	}
	return ViewVisual
}

// Linked reports whether text is derivable from the block program.
func (s State) Linked() bool {
	return s == VisualLinked || s == TextLinked
}

func (s State) withView(v View) State { return stateOf(v, s.Linked()) }
func (s State) withLink(l bool) State { return stateOf(s.View(), l) }

func (s State) String() string {
	link := "unlinked"
	if s.Linked() {
		link = "linked"
	}
	return s.View().String() + "/" + link
}

// Session is the state cell shared by RepresentationLink and ViewController.
type Session struct {
	state State
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// EditSource tells a change notification apart: a user keystroke or a
// write made by the editor itself.
type EditSource int

const (
	SourceUser EditSource = iota
	SourceProgrammatic
)

func (s EditSource) String() string {
	if s == SourceProgrammatic {
		return "programmatic"
	}
	return "user"
}

// Outcome reports what an edit event did.
type Outcome int

const (
	// Ignored: programmatic echo, or no confirmation was pending.
	Ignored Outcome = iota
	// Accepted: the edit stands and the link state is unchanged.
	Accepted
	// NeedsConfirmation: the caller must ask the user and call ResolveConfirmation.
	NeedsConfirmation
	// AwaitingConfirmation: a previous edit is still waiting for an answer.
	AwaitingConfirmation
	// Severed: the link was broken and the visual tab disabled.
	Severed
	// Reverted: the edit was declined and the text regenerated from blocks.
	Reverted
	// Relinked: the text was cleared and the link restored with an empty program.
	Relinked
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Accepted:
		return "accepted"
	case NeedsConfirmation:
		return "needs_confirmation"
	case AwaitingConfirmation:
		return "awaiting_confirmation"
	case Severed:
		return "severed"
	case Reverted:
		return "reverted"
	case Relinked:
		return "relinked"
	default:
		return "unknown"
	}
}

// Event names the input that caused a transition.
type Event string

const (
	EventSelectVisual Event = "select_visual"
	EventSelectText   Event = "select_text"
	EventTextEdited   Event = "text_edited"
	EventConfirmed    Event = "confirmed"
	EventDeclined     Event = "declined"
)

// Effect names the side effect applied with a transition.
type Effect string

const (
	EffectNone          Effect = "none"
	EffectRegenerate    Effect = "regenerate_text"
	EffectDisableVisual Effect = "disable_visual_tab"
	EffectOverwriteText Effect = "overwrite_text"
	EffectRelink        Effect = "clear_visual_enable_tab"
	EffectBlocked       Effect = "blocked"
)

// Transition is one applied row of the state table.
type Transition struct {
	From   State
	To     State
	Event  Event
	Effect Effect
}
