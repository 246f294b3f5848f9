package editor

import (
	"fmt"
	"strings"

	"pondeditor/internal/blocks"
)

// BreakLinkPrompt is the question shown before a text edit severs the link.
const BreakLinkPrompt = "Once you start editing JavaScript, you can't go back to editing blocks. Is this OK?"

// RepresentationLink decides, for each text edit, whether the block program
// can still regenerate the text.
//
// Confirmation is split in two phases: OnTextEdited reports
// NeedsConfirmation and the caller answers later through ResolveConfirmation.
type RepresentationLink struct {
	session *Session
	visual  VisualSurface
	text    TextSurface
	render  Generator
	tabs    Tabs
	hooks   *hooks
	pending bool
}

// Pending reports whether an edit is waiting for ResolveConfirmation.
func (l *RepresentationLink) Pending() bool {
	return l.pending
}

// OnTextEdited handles a change notification from the text surface.
func (l *RepresentationLink) OnTextEdited(src EditSource) (out Outcome) {
	from := l.session.state
	end := l.hooks.span("editor.OnTextEdited", from)
	defer func() { end(l.session.state, out.String()) }()

	if src == SourceProgrammatic {
		return Ignored
	}
	if l.pending {
		return AwaitingConfirmation
	}
	if !from.Linked() {
		if strings.TrimSpace(l.text.Text()) == "" {
			l.relink(EventTextEdited)
			return Relinked
		}
		l.hooks.record(Transition{From: from, To: from, Event: EventTextEdited, Effect: EffectNone})
		return Accepted
	}
	if !l.visual.HasTopBlocks() {
		// Nothing to lose; break the link without asking.
		l.sever(EventTextEdited)
		return Severed
	}
	l.pending = true
	return NeedsConfirmation
}

// ResolveConfirmation continues an edit that returned NeedsConfirmation.
// Confirmed severs the link; declined overwrites the text from blocks.
func (l *RepresentationLink) ResolveConfirmation(confirmed bool) (out Outcome) {
	end := l.hooks.span("editor.ResolveConfirmation", l.session.state)
	defer func() { end(l.session.state, out.String()) }()

	if !l.pending {
		return Ignored
	}
	l.pending = false
	if confirmed {
		l.sever(EventConfirmed)
		return Severed
	}
	st := l.session.state
	l.RegenerateText()
	l.hooks.record(Transition{From: st, To: st, Event: EventDeclined, Effect: EffectOverwriteText})
	return Reverted
}

// RegenerateText overwrites the text surface with the rendered block
// program. It does nothing while unlinked.
func (l *RepresentationLink) RegenerateText() (string, bool) {
	if !l.session.state.Linked() {
		return "", false
	}
	code := l.render(l.visual.Program())
	l.text.SetText(code, SourceProgrammatic)
	return code, true
}

func (l *RepresentationLink) sever(ev Event) {
	from := l.session.state
	l.tabs.SetTabEnabled(ViewVisual, false)
	l.session.state = from.withLink(false)
	l.hooks.record(Transition{From: from, To: l.session.state, Event: ev, Effect: EffectDisableVisual})
}

func (l *RepresentationLink) relink(ev Event) {
	from := l.session.state
	l.visual.ClearProgram()
	l.tabs.SetTabEnabled(ViewVisual, true)
	l.session.state = from.withLink(true)
	l.hooks.record(Transition{From: from, To: l.session.state, Event: ev, Effect: EffectRelink})
}

// Submission is the program as it would be sent with a duck record.
type Submission struct {
	JS  string
	XML string // empty once the link is broken
}

// Snapshot returns the program for submission. While linked the JS is
// rendered fresh from blocks; otherwise the text is taken verbatim.
func (l *RepresentationLink) Snapshot() (Submission, error) {
	if !l.session.state.Linked() {
		return Submission{JS: l.text.Text()}, nil
	}
	prog := l.visual.Program()
	xml, err := blocks.MarshalXML(prog)
	if err != nil {
		return Submission{}, fmt.Errorf("snapshot: %w", err)
	}
	return Submission{JS: l.render(prog), XML: string(xml)}, nil
}
