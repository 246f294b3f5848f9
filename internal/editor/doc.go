// Package editor keeps the two representations of a duck program consistent.
//
// Core abstractions:
//   - RepresentationLink: owns the link between the block program and the
//     JavaScript text; decides on every text edit whether to keep the link,
//     revert the edit, sever the link, or re-link after the text is cleared.
//   - ViewController: owns the active view and regenerates text from blocks
//     when the user switches into the text view while linked.
//   - State: the (active view, link) pair as one tagged value, shared by both.
//
// The editing surfaces, code generator and tab bar are collaborators behind
// the interfaces in surfaces.go.
package editor
