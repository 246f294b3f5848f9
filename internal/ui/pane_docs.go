package ui

import (
	"strings"

	"pondeditor/internal/codegen"
	"pondeditor/internal/editor"
)

const reservedPerLine = 7

var blocksDocs = []string{
	"cannon  DEGREE RANGE   fire a shell toward DEGREE at RANGE",
	"swim    DEGREE SPEED   swim toward DEGREE at SPEED",
	"stop                   stop swimming",
	"log     VALUE          print a value",
	"repeat forever         run the body in a loop",
	"",
	"j/k: select  a: add  A: add to loop  x: remove  X: clear  +/-: adjust",
}

var jsDocs = []string{
	"cannon(degree, range);   fire a shell",
	"swim(degree, speed);     swim in a direction",
	"stop();                  stop swimming",
	"log(value);              print a value",
	"scan(degree)             distance to nearest duck, Infinity if none",
	"health()                 own health, 0..100",
	"speed()                  own speed, 0..100",
	"getX() getY()            own location",
	"",
	"Reserved names, do not redefine:",
	"",
	"esc: leave insert mode  i/enter: edit",
}

// RenderDocs renders the reference for the given view's surface.
func RenderDocs(v editor.View) string {
	title, body := "Blocks", blocksDocs
	if v == editor.ViewText {
		title, body = "JavaScript API", withReserved(jsDocs)
	}
	return Styles.BoxCompact.Render(Styles.Title.Render(title) + "\n" + Styles.Muted.Render(strings.Join(body, "\n")))
}

// withReserved inserts the reserved API names after the header line that
// introduces them.
func withReserved(docs []string) []string {
	var out []string
	for _, line := range docs {
		out = append(out, line)
		if !strings.HasPrefix(line, "Reserved names") {
			continue
		}
		words := codegen.ReservedWords
		for len(words) > 0 {
			n := min(reservedPerLine, len(words))
			out = append(out, "  "+strings.Join(words[:n], " "))
			words = words[n:]
		}
	}
	return out
}
