package ui

import (
	"testing"

	"pondeditor/internal/editor"
)

func TestCodePane_InsertReportsUserEdit(t *testing.T) {
	c := NewCodePane()
	var got []editor.EditSource
	c.OnEdit(func(src editor.EditSource) editor.Outcome {
		got = append(got, src)
		return editor.Accepted
	})
	c.Focus()

	c.SetText("stop();", editor.SourceProgrammatic)
	if out := c.Insert("log(1);"); out != editor.Accepted {
		t.Errorf("Insert: expected Accepted, got %s", out)
	}
	if c.Text() != "stop();log(1);" {
		t.Errorf("Text: got %q", c.Text())
	}
	if len(got) != 2 || got[0] != editor.SourceProgrammatic || got[1] != editor.SourceUser {
		t.Errorf("reported sources: got %v", got)
	}

	if out := c.Insert(""); out != editor.Ignored {
		t.Errorf("empty insert: expected Ignored, got %s", out)
	}
	if len(got) != 2 {
		t.Errorf("empty insert should not be reported, got %v", got)
	}
}
