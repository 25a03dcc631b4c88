package page

import (
	"testing"

	"oledkb/oled/fb"
	"oledkb/oled/input"
)

func TestActionsCoalesceAndCap(t *testing.T) {
	var a Actions
	a.Add(Action{Kind: ActionReset})
	a.Add(Action{Kind: ActionReset})
	a.Add(Action{Kind: ActionSaveSettings})
	if a.Len() != 2 {
		t.Fatalf("Len = %d, want 2", a.Len())
	}
	for i := 0; i < maxActions; i++ {
		a.Add(Action{Kind: ActionKind(10 + i)})
	}
	if a.Len() != maxActions {
		t.Fatalf("Len = %d, want %d", a.Len(), maxActions)
	}
	if a.List()[0].Kind != ActionReset {
		t.Fatalf("order not preserved: %v", a.List())
	}
	a.Reset()
	if a.Len() != 0 {
		t.Fatalf("Reset left %d actions", a.Len())
	}
}

func TestContextCopies(t *testing.T) {
	in := input.New()
	in.Push(input.Click(0))
	ctx := &Context{FB: fb.NewDisplay(), Input: in, Actions: &Actions{}}

	scratch := fb.NewDisplay()
	w := ctx.WithFramebuffer(scratch)
	if w.FB != scratch || w.Input != in || ctx.FB == scratch {
		t.Fatalf("WithFramebuffer did not copy correctly")
	}

	d := ctx.Detached(scratch)
	if d.Input == in || d.Input.Len() != 0 {
		t.Fatalf("Detached should carry a fresh input queue")
	}
	d.Defer(ActionBootloader)
	if ctx.Actions.Len() != 1 {
		t.Fatalf("actions deferred on a detached context must reach the tick")
	}
}
