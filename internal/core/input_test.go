package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionRestart)
	if !f.Has(ActionUp) || !f.Has(ActionRestart) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Empty() {
		t.Error("frame with actions should not be empty")
	}

	f.Clear()
	if !f.Empty() || f.Has(ActionUp) {
		t.Error("Clear should drop all actions")
	}
}

func TestActionIsMove(t *testing.T) {
	moves := []Action{ActionUp, ActionDown, ActionLeft, ActionRight}
	for _, a := range moves {
		if !a.IsMove() {
			t.Errorf("%s should be a move", a)
		}
	}

	others := []Action{ActionNone, ActionRestart, ActionResetBest, ActionToggleEmoji, ActionQuit}
	for _, a := range others {
		if a.IsMove() {
			t.Errorf("%s should not be a move", a)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionToggleEmoji.String() != "ToggleEmoji" {
		t.Errorf("String() = %q", ActionToggleEmoji.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action String() = %q", Action(99).String())
	}
}
