package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionJump) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Has(ActionJump) should be true after Set")
	}
	if f.Has(ActionRestart) {
		t.Error("Has(ActionRestart) should be false")
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero-value frame should report no actions")
	}
	f.Set(ActionConfirm)
	if !f.Has(ActionConfirm) {
		t.Error("Set on zero-value frame should allocate the map")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionJump, "Jump"},
		{ActionConfirm, "Confirm"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

func TestEventKindString(t *testing.T) {
	if EventLevelUp.String() != "level_up" {
		t.Errorf("EventLevelUp.String() = %q, expected level_up", EventLevelUp.String())
	}
	if EventKind(99).String() != "unknown" {
		t.Errorf("unknown kind should stringify to unknown")
	}
}
