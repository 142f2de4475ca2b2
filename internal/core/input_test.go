package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionJump) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionDuck)
	if !f.Has(ActionJump) || !f.Has(ActionDuck) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionJump) || f.Has(ActionDuck) {
		t.Error("Clear should reset actions")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should be empty")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputOf(t *testing.T) {
	f := InputOf(ActionDuckRelease, ActionRestart)
	if !f.Has(ActionDuckRelease) || !f.Has(ActionRestart) || f.Has(ActionJump) {
		t.Errorf("InputOf produced %v", f.Actions)
	}
}

func TestActionString(t *testing.T) {
	if ActionDuckRelease.String() != "DuckRelease" {
		t.Errorf("unexpected name %q", ActionDuckRelease.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unexpected name %q", Action(99).String())
	}
}

func TestStepResultHasEventName(t *testing.T) {
	r := StepResult{Events: []Event{EventJump, EventPoint}}
	if !r.Has(EventPoint) || r.Has(EventHit) {
		t.Errorf("Has mismatch for %v", r.Events)
	}
	if EventHit.String() != "hit" {
		t.Errorf("unexpected event name %q", EventHit.String())
	}
}
