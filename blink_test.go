package wlrender

import (
	"testing"
	"time"
)

func TestBlinkClockArmDisarmIdempotent(t *testing.T) {
	b := NewBlinkClock(nil)
	if b.Active() {
		t.Fatalf("a fresh clock should start inactive")
	}
	if err := b.Arm(); err != nil {
		t.Fatalf("Arm: %v", err)
	}
	if !b.Active() {
		t.Fatalf("expected active after Arm")
	}
	if err := b.Arm(); err != nil {
		t.Fatalf("Arm should be idempotent, got error: %v", err)
	}
	b.Disarm()
	if b.Active() {
		t.Fatalf("expected inactive after Disarm")
	}
	if b.Phase() != BlinkOn {
		t.Fatalf("Disarm must reset phase to On")
	}
	b.Disarm() // idempotent
}

func TestBlinkClockTogglesPhase(t *testing.T) {
	b := NewBlinkClock(nil)
	_ = b.Arm()
	defer b.Disarm()

	start := b.Phase()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if b.Phase() != start {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("phase never toggled within 2s of a 500ms period")
}

func TestBlinkClockReconcile(t *testing.T) {
	b := NewBlinkClock(nil)
	b.Reconcile(true)
	if !b.Active() {
		t.Fatalf("Reconcile(true) on an inactive clock should arm it")
	}
	b.Reconcile(false)
	if b.Active() {
		t.Fatalf("Reconcile(false) should disarm an active clock")
	}
}
