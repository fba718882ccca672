package utils

import (
	"testing"
)

func TestDragTrackerInitialState(t *testing.T) {
	var d DragTracker

	if d.State() != DragStateNone {
		t.Errorf("Expected initial state to be DragStateNone, got %v", d.State())
	}
	dx, dy := d.Translation()
	if dx != 0 || dy != 0 {
		t.Errorf("Expected zero translation, got (%d, %d)", dx, dy)
	}
}

func TestDragTrackerStateTransitions(t *testing.T) {
	var d DragTracker

	frames := []struct {
		snapshot PointerSnapshot
		want     DragState
		wantDX   int
	}{
		{PointerSnapshot{Pressed: false, X: 10, Y: 10}, DragStateNone, 0},
		{PointerSnapshot{Pressed: true, X: 100, Y: 50}, DragStateStarted, 0},
		{PointerSnapshot{Pressed: true, X: 130, Y: 52}, DragStateDragging, 30},
		{PointerSnapshot{Pressed: true, X: 90, Y: 60}, DragStateDragging, -10},
		{PointerSnapshot{Pressed: false, X: 95, Y: 60}, DragStateEnded, -5},
		{PointerSnapshot{Pressed: false, X: 95, Y: 60}, DragStateNone, -5},
	}

	for i, f := range frames {
		got := d.Update(f.snapshot)
		if got != f.want {
			t.Fatalf("frame %d: state = %v, want %v", i, got, f.want)
		}
		if dx, _ := d.Translation(); dx != f.wantDX {
			t.Errorf("frame %d: dx = %d, want %d", i, dx, f.wantDX)
		}
	}

	if x, y := d.Start(); x != 100 || y != 50 {
		t.Errorf("Start() = (%d, %d), want (100, 50)", x, y)
	}
}

func TestDragTrackerReset(t *testing.T) {
	var d DragTracker
	d.Update(PointerSnapshot{Pressed: true, X: 100, Y: 200})
	d.Update(PointerSnapshot{Pressed: true, X: 150, Y: 250})

	d.Reset()

	if d.State() != DragStateNone {
		t.Errorf("Expected state to be DragStateNone after reset, got %v", d.State())
	}
	// 重置后的下一次按下重新记为开始
	if got := d.Update(PointerSnapshot{Pressed: true, X: 1, Y: 1}); got != DragStateStarted {
		t.Errorf("state after reset press = %v, want Started", got)
	}
}

func TestDragStateString(t *testing.T) {
	tests := map[DragState]string{
		DragStateNone:     "None",
		DragStateStarted:  "Started",
		DragStateDragging: "Dragging",
		DragStateEnded:    "Ended",
		DragState(9):      "Unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", s, got, want)
		}
	}
}
