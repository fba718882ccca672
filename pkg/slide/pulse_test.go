package slide

import (
	"math"
	"testing"
)

// TestPulseFiniteCycles 测试普通模式：6 段后结束并回到不透明
func TestPulseFiniteCycles(t *testing.T) {
	p := NewPulse()
	ended := 0
	p.Start(0.18, false, func() { ended++ })

	minSeen := 1.0
	for elapsed := 0.0; elapsed < 1.2; elapsed += frame {
		p.Advance(frame)
		if p.Value() < minSeen {
			minSeen = p.Value()
		}
	}

	if p.Running() {
		t.Fatal("Running() = true after 6 legs")
	}
	if ended != 1 {
		t.Errorf("onEnded called %d times, want 1", ended)
	}
	if p.Value() != PulseMaxOpacity {
		t.Errorf("Value() = %v, want %v", p.Value(), PulseMaxOpacity)
	}
	if minSeen > 0.45 {
		t.Errorf("lowest opacity %v, want close to %v", minSeen, PulseMinOpacity)
	}
}

// TestPulseStaysInRange 测试不透明度始终在 [0.4, 1]
func TestPulseStaysInRange(t *testing.T) {
	p := NewPulse()
	p.Start(0.18, true, nil)

	for i := 0; i < 1000; i++ {
		p.Advance(frame)
		v := p.Value()
		if v < PulseMinOpacity-1e-9 || v > PulseMaxOpacity+1e-9 {
			t.Fatalf("Value() = %v out of range", v)
		}
	}
	if !p.Running() {
		t.Error("infinite pulse stopped on its own")
	}
}

// TestPulseLegMidpoint 测试第一段中点的缓动值
func TestPulseLegMidpoint(t *testing.T) {
	p := NewPulse()
	p.Start(1, false, nil)
	p.Advance(0.5)

	want := Lerp(PulseMaxOpacity, PulseMinOpacity, EaseInOutCubic(0.5))
	if math.Abs(p.Value()-want) > 1e-9 {
		t.Errorf("Value() = %v, want %v", p.Value(), want)
	}

	// 第二段淡入
	p.Advance(0.75)
	want = Lerp(PulseMinOpacity, PulseMaxOpacity, EaseInOutCubic(0.25))
	if math.Abs(p.Value()-want) > 1e-9 {
		t.Errorf("Value() = %v, want %v", p.Value(), want)
	}
}

// TestPulseStop 测试 Stop 立即结束并回调
func TestPulseStop(t *testing.T) {
	p := NewPulse()
	ended := 0
	p.Start(0.18, true, func() { ended++ })
	p.Advance(0.1)

	p.Stop()
	p.Stop()
	if p.Running() {
		t.Error("Running() = true after Stop")
	}
	if ended != 1 {
		t.Errorf("onEnded called %d times, want 1", ended)
	}
	if p.Value() != PulseMaxOpacity {
		t.Errorf("Value() = %v after Stop, want %v", p.Value(), PulseMaxOpacity)
	}
}

// TestPulseCancel 测试 Cancel 不回调
func TestPulseCancel(t *testing.T) {
	p := NewPulse()
	ended := false
	p.Start(0.18, false, func() { ended = true })
	p.Advance(0.1)
	p.Cancel()
	p.Advance(2)

	if ended {
		t.Error("onEnded called after Cancel")
	}
	if p.Running() {
		t.Error("Running() = true after Cancel")
	}
}

// TestPulseZeroDuration 测试零时长不会卡死
func TestPulseZeroDuration(t *testing.T) {
	p := NewPulse()
	ended := false
	p.Start(0, false, func() { ended = true })
	p.Advance(frame)

	if !ended {
		t.Error("zero-duration pulse did not end on the first frame")
	}
}

// TestTimer 测试帧驱动计时器
func TestTimer(t *testing.T) {
	var timer Timer
	fired := 0
	timer.Start(0.5, func() { fired++ })

	timer.Advance(0.3)
	if fired != 0 {
		t.Fatal("timer fired early")
	}
	if r := timer.Remaining(); math.Abs(r-0.2) > 1e-9 {
		t.Errorf("Remaining() = %v, want 0.2", r)
	}

	timer.Advance(0.3)
	timer.Advance(0.3)
	if fired != 1 {
		t.Errorf("fired %d times, want 1", fired)
	}
	if timer.Active() {
		t.Error("Active() = true after firing")
	}

	timer.Start(0.1, func() { fired++ })
	timer.Stop()
	timer.Advance(1)
	if fired != 1 {
		t.Error("stopped timer fired")
	}
}
