package slide

import (
	"math"
	"testing"
)

// TestSpringValueSettlesExactly 测试弹簧收敛后精确吸附到目标值
func TestSpringValueSettlesExactly(t *testing.T) {
	s := NewSpringValue(0)
	completed := 0
	s.AnimateTo(234, DefaultSpring, func() { completed++ })

	for i := 0; i < 600 && s.IsAnimating(); i++ {
		s.Advance(frame)
	}

	if s.IsAnimating() {
		t.Fatal("spring still animating after 10s")
	}
	if s.Value() != 234 {
		t.Errorf("Value() = %v, want exactly 234", s.Value())
	}
	if completed != 1 {
		t.Errorf("onComplete called %d times, want 1", completed)
	}

	// 静止后继续推进不会再次回调
	s.Advance(frame)
	if completed != 1 {
		t.Errorf("onComplete called %d times after rest, want 1", completed)
	}
}

// TestSpringValueNoOvershoot 测试临界阻尼下不过冲
func TestSpringValueNoOvershoot(t *testing.T) {
	s := NewSpringValue(163)
	s.AnimateTo(0, DefaultSpring, nil)

	for i := 0; i < 600 && s.IsAnimating(); i++ {
		s.Advance(frame)
		if s.Value() < -0.5 {
			t.Fatalf("Value() = %v overshot below 0", s.Value())
		}
	}
}

// TestSpringValueSetCancels 测试 Set 取消动画且不回调
func TestSpringValueSetCancels(t *testing.T) {
	s := NewSpringValue(0)
	called := false
	s.AnimateTo(100, DefaultSpring, func() { called = true })
	s.Advance(frame)

	s.Set(42)
	if s.IsAnimating() {
		t.Error("IsAnimating() = true after Set")
	}
	for i := 0; i < 120; i++ {
		s.Advance(frame)
	}
	if called {
		t.Error("onComplete called after Set")
	}
	if s.Value() != 42 {
		t.Errorf("Value() = %v, want 42", s.Value())
	}
}

// TestSpringValueAlreadyAtTarget 测试目标等于当前值时下一帧完成
func TestSpringValueAlreadyAtTarget(t *testing.T) {
	s := NewSpringValue(0)
	called := false
	s.AnimateTo(0, DefaultSpring, func() { called = true })

	if called {
		t.Fatal("onComplete called synchronously")
	}
	s.Advance(frame)
	if !called {
		t.Error("onComplete not called on the next frame")
	}
}

// TestSpringValueVariableStep 测试帧间隔变化时仍能收敛
func TestSpringValueVariableStep(t *testing.T) {
	s := NewSpringValue(0)
	s.AnimateTo(50, DefaultSpring, nil)

	steps := []float64{1.0 / 60, 1.0 / 30, 1.0 / 120}
	for i := 0; i < 1000 && s.IsAnimating(); i++ {
		s.Advance(steps[i%len(steps)])
	}
	if s.Value() != 50 {
		t.Errorf("Value() = %v, want 50", s.Value())
	}
}

// TestSpringParams 测试弹簧参数换算
func TestSpringParams(t *testing.T) {
	if got := DefaultSpring.angularFrequency(); math.Abs(got-10) > 1e-9 {
		t.Errorf("angularFrequency() = %v, want 10", got)
	}
	if got := DefaultSpring.dampingRatio(); math.Abs(got-1) > 1e-9 {
		t.Errorf("dampingRatio() = %v, want 1", got)
	}
}
