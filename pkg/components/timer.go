package components

// TimerComponent 倒计时组件
//
// 演示场景用它模拟宿主的异步工作：动态重置按钮到达终点后开始倒计时，
// 倒计时结束时触发 OnExpire（把 delaying 标志置为 false）。
type TimerComponent struct {
	Name        string  // 计时器名称，如 "dynamic_reset"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	Running     bool    // 是否在计时
	IsReady     bool    // 是否已到期

	// OnTick 剩余整秒数变化时调用（用于刷新倒计时文字）
	OnTick func(remainingSeconds int)
	// OnExpire 到期时调用一次
	OnExpire func()

	lastSecond int
}

// Start 从 seconds 开始倒计时
func (t *TimerComponent) Start(seconds float64) {
	t.TargetTime = seconds
	t.CurrentTime = 0
	t.Running = true
	t.IsReady = false
	t.lastSecond = -1
}

// Restart 重新从 TargetTime 开始（不改变是否在计时）
func (t *TimerComponent) Restart() {
	t.CurrentTime = 0
	t.IsReady = false
	t.lastSecond = -1
}

// RemainingSeconds 剩余整秒数（向上取整）
func (t *TimerComponent) RemainingSeconds() int {
	r := t.TargetTime - t.CurrentTime
	if r <= 0 {
		return 0
	}
	n := int(r)
	if float64(n) < r {
		n++
	}
	return n
}

// SyncTick 剩余秒数变化时触发 OnTick，返回是否触发
func (t *TimerComponent) SyncTick() bool {
	s := t.RemainingSeconds()
	if s == t.lastSecond {
		return false
	}
	t.lastSecond = s
	if t.OnTick != nil {
		t.OnTick(s)
	}
	return true
}
