package slide

// Timer 帧驱动的一次性计时器
// 用于自动重置延迟：每帧累加 dt，达到目标时间后触发一次回调
type Timer struct {
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）

	active bool
	fire   func()
}

// Start 启动（或重新启动）计时器
func (t *Timer) Start(seconds float64, fire func()) {
	t.TargetTime = seconds
	t.CurrentTime = 0
	t.fire = fire
	t.active = true
}

// Stop 取消计时器，不触发回调
func (t *Timer) Stop() {
	t.active = false
	t.fire = nil
	t.CurrentTime = 0
}

// Active 计时器是否在倒计时
func (t *Timer) Active() bool {
	return t.active
}

// Remaining 返回剩余秒数
func (t *Timer) Remaining() float64 {
	if !t.active {
		return 0
	}
	r := t.TargetTime - t.CurrentTime
	if r < 0 {
		return 0
	}
	return r
}

// Advance 推进 dt 秒，到期时触发回调
func (t *Timer) Advance(dt float64) {
	if !t.active {
		return
	}
	t.CurrentTime += dt
	if t.CurrentTime < t.TargetTime {
		return
	}

	fire := t.fire
	t.active = false
	t.fire = nil
	if fire != nil {
		fire()
	}
}
