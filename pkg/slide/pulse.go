package slide

import "math"

// 脉冲动画参数
const (
	PulseMinOpacity = 0.4
	PulseMaxOpacity = 1.0
	// pulseFiniteLegs 普通模式下的往返段数（3 个完整周期，最终回到不透明）
	pulseFiniteLegs = 6
	// minPulseLeg 单段最短时长（秒），避免零时长导致死循环
	minPulseLeg = 0.001
)

// Pulse 脉冲动画
//
// 到达终点后在 1.0 和 0.4 之间往返改变滑块不透明度。
// 普通模式往返 6 段后自然结束；无限模式（动态重置）一直运行直到 Stop。
// 自然结束或 Stop 都会调用一次 onEnded。
type Pulse struct {
	legDuration float64 // 单段时长（秒）
	infinite    bool
	leg         int     // 当前段序号
	elapsed     float64 // 当前段已过时间
	value       float64
	running     bool
	easing      EasingFunc
	onEnded     func()
}

// NewPulse 创建脉冲动画（初始不透明）
func NewPulse() *Pulse {
	return &Pulse{
		value:  PulseMaxOpacity,
		easing: EaseInOutCubic,
	}
}

// Start 启动脉冲动画
//
// 参数：
//   - legDuration: 单次淡出或淡入的时长（秒）
//   - infinite: 是否无限循环
//   - onEnded: 结束回调（自然结束或被 Stop），可为 nil
func (p *Pulse) Start(legDuration float64, infinite bool, onEnded func()) {
	if legDuration < minPulseLeg {
		legDuration = minPulseLeg
	}
	p.legDuration = legDuration
	p.infinite = infinite
	p.leg = 0
	p.elapsed = 0
	p.value = PulseMaxOpacity
	p.onEnded = onEnded
	p.running = true
}

// Running 是否正在运行
func (p *Pulse) Running() bool {
	return p.running
}

// Value 返回当前不透明度
func (p *Pulse) Value() float64 {
	return p.value
}

// Stop 立即停止并触发结束回调，不等待当前周期完成
func (p *Pulse) Stop() {
	if !p.running {
		return
	}
	p.finish(PulseMaxOpacity)
}

// Cancel 立即停止，不触发结束回调（卸载时使用）
func (p *Pulse) Cancel() {
	p.running = false
	p.onEnded = nil
	p.value = PulseMaxOpacity
}

// Advance 推进 dt 秒
func (p *Pulse) Advance(dt float64) {
	if !p.running || dt <= 0 {
		return
	}

	p.elapsed += dt
	if p.elapsed >= p.legDuration {
		n := int(math.Floor(p.elapsed / p.legDuration))
		if !p.infinite && p.leg+n >= pulseFiniteLegs {
			p.finish(p.legEndValue(pulseFiniteLegs - 1))
			return
		}
		p.leg += n
		p.elapsed -= float64(n) * p.legDuration
	}

	from, to := p.legEndpoints(p.leg)
	p.value = Lerp(from, to, p.easing(p.elapsed/p.legDuration))
}

// legEndpoints 偶数段淡出（1 → 0.4），奇数段淡入（0.4 → 1）
func (p *Pulse) legEndpoints(leg int) (from, to float64) {
	if leg%2 == 0 {
		return PulseMaxOpacity, PulseMinOpacity
	}
	return PulseMinOpacity, PulseMaxOpacity
}

func (p *Pulse) legEndValue(leg int) float64 {
	_, to := p.legEndpoints(leg)
	return to
}

func (p *Pulse) finish(value float64) {
	p.running = false
	p.value = value

	done := p.onEnded
	p.onEnded = nil
	if done != nil {
		done()
	}
}
