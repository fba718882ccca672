package slide

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringParams 弹簧参数（劲度、阻尼、质量）
type SpringParams struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// DefaultSpring 回弹使用的弹簧参数：临界阻尼，无过冲
var DefaultSpring = SpringParams{Stiffness: 100, Damping: 20, Mass: 1}

// 静止判定阈值：位移（像素）和速度（像素/秒）
const (
	restDisplacement = 0.01
	restSpeed        = 2.0
)

func (p SpringParams) angularFrequency() float64 {
	mass := p.Mass
	if mass <= 0 {
		mass = 1
	}
	return math.Sqrt(p.Stiffness / mass)
}

func (p SpringParams) dampingRatio() float64 {
	mass := p.Mass
	if mass <= 0 {
		mass = 1
	}
	denom := 2 * math.Sqrt(p.Stiffness*mass)
	if denom == 0 {
		return 1
	}
	return p.Damping / denom
}

// AnimatedValue 可动画的连续数值
//
// 同一时间只有一个写入者：Set 会立即取消正在进行的动画（不触发完成回调），
// AnimateTo 会替换之前的动画目标和回调。
type AnimatedValue interface {
	Value() float64
	Set(v float64)
	AnimateTo(target float64, params SpringParams, onComplete func())
	Cancel()
	IsAnimating() bool
	// Advance 推进 dt 秒
	Advance(dt float64)
}

// SpringValue 基于 harmonica 阻尼弹簧的 AnimatedValue 实现
// 每帧由 Advance 推进，到达静止阈值后吸附到目标值并调用完成回调
type SpringValue struct {
	value    float64
	velocity float64
	target   float64

	params     SpringParams
	spring     harmonica.Spring
	springStep float64 // spring 对应的步长，步长变化时重建

	animating  bool
	onComplete func()
}

// NewSpringValue 创建初始值为 initial 的弹簧数值
func NewSpringValue(initial float64) *SpringValue {
	return &SpringValue{
		value:  initial,
		target: initial,
		params: DefaultSpring,
	}
}

// Value 返回当前值
func (s *SpringValue) Value() float64 {
	return s.value
}

// Set 直接赋值，取消进行中的动画
func (s *SpringValue) Set(v float64) {
	s.Cancel()
	s.value = v
	s.target = v
}

// AnimateTo 以弹簧运动过渡到 target
// 已经静止在 target 时，完成回调会在下一次 Advance 时触发
func (s *SpringValue) AnimateTo(target float64, params SpringParams, onComplete func()) {
	s.target = target
	s.params = params
	s.springStep = 0
	s.onComplete = onComplete
	s.animating = true
}

// Cancel 取消动画，保留当前值，不触发完成回调
func (s *SpringValue) Cancel() {
	s.animating = false
	s.onComplete = nil
	s.velocity = 0
}

// IsAnimating 是否正在动画
func (s *SpringValue) IsAnimating() bool {
	return s.animating
}

// Advance 推进弹簧 dt 秒
func (s *SpringValue) Advance(dt float64) {
	if !s.animating || dt <= 0 {
		return
	}

	if s.springStep != dt {
		s.spring = harmonica.NewSpring(dt, s.params.angularFrequency(), s.params.dampingRatio())
		s.springStep = dt
	}

	s.value, s.velocity = s.spring.Update(s.value, s.velocity, s.target)

	if math.Abs(s.value-s.target) < restDisplacement && math.Abs(s.velocity) < restSpeed {
		s.value = s.target
		s.velocity = 0
		s.animating = false

		done := s.onComplete
		s.onComplete = nil
		if done != nil {
			done()
		}
	}
}
