package slide

// Callbacks 生命周期回调，均可为 nil
type Callbacks struct {
	OnSlideStart     func() // 手势开始
	OnSlideEnd       func() // 手势结束（在判定回弹目标之前触发）
	OnReachedToStart func() // 回弹到起点完成
	OnReachedToEnd   func() // 回弹到终点完成
}

type subscriber struct {
	id int
	fn func(View)
}

// Button 滑动确认按钮的拖拽状态机
//
// 持有滑块偏移量（唯一写入者：拖动手势或一次回弹动画，二者互斥），
// 解释手势开始/移动/结束事件，按阈值决定回弹目标，并负责自动重置、
// 动态重置、反向锁定和脉冲动画。
//
// 所有异步等待（回弹、自动重置倒计时、脉冲）都由 Update(dt) 按帧推进。
// Button 不是并发安全的，必须在同一个 goroutine（通常是游戏循环）中驱动。
type Button struct {
	cfg       Config
	geom      Geometry
	callbacks Callbacks

	offset AnimatedValue
	spring SpringParams
	origin float64 // 手势开始时的偏移量

	state      State
	endReached bool
	holds      hold
	delaying   bool // 动态重置的外部延迟标志
	settleEnd  bool // 当前回弹目标是否为终点

	resetTimer Timer
	pulse      *Pulse

	subscribers []subscriber
	nextSubID   int
	lastView    View

	gestures []GestureEvent
	closed   bool
}

// NewButton 创建滑动按钮
//
// 参数：
//   - cfg: 配置，构造时校验
//   - callbacks: 生命周期回调
//
// 返回：
//   - *Button: 偏移量为 0、未到达终点的按钮
//   - error: 配置非法时返回包装 ErrInvalidConfig 的错误
func NewButton(cfg Config, callbacks Callbacks) (*Button, error) {
	return NewButtonWithValue(cfg, callbacks, NewSpringValue(0))
}

// NewButtonWithValue 使用自定义 AnimatedValue 创建滑动按钮（用于替换动画实现或测试）
func NewButtonWithValue(cfg Config, callbacks Callbacks, offset AnimatedValue) (*Button, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Button{
		cfg:       cfg,
		geom:      cfg.Geometry(0),
		callbacks: callbacks,
		offset:    offset,
		spring:    DefaultSpring,
		state:     StateIdle,
		delaying:  cfg.DynamicResetDelaying,
		pulse:     NewPulse(),
	}
	b.offset.Set(0)
	b.lastView = b.View()
	return b, nil
}

// ===== 只读访问 =====

// Config 返回当前配置
func (b *Button) Config() Config { return b.cfg }

// Geometry 返回当前几何参数
func (b *Button) Geometry() Geometry { return b.geom }

// State 返回状态机当前状态
func (b *Button) State() State { return b.state }

// Offset 返回滑块当前偏移量
func (b *Button) Offset() float64 { return b.offset.Value() }

// EndReached 滑块是否停在终点
func (b *Button) EndReached() bool { return b.endReached }

// ScrollDistance 返回可拖动距离（带符号）
func (b *Button) ScrollDistance() float64 { return b.geom.ScrollDistance() }

// SlideThreshold 返回完成阈值偏移量
func (b *Button) SlideThreshold() float64 {
	return b.geom.SlideThreshold(b.cfg.CompleteThreshold)
}

// GestureDisabled 手势是否被禁用（配置禁用或内部锁定）
func (b *Button) GestureDisabled() bool {
	return b.cfg.Disabled || b.holds != 0
}

// PulseRunning 脉冲动画是否在运行
func (b *Button) PulseRunning() bool { return b.pulse.Running() }

// AutoResetPending 自动重置是否在倒计时
func (b *Button) AutoResetPending() bool { return b.resetTimer.Active() }

// DynamicResetDelaying 返回动态重置延迟标志
func (b *Button) DynamicResetDelaying() bool { return b.delaying }

// Closed 是否已卸载
func (b *Button) Closed() bool { return b.closed }

// ===== 手势 =====

func (b *Button) ignoreGestures() bool {
	return b.closed || b.GestureDisabled() || !b.geom.Measured()
}

// GestureStart 手势开始
// 禁用或尚未布局时忽略；正在回弹到起点时会打断回弹（不触发到达回调）
func (b *Button) GestureStart() {
	if b.ignoreGestures() {
		return
	}
	if b.offset.IsAnimating() {
		b.offset.Cancel()
	}

	b.origin = b.offset.Value()
	b.state = StateDragging
	b.fire(b.callbacks.OnSlideStart)
	b.notify()
}

// GestureMove 手势移动
// translationX 为相对手势起点的累计位移，结果限制在可拖动范围内
func (b *Button) GestureMove(translationX float64) {
	if b.ignoreGestures() || b.state != StateDragging {
		return
	}
	b.offset.Set(b.geom.Clamp(b.origin + translationX))
	b.notify()
}

// GestureEnd 手势结束
// 先触发 OnSlideEnd，再按阈值决定回弹到起点还是终点
func (b *Button) GestureEnd() {
	if b.ignoreGestures() || b.state != StateDragging {
		return
	}

	b.fire(b.callbacks.OnSlideEnd)
	if b.closed || b.state != StateDragging {
		return
	}

	if b.geom.Reached(b.offset.Value(), b.SlideThreshold()) {
		b.settle(b.geom.ScrollDistance(), true)
	} else {
		b.settle(0, false)
	}
}

// HandleGesture 分发单个手势事件
func (b *Button) HandleGesture(ev GestureEvent) {
	switch ev.Kind {
	case GestureBegan:
		b.GestureStart()
	case GestureMoved:
		b.GestureMove(ev.TranslationX)
	case GestureEnded:
		b.GestureEnd()
	}
}

// Drive 消费手势来源中的全部待处理事件
func (b *Button) Drive(src GestureSource) {
	b.gestures = src.AppendGestures(b.gestures[:0])
	for _, ev := range b.gestures {
		b.HandleGesture(ev)
	}
}

// ===== 回弹与完成 =====

// settle 回弹到 target；已经恰好在目标位置时直接完成，不产生零时长动画
func (b *Button) settle(target float64, reachedEnd bool) {
	if reachedEnd {
		b.state = StateSettlingToEnd
		b.holds |= holdSettle
	} else {
		b.state = StateSettlingToStart
	}

	if b.offset.Value() == target {
		b.offset.Set(target)
		b.handleComplete(reachedEnd)
		return
	}

	b.animateTo(target, reachedEnd)
	b.notify()
}

func (b *Button) animateTo(target float64, reachedEnd bool) {
	b.settleEnd = reachedEnd
	b.offset.AnimateTo(target, b.spring, func() {
		b.handleComplete(reachedEnd)
	})
}

// handleComplete 回弹完成处理
func (b *Button) handleComplete(reachedEnd bool) {
	if b.closed {
		return
	}
	b.holds &^= holdSettle

	if !reachedEnd {
		b.state = StateIdle
		b.endReached = false
		b.fire(b.callbacks.OnReachedToStart)
		b.notify()
		return
	}

	wasReached := b.endReached
	b.state = StateSettledAtEnd
	b.endReached = true
	b.fire(b.callbacks.OnReachedToEnd)

	// 回调里可能已经重置或卸载
	if b.closed || b.state != StateSettledAtEnd {
		return
	}

	if !b.cfg.DynamicResetEnabled && b.cfg.AutoReset {
		b.holds |= holdAutoReset
		b.resetTimer.Start(b.cfg.autoResetDelaySeconds(), b.Reset)
	}
	if !b.cfg.ReverseSlideEnabled {
		b.holds |= holdReverseLock
	}
	if !wasReached && b.cfg.Animation {
		b.startPulse()
	}
	b.notify()
}

// startPulse 启动脉冲动画
// 允许反向拖动时，脉冲期间禁用手势，结束后恢复
func (b *Button) startPulse() {
	if b.cfg.ReverseSlideEnabled {
		b.holds |= holdPulse
	}
	b.pulse.Start(b.cfg.animationDurationSeconds(), b.cfg.DynamicResetEnabled, func() {
		b.holds &^= holdPulse
	})
}

// Reset 重置到起点
//
// 取消自动重置倒计时和脉冲动画，立即恢复手势，弹簧回到 0 后触发 OnReachedToStart。
// 已经在起点时也会在下一帧触发一次 OnReachedToStart。
func (b *Button) Reset() {
	if b.closed {
		return
	}
	b.resetTimer.Stop()
	b.pulse.Stop()
	b.holds = 0
	b.state = StateSettlingToStart
	b.animateTo(0, false)
	b.notify()
}

// SetDynamicResetDelaying 设置动态重置延迟标志
// 动态重置模式下，标志从 true 变为 false 时立即停止脉冲并重置
func (b *Button) SetDynamicResetDelaying(delaying bool) {
	prev := b.delaying
	b.delaying = delaying
	if b.closed || !b.cfg.DynamicResetEnabled || !prev || delaying {
		return
	}
	b.pulse.Stop()
	b.Reset()
}

// ===== 配置与布局 =====

// SetConfig 整体替换配置
// 重新计算几何；禁用发生在拖动过程中时，滑块回弹到起点
func (b *Button) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if b.closed {
		return nil
	}

	prev := b.cfg
	b.cfg = cfg
	b.applyGeometry(cfg.Geometry(b.geom.ContainerWidth))

	if cfg.Disabled && !prev.Disabled && b.state == StateDragging {
		b.settle(0, false)
	}
	b.SetDynamicResetDelaying(cfg.DynamicResetDelaying)
	b.notify()
	return nil
}

// SetDisabled 切换禁用状态
func (b *Button) SetDisabled(disabled bool) {
	cfg := b.cfg
	cfg.Disabled = disabled
	_ = b.SetConfig(cfg)
}

// SetContainerWidth 宿主测量到新的容器宽度时调用
func (b *Button) SetContainerWidth(width float64) {
	if b.closed {
		return
	}
	b.applyGeometry(b.cfg.Geometry(width))
	b.notify()
}

// applyGeometry 应用新几何参数，保证偏移量仍在合法范围内
func (b *Button) applyGeometry(g Geometry) {
	prev := b.geom
	b.geom = g
	if prev == g {
		return
	}

	switch {
	case b.offset.IsAnimating():
		target := 0.0
		if b.settleEnd {
			target = g.ScrollDistance()
		}
		b.animateTo(target, b.settleEnd)
	case b.state == StateSettledAtEnd:
		b.offset.Set(g.ScrollDistance())
	default:
		b.offset.Set(g.Clamp(b.offset.Value()))
	}
}

// ===== 帧推进与生命周期 =====

// Update 推进 dt 秒：自动重置倒计时、脉冲动画、回弹弹簧
func (b *Button) Update(dt float64) {
	if b.closed {
		return
	}
	b.resetTimer.Advance(dt)
	b.pulse.Advance(dt)
	b.offset.Advance(dt)
	b.notify()
}

// Close 卸载：取消所有计时器和动画，之后不再触发任何回调
func (b *Button) Close() {
	if b.closed {
		return
	}
	b.closed = true
	b.resetTimer.Stop()
	b.offset.Cancel()
	b.pulse.Cancel()
	b.subscribers = nil
}

// ===== 视图 =====

// View 计算当前派生视图
func (b *Button) View() View {
	offset := b.offset.Value()
	sd := b.geom.ScrollDistance()

	thumbOpacity := 1.0
	if b.endReached {
		thumbOpacity = b.pulse.Value()
	}
	containerOpacity := 1.0
	if b.cfg.Disabled {
		containerOpacity = DisabledOpacity
	}
	iconScaleX := 1.0
	if b.geom.RTL {
		iconScaleX = -1
	}

	return View{
		Title:            b.cfg.Title,
		State:            b.state,
		Offset:           offset,
		ScrollDistance:   sd,
		SlideThreshold:   b.SlideThreshold(),
		EndReached:       b.endReached,
		Pulsing:          b.pulse.Running(),
		Disabled:         b.cfg.Disabled,
		GestureDisabled:  b.GestureDisabled(),
		RTL:              b.geom.RTL,
		ContainerWidth:   b.geom.ContainerWidth,
		Height:           b.cfg.Height,
		ChildHeight:      b.cfg.ChildHeight(),
		ThumbWidth:       b.geom.ThumbWidth,
		Padding:          b.cfg.Padding,
		BorderWidth:      b.cfg.BorderWidth,
		Radius:           b.cfg.Radius(),
		ChildRadius:      b.cfg.ChildRadius(),
		UnderlayWidth:    UnderlayWidth(b.geom.ThumbWidth, b.geom.BorderWidth, offset, b.geom.Direction()),
		TitleOpacity:     TitleOpacity(offset, sd),
		ThumbOpacity:     thumbOpacity,
		ContainerOpacity: containerOpacity,
		IconScaleX:       iconScaleX,
	}
}

// Subscribe 订阅视图变化
// 订阅时立即收到一次当前视图；之后仅在视图变化时通知
//
// 返回：
//   - func(): 取消订阅
func (b *Button) Subscribe(fn func(View)) func() {
	if b.closed || fn == nil {
		return func() {}
	}
	b.nextSubID++
	id := b.nextSubID
	b.subscribers = append(b.subscribers, subscriber{id: id, fn: fn})
	fn(b.View())

	return func() {
		for i, s := range b.subscribers {
			if s.id == id {
				b.subscribers = append(b.subscribers[:i:i], b.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (b *Button) notify() {
	if b.closed {
		return
	}
	v := b.View()
	if v == b.lastView {
		return
	}
	b.lastView = v

	subs := append([]subscriber(nil), b.subscribers...)
	for _, s := range subs {
		s.fn(v)
	}
}

func (b *Button) fire(fn func()) {
	if fn != nil && !b.closed {
		fn()
	}
}
