package slide

// State 拖拽状态机的状态
type State int

const (
	// StateIdle 静止在起点
	StateIdle State = iota
	// StateDragging 手势进行中
	StateDragging
	// StateSettlingToStart 回弹到起点
	StateSettlingToStart
	// StateSettlingToEnd 回弹到终点
	StateSettlingToEnd
	// StateSettledAtEnd 停在终点
	StateSettledAtEnd
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDragging:
		return "Dragging"
	case StateSettlingToStart:
		return "SettlingToStart"
	case StateSettlingToEnd:
		return "SettlingToEnd"
	case StateSettledAtEnd:
		return "SettledAtEnd"
	default:
		return "Unknown"
	}
}

// hold 禁用手势的原因（位集合）
// 任意一个原因存在时手势被忽略；Reset 清除全部原因
type hold uint8

const (
	holdSettle      hold = 1 << iota // 正在回弹到终点
	holdPulse                        // 脉冲动画期间（允许反向拖动时）
	holdAutoReset                    // 自动重置倒计时
	holdReverseLock                  // 不允许反向拖动，到达终点后锁定
)
