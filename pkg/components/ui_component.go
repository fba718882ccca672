package components

// UIState 界面元素的交互状态
type UIState int

const (
	// UINormal 默认状态
	UINormal UIState = iota
	// UIHovered 指针悬停
	UIHovered
	// UIClicked 正在按下
	UIClicked
	// UIDisabled 禁用，不响应交互
	UIDisabled
)

func (s UIState) String() string {
	switch s {
	case UINormal:
		return "Normal"
	case UIHovered:
		return "Hovered"
	case UIClicked:
		return "Clicked"
	case UIDisabled:
		return "Disabled"
	default:
		return "Unknown"
	}
}
