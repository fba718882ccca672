package config

// 布局配置常量
// 演示场景的窗口尺寸和纵向排版参数，所有单位为逻辑像素

const (
	// WindowWidth 逻辑屏幕宽度
	WindowWidth = 480
	// WindowHeight 逻辑屏幕高度
	WindowHeight = 800

	// ScreenMargin 左右边距（按钮容器宽度 = WindowWidth - 2*ScreenMargin）
	ScreenMargin = 20.0

	// HeaderHeight 顶部标题栏高度
	HeaderHeight = 60.0
	// HeaderFontSize 顶部标题字号
	HeaderFontSize = 20.0

	// LabelHeight 按钮上方说明文字的行高
	LabelHeight = 22.0
	// LabelFontSize 说明文字字号
	LabelFontSize = 14.0
	// LabelGap 说明文字与按钮之间的间距
	LabelGap = 4.0
	// RowGap 相邻两组（说明+按钮）之间的间距
	RowGap = 14.0

	// ActionButtonHeight 普通按钮（Reset 等）的高度
	ActionButtonHeight = 44.0
	// ActionButtonPaddingX 普通按钮文字左右留白
	ActionButtonPaddingX = 16.0
	// ActionButtonRadius 普通按钮圆角
	ActionButtonRadius = 16.0
	// ActionButtonFontSize 普通按钮字号
	ActionButtonFontSize = 15.0
	// ActionButtonGap 普通按钮与上方滑动按钮的间距
	ActionButtonGap = 8.0
)

// ContentWidth 返回内容区宽度
func ContentWidth() float64 {
	return WindowWidth - 2*ScreenMargin
}

// RowHeight 返回一组（说明文字 + 滑动按钮 [+ 普通按钮]）占用的高度
func RowHeight(buttonHeight float64, hasAction bool) float64 {
	h := LabelHeight + LabelGap + buttonHeight
	if hasAction {
		h += ActionButtonGap + ActionButtonHeight
	}
	return h
}
