package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonComponent 普通按钮组件（演示场景里的 Reset、RTL 切换按钮）
//
// 纯数据组件：
//   - 外观由纯色圆角矩形和居中文字组成
//   - 按下时降低不透明度（与 TouchableOpacity 的 activeOpacity 一致）
//   - 释放时触发 OnClick
type ButtonComponent struct {
	// Text 按钮文字
	Text string
	// Font 文字字体
	Font *text.GoTextFace
	// TextColor 文字颜色
	TextColor color.RGBA

	// BackgroundColor 背景色
	BackgroundColor color.RGBA
	// CornerRadius 圆角半径
	CornerRadius float64
	// ActiveOpacity 按下时的不透明度
	ActiveOpacity float64

	// Width, Height 按钮尺寸（像素）
	Width  float64
	Height float64

	// State 当前交互状态
	State UIState
	// Enabled 是否启用
	Enabled bool

	// OnClick 点击回调
	OnClick func()

	// Canvas 离屏画布（由 ButtonRenderSystem 维护，按下时整体降低不透明度）
	Canvas *ebiten.Image
}
