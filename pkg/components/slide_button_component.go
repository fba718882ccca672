package components

import (
	"image/color"

	"github.com/decker502/slidebutton/pkg/slide"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// SlideButtonStyle 滑动按钮的外观
// 颜色均为已解析的 RGBA，由 entities 工厂从配置里的十六进制字符串转换而来
type SlideButtonStyle struct {
	ContainerColor color.RGBA // 容器背景
	UnderlayColor  color.RGBA // 滑块后方展开的底衬
	ThumbColor     color.RGBA // 滑块
	TitleColor     color.RGBA // 标题文字
	BorderColor    color.RGBA // 容器边框（BorderWidth > 0 时绘制）
	IconColor      color.RGBA // 滑块上的箭头
	TitleFont      *text.GoTextFace
}

// DefaultSlideButtonStyle 返回默认外观（不含字体）
func DefaultSlideButtonStyle() SlideButtonStyle {
	return SlideButtonStyle{
		ContainerColor: color.RGBA{R: 0x00, G: 0x95, B: 0xFF, A: 0xFF},
		UnderlayColor:  color.RGBA{R: 0x42, G: 0xAA, B: 0xFF, A: 0xFF},
		ThumbColor:     color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		TitleColor:     color.RGBA{R: 0xFA, G: 0xFA, B: 0xFA, A: 0xFF},
		BorderColor:    color.RGBA{R: 0x00, G: 0x95, B: 0xFF, A: 0xFF},
		IconColor:      color.RGBA{R: 0x00, G: 0x95, B: 0xFF, A: 0xFF},
	}
}

// SlideButtonComponent 滑动确认按钮组件
//
// 持有 slide.Button 状态机，输入系统把指针拖动翻译成手势事件喂给它，
// 渲染系统读取 View 绘制。宽度由场景布局决定，每帧同步给状态机。
type SlideButtonComponent struct {
	// Button 拖拽状态机
	Button *slide.Button
	// Style 外观
	Style SlideButtonStyle
	// Width 布局给出的容器宽度（像素）
	Width float64

	// ===== 指针跟踪（由 SlideButtonSystem 维护）=====
	// Dragging 当前指针是否在拖动这个按钮
	Dragging bool
	// StartX 拖动开始时的指针 X 坐标
	StartX float64

	// ===== 渲染缓存（由 SlideButtonRenderSystem 维护）=====
	Canvas      *ebiten.Image // 容器离屏画布
	ThumbCanvas *ebiten.Image // 滑块离屏画布
	IconCanvas  *ebiten.Image // 箭头离屏画布
}
