package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LabelAlign 文字水平对齐方式
type LabelAlign int

const (
	LabelAlignStart LabelAlign = iota
	LabelAlignCenter
	LabelAlignEnd
)

// LabelComponent 文字标签组件
// 用于演示场景的标题、按钮说明和状态文字
type LabelComponent struct {
	Text  string
	Font  *text.GoTextFace
	Color color.RGBA
	Align LabelAlign
	// Width 对齐参考宽度（Center/End 时使用）
	Width float64
}
