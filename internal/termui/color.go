package termui

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// TrueColor 把 RGBA 转成 24 位终端颜色
func TrueColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Fade 按 alpha（0~1）把 fg 叠加到 bg 上
// 终端没有透明度，不透明度动画都用混色表现
func Fade(fg, bg color.RGBA, alpha float64) color.RGBA {
	switch {
	case alpha >= 1:
		return fg
	case alpha <= 0:
		return bg
	}
	f, ok := colorful.MakeColor(fg)
	if !ok {
		return fg
	}
	b, ok := colorful.MakeColor(bg)
	if !ok {
		return fg
	}
	r, g, bl := b.BlendRgb(f, alpha).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 0xFF}
}
