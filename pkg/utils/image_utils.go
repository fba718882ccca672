package utils

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EnsureCanvas 返回一张至少 w×h 的离屏画布
//
// 尺寸一致时复用并清空原画布，否则释放旧画布并重新创建。
// w 或 h 小于 1 时返回 nil（调用方跳过绘制）。
func EnsureCanvas(canvas *ebiten.Image, w, h int) *ebiten.Image {
	if w < 1 || h < 1 {
		if canvas != nil {
			canvas.Deallocate()
		}
		return nil
	}
	if canvas != nil {
		b := canvas.Bounds()
		if b.Dx() == w && b.Dy() == h {
			canvas.Clear()
			return canvas
		}
		canvas.Deallocate()
	}
	return ebiten.NewImage(w, h)
}

// CanvasSize 把浮点尺寸向上取整为像素尺寸
func CanvasSize(w, h float64) (int, int) {
	return int(math.Ceil(w)), int(math.Ceil(h))
}

// FillRoundedRect 绘制实心圆角矩形
//
// 由一个横向矩形、一个纵向矩形和四个角上的圆组成。
// 半径会被限制在短边的一半以内，因此 r = h/2 得到胶囊形。
// 半透明颜色在重叠处会叠加，需要半透明时先画到画布上再整体设置透明度。
func FillRoundedRect(dst *ebiten.Image, x, y, w, h, r float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))

	fx, fy, fw, fh, fr := float32(x), float32(y), float32(w), float32(h), float32(r)
	if r == 0 {
		vector.DrawFilledRect(dst, fx, fy, fw, fh, clr, true)
		return
	}

	vector.DrawFilledRect(dst, fx+fr, fy, fw-2*fr, fh, clr, true)
	vector.DrawFilledRect(dst, fx, fy+fr, fw, fh-2*fr, clr, true)

	vector.DrawFilledCircle(dst, fx+fr, fy+fr, fr, clr, true)
	vector.DrawFilledCircle(dst, fx+fw-fr, fy+fr, fr, clr, true)
	vector.DrawFilledCircle(dst, fx+fr, fy+fh-fr, fr, clr, true)
	vector.DrawFilledCircle(dst, fx+fw-fr, fy+fh-fr, fr, clr, true)
}

// FillBorderedRoundedRect 绘制带边框的圆角矩形
// 先用边框色填充外轮廓，再在内缩 borderWidth 的区域填充背景色
func FillBorderedRoundedRect(dst *ebiten.Image, x, y, w, h, r, borderWidth float64, fill, border color.Color) {
	if borderWidth <= 0 {
		FillRoundedRect(dst, x, y, w, h, r, fill)
		return
	}
	FillRoundedRect(dst, x, y, w, h, r, border)
	FillRoundedRect(dst, x+borderWidth, y+borderWidth, w-2*borderWidth, h-2*borderWidth, r-borderWidth, fill)
}

// DrawChevron 在 (cx, cy) 处绘制一个指向右侧的 ">" 箭头
// size 为箭头外接正方形的边长
func DrawChevron(dst *ebiten.Image, cx, cy, size, strokeWidth float64, clr color.Color) {
	half := size / 2
	tipX := float32(cx + half/2)
	tailX := float32(cx - half/2)
	sw := float32(strokeWidth)

	vector.StrokeLine(dst, tailX, float32(cy-half), tipX, float32(cy), sw, clr, true)
	vector.StrokeLine(dst, tipX, float32(cy), tailX, float32(cy+half), sw, clr, true)
}
