package termui

import (
	"image/color"

	"github.com/decker502/slidebutton/pkg/config"
	"github.com/decker502/slidebutton/pkg/slide"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

const (
	// CellWidth 一个单元格对应的像素宽度
	CellWidth = 8.0
	// ButtonRows 按钮占用的行数，标题和箭头画在中间一行
	ButtonRows = 3
)

// 滑块上的箭头
const (
	chevronForward  = '›'
	chevronBackward = '‹'
)

// Columns 按钮容器占用的列数
func Columns(v slide.View) int {
	return int(v.ContainerWidth / CellWidth)
}

// ColumnAt 把容器内的像素 X 换算成列号
func ColumnAt(px float64) int {
	return int(px / CellWidth)
}

// PixelAt 返回第 col 列中心的像素 X
func PixelAt(col int) float64 {
	return (float64(col) + 0.5) * CellWidth
}

func spans(r slide.Rect, px float64) bool {
	return r.W > 0 && px >= r.X && px < r.X+r.W
}

// DrawSlideButton 以 (x, y) 为左上角绘制按钮
//
// 绘制顺序与图形前端一致：容器、标题、底衬、滑块、箭头。
// 标题不透明度、滑块脉冲和整体禁用效果都通过混色表现，page 是按钮外的背景色。
func DrawSlideButton(c *Canvas, x, y int, v slide.View, p config.Palette, page color.RGBA) {
	cols := Columns(v)
	if cols <= 0 {
		return
	}

	thumb := v.Part(slide.PartThumbContainer)
	underlay := v.Part(slide.PartUnderlay)

	// base 是滑块下方的颜色，covered 表示标题会被底衬或滑块遮住
	base := func(col int) (bg color.RGBA, covered bool) {
		px := PixelAt(col)
		bg = p.Container
		if v.BorderWidth > 0 && (col == 0 || col == cols-1) {
			bg = p.Border
		}
		if spans(underlay, px) {
			return p.Underlay, true
		}
		return bg, spans(thumb, px)
	}
	surface := func(col int) color.RGBA {
		bg, _ := base(col)
		if spans(thumb, PixelAt(col)) {
			bg = Fade(p.Thumb, bg, v.ThumbOpacity)
		}
		return bg
	}
	styleOf := func(fg, bg color.RGBA) tcell.Style {
		return tcell.StyleDefault.
			Foreground(TrueColor(Fade(fg, page, v.ContainerOpacity))).
			Background(TrueColor(Fade(bg, page, v.ContainerOpacity)))
	}

	for row := 0; row < ButtonRows; row++ {
		for col := 0; col < cols; col++ {
			bg := surface(col)
			c.Set(x+col, y+row, ' ', styleOf(bg, bg))
		}
	}

	mid := y + ButtonRows/2

	// 标题：居中在 Title 区域内，超长时截断
	titleRect := v.Part(slide.PartTitle)
	title := Truncate(v.Title, ColumnAt(titleRect.W))
	start := ColumnAt(titleRect.X+titleRect.W/2) - TextWidth(title)/2
	g := uniseg.NewGraphemes(title)
	for col := start; g.Next(); col++ {
		if col < 0 || col >= cols {
			continue
		}
		bg, covered := base(col)
		if covered {
			continue
		}
		runes := g.Runes()
		fg := Fade(p.Title, bg, v.TitleOpacity)
		c.Set(x+col, mid, runes[0], styleOf(fg, bg))
	}

	// 箭头：跟随 IconScaleX 翻转
	iconCol := ColumnAt(thumb.X + thumb.W/2)
	if iconCol >= 0 && iconCol < cols {
		ch := chevronForward
		if v.IconScaleX < 0 {
			ch = chevronBackward
		}
		under, _ := base(iconCol)
		fg := Fade(p.Icon, under, v.ThumbOpacity)
		c.Set(x+iconCol, mid, ch, styleOf(fg, surface(iconCol)))
	}
}
