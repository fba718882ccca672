// Package termui 在终端里绘制和驱动滑动按钮
//
// 终端前端与 Ebitengine 前端共用同一个 slide.Button 状态机，
// 只是把像素坐标换算成字符单元格：水平方向一个单元格 = CellWidth 像素，
// 按钮固定占 ButtonRows 行。
package termui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Cell 一个字符单元格
type Cell struct {
	Ch    rune
	Comb  []rune // 组合字符
	Style tcell.Style
}

// Canvas 离屏单元格缓冲，每帧整体绘制后 Flush 到屏幕
type Canvas struct {
	width, height int
	cells         []Cell
}

// NewCanvas 创建指定大小的缓冲
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize 调整大小并清空
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.width, c.height = width, height
	c.cells = make([]Cell, width*height)
	c.Clear(tcell.StyleDefault)
}

// Size 返回宽高（单元格）
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Clear 用空格和指定样式填满
func (c *Canvas) Clear(style tcell.Style) {
	for i := range c.cells {
		c.cells[i] = Cell{Ch: ' ', Style: style}
	}
}

// Set 写入单元格，越界忽略
func (c *Canvas) Set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = Cell{Ch: ch, Style: style}
}

// At 读取单元格，越界返回零值
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Cell{}
	}
	return c.cells[y*c.width+x]
}

// Row 返回第 y 行的文字（测试和调试用）
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	runes := make([]rune, 0, c.width)
	for x := 0; x < c.width; x++ {
		cell := c.cells[y*c.width+x]
		runes = append(runes, cell.Ch)
		runes = append(runes, cell.Comb...)
	}
	return string(runes)
}

// DrawText 从 (x, y) 开始写一行文字，每个字素簇占一列，返回占用的列数
func (c *Canvas) DrawText(x, y int, s string, style tcell.Style) int {
	col := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		px := x + col
		col++
		if px < 0 || y < 0 || px >= c.width || y >= c.height {
			continue
		}
		cell := Cell{Ch: runes[0], Style: style}
		if len(runes) > 1 {
			cell.Comb = append([]rune(nil), runes[1:]...)
		}
		c.cells[y*c.width+px] = cell
	}
	return col
}

// TextWidth 返回文字占用的列数（按字素簇计）
func TextWidth(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Truncate 把文字截断到 max 列，超出时以省略号结尾
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if TextWidth(s) <= max {
		return s
	}
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for n := 0; n < max-1 && g.Next(); n++ {
		b.WriteString(g.Str())
	}
	return b.String() + "…"
}

// Flush 把缓冲写到屏幕并显示
func (c *Canvas) Flush(screen tcell.Screen) {
	w, h := screen.Size()
	for y := 0; y < c.height && y < h; y++ {
		for x := 0; x < c.width && x < w; x++ {
			cell := c.cells[y*c.width+x]
			screen.SetContent(x, y, cell.Ch, cell.Comb, cell.Style)
		}
	}
	screen.Show()
}
