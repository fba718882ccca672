package termui

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/decker502/slidebutton/pkg/config"
	"github.com/decker502/slidebutton/pkg/slide"
	"github.com/gdamore/tcell/v2"
)

// 终端布局（单元格）
const (
	// Margin 左右留白列数
	Margin = 2
	// HeaderRows 顶部标题占用的行数（含空行）
	HeaderRows = 2
	// RowGap 相邻两组之间的空行
	RowGap = 1
)

// 终端配色
var (
	PageColor   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	TextColor   = color.RGBA{R: 0x22, G: 0x2B, B: 0x45, A: 0xFF}
	FooterColor = color.RGBA{R: 0x8F, G: 0x9B, B: 0xB3, A: 0xFF}
)

// Row 一组：说明文字 + 滑动按钮（+ 可选的动作按钮）
type Row struct {
	Spec    config.ButtonSpec
	Button  *slide.Button
	Palette config.Palette

	// 纵向位置（行号）
	LabelY  int
	ButtonY int
	ActionY int // 没有动作按钮时为 -1

	reachedEnd bool
	countdown  slide.Timer
}

// HasCountdown 到达终点后是否需要倒计时才重置
func (r *Row) HasCountdown() bool {
	return r.Spec.Config.DynamicResetEnabled && r.Spec.Countdown > 0
}

// CountdownSeconds 说明文字里显示的剩余秒数
func (r *Row) CountdownSeconds() int {
	if r.countdown.Active() {
		return int(math.Ceil(r.countdown.Remaining()))
	}
	return int(math.Ceil(r.Spec.Countdown))
}

// ReachedEnd 最近一次回弹是否停在终点
func (r *Row) ReachedEnd() bool {
	return r.reachedEnd
}

// actionLabel 动作按钮的文字
func (r *Row) actionLabel() string {
	return "[ " + r.Spec.ActionLabel + " ]"
}

// Demo 终端演示：按配置排列多组滑动按钮，把鼠标拖动翻译成手势
//
// 所有方法必须在同一个 goroutine 中调用。
type Demo struct {
	cfg      *config.DemoConfig
	rows     []*Row
	width    int
	rtl      bool
	confirms int

	gestures slide.GestureQueue
	active   *Row
	startX   int
	pressed  bool
}

// NewDemo 按配置创建演示
//
// 参数:
//   - cfg: 已校验的演示配置，不会被修改
//   - width: 终端宽度（列）
func NewDemo(cfg *config.DemoConfig, width int) (*Demo, error) {
	d := &Demo{width: width}
	if err := d.Load(cfg); err != nil {
		return nil, err
	}
	return d, nil
}

// Load 用新配置重建全部按钮，保留方向和确认次数
func (d *Demo) Load(cfg *config.DemoConfig) error {
	local := *cfg
	local.Buttons = append([]config.ButtonSpec(nil), cfg.Buttons...)
	local.ApplyRTL(d.rtl)

	rows := make([]*Row, 0, len(local.Buttons))
	y := HeaderRows
	for _, spec := range local.Buttons {
		palette, err := spec.Style.Palette()
		if err != nil {
			closeRows(rows)
			return fmt.Errorf("button %q: %w", spec.ID, err)
		}

		row := &Row{Spec: spec, Palette: palette, LabelY: y, ButtonY: y + 1, ActionY: -1}
		row.Button, err = slide.NewButton(spec.Config, d.callbacks(row))
		if err != nil {
			closeRows(rows)
			return fmt.Errorf("button %q: %w", spec.ID, err)
		}

		y = row.ButtonY + ButtonRows
		if spec.HasAction() {
			row.ActionY = y
			y++
		}
		y += RowGap
		rows = append(rows, row)
	}

	closeRows(d.rows)
	d.cfg = &local
	d.rows = rows
	d.release()
	d.Resize(d.width)

	log.Printf("[TermDemo] Loaded %d buttons (rtl=%v)", len(rows), d.rtl)
	return nil
}

func closeRows(rows []*Row) {
	for _, r := range rows {
		r.countdown.Stop()
		r.Button.Close()
	}
}

func (d *Demo) callbacks(row *Row) slide.Callbacks {
	return slide.Callbacks{
		OnReachedToEnd: func() {
			row.reachedEnd = true
			d.confirms++
			log.Printf("[TermDemo] %s reached end (confirms=%d)", row.Spec.ID, d.confirms)
			if row.HasCountdown() {
				row.Button.SetDynamicResetDelaying(true)
				row.countdown.Start(row.Spec.Countdown, func() {
					row.Button.SetDynamicResetDelaying(false)
				})
			}
		},
		OnReachedToStart: func() {
			row.reachedEnd = false
		},
	}
}

// Rows 返回全部按钮组
func (d *Demo) Rows() []*Row {
	return d.rows
}

// Row 按 id 查找按钮组
func (d *Demo) Row(id string) (*Row, bool) {
	for _, r := range d.rows {
		if r.Spec.ID == id {
			return r, true
		}
	}
	return nil, false
}

// Confirms 累计到达终点的次数
func (d *Demo) Confirms() int {
	return d.confirms
}

// RTL 当前布局方向
func (d *Demo) RTL() bool {
	return d.rtl
}

// Height 内容需要的行数（含页脚）
func (d *Demo) Height() int {
	if len(d.rows) == 0 {
		return HeaderRows + 1
	}
	last := d.rows[len(d.rows)-1]
	y := last.ButtonY + ButtonRows
	if last.ActionY >= 0 {
		y = last.ActionY + 1
	}
	return y + RowGap + 1
}

// Resize 终端宽度变化时同步容器宽度
func (d *Demo) Resize(width int) {
	d.width = width
	cols := width - 2*Margin
	if cols < 0 {
		cols = 0
	}
	for _, r := range d.rows {
		r.Button.SetContainerWidth(float64(cols) * CellWidth)
	}
}

// ToggleDirection 切换 LTR/RTL 并重建按钮
func (d *Demo) ToggleDirection() error {
	d.rtl = !d.rtl
	if err := d.Load(d.cfg); err != nil {
		d.rtl = !d.rtl
		return err
	}
	return nil
}

// ResetAll 把所有按钮重置到起点
func (d *Demo) ResetAll() {
	for _, r := range d.rows {
		r.countdown.Stop()
		r.Button.SetDynamicResetDelaying(false)
		r.Button.Reset()
	}
}

// HandleMouse 处理鼠标事件，down 表示左键按下
func (d *Demo) HandleMouse(x, y int, down bool) {
	switch {
	case down && !d.pressed:
		d.pressed = true
		d.begin(x, y)

	case down && d.pressed:
		if d.active == nil {
			return
		}
		if d.active.Button.State() != slide.StateDragging {
			d.release()
			d.pressed = true
			return
		}
		d.gestures.Move(float64(x-d.startX) * CellWidth)
		d.active.Button.Drive(&d.gestures)

	case !down && d.pressed:
		if d.active != nil {
			d.gestures.Move(float64(x-d.startX) * CellWidth)
			d.gestures.End()
			d.active.Button.Drive(&d.gestures)
		}
		d.release()
	}
}

func (d *Demo) begin(x, y int) {
	for _, r := range d.rows {
		if r.ActionY >= 0 && y == r.ActionY && d.hitAction(r, x) {
			d.onAction(r)
			return
		}
		if y < r.ButtonY || y >= r.ButtonY+ButtonRows {
			continue
		}

		thumb := r.Button.View().Part(slide.PartThumbContainer)
		if !spans(thumb, PixelAt(x-Margin)) {
			return
		}
		d.gestures.Begin()
		r.Button.Drive(&d.gestures)
		if r.Button.State() != slide.StateDragging {
			return
		}
		d.active = r
		d.startX = x
		return
	}
}

func (d *Demo) release() {
	d.active = nil
	d.startX = 0
	d.pressed = false
}

// actionX 动作按钮的起始列（RTL 时靠右）
func (d *Demo) actionX(r *Row) int {
	if d.rtl {
		return d.width - Margin - TextWidth(r.actionLabel())
	}
	return Margin
}

func (d *Demo) hitAction(r *Row, x int) bool {
	start := d.actionX(r)
	return x >= start && x < start+TextWidth(r.actionLabel())
}

// onAction 倒计时中则重新开始，否则直接重置按钮
func (d *Demo) onAction(r *Row) {
	if r.countdown.Active() {
		r.countdown.Start(r.Spec.Countdown, func() {
			r.Button.SetDynamicResetDelaying(false)
		})
		log.Printf("[TermDemo] %s countdown restarted", r.Spec.ID)
		return
	}
	r.Button.Reset()
}

// Update 推进倒计时和按钮动画
func (d *Demo) Update(dt float64) {
	for _, r := range d.rows {
		r.countdown.Advance(dt)
		r.Button.Update(dt)
	}
}

// Render 绘制整个演示到缓冲
func (d *Demo) Render(c *Canvas) {
	page := tcell.StyleDefault.Background(TrueColor(PageColor))
	c.Clear(page)
	text := page.Foreground(TrueColor(TextColor))
	w, _ := c.Size()

	title := Truncate(d.cfg.Title, w)
	c.DrawText((w-TextWidth(title))/2, 0, title, text.Bold(true))

	for _, r := range d.rows {
		label := Truncate(config.FormatLabel(r.Spec.Label, r.reachedEnd, r.CountdownSeconds(), d.confirms), w-2*Margin)
		lx := Margin
		if d.rtl {
			lx = w - Margin - TextWidth(label)
		}
		c.DrawText(lx, r.LabelY, label, text)

		DrawSlideButton(c, Margin, r.ButtonY, r.Button.View(), r.Palette, PageColor)

		if r.ActionY >= 0 {
			action := page.Foreground(TrueColor(r.Palette.Container)).Bold(true)
			c.DrawText(d.actionX(r), r.ActionY, r.actionLabel(), action)
		}
	}

	dir := "LTR"
	if d.rtl {
		dir = "RTL"
	}
	footer := fmt.Sprintf("%s · confirmed %d times · r: flip  x: reset  q: quit", dir, d.confirms)
	c.DrawText(Margin, d.Height()-1, Truncate(footer, w-2*Margin), page.Foreground(TrueColor(FooterColor)))
}

// Close 释放全部按钮
func (d *Demo) Close() {
	closeRows(d.rows)
	d.rows = nil
	d.release()
}
