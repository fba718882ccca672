package termui

import (
	"strings"
	"testing"

	"github.com/decker502/slidebutton/pkg/config"
	"github.com/decker502/slidebutton/pkg/slide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDemoYAML = `
title: TERMINAL
buttons:
  - id: default
    label: "Default: reached to {reached}"
  - id: disabled
    label: Disabled
    config:
      disabled: true
  - id: timer
    label: "Timer: {countdown}s"
    countdown: 2
    actionLabel: Reset
    config:
      dynamicResetEnabled: true
  - id: manual
    label: Manual
    actionLabel: Back
    config:
      reverseSlideEnabled: false
`

// testWidth 终端宽度：容器 36 列 = 288px，可拖动距离 232px
const testWidth = 40

func newTestDemo(t *testing.T) *Demo {
	t.Helper()
	cfg, err := config.LoadDemoConfig([]byte(testDemoYAML))
	require.NoError(t, err)
	d, err := NewDemo(cfg, testWidth)
	require.NoError(t, err)
	t.Cleanup(d.Close)
	return d
}

func mustRow(t *testing.T, d *Demo, id string) *Row {
	t.Helper()
	r, ok := d.Row(id)
	require.True(t, ok, "row %s", id)
	return r
}

// drag 在按钮中间一行从 fromX 拖到 toX 后松开
func drag(d *Demo, r *Row, fromX, toX int) {
	y := r.ButtonY + 1
	d.HandleMouse(fromX, y, true)
	d.HandleMouse((fromX+toX)/2, y, true)
	d.HandleMouse(toX, y, true)
	d.HandleMouse(toX, y, false)
}

func runFrames(d *Demo, n int) {
	for i := 0; i < n; i++ {
		d.Update(1.0 / 60)
	}
}

func TestDemoLayout(t *testing.T) {
	d := newTestDemo(t)
	require.Len(t, d.Rows(), 4)

	def := mustRow(t, d, "default")
	assert.Equal(t, HeaderRows, def.LabelY)
	assert.Equal(t, HeaderRows+1, def.ButtonY)
	assert.Equal(t, -1, def.ActionY)

	timer := mustRow(t, d, "timer")
	assert.Equal(t, timer.ButtonY+ButtonRows, timer.ActionY)
	assert.True(t, timer.HasCountdown())
	assert.False(t, def.HasCountdown())

	for _, r := range d.Rows() {
		assert.Equal(t, float64(testWidth-2*Margin)*CellWidth, r.Button.View().ContainerWidth)
	}
}

func TestDemoDragToEnd(t *testing.T) {
	d := newTestDemo(t)
	r := mustRow(t, d, "default")

	drag(d, r, 4, 34)

	assert.True(t, r.ReachedEnd())
	assert.Equal(t, slide.StateSettledAtEnd, r.Button.State())
	assert.Equal(t, 1, d.Confirms())
}

func TestDemoReleaseBelowThreshold(t *testing.T) {
	d := newTestDemo(t)
	r := mustRow(t, d, "default")

	drag(d, r, 4, 9)
	assert.Equal(t, slide.StateSettlingToStart, r.Button.State())

	runFrames(d, 240)
	assert.Equal(t, slide.StateIdle, r.Button.State())
	assert.InDelta(t, 0, r.Button.Offset(), 0.01)
	assert.False(t, r.ReachedEnd())
	assert.Equal(t, 0, d.Confirms())
}

func TestDemoPressOutsideThumb(t *testing.T) {
	d := newTestDemo(t)
	r := mustRow(t, d, "default")

	tests := []struct {
		name string
		x, y int
	}{
		{"right of thumb", 20, r.ButtonY + 1},
		{"label row", 4, r.LabelY},
		{"left margin", 0, r.ButtonY + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d.HandleMouse(tt.x, tt.y, true)
			d.HandleMouse(tt.x+20, tt.y, true)
			d.HandleMouse(tt.x+20, tt.y, false)
			assert.Equal(t, slide.StateIdle, r.Button.State())
			assert.Zero(t, r.Button.Offset())
		})
	}
}

func TestDemoDisabledIgnoresDrag(t *testing.T) {
	d := newTestDemo(t)
	r := mustRow(t, d, "disabled")

	drag(d, r, 4, 34)

	assert.Equal(t, slide.StateIdle, r.Button.State())
	assert.False(t, r.ReachedEnd())
	assert.Equal(t, 0, d.Confirms())
}

func TestDemoCountdownResets(t *testing.T) {
	d := newTestDemo(t)
	r := mustRow(t, d, "timer")

	drag(d, r, 4, 34)
	require.True(t, r.ReachedEnd())
	assert.True(t, r.Button.DynamicResetDelaying())
	assert.Equal(t, 2, r.CountdownSeconds())

	runFrames(d, 90)
	assert.Equal(t, 1, r.CountdownSeconds())
	assert.True(t, r.ReachedEnd())

	runFrames(d, 300)
	assert.False(t, r.ReachedEnd())
	assert.False(t, r.Button.DynamicResetDelaying())
	assert.Equal(t, slide.StateIdle, r.Button.State())
}

func TestDemoActionRestartsCountdown(t *testing.T) {
	d := newTestDemo(t)
	r := mustRow(t, d, "timer")

	drag(d, r, 4, 34)
	runFrames(d, 90)
	require.Equal(t, 1, r.CountdownSeconds())

	d.HandleMouse(Margin+1, r.ActionY, true)
	d.HandleMouse(Margin+1, r.ActionY, false)

	assert.Equal(t, 2, r.CountdownSeconds())
	assert.True(t, r.ReachedEnd())
}

func TestDemoActionResetsWithoutCountdown(t *testing.T) {
	d := newTestDemo(t)
	r := mustRow(t, d, "manual")

	drag(d, r, 4, 34)
	require.True(t, r.ReachedEnd())
	// 不允许反向拖动：到达终点后手势被锁定
	assert.True(t, r.Button.GestureDisabled())

	d.HandleMouse(Margin, r.ActionY, true)
	d.HandleMouse(Margin, r.ActionY, false)
	runFrames(d, 240)

	assert.False(t, r.ReachedEnd())
	assert.False(t, r.Button.GestureDisabled())
}

func TestDemoToggleDirection(t *testing.T) {
	d := newTestDemo(t)
	r := mustRow(t, d, "default")
	drag(d, r, 4, 34)
	require.Equal(t, 1, d.Confirms())

	require.NoError(t, d.ToggleDirection())
	assert.True(t, d.RTL())
	for _, row := range d.Rows() {
		assert.True(t, row.Spec.Config.RTL, row.Spec.ID)
	}

	// 重建后的按钮回到起点，确认次数保留
	r = mustRow(t, d, "default")
	assert.False(t, r.ReachedEnd())
	assert.Equal(t, 1, d.Confirms())

	// RTL 下滑块在右侧，向左拖动
	drag(d, r, 34, 4)
	assert.True(t, r.ReachedEnd())
	assert.Less(t, r.Button.Offset(), 0.0)
	assert.Equal(t, 2, d.Confirms())
}

func TestDemoLoadInvalidKeepsRows(t *testing.T) {
	d := newTestDemo(t)
	before := d.Rows()

	bad := &config.DemoConfig{Buttons: []config.ButtonSpec{{
		ID:     "bad",
		Config: slide.DefaultConfig(),
		Style:  config.StyleSpec{ContainerColor: "nope", TitleSize: 16},
	}}}
	err := d.Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "containerColor")
	assert.Equal(t, before, d.Rows())
}

func TestDemoResize(t *testing.T) {
	d := newTestDemo(t)
	d.Resize(60)
	for _, r := range d.Rows() {
		assert.Equal(t, float64(60-2*Margin)*CellWidth, r.Button.View().ContainerWidth)
	}
}

func TestDemoResetAll(t *testing.T) {
	d := newTestDemo(t)
	r := mustRow(t, d, "timer")
	drag(d, r, 4, 34)

	d.ResetAll()
	runFrames(d, 240)

	assert.False(t, r.ReachedEnd())
	assert.Equal(t, 2, r.CountdownSeconds())
}

func TestDemoRender(t *testing.T) {
	d := newTestDemo(t)
	c := NewCanvas(testWidth, d.Height())
	d.Render(c)

	assert.Contains(t, c.Row(0), "TERMINAL")

	r := mustRow(t, d, "default")
	assert.Contains(t, c.Row(r.LabelY), "Default: reached to START")
	mid := c.Row(r.ButtonY + 1)
	assert.Contains(t, mid, slide.DefaultTitle)
	assert.Contains(t, mid, string(chevronForward))

	timer := mustRow(t, d, "timer")
	assert.Contains(t, c.Row(timer.LabelY), "Timer: 2s")
	assert.True(t, strings.HasPrefix(strings.TrimLeft(c.Row(timer.ActionY), " "), "[ Reset ]"))

	assert.Contains(t, c.Row(d.Height()-1), "LTR")

	drag(d, r, 4, 34)
	d.Render(c)
	assert.Contains(t, c.Row(r.LabelY), "Default: reached to END")
}

func TestDemoRenderRTL(t *testing.T) {
	d := newTestDemo(t)
	require.NoError(t, d.ToggleDirection())

	c := NewCanvas(testWidth, d.Height())
	d.Render(c)

	r := mustRow(t, d, "default")
	assert.Contains(t, c.Row(r.ButtonY+1), string(chevronBackward))
	assert.True(t, strings.HasSuffix(strings.TrimRight(c.Row(r.LabelY), " "), "START"))
	assert.Contains(t, c.Row(d.Height()-1), "RTL")
}
