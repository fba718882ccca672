// Package utils 提供输入、颜色、字体等通用工具
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSnapshot 某一帧的指针状态（触摸或鼠标）
type PointerSnapshot struct {
	// Pressed 是否按下
	Pressed bool
	// X, Y 指针位置（屏幕坐标）
	X, Y int
	// IsTouch 是否来自触摸
	IsTouch bool
}

// PointerReader 指针输入接口
// 用于依赖注入，测试时可以 mock
type PointerReader interface {
	ReadPointer() PointerSnapshot
}

// EbitenPointer Ebitengine 默认实现
//
// 优先跟踪触摸：按下时记录触摸 ID，之后一直跟随这个触摸直到它抬起，
// 避免多指时在不同手指间跳动。没有触摸时读取鼠标左键。
type EbitenPointer struct {
	touchID    ebiten.TouchID
	tracking   bool
	lastX      int
	lastY      int
	touchIDBuf []ebiten.TouchID
}

// NewEbitenPointer 创建 Ebitengine 指针读取器
func NewEbitenPointer() *EbitenPointer {
	return &EbitenPointer{touchID: -1}
}

// ReadPointer 读取当前帧指针状态
func (p *EbitenPointer) ReadPointer() PointerSnapshot {
	p.touchIDBuf = ebiten.AppendTouchIDs(p.touchIDBuf[:0])

	if p.tracking {
		for _, id := range p.touchIDBuf {
			if id == p.touchID {
				p.lastX, p.lastY = ebiten.TouchPosition(id)
				return PointerSnapshot{Pressed: true, X: p.lastX, Y: p.lastY, IsTouch: true}
			}
		}
		// 触摸已抬起：释放帧使用最后一次位置
		p.tracking = false
		p.touchID = -1
		return PointerSnapshot{Pressed: false, X: p.lastX, Y: p.lastY, IsTouch: true}
	}

	if justPressed := inpututil.AppendJustPressedTouchIDs(nil); len(justPressed) > 0 {
		p.touchID = justPressed[0]
		p.tracking = true
		p.lastX, p.lastY = ebiten.TouchPosition(p.touchID)
		return PointerSnapshot{Pressed: true, X: p.lastX, Y: p.lastY, IsTouch: true}
	}

	x, y := ebiten.CursorPosition()
	return PointerSnapshot{
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:       x,
		Y:       y,
	}
}

// ============================================================================
// 拖拽跟踪
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（本帧刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中
	DragStateDragging
	// DragStateEnded 拖拽结束（本帧刚释放）
	DragStateEnded
)

func (s DragState) String() string {
	switch s {
	case DragStateNone:
		return "None"
	case DragStateStarted:
		return "Started"
	case DragStateDragging:
		return "Dragging"
	case DragStateEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// DragTracker 把逐帧的指针快照转换为按下/拖动/释放的边沿
//
// 每帧调用一次 Update。Started 和 Ended 各只持续一帧。
type DragTracker struct {
	state          DragState
	startX, startY int
	curX, curY     int
	wasPressed     bool
}

// Update 输入本帧快照，返回新状态
func (d *DragTracker) Update(s PointerSnapshot) DragState {
	switch {
	case s.Pressed && !d.wasPressed:
		d.state = DragStateStarted
		d.startX, d.startY = s.X, s.Y
	case s.Pressed:
		d.state = DragStateDragging
	case d.wasPressed:
		d.state = DragStateEnded
	default:
		d.state = DragStateNone
	}
	d.curX, d.curY = s.X, s.Y
	d.wasPressed = s.Pressed
	return d.state
}

// State 返回当前状态
func (d *DragTracker) State() DragState {
	return d.state
}

// Start 返回拖拽起点
func (d *DragTracker) Start() (x, y int) {
	return d.startX, d.startY
}

// Current 返回当前指针位置
func (d *DragTracker) Current() (x, y int) {
	return d.curX, d.curY
}

// Translation 返回从起点到当前位置的位移
func (d *DragTracker) Translation() (dx, dy int) {
	return d.curX - d.startX, d.curY - d.startY
}

// Reset 清空状态（场景切换时使用）
func (d *DragTracker) Reset() {
	*d = DragTracker{}
}
