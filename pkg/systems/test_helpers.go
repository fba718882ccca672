package systems

import (
	"github.com/decker502/slidebutton/pkg/utils"
)

// mockPointer 用于测试的 mock 指针输入
type mockPointer struct {
	snap utils.PointerSnapshot
}

func (m *mockPointer) ReadPointer() utils.PointerSnapshot {
	return m.snap
}

func (m *mockPointer) press(x, y int) {
	m.snap = utils.PointerSnapshot{Pressed: true, X: x, Y: y}
}

func (m *mockPointer) moveTo(x, y int) {
	m.snap.X, m.snap.Y = x, y
}

func (m *mockPointer) release() {
	m.snap.Pressed = false
}
