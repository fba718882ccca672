package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 由 SceneManager 驱动的一个界面
// Update 和 Draw 都在 Ebitengine 的主循环里调用
type Scene interface {
	// Update 推进 deltaTime 秒（固定 1/TPS）
	Update(deltaTime float64)
	// Draw 绘制到逻辑屏幕
	Draw(screen *ebiten.Image)
}

// Closer 场景被替换或程序退出时调用（可选）
// 实现方负责取消回弹动画、自动重置计时和脉冲，卸载后不能再触发回调
type Closer interface {
	Close()
}
