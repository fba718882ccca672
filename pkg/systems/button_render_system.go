package systems

import (
	"github.com/decker502/slidebutton/pkg/components"
	"github.com/decker502/slidebutton/pkg/ecs"
	"github.com/decker502/slidebutton/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// disabledButtonOpacity 禁用按钮的不透明度
const disabledButtonOpacity = 0.5

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有普通按钮实体
//
// 职责：
//   - 渲染圆角背景
//   - 渲染按钮文字（自动居中）
//   - 按下时整体降低不透明度（ActiveOpacity）
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	w, h := utils.CanvasSize(button.Width, button.Height)
	button.Canvas = utils.EnsureCanvas(button.Canvas, w, h)
	if button.Canvas == nil {
		return
	}

	utils.FillRoundedRect(button.Canvas, 0, 0, button.Width, button.Height, button.CornerRadius, button.BackgroundColor)
	s.drawButtonText(button)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleAlpha(float32(buttonOpacity(button)))
	screen.DrawImage(button.Canvas, op)
}

// buttonOpacity 根据交互状态返回整体不透明度
func buttonOpacity(button *components.ButtonComponent) float64 {
	switch button.State {
	case components.UIClicked:
		return button.ActiveOpacity
	case components.UIDisabled:
		return disabledButtonOpacity
	default:
		return 1
	}
}

// drawButtonText 渲染按钮文字（居中）
func (s *ButtonRenderSystem) drawButtonText(button *components.ButtonComponent) {
	if button.Text == "" || button.Font == nil {
		return
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(button.Width/2, button.Height/2)
	op.ColorScale.ScaleWithColor(button.TextColor)

	text.Draw(button.Canvas, button.Text, button.Font, op)
}
