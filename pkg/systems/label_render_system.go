package systems

import (
	"github.com/decker502/slidebutton/pkg/components"
	"github.com/decker502/slidebutton/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LabelRenderSystem 文字标签渲染系统
type LabelRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewLabelRenderSystem 创建文字标签渲染系统
func NewLabelRenderSystem(em *ecs.EntityManager) *LabelRenderSystem {
	return &LabelRenderSystem{entityManager: em}
}

// Draw 渲染所有标签，PositionComponent 为标签行的左上角
func (s *LabelRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.LabelComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		label, _ := ecs.GetComponent[*components.LabelComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if label.Text == "" || label.Font == nil {
			continue
		}

		align, dx := labelAnchor(label)
		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = align
		op.GeoM.Translate(pos.X+dx, pos.Y)
		op.ColorScale.ScaleWithColor(label.Color)
		text.Draw(screen, label.Text, label.Font, op)
	}
}

// labelAnchor 返回文字对齐方式和锚点相对左边缘的偏移
func labelAnchor(label *components.LabelComponent) (text.Align, float64) {
	switch label.Align {
	case components.LabelAlignCenter:
		return text.AlignCenter, label.Width / 2
	case components.LabelAlignEnd:
		return text.AlignEnd, label.Width
	default:
		return text.AlignStart, 0
	}
}
