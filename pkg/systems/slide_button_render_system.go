package systems

import (
	"github.com/decker502/slidebutton/pkg/components"
	"github.com/decker502/slidebutton/pkg/ecs"
	"github.com/decker502/slidebutton/pkg/slide"
	"github.com/decker502/slidebutton/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 箭头相对图标容器的比例
const (
	chevronSizeRatio   = 0.36
	chevronStrokeRatio = 0.07
)

// SlideButtonRenderSystem 滑动按钮渲染系统
//
// 每个按钮先画到自己的离屏画布上，再整体贴到屏幕：
//   - 容器（含边框）、标题、底衬画在容器画布上
//   - 滑块和箭头画在滑块画布上，按 ThumbOpacity 贴到容器画布（脉冲动画）
//   - 容器画布按 ContainerOpacity 贴到屏幕（禁用态半透明）
//
// 这样重叠的圆角形状不会因为半透明而出现叠加的深色接缝。
type SlideButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewSlideButtonRenderSystem 创建滑动按钮渲染系统
func NewSlideButtonRenderSystem(em *ecs.EntityManager) *SlideButtonRenderSystem {
	return &SlideButtonRenderSystem{entityManager: em}
}

// Draw 渲染所有滑动按钮
func (s *SlideButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.SlideButtonComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		s.DrawSlideButton(screen, id)
	}
}

// DrawSlideButton 渲染单个滑动按钮
func (s *SlideButtonRenderSystem) DrawSlideButton(screen *ebiten.Image, id ecs.EntityID) {
	comp, ok := ecs.GetComponent[*components.SlideButtonComponent](s.entityManager, id)
	if !ok || comp.Button == nil {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}

	v := comp.Button.View()
	if v.ContainerWidth <= 0 {
		// 尚未布局
		return
	}

	w, h := utils.CanvasSize(v.ContainerWidth, v.Height)
	comp.Canvas = utils.EnsureCanvas(comp.Canvas, w, h)
	if comp.Canvas == nil {
		return
	}

	style := comp.Style
	utils.FillBorderedRoundedRect(comp.Canvas, 0, 0, v.ContainerWidth, v.Height, v.Radius, v.BorderWidth,
		style.ContainerColor, style.BorderColor)

	s.drawTitle(comp, v)

	underlay := v.Part(slide.PartUnderlay)
	utils.FillRoundedRect(comp.Canvas, underlay.X, underlay.Y, underlay.W, underlay.H, v.ChildRadius, style.UnderlayColor)

	s.drawThumb(comp, v)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleAlpha(float32(v.ContainerOpacity))
	screen.DrawImage(comp.Canvas, op)
}

// drawTitle 标题居中显示在标题容器里，超出最大宽度时截断
func (s *SlideButtonRenderSystem) drawTitle(comp *components.SlideButtonComponent, v slide.View) {
	font := comp.Style.TitleFont
	if font == nil || v.Title == "" || v.TitleOpacity <= 0 {
		return
	}

	titleRect := v.Part(slide.PartTitle)
	title := utils.EllipsizeText(v.Title, font, titleRect.W)
	if title == "" {
		return
	}

	container := v.Part(slide.PartTitleContainer)
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(container.X+container.W/2, container.Y+container.H/2)
	op.ColorScale.ScaleWithColor(comp.Style.TitleColor)
	op.ColorScale.ScaleAlpha(float32(v.TitleOpacity))
	text.Draw(comp.Canvas, title, font, op)
}

// drawThumb 滑块和箭头
func (s *SlideButtonRenderSystem) drawThumb(comp *components.SlideButtonComponent, v slide.View) {
	thumb := v.Part(slide.PartThumbContainer)
	tw, th := utils.CanvasSize(thumb.W, thumb.H)
	comp.ThumbCanvas = utils.EnsureCanvas(comp.ThumbCanvas, tw, th)
	if comp.ThumbCanvas == nil {
		return
	}
	utils.FillRoundedRect(comp.ThumbCanvas, 0, 0, thumb.W, thumb.H, v.ChildRadius, comp.Style.ThumbColor)

	icon := v.Part(slide.PartIconContainer)
	iw, ih := utils.CanvasSize(icon.W, icon.H)
	comp.IconCanvas = utils.EnsureCanvas(comp.IconCanvas, iw, ih)
	if comp.IconCanvas != nil {
		size := icon.W * chevronSizeRatio
		stroke := icon.W * chevronStrokeRatio
		if stroke < 1.5 {
			stroke = 1.5
		}
		utils.DrawChevron(comp.IconCanvas, icon.W/2, icon.H/2, size, stroke, comp.Style.IconColor)

		iconOp := &ebiten.DrawImageOptions{}
		if v.IconScaleX < 0 {
			// RTL 下水平镜像，箭头指向左侧
			iconOp.GeoM.Scale(-1, 1)
			iconOp.GeoM.Translate(float64(iw), 0)
		}
		iconOp.GeoM.Translate(icon.X-thumb.X, icon.Y-thumb.Y)
		comp.ThumbCanvas.DrawImage(comp.IconCanvas, iconOp)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(thumb.X, thumb.Y)
	op.ColorScale.ScaleAlpha(float32(v.ThumbOpacity))
	comp.Canvas.DrawImage(comp.ThumbCanvas, op)
}
