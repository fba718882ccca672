package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/slidebutton/pkg/components"
	"github.com/decker502/slidebutton/pkg/config"
	"github.com/decker502/slidebutton/pkg/ecs"
	"github.com/decker502/slidebutton/pkg/game"
	"github.com/decker502/slidebutton/pkg/slide"
	"github.com/decker502/slidebutton/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ResolveStyle 把配置里的十六进制颜色解析为渲染用的外观
// 缺省规则见 config.StyleSpec.Palette
func ResolveStyle(spec config.StyleSpec, font *text.GoTextFace) (components.SlideButtonStyle, error) {
	p, err := spec.Palette()
	if err != nil {
		return components.DefaultSlideButtonStyle(), err
	}
	return components.SlideButtonStyle{
		ContainerColor: p.Container,
		UnderlayColor:  p.Underlay,
		ThumbColor:     p.Thumb,
		TitleColor:     p.Title,
		BorderColor:    p.Border,
		IconColor:      p.Icon,
		TitleFont:      font,
	}, nil
}

// NewSlideButton 创建滑动按钮实体
//
// 参数：
//   - em: 实体管理器
//   - rm: 资源管理器（加载标题字体）
//   - spec: 按钮配置（行为 + 外观）
//   - x, y: 容器左上角（屏幕坐标）
//   - width: 布局给出的容器宽度
//   - callbacks: 状态机回调
//
// 返回：
//   - 实体ID
//   - 组件（场景需要直接调用 Button 的 Reset / SetDynamicResetDelaying）
//   - 错误信息（配置或颜色非法时）
func NewSlideButton(
	em *ecs.EntityManager,
	rm *game.ResourceManager,
	spec config.ButtonSpec,
	x, y, width float64,
	callbacks slide.Callbacks,
) (ecs.EntityID, *components.SlideButtonComponent, error) {
	font, err := rm.DefaultFont(spec.Style.TitleSize)
	if err != nil {
		return 0, nil, fmt.Errorf("button %q: %w", spec.ID, err)
	}

	style, err := ResolveStyle(spec.Style, font)
	if err != nil {
		return 0, nil, fmt.Errorf("button %q: %w", spec.ID, err)
	}

	button, err := slide.NewButton(spec.Config, callbacks)
	if err != nil {
		return 0, nil, fmt.Errorf("button %q: %w", spec.ID, err)
	}
	button.SetContainerWidth(width)

	comp := &components.SlideButtonComponent{
		Button: button,
		Style:  style,
		Width:  width,
	}

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, comp)
	return entity, comp, nil
}

// NewLabel 创建文字标签实体
func NewLabel(
	em *ecs.EntityManager,
	rm *game.ResourceManager,
	content string,
	fontSize float64,
	clr color.RGBA,
	align components.LabelAlign,
	x, y, width float64,
) (ecs.EntityID, *components.LabelComponent, error) {
	font, err := rm.DefaultFont(fontSize)
	if err != nil {
		return 0, nil, err
	}

	label := &components.LabelComponent{
		Text:  content,
		Font:  font,
		Color: clr,
		Align: align,
		Width: width,
	}

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, label)
	return entity, label, nil
}

// NewActionButton 创建普通按钮实体（纯色圆角背景 + 居中文字）
// 宽度为 0 时按文字宽度加左右留白自动计算
func NewActionButton(
	em *ecs.EntityManager,
	rm *game.ResourceManager,
	content string,
	background color.RGBA,
	x, y, width float64,
	onClick func(),
) (ecs.EntityID, *components.ButtonComponent, error) {
	font, err := rm.DefaultFont(config.ActionButtonFontSize)
	if err != nil {
		return 0, nil, err
	}
	if width <= 0 {
		width = utils.MeasureText(content, font) + 2*config.ActionButtonPaddingX
	}

	button := &components.ButtonComponent{
		Text:            content,
		Font:            font,
		TextColor:       color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		BackgroundColor: background,
		CornerRadius:    config.ActionButtonRadius,
		ActiveOpacity:   0.7,
		Width:           width,
		Height:          config.ActionButtonHeight,
		State:           components.UINormal,
		Enabled:         true,
		OnClick:         onClick,
	}

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, button)
	return entity, button, nil
}

// NewCountdownTimer 创建倒计时实体（未启动）
func NewCountdownTimer(
	em *ecs.EntityManager,
	name string,
	seconds float64,
	onTick func(remainingSeconds int),
	onExpire func(),
) (ecs.EntityID, *components.TimerComponent) {
	timer := &components.TimerComponent{
		Name:       name,
		TargetTime: seconds,
		OnTick:     onTick,
		OnExpire:   onExpire,
	}
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, timer)
	return entity, timer
}
