package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/slidebutton/pkg/components"
	"github.com/decker502/slidebutton/pkg/config"
	"github.com/decker502/slidebutton/pkg/ecs"
	"github.com/decker502/slidebutton/pkg/entities"
	"github.com/decker502/slidebutton/pkg/game"
	"github.com/decker502/slidebutton/pkg/slide"
	"github.com/decker502/slidebutton/pkg/systems"
	"github.com/decker502/slidebutton/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 演示场景配色
var (
	backgroundColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	headerColor     = color.RGBA{R: 0x00, G: 0x95, B: 0xFF, A: 0xFF}
	labelColor      = color.RGBA{R: 0x22, G: 0x2B, B: 0x45, A: 0xFF}
	footerColor     = color.RGBA{R: 0x8F, G: 0x9B, B: 0xB3, A: 0xFF}
	actionColor     = color.RGBA{R: 0xFF, G: 0x70, B: 0x8D, A: 0xFF}
)

// KeyInput 键盘输入接口
// 用于依赖注入，支持测试时 mock
type KeyInput interface {
	IsKeyJustPressed(key ebiten.Key) bool
}

// ebitenKeyInput Ebitengine 默认实现
type ebitenKeyInput struct{}

func (ebitenKeyInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// demoRow 一组演示：说明文字 + 滑动按钮（+ 倒计时 + 普通按钮）
type demoRow struct {
	spec   config.ButtonSpec
	label  *components.LabelComponent
	slide  *components.SlideButtonComponent
	timer  *components.TimerComponent
	action *components.ButtonComponent

	reachedEnd bool
	countdown  int
}

// DemoScene 演示场景
//
// 按配置从上到下排列若干组滑动按钮，每组上方的说明文字会随回调刷新：
//   - {reached} 显示最近一次到达的是起点还是终点
//   - {countdown} 显示动态重置倒计时
//
// 按 R 切换布局方向（写入偏好并通过 SceneManager.Reload 重建场景）。
type DemoScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	settings        *game.SettingsManager
	audio           *game.AudioManager // 可为 nil（静音）
	keys            KeyInput

	entityManager *ecs.EntityManager
	slideSystem   *systems.SlideButtonSystem
	buttonSystem  *systems.ButtonSystem
	timerSystem   *systems.TimerSystem
	slideRender   *systems.SlideButtonRenderSystem
	buttonRender  *systems.ButtonRenderSystem
	labelRender   *systems.LabelRenderSystem

	rows   []*demoRow
	footer *components.LabelComponent
	rtl    bool
	closed bool
}

// NewDemoScene 创建演示场景
//
// 参数：
//   - rm: 资源管理器（字体）
//   - sm: 场景管理器（切换方向时重建场景），可为 nil
//   - settings: 偏好设置（布局方向、确认次数）
//   - demo: 演示配置
//
// 返回：
//   - *DemoScene: 场景实例
//   - error: 配置中的颜色或按钮参数非法时返回错误
func NewDemoScene(rm *game.ResourceManager, sm *game.SceneManager, settings *game.SettingsManager, demo *config.DemoConfig) (*DemoScene, error) {
	return NewDemoSceneWithInput(rm, sm, settings, demo, nil, nil)
}

// NewDemoSceneWithInput 创建带自定义输入的演示场景（用于测试）
// pointer 或 keys 为 nil 时使用 Ebitengine 默认实现
func NewDemoSceneWithInput(
	rm *game.ResourceManager,
	sm *game.SceneManager,
	settings *game.SettingsManager,
	demo *config.DemoConfig,
	pointer utils.PointerReader,
	keys KeyInput,
) (*DemoScene, error) {
	if keys == nil {
		keys = ebitenKeyInput{}
	}

	em := ecs.NewEntityManager()
	s := &DemoScene{
		resourceManager: rm,
		sceneManager:    sm,
		settings:        settings,
		keys:            keys,
		entityManager:   em,
		timerSystem:     systems.NewTimerSystem(em),
		slideRender:     systems.NewSlideButtonRenderSystem(em),
		buttonRender:    systems.NewButtonRenderSystem(em),
		labelRender:     systems.NewLabelRenderSystem(em),
		rtl:             settings.GetPreferences().RTL,
	}
	if pointer != nil {
		s.slideSystem = systems.NewSlideButtonSystemWithInput(em, pointer)
		s.buttonSystem = systems.NewButtonSystemWithInput(em, pointer)
	} else {
		s.slideSystem = systems.NewSlideButtonSystem(em)
		s.buttonSystem = systems.NewButtonSystem(em)
	}

	if err := s.build(demo); err != nil {
		s.Close()
		return nil, err
	}

	log.Printf("[DemoScene] Created %d slide buttons (rtl=%v)", len(s.rows), s.rtl)
	return s, nil
}

// SetAudioManager 设置反馈音效，nil 表示静音
func (s *DemoScene) SetAudioManager(am *game.AudioManager) {
	s.audio = am
	s.refreshFooter()
}

// build 按配置创建全部实体
func (s *DemoScene) build(demo *config.DemoConfig) error {
	width := config.ContentWidth()
	labelAlign := components.LabelAlignStart
	if s.rtl {
		labelAlign = components.LabelAlignEnd
	}

	if _, _, err := entities.NewLabel(s.entityManager, s.resourceManager, demo.Title, config.HeaderFontSize,
		headerColor, components.LabelAlignCenter, config.ScreenMargin, (config.HeaderHeight-config.HeaderFontSize)/2, width); err != nil {
		return fmt.Errorf("failed to create header: %w", err)
	}

	y := config.HeaderHeight
	for _, spec := range demo.Buttons {
		spec.Config.RTL = s.rtl
		row := &demoRow{spec: spec, countdown: int(spec.Countdown)}

		var err error
		if _, row.label, err = entities.NewLabel(s.entityManager, s.resourceManager, "", config.LabelFontSize,
			labelColor, labelAlign, config.ScreenMargin, y, width); err != nil {
			return fmt.Errorf("failed to create label for %q: %w", spec.ID, err)
		}
		y += config.LabelHeight + config.LabelGap

		if _, row.slide, err = entities.NewSlideButton(s.entityManager, s.resourceManager, spec,
			config.ScreenMargin, y, width, s.callbacks(row)); err != nil {
			return err
		}
		y += spec.Config.Height

		if spec.Config.DynamicResetEnabled && spec.Countdown > 0 {
			_, row.timer = entities.NewCountdownTimer(s.entityManager, spec.ID, spec.Countdown,
				func(remaining int) {
					row.countdown = remaining
					s.refreshLabel(row)
				},
				func() { s.onCountdownExpired(row) })
		}

		if spec.HasAction() {
			y += config.ActionButtonGap
			var actionID ecs.EntityID
			if actionID, row.action, err = entities.NewActionButton(s.entityManager, s.resourceManager, spec.ActionLabel,
				actionColor, config.ScreenMargin, y, 0, func() { s.onActionClicked(row) }); err != nil {
				return fmt.Errorf("failed to create action button for %q: %w", spec.ID, err)
			}
			if s.rtl {
				pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, actionID)
				pos.X = config.ScreenMargin + width - row.action.Width
			}
			y += config.ActionButtonHeight
		}
		y += config.RowGap

		s.rows = append(s.rows, row)
		s.refreshLabel(row)
	}

	var err error
	if _, s.footer, err = entities.NewLabel(s.entityManager, s.resourceManager, "", config.LabelFontSize,
		footerColor, components.LabelAlignCenter, config.ScreenMargin, config.WindowHeight-config.LabelHeight-config.ScreenMargin/2, width); err != nil {
		return fmt.Errorf("failed to create footer: %w", err)
	}
	s.refreshFooter()
	return nil
}

// callbacks 每组按钮的状态机回调
func (s *DemoScene) callbacks(row *demoRow) slide.Callbacks {
	return slide.Callbacks{
		OnSlideStart: func() {
			s.audio.PlaySound(game.SoundSlideStart)
			log.Printf("[DemoScene] %s: slide start", row.spec.ID)
		},
		OnSlideEnd: func() {
			log.Printf("[DemoScene] %s: slide end", row.spec.ID)
		},
		OnReachedToStart: func() {
			if row.reachedEnd {
				s.audio.PlaySound(game.SoundReset)
			}
			row.reachedEnd = false
			s.refreshLabel(row)
			log.Printf("[DemoScene] %s: reached to start", row.spec.ID)
		},
		OnReachedToEnd: func() {
			row.reachedEnd = true
			s.audio.PlaySound(game.SoundConfirm)
			count := s.settings.IncrementConfirmCount()
			if err := s.settings.Save(); err != nil {
				log.Printf("[DemoScene] Warning: failed to save preferences: %v", err)
			}
			log.Printf("[DemoScene] %s: reached to end (confirms=%d)", row.spec.ID, count)

			if row.timer != nil {
				// 模拟宿主的异步工作：倒计时期间保持在终点
				row.slide.Button.SetDynamicResetDelaying(true)
				row.timer.Start(row.spec.Countdown)
			}
			s.refreshLabel(row)
			s.refreshFooter()
		},
	}
}

// onCountdownExpired 倒计时结束，解除 delaying，按钮回到起点
func (s *DemoScene) onCountdownExpired(row *demoRow) {
	row.slide.Button.SetDynamicResetDelaying(false)
	row.countdown = int(row.spec.Countdown)
	s.refreshLabel(row)
}

// onActionClicked 倒计时中重新开始倒计时，否则直接重置按钮
func (s *DemoScene) onActionClicked(row *demoRow) {
	if row.timer != nil && row.timer.Running {
		row.timer.Restart()
		log.Printf("[DemoScene] %s: countdown restarted", row.spec.ID)
		return
	}
	row.slide.Button.Reset()
	log.Printf("[DemoScene] %s: reset", row.spec.ID)
}

func (s *DemoScene) refreshLabel(row *demoRow) {
	row.label.Text = config.FormatLabel(row.spec.Label, row.reachedEnd, row.countdown,
		s.settings.GetPreferences().ConfirmCount)
}

func (s *DemoScene) refreshFooter() {
	dir := "LTR"
	if s.rtl {
		dir = "RTL"
	}
	s.footer.Text = fmt.Sprintf("%s · confirmed %d times", dir, s.settings.GetPreferences().ConfirmCount)
	if !utils.IsMobile() {
		s.footer.Text += " · R: flip"
		if s.audio != nil {
			sound := "off"
			if s.audio.Enabled() {
				sound = "on"
			}
			s.footer.Text += " · M: sound " + sound
		}
	}
}

// Update 更新场景
func (s *DemoScene) Update(deltaTime float64) {
	if s.closed {
		return
	}

	if s.keys.IsKeyJustPressed(ebiten.KeyR) {
		s.toggleDirection()
		// 场景可能已经被替换
		if s.closed {
			return
		}
	}

	if s.audio != nil && s.keys.IsKeyJustPressed(ebiten.KeyM) {
		s.toggleSound()
	}

	s.timerSystem.Update(deltaTime)
	s.buttonSystem.Update(deltaTime)
	s.slideSystem.Update(deltaTime)
}

// toggleDirection 切换布局方向并重建场景
func (s *DemoScene) toggleDirection() {
	rtl := s.settings.ToggleRTL()
	if err := s.settings.Save(); err != nil {
		log.Printf("[DemoScene] Warning: failed to save preferences: %v", err)
	}
	log.Printf("[DemoScene] Layout direction switched (rtl=%v)", rtl)

	if s.sceneManager == nil || !s.sceneManager.Reload() {
		log.Printf("[DemoScene] Warning: scene reload unavailable, direction applies on next start")
	}
}

// toggleSound 切换反馈音效并保存
func (s *DemoScene) toggleSound() {
	enabled := !s.settings.GetPreferences().SoundEnabled
	s.settings.SetSoundEnabled(enabled)
	if err := s.settings.Save(); err != nil {
		log.Printf("[DemoScene] Warning: failed to save preferences: %v", err)
	}
	s.refreshFooter()
	log.Printf("[DemoScene] Sound enabled=%v", enabled)
}

// Draw 绘制场景
func (s *DemoScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.labelRender.Draw(screen)
	s.slideRender.Draw(screen)
	s.buttonRender.Draw(screen)
}

// Close 卸载全部滑动按钮并释放离屏画布
func (s *DemoScene) Close() {
	if s.closed {
		return
	}
	s.closed = true

	for _, id := range ecs.GetEntitiesWith1[*components.SlideButtonComponent](s.entityManager) {
		comp, _ := ecs.GetComponent[*components.SlideButtonComponent](s.entityManager, id)
		if comp.Button != nil {
			comp.Button.Close()
		}
		for _, img := range []*ebiten.Image{comp.Canvas, comp.ThumbCanvas, comp.IconCanvas} {
			if img != nil {
				img.Deallocate()
			}
		}
	}
	for _, id := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		b, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		if b.Canvas != nil {
			b.Canvas.Deallocate()
		}
	}
	s.slideSystem.Reset()
	s.entityManager.Clear()
	log.Printf("[DemoScene] Closed")
}
