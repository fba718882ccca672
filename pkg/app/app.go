// Package app 提供演示应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/slidebutton/pkg/config"
	"github.com/decker502/slidebutton/pkg/game"
	"github.com/decker502/slidebutton/pkg/scenes"
	"github.com/decker502/slidebutton/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AppName 偏好存储使用的应用名
const AppName = "slidebutton"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部演示配置路径，为空时使用内置 data/demo.yaml
	ConfigPath string
	// Watch 监听 ConfigPath 的变化并热重载（ConfigPath 为空时忽略）
	Watch bool
}

// App 是演示应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	audio        *game.AudioManager
	watcher      *config.Watcher
	demo         *config.DemoConfig
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化演示应用
//
// 使用内置配置时，调用此函数前必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	demo, err := loadDemo(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	settings := game.OpenSettingsManager(AppName)
	settings.SetVerbose(cfg.Verbose)

	a := &App{
		sceneManager: game.NewSceneManager(),
		settings:     settings,
		audio:        game.NewAudioManager(settings),
		demo:         demo,
		verbose:      cfg.Verbose,
	}

	resourceManager := game.NewResourceManager()
	a.sceneManager.SetSceneFactory(func() (game.Scene, error) {
		scene, err := scenes.NewDemoScene(resourceManager, a.sceneManager, a.settings, a.demo)
		if err != nil {
			return nil, err
		}
		scene.SetAudioManager(a.audio)
		return scene, nil
	})
	if !a.sceneManager.Reload() {
		return nil, fmt.Errorf("演示场景创建失败")
	}

	if cfg.Watch && cfg.ConfigPath != "" {
		if a.watcher, err = config.NewWatcher(cfg.ConfigPath, 0); err != nil {
			// 监听失败不影响运行
			log.Printf("[App] Warning: config hot reload disabled: %v", err)
		}
	}

	log.Printf("[App] Started with %d demo buttons (persistent preferences: %v)", len(demo.Buttons), settings.Persistent())
	return a, nil
}

// loadDemo 加载外部或内置演示配置
func loadDemo(path string) (*config.DemoConfig, error) {
	if path == "" {
		demo, err := config.LoadEmbeddedDemoConfig()
		if err != nil {
			return nil, fmt.Errorf("内置演示配置加载失败: %w", err)
		}
		return demo, nil
	}

	demo, err := config.LoadDemoConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("演示配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载演示配置: %s", path)
	return demo, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端没有窗口）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.pollReload()

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// pollReload 在 Update 所在的 goroutine 里应用热重载结果
func (a *App) pollReload() {
	if a.watcher == nil {
		return
	}
	select {
	case ev, ok := <-a.watcher.Events():
		if ok {
			a.applyReload(ev)
		}
	default:
	}
}

// applyReload 新配置有效时重建场景，无效时保留当前场景
func (a *App) applyReload(ev config.ReloadEvent) bool {
	if ev.Err != nil {
		log.Printf("[App] Config reload rejected: %v", ev.Err)
		return false
	}

	prev := a.demo
	a.demo = ev.Config
	if !a.sceneManager.Reload() {
		a.demo = prev
		return false
	}
	log.Printf("[App] Demo scene rebuilt from updated config")
	return true
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Close 关闭场景、音效和配置监听，并保存偏好
func (a *App) Close() {
	a.sceneManager.Close()
	a.audio.Close()
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			log.Printf("[App] Warning: failed to close config watcher: %v", err)
		}
		a.watcher = nil
	}
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save preferences: %v", err)
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
