package main

import (
	"flag"
	"log"

	"github.com/decker502/slidebutton/pkg/app"
	"github.com/decker502/slidebutton/pkg/config"
	"github.com/decker502/slidebutton/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "外部演示配置文件（默认使用内置 data/demo.yaml）")
	watch := flag.Bool("watch", false, "监听 -config 指定的文件并热重载")
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	demoApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Watch:      *watch,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer demoApp.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Slide Button")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(demoApp); err != nil {
		log.Printf("RunGame error: %v", err)
	}
}
