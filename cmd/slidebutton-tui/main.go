// slidebutton-tui 在终端里运行滑动按钮演示
//
// 用法:
//
//	slidebutton-tui [-config data/demo.yaml] [-watch] [-log tui.log]
//
// 鼠标左键拖动滑块；r 切换方向，x 全部重置，q / Esc / Ctrl-C 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/slidebutton/internal/termui"
	"github.com/decker502/slidebutton/pkg/config"
	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", config.DefaultDemoConfigPath, "演示配置文件")
	watch := flag.Bool("watch", false, "监听配置文件并热重载")
	logPath := flag.String("log", "", "日志文件（终端被占用，默认不输出日志）")
	fps := flag.Int("fps", 60, "刷新帧率")
	flag.Parse()

	if err := setupLog(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadDemoConfigFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	var watcher *config.Watcher
	if *watch {
		watcher, err = config.NewWatcher(*configPath, 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		defer watcher.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	w, _ := screen.Size()
	demo, err := termui.NewDemo(cfg, w)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *fps <= 0 {
		*fps = 60
	}
	runLoop(screen, demo, watcher, *fps)

	demo.Close()
	screen.Fini()
}

func setupLog(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return nil
}

// runLoop 事件在单独的 goroutine 里读取，按钮只在本循环中驱动
func runLoop(screen tcell.Screen, demo *termui.Demo, watcher *config.Watcher, fps int) {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	var reloads <-chan config.ReloadEvent
	if watcher != nil {
		reloads = watcher.Events()
	}

	frame := time.Second / time.Duration(fps)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	w, h := screen.Size()
	canvas := termui.NewCanvas(w, h)
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h = screen.Size()
				canvas.Resize(w, h)
				demo.Resize(w)
				screen.Sync()

			case *tcell.EventMouse:
				x, y := ev.Position()
				demo.HandleMouse(x, y, ev.Buttons()&tcell.Button1 != 0)

			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEsc, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
					return
				case ev.Rune() == 'r':
					if err := demo.ToggleDirection(); err != nil {
						log.Printf("[TUI] Toggle direction failed: %v", err)
					}
				case ev.Rune() == 'x':
					demo.ResetAll()
				}
			}

		case re, ok := <-reloads:
			if !ok {
				reloads = nil
				continue
			}
			if re.Err != nil {
				log.Printf("[TUI] Keeping current config: %v", re.Err)
				continue
			}
			if err := demo.Load(re.Config); err != nil {
				log.Printf("[TUI] Reload failed: %v", err)
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			demo.Update(dt)
			demo.Render(canvas)
			canvas.Flush(screen)
		}
	}
}
