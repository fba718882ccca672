package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce 文件变化后等待多久再重新加载
// 编辑器保存时往往连续产生多次写事件
const DefaultWatchDebounce = 150 * time.Millisecond

// ReloadEvent 一次重新加载的结果，Config 与 Err 二选一
type ReloadEvent struct {
	Config *DemoConfig
	Err    error
}

// Watcher 监听演示配置文件并在变化时重新加载
//
// 监听的是文件所在目录而不是文件本身，这样编辑器"写临时文件再重命名"的保存方式也能被捕获。
// 结果通过 Events() 通道投递，由调用方在自己的 goroutine（通常是 Update）里消费。
type Watcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	events   chan ReloadEvent
	done     chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// NewWatcher 创建并启动配置文件监听器
//
// 参数:
//   - path: 配置文件路径
//   - debounce: 去抖时长，<= 0 时使用 DefaultWatchDebounce
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		debounce: debounce,
		watcher:  fw,
		events:   make(chan ReloadEvent, 1),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()

	log.Printf("[ConfigWatcher] Watching %s", abs)
	return w, nil
}

// Events 返回重新加载结果通道，Close 后关闭
func (w *Watcher) Events() <-chan ReloadEvent {
	return w.events
}

// Path 返回被监听文件的绝对路径
func (w *Watcher) Path() string {
	return w.path
}

// Close 停止监听，可以重复调用
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
		close(w.events)
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[ConfigWatcher] Watch error: %v", err)

		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadDemoConfigFile(w.path)
	if err != nil {
		log.Printf("[ConfigWatcher] Reload failed: %v", err)
	} else {
		log.Printf("[ConfigWatcher] Reloaded %s (%d buttons)", w.path, len(cfg.Buttons))
	}

	ev := ReloadEvent{Config: cfg, Err: err}
	// 消费方来不及处理时丢弃旧结果，只保留最新一次
	for {
		select {
		case w.events <- ev:
			return
		case <-w.done:
			return
		default:
		}
		select {
		case <-w.events:
		default:
		}
	}
}
