package game

import (
	"bytes"
	"fmt"
	"log"

	"github.com/decker502/slidebutton/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontPath 内置字体的逻辑路径（Go Regular，不需要嵌入文件）
const DefaultFontPath = "builtin:goregular"

// ResourceManager 字体资源管理器
//
// 按 "路径:字号" 缓存 GoTextFace。内置字体来自 golang.org/x/image 的 Go Regular；
// 其它路径从嵌入资源读取，读取失败时回退到内置字体。
type ResourceManager struct {
	fontSources   map[string]*text.GoTextFaceSource
	fontFaceCache map[string]*text.GoTextFace
}

// NewResourceManager 创建资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		fontSources:   make(map[string]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// LoadFont 加载指定字号的字体
//
// 参数:
//   - path: 字体路径，DefaultFontPath 表示内置字体，"data/..." 表示嵌入资源
//   - size: 字号（像素）
//
// 返回:
//   - *text.GoTextFace: 字体
//   - error: 内置字体也无法解析时返回错误
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, err := rm.loadSource(path)
	if err != nil {
		if path == DefaultFontPath {
			return nil, err
		}
		log.Printf("[ResourceManager] Warning: %v, falling back to %s", err, DefaultFontPath)
		if source, err = rm.loadSource(DefaultFontPath); err != nil {
			return nil, err
		}
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// DefaultFont 加载内置字体
func (rm *ResourceManager) DefaultFont(size float64) (*text.GoTextFace, error) {
	return rm.LoadFont(DefaultFontPath, size)
}

// GetFont 返回已缓存的字体，未加载时返回 nil
func (rm *ResourceManager) GetFont(path string, size float64) *text.GoTextFace {
	return rm.fontFaceCache[fmt.Sprintf("%s:%.1f", path, size)]
}

func (rm *ResourceManager) loadSource(path string) (*text.GoTextFaceSource, error) {
	if source, ok := rm.fontSources[path]; ok {
		return source, nil
	}

	var data []byte
	if path == DefaultFontPath {
		data = goregular.TTF
	} else {
		var err error
		if data, err = embedded.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
		}
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}
	rm.fontSources[path] = source
	return source, nil
}
