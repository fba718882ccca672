// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的演示配置和字体。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
)

// DataPrefix 嵌入资源的路径前缀
const DataPrefix = "data/"

var (
	mu     sync.RWMutex
	dataFS fs.FS
)

// Init 设置嵌入文件系统
// 必须在 main() 开始时、任何资源加载之前调用；embed.FS 与 fstest.MapFS 都可以传入
func Init(data fs.FS) {
	mu.Lock()
	defer mu.Unlock()
	dataFS = data
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	mu.RLock()
	defer mu.RUnlock()
	return dataFS != nil
}

// normalize 校验并标准化路径，返回可直接用于 fs.FS 的路径
func normalize(path string) (fs.FS, string, error) {
	mu.RLock()
	fsys := dataFS
	mu.RUnlock()

	if fsys == nil {
		return nil, "", fmt.Errorf("embedded package not initialized, call Init() first")
	}

	// embed.FS 使用正斜杠
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	if !strings.HasPrefix(path, DataPrefix) {
		return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with '%s')", path, DataPrefix)
	}
	return fsys, path, nil
}

// Open 打开嵌入文件，路径必须以 "data/" 开头
func Open(path string) (fs.File, error) {
	fsys, path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(path)
}

// ReadFile 读取嵌入文件内容，路径必须以 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	fsys, path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, path)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob 匹配嵌入文件
func Glob(pattern string) ([]string, error) {
	fsys, pattern, err := normalize(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(fsys, pattern)
}

// ReadDir 读取目录内容
func ReadDir(path string) ([]fs.DirEntry, error) {
	fsys, path, err := normalize(strings.TrimSuffix(path, "/"))
	if err != nil {
		return nil, err
	}
	return fs.ReadDir(fsys, path)
}
