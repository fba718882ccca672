//go:build android

package utils

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// androidDataRoot 应用私有数据目录的根
const androidDataRoot = "/data/data"

// EnsureStorageDir 在 gdata.Open 之前创建偏好目录
// gdata 在 Android 上以 /data/data/{package}/ 为根，但不会创建 preferences 子目录
func EnsureStorageDir() error {
	dir := StoragePath()
	if dir == "" {
		return errors.New("cannot resolve android package name")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	// 目录存在但不可写时 gdata 只会在第一次保存时报错，这里提前发现
	f, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return nil
}

// StoragePath 返回偏好目录，无法识别包名时返回空字符串
func StoragePath() string {
	pkg, err := androidPackageName()
	if err != nil {
		return ""
	}
	return filepath.Join(androidDataRoot, pkg, "preferences")
}

// androidPackageName 读取 /proc/self/cmdline 的第一个参数（即包名）
func androidPackageName() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	name := string(bytes.TrimSpace(data))
	if name == "" {
		return "", errors.New("empty /proc/self/cmdline")
	}
	return name, nil
}
