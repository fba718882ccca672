//go:build !android

package utils

// EnsureStorageDir 桌面和 iOS 上 gdata 会自己创建目录，无需处理
func EnsureStorageDir() error {
	return nil
}

// StoragePath 返回偏好存储目录，由 gdata 管理时返回空字符串
func StoragePath() string {
	return ""
}
