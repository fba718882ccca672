//go:build mobile

package utils

// IsMobile 用 -tags mobile 构建（ebitenmobile bind）时恒为 true
func IsMobile() bool { return true }
