//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设为 "1" 时桌面端也按移动端处理（调试触摸布局）
const MobileEmulateEnv = "SLIDEBUTTON_MOBILE_EMULATE"

// IsMobile 是否运行在移动端
// 移动端没有窗口和键盘：不处理 F11，也不显示按键提示
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
