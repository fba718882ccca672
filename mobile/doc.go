// Package mobile 是 ebitenmobile bind 的入口
//
// 只有带 -tags mobile 构建时才包含实际代码（mobile.go、embed.go）：
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.decker502.slidebutton ./mobile
//
// 普通构建时本包为空，保证 go build ./... 不会因为构建约束排除了全部文件而失败。
package mobile
