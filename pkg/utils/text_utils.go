package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const ellipsis = "…"

// MeasureText 测量单行文本宽度
func MeasureText(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}

// EllipsizeText 将文本截断到 maxWidth 以内，超出部分用省略号代替
//
// 标题只显示一行，最大宽度为标题容器的一半，超出时在末尾截断。
//
// 参数:
//   - textStr: 原始文本
//   - font: 字体，为 nil 时原样返回
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - string: 不超过 maxWidth 的文本；连省略号都放不下时返回空字符串
func EllipsizeText(textStr string, font *text.GoTextFace, maxWidth float64) string {
	if textStr == "" || font == nil {
		return textStr
	}
	if MeasureText(textStr, font) <= maxWidth {
		return textStr
	}
	if MeasureText(ellipsis, font) > maxWidth {
		return ""
	}

	// 二分查找能放下的最长前缀（按字符）
	runes := utf8.RuneCountInString(textStr)
	lo, hi := 0, runes
	for lo < hi {
		mid := (lo + hi + 1) / 2
		candidate := strings.TrimRight(prefixRunes(textStr, mid), " ") + ellipsis
		if MeasureText(candidate, font) <= maxWidth {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return strings.TrimRight(prefixRunes(textStr, lo), " ") + ellipsis
}

// prefixRunes 返回前 n 个字符
func prefixRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
