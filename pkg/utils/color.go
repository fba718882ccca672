package utils

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// underlayLightenAmount 底衬相对容器颜色向白色混合的比例
const underlayLightenAmount = 0.26

// ParseHexColor 解析 "#RGB"、"#RRGGBB" 或 "#RRGGBBAA" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(0xFF)

	if len(s) == 9 && strings.HasPrefix(s, "#") {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alpha}, nil
}

// ParseHexColorOr 解析颜色，空字符串返回 fallback
func ParseHexColorOr(s string, fallback color.RGBA) (color.RGBA, error) {
	if strings.TrimSpace(s) == "" {
		return fallback, nil
	}
	return ParseHexColor(s)
}

// LightenColor 在 Lab 空间向白色混合 amount（0~1）
func LightenColor(c color.RGBA, amount float64) color.RGBA {
	base, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	r, g, b := base.BlendLab(white, amount).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}

// DeriveUnderlayColor 未配置底衬颜色时，由容器颜色推导一个更浅的颜色
func DeriveUnderlayColor(container color.RGBA) color.RGBA {
	return LightenColor(container, underlayLightenAmount)
}

// ColorToHex 格式化为 "#RRGGBB"（不透明）或 "#RRGGBBAA"
func ColorToHex(c color.RGBA) string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
