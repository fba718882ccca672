package config

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/decker502/slidebutton/pkg/utils"
)

// DefaultUnderlayColor 默认容器颜色对应的底衬
var DefaultUnderlayColor = color.RGBA{R: 0x42, G: 0xAA, B: 0xFF, A: 0xFF}

// Palette 解析后的滑动按钮配色，图形前端和终端前端共用
type Palette struct {
	Container color.RGBA
	Underlay  color.RGBA
	Thumb     color.RGBA
	Title     color.RGBA
	Border    color.RGBA
	Icon      color.RGBA
}

// DefaultPalette 返回 DefaultStyleSpec 对应的配色
func DefaultPalette() Palette {
	p, err := DefaultStyleSpec().Palette()
	if err != nil {
		panic(err)
	}
	return p
}

// Palette 把十六进制颜色解析为配色
//
// 缺省规则：
//   - underlayColor 为空：容器是默认颜色时使用 DefaultUnderlayColor，否则由容器颜色推导
//   - borderColor、iconColor 为空：跟随容器颜色
//   - 其余为空时使用 DefaultStyleSpec 的值
func (s StyleSpec) Palette() (Palette, error) {
	def := DefaultStyleSpec()
	defContainer, err := utils.ParseHexColor(def.ContainerColor)
	if err != nil {
		return Palette{}, err
	}

	var p Palette
	if p.Container, err = utils.ParseHexColorOr(s.ContainerColor, defContainer); err != nil {
		return p, fmt.Errorf("containerColor: %w", err)
	}

	switch {
	case strings.TrimSpace(s.UnderlayColor) != "":
		if p.Underlay, err = utils.ParseHexColor(s.UnderlayColor); err != nil {
			return p, fmt.Errorf("underlayColor: %w", err)
		}
	case p.Container == defContainer:
		p.Underlay = DefaultUnderlayColor
	default:
		p.Underlay = utils.DeriveUnderlayColor(p.Container)
	}

	thumb, title := s.ThumbColor, s.TitleColor
	if strings.TrimSpace(thumb) == "" {
		thumb = def.ThumbColor
	}
	if strings.TrimSpace(title) == "" {
		title = def.TitleColor
	}
	if p.Thumb, err = utils.ParseHexColor(thumb); err != nil {
		return p, fmt.Errorf("thumbColor: %w", err)
	}
	if p.Title, err = utils.ParseHexColor(title); err != nil {
		return p, fmt.Errorf("titleColor: %w", err)
	}
	if p.Border, err = utils.ParseHexColorOr(s.BorderColor, p.Container); err != nil {
		return p, fmt.Errorf("borderColor: %w", err)
	}
	if p.Icon, err = utils.ParseHexColorOr(s.IconColor, p.Container); err != nil {
		return p, fmt.Errorf("iconColor: %w", err)
	}
	return p, nil
}
