package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/decker502/slidebutton/pkg/embedded"
	"github.com/decker502/slidebutton/pkg/slide"
	"gopkg.in/yaml.v3"
)

// DefaultDemoConfigPath 内置演示配置的路径
const DefaultDemoConfigPath = "data/demo.yaml"

// DefaultTitleSize 滑动按钮标题默认字号
const DefaultTitleSize = 16.0

// ErrNoButtons 演示配置中没有任何按钮
var ErrNoButtons = errors.New("demo config has no buttons")

// 说明文字中的占位符
const (
	// PlaceholderReached 替换为 "START" 或 "END"
	PlaceholderReached = "{reached}"
	// PlaceholderCountdown 替换为倒计时剩余秒数
	PlaceholderCountdown = "{countdown}"
	// PlaceholderConfirms 替换为累计确认次数
	PlaceholderConfirms = "{confirms}"
)

// StyleSpec 滑动按钮外观（十六进制颜色字符串）
//
// 空字符串表示使用默认值：
//   - underlayColor 为空时：容器为默认颜色则使用默认底衬，否则由 containerColor 推导一个更浅的颜色
//   - borderColor、iconColor 为空时跟随 containerColor
type StyleSpec struct {
	ContainerColor string  `yaml:"containerColor"`
	UnderlayColor  string  `yaml:"underlayColor"`
	ThumbColor     string  `yaml:"thumbColor"`
	TitleColor     string  `yaml:"titleColor"`
	BorderColor    string  `yaml:"borderColor"`
	IconColor      string  `yaml:"iconColor"`
	TitleSize      float64 `yaml:"titleSize"`
}

// DefaultStyleSpec 返回默认外观
func DefaultStyleSpec() StyleSpec {
	return StyleSpec{
		ContainerColor: "#0095FF",
		ThumbColor:     "#FFFFFF",
		TitleColor:     "#FAFAFA",
		TitleSize:      DefaultTitleSize,
	}
}

// ButtonSpec 演示场景里的一组：说明文字 + 滑动按钮（+ 可选的普通按钮）
type ButtonSpec struct {
	// ID 唯一标识（日志与测试使用）
	ID string `yaml:"id"`
	// Label 按钮上方的说明文字，支持 {reached}、{countdown}、{confirms} 占位符
	Label string `yaml:"label"`
	// Config 滑动按钮配置，在 slide.DefaultConfig() 的基础上解码
	Config slide.Config `yaml:"config"`
	// Style 外观，在 DefaultStyleSpec() 的基础上解码
	Style StyleSpec `yaml:"style"`
	// Countdown 动态重置的倒计时（秒）
	// 大于 0 且 dynamicResetEnabled 时，到达终点后开始倒计时，结束时解除 delaying
	Countdown float64 `yaml:"countdown"`
	// ActionLabel 下方普通按钮的文字，为空表示没有；点击后重新开始倒计时
	ActionLabel string `yaml:"actionLabel"`
}

// UnmarshalYAML 先填充默认值再解码，缺省字段保留默认值
func (b *ButtonSpec) UnmarshalYAML(node *yaml.Node) error {
	type rawButtonSpec ButtonSpec
	raw := rawButtonSpec{
		Config: slide.DefaultConfig(),
		Style:  DefaultStyleSpec(),
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*b = ButtonSpec(raw)
	return nil
}

// HasAction 是否带普通按钮
func (b ButtonSpec) HasAction() bool {
	return b.ActionLabel != ""
}

// DemoConfig 演示场景配置
//
// 配置文件位置: data/demo.yaml（内置），可以用 -config 指定外部文件
type DemoConfig struct {
	// Title 顶部标题
	Title string `yaml:"title"`
	// Buttons 从上到下排列的按钮
	Buttons []ButtonSpec `yaml:"buttons"`
}

// Validate 验证配置有效性
//
// 返回:
//   - error: 没有按钮时返回 ErrNoButtons；按钮配置非法时包装 slide.ErrInvalidConfig
func (c *DemoConfig) Validate() error {
	if len(c.Buttons) == 0 {
		return ErrNoButtons
	}

	seen := make(map[string]bool, len(c.Buttons))
	for i, b := range c.Buttons {
		if b.ID == "" {
			return fmt.Errorf("button %d: id is required", i)
		}
		if seen[b.ID] {
			return fmt.Errorf("button %q: duplicate id", b.ID)
		}
		seen[b.ID] = true

		if err := b.Config.Validate(); err != nil {
			return fmt.Errorf("button %q: %w", b.ID, err)
		}
		if b.Countdown < 0 {
			return fmt.Errorf("button %q: countdown %v is negative", b.ID, b.Countdown)
		}
		if b.Style.TitleSize <= 0 {
			return fmt.Errorf("button %q: titleSize %v must be positive", b.ID, b.Style.TitleSize)
		}
	}
	return nil
}

// ApplyRTL 把宿主布局方向写入每个按钮配置
func (c *DemoConfig) ApplyRTL(rtl bool) {
	for i := range c.Buttons {
		c.Buttons[i].Config.RTL = rtl
	}
}

// LoadDemoConfig 解析并校验 YAML 演示配置
func LoadDemoConfig(data []byte) (*DemoConfig, error) {
	var cfg DemoConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse demo config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid demo config: %w", err)
	}
	return &cfg, nil
}

// LoadDemoConfigFile 从磁盘加载演示配置
func LoadDemoConfigFile(path string) (*DemoConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read demo config: %w", err)
	}
	return LoadDemoConfig(data)
}

// LoadEmbeddedDemoConfig 加载内置演示配置（需要先调用 embedded.Init）
func LoadEmbeddedDemoConfig() (*DemoConfig, error) {
	data, err := embedded.ReadFile(DefaultDemoConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read demo config: %w", err)
	}
	return LoadDemoConfig(data)
}

// FormatLabel 替换说明文字中的占位符
func FormatLabel(label string, reachedEnd bool, countdown int, confirms int) string {
	reached := "START"
	if reachedEnd {
		reached = "END"
	}
	return strings.NewReplacer(
		PlaceholderReached, reached,
		PlaceholderCountdown, fmt.Sprint(countdown),
		PlaceholderConfirms, fmt.Sprint(confirms),
	).Replace(label)
}
