package slide

import (
	"errors"
	"fmt"
)

// 默认配置常量
const (
	DefaultHeight            = 56.0
	DefaultPadding           = 5.0
	DefaultTitle             = "Slide to confirm"
	DefaultCompleteThreshold = 70.0
	DefaultAutoResetDelay    = 1080 // 毫秒
	DefaultAnimationDuration = 180  // 毫秒
)

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("invalid slide button config")

// Config 滑动按钮配置
//
// 构造时校验一次，之后按只读输入处理；运行期修改需要通过 Button.SetConfig 整体替换。
// YAML 解码应在 DefaultConfig() 的基础上进行，这样缺省字段会保留默认值。
type Config struct {
	// 尺寸
	Width        float64  `yaml:"width"`        // 容器宽度，0 表示由宿主布局决定
	Height       float64  `yaml:"height"`       // 容器高度
	BorderRadius *float64 `yaml:"borderRadius"` // 圆角半径，nil 表示 height/2
	Padding      float64  `yaml:"padding"`      // 内边距
	BorderWidth  float64  `yaml:"borderWidth"`  // 容器边框宽度
	ThumbWidth   float64  `yaml:"thumbWidth"`   // 滑块宽度，0 表示 height - 2*padding

	// 文字
	Title string `yaml:"title"`

	// 行为
	CompleteThreshold   float64 `yaml:"completeThreshold"`   // 完成阈值百分比 0~100
	Disabled            bool    `yaml:"disabled"`            // 禁用手势
	ReverseSlideEnabled bool    `yaml:"reverseSlideEnabled"` // 到达终点后是否允许反向拖回
	AutoReset           bool    `yaml:"autoReset"`           // 到达终点后自动重置
	AutoResetDelay      int     `yaml:"autoResetDelay"`      // 自动重置延迟（毫秒）

	// 脉冲动画
	Animation         bool `yaml:"animation"`         // 到达终点后是否闪烁滑块
	AnimationDuration int  `yaml:"animationDuration"` // 单次淡入/淡出时长（毫秒）

	// 动态重置：由外部 delaying 标志控制何时重置
	DynamicResetEnabled  bool `yaml:"dynamicResetEnabled"`
	DynamicResetDelaying bool `yaml:"dynamicResetDelaying"`

	// RTL 布局方向，通常由宿主环境提供
	RTL bool `yaml:"rtl"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Height:              DefaultHeight,
		Padding:             DefaultPadding,
		Title:               DefaultTitle,
		CompleteThreshold:   DefaultCompleteThreshold,
		ReverseSlideEnabled: true,
		AutoResetDelay:      DefaultAutoResetDelay,
		AnimationDuration:   DefaultAnimationDuration,
	}
}

// Radius 返回容器圆角半径
func (c Config) Radius() float64 {
	if c.BorderRadius != nil {
		return *c.BorderRadius
	}
	return c.Height / 2
}

// ChildRadius 返回滑块、底衬和标题容器的圆角半径
func (c Config) ChildRadius() float64 {
	r := c.Radius() - c.Padding
	if r < 0 {
		return 0
	}
	return r
}

// ChildHeight 返回内部元素（滑块、标题容器）的高度
func (c Config) ChildHeight() float64 {
	return c.Height - 2*c.Padding
}

// ResolvedThumbWidth 返回实际滑块宽度
func (c Config) ResolvedThumbWidth() float64 {
	if c.ThumbWidth > 0 {
		return c.ThumbWidth
	}
	return c.ChildHeight()
}

// Geometry 根据配置构建几何参数
// containerWidth 为宿主测量到的宽度；配置了固定 Width 时优先使用配置值
func (c Config) Geometry(containerWidth float64) Geometry {
	if c.Width > 0 {
		containerWidth = c.Width
	}
	return Geometry{
		ContainerWidth: containerWidth,
		Padding:        c.Padding,
		ThumbWidth:     c.ResolvedThumbWidth(),
		BorderWidth:    c.BorderWidth,
		RTL:            c.RTL,
	}
}

func (c Config) autoResetDelaySeconds() float64 {
	return float64(c.AutoResetDelay) / 1000
}

func (c Config) animationDurationSeconds() float64 {
	return float64(c.AnimationDuration) / 1000
}

// Validate 校验配置
//
// 返回：
//   - error: 包装 ErrInvalidConfig 的错误，可用 errors.Is 判断
func (c Config) Validate() error {
	switch {
	case c.Width < 0:
		return fmt.Errorf("%w: width %v is negative", ErrInvalidConfig, c.Width)
	case c.Height <= 0:
		return fmt.Errorf("%w: height %v must be positive", ErrInvalidConfig, c.Height)
	case c.Padding < 0:
		return fmt.Errorf("%w: padding %v is negative", ErrInvalidConfig, c.Padding)
	case c.BorderWidth < 0:
		return fmt.Errorf("%w: borderWidth %v is negative", ErrInvalidConfig, c.BorderWidth)
	case c.ThumbWidth < 0:
		return fmt.Errorf("%w: thumbWidth %v is negative", ErrInvalidConfig, c.ThumbWidth)
	case c.BorderRadius != nil && *c.BorderRadius < 0:
		return fmt.Errorf("%w: borderRadius %v is negative", ErrInvalidConfig, *c.BorderRadius)
	case c.ChildHeight() <= 0:
		return fmt.Errorf("%w: padding %v leaves no room inside height %v", ErrInvalidConfig, c.Padding, c.Height)
	case c.CompleteThreshold < 0 || c.CompleteThreshold > 100:
		return fmt.Errorf("%w: completeThreshold %v out of range [0, 100]", ErrInvalidConfig, c.CompleteThreshold)
	case c.AutoResetDelay < 0:
		return fmt.Errorf("%w: autoResetDelay %d is negative", ErrInvalidConfig, c.AutoResetDelay)
	case c.AnimationDuration < 0:
		return fmt.Errorf("%w: animationDuration %d is negative", ErrInvalidConfig, c.AnimationDuration)
	}
	return nil
}
