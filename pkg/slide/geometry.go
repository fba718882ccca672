// Package slide 实现"滑动确认"按钮的核心逻辑
//
// 包含几何计算、拖拽状态机、弹簧回弹、自动重置、脉冲动画以及派生视图属性。
// 本包不依赖任何渲染框架：Ebitengine 和终端前端都通过 Button 的公开方法驱动它，
// 并通过 View 读取渲染所需的全部数值。
package slide

import "math"

// Geometry 轨道几何参数
// 由容器测量宽度、内边距、滑块宽度、边框宽度和布局方向共同决定可拖动范围
type Geometry struct {
	ContainerWidth float64 // 容器测量宽度（首次布局前为 0）
	Padding        float64 // 容器内边距
	ThumbWidth     float64 // 滑块宽度
	BorderWidth    float64 // 容器边框宽度
	RTL            bool    // 是否从右到左布局
}

// Direction 返回布局方向系数：LTR 为 1，RTL 为 -1
func (g Geometry) Direction() float64 {
	if g.RTL {
		return -1
	}
	return 1
}

// ScrollDistance 计算滑块可拖动的距离（带符号）
//
// 公式：(containerWidth - 2*padding - thumbWidth - 2*borderWidth) * direction
//
// 容器尚未测量或空间不足时返回 0，调用方据此判断"未布局"状态。
func (g Geometry) ScrollDistance() float64 {
	if g.ContainerWidth <= 0 {
		return 0
	}
	d := g.ContainerWidth - 2*g.Padding - g.ThumbWidth - 2*g.BorderWidth
	if d <= 0 {
		return 0
	}
	return d * g.Direction()
}

// SlideThreshold 计算完成阈值对应的偏移量
// percent 为完成百分比（0~100）
func (g Geometry) SlideThreshold(percent float64) float64 {
	return g.ScrollDistance() * percent / 100
}

// Measured 容器是否已经有可用的拖动范围
func (g Geometry) Measured() bool {
	return g.ScrollDistance() != 0
}

// Clamp 将偏移量限制在 [0, scrollDistance]（RTL 时为 [scrollDistance, 0]）
func (g Geometry) Clamp(offset float64) float64 {
	lo, hi := 0.0, g.ScrollDistance()
	if hi < lo {
		lo, hi = hi, lo
	}
	return math.Min(math.Max(offset, lo), hi)
}

// Reached 判断偏移量是否越过阈值（朝终点方向）
// 比较是严格的：恰好等于阈值视为到达终点
func (g Geometry) Reached(offset, threshold float64) bool {
	return math.Abs(offset) >= math.Abs(threshold)
}
