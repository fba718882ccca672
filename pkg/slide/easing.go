package slide

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 参考：https://easings.net/

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseInOutCubic 三次方缓入缓出
// 特点：开始慢，中间快，结束慢（脉冲动画默认使用）
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Interpolate 将 x 从 [in0, in1] 线性映射到 [out0, out1]，结果限制在输出区间内
// 输入区间退化（in0 == in1）时返回 out0
func Interpolate(x, in0, in1, out0, out1 float64) float64 {
	if in0 == in1 {
		return out0
	}
	t := (x - in0) / (in1 - in0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Lerp(out0, out1, t)
}
