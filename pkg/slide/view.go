package slide

// PartID 视图部件的稳定标识，供布局/样式断言使用
type PartID string

const (
	PartTitleContainer PartID = "TitleContainer"
	PartTitle          PartID = "Title"
	PartUnderlay       PartID = "Underlay"
	PartThumbContainer PartID = "ThumbContainer"
	PartIconContainer  PartID = "IconContainer"
)

// AllParts 按绘制顺序排列的全部部件
var AllParts = []PartID{
	PartTitleContainer,
	PartTitle,
	PartUnderlay,
	PartThumbContainer,
	PartIconContainer,
}

// 视觉常量
const (
	TitleMaxOpacity       = 0.99
	DisabledOpacity       = 0.55
	titleMaxWidthFraction = 0.5
)

// Rect 相对容器左上角的矩形
type Rect struct {
	X, Y, W, H float64
}

// Contains 点是否在矩形内
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// View 按钮的派生视图属性
//
// 完全由 Offset、EndReached、脉冲值和配置/几何推导，渲染层只读。
// View 是可比较的值类型，Button 仅在其变化时通知订阅者。
type View struct {
	Title string
	State State

	Offset         float64
	ScrollDistance float64
	SlideThreshold float64

	EndReached      bool
	Pulsing         bool
	Disabled        bool
	GestureDisabled bool
	RTL             bool

	// 静态尺寸
	ContainerWidth float64
	Height         float64
	ChildHeight    float64
	ThumbWidth     float64
	Padding        float64
	BorderWidth    float64
	Radius         float64
	ChildRadius    float64

	// 派生属性
	UnderlayWidth    float64
	TitleOpacity     float64
	ThumbOpacity     float64
	ContainerOpacity float64
	IconScaleX       float64
}

// UnderlayWidth 底衬宽度：随拖动距离展开
func UnderlayWidth(thumbWidth, borderWidth, offset, direction float64) float64 {
	return thumbWidth - 2*borderWidth + offset*direction
}

// TitleOpacity 标题不透明度：offset 从 [0, scrollDistance] 映射到 [0.99, 0]
func TitleOpacity(offset, scrollDistance float64) float64 {
	return Interpolate(offset, 0, scrollDistance, TitleMaxOpacity, 0)
}

// Part 返回指定部件的矩形
func (v View) Part(id PartID) Rect {
	childY := (v.Height - v.ChildHeight) / 2
	inset := v.BorderWidth + v.Padding

	switch id {
	case PartTitleContainer:
		w := v.ContainerWidth - 2*inset
		if w < 0 {
			w = 0
		}
		return Rect{X: inset, Y: childY, W: w, H: v.ChildHeight}

	case PartTitle:
		c := v.Part(PartTitleContainer)
		w := c.W * titleMaxWidthFraction
		return Rect{X: c.X + (c.W-w)/2, Y: c.Y, W: w, H: c.H}

	case PartUnderlay:
		w := v.UnderlayWidth
		if w < 0 {
			w = 0
		}
		h := v.ChildHeight - 2*v.BorderWidth
		x := inset
		if v.RTL {
			x = v.ContainerWidth - inset - w
		}
		return Rect{X: x, Y: (v.Height - h) / 2, W: w, H: h}

	case PartThumbContainer:
		x := inset + v.Offset
		if v.RTL {
			x = v.ContainerWidth - inset - v.ThumbWidth + v.Offset
		}
		return Rect{X: x, Y: childY, W: v.ThumbWidth, H: v.ChildHeight}

	case PartIconContainer:
		t := v.Part(PartThumbContainer)
		return Rect{X: t.X + (t.W-v.ChildHeight)/2, Y: t.Y, W: v.ChildHeight, H: v.ChildHeight}
	}
	return Rect{}
}

// Parts 返回全部部件矩形
func (v View) Parts() map[PartID]Rect {
	parts := make(map[PartID]Rect, len(AllParts))
	for _, id := range AllParts {
		parts[id] = v.Part(id)
	}
	return parts
}
