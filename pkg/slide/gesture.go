package slide

// GestureKind 手势事件类型
type GestureKind int

const (
	// GestureBegan 手势开始（按下）
	GestureBegan GestureKind = iota
	// GestureMoved 手势移动
	GestureMoved
	// GestureEnded 手势结束（释放）
	GestureEnded
)

// GestureEvent 水平拖动手势事件
// TranslationX 是相对手势起点的累计水平位移，仅对 GestureMoved 有意义
type GestureEvent struct {
	Kind         GestureKind
	TranslationX float64
}

// GestureSource 手势事件来源
// AppendGestures 将自上次调用以来的事件追加到 dst 并返回（与 ebiten.AppendTouchIDs 同样的约定）
type GestureSource interface {
	AppendGestures(dst []GestureEvent) []GestureEvent
}

// GestureQueue 基于切片的手势队列
// 终端前端和测试用它把事件排队，再由 Button.Drive 统一消费
type GestureQueue struct {
	events []GestureEvent
}

// Begin 追加开始事件
func (q *GestureQueue) Begin() {
	q.events = append(q.events, GestureEvent{Kind: GestureBegan})
}

// Move 追加移动事件
func (q *GestureQueue) Move(translationX float64) {
	q.events = append(q.events, GestureEvent{Kind: GestureMoved, TranslationX: translationX})
}

// End 追加结束事件
func (q *GestureQueue) End() {
	q.events = append(q.events, GestureEvent{Kind: GestureEnded})
}

// Len 返回待消费事件数
func (q *GestureQueue) Len() int {
	return len(q.events)
}

// AppendGestures 实现 GestureSource，取出全部待消费事件
func (q *GestureQueue) AppendGestures(dst []GestureEvent) []GestureEvent {
	dst = append(dst, q.events...)
	q.events = q.events[:0]
	return dst
}
