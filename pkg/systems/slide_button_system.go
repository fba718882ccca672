package systems

import (
	"log"

	"github.com/decker502/slidebutton/pkg/components"
	"github.com/decker502/slidebutton/pkg/ecs"
	"github.com/decker502/slidebutton/pkg/slide"
	"github.com/decker502/slidebutton/pkg/utils"
)

// SlideButtonSystem 滑动按钮交互系统
// 负责把指针拖动翻译成手势事件，并按帧推进每个按钮的状态机
//
// 职责：
//   - 同步布局宽度到状态机（宽度变化会重新计算可滑动距离）
//   - 按下时命中测试滑块，命中则开始手势
//   - 拖动时投递相对按下点的水平位移
//   - 释放时结束手势
//   - 推进动画、自动重置计时和脉冲
type SlideButtonSystem struct {
	entityManager *ecs.EntityManager
	pointer       utils.PointerReader
	tracker       utils.DragTracker
	// active 正在拖动的实体，0 表示没有
	active ecs.EntityID
}

// NewSlideButtonSystem 创建滑动按钮交互系统
func NewSlideButtonSystem(em *ecs.EntityManager) *SlideButtonSystem {
	return NewSlideButtonSystemWithInput(em, utils.NewEbitenPointer())
}

// NewSlideButtonSystemWithInput 创建带自定义指针输入的交互系统（用于测试）
func NewSlideButtonSystemWithInput(em *ecs.EntityManager, pointer utils.PointerReader) *SlideButtonSystem {
	return &SlideButtonSystem{
		entityManager: em,
		pointer:       pointer,
	}
}

// Update 处理输入并推进所有滑动按钮
func (s *SlideButtonSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.SlideButtonComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		comp, _ := ecs.GetComponent[*components.SlideButtonComponent](s.entityManager, id)
		if comp.Button == nil || comp.Button.Closed() {
			continue
		}
		comp.Button.SetContainerWidth(comp.Width)
	}

	s.handlePointer(entities)

	for _, id := range entities {
		comp, _ := ecs.GetComponent[*components.SlideButtonComponent](s.entityManager, id)
		if comp.Button == nil {
			continue
		}
		comp.Button.Update(deltaTime)
	}
}

// Active 返回正在被拖动的实体
func (s *SlideButtonSystem) Active() (ecs.EntityID, bool) {
	return s.active, s.active != 0
}

func (s *SlideButtonSystem) handlePointer(entities []ecs.EntityID) {
	snap := s.pointer.ReadPointer()
	state := s.tracker.Update(snap)
	x, y := float64(snap.X), float64(snap.Y)

	switch state {
	case utils.DragStateStarted:
		s.begin(entities, x, y)

	case utils.DragStateDragging:
		comp := s.activeComponent()
		if comp == nil {
			return
		}
		// 拖动过程中被禁用或重置：状态机已经离开 Dragging，放弃这次手势
		if comp.Button.State() != slide.StateDragging {
			s.release(comp)
			return
		}
		comp.Button.GestureMove(x - comp.StartX)

	case utils.DragStateEnded:
		comp := s.activeComponent()
		if comp == nil {
			return
		}
		comp.Button.GestureMove(x - comp.StartX)
		comp.Button.GestureEnd()
		s.release(comp)
	}
}

// begin 找到被按下滑块所在的按钮并开始手势
func (s *SlideButtonSystem) begin(entities []ecs.EntityID, x, y float64) {
	for _, id := range entities {
		comp, _ := ecs.GetComponent[*components.SlideButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if comp.Button == nil || comp.Button.Closed() {
			continue
		}

		thumb := comp.Button.View().Part(slide.PartThumbContainer)
		if !thumb.Contains(x-pos.X, y-pos.Y) {
			continue
		}

		comp.Button.GestureStart()
		if comp.Button.State() != slide.StateDragging {
			// 禁用、反向锁定或脉冲中：命中但不接受手势
			return
		}
		comp.Dragging = true
		comp.StartX = x
		s.active = id
		return
	}
}

func (s *SlideButtonSystem) activeComponent() *components.SlideButtonComponent {
	if s.active == 0 {
		return nil
	}
	comp, ok := ecs.GetComponent[*components.SlideButtonComponent](s.entityManager, s.active)
	if !ok || comp.Button == nil || comp.Button.Closed() {
		s.active = 0
		return nil
	}
	return comp
}

func (s *SlideButtonSystem) release(comp *components.SlideButtonComponent) {
	comp.Dragging = false
	comp.StartX = 0
	s.active = 0
}

// Reset 丢弃进行中的拖动（场景重建时调用）
func (s *SlideButtonSystem) Reset() {
	if comp := s.activeComponent(); comp != nil {
		s.release(comp)
	}
	s.active = 0
	s.tracker.Reset()
	log.Printf("[SlideButtonSystem] Pointer tracking reset")
}
