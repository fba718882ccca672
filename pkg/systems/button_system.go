package systems

import (
	"github.com/decker502/slidebutton/pkg/components"
	"github.com/decker502/slidebutton/pkg/ecs"
	"github.com/decker502/slidebutton/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的指针悬停、按下和点击
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 按下时显示按下效果（UIClicked）
//   - 在按钮内按下并在按钮内释放时触发 OnClick
//   - 根据 Enabled 状态决定是否响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	pointer       utils.PointerReader
	tracker       utils.DragTracker
	// pressed 按下时命中的按钮，0 表示没有
	pressed ecs.EntityID
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return NewButtonSystemWithInput(em, utils.NewEbitenPointer())
}

// NewButtonSystemWithInput 创建带自定义指针输入的按钮交互系统（用于测试）
func NewButtonSystemWithInput(em *ecs.EntityManager, pointer utils.PointerReader) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		pointer:       pointer,
	}
}

// Update 更新按钮交互状态
func (s *ButtonSystem) Update(deltaTime float64) {
	snap := s.pointer.ReadPointer()
	drag := s.tracker.Update(snap)
	x, y := float64(snap.X), float64(snap.Y)

	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			if s.pressed == entityID {
				s.pressed = 0
			}
			continue
		}

		isHovered := s.isPointerInButton(x, y, pos.X, pos.Y, button.Width, button.Height)

		switch {
		case drag == utils.DragStateStarted && isHovered:
			s.pressed = entityID
			button.State = components.UIClicked

		case drag == utils.DragStateDragging && s.pressed == entityID:
			// 按住后移出按钮：恢复外观，回到按钮内时再次显示按下
			if isHovered {
				button.State = components.UIClicked
			} else {
				button.State = components.UINormal
			}

		case drag == utils.DragStateEnded && s.pressed == entityID:
			s.pressed = 0
			if isHovered {
				// 释放瞬间触发回调
				if button.OnClick != nil {
					button.OnClick()
				}
				button.State = components.UIHovered
			} else {
				button.State = components.UINormal
			}

		case isHovered && !snap.IsTouch && drag != utils.DragStateDragging:
			button.State = components.UIHovered

		default:
			button.State = components.UINormal
		}
	}

	if drag == utils.DragStateEnded || drag == utils.DragStateNone {
		s.pressed = 0
	}
}

// isPointerInButton 检测指针是否在按钮范围内
func (s *ButtonSystem) isPointerInButton(px, py, buttonX, buttonY, buttonWidth, buttonHeight float64) bool {
	return px >= buttonX &&
		px <= buttonX+buttonWidth &&
		py >= buttonY &&
		py <= buttonY+buttonHeight
}
