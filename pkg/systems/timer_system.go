package systems

import (
	"log"

	"github.com/decker502/slidebutton/pkg/components"
	"github.com/decker502/slidebutton/pkg/ecs"
)

// TimerSystem 倒计时系统
// 推进所有运行中的 TimerComponent，剩余整秒数变化时调用 OnTick，到期时调用一次 OnExpire
type TimerSystem struct {
	entityManager *ecs.EntityManager
}

// NewTimerSystem 创建倒计时系统
func NewTimerSystem(em *ecs.EntityManager) *TimerSystem {
	return &TimerSystem{entityManager: em}
}

// Update 推进计时器
func (s *TimerSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.TimerComponent](s.entityManager) {
		timer, _ := ecs.GetComponent[*components.TimerComponent](s.entityManager, id)
		if !timer.Running {
			continue
		}

		timer.CurrentTime += deltaTime
		timer.SyncTick()

		if timer.CurrentTime >= timer.TargetTime {
			timer.CurrentTime = timer.TargetTime
			timer.Running = false
			timer.IsReady = true
			log.Printf("[TimerSystem] Timer %q expired", timer.Name)
			if timer.OnExpire != nil {
				timer.OnExpire()
			}
		}
	}
}
