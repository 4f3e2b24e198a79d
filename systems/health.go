package systems

import (
	"github.com/automoto/fruitfight/components"
	cfg "github.com/automoto/fruitfight/config"
	"github.com/automoto/fruitfight/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHealth applies passive regeneration on a fixed interval.
func UpdateHealth(ecs *ecs.ECS) {
	s := sessionData(ecs.World)
	if s == nil {
		return
	}

	interval := cfg.Health.RegenInterval
	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		hp := components.Health.Get(e)
		if hp.RegenRate <= 0 {
			return
		}
		hp.RegenTimer -= s.Dt
		for hp.RegenTimer <= 0 {
			hp.RegenTimer += interval
			if healed := hp.Regenerate(interval); healed > 0 {
				messages.HealedEvent.Publish(ecs.World, messages.Healed{
					Source: e.Entity(),
					Target: e.Entity(),
					Amount: healed,
				})
			}
		}
	})
}
