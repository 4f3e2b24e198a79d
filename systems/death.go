package systems

import (
	"github.com/automoto/fruitfight/components"
	"github.com/automoto/fruitfight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths removes hostiles that died this tick. The player keeps its
// Death marker so the host can decide what a defeat means.
func UpdateDeaths(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(tags.Player) {
			return
		}
		toRemove = append(toRemove, e)
	})

	for _, e := range toRemove {
		destroy(ecs, e)
	}
}
