package factory

import (
	"github.com/automoto/fruitfight/abilities"
	"github.com/automoto/fruitfight/archetypes"
	"github.com/automoto/fruitfight/combo"
	"github.com/automoto/fruitfight/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSession(ecs *ecs.ECS, catalog *abilities.Catalog, tracker *combo.Tracker, width, height float64) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Catalog: catalog,
		Combo:   tracker,
		Width:   width,
		Height:  height,
	})
	return session
}
