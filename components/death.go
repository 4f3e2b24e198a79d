package components

import "github.com/yohamta/donburi"

// DeathData marks an actor whose health reached zero. It is attached exactly
// once; its presence is what keeps ActorDied from firing twice.
type DeathData struct {
	Killer donburi.Entity
}

var Death = donburi.NewComponentType[DeathData]()
