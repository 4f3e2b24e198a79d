package components

import "github.com/yohamta/donburi"

// DamageImmunityData blocks contact damage until Remaining runs out.
type DamageImmunityData struct {
	Remaining float64
}

var DamageImmunity = donburi.NewComponentType[DamageImmunityData]()
