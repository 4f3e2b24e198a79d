package systems

import "github.com/yohamta/donburi/ecs"

// UpdateCombo advances the combo decay countdown.
func UpdateCombo(ecs *ecs.ECS) {
	s := sessionData(ecs.World)
	if s == nil || s.Combo == nil {
		return
	}
	s.Combo.Update(s.Dt)
}
