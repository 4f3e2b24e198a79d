package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Friendly   = donburi.NewTag().SetName("Friendly")
	Hostile    = donburi.NewTag().SetName("Hostile")
	Projectile = donburi.NewTag().SetName("Projectile")
	AreaEffect = donburi.NewTag().SetName("AreaEffect")
	Summon     = donburi.NewTag().SetName("Summon")
)

// Resolv tags for collision queries
const (
	ResolvFriendly   = "Friendly"
	ResolvHostile    = "Hostile"
	ResolvProjectile = "Projectile"
	ResolvSummon     = "Summon"
)
