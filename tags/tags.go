package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Boss         = donburi.NewTag().SetName("Boss")
	Slash        = donburi.NewTag().SetName("Slash")
	BurstSlash   = donburi.NewTag().SetName("BurstSlash")
	Missile      = donburi.NewTag().SetName("Missile")
	TrailSegment = donburi.NewTag().SetName("TrailSegment")
	Explosion    = donburi.NewTag().SetName("Explosion")
)

// Resolv tags for the XZ broadphase
const (
	ResolvPlayer     = "player"
	ResolvBoss       = "boss"
	ResolvSlash      = "slash"
	ResolvBurstSlash = "burst-slash"
	ResolvMissile    = "missile"
	ResolvExplosion  = "explosion"
)
