package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// SlashData is one melee arc of a combo.
type SlashData struct {
	ComboIndex int
	Damage     int
	Radius     float64
	Powered    bool
	Color      uint32
	HasHitBoss bool
}

var Slash = donburi.NewComponentType[SlashData]()

// BurstSlashData is the single large arc spawned by an elemental burst.
type BurstSlashData struct {
	Damage     int
	Radius     float64
	Color      uint32
	HasHitBoss bool
}

var BurstSlash = donburi.NewComponentType[BurstSlashData]()

// MissileData is a boss projectile. Homing missiles chase Target; the rest
// travel along Direction.
type MissileData struct {
	Homing    bool
	Target    donburi.Entity
	Direction mgl64.Vec3
	Speed     float64
	Damage    int
	Radius    float64
	Color     uint32
}

var Missile = donburi.NewComponentType[MissileData]()

// TrailData is one line segment left behind by an aerial slam.
type TrailData struct {
	From mgl64.Vec3
	To   mgl64.Vec3
}

var Trail = donburi.NewComponentType[TrailData]()

// ExplosionData is the expanding sphere spawned by a slam landing.
type ExplosionData struct {
	MaxRadius  float64
	Radius     float64
	Damage     int
	HasHitBoss bool
}

var Explosion = donburi.NewComponentType[ExplosionData]()
