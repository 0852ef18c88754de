package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ArenaData describes the platform loaded for this encounter (singleton).
type ArenaData struct {
	Name        string
	GroundLevel float64
	HalfSize    float64
	PlayerSpawn mgl64.Vec3
	BossSpawn   mgl64.Vec3
}

// Contains reports whether p is above the platform footprint.
func (a *ArenaData) Contains(p mgl64.Vec3) bool {
	return p.X() <= a.HalfSize && p.X() >= -a.HalfSize &&
		p.Z() <= a.HalfSize && p.Z() >= -a.HalfSize
}

var Arena = donburi.NewComponentType[ArenaData]()
