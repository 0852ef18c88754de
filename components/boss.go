package components

import (
	cfg "github.com/automoto/bossfight/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type BossData struct {
	Phase           cfg.BossPhase
	TransitionTimer float64
	SpiralOffset    float64
	MissileTimer    float64
	HalfExtents     mgl64.Vec3 // unrotated box half size
	Glow            float64
	DefeatNotified  bool
}

var Boss = donburi.NewComponentType[BossData]()
