package components

import (
	cfg "github.com/automoto/bossfight/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ComboData tracks scheduled slashes with absolute timestamps.
type ComboData struct {
	Index   int     // index of the most recently spawned slash
	NextAt  float64 // when slash Index+1 is due
	ResetAt float64 // when the combo returns to idle after its last slash
}

type PlayerData struct {
	Motion    cfg.MotionState
	Attack    cfg.AttackState
	Combo     ComboData
	VelocityY float64
	// JumpWasHeld is last frame's jump key; a jump needs a fresh press.
	JumpWasHeld bool

	SpawnPoint mgl64.Vec3
	PeakHeight float64

	DescentImmune  bool
	PostLandImmune bool
	PostLandTimer  float64 // seconds of post-land immunity left

	SinceLaunch float64
	Launched    bool // airborne from a launch; the arc charges no fall damage

	TrailTimer    float64
	TrailPoint    mgl64.Vec3
	HasTrailPoint bool

	DefeatNotified bool
}

// Immune reports whether either slam immunity is active.
func (p *PlayerData) Immune() bool {
	return p.DescentImmune || p.PostLandImmune
}

var Player = donburi.NewComponentType[PlayerData]()

// BurstData is the player's elemental burst meter.
type BurstData struct {
	Charge     int
	Ready      bool
	Activating bool
	PoweredUp  bool
	Active     donburi.Entity // burst slash while Activating
}

var Burst = donburi.NewComponentType[BurstData]()
