// Package events defines the notifications the simulation publishes for the
// HUD, the audio player and logging. Systems publish them while a frame runs
// and they are delivered together when the frame is flushed.
package events

import (
	cfg "github.com/automoto/bossfight/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
)

// Combatant names the side whose health changed.
type Combatant int

const (
	CombatantPlayer Combatant = iota
	CombatantBoss
)

func (c Combatant) String() string {
	switch c {
	case CombatantPlayer:
		return "player"
	case CombatantBoss:
		return "boss"
	}
	return "unknown"
}

type HealthChanged struct {
	Who     Combatant
	Current int
	Max     int
}

type BurstChanged struct {
	Percent int
	Ready   bool
}

type BossPhaseChanged struct {
	Phase cfg.BossPhase
}

type BossDefeated struct{}

type PlayerDefeated struct{}

// Cue asks the audio layer to play a sound.
type Cue struct {
	ID cfg.SoundID
}

type Teleported struct {
	To mgl64.Vec3
}

type SlamLanded struct {
	At mgl64.Vec3
}

var (
	HealthChangedEvent    = devents.NewEventType[HealthChanged]()
	BurstChangedEvent     = devents.NewEventType[BurstChanged]()
	BossPhaseChangedEvent = devents.NewEventType[BossPhaseChanged]()
	BossDefeatedEvent     = devents.NewEventType[BossDefeated]()
	PlayerDefeatedEvent   = devents.NewEventType[PlayerDefeated]()
	CueEvent              = devents.NewEventType[Cue]()
	TeleportedEvent       = devents.NewEventType[Teleported]()
	SlamLandedEvent       = devents.NewEventType[SlamLanded]()
)

// Flush delivers every queued event to its subscribers.
func Flush(w donburi.World) {
	devents.ProcessAllEvents(w)
}
