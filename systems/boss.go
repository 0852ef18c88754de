package systems

import (
	"math"

	"github.com/automoto/bossfight/components"
	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/events"
	"github.com/automoto/bossfight/geometry"
	"github.com/automoto/bossfight/systems/factory"
	"github.com/automoto/bossfight/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBoss runs the phase machine and the behavior of the current phase.
func UpdateBoss(ecs *ecs.ECS) {
	dt := clockOf(ecs).Delta
	player, hasPlayer := tags.Player.First(ecs.World)

	tags.Boss.Each(ecs.World, func(e *donburi.Entry) {
		CheckBossPhase(ecs, e)

		boss := components.Boss.Get(e)
		tf := components.Transform.Get(e)

		switch boss.Phase {
		case cfg.Phase1:
			spin := cfg.Boss.TumbleRate * dt
			tf.Rotation = tf.Rotation.Add(mgl64.Vec3{spin, spin, spin})
			if hasPlayer {
				boss.MissileTimer += dt
				if boss.MissileTimer >= cfg.Missile.IntervalPhase1 && alive(player) {
					factory.CreateHomingMissile(ecs, e, player)
					boss.MissileTimer = 0
				}
			}

		case cfg.TransitioningToPhase2:
			boss.TransitionTimer += dt
			if boss.TransitionTimer >= cfg.Boss.TransitionDuration {
				enterPhase2(ecs, boss)
			}

		case cfg.Phase2:
			boss.SpiralOffset += cfg.Boss.SpiralSpeed * dt
			if boss.SpiralOffset > 2*math.Pi {
				boss.SpiralOffset -= 2 * math.Pi
			}
			if hasPlayer {
				chasePlayer(e, tf, player, dt)
				boss.MissileTimer += dt
				if boss.MissileTimer >= cfg.Missile.IntervalPhase2 && alive(player) {
					factory.CreateSpiralMissiles(ecs, e, boss.SpiralOffset)
					boss.MissileTimer = 0
				}
			}

		case cfg.Defeated:
		}

		half := geometry.RotatedHalfExtents(boss.HalfExtents, tf.Rotation)
		placeFootprint(e, tf.Position, math.Max(half.X(), half.Z()))
	})
}

// chasePlayer walks the boss toward the player on the ground plane, turns
// it to face them and launches the player on contact.
func chasePlayer(e *donburi.Entry, tf *components.TransformData, player *donburi.Entry, dt float64) {
	target := components.Transform.Get(player).Position
	to := target.Sub(tf.Position)
	to[1] = 0
	if to.LenSqr() > cfg.Boss.ChaseMinDistance*cfg.Boss.ChaseMinDistance {
		tf.Position = tf.Position.Add(to.Normalize().Mul(cfg.Boss.MoveSpeed * dt))
	}
	tf.Rotation = mgl64.Vec3{0, geometry.Heading(to), 0}

	if geometry.SphereIntersectsBox(PlayerBounds(player), BossBounds(e)) {
		TryLaunchPlayer(player)
	}
}

func enterPhase2(ecs *ecs.ECS, boss *components.BossData) {
	boss.Phase = cfg.Phase2
	boss.Glow = cfg.Boss.Phase2Glow
	boss.MissileTimer = cfg.Missile.IntervalPhase2
	boss.SpiralOffset = 0
	PlaySFX(ecs, cfg.SoundPhase2Transition)
	events.BossPhaseChangedEvent.Publish(ecs.World, events.BossPhaseChanged{Phase: cfg.Phase2})
}

// CheckBossPhase applies the health-driven transitions: into the phase-2
// transition at the threshold ratio and into Defeated at zero health.
// Both only ever move forward.
func CheckBossPhase(ecs *ecs.ECS, e *donburi.Entry) {
	boss := components.Boss.Get(e)
	hp := components.Health.Get(e)
	if boss.Phase == cfg.Defeated {
		return
	}

	if hp.Current <= 0 {
		boss.Phase = cfg.Defeated
		boss.Glow = cfg.Boss.DefeatGlow
		if !boss.DefeatNotified {
			boss.DefeatNotified = true
			events.BossPhaseChangedEvent.Publish(ecs.World, events.BossPhaseChanged{Phase: cfg.Defeated})
			events.BossDefeatedEvent.Publish(ecs.World, events.BossDefeated{})
			PlaySFX(ecs, cfg.SoundBossDefeated)
		}
		return
	}

	if boss.Phase == cfg.Phase1 && hp.Ratio() <= cfg.Boss.Phase2Threshold {
		boss.Phase = cfg.TransitioningToPhase2
		boss.TransitionTimer = 0
		events.BossPhaseChangedEvent.Publish(ecs.World, events.BossPhaseChanged{Phase: cfg.TransitioningToPhase2})
	}
}
