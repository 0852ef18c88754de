package systems

import (
	"github.com/automoto/bossfight/components"
	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/geometry"
	"github.com/automoto/bossfight/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMissiles moves every missile and resolves hits against the player.
// Homing missiles whose target is gone are removed at once.
func UpdateMissiles(ecs *ecs.ECS) {
	clock := clockOf(ecs)
	now, dt := clock.Elapsed, clock.Delta
	player, hasPlayer := tags.Player.First(ecs.World)
	bossInPhase2 := false
	if boss, ok := tags.Boss.First(ecs.World); ok {
		bossInPhase2 = components.Boss.Get(boss).Phase == cfg.Phase2
	}

	var toRemove []*donburi.Entry

	tags.Missile.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Missile.Get(e)
		tf := components.Transform.Get(e)
		components.Lifetime.Get(e).Advance(now)

		if m.Homing {
			if !ecs.World.Valid(m.Target) {
				toRemove = append(toRemove, e)
				return
			}
			target := ecs.World.Entry(m.Target)
			aim := components.Transform.Get(target).Position.Add(mgl64.Vec3{0, cfg.Player.CollisionOffsetY, 0})
			m.Direction = geometry.SafeNormalize(aim.Sub(tf.Position))
		}
		tf.Position = tf.Position.Add(m.Direction.Mul(m.Speed * dt))
		placeFootprint(e, tf.Position, m.Radius)

		if !hasPlayer || !alive(player) {
			return
		}
		obj := components.Object.Get(e)
		if obj.Check(0, 0, tags.ResolvPlayer) == nil {
			return
		}
		if !geometry.SphereIntersectsSphere(geometry.Sphere{Center: tf.Position, Radius: m.Radius}, PlayerBounds(player)) {
			return
		}

		components.QueueDamage(player, m.Damage, components.DamageMissile)
		PlaySFX(ecs, cfg.SoundMissileHit)
		if bossInPhase2 {
			TryLaunchPlayer(player)
		}
		toRemove = append(toRemove, e)
	})

	for _, e := range toRemove {
		Dispose(ecs, e)
	}
}
