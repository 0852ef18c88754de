package systems

import (
	"github.com/automoto/bossfight/components"
	"github.com/automoto/bossfight/geometry"
	"github.com/automoto/bossfight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSlashes fades combo slashes and lets each one damage the boss once.
func UpdateSlashes(ecs *ecs.ECS) {
	now := clockOf(ecs).Elapsed
	boss, bossAlive := liveBoss(ecs)
	var box geometry.AABB
	if bossAlive {
		box = BossBounds(boss)
	}

	tags.Slash.Each(ecs.World, func(e *donburi.Entry) {
		life := components.Lifetime.Get(e)
		life.Advance(now)

		slash := components.Slash.Get(e)
		if slash.HasHitBoss || !bossAlive || life.Expired(now) {
			return
		}
		sphere := geometry.Sphere{Center: components.Transform.Get(e).Position, Radius: slash.Radius}
		if hitsBoss(components.Object.Get(e), sphere, box) {
			slash.HasHitBoss = true
			components.QueueDamage(boss, slash.Damage, components.DamageSlash)
		}
	})
}

// UpdateBurstSlash fades the burst slash, resolves its single hit and ends
// the burst activation once the slash has run its course.
func UpdateBurstSlash(ecs *ecs.ECS) {
	now := clockOf(ecs).Elapsed
	boss, bossAlive := liveBoss(ecs)
	var box geometry.AABB
	if bossAlive {
		box = BossBounds(boss)
	}

	tags.BurstSlash.Each(ecs.World, func(e *donburi.Entry) {
		life := components.Lifetime.Get(e)
		life.Advance(now)

		burst := components.BurstSlash.Get(e)
		if burst.HasHitBoss || !bossAlive || life.Expired(now) {
			return
		}
		sphere := geometry.Sphere{Center: components.Transform.Get(e).Position, Radius: burst.Radius}
		if hitsBoss(components.Object.Get(e), sphere, box) {
			burst.HasHitBoss = true
			components.QueueDamage(boss, burst.Damage, components.DamageBurstSlash)
		}
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		burst := components.Burst.Get(e)
		if !burst.Activating {
			return
		}
		if !ecs.World.Valid(burst.Active) {
			burst.Activating = false
			return
		}
		active := ecs.World.Entry(burst.Active)
		if components.Lifetime.Get(active).Expired(now) {
			burst.Activating = false
		}
	})
}

// UpdateTrails fades slam trail segments.
func UpdateTrails(ecs *ecs.ECS) {
	now := clockOf(ecs).Elapsed
	tags.TrailSegment.Each(ecs.World, func(e *donburi.Entry) {
		components.Lifetime.Get(e).Advance(now)
	})
}

// UpdateExplosion grows the slam shockwave and lets it damage the boss once.
func UpdateExplosion(ecs *ecs.ECS) {
	now := clockOf(ecs).Elapsed
	boss, bossAlive := liveBoss(ecs)
	var box geometry.AABB
	if bossAlive {
		box = BossBounds(boss)
	}

	tags.Explosion.Each(ecs.World, func(e *donburi.Entry) {
		life := components.Lifetime.Get(e)
		life.Advance(now)

		explosion := components.Explosion.Get(e)
		explosion.Radius = life.Scale
		if explosion.HasHitBoss || !bossAlive || life.Expired(now) {
			return
		}
		sphere := geometry.Sphere{Center: components.Transform.Get(e).Position, Radius: explosion.Radius}
		if hitsBoss(components.Object.Get(e), sphere, box) {
			explosion.HasHitBoss = true
			components.QueueDamage(boss, explosion.Damage, components.DamageExplosion)
		}
	})
}

// UpdateLifetimes disposes every transient entity whose age reached its
// lifetime.
func UpdateLifetimes(ecs *ecs.ECS) {
	now := clockOf(ecs).Elapsed
	var toRemove []*donburi.Entry
	components.Lifetime.Each(ecs.World, func(e *donburi.Entry) {
		if components.Lifetime.Get(e).Expired(now) {
			toRemove = append(toRemove, e)
		}
	})
	for _, e := range toRemove {
		Dispose(ecs, e)
	}
}
