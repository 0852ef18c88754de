package systems

import (
	"github.com/automoto/bossfight/components"
	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/geometry"
	"github.com/automoto/bossfight/systems/factory"
	"github.com/automoto/bossfight/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func clockOf(ecs *ecs.ECS) *components.ClockData {
	return components.Clock.Get(components.Clock.MustFirst(ecs.World))
}

func inputOf(ecs *ecs.ECS) *components.InputSnapshot {
	if e, ok := components.Input.First(ecs.World); ok {
		return components.Input.Get(e)
	}
	return &components.InputSnapshot{}
}

func arenaOf(ecs *ecs.ECS) *components.ArenaData {
	if e, ok := components.Arena.First(ecs.World); ok {
		return components.Arena.Get(e)
	}
	return factory.DefaultArena()
}

// alive reports whether the entry still exists and has health left.
func alive(e *donburi.Entry) bool {
	return e != nil && e.Valid() && components.Health.Get(e).Current > 0
}

// liveBoss returns the boss while it can still take damage.
func liveBoss(ecs *ecs.ECS) (*donburi.Entry, bool) {
	boss, ok := tags.Boss.First(ecs.World)
	if !ok || components.Boss.Get(boss).Phase == cfg.Defeated || !alive(boss) {
		return nil, false
	}
	return boss, true
}

func bossDefeated(ecs *ecs.ECS) bool {
	boss, ok := tags.Boss.First(ecs.World)
	return ok && components.Boss.Get(boss).Phase == cfg.Defeated
}

// BossBounds is the world box enclosing the boss at its current rotation.
func BossBounds(boss *donburi.Entry) geometry.AABB {
	b := components.Boss.Get(boss)
	tf := components.Transform.Get(boss)
	return geometry.AABBFromCenter(tf.Position, geometry.RotatedHalfExtents(b.HalfExtents, tf.Rotation))
}

// PlayerBounds is the player's hit sphere.
func PlayerBounds(player *donburi.Entry) geometry.Sphere {
	c, r := factory.PlayerSphere(components.Transform.Get(player).Position)
	return geometry.Sphere{Center: c, Radius: r}
}

// hitsBoss runs the broadphase and then the exact sphere test against the
// boss box.
func hitsBoss(obj *components.ObjectData, s geometry.Sphere, box geometry.AABB) bool {
	if obj.Check(0, 0, tags.ResolvBoss) == nil {
		return false
	}
	return geometry.SphereIntersectsBox(s, box)
}

func placeFootprint(e *donburi.Entry, center mgl64.Vec3, half float64) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object != nil {
		obj.Place(center, half)
	}
}

// Dispose removes a transient entity from the broadphase and the world.
func Dispose(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			obj := components.Object.Get(e)
			if obj.Object != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
	}
	ecs.World.Remove(e.Entity())
}
