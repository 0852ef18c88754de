package factory

import (
	"math"

	"github.com/automoto/bossfight/archetypes"
	"github.com/automoto/bossfight/components"
	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHomingMissile spawns a phase-1 missile above the boss that chases
// target.
func CreateHomingMissile(ecs *ecs.ECS, boss, target *donburi.Entry) *donburi.Entry {
	pos := components.Transform.Get(boss).Position.Add(mgl64.Vec3{0, cfg.Missile.HomingSpawnOffsetY, 0})
	return createMissile(ecs, pos, components.MissileData{
		Homing: true,
		Target: target.Entity(),
		Damage: cfg.Missile.DamagePhase1,
		Color:  cfg.Missile.ColorPhase1,
	})
}

// CreateSpiralMissiles spawns one radial ring of phase-2 missiles around
// the boss, rotated by offset.
func CreateSpiralMissiles(ecs *ecs.ECS, boss *donburi.Entry, offset float64) []*donburi.Entry {
	center := components.Transform.Get(boss).Position
	ground := arenaOf(ecs).GroundLevel
	n := cfg.Missile.BurstCount

	out := make([]*donburi.Entry, 0, n)
	for i := 0; i < n; i++ {
		angle := float64(i)/float64(n)*2*math.Pi + offset
		dir := mgl64.Vec3{math.Cos(angle), 0, math.Sin(angle)}
		pos := mgl64.Vec3{center.X(), ground + cfg.Missile.SpiralSpawnHeight, center.Z()}.
			Add(dir.Mul(cfg.Missile.SpiralSpawnOffset))
		out = append(out, createMissile(ecs, pos, components.MissileData{
			Direction: dir,
			Damage:    cfg.Missile.DamagePhase2,
			Color:     cfg.Missile.ColorPhase2,
		}))
	}
	return out
}

func createMissile(ecs *ecs.ECS, pos mgl64.Vec3, data components.MissileData) *donburi.Entry {
	data.Speed = cfg.Missile.Speed
	data.Radius = cfg.Missile.Radius

	missile := archetypes.Missile.Spawn(ecs)
	obj := components.NewFootprint(pos, data.Radius, tags.ResolvMissile)
	obj.Data = missile
	components.Object.SetValue(missile, components.ObjectData{Object: obj})
	components.Transform.SetValue(missile, components.TransformData{Position: pos})
	components.Missile.SetValue(missile, data)
	components.Lifetime.SetValue(missile, newLifetime(components.Now(ecs.World), cfg.Missile.Lifetime, nil, nil))

	addToSpace(ecs, obj)
	return missile
}
