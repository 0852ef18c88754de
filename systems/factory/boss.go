package factory

import (
	"github.com/automoto/bossfight/archetypes"
	"github.com/automoto/bossfight/components"
	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateBoss(ecs *ecs.ECS, spawn mgl64.Vec3) *donburi.Entry {
	boss := archetypes.Boss.Spawn(ecs)

	half := cfg.Boss.Size / 2
	obj := components.NewFootprint(spawn, half, tags.ResolvBoss)
	obj.Data = boss
	components.Object.SetValue(boss, components.ObjectData{Object: obj})
	components.Transform.SetValue(boss, components.TransformData{Position: spawn})
	components.Boss.SetValue(boss, components.BossData{
		Phase:        cfg.Phase1,
		HalfExtents:  mgl64.Vec3{half, half, half},
		MissileTimer: cfg.Missile.IntervalPhase1,
	})
	components.Health.SetValue(boss, components.HealthData{
		Current: cfg.Boss.MaxHealth,
		Max:     cfg.Boss.MaxHealth,
	})
	components.DamageEvent.SetValue(boss, components.DamageEventData{})

	addToSpace(ecs, obj)
	return boss
}
