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

func CreatePlayer(ecs *ecs.ECS, spawn mgl64.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := components.NewFootprint(spawn, cfg.Player.CollisionRadius, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Transform.SetValue(player, components.TransformData{Position: spawn})
	components.Player.SetValue(player, components.PlayerData{
		Motion:      cfg.Grounded,
		Attack:      cfg.AttackIdle,
		SpawnPoint:  spawn,
		PeakHeight:  spawn.Y(),
		SinceLaunch: cfg.Player.LaunchCooldown,
	})
	components.Burst.SetValue(player, components.BurstData{})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxHealth,
		Max:     cfg.Player.MaxHealth,
	})
	components.DamageEvent.SetValue(player, components.DamageEventData{})

	addToSpace(ecs, obj)
	return player
}

// PlayerSphere is the player's hit sphere, lifted off the feet.
func PlayerSphere(pos mgl64.Vec3) (mgl64.Vec3, float64) {
	return pos.Add(mgl64.Vec3{0, cfg.Player.CollisionOffsetY, 0}), cfg.Player.CollisionRadius
}
