package factory

import (
	"github.com/automoto/bossfight/archetypes"
	"github.com/automoto/bossfight/components"
	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/geometry"
	"github.com/automoto/bossfight/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var slashFade = powerIn(2.5)

// CreateSlash spawns one arc of the combo in front of the player. Even
// combo steps swing from one side and odd steps from the other.
func CreateSlash(ecs *ecs.ECS, player *donburi.Entry, comboIndex int, powered bool) *donburi.Entry {
	rng := randomOf(ecs)
	tf := components.Transform.Get(player)
	yaw := tf.Rotation.Y()

	forward := geometry.Forward(yaw)
	right := forward.Cross(mgl64.Vec3{0, 1, 0})
	pos := tf.Position.
		Add(forward.Mul(cfg.Slash.OuterRadius * cfg.Slash.ForwardFactor)).
		Add(mgl64.Vec3{0, cfg.Slash.HeightOffset, 0}).
		Add(right.Mul(rng.Jitter(cfg.Slash.PositionJitter))).
		Add(mgl64.Vec3{0, rng.Jitter(cfg.Slash.PositionJitter), 0})

	arm := cfg.Slash.ArmAngle
	if comboIndex%2 != 0 {
		arm = -arm
	}
	arm += rng.Jitter(cfg.Slash.ArmJitter)
	roll := rng.Jitter(cfg.Slash.RollJitter)

	return SpawnSlash(ecs, pos, mgl64.Vec3{roll, yaw, arm}, comboIndex, powered)
}

// SpawnSlash places a slash with the given pose. Lifetime jitter is drawn
// from the simulation's random source.
func SpawnSlash(ecs *ecs.ECS, pos, rotation mgl64.Vec3, comboIndex int, powered bool) *donburi.Entry {
	rng := randomOf(ecs)
	now := components.Now(ecs.World)
	lifetime := cfg.Slash.Lifetime * (1 + rng.Jitter(cfg.Slash.LifetimeJitter))

	damage := cfg.Slash.Damage
	color := cfg.Slash.Color
	if powered {
		damage *= cfg.Slash.PoweredMultiplier
		color = cfg.Slash.PoweredColor
	}

	slash := archetypes.Slash.Spawn(ecs)
	obj := components.NewFootprint(pos, cfg.Slash.OuterRadius, tags.ResolvSlash)
	obj.Data = slash
	components.Object.SetValue(slash, components.ObjectData{Object: obj})
	components.Transform.SetValue(slash, components.TransformData{
		Position: pos,
		Rotation: rotation,
	})
	components.Slash.SetValue(slash, components.SlashData{
		ComboIndex: comboIndex,
		Damage:     damage,
		Radius:     cfg.Slash.OuterRadius,
		Powered:    powered,
		Color:      color,
	})
	components.Lifetime.SetValue(slash, newLifetime(now, lifetime, fadeOut(1, lifetime, slashFade), nil))

	addToSpace(ecs, obj)
	return slash
}

// CreateBurstSlash spawns the large arc of an elemental burst.
func CreateBurstSlash(ecs *ecs.ECS, player *donburi.Entry) *donburi.Entry {
	now := components.Now(ecs.World)
	tf := components.Transform.Get(player)
	yaw := tf.Rotation.Y()
	pos := tf.Position.
		Add(geometry.Forward(yaw).Mul(cfg.Burst.ForwardOffset)).
		Add(mgl64.Vec3{0, cfg.Burst.HeightOffset, 0})

	burst := archetypes.BurstSlash.Spawn(ecs)
	obj := components.NewFootprint(pos, cfg.Burst.OuterRadius, tags.ResolvBurstSlash)
	obj.Data = burst
	components.Object.SetValue(burst, components.ObjectData{Object: obj})
	components.Transform.SetValue(burst, components.TransformData{
		Position: pos,
		Rotation: mgl64.Vec3{0, yaw, 0},
	})
	components.BurstSlash.SetValue(burst, components.BurstSlashData{
		Damage: cfg.Burst.Damage,
		Radius: cfg.Burst.OuterRadius,
		Color:  cfg.Burst.Color,
	})
	components.Lifetime.SetValue(burst, newLifetime(now, cfg.Burst.Lifetime, fadeOut(1, cfg.Burst.Lifetime, ease.InQuad), nil))

	addToSpace(ecs, obj)
	return burst
}
