package archetypes

import (
	"github.com/automoto/bossfight/components"
	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Burst,
		components.Transform,
		components.Health,
		components.DamageEvent,
		components.Object,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
		components.Transform,
		components.Health,
		components.DamageEvent,
		components.Object,
	)
	Slash = newArchetype(
		tags.Slash,
		components.Slash,
		components.Transform,
		components.Lifetime,
		components.Object,
	)
	BurstSlash = newArchetype(
		tags.BurstSlash,
		components.BurstSlash,
		components.Transform,
		components.Lifetime,
		components.Object,
	)
	Missile = newArchetype(
		tags.Missile,
		components.Missile,
		components.Transform,
		components.Lifetime,
		components.Object,
	)
	TrailSegment = newArchetype(
		tags.TrailSegment,
		components.Trail,
		components.Lifetime,
	)
	Explosion = newArchetype(
		tags.Explosion,
		components.Explosion,
		components.Transform,
		components.Lifetime,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Random = newArchetype(
		components.Random,
	)
	Input = newArchetype(
		components.Input,
	)
	Arena = newArchetype(
		components.Arena,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
