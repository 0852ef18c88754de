package factory

import (
	"math/rand/v2"

	"github.com/automoto/bossfight/archetypes"
	"github.com/automoto/bossfight/components"
	cfg "github.com/automoto/bossfight/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{})
	return clock
}

// CreateRandom seeds the jitter source. Two simulations built with the same
// seed draw the same sequence.
func CreateRandom(ecs *ecs.ECS, seed uint64) *donburi.Entry {
	r := archetypes.Random.Spawn(ecs)
	components.Random.SetValue(r, components.RandomData{
		Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	})
	return r
}

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	input := archetypes.Input.Spawn(ecs)
	components.Input.SetValue(input, components.InputSnapshot{})
	return input
}

// CreateArena stores the platform description. A nil arena uses the
// configured defaults.
func CreateArena(ecs *ecs.ECS, arena *components.ArenaData) *donburi.Entry {
	entry := archetypes.Arena.Spawn(ecs)
	if arena == nil {
		arena = DefaultArena()
	}
	components.Arena.Set(entry, arena)
	return entry
}

// DefaultArena describes the built-in square platform.
func DefaultArena() *components.ArenaData {
	return &components.ArenaData{
		Name:        "default",
		GroundLevel: cfg.Arena.GroundLevel,
		HalfSize:    cfg.Arena.HalfSize,
		PlayerSpawn: cfg.Arena.PlayerSpawn,
		BossSpawn:   cfg.Boss.Spawn,
	}
}

func arenaOf(ecs *ecs.ECS) *components.ArenaData {
	if e, ok := components.Arena.First(ecs.World); ok {
		return components.Arena.Get(e)
	}
	return DefaultArena()
}

func randomOf(ecs *ecs.ECS) *components.RandomData {
	if e, ok := components.Random.First(ecs.World); ok {
		return components.Random.Get(e)
	}
	return &components.RandomData{Rand: rand.New(rand.NewPCG(cfg.Sim.Seed, 0))}
}
