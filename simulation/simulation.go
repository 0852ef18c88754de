// Package simulation runs one boss encounter headless. The caller owns the
// frame loop: it builds an input snapshot, calls Step with the elapsed time
// and reads the result back through Snapshot or the Sink.
package simulation

import (
	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/components"
	"github.com/automoto/bossfight/events"
	"github.com/automoto/bossfight/systems"
	"github.com/automoto/bossfight/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a new simulation. The zero value uses the built-in
// arena and the configured seed.
type Options struct {
	Arena *components.ArenaData
	Seed  uint64
}

// Simulation owns the ECS world of one encounter. It is not safe for
// concurrent use; Step must be called from a single goroutine.
type Simulation struct {
	ecs    *ecs.ECS
	sink   Sink
	player *donburi.Entry
	boss   *donburi.Entry
}

func New(sink Sink, opts Options) *Simulation {
	if sink == nil {
		sink = NopSink{}
	}
	seed := opts.Seed
	if seed == 0 {
		seed = cfg.Sim.Seed
	}

	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateClock)

	e.AddSystem(systems.UpdatePlayerTimers)
	e.AddSystem(systems.UpdatePlayerActions)
	e.AddSystem(systems.UpdatePlayerMovement)
	e.AddSystem(systems.UpdatePlayerVertical)
	e.AddSystem(systems.UpdateCombo)

	e.AddSystem(systems.UpdateSlashes)
	e.AddSystem(systems.UpdateBurstSlash)
	e.AddSystem(systems.UpdateTrails)
	e.AddSystem(systems.UpdateExplosion)

	e.AddSystem(systems.UpdateBoss)
	e.AddSystem(systems.UpdateMissiles)
	e.AddSystem(systems.UpdateCombat)
	e.AddSystem(systems.UpdateLifetimes)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.FlushEvents)

	factory.CreateClock(e)
	factory.CreateRandom(e, seed)
	factory.CreateInput(e)
	arenaEntry := factory.CreateArena(e, opts.Arena)
	factory.CreateSpace(e)

	arena := components.Arena.Get(arenaEntry)
	s := &Simulation{
		ecs:    e,
		sink:   sink,
		player: factory.CreatePlayer(e, arena.PlayerSpawn),
		boss:   factory.CreateBoss(e, arena.BossSpawn),
	}
	s.subscribe()
	return s
}

func (s *Simulation) subscribe() {
	w := s.ecs.World
	events.HealthChangedEvent.Subscribe(w, func(_ donburi.World, ev events.HealthChanged) {
		s.sink.HealthChanged(ev.Who, ev.Current, ev.Max)
	})
	events.BurstChangedEvent.Subscribe(w, func(_ donburi.World, ev events.BurstChanged) {
		s.sink.BurstChanged(ev.Percent, ev.Ready)
	})
	events.BossPhaseChangedEvent.Subscribe(w, func(_ donburi.World, ev events.BossPhaseChanged) {
		s.sink.BossPhaseChanged(ev.Phase)
	})
	events.BossDefeatedEvent.Subscribe(w, func(donburi.World, events.BossDefeated) {
		s.sink.BossDefeated()
	})
	events.PlayerDefeatedEvent.Subscribe(w, func(donburi.World, events.PlayerDefeated) {
		s.sink.PlayerDefeated()
	})
	events.CueEvent.Subscribe(w, func(_ donburi.World, ev events.Cue) {
		s.sink.Cue(ev.ID)
	})
	if ms, ok := s.sink.(MilestoneSink); ok {
		events.TeleportedEvent.Subscribe(w, func(_ donburi.World, ev events.Teleported) {
			ms.Teleported(ev.To)
		})
		events.SlamLandedEvent.Subscribe(w, func(_ donburi.World, ev events.SlamLanded) {
			ms.SlamLanded(ev.At)
		})
	}
}

// Step advances the encounter by dt seconds using the given input.
func (s *Simulation) Step(dt float64, input components.InputSnapshot) {
	w := s.ecs.World
	clock := components.Clock.Get(components.Clock.MustFirst(w))
	clock.Pending = dt

	snapshot := components.Input.Get(components.Input.MustFirst(w))
	*snapshot = input
	snapshot.Triggers = append([]components.Trigger(nil), input.Triggers...)

	s.ecs.Update()
}

// ECS exposes the world so a client can attach renderers to it.
func (s *Simulation) ECS() *ecs.ECS {
	return s.ecs
}

// Time is the simulated time in seconds.
func (s *Simulation) Time() float64 {
	return components.Now(s.ecs.World)
}

func (s *Simulation) BossPhase() cfg.BossPhase {
	return components.Boss.Get(s.boss).Phase
}

// Over reports whether the encounter has ended and who won.
func (s *Simulation) Over() (ended, victory bool) {
	if components.Boss.Get(s.boss).Phase == cfg.Defeated {
		return true, true
	}
	if components.Health.Get(s.player).Current <= 0 {
		return true, false
	}
	return false, false
}
