package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/bossfight/components"
	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/simulation"
	"github.com/automoto/bossfight/systems/client"
	"github.com/automoto/bossfight/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs the encounter: it polls input, steps the simulation and
// draws the arena with the HUD on top.
type ArenaScene struct {
	sceneChanger SceneChanger
	setup        *Setup
	sim          *simulation.Simulation
	arena        *components.ArenaData
	input        client.InputState
	once         sync.Once

	endTimer float64
	frozen   bool
}

// NewArenaScene creates a fresh encounter
func NewArenaScene(sc SceneChanger, setup *Setup) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, setup: setup}
}

func (as *ArenaScene) configure() {
	shake := &shakeSink{}
	sinks := simulation.MultiSink{simulation.LogSink{}, shake}
	if as.setup.Audio != nil {
		sinks = append(sinks, as.setup.Audio)
	}
	as.sim = simulation.New(sinks, simulation.Options{Arena: as.setup.Arena})
	shake.ecs = as.sim.ECS()
	as.arena = components.Arena.Get(components.Arena.MustFirst(as.sim.ECS().World))

	factory.CreateCamera(as.sim.ECS())
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	if as.frozen {
		return
	}

	client.UpdateInput(&as.input)
	if as.input.Action(client.ActionToggleDebug).JustPressed {
		cfg.Debug.ShowBounds = !cfg.Debug.ShowBounds
	}
	as.setup.pollTuning()

	dt := 1 / float64(ebiten.TPS())
	client.UpdateCamera(as.sim.ECS(), &as.input, dt)

	var cam *components.CameraData
	if entry, ok := components.Camera.First(as.sim.ECS().World); ok {
		cam = components.Camera.Get(entry)
	}
	as.sim.Step(dt, client.Snapshot(&as.input, cam))

	if ended, victory := as.sim.Over(); ended {
		as.endTimer += dt
		if as.endTimer >= cfg.EndScreen.Delay {
			as.frozen = true
			log.Printf("encounter over after %.1fs (victory=%v)", as.sim.Time(), victory)
			as.sceneChanger.ChangeScene(NewEndScene(as.sceneChanger, as.setup, as, victory))
		}
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.sim == nil {
		return
	}
	f := as.sim.Snapshot()
	v := client.ViewOf(as.sim.ECS(), f)
	client.DrawArena(screen, v, as.arena, f)
	if cfg.Debug.ShowBounds {
		client.DrawBounds(screen, v, f)
	}
	client.DrawHUD(screen, f)
}

// shakeSink shakes the camera when a slam lands.
type shakeSink struct {
	simulation.NopSink
	ecs *ecs.ECS
}

func (s *shakeSink) Teleported(mgl64.Vec3) {}

func (s *shakeSink) SlamLanded(mgl64.Vec3) {
	client.ShakeCamera(s.ecs)
}
