package scenes

import (
	"github.com/automoto/bossfight/systems/client"
	"github.com/hajimehoshi/ebiten/v2"
)

// EndScene shows the outcome over the frozen arena until the player asks
// for a rematch.
type EndScene struct {
	sceneChanger SceneChanger
	setup        *Setup
	arena        *ArenaScene
	victory      bool
	input        client.InputState
}

// NewEndScene creates the victory or defeat screen
func NewEndScene(sc SceneChanger, setup *Setup, arena *ArenaScene, victory bool) *EndScene {
	return &EndScene{sceneChanger: sc, setup: setup, arena: arena, victory: victory}
}

func (es *EndScene) Update() {
	client.UpdateInput(&es.input)
	es.setup.pollTuning()

	if es.input.Action(client.ActionConfirm).JustPressed {
		es.sceneChanger.ChangeScene(NewArenaScene(es.sceneChanger, es.setup))
	}
}

func (es *EndScene) Draw(screen *ebiten.Image) {
	es.arena.Draw(screen)
	client.DrawEnd(screen, es.victory)
}
