package scenes

import (
	"image/color"

	"github.com/automoto/bossfight/systems/client"
	"github.com/hajimehoshi/ebiten/v2"
)

// IntroScene shows the title card until the player confirms.
type IntroScene struct {
	sceneChanger SceneChanger
	setup        *Setup
	input        client.InputState
}

// NewIntroScene creates a new intro scene
func NewIntroScene(sc SceneChanger, setup *Setup) *IntroScene {
	return &IntroScene{sceneChanger: sc, setup: setup}
}

func (is *IntroScene) Update() {
	client.UpdateInput(&is.input)
	is.setup.pollTuning()

	if is.input.Action(client.ActionConfirm).JustPressed || is.input.MouseJustPressed {
		is.sceneChanger.ChangeScene(NewArenaScene(is.sceneChanger, is.setup))
	}
}

func (is *IntroScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	client.DrawIntro(screen)
}
