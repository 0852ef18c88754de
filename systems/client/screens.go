package client

import (
	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawIntro renders the title card and control summary.
func DrawIntro(screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	screen.Fill(cfg.UI.HealthBarBgColor)

	drawCentered(screen, cfg.EndScreen.IntroTitle, fonts.Title.Get(), width/2, cfg.EndScreen.TitleY, cfg.EndScreen.VictoryColor)

	y := cfg.EndScreen.HintY
	for _, line := range cfg.EndScreen.IntroControls {
		drawCentered(screen, line, fonts.Regular.Get(), width/2, y, cfg.EndScreen.HintColor)
		y += 22
	}
	drawCentered(screen, cfg.EndScreen.IntroHint, fonts.Bold.Get(), width/2, y+22, cfg.EndScreen.HintColor)
}

// DrawEnd dims the arena and shows the outcome with a restart hint.
func DrawEnd(screen *ebiten.Image, victory bool) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.EndScreen.OverlayColor, false)

	title, clr := cfg.EndScreen.DefeatTitle, cfg.EndScreen.DefeatColor
	if victory {
		title, clr = cfg.EndScreen.VictoryTitle, cfg.EndScreen.VictoryColor
	}
	drawCentered(screen, title, fonts.Title.Get(), width/2, cfg.EndScreen.TitleY, clr)
	drawCentered(screen, cfg.EndScreen.RestartHint, fonts.Regular.Get(), width/2, cfg.EndScreen.HintY, cfg.EndScreen.HintColor)
}
