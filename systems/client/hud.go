package client

import (
	"fmt"
	"image/color"
	"math"

	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/fonts"
	"github.com/automoto/bossfight/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// DrawHUD renders the player health bar, the boss bar with its name and
// title, and the burst meter.
func DrawHUD(screen *ebiten.Image, f simulation.Frame) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	m := cfg.UI.HealthBarMargin

	// Player
	drawBar(screen, m, height-m-cfg.UI.HealthBarHeight, cfg.UI.HealthBarWidth, cfg.UI.HealthBarHeight,
		ratio(f.Player.Health, f.Player.MaxHealth), cfg.UI.PlayerHealthFg)
	small := fonts.Small.Get()
	label := fmt.Sprintf("%d / %d", f.Player.Health, f.Player.MaxHealth)
	text.Draw(screen, label, small, int(m), int(height-m-cfg.UI.HealthBarHeight-4), cfg.UI.TextColor)

	// Boss
	bx := (width - cfg.UI.BossBarWidth) / 2
	by := m + 36
	drawBar(screen, bx, by, cfg.UI.BossBarWidth, cfg.UI.BossBarHeight,
		ratio(f.Boss.Health, f.Boss.MaxHealth), cfg.UI.BossHealthFg)
	drawCentered(screen, f.Boss.Name, fonts.Bold.Get(), width/2, by-14, cfg.UI.TextColor)
	drawCentered(screen, f.Boss.Title, small, width/2, by+cfg.UI.BossBarHeight+14, cfg.UI.TextColor)

	drawBurstMeter(screen, width-m-cfg.UI.BurstRadius, height-m-cfg.UI.BurstRadius, f.Player.Burst)
}

func drawBar(screen *ebiten.Image, x, y, w, h, fill float64, fg color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.UI.HealthBarBgColor, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w*fill), float32(h), fg, false)
}

// drawBurstMeter draws the charge as a ring that fills clockwise from the
// top and turns solid when the burst is ready.
func drawBurstMeter(screen *ebiten.Image, cx, cy float64, b simulation.BurstView) {
	r := cfg.UI.BurstRadius
	vector.FillCircle(screen, float32(cx), float32(cy), float32(r), cfg.UI.HealthBarBgColor, true)

	if b.Ready {
		vector.FillCircle(screen, float32(cx), float32(cy), float32(r-3), cfg.UI.BurstReadyFg, true)
		return
	}
	fill := ratio(b.Charge, cfg.Burst.MaxCharge)
	steps := int(fill * arcSegments * 2)
	var px, py float32
	for i := 0; i <= steps; i++ {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/(arcSegments*2)
		x := float32(cx + math.Cos(a)*(r-3))
		y := float32(cy + math.Sin(a)*(r-3))
		if i > 0 {
			vector.StrokeLine(screen, px, py, x, y, 4, cfg.UI.BurstFg, true)
		}
		px, py = x, y
	}
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, baseline float64, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, int(cx)-bounds.Dx()/2, int(baseline), clr)
}

func ratio(cur, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, float64(cur)/float64(total)))
}
