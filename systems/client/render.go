package client

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/bossfight/components"
	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/geometry"
	"github.com/automoto/bossfight/simulation"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const arcSegments = 16

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	fillOp        = &ebiten.DrawTrianglesOptions{}
)

func init() {
	whiteImage.Fill(color.White)
}

// DrawArena renders the platform, the boss, the player and every live
// transient entity of a frame.
func DrawArena(screen *ebiten.Image, v geometry.View, arena *components.ArenaData, f simulation.Frame) {
	drawGround(screen, v, arena)
	drawShadow(screen, v, f.Player.Position, arena.GroundLevel, cfg.Player.CollisionRadius)

	for _, ent := range f.Entities {
		switch ent.Kind {
		case cfg.KindTrailSegment:
			drawTrail(screen, v, ent)
		case cfg.KindExplosion:
			drawExplosion(screen, v, ent)
		}
	}

	drawBoss(screen, v, f.Boss)
	drawPlayer(screen, v, f.Player)

	for _, ent := range f.Entities {
		switch ent.Kind {
		case cfg.KindSlash, cfg.KindBurstSlash:
			drawArc(screen, v, ent)
		case cfg.KindMissile:
			drawMissile(screen, v, ent)
		}
	}
}

func drawGround(screen *ebiten.Image, v geometry.View, arena *components.ArenaData) {
	h := arena.HalfSize
	y := arena.GroundLevel
	corners := [4]mgl64.Vec3{{-h, y, -h}, {h, y, -h}, {h, y, h}, {-h, y, h}}

	var path vector.Path
	for i, c := range corners {
		x, sy := v.Project(c)
		if i == 0 {
			path.MoveTo(float32(x), float32(sy))
		} else {
			path.LineTo(float32(x), float32(sy))
		}
	}
	path.Close()
	fillPath(screen, &path, cfg.UI.GroundColor)

	step := cfg.Camera.GridSpacing
	if step <= 0 {
		return
	}
	for d := -h; d <= h+1e-9; d += step {
		line(screen, v, mgl64.Vec3{d, y, -h}, mgl64.Vec3{d, y, h}, 1, cfg.UI.GridColor)
		line(screen, v, mgl64.Vec3{-h, y, d}, mgl64.Vec3{h, y, d}, 1, cfg.UI.GridColor)
	}
}

func drawShadow(screen *ebiten.Image, v geometry.View, p mgl64.Vec3, ground, radius float64) {
	x, y := v.Project(mgl64.Vec3{p.X(), ground, p.Z()})
	vector.FillCircle(screen, float32(x), float32(y), float32(radius*v.Scale*0.8), cfg.UI.ShadowColor, true)
}

func drawPlayer(screen *ebiten.Image, v geometry.View, p simulation.PlayerView) {
	body := p.Position.Add(mgl64.Vec3{0, cfg.Player.CollisionOffsetY, 0})
	x, y := v.Project(body)
	r := float32(cfg.Player.CollisionRadius * v.Scale)

	clr := cfg.UI.PlayerColor
	if p.Burst.PoweredUp {
		clr = cfg.RGB(cfg.Slash.PoweredColor)
	}
	if p.Immune {
		clr = fade(clr, 0.5)
	}
	vector.FillCircle(screen, float32(x), float32(y), r, clr, true)

	// Facing tick
	nose := body.Add(geometry.Forward(p.Facing).Mul(cfg.Player.CollisionRadius * 1.5))
	nx, ny := v.Project(nose)
	vector.StrokeLine(screen, float32(x), float32(y), float32(nx), float32(ny), 2, cfg.White, true)
}

func drawBoss(screen *ebiten.Image, v geometry.View, b simulation.BossView) {
	clr := cfg.UI.BossColor
	switch b.Phase {
	case cfg.TransitioningToPhase2, cfg.Phase2:
		clr = cfg.UI.BossPhase2Color
	case cfg.Defeated:
		clr = cfg.UI.BossDefeatColor
	}

	half := cfg.Boss.Size / 2
	rot := mgl64.AnglesToQuat(b.Rotation.X(), b.Rotation.Y(), b.Rotation.Z(), mgl64.XYZ)
	var pts [8][2]float32
	for i := range pts {
		corner := mgl64.Vec3{
			sign(i&1 != 0) * half,
			sign(i&2 != 0) * half,
			sign(i&4 != 0) * half,
		}
		x, y := v.Project(b.Position.Add(rot.Rotate(corner)))
		pts[i] = [2]float32{float32(x), float32(y)}
	}

	width := float32(2 + b.Glow*2)
	for i := range pts {
		for _, bit := range [3]int{1, 2, 4} {
			if i&bit != 0 {
				continue
			}
			j := i | bit
			vector.StrokeLine(screen, pts[i][0], pts[i][1], pts[j][0], pts[j][1], width, clr, true)
		}
	}
}

// drawArc renders a slash or burst crescent as a polyline in the attack's
// local plane.
func drawArc(screen *ebiten.Image, v geometry.View, ent simulation.EntityView) {
	arc := cfg.Slash.ArcAngle
	width := float32(cfg.Slash.Thickness * v.Scale)
	if ent.Kind == cfg.KindBurstSlash {
		arc = cfg.Burst.ArcAngle
		width = float32(cfg.Burst.Thickness * v.Scale)
	}
	if width < 1 {
		width = 1
	}
	clr := fade(cfg.RGB(ent.Color), ent.Opacity)
	rot := mgl64.AnglesToQuat(ent.Rotation.X(), ent.Rotation.Y(), ent.Rotation.Z(), mgl64.XYZ)

	var px, py float32
	for i := 0; i <= arcSegments; i++ {
		a := -arc/2 + arc*float64(i)/arcSegments
		local := mgl64.Vec3{math.Sin(a) * ent.Radius, 0, math.Cos(a) * ent.Radius}
		x, y := v.Project(ent.Position.Add(rot.Rotate(local)))
		if i > 0 {
			vector.StrokeLine(screen, px, py, float32(x), float32(y), width, clr, true)
		}
		px, py = float32(x), float32(y)
	}
}

func drawMissile(screen *ebiten.Image, v geometry.View, ent simulation.EntityView) {
	x, y := v.Project(ent.Position)
	vector.FillCircle(screen, float32(x), float32(y), float32(math.Max(2, ent.Radius*v.Scale)), cfg.RGB(ent.Color), true)
}

func drawTrail(screen *ebiten.Image, v geometry.View, ent simulation.EntityView) {
	line(screen, v, ent.Position, ent.End, 3, fade(cfg.UI.TrailColor, ent.Opacity))
}

func drawExplosion(screen *ebiten.Image, v geometry.View, ent simulation.EntityView) {
	var path vector.Path
	for i := 0; i < arcSegments*2; i++ {
		a := 2 * math.Pi * float64(i) / (arcSegments * 2)
		p := ent.Position.Add(mgl64.Vec3{math.Cos(a) * ent.Radius, 0, math.Sin(a) * ent.Radius})
		x, y := v.Project(p)
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()
	fillPath(screen, &path, fade(cfg.UI.ExplosionColor, ent.Opacity))
}

func line(screen *ebiten.Image, v geometry.View, a, b mgl64.Vec3, width float32, clr color.Color) {
	x0, y0 := v.Project(a)
	x1, y1 := v.Project(b)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
}

func fillPath(screen *ebiten.Image, path *vector.Path, clr color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}
	fillOp.FillRule = ebiten.FillRuleNonZero
	fillOp.AntiAlias = true
	screen.DrawTriangles(vs, is, whiteSubImage, fillOp)
}

// fade scales a color's alpha by opacity, keeping it premultiplied.
func fade(c color.RGBA, opacity float64) color.RGBA {
	o := math.Max(0, math.Min(1, opacity))
	return color.RGBA{
		R: uint8(float64(c.R) * o),
		G: uint8(float64(c.G) * o),
		B: uint8(float64(c.B) * o),
		A: uint8(float64(c.A) * o),
	}
}

func sign(pos bool) float64 {
	if pos {
		return 1
	}
	return -1
}

// DrawBounds outlines the collision volumes used by combat.
func DrawBounds(screen *ebiten.Image, v geometry.View, f simulation.Frame) {
	body := f.Player.Position.Add(mgl64.Vec3{0, cfg.Player.CollisionOffsetY, 0})
	x, y := v.Project(body)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(cfg.Player.CollisionRadius*v.Scale), 1, cfg.Yellow, true)

	half := geometry.RotatedHalfExtents(mgl64.Vec3{cfg.Boss.Size / 2, cfg.Boss.Size / 2, cfg.Boss.Size / 2}, f.Boss.Rotation)
	box := geometry.AABBFromCenter(f.Boss.Position, half)
	lo, hi := box.Min, box.Max
	corners := [4]mgl64.Vec3{{lo.X(), lo.Y(), lo.Z()}, {hi.X(), lo.Y(), lo.Z()}, {hi.X(), lo.Y(), hi.Z()}, {lo.X(), lo.Y(), hi.Z()}}
	for i := range corners {
		line(screen, v, corners[i], corners[(i+1)%4], 1, cfg.Yellow)
	}

	for _, ent := range f.Entities {
		if ent.Kind != cfg.KindMissile && ent.Kind != cfg.KindExplosion {
			continue
		}
		x, y := v.Project(ent.Position)
		vector.StrokeCircle(screen, float32(x), float32(y), float32(ent.Radius*v.Scale), 1, cfg.Yellow, true)
	}
}
