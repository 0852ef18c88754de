// Package bot drives the player from simulation snapshots so encounters
// can run without a human.
package bot

import (
	"math"

	"github.com/automoto/bossfight/components"
	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/geometry"
	"github.com/automoto/bossfight/simulation"
	"github.com/go-gl/mathgl/mgl64"
)

// maxFacingError is how far the player may face away from the boss before
// the bot walks to turn it.
const maxFacingError = 0.6

type Bot struct {
	cfg        cfg.BotDifficultyConfig
	nextAttack float64
}

func New(d cfg.BotDifficulty) *Bot {
	c, ok := cfg.Bot.Difficulties[d]
	if !ok {
		c = cfg.Bot.Difficulties[cfg.BotDifficultyNormal]
	}
	return &Bot{cfg: c}
}

// Next decides the input for the frame after f.
func (b *Bot) Next(f simulation.Frame) components.InputSnapshot {
	var in components.InputSnapshot
	if f.Boss.Phase == cfg.Defeated || f.Player.Health <= 0 {
		return in
	}

	pos := f.Player.Position
	to := f.Boss.Position.Sub(pos)
	to[1] = 0
	dist := to.Len()

	// Launched high enough: turn the fall into a slam.
	if f.Player.Motion.Airborne() && f.Player.Motion != cfg.AerialSlamming &&
		pos.Y() > cfg.Arena.GroundLevel+cfg.Slam.MinHeight {
		in.Triggers = append(in.Triggers, components.TriggerAttack)
		return in
	}

	retreat := f.Boss.Phase == cfg.Phase2 &&
		float64(f.Player.Health) < b.cfg.RetreatThreshold*float64(f.Player.MaxHealth)

	switch {
	case retreat:
		if dist < b.cfg.RetreatRange {
			walk(&in, to.Mul(-1))
		}
		return in
	case dist > b.cfg.AttackRange:
		walk(&in, to)
		return in
	case dist > 1 && math.Abs(geometry.ShortestAngleDelta(f.Player.Facing, geometry.Heading(to))) > maxFacingError:
		walk(&in, to)
		return in
	}

	if f.Player.Attack == cfg.AttackIdle && f.Time >= b.nextAttack {
		in.Triggers = append(in.Triggers, components.TriggerAttack)
		b.nextAttack = f.Time + b.cfg.ReactionDelay
	}
	if b.cfg.UseBurst && f.Player.Burst.Ready && !f.Player.Burst.Activating {
		in.Triggers = append(in.Triggers, components.TriggerBurst)
	}
	return in
}

// walk points the virtual camera so that "forward" runs along dir.
func walk(in *components.InputSnapshot, dir mgl64.Vec3) {
	if dir.LenSqr() == 0 {
		return
	}
	in.CameraYaw = math.Atan2(-dir.X(), -dir.Z())
	in.MoveForward = true
}
