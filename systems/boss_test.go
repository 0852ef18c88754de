package systems

import (
	"math"
	"testing"

	"github.com/automoto/bossfight/components"
	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/systems/factory"
	"github.com/automoto/bossfight/tags"
	"github.com/go-gl/mathgl/mgl64"
)

func TestSpiralMissileRing(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
	}{
		{"no offset", 0},
		{"quarter turn", math.Pi / 2},
		{"odd offset", 1.3},
		{"nearly wrapped", 2*math.Pi - 0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			boss := factory.CreateBoss(e, mgl64.Vec3{2, 5, -3})
			center := components.Transform.Get(boss).Position

			missiles := factory.CreateSpiralMissiles(e, boss, tt.offset)
			if len(missiles) != cfg.Missile.BurstCount {
				t.Fatalf("missiles = %d, want %d", len(missiles), cfg.Missile.BurstCount)
			}
			for i, m := range missiles {
				angle := float64(i)/float64(cfg.Missile.BurstCount)*2*math.Pi + tt.offset
				want := mgl64.Vec3{math.Cos(angle), 0, math.Sin(angle)}
				data := components.Missile.Get(m)
				if data.Direction.Sub(want).Len() > 1e-9 {
					t.Errorf("missile %d direction = %v, want %v", i, data.Direction, want)
				}
				if data.Homing || data.Damage != cfg.Missile.DamagePhase2 {
					t.Errorf("missile %d = %+v, want non-homing with phase 2 damage", i, *data)
				}
				pos := components.Transform.Get(m).Position
				wantPos := mgl64.Vec3{center.X(), cfg.Missile.SpiralSpawnHeight, center.Z()}.Add(want.Mul(cfg.Missile.SpiralSpawnOffset))
				if pos.Sub(wantPos).Len() > 1e-9 {
					t.Errorf("missile %d position = %v, want %v", i, pos, wantPos)
				}
			}
		})
	}
}

func TestPhaseTwoBurstCadence(t *testing.T) {
	const dt = 1.0 / 60
	e := newTestECS(t)
	boss := factory.CreateBoss(e, cfg.Boss.Spawn)
	factory.CreatePlayer(e, mgl64.Vec3{40, 0, 40})
	data := components.Boss.Get(boss)
	data.Phase = cfg.TransitioningToPhase2
	data.TransitionTimer = cfg.Boss.TransitionDuration - dt/2

	tick(e, dt)
	UpdateBoss(e)
	if data.Phase != cfg.Phase2 {
		t.Fatalf("phase = %v, want Phase2", data.Phase)
	}
	if got := count(e, tags.Missile); got != 0 {
		t.Fatalf("missiles on transition frame = %d, want 0", got)
	}

	tick(e, dt)
	UpdateBoss(e)
	if got := count(e, tags.Missile); got != cfg.Missile.BurstCount {
		t.Fatalf("missiles after first phase 2 frame = %d, want %d", got, cfg.Missile.BurstCount)
	}

	frames := 0
	for count(e, tags.Missile) == cfg.Missile.BurstCount && frames < 60 {
		tick(e, dt)
		UpdateBoss(e)
		frames++
	}
	if got := count(e, tags.Missile); got != 2*cfg.Missile.BurstCount {
		t.Fatalf("missiles after second burst = %d, want %d", got, 2*cfg.Missile.BurstCount)
	}
	// One frame of slack for float accumulation of the interval.
	want := int(math.Round(cfg.Missile.IntervalPhase2 / dt))
	if frames < want || frames > want+1 {
		t.Errorf("second burst after %d frames, want %d", frames, want)
	}
}

func TestSpiralOffsetAdvancesAndWraps(t *testing.T) {
	const dt = 1.0 / 60
	step := cfg.Boss.SpiralSpeed * dt
	tests := []struct {
		name  string
		start float64
		want  float64
	}{
		{"advances", 1, 1 + step},
		{"wraps past a full turn", 2*math.Pi - step/2, step / 2},
		{"stays below a full turn", 2*math.Pi - 2*step, 2*math.Pi - step},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			boss := factory.CreateBoss(e, cfg.Boss.Spawn)
			data := components.Boss.Get(boss)
			data.Phase = cfg.Phase2
			data.SpiralOffset = tt.start

			tick(e, dt)
			UpdateBoss(e)
			if math.Abs(data.SpiralOffset-tt.want) > 1e-9 {
				t.Errorf("spiral offset = %v, want %v", data.SpiralOffset, tt.want)
			}
			if data.SpiralOffset < 0 || data.SpiralOffset > 2*math.Pi {
				t.Errorf("spiral offset %v left [0, 2π]", data.SpiralOffset)
			}
		})
	}
}

func TestSpiralMissileKnockup(t *testing.T) {
	tests := []struct {
		name   string
		phase  cfg.BossPhase
		launch bool
	}{
		{"phase 1", cfg.Phase1, false},
		{"phase 2", cfg.Phase2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			boss := factory.CreateBoss(e, mgl64.Vec3{0, 5, 0})
			player := factory.CreatePlayer(e, mgl64.Vec3{3, 0, 0})
			components.Boss.Get(boss).Phase = tt.phase

			factory.CreateSpiralMissiles(e, boss, 0)
			hp := components.Health.Get(player)
			for range 120 {
				tick(e, 1.0/60)
				UpdateMissiles(e)
				UpdateCombat(e)
				if hp.Current != cfg.Player.MaxHealth {
					break
				}
			}

			want := cfg.Player.MaxHealth - cfg.Missile.DamagePhase2
			if hp.Current != want {
				t.Fatalf("player health = %d, want %d", hp.Current, want)
			}
			data := components.Player.Get(player)
			if data.Launched != tt.launch {
				t.Errorf("launched = %v, want %v", data.Launched, tt.launch)
			}
			if tt.launch && data.VelocityY != cfg.Player.LaunchVelocity {
				t.Errorf("velocityY = %v, want %v", data.VelocityY, cfg.Player.LaunchVelocity)
			}
		})
	}
}

func TestBossContactLaunch(t *testing.T) {
	tests := []struct {
		name   string
		boss   mgl64.Vec3
		setup  func(p *components.PlayerData)
		launch bool
	}{
		{"touching", mgl64.Vec3{0, 2.5, -3}, func(p *components.PlayerData) {}, true},
		{"apart", mgl64.Vec3{0, 2.5, -10}, func(p *components.PlayerData) {}, false},
		{"immune after slam", mgl64.Vec3{0, 2.5, -3}, func(p *components.PlayerData) { p.PostLandImmune = true }, false},
		{"cooling down", mgl64.Vec3{0, 2.5, -3}, func(p *components.PlayerData) { p.SinceLaunch = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			boss := factory.CreateBoss(e, tt.boss)
			player := factory.CreatePlayer(e, mgl64.Vec3{})
			components.Boss.Get(boss).Phase = cfg.Phase2
			data := components.Player.Get(player)
			tt.setup(data)

			tick(e, 1.0/60)
			UpdateBoss(e)
			if data.Launched != tt.launch {
				t.Errorf("launched = %v, want %v", data.Launched, tt.launch)
			}
		})
	}
}

func TestMissileHitsPlayerBeyondTheArena(t *testing.T) {
	e := newTestECS(t)
	far := 2 * (cfg.Arena.HalfSize + cfg.Arena.SpaceMargin)
	boss := factory.CreateBoss(e, mgl64.Vec3{far - 4, 0, far})
	player := factory.CreatePlayer(e, mgl64.Vec3{far, 0, far})

	factory.CreateHomingMissile(e, boss, player)
	for range 120 {
		tick(e, 1.0/60)
		UpdateMissiles(e)
		UpdateCombat(e)
		if count(e, tags.Missile) == 0 {
			break
		}
	}
	want := cfg.Player.MaxHealth - cfg.Missile.DamagePhase1
	if got := components.Health.Get(player).Current; got != want {
		t.Errorf("player health = %d, want %d", got, want)
	}
}
