package systems

import (
	"math"
	"testing"

	"github.com/automoto/bossfight/components"
	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/systems/factory"
	"github.com/automoto/bossfight/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(e)
	factory.CreateRandom(e, 1)
	factory.CreateInput(e)
	factory.CreateArena(e, nil)
	factory.CreateSpace(e)
	return e
}

func count(e *ecs.ECS, tag donburi.IComponentType) int {
	return query.NewQuery(filter.Contains(tag)).Count(e.World)
}

func tick(e *ecs.ECS, dt float64) {
	clockOf(e).Pending = dt
	UpdateClock(e)
}

func TestFallDamage(t *testing.T) {
	tests := []struct {
		fall float64
		want int
	}{
		{0, 0},
		{2.0, 0},
		{2.5, 0},
		{3.0, 500},
		{4.0, 1500},
		{10.0, 7500},
	}
	for _, tt := range tests {
		if got := FallDamage(tt.fall); got != tt.want {
			t.Errorf("FallDamage(%v) = %d, want %d", tt.fall, got, tt.want)
		}
	}
}

func TestUpdateClock(t *testing.T) {
	tests := []struct {
		name    string
		pending float64
		want    float64
	}{
		{"normal frame", 0.016, 0.016},
		{"negative", -0.5, 0},
		{"nan", math.NaN(), 0},
		{"stall", 3, cfg.Sim.MaxDelta},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			tick(e, tt.pending)
			clock := clockOf(e)
			if clock.Delta != tt.want || clock.Elapsed != tt.want {
				t.Errorf("delta = %v elapsed = %v, want %v", clock.Delta, clock.Elapsed, tt.want)
			}
			if clock.Pending != 0 {
				t.Errorf("pending not consumed")
			}
			if clock.Frame != 1 {
				t.Errorf("frame = %d, want 1", clock.Frame)
			}
		})
	}
}

func TestTryLaunchPlayer(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(p *components.PlayerData)
		launch bool
	}{
		{"ready", func(p *components.PlayerData) {}, true},
		{"cooling down", func(p *components.PlayerData) { p.SinceLaunch = 0.2 }, false},
		{"slam descent", func(p *components.PlayerData) { p.DescentImmune = true }, false},
		{"after slam", func(p *components.PlayerData) { p.PostLandImmune = true }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			player := factory.CreatePlayer(e, mgl64.Vec3{})
			data := components.Player.Get(player)
			tt.setup(data)

			if got := TryLaunchPlayer(player); got != tt.launch {
				t.Fatalf("TryLaunchPlayer = %v, want %v", got, tt.launch)
			}
			if tt.launch {
				if data.VelocityY != cfg.Player.LaunchVelocity || data.Motion != cfg.Jumping || !data.Launched {
					t.Errorf("after launch = %+v", *data)
				}
				if TryLaunchPlayer(player) {
					t.Error("second launch ignored the cooldown")
				}
			}
		})
	}
}

func TestAerialSlamNeedsHeight(t *testing.T) {
	tests := []struct {
		name   string
		motion cfg.MotionState
		height float64
		want   bool
	}{
		{"grounded", cfg.Grounded, 0, false},
		{"low jump", cfg.Jumping, cfg.Slam.MinHeight - 0.5, false},
		{"high jump", cfg.Jumping, cfg.Slam.MinHeight + 0.5, true},
		{"walked off high", cfg.FallingOffEdge, cfg.Slam.MinHeight + 1, true},
		{"already slamming", cfg.AerialSlamming, 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			factory.CreateBoss(e, cfg.Boss.Spawn)
			player := factory.CreatePlayer(e, mgl64.Vec3{})
			components.Player.Get(player).Motion = tt.motion
			components.Transform.Get(player).Position[1] = tt.height

			if got := CanStartAerialSlam(e, player); got != tt.want {
				t.Errorf("CanStartAerialSlam = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSlamLandingSpawnsOneExplosion(t *testing.T) {
	e := newTestECS(t)
	factory.CreateBoss(e, cfg.Boss.Spawn)
	player := factory.CreatePlayer(e, mgl64.Vec3{})
	data := components.Player.Get(player)
	components.Transform.Get(player).Position[1] = 10
	data.Motion = cfg.Jumping

	if !StartAerialSlam(e, player) {
		t.Fatal("slam refused")
	}
	if !data.Immune() {
		t.Error("player not immune during descent")
	}

	for range 60 {
		tick(e, 1.0/60)
		UpdatePlayerTimers(e)
		UpdatePlayerVertical(e)
		if data.Motion == cfg.Grounded {
			break
		}
	}
	if data.Motion != cfg.Grounded {
		t.Fatal("slam never landed")
	}
	if !data.PostLandImmune || data.DescentImmune {
		t.Errorf("immunity after landing: descent=%v post=%v", data.DescentImmune, data.PostLandImmune)
	}
	if got := count(e, tags.Explosion); got != 1 {
		t.Errorf("explosions = %d, want 1", got)
	}
	if got := count(e, tags.TrailSegment); got == 0 {
		t.Error("slam left no trail")
	}
	if got := components.Health.Get(player).Current; got != cfg.Player.MaxHealth {
		t.Errorf("slam landing hurt the player: %d", got)
	}
}

func TestMissileHitDisposesMissile(t *testing.T) {
	e := newTestECS(t)
	boss := factory.CreateBoss(e, cfg.Boss.Spawn)
	player := factory.CreatePlayer(e, mgl64.Vec3{})
	components.Transform.Get(boss).Position = mgl64.Vec3{0, 0, -2}

	factory.CreateHomingMissile(e, boss, player)
	for range 60 {
		tick(e, 1.0/60)
		UpdateMissiles(e)
		UpdateCombat(e)
		if count(e, tags.Missile) == 0 {
			break
		}
	}
	if got := count(e, tags.Missile); got != 0 {
		t.Fatalf("missiles = %d, want 0", got)
	}
	want := cfg.Player.MaxHealth - cfg.Missile.DamagePhase1
	if got := components.Health.Get(player).Current; got != want {
		t.Errorf("player health = %d, want %d", got, want)
	}
	if components.Player.Get(player).Launched {
		t.Error("phase 1 missile launched the player")
	}
}

func TestHomingMissileWithoutTargetIsRemoved(t *testing.T) {
	e := newTestECS(t)
	boss := factory.CreateBoss(e, cfg.Boss.Spawn)
	player := factory.CreatePlayer(e, mgl64.Vec3{})
	factory.CreateHomingMissile(e, boss, player)
	Dispose(e, player)

	tick(e, 1.0/60)
	UpdateMissiles(e)
	if got := count(e, tags.Missile); got != 0 {
		t.Errorf("missiles = %d, want 0", got)
	}
}

func TestLifetimesExpire(t *testing.T) {
	e := newTestECS(t)
	factory.CreateTrailSegment(e, mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0, 4, 0})

	step := func() {
		tick(e, cfg.Slam.TrailLifetime/10)
		UpdateTrails(e)
		UpdateLifetimes(e)
	}
	for range 5 {
		step()
	}
	trail, ok := tags.TrailSegment.First(e.World)
	if !ok {
		t.Fatal("trail removed early")
	}
	if op := components.Lifetime.Get(trail).Opacity; op <= 0 || op >= cfg.Slam.TrailOpacity {
		t.Errorf("opacity at half life = %v", op)
	}

	for range 6 {
		step()
	}
	if got := count(e, tags.TrailSegment); got != 0 {
		t.Errorf("trails = %d, want 0", got)
	}
}
