package simulation

import (
	"math"
	"testing"

	"github.com/automoto/bossfight/components"
	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/events"
	"github.com/automoto/bossfight/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
)

const dt = 1.0 / 60

type recorder struct {
	health         map[events.Combatant][]int
	burst          []events.BurstChanged
	phases         []cfg.BossPhase
	bossDefeated   int
	playerDefeated int
	cues           []cfg.SoundID
	teleports      []mgl64.Vec3
	slams          []mgl64.Vec3
}

func newRecorder() *recorder {
	return &recorder{health: map[events.Combatant][]int{}}
}

func (r *recorder) HealthChanged(who events.Combatant, current, _ int) {
	r.health[who] = append(r.health[who], current)
}
func (r *recorder) BurstChanged(percent int, ready bool) {
	r.burst = append(r.burst, events.BurstChanged{Percent: percent, Ready: ready})
}
func (r *recorder) BossPhaseChanged(phase cfg.BossPhase) { r.phases = append(r.phases, phase) }
func (r *recorder) BossDefeated()                        { r.bossDefeated++ }
func (r *recorder) PlayerDefeated()                      { r.playerDefeated++ }
func (r *recorder) Cue(id cfg.SoundID)                   { r.cues = append(r.cues, id) }
func (r *recorder) Teleported(to mgl64.Vec3)             { r.teleports = append(r.teleports, to) }
func (r *recorder) SlamLanded(at mgl64.Vec3)             { r.slams = append(r.slams, at) }

func (r *recorder) countCue(id cfg.SoundID) int {
	n := 0
	for _, c := range r.cues {
		if c == id {
			n++
		}
	}
	return n
}

func newTestSim(t *testing.T) (*Simulation, *recorder) {
	t.Helper()
	rec := newRecorder()
	return New(rec, Options{Seed: 7}), rec
}

func idle() components.InputSnapshot {
	return components.InputSnapshot{}
}

func pressed(triggers ...components.Trigger) components.InputSnapshot {
	return components.InputSnapshot{Triggers: triggers}
}

// slashAtBoss spawns an unpowered slash centred on the boss.
func slashAtBoss(s *Simulation) {
	center := components.Transform.Get(s.boss).Position
	factory.SpawnSlash(s.ecs, center, mgl64.Vec3{}, 0, false)
}

func countKind(f Frame, kind cfg.EntityKind) int {
	n := 0
	for _, e := range f.Entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func silenceMissiles(s *Simulation) {
	components.Boss.Get(s.boss).MissileTimer = -100
}

func TestNewStartsAtFullHealth(t *testing.T) {
	s, _ := newTestSim(t)
	f := s.Snapshot()

	if f.Player.Health != cfg.Player.MaxHealth || f.Player.MaxHealth != cfg.Player.MaxHealth {
		t.Errorf("player health = %d/%d, want %d", f.Player.Health, f.Player.MaxHealth, cfg.Player.MaxHealth)
	}
	if f.Boss.Health != cfg.Boss.MaxHealth {
		t.Errorf("boss health = %d, want %d", f.Boss.Health, cfg.Boss.MaxHealth)
	}
	if f.Boss.Phase != cfg.Phase1 {
		t.Errorf("boss phase = %v, want phase 1", f.Boss.Phase)
	}
	if f.Boss.Name != cfg.Boss.Name || f.Boss.Title != cfg.Boss.Title {
		t.Errorf("boss title = %q %q", f.Boss.Name, f.Boss.Title)
	}
	if f.Player.Motion != cfg.Grounded {
		t.Errorf("player motion = %v, want grounded", f.Player.Motion)
	}
	if len(f.Entities) != 0 {
		t.Errorf("%d transient entities at start", len(f.Entities))
	}
}

func TestSlashHitsBossOnce(t *testing.T) {
	s, rec := newTestSim(t)
	slashAtBoss(s)

	for range 10 {
		s.Step(dt, idle())
	}

	want := cfg.Boss.MaxHealth - cfg.Slash.Damage
	if got := components.Health.Get(s.boss).Current; got != want {
		t.Fatalf("boss health = %d, want %d", got, want)
	}
	if got := len(rec.health[events.CombatantBoss]); got != 1 {
		t.Errorf("boss health notifications = %d, want 1", got)
	}
	if got := components.Burst.Get(s.player).Charge; got != cfg.Burst.ChargePerHit {
		t.Errorf("burst charge = %d, want %d", got, cfg.Burst.ChargePerHit)
	}
}

func TestComboSpawnsAtMostFiveSlashes(t *testing.T) {
	s, rec := newTestSim(t)
	silenceMissiles(s)

	// Mash attack for just over half a second.
	for range 33 {
		s.Step(dt, pressed(components.TriggerAttack))
	}

	f := s.Snapshot()
	if got := countKind(f, cfg.KindSlash); got != cfg.Slash.MaxCombo {
		t.Errorf("live slashes = %d, want %d", got, cfg.Slash.MaxCombo)
	}
	if f.Player.Attack != cfg.ComboAttacking {
		t.Errorf("attack state = %v, want combo attacking", f.Player.Attack)
	}
	if got := rec.countCue(cfg.SoundMeleeSwing); got != 1 {
		t.Errorf("swing cues = %d, want 1", got)
	}

	// The combo returns to idle after its reset delay and can start again.
	for range 30 {
		s.Step(dt, idle())
	}
	if got := components.Player.Get(s.player).Attack; got != cfg.AttackIdle {
		t.Fatalf("attack state after reset = %v, want idle", got)
	}
	s.Step(dt, pressed(components.TriggerAttack))
	if got := rec.countCue(cfg.SoundMeleeSwing); got != 2 {
		t.Errorf("swing cues after restart = %d, want 2", got)
	}
}

func TestBossPhaseThreshold(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  cfg.BossPhase
	}{
		{"above threshold", 0.51, cfg.Phase1},
		{"at threshold", 0.50, cfg.TransitioningToPhase2},
		{"below threshold", 0.20, cfg.TransitioningToPhase2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSim(t)
			hp := components.Health.Get(s.boss)
			hp.Current = int(float64(hp.Max) * tt.ratio)

			s.Step(dt, idle())
			if got := s.BossPhase(); got != tt.want {
				t.Errorf("phase = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBossPhasesOnlyMoveForward(t *testing.T) {
	s, rec := newTestSim(t)
	silenceMissiles(s)
	hp := components.Health.Get(s.boss)
	hp.Current = hp.Max / 2

	steps := int(math.Ceil(cfg.Boss.TransitionDuration/dt)) + 2
	for range steps {
		s.Step(dt, idle())
	}
	if got := s.BossPhase(); got != cfg.Phase2 {
		t.Fatalf("phase after transition = %v, want phase 2", got)
	}
	f := s.Snapshot()
	if f.Boss.Name != cfg.Boss.Phase2Name || f.Boss.Title != cfg.Boss.Phase2Title {
		t.Errorf("phase 2 title = %q %q", f.Boss.Name, f.Boss.Title)
	}

	hp.Current = hp.Max
	s.Step(dt, idle())
	if got := s.BossPhase(); got != cfg.Phase2 {
		t.Errorf("phase after healing = %v, want phase 2", got)
	}

	want := []cfg.BossPhase{cfg.TransitioningToPhase2, cfg.Phase2}
	if len(rec.phases) != len(want) {
		t.Fatalf("phase notifications = %v, want %v", rec.phases, want)
	}
	for i := range want {
		if rec.phases[i] != want[i] {
			t.Errorf("phase notification %d = %v, want %v", i, rec.phases[i], want[i])
		}
	}
	if got := rec.countCue(cfg.SoundPhase2Transition); got != 1 {
		t.Errorf("phase 2 cues = %d, want 1", got)
	}
}

func TestFallDamageFromHeight(t *testing.T) {
	tests := []struct {
		name   string
		height float64
		want   int
	}{
		{"short drop", 2.0, 0},
		{"long drop", 4.0, 1500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSim(t)
			silenceMissiles(s)

			player := components.Player.Get(s.player)
			components.Transform.Get(s.player).Position[1] = tt.height
			player.Motion = cfg.Jumping
			player.PeakHeight = tt.height

			for range 120 {
				s.Step(dt, idle())
			}
			if player.Motion != cfg.Grounded {
				t.Fatalf("player did not land, motion = %v", player.Motion)
			}
			got := cfg.Player.MaxHealth - components.Health.Get(s.player).Current
			if got != tt.want {
				t.Errorf("fall damage = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLaunchArcDoesNotCauseFallDamage(t *testing.T) {
	s, _ := newTestSim(t)
	silenceMissiles(s)

	player := components.Player.Get(s.player)
	player.VelocityY = cfg.Player.LaunchVelocity
	player.Motion = cfg.Jumping
	player.Launched = true

	for range 60 * 10 {
		s.Step(dt, idle())
		if player.Motion == cfg.Grounded {
			break
		}
	}
	if player.Motion != cfg.Grounded {
		t.Fatalf("player still airborne after launch")
	}
	if got := components.Health.Get(s.player).Current; got != cfg.Player.MaxHealth {
		t.Errorf("health after launch landing = %d, want %d", got, cfg.Player.MaxHealth)
	}
	if player.Launched {
		t.Errorf("launch flag not cleared on landing")
	}
}

func TestBurstChargeAndActivation(t *testing.T) {
	s, rec := newTestSim(t)
	silenceMissiles(s)

	// Face the boss so the burst arc reaches it.
	components.Transform.Get(s.player).Rotation[1] = math.Pi
	burst := components.Burst.Get(s.player)
	burst.Charge = cfg.Burst.MaxCharge - 1

	// Burst is refused until the meter is full.
	s.Step(dt, pressed(components.TriggerBurst))
	if burst.Activating {
		t.Fatal("burst activated with a partial meter")
	}

	slashAtBoss(s)
	s.Step(dt, idle())
	if !burst.Ready || burst.Charge != cfg.Burst.MaxCharge {
		t.Fatalf("burst = %+v, want full and ready", *burst)
	}
	last := rec.burst[len(rec.burst)-1]
	if last.Percent != 100 || !last.Ready {
		t.Errorf("last burst notification = %+v, want 100%% ready", last)
	}

	before := components.Health.Get(s.boss).Current
	s.Step(dt, pressed(components.TriggerBurst))
	if !burst.Activating || !burst.PoweredUp || burst.Charge != 0 || burst.Ready {
		t.Fatalf("burst after activation = %+v", *burst)
	}
	if got := before - components.Health.Get(s.boss).Current; got != cfg.Burst.Damage {
		t.Errorf("burst damage = %d, want %d", got, cfg.Burst.Damage)
	}
	if got := rec.countCue(cfg.SoundBurst); got != 1 {
		t.Errorf("burst cues = %d, want 1", got)
	}

	// Attacks are locked out while the burst plays.
	slashes := countKind(s.Snapshot(), cfg.KindSlash)
	s.Step(dt, pressed(components.TriggerAttack))
	if got := countKind(s.Snapshot(), cfg.KindSlash); got != slashes {
		t.Errorf("slashes during burst = %d, want %d", got, slashes)
	}

	for range int(cfg.Burst.Lifetime/dt) + 2 {
		s.Step(dt, idle())
	}
	if burst.Activating {
		t.Fatal("burst still activating after its slash expired")
	}

	s.Step(dt, pressed(components.TriggerAttack))
	var found bool
	for e := range components.Slash.Iter(s.ecs.World) {
		slash := components.Slash.Get(e)
		if slash.ComboIndex != 0 {
			continue
		}
		found = true
		if !slash.Powered || slash.Damage != cfg.Slash.Damage*cfg.Slash.PoweredMultiplier {
			t.Errorf("slash after burst = %+v, want powered", *slash)
		}
		if slash.Damage != 40000 {
			t.Errorf("powered slash damage = %d, want 40000", slash.Damage)
		}
	}
	if !found {
		t.Error("no slash spawned after the burst ended")
	}
}

func TestFallingOutOfTheArenaTeleports(t *testing.T) {
	s, rec := newTestSim(t)
	silenceMissiles(s)

	tf := components.Transform.Get(s.player)
	tf.Position = mgl64.Vec3{80, cfg.Arena.TeleportThresholdY - 1, 80}
	player := components.Player.Get(s.player)
	player.Motion = cfg.FallingOffEdge

	s.Step(dt, idle())

	if !tf.Position.ApproxEqual(player.SpawnPoint) {
		t.Errorf("position = %v, want spawn %v", tf.Position, player.SpawnPoint)
	}
	if player.Motion != cfg.Grounded || player.VelocityY != 0 {
		t.Errorf("after teleport motion = %v velocity = %v", player.Motion, player.VelocityY)
	}
	if len(rec.teleports) != 1 {
		t.Errorf("teleport notifications = %d, want 1", len(rec.teleports))
	}
	if got := components.Health.Get(s.player).Current; got != cfg.Player.MaxHealth {
		t.Errorf("health after teleport = %d, want %d", got, cfg.Player.MaxHealth)
	}
}

func TestPlayerHealthStaysInBounds(t *testing.T) {
	s, rec := newTestSim(t)
	silenceMissiles(s)

	components.QueueDamage(s.player, cfg.Player.MaxHealth*10, components.DamageMissile)
	s.Step(dt, idle())
	if got := components.Health.Get(s.player).Current; got != 0 {
		t.Fatalf("health = %d, want 0", got)
	}

	components.QueueDamage(s.player, 1, components.DamageMissile)
	s.Step(dt, idle())
	if got := components.Health.Get(s.player).Current; got != 0 {
		t.Errorf("health after overkill = %d, want 0", got)
	}
	if rec.playerDefeated != 1 {
		t.Errorf("player defeated notifications = %d, want 1", rec.playerDefeated)
	}
	if ended, victory := s.Over(); !ended || victory {
		t.Errorf("Over() = %v, %v, want ended in defeat", ended, victory)
	}

	// A dead player can no longer attack.
	s.Step(dt, pressed(components.TriggerAttack))
	if got := countKind(s.Snapshot(), cfg.KindSlash); got != 0 {
		t.Errorf("slashes after defeat = %d, want 0", got)
	}
}

func TestBossFallsToExactlyEnoughSlashes(t *testing.T) {
	s, rec := newTestSim(t)
	hits := cfg.Boss.MaxHealth / cfg.Slash.Damage

	for i := range hits {
		slashAtBoss(s)
		s.Step(dt, idle())
		hp := components.Health.Get(s.boss).Current
		if want := cfg.Boss.MaxHealth - (i+1)*cfg.Slash.Damage; hp != want {
			t.Fatalf("after hit %d boss health = %d, want %d", i+1, hp, want)
		}
	}

	if got := s.BossPhase(); got != cfg.Defeated {
		t.Fatalf("phase = %v, want defeated", got)
	}
	if ended, victory := s.Over(); !ended || !victory {
		t.Errorf("Over() = %v, %v, want victory", ended, victory)
	}

	// Further hits are ignored.
	for range 10 {
		slashAtBoss(s)
		s.Step(dt, idle())
	}
	if got := components.Health.Get(s.boss).Current; got != 0 {
		t.Errorf("boss health after defeat = %d, want 0", got)
	}
	if rec.bossDefeated != 1 {
		t.Errorf("boss defeated notifications = %d, want 1", rec.bossDefeated)
	}
	if got := rec.countCue(cfg.SoundBossDefeated); got != 1 {
		t.Errorf("boss defeated cues = %d, want 1", got)
	}
	want := []cfg.BossPhase{cfg.TransitioningToPhase2, cfg.Phase2, cfg.Defeated}
	if len(rec.phases) != len(want) {
		t.Fatalf("phase notifications = %v, want %v", rec.phases, want)
	}
	for i := range want {
		if rec.phases[i] != want[i] {
			t.Errorf("phase notification %d = %v, want %v", i, rec.phases[i], want[i])
		}
	}
}

func TestStepIgnoresBadDeltas(t *testing.T) {
	s, _ := newTestSim(t)
	s.Step(-1, idle())
	s.Step(math.NaN(), idle())
	if got := s.Time(); got != 0 {
		t.Errorf("time after bad deltas = %v, want 0", got)
	}
	s.Step(10, idle())
	if got := s.Time(); got != cfg.Sim.MaxDelta {
		t.Errorf("time after stall = %v, want %v", got, cfg.Sim.MaxDelta)
	}
}

func TestHeldJumpJumpsOnce(t *testing.T) {
	s, _ := newTestSim(t)
	silenceMissiles(s)
	player := components.Player.Get(s.player)

	jumps := 0
	prev := player.Motion
	step := func(in components.InputSnapshot) {
		s.Step(dt, in)
		if player.Motion == cfg.Jumping && prev != cfg.Jumping {
			jumps++
		}
		prev = player.Motion
	}

	held := components.InputSnapshot{JumpHeld: true}
	for range 300 {
		step(held)
	}
	if jumps != 1 {
		t.Fatalf("jumps while holding for 5s = %d, want 1", jumps)
	}
	if player.Motion != cfg.Grounded {
		t.Fatalf("motion after landing = %v, want grounded", player.Motion)
	}

	step(idle())
	step(held)
	if jumps != 2 {
		t.Errorf("jumps after release and press = %d, want 2", jumps)
	}
}
