package simulation

import (
	"github.com/automoto/bossfight/components"
	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Frame is a read-only copy of everything a renderer or HUD needs.
type Frame struct {
	Time     float64
	Frame    uint64
	Player   PlayerView
	Boss     BossView
	Entities []EntityView
}

type PlayerView struct {
	Position   mgl64.Vec3
	Facing     float64
	Health     int
	MaxHealth  int
	Motion     cfg.MotionState
	Attack     cfg.AttackState
	ComboIndex int
	Immune     bool
	Burst      BurstView
}

type BurstView struct {
	Charge     int
	Ready      bool
	Activating bool
	PoweredUp  bool
}

type BossView struct {
	Position  mgl64.Vec3
	Rotation  mgl64.Vec3
	Health    int
	MaxHealth int
	Phase     cfg.BossPhase
	Glow      float64
	Name      string
	Title     string
}

// EntityView describes one live transient entity. For trail segments
// Position and End are the segment's endpoints.
type EntityView struct {
	Kind     cfg.EntityKind
	Position mgl64.Vec3
	End      mgl64.Vec3
	Rotation mgl64.Vec3
	Radius   float64
	Opacity  float64
	Color    uint32
}

// BossTitle returns the name and subtitle shown for the boss in a phase.
func BossTitle(phase cfg.BossPhase) (name, title string) {
	if phase == cfg.Phase1 {
		return cfg.Boss.Name, cfg.Boss.Title
	}
	return cfg.Boss.Phase2Name, cfg.Boss.Phase2Title
}

// Snapshot copies the current state of the encounter.
func (s *Simulation) Snapshot() Frame {
	w := s.ecs.World
	clock := components.Clock.Get(components.Clock.MustFirst(w))

	player := components.Player.Get(s.player)
	ptf := components.Transform.Get(s.player)
	php := components.Health.Get(s.player)
	burst := components.Burst.Get(s.player)

	boss := components.Boss.Get(s.boss)
	btf := components.Transform.Get(s.boss)
	bhp := components.Health.Get(s.boss)
	name, title := BossTitle(boss.Phase)

	f := Frame{
		Time:  clock.Elapsed,
		Frame: clock.Frame,
		Player: PlayerView{
			Position:   ptf.Position,
			Facing:     ptf.Rotation.Y(),
			Health:     php.Current,
			MaxHealth:  php.Max,
			Motion:     player.Motion,
			Attack:     player.Attack,
			ComboIndex: player.Combo.Index,
			Immune:     player.Immune(),
			Burst: BurstView{
				Charge:     burst.Charge,
				Ready:      burst.Ready,
				Activating: burst.Activating,
				PoweredUp:  burst.PoweredUp,
			},
		},
		Boss: BossView{
			Position:  btf.Position,
			Rotation:  btf.Rotation,
			Health:    bhp.Current,
			MaxHealth: bhp.Max,
			Phase:     boss.Phase,
			Glow:      boss.Glow,
			Name:      name,
			Title:     title,
		},
	}

	tags.Slash.Each(w, func(e *donburi.Entry) {
		slash := components.Slash.Get(e)
		tf := components.Transform.Get(e)
		f.Entities = append(f.Entities, EntityView{
			Kind:     cfg.KindSlash,
			Position: tf.Position,
			Rotation: tf.Rotation,
			Radius:   slash.Radius,
			Opacity:  components.Lifetime.Get(e).Opacity,
			Color:    slash.Color,
		})
	})
	tags.BurstSlash.Each(w, func(e *donburi.Entry) {
		b := components.BurstSlash.Get(e)
		tf := components.Transform.Get(e)
		f.Entities = append(f.Entities, EntityView{
			Kind:     cfg.KindBurstSlash,
			Position: tf.Position,
			Rotation: tf.Rotation,
			Radius:   b.Radius,
			Opacity:  components.Lifetime.Get(e).Opacity,
			Color:    b.Color,
		})
	})
	tags.Missile.Each(w, func(e *donburi.Entry) {
		m := components.Missile.Get(e)
		f.Entities = append(f.Entities, EntityView{
			Kind:     cfg.KindMissile,
			Position: components.Transform.Get(e).Position,
			Radius:   m.Radius,
			Opacity:  1,
			Color:    m.Color,
		})
	})
	tags.TrailSegment.Each(w, func(e *donburi.Entry) {
		t := components.Trail.Get(e)
		f.Entities = append(f.Entities, EntityView{
			Kind:     cfg.KindTrailSegment,
			Position: t.From,
			End:      t.To,
			Opacity:  components.Lifetime.Get(e).Opacity,
		})
	})
	tags.Explosion.Each(w, func(e *donburi.Entry) {
		x := components.Explosion.Get(e)
		f.Entities = append(f.Entities, EntityView{
			Kind:     cfg.KindExplosion,
			Position: components.Transform.Get(e).Position,
			Radius:   x.Radius,
			Opacity:  components.Lifetime.Get(e).Opacity,
		})
	})
	return f
}
