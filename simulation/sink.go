package simulation

import (
	"log"

	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/events"
	"github.com/go-gl/mathgl/mgl64"
)

// Sink receives UI and audio notifications at the end of every frame.
type Sink interface {
	HealthChanged(who events.Combatant, current, max int)
	BurstChanged(percent int, ready bool)
	BossPhaseChanged(phase cfg.BossPhase)
	BossDefeated()
	PlayerDefeated()
	Cue(id cfg.SoundID)
}

// MilestoneSink is implemented by sinks that also want teleports and slam
// landings.
type MilestoneSink interface {
	Teleported(to mgl64.Vec3)
	SlamLanded(at mgl64.Vec3)
}

// NopSink discards every notification.
type NopSink struct{}

func (NopSink) HealthChanged(events.Combatant, int, int) {}
func (NopSink) BurstChanged(int, bool)                   {}
func (NopSink) BossPhaseChanged(cfg.BossPhase)           {}
func (NopSink) BossDefeated()                            {}
func (NopSink) PlayerDefeated()                          {}
func (NopSink) Cue(cfg.SoundID)                          {}

// LogSink logs encounter milestones. Per-hit health changes and cues are
// left out.
type LogSink struct {
	Logger *log.Logger
}

func (s LogSink) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

func (s LogSink) HealthChanged(events.Combatant, int, int) {}

func (s LogSink) BurstChanged(percent int, ready bool) {
	if ready {
		s.logf("burst ready (%d%%)", percent)
	}
}

func (s LogSink) BossPhaseChanged(phase cfg.BossPhase) {
	s.logf("boss phase: %s", phase)
}

func (s LogSink) BossDefeated() {
	s.logf("boss defeated")
}

func (s LogSink) PlayerDefeated() {
	s.logf("player defeated")
}

func (s LogSink) Cue(cfg.SoundID) {}

func (s LogSink) Teleported(to mgl64.Vec3) {
	s.logf("player fell out of the arena, teleported to %.1f %.1f %.1f", to.X(), to.Y(), to.Z())
}

func (s LogSink) SlamLanded(at mgl64.Vec3) {
	s.logf("slam landed at %.1f %.1f", at.X(), at.Z())
}

// MultiSink forwards every notification to each of its sinks in order.
type MultiSink []Sink

func (m MultiSink) HealthChanged(who events.Combatant, current, max int) {
	for _, s := range m {
		s.HealthChanged(who, current, max)
	}
}

func (m MultiSink) BurstChanged(percent int, ready bool) {
	for _, s := range m {
		s.BurstChanged(percent, ready)
	}
}

func (m MultiSink) BossPhaseChanged(phase cfg.BossPhase) {
	for _, s := range m {
		s.BossPhaseChanged(phase)
	}
}

func (m MultiSink) BossDefeated() {
	for _, s := range m {
		s.BossDefeated()
	}
}

func (m MultiSink) PlayerDefeated() {
	for _, s := range m {
		s.PlayerDefeated()
	}
}

func (m MultiSink) Cue(id cfg.SoundID) {
	for _, s := range m {
		s.Cue(id)
	}
}

func (m MultiSink) Teleported(to mgl64.Vec3) {
	for _, s := range m {
		if ms, ok := s.(MilestoneSink); ok {
			ms.Teleported(to)
		}
	}
}

func (m MultiSink) SlamLanded(at mgl64.Vec3) {
	for _, s := range m {
		if ms, ok := s.(MilestoneSink); ok {
			ms.SlamLanded(at)
		}
	}
}
