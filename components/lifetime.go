package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// LifetimeData drives a transient entity from spawn to expiry. Opacity and
// Scale are eased from the entity's age by the optional tweens.
type LifetimeData struct {
	CreatedAt float64
	Duration  float64
	Ratio     float64
	Opacity   float64
	Scale     float64

	FadeTween  *gween.Tween
	ScaleTween *gween.Tween
}

var Lifetime = donburi.NewComponentType[LifetimeData]()

// Age returns the seconds since spawn at time now.
func (l *LifetimeData) Age(now float64) float64 {
	return now - l.CreatedAt
}

// Expired reports whether the entity's age reached its lifetime.
func (l *LifetimeData) Expired(now float64) bool {
	return l.Duration <= 0 || l.Age(now) >= l.Duration
}

// Advance recomputes Ratio, Opacity and Scale for time now.
func (l *LifetimeData) Advance(now float64) {
	age := l.Age(now)
	if l.Duration > 0 {
		l.Ratio = min(1, max(0, age/l.Duration))
	} else {
		l.Ratio = 1
	}
	if l.FadeTween != nil {
		v, _ := l.FadeTween.Set(float32(age))
		l.Opacity = float64(v)
	}
	if l.ScaleTween != nil {
		v, _ := l.ScaleTween.Set(float32(age))
		l.Scale = float64(v)
	}
}
