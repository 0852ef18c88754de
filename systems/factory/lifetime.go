package factory

import (
	"github.com/automoto/bossfight/components"
	"github.com/tanema/gween"
)

func newLifetime(now, duration float64, fade, scale *gween.Tween) components.LifetimeData {
	l := components.LifetimeData{
		CreatedAt:  now,
		Duration:   duration,
		Opacity:    1,
		Scale:      1,
		FadeTween:  fade,
		ScaleTween: scale,
	}
	l.Advance(now)
	return l
}
