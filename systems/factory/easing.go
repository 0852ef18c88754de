package factory

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// powerIn eases along b + c*r^p where r is the elapsed fraction.
func powerIn(p float64) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*float32(math.Pow(float64(t/d), p))
	}
}

// sqrtOut eases along b + c*sqrt(r), fast at first and settling at the end.
func sqrtOut(t, b, c, d float32) float32 {
	if d <= 0 {
		return b + c
	}
	return b + c*float32(math.Sqrt(float64(t/d)))
}

// fadeOut builds a tween from peak opacity to zero over duration seconds.
func fadeOut(peak, duration float64, fn ease.TweenFunc) *gween.Tween {
	return gween.New(float32(peak), 0, float32(duration), fn)
}
