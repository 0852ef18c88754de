package components

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

// RandomData holds the seeded source used for visual jitter (singleton).
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()

// Jitter returns a value in [-span/2, span/2).
func (r *RandomData) Jitter(span float64) float64 {
	return (r.Float64() - 0.5) * span
}
