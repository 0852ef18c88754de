package systems

import (
	"math"

	cfg "github.com/automoto/bossfight/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock consumes the pending frame duration. Negative or NaN
// durations count as zero and long stalls are capped.
func UpdateClock(ecs *ecs.ECS) {
	clock := clockOf(ecs)
	dt := clock.Pending
	clock.Pending = 0
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}
	if dt > cfg.Sim.MaxDelta {
		dt = cfg.Sim.MaxDelta
	}
	clock.Delta = dt
	clock.Elapsed += dt
	clock.Frame++
}
