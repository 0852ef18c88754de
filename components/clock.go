package components

import "github.com/yohamta/donburi"

// ClockData is the simulation's monotonic time source (singleton).
type ClockData struct {
	Pending float64 // raw frame duration handed in by the driver
	Elapsed float64 // seconds since the encounter started
	Delta   float64 // seconds covered by the current frame
	Frame   uint64
}

var Clock = donburi.NewComponentType[ClockData]()

// Now returns the elapsed simulation time, or 0 before the clock exists.
func Now(w donburi.World) float64 {
	if e, ok := Clock.First(w); ok {
		return Clock.Get(e).Elapsed
	}
	return 0
}
