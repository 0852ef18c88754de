package systems

import (
	"github.com/automoto/bossfight/events"
	"github.com/yohamta/donburi/ecs"
)

// FlushEvents delivers the frame's queued events. It runs last so
// subscribers see the settled state of the frame.
func FlushEvents(ecs *ecs.ECS) {
	events.Flush(ecs.World)
}
