package systems

import (
	"github.com/automoto/bossfight/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

var placedObjects = query.NewQuery(filter.Contains(components.Object, components.Transform))

// UpdateObjects re-centres every broadphase footprint on its entity's
// transform, keeping its size, so the grid cells are current for the next
// frame's checks.
func UpdateObjects(ecs *ecs.ECS) {
	placedObjects.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object == nil {
			return
		}
		obj.Place(components.Transform.Get(e).Position, obj.W/2)
	})
}
