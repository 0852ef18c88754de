package factory

import (
	"github.com/automoto/bossfight/archetypes"
	"github.com/automoto/bossfight/components"
	cfg "github.com/automoto/bossfight/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Pitch:          cfg.Camera.InitialPitch,
		Distance:       cfg.Camera.Distance,
		TargetDistance: cfg.Camera.Distance,
	})
	return camera
}
