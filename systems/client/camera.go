package client

import (
	"github.com/automoto/bossfight/components"
	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/geometry"
	"github.com/automoto/bossfight/simulation"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera applies mouse drag orbit, wheel zoom and right-stick orbit,
// then eases the zoom and screen shake.
func UpdateCamera(e *ecs.ECS, in *InputState, dt float64) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(entry)

	switch {
	case in.MouseJustPressed:
		cam.Dragging = true
	case !in.MouseHeld:
		cam.Dragging = false
	default:
		if cam.Dragging {
			cam.Orbit(float64(in.MouseX-cam.LastMouseX), float64(in.MouseY-cam.LastMouseY))
		}
	}
	cam.LastMouseX, cam.LastMouseY = in.MouseX, in.MouseY

	if in.WheelY != 0 {
		cam.Zoom(in.WheelY)
	}
	cam.Yaw += in.StickX * cfg.Camera.StickOrbitSpeed * dt
	cam.Advance(dt)
}

// ShakeCamera starts the slam-landing shake.
func ShakeCamera(e *ecs.ECS) {
	if entry, ok := components.Camera.First(e.World); ok {
		components.Camera.Get(entry).Shake(cfg.Camera.ShakeIntensity, cfg.Camera.ShakeDuration)
	}
}

// ViewOf builds the projection for the current camera, centred on the
// player at follow height.
func ViewOf(e *ecs.ECS, f simulation.Frame) geometry.View {
	v := geometry.View{
		Target:  f.Player.Position.Add(mgl64.Vec3{0, cfg.Camera.FollowHeight, 0}),
		Pitch:   cfg.Camera.InitialPitch,
		Scale:   cfg.Camera.PixelsPerUnit,
		CenterX: float64(cfg.C.Width) / 2,
		CenterY: float64(cfg.C.Height) / 2,
	}
	if entry, ok := components.Camera.First(e.World); ok {
		cam := components.Camera.Get(entry)
		v.Yaw = cam.Yaw
		v.Pitch = cam.Pitch
		v.Scale = cam.Scale()
		v.CenterX += cam.ShakeX
		v.CenterY += cam.ShakeY
	}
	return v
}
