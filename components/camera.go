package components

import (
	"math"

	cfg "github.com/automoto/bossfight/config"
	"github.com/yohamta/donburi"
)

// CameraData is the client's orbit camera. Yaw feeds the input snapshot so
// movement stays relative to the view.
type CameraData struct {
	Yaw            float64
	Pitch          float64
	Distance       float64
	TargetDistance float64

	Dragging   bool
	LastMouseX int
	LastMouseY int

	ShakeIntensity float64
	ShakeTimer     float64
	ShakeX, ShakeY float64
}

var Camera = donburi.NewComponentType[CameraData]()

// Orbit turns the camera by a mouse drag of dx, dy pixels. Pitch is capped
// from above only.
func (c *CameraData) Orbit(dx, dy float64) {
	c.Yaw += dx * cfg.Camera.DragSensitivity
	c.Pitch -= dy * cfg.Camera.DragSensitivity
	c.Pitch = math.Min(cfg.Camera.MaxPitch, c.Pitch)
}

// Zoom moves the target distance by wheel notches; positive notches zoom
// in.
func (c *CameraData) Zoom(notches float64) {
	c.TargetDistance -= notches * cfg.Camera.WheelStep
	c.TargetDistance = math.Max(cfg.Camera.MinZoom, math.Min(cfg.Camera.MaxZoom, c.TargetDistance))
}

// Shake starts a decaying screen shake unless a stronger one is running.
func (c *CameraData) Shake(intensity, duration float64) {
	if c.ShakeTimer > 0 && c.ShakeIntensity > intensity {
		return
	}
	c.ShakeIntensity = intensity
	c.ShakeTimer = duration
}

// Advance eases the distance toward its target and steps the shake.
func (c *CameraData) Advance(dt float64) {
	rate := 1 - math.Pow(1-cfg.Camera.ZoomSmoothing, dt*cfg.Player.TurnRateFPS)
	c.Distance += (c.TargetDistance - c.Distance) * rate

	if c.ShakeTimer <= 0 {
		c.ShakeX, c.ShakeY = 0, 0
		return
	}
	c.ShakeTimer = math.Max(0, c.ShakeTimer-dt)
	amp := c.ShakeIntensity * c.ShakeTimer / cfg.Camera.ShakeDuration
	phase := c.ShakeTimer * 60
	c.ShakeX = math.Sin(phase*1.1) * amp
	c.ShakeY = math.Cos(phase*1.3) * amp
}

// Scale is pixels per world unit at the current zoom.
func (c *CameraData) Scale() float64 {
	if c.Distance <= 0 {
		return cfg.Camera.PixelsPerUnit
	}
	return cfg.Camera.PixelsPerUnit * cfg.Camera.Distance / c.Distance
}
