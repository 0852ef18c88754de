package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is a world-space pose. Rotation holds XYZ Euler angles in
// radians; Rotation.Y() is the facing yaw with 0 facing +Z.
type TransformData struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
}

var Transform = donburi.NewComponentType[TransformData]()
