// Package geometry holds the bounding-volume tests and angle helpers used by
// combat resolution. Everything here is a pure function on mgl64 values.
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Sphere is a bounding sphere in world space.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// AABBFromCenter builds a box from its centre and half extents.
func AABBFromCenter(center, half mgl64.Vec3) AABB {
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// Center returns the midpoint of the box.
func (b AABB) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// HalfExtents returns half the size of the box on each axis.
func (b AABB) HalfExtents() mgl64.Vec3 {
	return b.Max.Sub(b.Min).Mul(0.5)
}

// ClosestPoint clamps p into the box.
func (b AABB) ClosestPoint(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		mgl64.Clamp(p[0], b.Min[0], b.Max[0]),
		mgl64.Clamp(p[1], b.Min[1], b.Max[1]),
		mgl64.Clamp(p[2], b.Min[2], b.Max[2]),
	}
}

// SphereIntersectsBox reports whether the sphere touches or overlaps the box.
func SphereIntersectsBox(s Sphere, b AABB) bool {
	d := b.ClosestPoint(s.Center).Sub(s.Center)
	return d.LenSqr() <= s.Radius*s.Radius
}

// SphereIntersectsSphere reports whether the centres are closer than the sum
// of the radii. Touching spheres do not intersect.
func SphereIntersectsSphere(a, b Sphere) bool {
	r := a.Radius + b.Radius
	return a.Center.Sub(b.Center).LenSqr() < r*r
}

// RotatedHalfExtents returns the half extents of the axis-aligned box that
// encloses a box with the given half extents rotated by XYZ Euler angles.
func RotatedHalfExtents(half, euler mgl64.Vec3) mgl64.Vec3 {
	rot := mgl64.Rotate3DX(euler[0]).Mul3(mgl64.Rotate3DY(euler[1])).Mul3(mgl64.Rotate3DZ(euler[2]))
	var out mgl64.Vec3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row] += math.Abs(rot.At(row, col)) * half[col]
		}
	}
	return out
}

// WrapAngle maps a to [0, 2π).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// ShortestAngleDelta returns the signed rotation in (-π, π] that turns
// current onto target.
func ShortestAngleDelta(current, target float64) float64 {
	d := math.Mod(target-current, 2*math.Pi)
	switch {
	case d > math.Pi:
		d -= 2 * math.Pi
	case d <= -math.Pi:
		d += 2 * math.Pi
	}
	return d
}

// TurnToward moves current a fraction rate of the way to target along the
// shortest arc.
func TurnToward(current, target, rate float64) float64 {
	return current + ShortestAngleDelta(current, target)*rate
}

// Heading returns the yaw that faces along v on the XZ plane, with yaw 0
// facing +Z.
func Heading(v mgl64.Vec3) float64 {
	return math.Atan2(v[0], v[2])
}

// Forward returns the unit XZ vector for a yaw, the inverse of Heading.
func Forward(yaw float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(yaw), 0, math.Cos(yaw)}
}

// CameraBasis returns the flattened forward and right vectors of an orbit
// camera at the given yaw. The camera sits at +Z of its target when yaw is
// zero, so it looks down -Z.
func CameraBasis(yaw float64) (forward, right mgl64.Vec3) {
	forward = mgl64.Vec3{-math.Sin(yaw), 0, -math.Cos(yaw)}
	right = mgl64.Vec3{math.Cos(yaw), 0, -math.Sin(yaw)}
	return forward, right
}

// FlatDistanceSqr is the squared distance between a and b ignoring height.
func FlatDistanceSqr(a, b mgl64.Vec3) float64 {
	dx := a[0] - b[0]
	dz := a[2] - b[2]
	return dx*dx + dz*dz
}

// SafeNormalize returns v scaled to unit length, or the zero vector when v
// is too short to have a direction.
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < 1e-9 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// View projects world points onto the screen for a camera orbiting Target.
// The camera's forward axis points up the screen; Pitch tilts the ground
// plane and lifts points by their height.
type View struct {
	Target  mgl64.Vec3
	Yaw     float64
	Pitch   float64
	Scale   float64 // pixels per world unit
	CenterX float64
	CenterY float64
}

// Project returns the screen position of p.
func (v View) Project(p mgl64.Vec3) (x, y float64) {
	forward, right := CameraBasis(v.Yaw)
	rel := p.Sub(v.Target)
	across := rel.Dot(right)
	depth := rel.Dot(forward)
	x = v.CenterX + across*v.Scale
	y = v.CenterY - depth*v.Scale*math.Sin(v.Pitch) - rel.Y()*v.Scale*math.Cos(v.Pitch)
	return x, y
}
