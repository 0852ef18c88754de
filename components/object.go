package components

import (
	cfg "github.com/automoto/bossfight/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the entity's footprint in the XZ broadphase space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceOrigin is the world XZ coordinate mapped to (0, 0) in the resolv
// space, which only covers positive coordinates.
func SpaceOrigin() float64 {
	return -(cfg.Arena.HalfSize + cfg.Arena.SpaceMargin)
}

// SpaceSize is the width and depth of the resolv space in world units.
func SpaceSize() int {
	return int(2 * (cfg.Arena.HalfSize + cfg.Arena.SpaceMargin))
}

// spaceCoord maps a world X or Z coordinate to the footprint's corner in
// the resolv space. Footprints past the edge are pinned to the border cells
// so far-flung entities still meet each other in the broadphase; the narrow
// phase works on true positions.
func spaceCoord(world, half float64) float64 {
	c := world - half - SpaceOrigin()
	hi := float64(SpaceSize()) - 2*half
	if c > hi {
		c = hi
	}
	if c < 0 {
		c = 0
	}
	return c
}

// NewFootprint creates a resolv object covering a square of the given half
// size around center on the XZ plane.
func NewFootprint(center mgl64.Vec3, half float64, tags ...string) *resolv.Object {
	return resolv.NewObject(spaceCoord(center.X(), half), spaceCoord(center.Z(), half), 2*half, 2*half, tags...)
}

// Place moves the footprint so it is centred on center with the given half
// size and refreshes its cells.
func (d *ObjectData) Place(center mgl64.Vec3, half float64) {
	d.X = spaceCoord(center.X(), half)
	d.Y = spaceCoord(center.Z(), half)
	d.W = 2 * half
	d.H = 2 * half
	d.Update()
}
