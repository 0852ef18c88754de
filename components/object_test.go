package components

import (
	"testing"

	cfg "github.com/automoto/bossfight/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

func TestFootprintPlacement(t *testing.T) {
	edge := cfg.Arena.HalfSize + cfg.Arena.SpaceMargin
	size := float64(SpaceSize())
	tests := []struct {
		name   string
		center mgl64.Vec3
		half   float64
		x, y   float64
	}{
		{"origin", mgl64.Vec3{}, 1, edge - 1, edge - 1},
		{"inside", mgl64.Vec3{10, 3, -20}, 0.5, edge + 9.5, edge - 20.5},
		{"past positive edge", mgl64.Vec3{edge + 60, 0, 0}, 1, size - 2, edge - 1},
		{"past negative edge", mgl64.Vec3{0, 0, -edge - 300}, 2, edge - 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := NewFootprint(tt.center, tt.half)
			if obj.X != tt.x || obj.Y != tt.y {
				t.Errorf("footprint at (%v, %v), want (%v, %v)", obj.X, obj.Y, tt.x, tt.y)
			}
			if obj.W != 2*tt.half || obj.H != 2*tt.half {
				t.Errorf("footprint size %vx%v, want %v", obj.W, obj.H, 2*tt.half)
			}
		})
	}
}

func TestFootprintsBeyondTheSpaceStillMeet(t *testing.T) {
	size := SpaceSize()
	space := resolv.NewSpace(size, size, cfg.Arena.SpaceCell, cfg.Arena.SpaceCell)
	far := 3 * (cfg.Arena.HalfSize + cfg.Arena.SpaceMargin)

	a := &ObjectData{Object: NewFootprint(mgl64.Vec3{far, 0, far}, 0.5, "a")}
	b := &ObjectData{Object: NewFootprint(mgl64.Vec3{0, 0, 0}, 0.5, "b")}
	space.Add(a.Object, b.Object)

	b.Place(mgl64.Vec3{far + 1, 0, far}, 0.5)
	if a.Check(0, 0, "b") == nil {
		t.Error("footprints past the edge did not share a cell")
	}
}
