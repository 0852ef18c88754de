// Package assets loads the arena layout from Tiled maps.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/bossfight/components"
	cfg "github.com/automoto/bossfight/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var assetFS embed.FS

var errNoGround = errors.New("no ground rectangle")

// LoadArena reads the built-in arena map named by config.Arena.MapPath.
func LoadArena() (*components.ArenaData, error) {
	levels, err := fs.Sub(assetFS, "levels")
	if err != nil {
		return nil, fmt.Errorf("assets: load arena: %w", err)
	}
	return LoadArenaFS(levels, cfg.Arena.MapPath)
}

// LoadArenaFS reads an arena map from fsys. Map pixels are converted to
// world units with the ground object's pixelsPerUnit property, and the
// centre of the ground rectangle becomes the world origin. Pixel Y maps to
// world Z.
func LoadArenaFS(fsys fs.FS, name string) (*components.ArenaData, error) {
	m, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("assets: load arena %s: %w", name, err)
	}

	var ground *tiled.Object
	points := map[string]*tiled.Object{}
	for _, og := range m.ObjectGroups {
		if og.Name != "spawns" {
			continue
		}
		for _, o := range og.Objects {
			switch o.Name {
			case "ground":
				ground = o
			case "player", "boss":
				points[o.Name] = o
			}
		}
	}
	if ground == nil || ground.Width <= 0 || ground.Height <= 0 {
		return nil, fmt.Errorf("assets: load arena %s: %w", name, errNoGround)
	}

	ppu := ground.Properties.GetFloat("pixelsPerUnit")
	if ppu <= 0 {
		ppu = 1
	}
	cx := ground.X + ground.Width/2
	cy := ground.Y + ground.Height/2
	groundLevel := ground.Properties.GetFloat("groundLevel")

	toWorld := func(o *tiled.Object, fallback mgl64.Vec3) mgl64.Vec3 {
		if o == nil {
			return fallback
		}
		return mgl64.Vec3{
			(o.X - cx) / ppu,
			groundLevel + o.Properties.GetFloat("height"),
			(o.Y - cy) / ppu,
		}
	}

	return &components.ArenaData{
		Name:        strings.TrimSuffix(path.Base(name), path.Ext(name)),
		GroundLevel: groundLevel,
		HalfSize:    min(ground.Width, ground.Height) / 2 / ppu,
		PlayerSpawn: toWorld(points["player"], cfg.Arena.PlayerSpawn),
		BossSpawn:   toWorld(points["boss"], cfg.Boss.Spawn),
	}, nil
}
