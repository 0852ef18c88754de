package factory

import (
	"github.com/automoto/bossfight/archetypes"
	"github.com/automoto/bossfight/components"
	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTrailSegment spawns one fading line segment of a slam descent.
func CreateTrailSegment(ecs *ecs.ECS, from, to mgl64.Vec3) *donburi.Entry {
	trail := archetypes.TrailSegment.Spawn(ecs)
	components.Trail.SetValue(trail, components.TrailData{From: from, To: to})
	components.Lifetime.SetValue(trail, newLifetime(
		components.Now(ecs.World),
		cfg.Slam.TrailLifetime,
		fadeOut(cfg.Slam.TrailOpacity, cfg.Slam.TrailLifetime, ease.InQuad),
		nil,
	))
	return trail
}

// CreateExplosion spawns the slam shockwave on the ground below at.
func CreateExplosion(ecs *ecs.ECS, at mgl64.Vec3) *donburi.Entry {
	pos := mgl64.Vec3{at.X(), arenaOf(ecs).GroundLevel + cfg.Slam.ExplosionHeight, at.Z()}
	life := cfg.Slam.ExplosionLifetime

	explosion := archetypes.Explosion.Spawn(ecs)
	obj := components.NewFootprint(pos, cfg.Slam.ExplosionMaxRadius, tags.ResolvExplosion)
	obj.Data = explosion
	components.Object.SetValue(explosion, components.ObjectData{Object: obj})
	components.Transform.SetValue(explosion, components.TransformData{Position: pos})
	components.Explosion.SetValue(explosion, components.ExplosionData{
		MaxRadius: cfg.Slam.ExplosionMaxRadius,
		Damage:    cfg.Slam.ExplosionDamage,
	})
	components.Lifetime.SetValue(explosion, newLifetime(
		components.Now(ecs.World),
		life,
		fadeOut(cfg.Slam.ExplosionOpacity, life, ease.InQuad),
		gween.New(0, float32(cfg.Slam.ExplosionMaxRadius), float32(life), sqrtOut),
	))

	addToSpace(ecs, obj)
	return explosion
}
