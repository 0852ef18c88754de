package systems

import (
	"math"

	"github.com/automoto/bossfight/components"
	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/events"
	"github.com/automoto/bossfight/geometry"
	"github.com/automoto/bossfight/systems/factory"
	"github.com/automoto/bossfight/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerTimers advances the launch cooldown, post-land immunity and
// the slam trail timer.
func UpdatePlayerTimers(ecs *ecs.ECS) {
	dt := clockOf(ecs).Delta
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		player.SinceLaunch += dt

		if player.PostLandImmune {
			player.PostLandTimer -= dt
			if player.PostLandTimer <= 0 {
				player.PostLandImmune = false
				player.PostLandTimer = 0
			}
		}
		if player.Motion == cfg.AerialSlamming {
			player.TrailTimer += dt
		}
	})
}

// UpdatePlayerActions routes the frame's discrete triggers.
func UpdatePlayerActions(ecs *ecs.ECS) {
	input := inputOf(ecs)
	if len(input.Triggers) == 0 {
		return
	}
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		for _, t := range input.Triggers {
			switch t {
			case components.TriggerAttack:
				if CanStartAerialSlam(ecs, e) {
					StartAerialSlam(ecs, e)
				} else {
					StartComboAttack(ecs, e)
				}
			case components.TriggerBurst:
				ActivateBurst(ecs, e)
			}
		}
	})
}

// canAct is the shared gate for attacks and abilities.
func canAct(ecs *ecs.ECS, e *donburi.Entry) bool {
	player := components.Player.Get(e)
	burst := components.Burst.Get(e)
	return alive(e) && !bossDefeated(ecs) && !burst.Activating && player.Motion != cfg.AerialSlamming
}

// CanStartAerialSlam reports whether an attack now becomes a slam: the
// player is airborne and high enough above the ground.
func CanStartAerialSlam(ecs *ecs.ECS, e *donburi.Entry) bool {
	if !canAct(ecs, e) {
		return false
	}
	player := components.Player.Get(e)
	y := components.Transform.Get(e).Position.Y()
	switch player.Motion {
	case cfg.Jumping, cfg.FallingOffEdge:
		return y > arenaOf(ecs).GroundLevel+cfg.Slam.MinHeight
	}
	return false
}

// StartAerialSlam switches the player into a slam descent.
func StartAerialSlam(ecs *ecs.ECS, e *donburi.Entry) bool {
	if !CanStartAerialSlam(ecs, e) {
		return false
	}
	player := components.Player.Get(e)
	pos := components.Transform.Get(e).Position

	player.Motion = cfg.AerialSlamming
	player.Attack = cfg.AttackIdle
	player.Combo = components.ComboData{}
	player.DescentImmune = true
	player.PostLandImmune = false
	player.PostLandTimer = 0
	player.PeakHeight = pos.Y()
	player.VelocityY = -cfg.Slam.Speed
	player.TrailPoint = pos
	player.HasTrailPoint = true
	player.TrailTimer = cfg.Slam.TrailInterval
	return true
}

// StartComboAttack begins a melee combo. Slash 0 spawns now and the rest
// are scheduled at fixed offsets from the start.
func StartComboAttack(ecs *ecs.ECS, e *donburi.Entry) bool {
	player := components.Player.Get(e)
	if !canAct(ecs, e) || player.Attack == cfg.ComboAttacking {
		return false
	}
	now := clockOf(ecs).Elapsed

	player.Attack = cfg.ComboAttacking
	player.Combo = components.ComboData{
		Index:  0,
		NextAt: now + cfg.Slash.Interval,
	}
	if cfg.Slash.MaxCombo == 1 {
		player.Combo.ResetAt = now + cfg.Slash.Interval*cfg.Slash.ResetDelayFactor
	}

	PlaySFX(ecs, cfg.SoundMeleeSwing)
	factory.CreateSlash(ecs, e, 0, components.Burst.Get(e).PoweredUp)
	return true
}

// UpdateCombo spawns the scheduled slashes that are due and returns the
// combo to idle after the last one.
func UpdateCombo(ecs *ecs.ECS) {
	now := clockOf(ecs).Elapsed
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.Attack != cfg.ComboAttacking {
			return
		}
		if comboCancelled(ecs, e) {
			player.Attack = cfg.AttackIdle
			player.Combo = components.ComboData{}
			return
		}

		last := cfg.Slash.MaxCombo - 1
		for player.Combo.Index < last && now >= player.Combo.NextAt {
			at := player.Combo.NextAt
			player.Combo.Index++
			factory.CreateSlash(ecs, e, player.Combo.Index, components.Burst.Get(e).PoweredUp)
			player.Combo.NextAt = at + cfg.Slash.Interval
			if player.Combo.Index == last {
				player.Combo.ResetAt = at + cfg.Slash.Interval*cfg.Slash.ResetDelayFactor
			}
		}

		if player.Combo.Index == last && now >= player.Combo.ResetAt {
			player.Attack = cfg.AttackIdle
			player.Combo = components.ComboData{}
		}
	})
}

func comboCancelled(ecs *ecs.ECS, e *donburi.Entry) bool {
	return !canAct(ecs, e)
}

// ActivateBurst spends a full meter on the burst slash and permanently
// powers up later slashes.
func ActivateBurst(ecs *ecs.ECS, e *donburi.Entry) bool {
	burst := components.Burst.Get(e)
	if !burst.Ready || burst.Charge < cfg.Burst.MaxCharge || burst.Activating || !alive(e) {
		return false
	}

	burst.Charge = 0
	burst.Ready = false
	burst.Active = factory.CreateBurstSlash(ecs, e).Entity()
	burst.Activating = true
	burst.PoweredUp = true

	events.BurstChangedEvent.Publish(ecs.World, events.BurstChanged{Percent: 0, Ready: false})
	PlaySFX(ecs, cfg.SoundBurst)
	return true
}

// TryLaunchPlayer knocks the player into the air. It does nothing while the
// cooldown runs or either slam immunity is active.
func TryLaunchPlayer(e *donburi.Entry) bool {
	player := components.Player.Get(e)
	if player.SinceLaunch < cfg.Player.LaunchCooldown || player.Immune() || !alive(e) {
		return false
	}
	player.VelocityY = cfg.Player.LaunchVelocity
	player.Motion = cfg.Jumping
	player.SinceLaunch = 0
	player.DescentImmune = false
	player.HasTrailPoint = false
	player.Launched = true
	return true
}

// UpdatePlayerMovement applies camera-relative walking, turning and jumps.
// A jump needs the key to go from released to held while grounded.
func UpdatePlayerMovement(ecs *ecs.ECS) {
	input := inputOf(ecs)
	dt := clockOf(ecs).Delta
	ground := arenaOf(ecs).GroundLevel

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		burst := components.Burst.Get(e)
		jumpPressed := input.JumpHeld && !player.JumpWasHeld
		player.JumpWasHeld = input.JumpHeld
		if !alive(e) || burst.Activating || player.Motion == cfg.AerialSlamming || player.Attack == cfg.ComboAttacking {
			return
		}
		tf := components.Transform.Get(e)

		forward, right := geometry.CameraBasis(input.CameraYaw)
		speed := cfg.Player.MoveSpeed
		if input.SprintHeld {
			speed = cfg.Player.SprintSpeed
		}
		var mz, mx float64
		if input.MoveForward {
			mz += speed
		}
		if input.MoveBack {
			mz -= speed
		}
		if input.MoveLeft {
			mx -= speed
		}
		if input.MoveRight {
			mx += speed
		}

		move := forward.Mul(mz * dt).Add(right.Mul(mx * dt))
		if move.LenSqr() > 0 {
			tf.Position = tf.Position.Add(move)
			rate := 1 - math.Pow(1-cfg.Player.TurnRate, dt*cfg.Player.TurnRateFPS)
			tf.Rotation[1] = geometry.TurnToward(tf.Rotation.Y(), geometry.Heading(move), rate)
		}

		if jumpPressed && !player.Motion.Airborne() && tf.Position.Y() <= ground+cfg.Player.JumpGroundTolerance {
			player.VelocityY = cfg.Player.JumpSpeed
			player.Motion = cfg.Jumping
			player.PeakHeight = tf.Position.Y()
		}
	})
}

// UpdatePlayerVertical integrates gravity or the slam descent and resolves
// landings, walking off the edge and falling out of the world.
func UpdatePlayerVertical(ecs *ecs.ECS) {
	dt := clockOf(ecs).Delta
	arena := arenaOf(ecs)
	ground := arena.GroundLevel

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		tf := components.Transform.Get(e)
		pos := tf.Position
		onPlatform := arena.Contains(pos)

		if pos.Y() < cfg.Arena.TeleportThresholdY {
			teleportPlayer(ecs, e)
			return
		}

		if player.Motion == cfg.AerialSlamming {
			player.VelocityY = -cfg.Slam.Speed
			if player.TrailTimer >= cfg.Slam.TrailInterval {
				spawnTrailSegment(ecs, player, pos)
				player.TrailTimer = 0
			}
		} else {
			player.VelocityY -= cfg.Player.Gravity * dt
		}
		pos[1] += player.VelocityY * dt

		if pos.Y() <= ground && onPlatform {
			pos[1] = ground
			landPlayer(ecs, e, player, pos)
		} else {
			if !player.Motion.Airborne() && !onPlatform && pos.Y() <= ground+cfg.Player.EdgeTolerance {
				player.Motion = cfg.FallingOffEdge
				player.PeakHeight = pos.Y()
			}
			if (player.Motion.Airborne() || pos.Y() > ground) &&
				player.VelocityY >= -cfg.Player.Gravity*dt && player.Motion != cfg.AerialSlamming {
				player.PeakHeight = math.Max(player.PeakHeight, pos.Y())
			}
		}

		tf.Position = pos
		placeFootprint(e, pos, cfg.Player.CollisionRadius)
	})
}

func landPlayer(ecs *ecs.ECS, e *donburi.Entry, player *components.PlayerData, pos mgl64.Vec3) {
	ground := arenaOf(ecs).GroundLevel
	wasSlamming := player.Motion == cfg.AerialSlamming
	wasAirborne := player.Motion.Airborne()

	if wasSlamming {
		player.DescentImmune = false
		player.PostLandImmune = true
		player.PostLandTimer = cfg.Slam.LandImmunity
		player.HasTrailPoint = false
		if _, exists := tags.Explosion.First(ecs.World); !exists {
			factory.CreateExplosion(ecs, pos)
		}
		PlaySFX(ecs, cfg.SoundSlamImpact)
		events.SlamLandedEvent.Publish(ecs.World, events.SlamLanded{At: pos})
	}

	if wasAirborne && !wasSlamming && !player.Launched {
		if dmg := FallDamage(player.PeakHeight - ground); dmg > 0 && alive(e) {
			components.QueueDamage(e, dmg, components.DamageFall)
		}
	}

	player.VelocityY = 0
	player.Motion = cfg.Grounded
	player.Launched = false
	player.PeakHeight = ground
}

// FallDamage is the damage for landing after falling the given distance.
func FallDamage(fall float64) int {
	if fall <= cfg.Player.MinFallDamageHeight {
		return 0
	}
	return int(math.Round((fall - cfg.Player.MinFallDamageHeight) * cfg.Player.FallDamageMultiplier))
}

func teleportPlayer(ecs *ecs.ECS, e *donburi.Entry) {
	player := components.Player.Get(e)
	tf := components.Transform.Get(e)

	tf.Position = player.SpawnPoint
	player.VelocityY = 0
	player.Motion = cfg.Grounded
	player.DescentImmune = false
	player.PostLandImmune = false
	player.PostLandTimer = 0
	player.HasTrailPoint = false
	player.Launched = false
	player.PeakHeight = player.SpawnPoint.Y()

	placeFootprint(e, tf.Position, cfg.Player.CollisionRadius)
	events.TeleportedEvent.Publish(ecs.World, events.Teleported{To: tf.Position})
}

func spawnTrailSegment(ecs *ecs.ECS, player *components.PlayerData, pos mgl64.Vec3) {
	if !player.HasTrailPoint {
		return
	}
	if pos.Sub(player.TrailPoint).Len() < cfg.Slam.TrailMinDistance {
		return
	}
	factory.CreateTrailSegment(ecs, player.TrailPoint, pos)
	player.TrailPoint = pos
}
