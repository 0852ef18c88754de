package config

// MotionState is the player's locomotion state. Exactly one is active.
type MotionState int

const (
	Grounded MotionState = iota
	Jumping
	AerialSlamming
	FallingOffEdge
)

func (m MotionState) String() string {
	switch m {
	case Grounded:
		return "grounded"
	case Jumping:
		return "jumping"
	case AerialSlamming:
		return "aerial-slamming"
	case FallingOffEdge:
		return "falling-off-edge"
	}
	return "unknown"
}

// Airborne reports whether the state counts as being in the air for jump,
// slam and fall-damage purposes.
func (m MotionState) Airborne() bool {
	switch m {
	case Jumping, AerialSlamming, FallingOffEdge:
		return true
	}
	return false
}

// AttackState is the player's melee state.
type AttackState int

const (
	AttackIdle AttackState = iota
	ComboAttacking
)

func (a AttackState) String() string {
	switch a {
	case AttackIdle:
		return "idle"
	case ComboAttacking:
		return "combo"
	}
	return "unknown"
}

// BossPhase is the boss behavior mode. Transitions only move forward.
type BossPhase int

const (
	Phase1 BossPhase = iota
	TransitioningToPhase2
	Phase2
	Defeated
)

func (p BossPhase) String() string {
	switch p {
	case Phase1:
		return "phase1"
	case TransitioningToPhase2:
		return "transitioning"
	case Phase2:
		return "phase2"
	case Defeated:
		return "defeated"
	}
	return "unknown"
}

// EntityKind identifies transient entities for renderers.
type EntityKind int

const (
	KindSlash EntityKind = iota
	KindBurstSlash
	KindMissile
	KindTrailSegment
	KindExplosion
)

func (k EntityKind) String() string {
	switch k {
	case KindSlash:
		return "slash"
	case KindBurstSlash:
		return "burst-slash"
	case KindMissile:
		return "missile"
	case KindTrailSegment:
		return "trail"
	case KindExplosion:
		return "explosion"
	}
	return "unknown"
}
