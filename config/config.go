package config

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single ECS layer used by the simulation and its renderers.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values.
// Speeds are in world units per second.
type PlayerConfig struct {
	// Movement
	MoveSpeed   float64 `yaml:"moveSpeed" json:"moveSpeed"`
	SprintSpeed float64 `yaml:"sprintSpeed" json:"sprintSpeed"`
	JumpSpeed   float64 `yaml:"jumpSpeed" json:"jumpSpeed"`
	Gravity     float64 `yaml:"gravity" json:"gravity"`
	// TurnRate is the fraction of the remaining heading delta closed per
	// reference frame (1/TurnRateFPS seconds).
	TurnRate    float64 `yaml:"turnRate" json:"turnRate"`
	TurnRateFPS float64 `yaml:"turnRateFps" json:"turnRateFps"`

	// Combat
	MaxHealth        int     `yaml:"maxHealth" json:"maxHealth"`
	CollisionRadius  float64 `yaml:"collisionRadius" json:"collisionRadius"`
	CollisionOffsetY float64 `yaml:"collisionOffsetY" json:"collisionOffsetY"`

	// Boss contact and phase-2 missile knockup
	LaunchVelocity float64 `yaml:"launchVelocity" json:"launchVelocity"`
	LaunchCooldown float64 `yaml:"launchCooldown" json:"launchCooldown"`

	// Fall damage
	MinFallDamageHeight  float64 `yaml:"minFallDamageHeight" json:"minFallDamageHeight"`
	FallDamageMultiplier float64 `yaml:"fallDamageMultiplier" json:"fallDamageMultiplier"`

	// Ground checks
	JumpGroundTolerance float64 `yaml:"jumpGroundTolerance" json:"jumpGroundTolerance"`
	EdgeTolerance       float64 `yaml:"edgeTolerance" json:"edgeTolerance"`
}

// SlamConfig contains aerial slam, trail and explosion values.
type SlamConfig struct {
	MinHeight    float64 `yaml:"minHeight" json:"minHeight"`
	Speed        float64 `yaml:"speed" json:"speed"`
	LandImmunity float64 `yaml:"landImmunity" json:"landImmunity"`

	TrailInterval    float64 `yaml:"trailInterval" json:"trailInterval"`
	TrailMinDistance float64 `yaml:"trailMinDistance" json:"trailMinDistance"`
	TrailLifetime    float64 `yaml:"trailLifetime" json:"trailLifetime"`
	TrailOpacity     float64 `yaml:"trailOpacity" json:"trailOpacity"`

	ExplosionMaxRadius float64 `yaml:"explosionMaxRadius" json:"explosionMaxRadius"`
	ExplosionLifetime  float64 `yaml:"explosionLifetime" json:"explosionLifetime"`
	ExplosionDamage    int     `yaml:"explosionDamage" json:"explosionDamage"`
	ExplosionOpacity   float64 `yaml:"explosionOpacity" json:"explosionOpacity"`
	ExplosionHeight    float64 `yaml:"explosionHeight" json:"explosionHeight"`
}

// SlashConfig contains melee combo values.
type SlashConfig struct {
	MaxCombo          int     `yaml:"maxCombo" json:"maxCombo"`
	Interval          float64 `yaml:"interval" json:"interval"`
	ResetDelayFactor  float64 `yaml:"resetDelayFactor" json:"resetDelayFactor"`
	Lifetime          float64 `yaml:"lifetime" json:"lifetime"`
	LifetimeJitter    float64 `yaml:"lifetimeJitter" json:"lifetimeJitter"`
	Damage            int     `yaml:"damage" json:"damage"`
	PoweredMultiplier int     `yaml:"poweredMultiplier" json:"poweredMultiplier"`

	OuterRadius   float64 `yaml:"outerRadius" json:"outerRadius"`
	Thickness     float64 `yaml:"thickness" json:"thickness"`
	ArcAngle      float64 `yaml:"arcAngle" json:"arcAngle"`
	ForwardFactor float64 `yaml:"forwardFactor" json:"forwardFactor"`
	HeightOffset  float64 `yaml:"heightOffset" json:"heightOffset"`

	PositionJitter float64 `yaml:"positionJitter" json:"positionJitter"`
	ArmAngle       float64 `yaml:"armAngle" json:"armAngle"`
	ArmJitter      float64 `yaml:"armJitter" json:"armJitter"`
	RollJitter     float64 `yaml:"rollJitter" json:"rollJitter"`

	Color        uint32 `yaml:"color" json:"color"`
	PoweredColor uint32 `yaml:"poweredColor" json:"poweredColor"`
}

// BurstConfig contains the elemental burst values.
type BurstConfig struct {
	MaxCharge     int     `yaml:"maxCharge" json:"maxCharge"`
	ChargePerHit  int     `yaml:"chargePerHit" json:"chargePerHit"`
	OuterRadius   float64 `yaml:"outerRadius" json:"outerRadius"`
	Thickness     float64 `yaml:"thickness" json:"thickness"`
	ArcAngle      float64 `yaml:"arcAngle" json:"arcAngle"`
	Lifetime      float64 `yaml:"lifetime" json:"lifetime"`
	Damage        int     `yaml:"damage" json:"damage"`
	ForwardOffset float64 `yaml:"forwardOffset" json:"forwardOffset"`
	HeightOffset  float64 `yaml:"heightOffset" json:"heightOffset"`
	Color         uint32  `yaml:"color" json:"color"`
}

// BossConfig contains boss health, phase and movement values.
type BossConfig struct {
	MaxHealth          int        `yaml:"maxHealth" json:"maxHealth"`
	Phase2Threshold    float64    `yaml:"phase2Threshold" json:"phase2Threshold"`
	TransitionDuration float64    `yaml:"transitionDuration" json:"transitionDuration"`
	MoveSpeed          float64    `yaml:"moveSpeed" json:"moveSpeed"`
	ChaseMinDistance   float64    `yaml:"chaseMinDistance" json:"chaseMinDistance"`
	SpiralSpeed        float64    `yaml:"spiralSpeed" json:"spiralSpeed"`
	TumbleRate         float64    `yaml:"tumbleRate" json:"tumbleRate"`
	Size               float64    `yaml:"size" json:"size"`
	Spawn              mgl64.Vec3 `yaml:"spawn" json:"spawn"`
	Phase2Glow         float64    `yaml:"phase2Glow" json:"phase2Glow"`
	DefeatGlow         float64    `yaml:"defeatGlow" json:"defeatGlow"`

	Name        string `yaml:"name" json:"name"`
	Title       string `yaml:"title" json:"title"`
	Phase2Name  string `yaml:"phase2Name" json:"phase2Name"`
	Phase2Title string `yaml:"phase2Title" json:"phase2Title"`
}

// MissileConfig contains boss projectile values.
type MissileConfig struct {
	Speed          float64 `yaml:"speed" json:"speed"`
	Lifetime       float64 `yaml:"lifetime" json:"lifetime"`
	Radius         float64 `yaml:"radius" json:"radius"`
	IntervalPhase1 float64 `yaml:"intervalPhase1" json:"intervalPhase1"`
	IntervalPhase2 float64 `yaml:"intervalPhase2" json:"intervalPhase2"`
	BurstCount     int     `yaml:"burstCount" json:"burstCount"`
	DamagePhase1   int     `yaml:"damagePhase1" json:"damagePhase1"`
	DamagePhase2   int     `yaml:"damagePhase2" json:"damagePhase2"`

	HomingSpawnOffsetY float64 `yaml:"homingSpawnOffsetY" json:"homingSpawnOffsetY"`
	SpiralSpawnHeight  float64 `yaml:"spiralSpawnHeight" json:"spiralSpawnHeight"`
	SpiralSpawnOffset  float64 `yaml:"spiralSpawnOffset" json:"spiralSpawnOffset"`

	ColorPhase1 uint32 `yaml:"colorPhase1" json:"colorPhase1"`
	ColorPhase2 uint32 `yaml:"colorPhase2" json:"colorPhase2"`
}

// ArenaConfig describes the square platform the fight takes place on.
type ArenaConfig struct {
	MapPath            string     `yaml:"mapPath" json:"mapPath"`
	GroundLevel        float64    `yaml:"groundLevel" json:"groundLevel"`
	HalfSize           float64    `yaml:"halfSize" json:"halfSize"`
	TeleportThresholdY float64    `yaml:"teleportThresholdY" json:"teleportThresholdY"`
	PlayerSpawn        mgl64.Vec3 `yaml:"playerSpawn" json:"playerSpawn"`

	// Broadphase grid
	SpaceCell   int     `yaml:"spaceCell" json:"spaceCell"`
	SpaceMargin float64 `yaml:"spaceMargin" json:"spaceMargin"`
}

// SimConfig contains fixed-step and randomness settings.
type SimConfig struct {
	MaxDelta float64 `yaml:"maxDelta" json:"maxDelta"`
	TickRate int     `yaml:"tickRate" json:"tickRate"`
	Seed     uint64  `yaml:"seed" json:"seed"`
}

// CameraConfig contains orbit camera behavior for the desktop client.
type CameraConfig struct {
	Distance        float64
	MinZoom         float64
	MaxZoom         float64
	ZoomSmoothing   float64 // fraction of the zoom gap closed per frame
	WheelStep       float64 // distance change per wheel notch
	DragSensitivity float64 // radians per dragged pixel
	InitialPitch    float64
	MaxPitch        float64
	FollowHeight    float64
	PixelsPerUnit   float64 // top-down scale at the default distance
	ShakeIntensity  float64 // pixels
	ShakeDuration   float64 // seconds
	StickOrbitSpeed float64 // radians per second at full right-stick deflection
	GridSpacing     float64
}

// UIConfig contains HUD layout and colors.
type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarMargin float64
	BossBarWidth    float64
	BossBarHeight   float64
	BurstRadius     float64

	HealthBarBgColor color.RGBA
	PlayerHealthFg   color.RGBA
	BossHealthFg     color.RGBA
	BurstFg          color.RGBA
	BurstReadyFg     color.RGBA
	TextColor        color.RGBA
	GroundColor      color.RGBA
	GridColor        color.RGBA
	PlayerColor      color.RGBA
	BossColor        color.RGBA
	BossPhase2Color  color.RGBA
	BossDefeatColor  color.RGBA
	TrailColor       color.RGBA
	ExplosionColor   color.RGBA
	ShadowColor      color.RGBA
}

// EndScreenConfig contains the victory/defeat overlay values.
type EndScreenConfig struct {
	OverlayColor  color.RGBA
	VictoryColor  color.RGBA
	DefeatColor   color.RGBA
	HintColor     color.RGBA
	TitleY        float64
	HintY         float64
	Delay         float64 // seconds between the final blow and the end screen
	VictoryTitle  string
	DefeatTitle   string
	RestartHint   string
	IntroTitle    string
	IntroHint     string
	IntroControls []string
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowBounds bool // Draw collision volumes
	SkipIntro  bool // Skip the intro screen
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Slam SlamConfig
var Slash SlashConfig
var Burst BurstConfig
var Boss BossConfig
var Missile MissileConfig
var Arena ArenaConfig
var Sim SimConfig
var Camera CameraConfig
var UI UIConfig
var EndScreen EndScreenConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Purple       = color.RGBA{R: 153, G: 51, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// RGB converts a 0xRRGGBB value to an opaque color.
func RGB(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 255}
}

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	// Tuned at 60 Hz: velocities are per-frame values times 60,
	// accelerations times 3600.
	Player = PlayerConfig{
		MoveSpeed:   6.0,
		SprintSpeed: 12.0,
		JumpSpeed:   12.0,
		Gravity:     36.0,
		TurnRate:    0.15,
		TurnRateFPS: 60,

		MaxHealth:        69000,
		CollisionRadius:  0.7,
		CollisionOffsetY: 1.0,

		LaunchVelocity: 120.0,
		LaunchCooldown: 1.5,

		MinFallDamageHeight:  2.5,
		FallDamageMultiplier: 1000,

		JumpGroundTolerance: 0.01,
		EdgeTolerance:       0.1,
	}

	Slam = SlamConfig{
		MinHeight:    5.0,
		Speed:        48.0,
		LandImmunity: 0.75,

		TrailInterval:    0.03,
		TrailMinDistance: 0.05,
		TrailLifetime:    0.5,
		TrailOpacity:     0.8,

		ExplosionMaxRadius: 4.0,
		ExplosionLifetime:  0.6,
		ExplosionDamage:    500000,
		ExplosionOpacity:   0.7,
		ExplosionHeight:    0.1,
	}

	Slash = SlashConfig{
		MaxCombo:          5,
		Interval:          0.12,
		ResetDelayFactor:  1.5,
		Lifetime:          0.7,
		LifetimeJitter:    0.15,
		Damage:            20000,
		PoweredMultiplier: 2,

		OuterRadius:   1.3,
		Thickness:     0.15,
		ArcAngle:      math.Pi * 0.7,
		ForwardFactor: 0.8,
		HeightOffset:  1.3,

		PositionJitter: 0.1,
		ArmAngle:       math.Pi / 4,
		ArmJitter:      0.2,
		RollJitter:     0.1,

		Color:        0xFFFFFF,
		PoweredColor: 0x9933FF,
	}

	Burst = BurstConfig{
		MaxCharge:     100,
		ChargePerHit:  1,
		OuterRadius:   3.5,
		Thickness:     0.3,
		ArcAngle:      math.Pi * 1.2,
		Lifetime:      1.2,
		Damage:        1000000,
		ForwardOffset: 1.8,
		HeightOffset:  1.2,
		Color:         0x66CCFF,
	}

	Boss = BossConfig{
		MaxHealth:          6900000,
		Phase2Threshold:    0.5,
		TransitionDuration: 2.0,
		MoveSpeed:          1.2,
		ChaseMinDistance:   0.1,
		SpiralSpeed:        0.25,
		TumbleRate:         0.3,
		Size:               5.0,
		Spawn:              mgl64.Vec3{0, 5, -4},
		Phase2Glow:         0.7,
		DefeatGlow:         2.5,

		Name:        "The Cube",
		Title:       "Warden of the Floating Arena",
		Phase2Name:  "The Cube (Unbound)",
		Phase2Title: "Spiral Tempest",
	}

	Missile = MissileConfig{
		Speed:          6.0,
		Lifetime:       6.0,
		Radius:         0.3,
		IntervalPhase1: 2.0,
		IntervalPhase2: 0.2,
		BurstCount:     20,
		DamagePhase1:   1000,
		DamagePhase2:   420,

		HomingSpawnOffsetY: 1.0,
		SpiralSpawnHeight:  0.5,
		SpiralSpawnOffset:  0.5,

		ColorPhase1: 0x007BFF,
		ColorPhase2: 0xFF0000,
	}

	Arena = ArenaConfig{
		MapPath:            "arena.tmx",
		GroundLevel:        0,
		HalfSize:           50,
		TeleportThresholdY: -50,
		PlayerSpawn:        mgl64.Vec3{0, 0, 0},
		SpaceCell:          4,
		SpaceMargin:        20,
	}

	Sim = SimConfig{
		MaxDelta: 0.1,
		TickRate: 60,
		Seed:     0x5eed,
	}

	Camera = CameraConfig{
		Distance:        5,
		MinZoom:         0.4,
		MaxZoom:         20,
		ZoomSmoothing:   0.1,
		WheelStep:       1.0,
		DragSensitivity: 0.0035,
		InitialPitch:    math.Pi / 6,
		MaxPitch:        math.Pi / 2.5,
		FollowHeight:    2.2,
		PixelsPerUnit:   24,
		ShakeIntensity:  6,
		ShakeDuration:   0.3,
		StickOrbitSpeed: 3,
		GridSpacing:     10,
	}

	UI = UIConfig{
		HealthBarWidth:  220,
		HealthBarHeight: 14,
		HealthBarMargin: 12,
		BossBarWidth:    480,
		BossBarHeight:   12,
		BurstRadius:     22,

		HealthBarBgColor: color.RGBA{R: 40, G: 40, B: 40, A: 255},
		PlayerHealthFg:   color.RGBA{R: 40, G: 220, B: 40, A: 255},
		BossHealthFg:     color.RGBA{R: 220, G: 40, B: 60, A: 255},
		BurstFg:          color.RGBA{R: 80, G: 160, B: 255, A: 255},
		BurstReadyFg:     color.RGBA{R: 150, G: 220, B: 255, A: 255},
		TextColor:        White,
		GroundColor:      color.RGBA{R: 100, G: 99, B: 115, A: 255},
		GridColor:        color.RGBA{R: 80, G: 79, B: 94, A: 255},
		PlayerColor:      color.RGBA{R: 230, G: 230, B: 255, A: 255},
		BossColor:        color.RGBA{R: 200, G: 200, B: 200, A: 255},
		BossPhase2Color:  color.RGBA{R: 255, G: 40, B: 40, A: 255},
		BossDefeatColor:  White,
		TrailColor:       color.RGBA{R: 120, G: 200, B: 255, A: 255},
		ExplosionColor:   color.RGBA{R: 255, G: 170, B: 60, A: 255},
		ShadowColor:      color.RGBA{R: 0, G: 0, B: 0, A: 90},
	}

	EndScreen = EndScreenConfig{
		OverlayColor: BlackOverlay,
		VictoryColor: Yellow,
		DefeatColor:  LightRed,
		HintColor:    White,
		TitleY:       200,
		HintY:        260,
		Delay:        1.5,
		VictoryTitle: "BOSS DEFEATED",
		DefeatTitle:  "YOU DIED",
		RestartHint:  "Press Enter to fight again",
		IntroTitle:   "BOSS FIGHT",
		IntroHint:    "Click or press Enter to begin",
		IntroControls: []string{
			"WASD move, Shift sprint, Space jump",
			"Left click attack (in the air: slam)",
			"Q elemental burst, drag to orbit, wheel to zoom",
		},
	}

	Debug = DebugConfig{}
}
