package config

import (
	"image/color"

	ecslib "github.com/yohamta/donburi/ecs"
)

// ECS layers.
const (
	Default ecslib.LayerID = iota
)

// TimestepConfig drives the fixed-timestep simulation clock.
type TimestepConfig struct {
	TickRate      float64 // simulation ticks per second
	MaxFrameDelta float64 // cap on real elapsed seconds folded in per frame
}

// PhysicsConfig contains global physics values.
// All speeds are px/s, accelerations px/s^2; positions are world pixels.
type PhysicsConfig struct {
	Gravity        float64
	FallMultiplier float64 // extra gravity while falling (vy > 0)
	MaxFallSpeed   float64

	// Collision tuning
	WallBandShrink float64 // px shaved off hitbox top/bottom in the horizontal pass
	GroundSnapTol  float64 // px tolerance for snapping feet onto a tile top
	VoidMargin     float64 // px below the level bottom that counts as the void
}

// HitboxConfig is a collision sub-rectangle relative to the entity position.
type HitboxConfig struct {
	OffsetX, OffsetY float64
	W, H             float64
}

// PlayerConfig contains all player-related configuration values.
type PlayerConfig struct {
	// Movement
	MoveSpeed    float64
	Acceleration float64
	Deceleration float64
	AirControl   float64 // accel/decel scale while airborne
	RunThreshold float64 // |vx| above which the player counts as running

	// Jumping
	JumpForce      float64 // initial upward speed
	MaxJumps       int
	CoyoteTime     float64 // seconds of grace after leaving ground
	JumpBufferTime float64 // seconds a jump press is remembered before landing
	ReleaseCutoff  float64 // vy multiplier applied on early jump release

	// Health
	MaxHealth      int
	InvulnTime     float64 // seconds of invulnerability after damage
	KnockbackX     float64
	KnockbackY     float64
	InteractRadius float64 // px radius for the nearby-interactable query

	// Dimensions
	Width, Height float64
	Hitbox        HitboxConfig
}

// SheepConfig contains sheep follow-behavior configuration.
type SheepConfig struct {
	FollowSpeed float64 // full speed beyond FarDistance
	CloseSpeed  float64 // slow close-up inside the middle band
	BackSpeed   float64 // backing away inside MinDistance

	FarDistance float64 // beyond: full speed toward leader
	StopBand    float64 // inside (MinDistance, StopBand]: dead zone, stop
	MinDistance float64 // inside: back away

	JumpForce   float64
	JumpGap     float64 // leader this many px above triggers a jump when grounded
	RescueRange float64 // px from player at which rescue is offered

	Width, Height float64
	Hitbox        HitboxConfig
}

// EnemyTypeConfig contains configuration for one enemy variant.
type EnemyTypeConfig struct {
	Name        string
	PatrolSpeed float64
	ChaseSpeed  float64

	DetectRange  float64 // horizontal detection distance
	GiveUpRange  float64 // beyond: chase ends
	VerticalBand float64 // max |dy| for detection and attack

	AttackRange    float64
	AttackCooldown float64 // seconds
	Damage         int

	PatrolPause     float64 // seconds paused at a patrol bound before reversing
	BlockedDuration float64 // seconds of stalled motion that counts as blocked
	StallEpsilon    float64 // px per tick below which displacement counts as stalled

	// Boar charge sub-behavior (zero ChargeSpeed disables it)
	ChargeTrigger  float64 // px distance that arms a charge
	ChargeSpeed    float64
	ChargeDistance float64 // max px travelled in one charge
	ChargeCooldown float64 // seconds

	Width, Height float64
	Hitbox        HitboxConfig
	Color         color.RGBA
}

// EnemyConfig contains the enemy variant table and defaults.
type EnemyConfig struct {
	Types              map[string]EnemyTypeConfig
	DefaultPatrolRange float64
}

// CollectibleTypeConfig describes one collectible kind.
type CollectibleTypeConfig struct {
	Value      int // score value
	Heal       int // hearts restored on pickup
	GoldenWool bool
	Color      color.RGBA
}

// CollectibleConfig contains the collectible type table.
type CollectibleConfig struct {
	Types     map[string]CollectibleTypeConfig
	Size      float64 // square pickup box edge, px
	BobHeight float64 // px of idle bob
	BobPeriod float64 // seconds for one bob cycle
}

// CameraConfig contains camera behavior configuration.
type CameraConfig struct {
	FollowSmoothing    float64 // 0..1 per-tick follow factor
	LookAheadDistanceX float64
	LookAheadSmoothing float64
	SpeedThreshold     float64 // min |vx| before look-ahead updates
}

// DebugConfig contains debug/testing command-line options.
type DebugConfig struct {
	DrawHitboxes bool
	StartLevel   int
}

// Config holds general game configuration.
type Config struct {
	Width    int
	Height   int
	TileSize int
}

// Global configuration instances, populated by init and optionally
// overridden from a YAML file (see Load).
var C *Config
var Timestep TimestepConfig
var Physics PhysicsConfig
var Player PlayerConfig
var Sheep SheepConfig
var Enemy EnemyConfig
var Collectible CollectibleConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants for flat-shaded rendering.
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	WolfGray  = color.RGBA{R: 120, G: 120, B: 135, A: 255}
	BoarBrown = color.RGBA{R: 140, G: 90, B: 50, A: 255}
	BerryRed  = color.RGBA{R: 220, G: 60, B: 80, A: 255}
	HerbGreen = color.RGBA{R: 90, G: 200, B: 110, A: 255}
	WoolGold  = color.RGBA{R: 240, G: 200, B: 60, A: 255}
	HeartPink = color.RGBA{R: 240, G: 100, B: 140, A: 255}

	PlayerBlue   = color.RGBA{R: 70, G: 130, B: 220, A: 255}
	SheepCream   = color.RGBA{R: 235, G: 230, B: 215, A: 255}
	SheepIdleDim = color.RGBA{R: 190, G: 185, B: 175, A: 255}

	GrassGreen = color.RGBA{R: 80, G: 160, B: 70, A: 255}
	DirtBrown  = color.RGBA{R: 120, G: 85, B: 60, A: 255}
	StoneGray  = color.RGBA{R: 130, G: 130, B: 140, A: 255}
	WoodTan    = color.RGBA{R: 170, G: 130, B: 80, A: 255}
	WaterBlue  = color.RGBA{R: 60, G: 120, B: 200, A: 200}
	RockDark   = color.RGBA{R: 90, G: 90, B: 100, A: 255}

	SkyBlue      = color.RGBA{R: 135, G: 195, B: 235, A: 255}
	DuskPurple   = color.RGBA{R: 95, G: 80, B: 140, A: 255}
	PauseOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 140}
	HitboxGreen  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

// Direction constants for facing.
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// FixedDT returns the fixed simulation step in seconds.
func FixedDT() float64 { return 1.0 / Timestep.TickRate }

// Ticks converts a duration in seconds to whole simulation ticks (minimum 1).
func Ticks(seconds float64) int {
	t := int(seconds * Timestep.TickRate)
	if t < 1 {
		t = 1
	}
	return t
}

func init() {
	C = &Config{
		Width:    640,
		Height:   360,
		TileSize: 32,
	}

	Timestep = TimestepConfig{
		TickRate:      60,
		MaxFrameDelta: 0.1,
	}

	// MaxFallSpeed / TickRate must stay below TileSize or a body can cross
	// a whole tile in one step and tunnel (900/60 = 15 px < 32 px).
	Physics = PhysicsConfig{
		Gravity:        2200.0,
		FallMultiplier: 1.3,
		MaxFallSpeed:   900.0,

		WallBandShrink: 4.0,
		GroundSnapTol:  4.0,
		VoidMargin:     64.0,
	}

	Player = PlayerConfig{
		MoveSpeed:    260.0,
		Acceleration: 2600.0,
		Deceleration: 3200.0,
		AirControl:   0.65,
		RunThreshold: 10.0,

		JumpForce:      620.0,
		MaxJumps:       1,
		CoyoteTime:     0.1,
		JumpBufferTime: 0.12,
		ReleaseCutoff:  0.5,

		MaxHealth:      3,
		InvulnTime:     1.5,
		KnockbackX:     280.0,
		KnockbackY:     380.0,
		InteractRadius: 40.0,

		Width:  32,
		Height: 32,
		Hitbox: HitboxConfig{OffsetX: 5, OffsetY: 2, W: 22, H: 30},
	}

	Sheep = SheepConfig{
		FollowSpeed: 200.0,
		CloseSpeed:  80.0,
		BackSpeed:   60.0,

		FarDistance: 140.0,
		StopBand:    48.0,
		MinDistance: 28.0,

		JumpForce:   520.0,
		JumpGap:     40.0,
		RescueRange: 40.0,

		Width:  30,
		Height: 26,
		Hitbox: HitboxConfig{OffsetX: 3, OffsetY: 2, W: 24, H: 24},
	}

	Enemy = EnemyConfig{
		DefaultPatrolRange: 100.0,
		Types: map[string]EnemyTypeConfig{
			"Wolf": {
				Name:        "Wolf",
				PatrolSpeed: 90.0,
				ChaseSpeed:  170.0,

				DetectRange:  220.0,
				GiveUpRange:  320.0,
				VerticalBand: 48.0,

				AttackRange:    36.0,
				AttackCooldown: 1.0,
				Damage:         1,

				PatrolPause:     0.8,
				BlockedDuration: 0.25,
				StallEpsilon:    0.5,

				Width:  36,
				Height: 28,
				Hitbox: HitboxConfig{OffsetX: 4, OffsetY: 2, W: 28, H: 26},
				Color:  WolfGray,
			},
			"Boar": {
				Name:        "Boar",
				PatrolSpeed: 70.0,
				ChaseSpeed:  120.0,

				DetectRange:  200.0,
				GiveUpRange:  300.0,
				VerticalBand: 40.0,

				AttackRange:    32.0,
				AttackCooldown: 1.2,
				Damage:         1,

				PatrolPause:     1.0,
				BlockedDuration: 0.25,
				StallEpsilon:    0.5,

				ChargeTrigger:  160.0,
				ChargeSpeed:    420.0,
				ChargeDistance: 260.0,
				ChargeCooldown: 2.5,

				Width:  40,
				Height: 30,
				Hitbox: HitboxConfig{OffsetX: 4, OffsetY: 2, W: 32, H: 28},
				Color:  BoarBrown,
			},
		},
	}

	Collectible = CollectibleConfig{
		Size:      16.0,
		BobHeight: 4.0,
		BobPeriod: 1.6,
		Types: map[string]CollectibleTypeConfig{
			"berry":       {Value: 10, Color: BerryRed},
			"herb":        {Value: 25, Color: HerbGreen},
			"golden-wool": {Value: 100, GoldenWool: true, Color: WoolGold},
			"heart":       {Heal: 1, Color: HeartPink},
		},
	}

	Camera = CameraConfig{
		FollowSmoothing:    0.08,
		LookAheadDistanceX: 48.0,
		LookAheadSmoothing: 0.06,
		SpeedThreshold:     20.0,
	}
}
