// Package mappy implements a platform-maze arcade game: a police mouse
// bounces between floors on trampolines, collects paired loot and fends off
// cats with doors.
//
// The simulation runs in a 600x750 pixel space at a fixed tick rate. All
// rule constants live here and are not configurable.
package mappy

// Playfield dimensions in pixels.
const (
	ScreenWidth  = 600
	ScreenHeight = 750
	FPS          = 60
)

// Structure dimensions.
const (
	PlatformWidth     = 100
	PlatformHeight    = 15
	TrampolineWidth   = 75
	TrampolineHeight  = 10
	FloorHeight       = 75
	ClosedDoorWidth   = 10
	OpenDoorWidth     = 50
	DoorHeight        = 60
	WallWidth         = 8
	WallHeight        = 75
	RoofWallHeight    = 20
	RoofHeight        = 20
	ItemSize          = 30
	WaveWidth         = 5
	WaveHeight        = 70
	levelStartX       = 60
	levelStartY       = 210
	widthCorrection   = PlatformWidth - TrampolineWidth
	playerStartX      = ScreenWidth - 170
	playerStartY      = ScreenHeight - 119
	enemySpawnY       = 100
	enemySpawnOffsetX = 40
)

// Actor sizes and speeds.
const (
	PlayerWidth   = 30
	PlayerHeight  = 30
	EnemyWidth    = 25
	EnemyHeight   = 30
	PlayerSpeedX  = 3
	EnemySpeedX   = 2
	ActorSpeedY   = 5
	WaveSpeed     = 4
	JumpDuration  = 20
	jumpPeak      = -20
	ceilingY      = 80
	StartingLives = 4
)

// Scoring.
const (
	TrampolineScore = 10
	BaseItemScore   = 100
	StunScore       = 50
)

// Timers, in seconds.
const (
	controlLockSeconds    = 2
	blockSeconds          = 3
	changeSeconds         = 2
	resetSeconds          = 4
	gameOverSeconds       = 4
	gameOverScreenSeconds = 10
	enemySpawnSeconds     = 2
	enemyStunSeconds      = 2
)

// Rounds cycle through 1..MaxRound.
const MaxRound = 30

