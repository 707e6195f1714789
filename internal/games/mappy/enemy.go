package mappy

import "math/rand"

const (
	chaseChance    = 0.1
	enemyWalkTicks = 10
	enemyWalkCycle = 3
)

// Enemy is a cat that wanders the floors and rides trampolines freely.
type Enemy struct {
	Actor
	StunTicks int

	walkTicks int
	walkFrame int
}

// NewEnemy creates an enemy with its top-left corner at (x, y).
func NewEnemy(x, y int) *Enemy {
	return &Enemy{
		Actor:     newActor(x, y, EnemyWidth, EnemyHeight, EnemySpeedX),
		walkFrame: 1,
	}
}

// Stunned reports whether the enemy is knocked out or sliding on a wave.
func (e *Enemy) Stunned() bool {
	return stunnedStates.has(e.State)
}

// WalkFrame returns the walk cycle frame, 1 through 3.
func (e *Enemy) WalkFrame() int {
	return e.walkFrame
}

func (e *Enemy) animate() {
	if !walkingStates.has(e.State) {
		return
	}
	if e.walkFrame > enemyWalkCycle-1 {
		e.walkFrame = 1
		return
	}
	if e.walkTicks%enemyWalkTicks == 0 {
		e.walkFrame++
	}
	e.walkTicks++
}

// Interact moves the enemy one tick and resolves it against the level.
// An enemy that is not walking sometimes heads towards a player below it;
// an idle one picks a side at random.
func (e *Enemy) Interact(l *Level, player *Player, rng *rand.Rand) {
	if e.State != StateStun {
		e.animate()
	}
	e.advance()

	if !setOf(StateJump, StateDown, StateLeft, StateRight).has(e.State) && rng.Float64() < chaseChance {
		if player.Rect.Y > e.Rect.Y {
			switch {
			case player.Rect.X < e.Rect.X:
				e.MoveLeft(l.Platforms)
			case player.Rect.X > e.Rect.X:
				e.MoveRight(l.Platforms)
			}
		}
	}

	if e.State == StateIdle {
		if rng.Intn(2) == 0 {
			e.MoveRight(l.Platforms)
		} else {
			e.MoveLeft(l.Platforms)
		}
	}

	hits := e.platformHits(l.Platforms)
	match := -1
	for i := range l.Trampolines {
		tr := &l.Trampolines[i]
		if tr.under(e.Rect) {
			match = i
		}
		if e.Rect.Intersects(tr.Rect) && !tr.Broken {
			e.MoveUp()
			tr.StartAnimation()
		}
	}

	var shaft *Trampoline
	if match >= 0 {
		shaft = &l.Trampolines[match]
	}
	e.dropIntoShaft(shaft, hits)
	e.followPlatforms(l.Platforms, shaft != nil, hits, enemyNav)
	e.landOn(l.Platforms, hits)
	e.bounceOffWalls(l.Walls)
}
