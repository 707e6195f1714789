package mappy

import "github.com/vovakirdan/tui-mappy/internal/core"

// State is the motion state shared by every actor.
type State int

const (
	StateIdle State = iota
	StateLeft
	StateRight
	StateUp
	StateDown
	StateJump
	StateStun
	StateLeftStun
	StateRightStun
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLeft:
		return "left"
	case StateRight:
		return "right"
	case StateUp:
		return "up"
	case StateDown:
		return "down"
	case StateJump:
		return "jump"
	case StateStun:
		return "stun"
	case StateLeftStun:
		return "left_stun"
	case StateRightStun:
		return "right_stun"
	default:
		return "unknown"
	}
}

// stateSet is a bitmask of states.
type stateSet uint16

func setOf(states ...State) stateSet {
	var s stateSet
	for _, st := range states {
		s |= 1 << uint(st)
	}
	return s
}

func (s stateSet) has(st State) bool {
	return s&(1<<uint(st)) != 0
}

var (
	lateralStates  = setOf(StateIdle, StateLeft, StateRight)
	verticalStates = setOf(StateIdle, StateUp, StateDown)
	airborneStates = setOf(StateJump, StateUp, StateDown)
	stunnedStates  = setOf(StateStun, StateLeftStun, StateRightStun)
	walkingStates  = setOf(StateLeft, StateRight)
)

// moveGates is the transition table for movement commands: the target state
// of a command maps to the states it may be issued from.
var moveGates = map[State]stateSet{
	StateLeft:  lateralStates,
	StateRight: lateralStates,
	StateUp:    verticalStates,
	StateDown:  verticalStates,
}

// CanMove reports whether a movement command towards to is legal from from.
func CanMove(from, to State) bool {
	gate, ok := moveGates[to]
	return ok && gate.has(from)
}

type point struct {
	x, y int
}

// Actor holds the motion state machine used by both the player and enemies.
type Actor struct {
	Rect   core.Rect
	SpeedX int
	SpeedY int
	State  State
	// Direction is the state an actor takes when its jump arc lands.
	Direction State

	jumpStart point
	jumpEnd   point
	jumpFrame int

	// platformChange indexes the platform an edge jump would land on, -1 if none.
	platformChange int
}

func newActor(x, y, w, h, speedX int) Actor {
	return Actor{
		Rect:           core.NewRect(x, y, w, h),
		SpeedX:         speedX,
		SpeedY:         ActorSpeedY,
		State:          StateIdle,
		Direction:      StateIdle,
		platformChange: -1,
	}
}

// MoveLeft starts walking left. When a platform above is within reach it
// launches an edge jump onto it instead.
func (a *Actor) MoveLeft(platforms []Platform) {
	if CanMove(a.State, StateLeft) {
		a.State = StateLeft
	}
	if a.hasPlatformChange(platforms) && a.rectOnLeft(platforms) {
		a.JumpTo(a.Rect.CenterX()-50, platforms[a.platformChange].Rect.Y+1, StateLeft)
	}
}

// MoveRight is the mirror of MoveLeft.
func (a *Actor) MoveRight(platforms []Platform) {
	if CanMove(a.State, StateRight) {
		a.State = StateRight
	}
	if a.hasPlatformChange(platforms) && a.rectOnRight(platforms) {
		a.JumpTo(a.Rect.CenterX()+50, platforms[a.platformChange].Rect.Y+1, StateRight)
	}
}

// MoveUp starts rising.
func (a *Actor) MoveUp() {
	if CanMove(a.State, StateUp) {
		a.State = StateUp
	}
}

// MoveDown starts falling.
func (a *Actor) MoveDown() {
	if CanMove(a.State, StateDown) {
		a.State = StateDown
	}
}

// Stop makes the actor idle regardless of its current state.
func (a *Actor) Stop() {
	a.State = StateIdle
}

// JumpTo starts an arc from the actor's center to the point where its
// midbottom will land. landing becomes the state once the arc completes.
func (a *Actor) JumpTo(x, y int, landing State) {
	a.Direction = landing
	a.State = StateJump
	cx, cy := a.Rect.Center()
	a.jumpStart = point{cx, cy}
	a.jumpEnd = point{x, y}
	a.jumpFrame = 0
}

// JumpTarget returns the landing point of the current or last jump.
func (a *Actor) JumpTarget() (int, int) {
	return a.jumpEnd.x, a.jumpEnd.y
}

// advance moves the actor one tick along its current state.
func (a *Actor) advance() {
	if a.State == StateJump {
		a.followArc()
		a.jumpFrame++
	} else {
		switch a.State {
		case StateLeft, StateLeftStun:
			a.Rect.X -= a.SpeedX
		case StateRight, StateRightStun:
			a.Rect.X += a.SpeedX
		case StateUp:
			a.Rect.Y -= a.SpeedY
		case StateDown:
			a.Rect.Y += a.SpeedY
		}
	}

	if a.Rect.Y < ceilingY {
		a.State = StateDown
	}
}

// followArc places the actor on a quadratic Bezier between the jump start and
// end, with the control point raised by the jump peak.
func (a *Actor) followArc() {
	if a.jumpFrame >= JumpDuration {
		a.jumpFrame = 0
		a.Rect.SetMidBottom(a.jumpEnd.x, a.jumpEnd.y)
		a.State = a.Direction
		return
	}

	t := float64(a.jumpFrame) / JumpDuration
	sx, sy := float64(a.jumpStart.x), float64(a.jumpStart.y)
	ex, ey := float64(a.jumpEnd.x), float64(a.jumpEnd.y)

	x := (1-t)*sx + t*ex
	y := (1-t)*(1-t)*sy + 2*(1-t)*t*(sy+jumpPeak) + t*t*ey
	a.Rect.SetMidBottom(int(x), int(y))
}

func (a *Actor) hasPlatformChange(platforms []Platform) bool {
	return a.platformChange >= 0 && a.platformChange < len(platforms)
}

// rectOnLeft reports whether any platform's center lies left of the actor's.
func (a *Actor) rectOnLeft(platforms []Platform) bool {
	cx := a.Rect.CenterX()
	for i := range platforms {
		if platforms[i].Rect.CenterX() < cx {
			return true
		}
	}
	return false
}

// rectOnRight reports whether any platform's center lies right of the actor's.
func (a *Actor) rectOnRight(platforms []Platform) bool {
	cx := a.Rect.CenterX()
	for i := range platforms {
		if cx < platforms[i].Rect.CenterX() {
			return true
		}
	}
	return false
}

// platformHits lists the indices of platforms overlapping the actor.
func (a *Actor) platformHits(platforms []Platform) []int {
	var hits []int
	for i := range platforms {
		if a.Rect.Intersects(platforms[i].Rect) {
			hits = append(hits, i)
		}
	}
	return hits
}

// Bounds implements Sprite.
func (a *Actor) Bounds() core.Rect {
	return a.Rect
}

// Shift implements Sprite. A jump in progress moves with the actor.
func (a *Actor) Shift(dx int) {
	a.Rect.X += dx
	a.shiftArc(dx)
}

func (a *Actor) shiftArc(dx int) {
	a.jumpStart.x += dx
	a.jumpEnd.x += dx
}
