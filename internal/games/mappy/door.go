package mappy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-mappy/internal/core"
)

// Door facings. A closed door faces left or right; an open door is inert.
const (
	DoorFacingLeft  = -1
	DoorOpen        = 0
	DoorFacingRight = 1
)

// Door blocks walkers until the player opens it. Opening knocks back an
// actor walking into the swinging side.
type Door struct {
	Rect core.Rect
	// State is DoorFacingLeft, DoorFacingRight or DoorOpen.
	State int
	// Facing is the direction the door faced when closed.
	Facing  int
	Special bool
}

// NewDoor creates a closed door standing on (x, bottom). A direction of 0
// picks a facing at random; any value other than -1, 0 or 1 panics.
func NewDoor(x, bottom, direction int, special bool, rng *rand.Rand) Door {
	var state int
	switch direction {
	case 0:
		state = DoorFacingLeft
		if rng.Intn(2) == 1 {
			state = DoorFacingRight
		}
	case DoorFacingLeft, DoorFacingRight:
		state = direction
	default:
		panic(fmt.Sprintf("mappy: invalid door direction %d", direction))
	}

	d := Door{
		Rect:    core.NewRect(0, 0, ClosedDoorWidth, DoorHeight),
		State:   state,
		Facing:  state,
		Special: special,
	}
	d.Rect.SetMidBottom(x, bottom)
	return d
}

// Bounds implements Sprite.
func (d *Door) Bounds() core.Rect { return d.Rect }

// Shift implements Sprite.
func (d *Door) Shift(dx int) { d.Rect.X += dx }

// Closed reports whether the door still blocks.
func (d *Door) Closed() bool {
	return d.State != DoorOpen
}

// Open swings the door wide. An actor walking into the door's face is sent
// back along an arc that ends diff+10 pixels behind its center, where diff is
// how much the door widened. Enemies hit this way land stunned.
func (d *Door) Open(a *Actor, enemy bool) {
	diff := OpenDoorWidth - d.Rect.W
	bottom := d.Rect.Bottom()

	landing := func(walking State) State {
		if enemy {
			return StateStun
		}
		return walking
	}

	switch d.State {
	case DoorFacingLeft:
		d.Rect.X -= diff
		d.Rect.W = OpenDoorWidth
		if a.State == StateRight {
			a.JumpTo(a.Rect.CenterX()-diff-10, a.Rect.Bottom(), landing(StateRight))
		}
	case DoorFacingRight:
		d.Rect.W = OpenDoorWidth
		if a.State == StateLeft {
			a.JumpTo(a.Rect.CenterX()+diff+10, a.Rect.Bottom(), landing(StateLeft))
		}
	}
	d.Rect.Y = bottom - d.Rect.H
	d.State = DoorOpen
}

// Collide resolves an actor touching the door and reports whether the door
// acted on a walker. The player opens any closed door. Enemies bounce off a
// plain door's back, trigger it from the front, and always bounce off
// special doors. Jumping actors are dropped short of the door.
func (d *Door) Collide(a *Actor, enemy bool) bool {
	if !d.Rect.Intersects(a.Rect) || !d.Closed() {
		return false
	}

	switch {
	case walkingStates.has(a.State):
		switch {
		case !enemy:
			d.Open(a, false)
		case d.Special:
			a.State = reverse(a.State)
		case d.State == DoorFacingLeft && a.State == StateLeft,
			d.State == DoorFacingRight && a.State == StateRight:
			a.State = reverse(a.State)
		default:
			d.Open(a, true)
		}
		return true

	case a.State == StateJump:
		switch a.Direction {
		case StateLeft:
			a.JumpTo(a.Rect.X+40, a.Rect.Bottom(), StateDown)
		case StateRight:
			a.JumpTo(a.Rect.X-40, a.Rect.Bottom(), StateDown)
		}
	}
	return false
}

func reverse(s State) State {
	switch s {
	case StateLeft:
		return StateRight
	case StateRight:
		return StateLeft
	}
	return s
}

// Wave is the shock front released by a special door. It slides stunned
// enemies along with it.
type Wave struct {
	Rect      core.Rect
	Direction int
	Speed     int

	hit bool
}

// NewWave creates a wave centered on (cx, cy) travelling in direction.
func NewWave(cx, cy, direction int) Wave {
	w := Wave{
		Rect:      core.NewRect(0, 0, WaveWidth, WaveHeight),
		Direction: direction,
		Speed:     WaveSpeed,
	}
	w.Rect.SetCenter(cx, cy)
	return w
}

// Bounds implements Sprite.
func (w *Wave) Bounds() core.Rect { return w.Rect }

// Shift implements Sprite.
func (w *Wave) Shift(dx int) { w.Rect.X += dx }

// Stun catches an overlapping actor and carries it in the wave's direction.
func (w *Wave) Stun(a *Actor) bool {
	if !w.Rect.Intersects(a.Rect) {
		return false
	}
	a.SpeedX = w.Speed
	switch w.Direction {
	case DoorFacingLeft:
		a.State = StateLeftStun
	case DoorFacingRight:
		a.State = StateRightStun
	}
	w.hit = true
	return true
}

// Update moves the wave one tick.
func (w *Wave) Update() {
	w.Rect.X += w.Direction * w.Speed
}
