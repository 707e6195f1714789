package mappy

import (
	"testing"

	"pgregory.net/rapid"
)

func TestCanMove(t *testing.T) {
	tests := []struct {
		from, to State
		expected bool
	}{
		{StateIdle, StateLeft, true},
		{StateRight, StateLeft, true},
		{StateUp, StateLeft, false},
		{StateDown, StateRight, false},
		{StateJump, StateRight, false},
		{StateStun, StateLeft, false},
		{StateIdle, StateUp, true},
		{StateDown, StateUp, true},
		{StateLeft, StateUp, false},
		{StateUp, StateDown, true},
		{StateJump, StateDown, false},
		{StateIdle, StateJump, false},
	}

	for _, tt := range tests {
		if got := CanMove(tt.from, tt.to); got != tt.expected {
			t.Errorf("CanMove(%v, %v) = %v, expected %v", tt.from, tt.to, got, tt.expected)
		}
	}
}

func TestMoveCommandsFollowGates(t *testing.T) {
	states := []State{StateIdle, StateLeft, StateRight, StateUp, StateDown, StateJump, StateStun, StateLeftStun, StateRightStun}

	rapid.Check(t, func(t *rapid.T) {
		from := rapid.SampledFrom(states).Draw(t, "from")
		cmd := rapid.SampledFrom([]State{StateLeft, StateRight, StateUp, StateDown}).Draw(t, "command")

		a := newActor(100, 200, PlayerWidth, PlayerHeight, PlayerSpeedX)
		a.State = from
		switch cmd {
		case StateLeft:
			a.MoveLeft(nil)
		case StateRight:
			a.MoveRight(nil)
		case StateUp:
			a.MoveUp()
		case StateDown:
			a.MoveDown()
		}

		expected := from
		if CanMove(from, cmd) {
			expected = cmd
		}
		if a.State != expected {
			t.Fatalf("state after %v from %v = %v, expected %v", cmd, from, a.State, expected)
		}
	})
}

func TestMoveLeftFromShaftWithoutLedge(t *testing.T) {
	a := newActor(100, 200, PlayerWidth, PlayerHeight, PlayerSpeedX)
	a.State = StateUp
	x, y := a.Rect.X, a.Rect.Y

	a.MoveLeft([]Platform{NewPlatform(0, 150, PlatformWidth, false)})

	if a.State != StateUp {
		t.Errorf("State = %v, expected %v", a.State, StateUp)
	}
	if a.Rect.X != x || a.Rect.Y != y {
		t.Errorf("position = (%d, %d), expected (%d, %d)", a.Rect.X, a.Rect.Y, x, y)
	}
}

func TestMoveFromShaftOntoLedge(t *testing.T) {
	platforms := []Platform{
		NewPlatform(0, 150, PlatformWidth, false),
		NewPlatform(300, 150, PlatformWidth, false),
	}

	tests := []struct {
		name    string
		move    func(a *Actor)
		targetX int
		landing State
	}{
		{"left", func(a *Actor) { a.MoveLeft(platforms) }, 165, StateLeft},
		{"right", func(a *Actor) { a.MoveRight(platforms) }, 265, StateRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newActor(200, 160, PlayerWidth, PlayerHeight, PlayerSpeedX)
			a.State = StateUp
			a.platformChange = 0

			tt.move(&a)

			if a.State != StateJump {
				t.Fatalf("State = %v, expected %v", a.State, StateJump)
			}
			x, y := a.JumpTarget()
			if x != tt.targetX || y != 151 {
				t.Errorf("JumpTarget() = (%d, %d), expected (%d, 151)", x, y, tt.targetX)
			}
			if a.Direction != tt.landing {
				t.Errorf("Direction = %v, expected %v", a.Direction, tt.landing)
			}
		})
	}
}

func TestStop(t *testing.T) {
	for _, s := range []State{StateLeft, StateUp, StateJump, StateStun} {
		a := newActor(0, 200, 10, 10, 1)
		a.State = s
		a.Stop()
		if a.State != StateIdle {
			t.Errorf("Stop() from %v left state %v, expected %v", s, a.State, StateIdle)
		}
	}
}

func TestAdvanceMovesByState(t *testing.T) {
	tests := []struct {
		state  State
		dx, dy int
	}{
		{StateIdle, 0, 0},
		{StateLeft, -PlayerSpeedX, 0},
		{StateRight, PlayerSpeedX, 0},
		{StateUp, 0, -ActorSpeedY},
		{StateDown, 0, ActorSpeedY},
		{StateStun, 0, 0},
		{StateLeftStun, -PlayerSpeedX, 0},
		{StateRightStun, PlayerSpeedX, 0},
	}

	for _, tt := range tests {
		a := newActor(100, 300, PlayerWidth, PlayerHeight, PlayerSpeedX)
		a.State = tt.state
		a.advance()
		if a.Rect.X != 100+tt.dx || a.Rect.Y != 300+tt.dy {
			t.Errorf("advance() in %v moved to (%d, %d), expected (%d, %d)",
				tt.state, a.Rect.X, a.Rect.Y, 100+tt.dx, 300+tt.dy)
		}
	}
}

func TestCeilingForcesDescent(t *testing.T) {
	a := newActor(100, ceilingY+2, PlayerWidth, PlayerHeight, PlayerSpeedX)
	a.State = StateUp
	a.advance()

	if a.State != StateDown {
		t.Errorf("State = %v, expected %v", a.State, StateDown)
	}
}

func TestJumpArcLandsOnTarget(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sx := rapid.IntRange(0, ScreenWidth).Draw(t, "sx")
		sy := rapid.IntRange(200, ScreenHeight-PlayerHeight).Draw(t, "sy")
		ex := rapid.IntRange(0, ScreenWidth).Draw(t, "ex")
		ey := rapid.IntRange(200, ScreenHeight).Draw(t, "ey")
		landing := rapid.SampledFrom([]State{StateLeft, StateRight, StateDown, StateStun}).Draw(t, "landing")

		a := newActor(sx, sy, PlayerWidth, PlayerHeight, PlayerSpeedX)
		a.JumpTo(ex, ey, landing)

		for i := 0; i < JumpDuration; i++ {
			a.advance()
			if a.State != StateJump {
				t.Fatalf("left the arc after %d ticks in state %v", i+1, a.State)
			}
		}
		a.advance()

		if a.Rect.CenterX() != ex || a.Rect.Bottom() != ey {
			t.Fatalf("landed at (%d, %d), expected (%d, %d)", a.Rect.CenterX(), a.Rect.Bottom(), ex, ey)
		}
		if a.State != landing {
			t.Fatalf("State = %v, expected %v", a.State, landing)
		}
	})
}

func TestJumpToRestartsArc(t *testing.T) {
	a := newActor(100, 300, PlayerWidth, PlayerHeight, PlayerSpeedX)
	a.JumpTo(200, 330, StateRight)
	for i := 0; i < 5; i++ {
		a.advance()
	}

	a.JumpTo(50, 330, StateLeft)
	if a.jumpFrame != 0 {
		t.Errorf("jumpFrame = %d, expected 0", a.jumpFrame)
	}
	for i := 0; i <= JumpDuration; i++ {
		a.advance()
	}
	if a.Rect.CenterX() != 50 || a.State != StateLeft {
		t.Errorf("landed at x=%d in %v, expected x=50 in %v", a.Rect.CenterX(), a.State, StateLeft)
	}
}

func TestShiftMovesArc(t *testing.T) {
	a := newActor(100, 300, PlayerWidth, PlayerHeight, PlayerSpeedX)
	a.JumpTo(200, 330, StateRight)
	a.Shift(-40)

	if a.Rect.X != 60 {
		t.Errorf("Rect.X = %d, expected 60", a.Rect.X)
	}
	if x, _ := a.JumpTarget(); x != 160 {
		t.Errorf("JumpTarget() x = %d, expected 160", x)
	}
}
