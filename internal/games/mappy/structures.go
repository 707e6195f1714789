package mappy

import "github.com/vovakirdan/tui-mappy/internal/core"

// Sprite is implemented by everything the level positions in pixel space.
// Scrolling goes through this interface so no collection is left behind.
type Sprite interface {
	Bounds() core.Rect
	Shift(dx int)
}

// Platform is a static floor segment. Floor only changes how it is drawn.
type Platform struct {
	Rect  core.Rect
	Floor bool
}

// NewPlatform creates a platform with its top-left corner at (x, y).
func NewPlatform(x, y, width int, floor bool) Platform {
	return Platform{Rect: core.NewRect(x, y, width, PlatformHeight), Floor: floor}
}

// Bounds implements Sprite.
func (p *Platform) Bounds() core.Rect { return p.Rect }

// Shift implements Sprite.
func (p *Platform) Shift(dx int) { p.Rect.X += dx }

// Wall bounces walking actors back the way they came.
type Wall struct {
	Rect core.Rect
}

// NewWall creates a wall whose bottom-right corner is at (right, bottom).
func NewWall(right, bottom, height int) Wall {
	w := Wall{Rect: core.NewRect(0, 0, WallWidth, height)}
	w.Rect.SetBottomRight(right, bottom)
	return w
}

// Bounds implements Sprite.
func (w *Wall) Bounds() core.Rect { return w.Rect }

// Shift implements Sprite.
func (w *Wall) Shift(dx int) { w.Rect.X += dx }

// Deflect pushes an overlapping walker out of the wall and reverses it.
func (w *Wall) Deflect(a *Actor) {
	if !w.Rect.Intersects(a.Rect) {
		return
	}
	switch a.State {
	case StateLeft:
		a.Rect.SetBottomLeft(w.Rect.Right()+4, w.Rect.Bottom())
		a.State = StateRight
	case StateRight:
		a.Rect.SetBottomRight(w.Rect.X-4, w.Rect.Bottom())
		a.State = StateLeft
	}
}

// TrampolineColor is the wear level shown for a trampoline.
type TrampolineColor int

const (
	TrampolineGreen TrampolineColor = iota
	TrampolineBlue
	TrampolinePink
	TrampolineRed
)

const maxBounces = 3

// trampolineSequence is the frame order of the bounce animation.
var trampolineSequence = [...]int{1, 2, 3, 2, 1, 4, 5, 4}

// Trampoline launches falling actors back up and breaks after three
// consecutive bounces.
type Trampoline struct {
	Rect    core.Rect
	Bounces int
	Broken  bool

	animating  bool
	animTicks  int
	animFrame  int
	shownFrame int
}

// NewTrampoline creates a trampoline with its top-left corner at (x, y).
func NewTrampoline(x, y int) Trampoline {
	return Trampoline{
		Rect:      core.NewRect(x, y, TrampolineWidth, TrampolineHeight),
		animTicks: 1,
	}
}

// Bounds implements Sprite.
func (t *Trampoline) Bounds() core.Rect { return t.Rect }

// Shift implements Sprite.
func (t *Trampoline) Shift(dx int) { t.Rect.X += dx }

// Bounce sends a falling, overlapping actor upwards and returns the score
// earned. A broken trampoline never bounces.
func (t *Trampoline) Bounce(a *Actor) int {
	if t.Broken {
		return 0
	}
	if !a.Rect.Intersects(t.Rect) || a.State != StateDown {
		return 0
	}
	a.MoveUp()
	t.Bounces++
	if t.Bounces >= maxBounces {
		t.Broken = true
	}
	return TrampolineScore
}

// under reports whether r hangs over the trampoline's span from above.
func (t *Trampoline) under(r core.Rect) bool {
	inside := func(x int) bool {
		return t.Rect.X+2 < x && x < t.Rect.Right()-2
	}
	return (inside(r.X) || inside(r.Right())) && t.Rect.Y > r.Y
}

// ResetCounter clears the consecutive bounce count. Broken stays set.
func (t *Trampoline) ResetCounter() {
	t.Bounces = 0
}

// Repair restores the trampoline to a fresh state.
func (t *Trampoline) Repair() {
	t.ResetCounter()
	t.Broken = false
}

// StartAnimation restarts the bounce animation.
func (t *Trampoline) StartAnimation() {
	t.animTicks = 1
	t.animFrame = 0
	t.animating = true
}

// Update advances the bounce animation by one tick.
func (t *Trampoline) Update() {
	if !t.animating {
		return
	}
	if t.animFrame < len(trampolineSequence)-1 {
		if t.animTicks%3 == 0 {
			t.animFrame++
		}
		t.shownFrame = trampolineSequence[t.animFrame]
		t.animTicks++
		return
	}

	t.shownFrame = 0
	t.animFrame = 0
	t.animTicks = 1
	t.animating = false
}

// Color returns the wear color keyed by the bounce counter.
func (t *Trampoline) Color() TrampolineColor {
	return TrampolineColor(core.Clamp(t.Bounces, 0, maxBounces))
}

// Frame returns the animation frame being shown, 0 when at rest.
func (t *Trampoline) Frame() int {
	if !t.animating {
		return 0
	}
	return t.shownFrame
}
