package mappy

import "github.com/vovakirdan/tui-mappy/internal/core"

var playerBounds = core.NewRect(60, 0, ScreenWidth-120, ScreenHeight)

// The death animation advances one frame every deathFrameTicks and holds on
// deathLastFrame.
const (
	deathLastFrame  = 7
	deathFrameTicks = 15
	walkBlinkTicks  = 10
)

// Player is the mouse controlled by the keyboard.
type Player struct {
	Actor
	Lives int

	deathTicks int
	deathFrame int
	walkTicks  int
}

// NewPlayer creates a player at its starting spot.
func NewPlayer(lives int) *Player {
	p := &Player{
		Actor: newActor(playerStartX, playerStartY, PlayerWidth, PlayerHeight, PlayerSpeedX),
		Lives: lives,
	}
	p.deathFrame = 1
	return p
}

// Respawn puts the player back at its starting spot, idle.
func (p *Player) Respawn() {
	p.Rect.X, p.Rect.Y = playerStartX, playerStartY
	p.State = StateIdle
	p.platformChange = -1
	p.deathTicks = 0
	p.deathFrame = 1
}

// Update moves the player one tick and keeps it inside the playfield.
func (p *Player) Update() {
	if p.State != StateStun {
		p.animate()
	}
	p.advance()
	p.Rect.ClampInto(playerBounds)
}

func (p *Player) animate() {
	if walkingStates.has(p.State) {
		p.walkTicks++
	}
}

// Blinking reports whether the walk cycle is on its idle frame.
func (p *Player) Blinking() bool {
	return walkingStates.has(p.State) && p.walkTicks%walkBlinkTicks == 0
}

// AnimateDeath advances the death animation one tick.
func (p *Player) AnimateDeath() {
	p.State = StateStun
	if p.deathFrame < deathLastFrame {
		if p.deathTicks%deathFrameTicks == 0 {
			p.deathFrame++
		}
		p.deathTicks++
	}
}

// DeathFrame returns the current death animation frame.
func (p *Player) DeathFrame() int {
	return p.deathFrame
}

// Interact resolves the player against the level's structures and loot
// and returns the score earned. Order: trampolines, shaft alignment,
// platform edges, landing, loot, walls.
func (p *Player) Interact(l *Level) int {
	score := 0
	hits := p.platformHits(l.Platforms)

	match := -1
	for i := range l.Trampolines {
		tr := &l.Trampolines[i]
		aligned := tr.under(p.Rect)
		if aligned {
			match = i
		}
		if s := tr.Bounce(&p.Actor); s > 0 {
			score += s
			tr.StartAnimation()
			l.cue(core.SoundBounce)
		}
		if !aligned {
			tr.ResetCounter()
		}
	}

	var shaft *Trampoline
	if match >= 0 {
		shaft = &l.Trampolines[match]
	}
	p.dropIntoShaft(shaft, hits)
	p.followPlatforms(l.Platforms, shaft != nil, hits, playerNav)
	p.landOn(l.Platforms, hits)

	score += p.collect(l)
	for i := range l.Items {
		if l.Items[i].Type == l.Pairs.Target {
			l.Items[i].startBlinking()
		} else {
			l.Items[i].stopBlinking()
		}
	}

	p.bounceOffWalls(l.Walls)
	return score
}

// collect picks up at most one item while the player walks.
func (p *Player) collect(l *Level) int {
	if !walkingStates.has(p.State) {
		return 0
	}
	for i := range l.Items {
		if !l.Items[i].Touches(&p.Actor) {
			continue
		}
		kind := l.Items[i].Type
		l.Items = append(l.Items[:i], l.Items[i+1:]...)
		l.cue(core.SoundPickup)
		return l.Pairs.Collect(kind)
	}
	return 0
}
