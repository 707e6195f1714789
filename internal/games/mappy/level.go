package mappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-mappy/internal/core"
)

// Level is one round: its structures, loot, enemies and camera offset.
// Collections are plain slices; structures never move after building except
// through Scroll.
type Level struct {
	Number int

	Platforms   []Platform
	Trampolines []Trampoline
	Items       []Item
	Walls       []Wall
	Enemies     []*Enemy
	Doors       []Door
	Waves       []Wave
	Roof        core.Rect

	// Offset is the camera scroll, always <= 0.
	Offset int
	// Width and Height are the built extents in unscrolled coordinates.
	Width  int
	Height int

	Pairs PairTracker

	totalEnemies   int
	currentEnemies int
	spawnTicks     int

	rng  *rand.Rand
	cues []core.Sound
}

// NewLevel generates and builds the given round.
func NewLevel(number int, rng *rand.Rand) (*Level, error) {
	layout, err := GenerateLayout(number, rng)
	if err != nil {
		return nil, err
	}
	return BuildLevel(number, layout, rng), nil
}

// BuildLevel lays out a level from a generated grid and scrolls the camera
// so the building's right edge sits at the playfield's right margin.
func BuildLevel(number int, layout Layout, rng *rand.Rand) *Level {
	l := &Level{
		Number:       number,
		Pairs:        NewPairTracker(),
		totalEnemies: number,
		rng:          rng,
	}
	l.build(layout)
	return l
}

func gridAt(grid [][]int, r, c int) int {
	if r < 0 || r >= len(grid) || c < 0 || c >= len(grid[r]) {
		return 0
	}
	return grid[r][c]
}

func (l *Level) build(layout Layout) {
	rows, cols := layout.Rows(), layout.Cols()
	increment := 0
	x, y := levelStartX, levelStartY

	for r := 0; r < rows; r++ {
		x = levelStartX
		wallHeight := WallHeight
		if r == 0 {
			wallHeight = RoofWallHeight
		}

		for c := 0; c < cols; c++ {
			if c == 0 {
				l.Walls = append(l.Walls, NewWall(x+2, y, wallHeight))
			}

			switch layout.Cells[r][c] {
			case CellVoid:
				x += TrampolineWidth
				increment = widthCorrection

			case CellPlatform:
				width := PlatformWidth + increment
				l.Platforms = append(l.Platforms, NewPlatform(x, y, width, r == rows-1))
				x += width

				if kind := gridAt(layout.Items, r, c); kind != 0 {
					l.Items = append(l.Items, NewItem(x-10, y, kind))
				}
				if mark := gridAt(layout.Doors, r, c); mark != DoorNone && c != 0 && c != cols-1 {
					l.Doors = append(l.Doors, l.doorFor(layout, r, c, x, y, width, mark == DoorSpecial))
				}
				increment = 0

			case CellTrampoline:
				if c < cols-2 && layout.Cells[r][c+1] == CellPlatform {
					increment = widthCorrection
				}
				l.Trampolines = append(l.Trampolines, NewTrampoline(x, y+PlatformHeight-TrampolineHeight))
				x += TrampolineWidth
			}
		}
		// The right wall straddles the building's right edge like the left one.
		l.Walls = append(l.Walls, NewWall(x+WallWidth-2, y, wallHeight))
		y += FloorHeight
	}

	l.Width = x
	l.Height = y - FloorHeight
	l.Roof = core.NewRect(0, 0, x-TrampolineWidth+10, RoofHeight)
	l.Roof.SetBottomLeft(levelStartX, levelStartY)
	l.Scroll(-l.Width + ScreenWidth - 60)
}

// doorFor places a door on the platform ending at x. Doors next to a shaft
// swing away from it; others face a random side.
func (l *Level) doorFor(layout Layout, r, c, x, y, width int, special bool) Door {
	switch {
	case layout.Cells[r][c-1] == CellVoid:
		return NewDoor(x+5-width, y, DoorFacingRight, special, l.rng)
	case layout.Cells[r][c+1] == CellVoid:
		return NewDoor(x-5, y, DoorFacingLeft, special, l.rng)
	default:
		return NewDoor(x-5, y, 0, special, l.rng)
	}
}

// Left returns the building's left edge in screen coordinates.
func (l *Level) Left() int {
	return levelStartX + l.Offset
}

// Right returns the building's right edge in screen coordinates.
func (l *Level) Right() int {
	return l.Width + l.Offset
}

// Update advances the round one tick and returns the score earned.
func (l *Level) Update(p *Player) int {
	score := p.Interact(l)

	kept := l.Enemies[:0]
	for _, e := range l.Enemies {
		e.Interact(l, p, l.rng)
		for i := range l.Doors {
			l.Doors[i].Collide(&e.Actor, true)
		}

		if e.State == StateStun {
			if e.StunTicks < FPS*enemyStunSeconds {
				e.StunTicks++
			} else {
				score += StunScore
				l.currentEnemies--
				continue
			}
		}

		for i := range l.Waves {
			l.Waves[i].Stun(&e.Actor)
		}

		if e.Rect.Y > l.Height {
			l.currentEnemies--
			continue
		}
		if l.sweptAway(e) {
			score += StunScore
			l.currentEnemies--
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(l.Enemies); i++ {
		l.Enemies[i] = nil
	}
	l.Enemies = kept

	for i := range l.Doors {
		d := &l.Doors[i]
		if d.Collide(&p.Actor, false) && d.Special {
			cx, cy := d.Rect.Center()
			l.Waves = append(l.Waves, NewWave(cx, cy, d.Facing))
		}
	}

	live := l.Waves[:0]
	for _, w := range l.Waves {
		w.Update()
		if w.hit || w.Rect.Right() < l.Left() || w.Rect.X > l.Right() {
			continue
		}
		live = append(live, w)
	}
	l.Waves = live

	for i := range l.Trampolines {
		l.Trampolines[i].Update()
	}

	l.spawnEnemies()
	return score
}

// sweptAway reports whether a wave carried the enemy out of the building.
func (l *Level) sweptAway(e *Enemy) bool {
	if e.State != StateLeftStun && e.State != StateRightStun {
		return false
	}
	return e.Rect.Right() < l.Left() || e.Rect.X > l.Right()
}

// spawnEnemies drops a new enemy in the middle of the building every
// couple of seconds until the round's quota is out.
func (l *Level) spawnEnemies() {
	if l.currentEnemies >= l.totalEnemies {
		return
	}
	if l.spawnTicks <= FPS*enemySpawnSeconds {
		l.spawnTicks++
		return
	}
	e := NewEnemy(l.Width/2-core.Abs(l.Offset)+enemySpawnOffsetX, enemySpawnY)
	e.MoveDown()
	l.Enemies = append(l.Enemies, e)
	l.spawnTicks = 0
	l.currentEnemies++
}

// CatchesPlayer reports whether a grounded enemy has the player. The enemy
// must cover the player's center and be walking the same way, or the player
// must be standing still. Stunned enemies are harmless.
func (l *Level) CatchesPlayer(p *Player) bool {
	if airborneStates.has(p.State) {
		return false
	}
	cx, cy := p.Rect.Center()
	for _, e := range l.Enemies {
		if airborneStates.has(e.State) || e.Stunned() {
			continue
		}
		if !e.Rect.Contains(cx, cy) {
			continue
		}
		if p.State == e.State || p.State == StateIdle {
			return true
		}
	}
	return false
}

// PlayerFell reports whether the player dropped below the ground floor.
func (l *Level) PlayerFell(p *Player) bool {
	return p.Rect.Y > l.Height
}

// Cleared reports whether all loot has been collected.
func (l *Level) Cleared() bool {
	return len(l.Items) == 0
}

// ResetEnemies removes every enemy; they spawn again from scratch.
func (l *Level) ResetEnemies() {
	l.Enemies = nil
	l.currentEnemies = 0
}

// RepairTrampolines restores every trampoline.
func (l *Level) RepairTrampolines() {
	for i := range l.Trampolines {
		l.Trampolines[i].Repair()
	}
}

// Scroll moves the camera by dx pixels, shifting every sprite at once.
func (l *Level) Scroll(dx int) {
	l.Offset += dx
	for _, s := range l.sprites() {
		s.Shift(dx)
	}
	l.Roof.X += dx
}

func (l *Level) sprites() []Sprite {
	out := make([]Sprite, 0, len(l.Platforms)+len(l.Trampolines)+len(l.Items)+
		len(l.Walls)+len(l.Enemies)+len(l.Doors)+len(l.Waves))
	for i := range l.Platforms {
		out = append(out, &l.Platforms[i])
	}
	for i := range l.Trampolines {
		out = append(out, &l.Trampolines[i])
	}
	for i := range l.Items {
		out = append(out, &l.Items[i])
	}
	for i := range l.Walls {
		out = append(out, &l.Walls[i])
	}
	for _, e := range l.Enemies {
		out = append(out, e)
	}
	for i := range l.Doors {
		out = append(out, &l.Doors[i])
	}
	for i := range l.Waves {
		out = append(out, &l.Waves[i])
	}
	return out
}

func (l *Level) cue(s core.Sound) {
	l.cues = append(l.cues, s)
}

// DrainCues returns the sound cues raised since the last call.
func (l *Level) DrainCues() []core.Sound {
	out := l.cues
	l.cues = nil
	return out
}
