package mappy

import (
	"fmt"

	"github.com/vovakirdan/tui-mappy/internal/core"
)

// Glyphs used to draw the building.
const (
	PlatformChar    = '▀'
	GroundChar      = '█'
	WallChar        = '▐'
	RoofChar        = '▄'
	TrampolineChar  = '~'
	BrokenChar      = '_'
	DoorChar        = '▌'
	OpenDoorChar    = '░'
	WaveChar        = '≈'
	PlayerChar      = 'M'
	PlayerBlinkChar = 'm'
	EnemyChar       = '@'
	StunnedChar     = 'x'
	HeartChar       = '♥'
)

var itemGlyphs = map[int]rune{
	ItemRadio:    '♪',
	ItemTV:       '▣',
	ItemComputer: '⌨',
	ItemPainting: '▤',
	ItemSafe:     '$',
}

var trampolineColors = map[TrampolineColor]core.Color{
	TrampolineGreen: core.ColorGreen,
	TrampolineBlue:  core.ColorBlue,
	TrampolinePink:  core.ColorMagenta,
	TrampolineRed:   core.ColorRed,
}

// Trampoline animation frames 1-5 squash the mat.
var trampolineFrames = [...]rune{TrampolineChar, '-', '‿', '_', '‿', '-'}

// deathGlyphs is indexed by death frame, 1 through deathLastFrame.
var deathGlyphs = [...]rune{'M', 'M', 'W', 'w', '*', '+', '.', ' '}

// viewport maps playfield pixels onto screen cells.
type viewport struct {
	dst *core.Screen
}

func (v viewport) col(px int) int {
	return px * v.dst.Width() / ScreenWidth
}

func (v viewport) row(py int) int {
	return py * v.dst.Height() / ScreenHeight
}

// cells returns the cell rectangle covering r, at least one cell in size.
func (v viewport) cells(r core.Rect) core.Rect {
	x0, y0 := v.col(r.X), v.row(r.Y)
	x1 := (r.Right()*v.dst.Width() + ScreenWidth - 1) / ScreenWidth
	y1 := (r.Bottom()*v.dst.Height() + ScreenHeight - 1) / ScreenHeight
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

func (v viewport) fill(r core.Rect, ch rune, c core.Color) {
	v.dst.FillRect(v.cells(r), ch, c)
}

// fillEdge draws only the top row of cells covered by r.
func (v viewport) fillEdge(r core.Rect, ch rune, c core.Color) {
	cr := v.cells(r)
	cr.H = 1
	v.dst.FillRect(cr, ch, c)
}

// Render draws the current scene into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := viewport{dst: dst}

	switch s := g.scene.(type) {
	case startScene:
		g.drawTitle(dst)
	case *changeScene:
		dst.DrawTextCenteredColored(dst.Height()/2, fmt.Sprintf("ROUND %d", g.round), core.ColorBrightYellow)
	case *levelScene:
		g.drawLevel(v)
		g.drawHUD(dst)
	case *blockScene:
		g.drawLevel(v)
		g.drawHUD(dst)
		drawCenteredMessage(dst, "ROUND CLEAR", fmt.Sprintf("Score: %d", g.score))
	case *resetScene, *gameOverScene:
		g.drawPlayer(v)
		g.drawHUD(dst)
	case *gameOverScreenScene:
		dst.DrawTextCenteredColored(dst.Height()/2, "GAME OVER", core.ColorBrightRed)
		g.drawHUD(dst)
	case *scoresScene:
		g.drawScores(dst, s.entry)
		g.drawHUD(dst)
	case *pauseScene:
		drawCenteredMessage(dst, "PAUSED", "ESC resume  |  Q save and quit")
	}
}

func (g *Game) drawTitle(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColored(mid-3, "M A P P Y", core.ColorBrightCyan)
	dst.DrawTextCenteredColored(mid-1, fmt.Sprintf("HIGH SCORE %d", g.highScore), core.ColorRed)
	dst.DrawTextCentered(mid+1, "SPACE  start")
	dst.DrawTextCentered(mid+2, "L      load saved game")
}

func (g *Game) drawLevel(v viewport) {
	l := g.level
	if l == nil {
		return
	}

	for i := range l.Platforms {
		pl := &l.Platforms[i]
		if pl.Floor {
			v.fill(pl.Rect, GroundChar, core.ColorOrange)
		} else {
			v.fillEdge(pl.Rect, PlatformChar, core.ColorOrange)
		}
	}
	for i := range l.Doors {
		d := &l.Doors[i]
		color := core.ColorYellow
		if d.Special {
			color = core.ColorBrightCyan
		}
		if d.Closed() {
			v.fill(d.Rect, DoorChar, color)
		} else {
			v.fill(d.Rect, OpenDoorChar, color)
		}
	}
	for i := range l.Walls {
		v.fill(l.Walls[i].Rect, WallChar, core.ColorGray)
	}
	for i := range l.Trampolines {
		tr := &l.Trampolines[i]
		if tr.Broken {
			v.fillEdge(tr.Rect, BrokenChar, core.ColorGray)
			continue
		}
		v.fillEdge(tr.Rect, trampolineFrames[tr.Frame()], trampolineColors[tr.Color()])
	}
	for i := range l.Items {
		it := &l.Items[i]
		if it.Visible {
			v.fillEdge(it.Rect, itemGlyphs[it.Type], core.ColorBrightWhite)
		}
	}
	for _, e := range l.Enemies {
		if e.Stunned() {
			v.fill(e.Rect, StunnedChar, core.ColorGray)
		} else {
			v.fill(e.Rect, EnemyChar, core.ColorBrightMagenta)
		}
	}
	for i := range l.Waves {
		v.fill(l.Waves[i].Rect, WaveChar, core.ColorCyan)
	}
	v.fill(l.Roof, RoofChar, core.ColorRed)

	g.drawPlayer(v)
}

func (g *Game) drawPlayer(v viewport) {
	p := g.player
	ch := PlayerChar
	switch {
	case p.State == StateStun:
		ch = deathGlyphs[core.Clamp(p.DeathFrame(), 0, len(deathGlyphs)-1)]
	case p.Blinking():
		ch = PlayerBlinkChar
	}
	v.fill(p.Rect, ch, core.ColorBrightBlue)
}

func (g *Game) drawHUD(dst *core.Screen) {
	w := dst.Width()

	dst.DrawTextColored(w/4-1, 0, "1UP", core.ColorRed)
	score := fmt.Sprint(g.score)
	dst.DrawText(w/4-len(score)/2, 1, score)

	dst.DrawTextCenteredColored(0, "HIGH SCORE", core.ColorRed)
	dst.DrawTextCentered(1, fmt.Sprint(g.highScore))

	for i := 0; i < g.player.Lives; i++ {
		dst.SetColored(1+i*2, dst.Height()-1, HeartChar, core.ColorBrightRed)
	}
}

func (g *Game) drawScores(dst *core.Screen, e *NameEntry) {
	y := 4
	dst.DrawTextCenteredColored(y, "ENTER YOUR INITIALS", core.ColorBrightYellow)
	y += 2

	name := []rune(e.Name())
	x := (dst.Width() - len(name)*2) / 2
	for i, r := range name {
		color := core.ColorWhite
		if i == e.Slot() {
			color = core.ColorBrightYellow
		}
		dst.SetColored(x+i*2, y, r, color)
	}
	y += 3

	dst.DrawTextCenteredColored(y, "RANK  SCORE    ROUND  NAME", core.ColorRed)
	y++
	for i, r := range e.Top {
		color := core.ColorWhite
		if r.Name == e.Name() && r.Score == e.Score {
			color = core.ColorBrightYellow
		}
		dst.DrawTextCenteredColored(y+i, fmt.Sprintf("%-4d  %-7d  %-5d  %s", i+1, r.Score, r.Round, r.Name), color)
	}
	if !e.InTop {
		line := fmt.Sprintf("%-4s  %-7d  %-5d  %s", "-", e.Score, e.Round, e.Name())
		dst.DrawTextCenteredColored(y+len(e.Top)+1, line, core.ColorBrightYellow)
	}

	dst.DrawTextCentered(dst.Height()-3, "←/→ select  ↑/↓ letter  SPACE save")
}

// drawCenteredMessage draws a boxed two-line message in the middle of dst.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCenteredColored(box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, subtitle)
}
