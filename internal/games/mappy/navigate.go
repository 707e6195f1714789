package mappy

import "github.com/vovakirdan/tui-mappy/internal/core"

// navTuning captures how the player and the enemies differ when following
// platforms and shafts.
type navTuning struct {
	// edgeJump is how far an actor hops when it walks off a platform edge
	// into a trampoline shaft.
	edgeJump int
	// bothEdges lets the left and right edge checks fire in the same pass.
	bothEdges bool
	// reachMin and reachMax bound the height below a platform's underside
	// at which a rising actor may grab it.
	reachMin, reachMax int
}

var (
	playerNav = navTuning{edgeJump: 50, bothEdges: true, reachMin: 0, reachMax: 25}
	enemyNav  = navTuning{edgeJump: 40, bothEdges: false, reachMin: 10, reachMax: 50}
)

// shaftUnder returns the last trampoline whose span the actor hangs over.
func (a *Actor) shaftUnder(trampolines []Trampoline) int {
	match := -1
	for i := range trampolines {
		if trampolines[i].under(a.Rect) {
			match = i
		}
	}
	return match
}

// dropIntoShaft makes a grounded actor that is centered over a shaft fall.
func (a *Actor) dropIntoShaft(tr *Trampoline, hits []int) {
	if tr == nil || a.State == StateUp || a.State == StateJump {
		return
	}
	if len(hits) == 0 && core.Abs(a.Rect.CenterX()-tr.Rect.CenterX()) <= 15 {
		a.Stop()
		a.MoveDown()
	}
}

// followPlatforms handles edge hops towards a shaft and remembers which
// platform a rising actor could jump onto.
func (a *Actor) followPlatforms(platforms []Platform, overShaft bool, hits []int, tune navTuning) {
	for i := range platforms {
		pr := platforms[i].Rect

		if len(hits) == 1 && a.Rect.Intersects(pr) && overShaft && walkingStates.has(a.State) {
			hopped := false
			if pr.X > a.Rect.X && a.State != StateRight {
				a.JumpTo(a.Rect.CenterX()-tune.edgeJump, pr.Y+1, StateDown)
				hopped = true
			}
			if (tune.bothEdges || !hopped) && pr.Right() < a.Rect.Right() && a.State != StateLeft {
				a.JumpTo(a.Rect.CenterX()+tune.edgeJump, pr.Y+1, StateDown)
			}
		}

		if a.State != StateUp {
			a.platformChange = -1
			continue
		}
		gap := pr.Bottom() - a.Rect.Bottom()
		if tune.reachMin < gap && gap <= tune.reachMax {
			a.platformChange = i
			break
		}
	}
}

// landOn snaps a rising or falling actor against the single platform it hit.
func (a *Actor) landOn(platforms []Platform, hits []int) {
	if len(hits) != 1 {
		return
	}
	pr := platforms[hits[0]].Rect
	switch a.State {
	case StateUp:
		a.Stop()
		a.Rect.SetMidTop(a.Rect.CenterX(), pr.Bottom()+1)
	case StateDown:
		a.Stop()
		a.Rect.SetMidBottom(a.Rect.CenterX(), pr.Y+1)
	}
}

func (a *Actor) bounceOffWalls(walls []Wall) {
	for i := range walls {
		walls[i].Deflect(a)
	}
}
