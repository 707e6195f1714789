package mappy

// scene is a state of the game's top-level machine. Each variant carries
// its own timer or context so nothing leaks between states.
type scene interface {
	Name() string
}

// timer counts ticks until it passes its limit.
type timer struct {
	ticks int
	limit int
}

func newTimer(seconds int) timer {
	return timer{limit: FPS * seconds}
}

// expired advances the timer and reports whether it had already run out.
func (t *timer) expired() bool {
	if t.ticks > t.limit {
		return true
	}
	t.ticks++
	return false
}

// Title screen.
type startScene struct{}

// Round card shown before a level loads.
type changeScene struct{ timer timer }

// Active play. Controls unlock once the lock timer runs out.
type levelScene struct {
	lock     timer
	controls bool
}

// Pause between a cleared round and the next round card.
type blockScene struct{ timer timer }

// Death animation after a miss.
type resetScene struct{ timer timer }

// Death animation after the last life.
type gameOverScene struct{ timer timer }

// GAME OVER card.
type gameOverScreenScene struct{ timer timer }

// Name entry and score table.
type scoresScene struct{ entry *NameEntry }

// Pause menu. The paused level scene is resumed as it was.
type pauseScene struct{ level *levelScene }

func (startScene) Name() string           { return "start" }
func (*changeScene) Name() string         { return "change" }
func (*levelScene) Name() string          { return "level" }
func (*blockScene) Name() string          { return "block" }
func (*resetScene) Name() string          { return "reset" }
func (*gameOverScene) Name() string       { return "game_over" }
func (*gameOverScreenScene) Name() string { return "game_over_screen" }
func (*scoresScene) Name() string         { return "scores" }
func (*pauseScene) Name() string          { return "pause" }

func newChangeScene() *changeScene {
	return &changeScene{timer: newTimer(changeSeconds)}
}

func newLevelScene() *levelScene {
	return &levelScene{lock: newTimer(controlLockSeconds)}
}

func newBlockScene() *blockScene {
	return &blockScene{timer: newTimer(blockSeconds)}
}

func newResetScene() *resetScene {
	return &resetScene{timer: newTimer(resetSeconds)}
}

func newGameOverScene() *gameOverScene {
	return &gameOverScene{timer: newTimer(gameOverSeconds)}
}

func newGameOverScreenScene() *gameOverScreenScene {
	return &gameOverScreenScene{timer: newTimer(gameOverScreenSeconds)}
}
