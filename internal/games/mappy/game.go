package mappy

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-mappy/internal/core"
	"github.com/vovakirdan/tui-mappy/internal/registry"
)

// Game runs the title, rounds, misses, game over and name entry.
type Game struct {
	runtime core.RuntimeConfig
	rng     *rand.Rand
	store   core.Store
	logger  *log.Logger

	scene           scene
	round           int
	score           int
	highScore       int
	roundStartScore int
	player          *Player
	level           *Level
	music           bool
	runID           string
	sounds          []core.Sound
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "mappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Mappy"
}

// AttachStore implements core.Persistent. Without a store, scores and
// progress are simply not kept.
func (g *Game) AttachStore(s core.Store) {
	g.store = s
}

// SetLogger replaces the logger used for game events.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
}

// Reset puts the game on the title screen with a fresh run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	if g.logger == nil {
		g.logger = log.Default().WithPrefix("mappy")
	}

	g.toTitle()
	g.highScore = g.bestScore()
	g.sounds = nil
}

// toTitle returns to the title screen and forgets the current run.
func (g *Game) toTitle() {
	g.scene = startScene{}
	g.round = 1
	g.score = 0
	g.roundStartScore = 0
	g.player = NewPlayer(StartingLives)
	g.level = nil
	g.music = false
	g.runID = uuid.NewString()
}

// Step advances the game by one tick. Input is applied before the
// simulation.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.sounds = g.sounds[:0]
	g.handleInput(in)

	if _, paused := g.scene.(*pauseScene); !paused {
		g.player.Update()
	}

	switch s := g.scene.(type) {
	case *levelScene:
		g.updateLevel(s)
	case *blockScene:
		g.updateBlock(s)
	case *changeScene:
		g.updateChange(s)
	case *resetScene:
		g.updateReset(s)
	case *gameOverScene:
		g.updateGameOver(s)
	case *gameOverScreenScene:
		g.updateGameOverScreen(s)
	}

	sounds := make([]core.Sound, len(g.sounds))
	copy(sounds, g.sounds)
	_, paused := g.scene.(*pauseScene)
	return core.StepResult{
		State:  g.State(),
		Sounds: sounds,
		Music:  g.music && !paused,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	name := ""
	if g.scene != nil {
		name = g.scene.Name()
	}
	lives := 0
	if g.player != nil {
		lives = g.player.Lives
	}

	st := core.GameState{
		Score: g.score,
		Round: g.round,
		Lives: lives,
		Scene: name,
	}
	switch g.scene.(type) {
	case *gameOverScene, *gameOverScreenScene, *scoresScene:
		st.GameOver = true
	case *pauseScene:
		st.Paused = true
	}
	return st
}

// RunID identifies the current run in the score table.
func (g *Game) RunID() string {
	return g.runID
}

func (g *Game) cue(s core.Sound) {
	g.sounds = append(g.sounds, s)
}

func (g *Game) setScene(s scene) {
	if g.scene != nil {
		g.logger.Debug("scene", "from", g.scene.Name(), "to", s.Name(), "round", g.round)
	}
	g.scene = s
}

func (g *Game) addScore(delta int) {
	g.score += delta
	if g.score > g.highScore {
		g.highScore = g.score
	}
}

func (g *Game) handleInput(in core.InputFrame) {
	switch s := g.scene.(type) {
	case startScene:
		switch {
		case in.Has(core.ActionConfirm):
			g.cue(core.SoundRoundStart)
			g.logger.Info("game started", "run", g.runID)
			g.setScene(newChangeScene())
		case in.Has(core.ActionLoad):
			g.resume()
		}

	case *levelScene:
		if !s.controls {
			return
		}
		g.steerPlayer(in)
		if in.Has(core.ActionPause) {
			g.setScene(&pauseScene{level: s})
		}

	case *scoresScene:
		g.editName(s.entry, in)

	case *pauseScene:
		switch {
		case in.Has(core.ActionPause):
			g.setScene(s.level)
		case in.Has(core.ActionSave):
			g.saveAndQuit()
		}
	}
}

// steerPlayer maps held keys onto the player. Lateral keys only act while
// the player is grounded or rising in a shaft; down only while rising.
func (g *Game) steerPlayer(in core.InputFrame) {
	p := g.player
	if setOf(StateIdle, StateLeft, StateRight, StateUp).has(p.State) {
		switch {
		case in.Has(core.ActionLeft):
			p.MoveLeft(g.level.Platforms)
		case in.Has(core.ActionRight):
			p.MoveRight(g.level.Platforms)
		}
	}
	if p.State == StateUp && in.Has(core.ActionDown) {
		p.MoveDown()
	}
	if walkingStates.has(p.State) && (in.Released(core.ActionLeft) || in.Released(core.ActionRight)) {
		p.Stop()
	}
}

func (g *Game) editName(e *NameEntry, in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		e.MoveSlot(-1)
	case in.Has(core.ActionRight):
		e.MoveSlot(1)
	case in.Has(core.ActionUp):
		e.CycleLetter(1)
		e.Rank(g.topScores())
	case in.Has(core.ActionDown):
		e.CycleLetter(-1)
		e.Rank(g.topScores())
	case in.Has(core.ActionConfirm):
		if !e.Complete() {
			return
		}
		g.saveScore(e.Record(g.runID))
		g.toTitle()
	}
}

func (g *Game) updateLevel(s *levelScene) {
	if !s.lock.expired() {
		s.controls = false
		return
	}
	s.controls = true
	g.music = true

	g.addScore(g.level.Update(g.player))
	for _, c := range g.level.DrainCues() {
		g.cue(c)
	}
	g.scrollScreen()

	if g.level.Cleared() {
		g.music = false
		g.cue(core.SoundClear)
		g.player.Stop()
		g.logger.Info("round cleared", "round", g.round, "score", g.score)
		g.setScene(newBlockScene())
	}

	if g.level.CatchesPlayer(g.player) || g.level.PlayerFell(g.player) {
		g.miss()
	}
}

// miss costs a life, recenters the camera and resets the round's enemies
// and trampolines.
func (g *Game) miss() {
	g.music = false
	g.cue(core.SoundMiss)
	g.player.Stop()
	g.player.Lives--
	g.logger.Info("miss", "round", g.round, "lives", g.player.Lives)

	if g.player.Lives > 0 {
		g.setScene(newResetScene())
	} else {
		g.setScene(newGameOverScene())
	}

	l := g.level
	l.Scroll(-core.Abs(l.Width - (ScreenWidth + core.Abs(l.Offset) - 60)))
	l.ResetEnemies()
	l.RepairTrampolines()
}

// scrollScreen keeps the player in the middle of the screen while the
// building extends past either side.
func (g *Game) scrollScreen() {
	l, p := g.level, g.player
	if l.Width <= ScreenWidth {
		return
	}
	mid := ScreenWidth / 2

	if p.Rect.CenterX() > mid && (ScreenWidth-60)-l.Offset < l.Width {
		move := p.SpeedX
		if p.State != StateRight {
			move--
		}
		p.Rect.SetCenterX(mid)
		p.shiftArc(-move)
		l.Scroll(-move)
	}
	if p.Rect.CenterX() < mid && -l.Offset > 0 {
		move := p.SpeedX
		if p.State != StateLeft {
			move--
		}
		p.Rect.SetCenterX(mid)
		p.shiftArc(move)
		l.Scroll(move)
	}
}

func (g *Game) updateBlock(s *blockScene) {
	if !s.timer.expired() {
		return
	}
	g.round = NextRound(g.round)
	g.setScene(newChangeScene())
}

func (g *Game) updateChange(s *changeScene) {
	if !s.timer.expired() {
		return
	}
	level, err := NewLevel(g.round, g.rng)
	if err != nil {
		g.logger.Error("could not build round", "round", g.round, "error", err)
		g.round = NextRound(g.round)
		return
	}
	g.level = level
	g.player.Respawn()
	g.roundStartScore = g.score
	g.logger.Info("round started", "round", g.round, "lives", g.player.Lives)
	g.setScene(newLevelScene())
}

func (g *Game) updateReset(s *resetScene) {
	if !s.timer.expired() {
		g.player.AnimateDeath()
		return
	}
	g.player.Respawn()
	g.setScene(newLevelScene())
}

func (g *Game) updateGameOver(s *gameOverScene) {
	if !s.timer.expired() {
		g.player.AnimateDeath()
		return
	}
	g.cue(core.SoundGameOver)
	g.logger.Info("game over", "round", g.round, "score", g.score)
	g.setScene(newGameOverScreenScene())
}

func (g *Game) updateGameOverScreen(s *gameOverScreenScene) {
	if !s.timer.expired() {
		return
	}
	g.cue(core.SoundNameEntry)
	entry := NewNameEntry(g.score, g.round)
	entry.Rank(g.topScores())
	g.setScene(&scoresScene{entry: entry})
}

// resume loads saved progress from the title screen, if there is any.
func (g *Game) resume() {
	if g.store == nil {
		return
	}
	prog, err := g.store.LoadProgress()
	if err != nil {
		g.logger.Warn("could not load progress", "error", err)
		return
	}
	if prog.Level == core.NoProgress.Level {
		return
	}
	if _, ok := TemplateFor(prog.Level); !ok {
		g.logger.Warn("saved progress has no playable round", "round", prog.Level)
		return
	}

	g.round = prog.Level
	g.score = prog.Score
	g.player.Lives = prog.Lives
	g.cue(core.SoundRoundStart)
	g.logger.Info("progress loaded", "round", g.round, "score", g.score, "lives", g.player.Lives)
	g.setScene(newChangeScene())
}

// saveAndQuit stores the round, the score it started with and the lives
// left, then returns to the title.
func (g *Game) saveAndQuit() {
	if g.store != nil {
		prog := core.Progress{Level: g.round, Score: g.roundStartScore, Lives: g.player.Lives}
		if err := g.store.SaveProgress(prog); err != nil {
			g.logger.Warn("could not save progress", "error", err)
		}
	}
	g.toTitle()
}

func (g *Game) saveScore(rec core.ScoreRecord) {
	if g.store == nil {
		return
	}
	if err := g.store.SaveScore(rec); err != nil {
		g.logger.Warn("could not save score", "error", err)
	}
}

func (g *Game) topScores() []core.ScoreRecord {
	if g.store == nil {
		return nil
	}
	scores, err := g.store.TopScores(topEntries)
	if err != nil {
		g.logger.Warn("could not load scores", "error", err)
		return nil
	}
	return scores
}

func (g *Game) bestScore() int {
	best := 0
	for _, r := range g.topScores() {
		best = core.Max(best, r.Score)
	}
	return best
}

func init() {
	registry.Register("mappy", func() registry.Game {
		return New()
	})
}
