package mappy

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mappy/internal/core"
	"github.com/vovakirdan/tui-mappy/internal/registry"
)

// memoryStore keeps scores and progress in memory.
type memoryStore struct {
	scores   []core.ScoreRecord
	progress core.Progress
	saved    bool
}

func (m *memoryStore) SaveScore(rec core.ScoreRecord) error {
	m.scores = append(m.scores, rec)
	return nil
}

func (m *memoryStore) TopScores(limit int) ([]core.ScoreRecord, error) {
	out := append([]core.ScoreRecord(nil), m.scores...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryStore) SaveProgress(p core.Progress) error {
	m.progress = p
	m.saved = true
	return nil
}

func (m *memoryStore) LoadProgress() (core.Progress, error) {
	if !m.saved {
		return core.NoProgress, nil
	}
	return m.progress, nil
}

func newTestGame(store core.Store) *Game {
	g := New()
	g.SetLogger(log.New(io.Discard))
	if store != nil {
		g.AttachStore(store)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 60, ScreenH: 30, TickRate: FPS, Seed: 42})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func release(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Release(a)
	}
	return in
}

// stepUntil steps with no input until the game reaches the named scene.
func stepUntil(t *testing.T, g *Game, name string, limit int) {
	t.Helper()
	for i := 0; i < limit; i++ {
		if g.State().Scene == name {
			return
		}
		g.Step(core.NewInputFrame())
	}
	if g.State().Scene != name {
		t.Fatalf("scene = %q after %d ticks, expected %q", g.State().Scene, limit, name)
	}
}

// startPlaying takes a fresh game from the title to a round with controls
// unlocked.
func startPlaying(t *testing.T, g *Game) {
	t.Helper()
	g.Step(press(core.ActionConfirm))
	stepUntil(t, g, "level", 3*FPS)
	unlock(t, g)
}

func unlock(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 3*FPS; i++ {
		if s, ok := g.scene.(*levelScene); ok && s.controls {
			return
		}
		g.Step(core.NewInputFrame())
	}
	t.Fatal("controls never unlocked")
}

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create("mappy")
	if err != nil {
		t.Fatalf("registry.Create() error = %v", err)
	}
	if g.ID() != "mappy" || g.Title() != "Mappy" {
		t.Errorf("registered game = (%q, %q), expected (mappy, Mappy)", g.ID(), g.Title())
	}
}

func TestResetStartsOnTitle(t *testing.T) {
	g := newTestGame(nil)
	st := g.State()

	if st.Scene != "start" {
		t.Errorf("Scene = %q, expected start", st.Scene)
	}
	if st.Lives != StartingLives || st.Score != 0 || st.Round != 1 {
		t.Errorf("State() = %+v, expected %d lives, score 0, round 1", st, StartingLives)
	}
	if g.RunID() == "" {
		t.Error("RunID() is empty")
	}
}

func TestConfirmStartsRound(t *testing.T) {
	g := newTestGame(nil)

	res := g.Step(press(core.ActionConfirm))
	if res.State.Scene != "change" {
		t.Fatalf("Scene = %q, expected change", res.State.Scene)
	}
	if len(res.Sounds) != 1 || res.Sounds[0] != core.SoundRoundStart {
		t.Errorf("Sounds = %v, expected [%v]", res.Sounds, core.SoundRoundStart)
	}

	stepUntil(t, g, "level", 3*FPS)
	if g.level == nil || g.level.Number != 1 {
		t.Fatal("round 1 was not built")
	}

	g.Step(press(core.ActionLeft))
	if g.player.State != StateIdle {
		t.Errorf("player moved while controls were locked: %v", g.player.State)
	}

	unlock(t, g)
	if !g.Step(core.NewInputFrame()).Music {
		t.Error("Music = false once the round is under way")
	}
}

func TestSteerPlayer(t *testing.T) {
	g := newTestGame(nil)
	startPlaying(t, g)
	g.level.Doors = nil

	g.Step(press(core.ActionDown))
	if g.player.State != StateIdle {
		t.Errorf("down on the ground gave state %v, expected %v", g.player.State, StateIdle)
	}

	x := g.player.Rect.X
	g.Step(press(core.ActionLeft))
	if g.player.State != StateLeft {
		t.Fatalf("State = %v, expected %v", g.player.State, StateLeft)
	}
	g.Step(core.NewInputFrame())
	if g.player.Rect.X >= x {
		t.Errorf("player did not move left: x=%d, started at %d", g.player.Rect.X, x)
	}

	g.Step(release(core.ActionLeft))
	if g.player.State != StateIdle {
		t.Errorf("State after release = %v, expected %v", g.player.State, StateIdle)
	}
}

func TestMissesEndInGameOver(t *testing.T) {
	g := newTestGame(nil)
	startPlaying(t, g)

	for miss := 1; miss <= StartingLives; miss++ {
		g.player.Rect.Y = g.level.Height + 10
		res := g.Step(core.NewInputFrame())

		lives := StartingLives - miss
		if res.State.Lives != lives {
			t.Fatalf("miss %d: Lives = %d, expected %d", miss, res.State.Lives, lives)
		}
		if len(res.Sounds) == 0 || res.Sounds[len(res.Sounds)-1] != core.SoundMiss {
			t.Errorf("miss %d: Sounds = %v, expected to end with %v", miss, res.Sounds, core.SoundMiss)
		}

		if lives > 0 {
			if res.State.Scene != "reset" {
				t.Fatalf("miss %d: Scene = %q, expected reset", miss, res.State.Scene)
			}
			stepUntil(t, g, "level", resetSeconds*FPS+5)
			if g.player.Rect.X != playerStartX || g.player.Rect.Y != playerStartY {
				t.Errorf("player not respawned: (%d, %d)", g.player.Rect.X, g.player.Rect.Y)
			}
			unlock(t, g)
			continue
		}

		if res.State.Scene != "game_over" || !res.State.GameOver {
			t.Fatalf("last miss: State() = %+v, expected game_over", res.State)
		}
	}

	stepUntil(t, g, "game_over_screen", gameOverSeconds*FPS+5)
	stepUntil(t, g, "scores", gameOverScreenSeconds*FPS+5)
	if !g.State().GameOver {
		t.Error("GameOver = false on the score table")
	}
}

func TestMissRecentersCamera(t *testing.T) {
	g := newTestGame(nil)
	startPlaying(t, g)

	g.level.Scroll(90)
	g.miss()

	if g.level.Right() != ScreenWidth-60 {
		t.Errorf("Right() = %d after a miss, expected %d", g.level.Right(), ScreenWidth-60)
	}
	if len(g.level.Enemies) != 0 {
		t.Errorf("len(Enemies) = %d, expected 0", len(g.level.Enemies))
	}
}

func TestNameEntrySavesScore(t *testing.T) {
	store := &memoryStore{}
	store.SaveScore(core.ScoreRecord{Name: "BOB", Score: 900, Round: 4})
	g := newTestGame(store)

	if g.highScore != 900 {
		t.Errorf("highScore = %d, expected 900", g.highScore)
	}

	g.score = 500
	g.round = 3
	g.scene = newGameOverScreenScene()
	stepUntil(t, g, "scores", gameOverScreenSeconds*FPS+5)

	for slot := 0; slot < nameLength; slot++ {
		g.Step(press(core.ActionDown))
		g.Step(press(core.ActionUp))
		if slot < nameLength-1 {
			g.Step(press(core.ActionRight))
		}
	}
	entry := g.scene.(*scoresScene).entry
	if entry.Name() != "AAA" {
		t.Fatalf("Name() = %q, expected AAA", entry.Name())
	}
	if len(entry.Top) != 2 || entry.Top[0].Name != "BOB" || !entry.InTop {
		t.Errorf("Top = %+v, expected BOB then the new entry", entry.Top)
	}

	runID := g.RunID()
	g.Step(press(core.ActionConfirm))

	if g.State().Scene != "start" {
		t.Errorf("Scene = %q, expected start", g.State().Scene)
	}
	if len(store.scores) != 2 {
		t.Fatalf("len(scores) = %d, expected 2", len(store.scores))
	}
	got := store.scores[1]
	if got.Name != "AAA" || got.Score != 500 || got.Round != 3 || got.RunID != runID {
		t.Errorf("saved %+v, expected AAA/500/3 for run %s", got, runID)
	}
}

func TestIncompleteNameIsNotSaved(t *testing.T) {
	store := &memoryStore{}
	g := newTestGame(store)
	g.scene = &scoresScene{entry: NewNameEntry(100, 1)}

	g.Step(press(core.ActionUp))
	g.Step(press(core.ActionConfirm))

	if g.State().Scene != "scores" {
		t.Errorf("Scene = %q, expected scores", g.State().Scene)
	}
	if len(store.scores) != 0 {
		t.Errorf("len(scores) = %d, expected 0", len(store.scores))
	}
}

func TestPauseSaveAndResume(t *testing.T) {
	store := &memoryStore{}
	g := newTestGame(store)
	startPlaying(t, g)

	g.roundStartScore = 700
	g.score = 1200
	g.player.Lives = 3

	g.Step(press(core.ActionPause))
	if st := g.State(); !st.Paused || st.Scene != "pause" {
		t.Fatalf("State() = %+v, expected paused", st)
	}
	g.Step(press(core.ActionPause))
	if g.State().Scene != "level" {
		t.Fatalf("Scene = %q after unpausing, expected level", g.State().Scene)
	}

	g.Step(press(core.ActionPause))
	g.Step(press(core.ActionSave))

	if g.State().Scene != "start" {
		t.Fatalf("Scene = %q after saving, expected start", g.State().Scene)
	}
	want := core.Progress{Level: 1, Score: 700, Lives: 3}
	if store.progress != want {
		t.Errorf("saved progress = %+v, expected %+v", store.progress, want)
	}

	g.Step(press(core.ActionLoad))
	st := g.State()
	if st.Scene != "change" || st.Score != 700 || st.Lives != 3 || st.Round != 1 {
		t.Errorf("State() after load = %+v, expected round 1, score 700, 3 lives", st)
	}
	stepUntil(t, g, "level", 3*FPS)
}

func TestPausedGameDoesNotMove(t *testing.T) {
	g := newTestGame(nil)
	startPlaying(t, g)

	g.Step(press(core.ActionLeft))
	g.Step(press(core.ActionPause))
	x := g.player.Rect.X
	var res core.StepResult
	for i := 0; i < 10; i++ {
		res = g.Step(core.NewInputFrame())
	}
	if g.player.Rect.X != x {
		t.Errorf("player moved while paused: x=%d, expected %d", g.player.Rect.X, x)
	}
	if res.Music {
		t.Error("Music = true while paused, expected false")
	}

	res = g.Step(press(core.ActionPause))
	if res.State.Scene != "level" || !res.Music {
		t.Errorf("after resume: scene=%q music=%v, expected level with music", res.State.Scene, res.Music)
	}
}

func TestLoadWithoutProgress(t *testing.T) {
	tests := []struct {
		name  string
		store *memoryStore
	}{
		{"nothing saved", &memoryStore{}},
		{"bonus round saved", &memoryStore{progress: core.Progress{Level: 3, Score: 10, Lives: 2}, saved: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(tt.store)
			g.Step(press(core.ActionLoad))
			if g.State().Scene != "start" {
				t.Errorf("Scene = %q, expected start", g.State().Scene)
			}
		})
	}

	g := newTestGame(nil)
	g.Step(press(core.ActionLoad))
	if g.State().Scene != "start" {
		t.Errorf("Scene = %q without a store, expected start", g.State().Scene)
	}
}

func TestRoundClear(t *testing.T) {
	g := newTestGame(nil)
	startPlaying(t, g)

	g.level.Items = nil
	res := g.Step(core.NewInputFrame())
	if res.State.Scene != "block" {
		t.Fatalf("Scene = %q, expected block", res.State.Scene)
	}
	found := false
	for _, s := range res.Sounds {
		if s == core.SoundClear {
			found = true
		}
	}
	if !found {
		t.Errorf("Sounds = %v, expected %v", res.Sounds, core.SoundClear)
	}

	stepUntil(t, g, "change", blockSeconds*FPS+5)
	if g.round != 2 {
		t.Errorf("round = %d, expected 2", g.round)
	}
	stepUntil(t, g, "level", changeSeconds*FPS+5)
	if g.level.Number != 2 {
		t.Errorf("level.Number = %d, expected 2", g.level.Number)
	}
}

func TestDeterminism(t *testing.T) {
	script := func(tick int) core.InputFrame {
		switch {
		case tick == 0:
			return press(core.ActionConfirm)
		case tick%240 < 120:
			return press(core.ActionRight)
		case tick%240 == 120:
			return release(core.ActionRight)
		default:
			return press(core.ActionLeft)
		}
	}

	run := func() []string {
		g := newTestGame(nil)
		var trace []string
		for tick := 0; tick < 1500; tick++ {
			res := g.Step(script(tick))
			line := []string{res.State.Scene, fmt.Sprint(g.player.Rect)}
			if g.level != nil {
				for _, e := range g.level.Enemies {
					line = append(line, fmt.Sprint(e.Rect))
				}
			}
			trace = append(trace, strings.Join(line, " "))
		}
		return trace
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverged at tick %d:\n%s\n%s", i, a[i], b[i])
		}
	}
}

func TestRenderScenes(t *testing.T) {
	g := newTestGame(nil)
	screen := core.NewScreen(60, 30)

	g.Render(screen)
	if !strings.Contains(screen.String(), "M A P P Y") {
		t.Error("title screen is missing the title")
	}

	startPlaying(t, g)
	g.Render(screen)
	if !strings.Contains(screen.String(), "HIGH SCORE") {
		t.Error("level screen is missing the HUD")
	}

	g.Step(press(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause screen is missing its message")
	}

	g.scene = &scoresScene{entry: NewNameEntry(100, 1)}
	g.Render(screen)
	if !strings.Contains(screen.String(), "ENTER YOUR INITIALS") {
		t.Error("score screen is missing the prompt")
	}
}
