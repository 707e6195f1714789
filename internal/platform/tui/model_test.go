package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mappy/internal/core"
)

// recordingGame remembers every input frame it was stepped with.
type recordingGame struct {
	frames []core.InputFrame
	store  core.Store
	result core.StepResult
}

func (g *recordingGame) ID() string { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }
func (g *recordingGame) Reset(cfg core.RuntimeConfig) {}
func (g *recordingGame) State() core.GameState { return g.result.State }
func (g *recordingGame) AttachStore(s core.Store) { g.store = s }

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return g.result
}

func (g *recordingGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "HELLO")
}

type nopStore struct{}

func (nopStore) SaveScore(core.ScoreRecord) error { return nil }
func (nopStore) TopScores(int) ([]core.ScoreRecord, error) { return nil, nil }
func (nopStore) SaveProgress(core.Progress) error { return nil }
func (nopStore) LoadProgress() (core.Progress, error) { return core.NoProgress, nil }

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(g *recordingGame) *Model {
	return NewModel(g, Options{
		Runtime:      core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1},
		Store:        nopStore{},
		ReleaseTicks: 4,
	})
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		key      string
		expected core.Action
		quit     bool
	}{
		{"left", core.ActionLeft, false},
		{"a", core.ActionLeft, false},
		{"right", core.ActionRight, false},
		{"d", core.ActionRight, false},
		{"w", core.ActionUp, false},
		{"s", core.ActionDown, false},
		{" ", core.ActionConfirm, false},
		{"esc", core.ActionPause, false},
		{"p", core.ActionPause, false},
		{"q", core.ActionSave, false},
		{"l", core.ActionLoad, false},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tt := range tests {
		action, quit := keys.MapKey(keyMsg(tt.key))
		if action != tt.expected || quit != tt.quit {
			t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.key, action, quit, tt.expected, tt.quit)
		}
	}
}

func TestHoldTrackerReleasesAfterSilence(t *testing.T) {
	h := newHoldTracker(4, 60)
	h.press(core.ActionLeft, 0)
	h.press(core.ActionLeft, 2) // auto-repeat

	for now := 3; now <= 6; now++ {
		if _, ok := h.expire(now); ok {
			t.Fatalf("expire(%d) released too early", now)
		}
	}
	a, ok := h.expire(7)
	if !ok || a != core.ActionLeft {
		t.Errorf("expire(7) = (%v, %v), expected (Left, true)", a, ok)
	}
	if h.held() != core.ActionNone {
		t.Errorf("held() = %v after release, expected None", h.held())
	}
}

func TestHoldTrackerFirstPressWaitsForRepeat(t *testing.T) {
	h := newHoldTracker(4, 60)
	h.press(core.ActionRight, 0)

	if _, ok := h.expire(20); ok {
		t.Error("single press released before the auto-repeat delay")
	}
	if _, ok := h.expire(35); !ok {
		t.Error("single press was never released")
	}
}

func TestHoldTrackerSwitchDirection(t *testing.T) {
	h := newHoldTracker(4, 60)
	h.press(core.ActionLeft, 0)
	h.press(core.ActionRight, 1)
	if h.held() != core.ActionRight {
		t.Errorf("held() = %v, expected Right", h.held())
	}
	a, ok := h.expire(100)
	if !ok || a != core.ActionRight {
		t.Errorf("expire() = (%v, %v), expected only Right to be released", a, ok)
	}
}

func TestModelFeedsKeysToNextTick(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	if g.store == nil {
		t.Error("store was not attached to a persistent game")
	}

	m.Update(keyMsg(" "))
	m.Update(TickMsg{})
	m.Update(TickMsg{})

	if len(g.frames) != 2 {
		t.Fatalf("game stepped %d times, expected 2", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionConfirm) {
		t.Error("first tick did not see the confirm key")
	}
	if g.frames[1].Has(core.ActionConfirm) {
		t.Error("confirm key leaked into the second tick")
	}
}

func TestModelSynthesizesRelease(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	m.Update(keyMsg("left"))
	for i := 0; i < 3; i++ {
		m.Update(TickMsg{})
		m.Update(keyMsg("left"))
	}
	for i := 0; i < 10; i++ {
		m.Update(TickMsg{})
	}

	released := 0
	for _, f := range g.frames {
		if f.Released(core.ActionLeft) {
			released++
		}
	}
	if released != 1 {
		t.Errorf("left released %d times, expected 1", released)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&recordingGame{})
	_, cmd := m.Update(keyMsg("ctrl+c"))
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c did not quit")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelViewAndResize(t *testing.T) {
	m := newTestModel(&recordingGame{})
	if !strings.Contains(m.View(), "HELLO") {
		t.Errorf("View() = %q, expected the game's output", m.View())
	}

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	if m.screen.Width() != 40 || m.screen.Height() != 12 {
		t.Errorf("screen = %dx%d after resize, expected 40x12", m.screen.Width(), m.screen.Height())
	}

	m.opts.ShowHelp = true
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	if m.screen.Height() != 11 {
		t.Errorf("screen height = %d with help line, expected 11", m.screen.Height())
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(&recordingGame{})
	m.opts.ScreenshotDir = t.TempDir()

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "HELLO") {
		t.Errorf("screenshot = %q, expected it to start with HELLO", data)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "AB", core.ColorRed)
	s.DrawTextColored(2, 0, "CD", core.ColorGreen)
	s.DrawText(0, 1, "EF")

	out := RenderScreen(s)
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"AB", "CD", "EF"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() lost %q: %q", want, out)
		}
	}
}

func TestScoreboardRows(t *testing.T) {
	rows := ScoreRows([]core.ScoreRecord{
		{Name: "AAA", Score: 900, Round: 4},
		{Name: "BBB", Score: 500, Round: 2},
	})
	if len(rows) != 2 {
		t.Fatalf("ScoreRows() returned %d rows, expected 2", len(rows))
	}
	want := []string{"#1", "AAA", "900", "4", ""}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("rows[0][%d] = %q, expected %q", i, rows[0][i], cell)
		}
	}
}

func TestScoreboardView(t *testing.T) {
	store := &scoreStore{scores: []core.ScoreRecord{{Name: "ZED", Score: 1200, Round: 6}}}
	m := NewScoreboardModel(store, 80, 24)
	view := m.View()
	if !strings.Contains(view, "MAPPY HIGH SCORES") || !strings.Contains(view, "ZED") {
		t.Errorf("View() missing title or entry:\n%s", view)
	}

	empty := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(empty.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}
}

type scoreStore struct {
	nopStore
	scores []core.ScoreRecord
}

func (s *scoreStore) TopScores(int) ([]core.ScoreRecord, error) { return s.scores, nil }
