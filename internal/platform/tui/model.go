package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mappy/internal/audio"
	"github.com/vovakirdan/tui-mappy/internal/core"
	"github.com/vovakirdan/tui-mappy/internal/registry"
)

// Options configures a Model.
type Options struct {
	Runtime       core.RuntimeConfig
	Store         core.Store    // nil disables scores and progress
	Audio         *audio.Player // nil plays nothing
	Logger        *log.Logger
	ReleaseTicks  int
	ShowHelp      bool
	ScreenshotDir string
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	keys       KeyMap
	help       help.Model
	hold       *holdTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	tick       int
	width      int
	height     int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) *Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	opts.Runtime = cfg
	if opts.Audio == nil {
		opts.Audio = audio.Silent()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	if p, ok := game.(core.Persistent); ok && opts.Store != nil {
		p.AttachStore(opts.Store)
	}
	if l, ok := game.(interface{ SetLogger(*log.Logger) }); ok {
		l.SetLogger(opts.Logger.WithPrefix(game.ID()))
	}

	m := &Model{
		game:       game,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		hold:       newHoldTracker(opts.ReleaseTicks, cfg.TickRate),
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.screen = core.NewScreen(m.playfieldSize())
	m.game.Reset(cfg)
	m.gameState = m.game.State()
	return m
}

// playfieldSize is the screen area left for the game below the help line.
func (m *Model) playfieldSize() (int, int) {
	h := m.height
	if m.opts.ShowHelp && h > 1 {
		h--
	}
	return core.Max(1, m.width), core.Max(1, h)
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.screen.Resize(m.playfieldSize())
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "error", err)
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.opts.Audio.SetMusic(false)
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}
	if isLateral(action) {
		m.hold.press(action, m.tick)
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleTick runs one simulation step.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	m.tick++
	if released, ok := m.hold.expire(m.tick); ok {
		m.inputFrame.Release(released)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.opts.Audio.Play(result.Sounds)
	m.opts.Audio.SetMusic(result.Music && !result.State.Paused)

	m.inputFrame.Clear()
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("screenshot: %w", err)
		}
		dir = filepath.Join(home, ".mappy", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// State returns the state reported by the last tick.
func (m *Model) State() core.GameState {
	return m.gameState
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.opts.ShowHelp && m.height > 1 {
		out += "\n" + helpStyle.Render(m.help.View(m.keys))
	}
	return out
}

// Run starts the Bubble Tea program for game in the local terminal.
func Run(game registry.Game, opts Options) error {
	m := NewModel(game, opts)
	if err := m.opts.Audio.Init(); err != nil {
		m.opts.Logger.Warn("running without sound", "error", err)
	}
	defer m.opts.Audio.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
