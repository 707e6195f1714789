// Package audio plays the game's sound cues and background theme through the
// system speaker. All sounds are synthesized, so there are no asset files.
// When audio is disabled or the speaker cannot be opened, the Player stays
// silent and every call is a no-op.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-mappy/internal/config"
	"github.com/vovakirdan/tui-mappy/internal/core"
)

// Player mixes one-shot cues and the looping theme.
type Player struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	theme       *beep.Ctrl
	initialized bool
	logger      *log.Logger
}

// New creates a player. Call Init before playing anything.
func New(cfg config.AudioConfig, logger *log.Logger) *Player {
	return &Player{
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Silent returns a player that never opens the speaker.
func Silent() *Player {
	return New(config.AudioConfig{Enabled: false, SampleRate: 44100}, nil)
}

// Init opens the speaker. A failure is logged and leaves the player silent,
// so the caller may ignore the returned error.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		if p.logger != nil {
			p.logger.Warn("audio unavailable, continuing silently", "err", err)
		}
		return err
	}

	p.theme = &beep.Ctrl{Streamer: withVolume(NewTheme(p.rate), p.cfg.Volume-1), Paused: true}
	p.mixer.Add(p.theme)
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether sound actually reaches the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues the given cues in order. Each starts immediately and overlaps
// anything already playing.
func (p *Player) Play(sounds []core.Sound) {
	if len(sounds) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	for _, s := range sounds {
		if st := Cue(s, p.rate); st != nil {
			p.mixer.Add(withVolume(st, p.cfg.Volume))
		}
	}
}

// SetMusic starts or pauses the background theme.
func (p *Player) SetMusic(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.theme.Paused == !on {
		return
	}

	speaker.Lock()
	p.theme.Paused = !on
	speaker.Unlock()
}

// Close stops every sound.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.theme.Paused = true
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}
