package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-mappy/internal/core"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// tone is a fixed-length oscillator. A zero frequency yields silence.
type tone struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewTone creates a streamer that plays freq for d and then drains.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, length: rate.N(d), wave: wave, rate: rate}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		if o.freq > 0 {
			switch o.wave {
			case WaveSine:
				val = math.Sin(2 * math.Pi * o.phase)
			case WaveSquare:
				val = 0.6
				if o.phase >= 0.5 {
					val = -0.6
				}
			case WaveTriangle:
				val = 4*math.Abs(o.phase-0.5) - 1
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// fade ramps a stream in over attack samples and out over release samples.
type fade struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newFade(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{streamer: s, attack: rate.N(attack), release: rate.N(release), total: rate.N(d)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.position < f.attack {
			gain = float64(f.position) / float64(f.attack)
		}
		if left := f.total - f.position; left < f.release {
			gain = math.Max(0, float64(left)/float64(f.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// note is one step of a jingle. Freq 0 is a rest.
type note struct {
	freq float64
	ms   int
}

// jingles holds the melody played for each cue.
var jingles = map[core.Sound]struct {
	wave  Wave
	notes []note
}{
	core.SoundRoundStart: {WaveSquare, []note{{523.25, 90}, {659.25, 90}, {783.99, 90}, {1046.5, 180}}},
	core.SoundMiss:       {WaveTriangle, []note{{493.88, 120}, {466.16, 120}, {440, 120}, {415.3, 120}, {392, 300}}},
	core.SoundClear:      {WaveSquare, []note{{783.99, 100}, {0, 30}, {783.99, 100}, {1046.5, 100}, {1318.51, 260}}},
	core.SoundGameOver:   {WaveTriangle, []note{{392, 240}, {349.23, 240}, {329.63, 240}, {261.63, 480}}},
	core.SoundBounce:     {WaveSine, []note{{220, 40}, {330, 40}, {440, 60}}},
	core.SoundPickup:     {WaveSquare, []note{{987.77, 60}, {1318.51, 120}}},
	core.SoundNameEntry:  {WaveSine, []note{{659.25, 120}, {783.99, 120}, {987.77, 240}}},
}

// Cue builds the one-shot streamer for s, or nil for an unknown cue.
func Cue(s core.Sound, rate beep.SampleRate) beep.Streamer {
	j, ok := jingles[s]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(j.notes))
	for _, n := range j.notes {
		d := time.Duration(n.ms) * time.Millisecond
		parts = append(parts, newFade(NewTone(n.freq, d, j.wave, rate), d, 5*time.Millisecond, 20*time.Millisecond, rate))
	}
	return beep.Seq(parts...)
}

// theme is the endless background loop: a walking bass under a square lead.
type theme struct {
	rate   beep.SampleRate
	pos    int
	beat   int
	melody []float64
	bass   []float64
}

// NewTheme creates the background music streamer. It never drains.
func NewTheme(rate beep.SampleRate) beep.Streamer {
	return &theme{
		rate:   rate,
		beat:   rate.N(180 * time.Millisecond),
		melody: []float64{659.25, 0, 783.99, 659.25, 587.33, 523.25, 587.33, 0, 523.25, 440, 523.25, 587.33, 659.25, 0, 659.25, 0},
		bass:   []float64{130.81, 196, 110, 164.81},
	}
}

func (m *theme) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		step := m.pos / m.beat
		within := m.pos % m.beat
		t := float64(m.pos) / float64(m.rate)

		gain := 1 - float64(within)/float64(m.beat)
		lead := 0.0
		if f := m.melody[step%len(m.melody)]; f > 0 {
			if math.Mod(t*f, 1) < 0.5 {
				lead = 0.25 * gain
			} else {
				lead = -0.25 * gain
			}
		}
		bassFreq := m.bass[(step/4)%len(m.bass)]
		bass := 0.2 * math.Sin(2*math.Pi*bassFreq*t)

		samples[i][0] = lead + bass
		samples[i][1] = lead + bass
		m.pos++
	}
	return len(samples), true
}

func (m *theme) Err() error { return nil }

// withVolume applies the configured gain. Volume is a base-2 exponent, so
// 0 plays at full level and -1 at half.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume, Silent: volume <= minVolume}
}

// minVolume and anything below it mutes output.
const minVolume = -10
