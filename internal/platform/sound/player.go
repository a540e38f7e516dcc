// Package sound plays Steelwall's sound signals through the system speaker.
// Every effect is synthesised, so no assets are loaded.
package sound

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/steelwall/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player implements core.Audio on top of a beep mixer. Calls before Init
// succeeds are ignored, so a machine without a sound device plays silently.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	loop        *beep.Ctrl
	level       float64
	initialized bool
	logger      *log.Logger
}

var _ core.Audio = (*Player)(nil)

// NewPlayer creates a player. A nil logger discards messages.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	mixer := &beep.Mixer{}
	return &Player{
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2},
		level:  1,
		logger: logger.WithPrefix("sound"),
	}
}

// Init opens the speaker and starts the mixer. Calling it twice is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.master)
	p.initialized = true
	p.logger.Debug("speaker ready", "rate", int(sampleRate))
	return nil
}

// Close silences everything. beep keeps the device open for the process.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	if p.loop != nil {
		p.loop.Paused = true
	}
	p.mixer.Clear()
	speaker.Unlock()
	p.loop = nil
	p.initialized = false
}

// Play mixes in one effect.
func (p *Player) Play(s core.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	streamer := Effect(s, sampleRate)
	if streamer == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// SetLoop starts or pauses the wall rumble. Starting it twice keeps one
// instance.
func (p *Player) SetLoop(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()

	if p.loop == nil {
		if !on {
			return
		}
		p.loop = &beep.Ctrl{Streamer: newRumble(sampleRate)}
		p.mixer.Add(p.loop)
		return
	}
	p.loop.Paused = !on
}

// SetVolume sets the master level in [0,1].
func (p *Player) SetVolume(level float64) {
	level = min(max(level, 0), 1)

	p.mu.Lock()
	defer p.mu.Unlock()

	if level == p.level {
		return
	}
	p.level = level
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	applyLevel(p.master, level)
}

// Volume returns the master level.
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

// applyLevel maps a linear level onto the base-2 volume effect.
// math.Log2(0) is -Inf, so zero mutes instead.
func applyLevel(v *effects.Volume, level float64) {
	if level <= 0 {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = math.Log2(level)
}
