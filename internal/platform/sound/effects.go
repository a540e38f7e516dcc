package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/steelwall/internal/core"
)

// Effect returns a finite streamer for s, or nil for an unknown sound.
func Effect(s core.Sound, sr beep.SampleRate) beep.Streamer {
	switch s {
	case core.SoundDestroy:
		// Short crack, falling pitch
		return newTone(sr, 90*time.Millisecond, 520, 260, 0.25, 0.35)
	case core.SoundExplosion:
		return newTone(sr, 450*time.Millisecond, 90, 40, 0.8, 0.5)
	case core.SoundBounce:
		return newTone(sr, 50*time.Millisecond, 330, 330, 0, 0.25)
	case core.SoundLaunch:
		return newTone(sr, 120*time.Millisecond, 220, 660, 0, 0.25)
	case core.SoundStab:
		// Two stacked fifths for the title words
		d := 400 * time.Millisecond
		return beep.Take(sr.N(d), beep.Mix(
			newTone(sr, d, 110, 110, 0.1, 0.3),
			newTone(sr, d, 165, 165, 0, 0.2),
		))
	case core.SoundSmash:
		return beep.Seq(
			newTone(sr, 60*time.Millisecond, 900, 300, 0.9, 0.5),
			newTone(sr, 500*time.Millisecond, 70, 35, 0.6, 0.4),
		)
	}
	return nil
}

// tone is a sine sweep mixed with noise under an exponential decay.
type tone struct {
	sr     beep.SampleRate
	pos    int
	length int
	from   float64 // Hz
	to     float64
	noise  float64 // Share of noise in [0,1]
	gain   float64
	phase  float64
	seed   uint32
}

func newTone(sr beep.SampleRate, d time.Duration, from, to, noise, gain float64) *tone {
	return &tone{
		sr:     sr,
		length: sr.N(d),
		from:   from,
		to:     to,
		noise:  noise,
		gain:   gain,
		seed:   0x2545f491,
	}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}
		p := float64(g.pos) / float64(g.length)
		freq := g.from + (g.to-g.from)*p

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		g.seed = g.seed*1664525 + 1013904223
		white := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		sample := (1-g.noise)*math.Sin(2*math.Pi*g.phase) + g.noise*white
		sample *= g.gain * math.Exp(-4*p)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error { return nil }

// rumble is the endless low drone played while the wall lowers.
type rumble struct {
	sr  beep.SampleRate
	pos int
}

func newRumble(sr beep.SampleRate) *rumble {
	return &rumble{sr: sr}
}

func (g *rumble) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 45 Hz drone with a slow 3 Hz grind
		wobble := 0.5 + 0.5*math.Sin(2*math.Pi*3*t)
		sample := 0.12 * (math.Sin(2*math.Pi*45*t) + 0.4*wobble*math.Sin(2*math.Pi*90*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *rumble) Err() error { return nil }
