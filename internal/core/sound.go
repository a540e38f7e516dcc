package core

// Sound is a one-shot sound effect.
type Sound int

const (
	SoundDestroy   Sound = iota // Brick destroyed
	SoundExplosion              // Bomb or TNT blast
	SoundBounce                 // Ball off the paddle
	SoundLaunch                 // Ball released from the bank
	SoundStab                   // Title word reveal
	SoundSmash                  // Title ball breaking through
)

// Audio plays sounds for a scene. Implementations must tolerate being
// called every tick.
type Audio interface {
	Play(s Sound)
	// SetLoop starts or stops the wall's lowering loop.
	SetLoop(on bool)
	// SetVolume sets the master volume from 0 (silent) to 1.
	SetVolume(level float64)
}

// SilentAudio discards every sound.
type SilentAudio struct{}

func (SilentAudio) Play(Sound)        {}
func (SilentAudio) SetLoop(bool)      {}
func (SilentAudio) SetVolume(float64) {}
