package session

import (
	"sync"

	"github.com/vovakirdan/steelwall/internal/wall"
)

// Persistence stores the high score between sessions.
type Persistence interface {
	GetHighScore() int
	SetHighScore(score int)
}

// SceneLoader switches to another scene by name.
type SceneLoader interface {
	LoadScene(name string)
}

// Display receives the screen-wide presentation levels driven by the
// session's fades.
type Display interface {
	SetScreenFade(level float64) // 0 is fully visible, 1 is black
	SetVolume(level float64)     // 0 is silent, 1 is full volume
}

// Listener is told about events the host has to act on.
type Listener interface {
	// BallReleased asks the host to put a new ball into play.
	BallReleased()
	// RowSpawned delivers a freshly generated row of bricks.
	RowSpawned(row wall.Row)
	// WallSound turns the wall's lowering sound on or off.
	WallSound(on bool)
	// StateChanged reports every state transition.
	StateChanged(from, to State)
}

// NopListener ignores every event. Embed it to implement only some methods.
type NopListener struct{}

func (NopListener) BallReleased()           {}
func (NopListener) RowSpawned(wall.Row)     {}
func (NopListener) WallSound(bool)          {}
func (NopListener) StateChanged(_, _ State) {}

type nopDisplay struct{}

func (nopDisplay) SetScreenFade(float64) {}
func (nopDisplay) SetVolume(float64)     {}

type nopScenes struct{}

func (nopScenes) LoadScene(string) {}

// MemoryPersistence keeps the high score in memory.
type MemoryPersistence struct {
	mu    sync.Mutex
	score int
}

// GetHighScore returns the stored score.
func (p *MemoryPersistence) GetHighScore() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.score
}

// SetHighScore stores score.
func (p *MemoryPersistence) SetHighScore(score int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.score = score
}
