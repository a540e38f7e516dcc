// Package registry provides a global registry for scene factories.
// Scenes register themselves in init() functions under the names the game
// loads them by, so the director can switch scenes without hardcoded
// dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/steelwall/internal/config"
	"github.com/vovakirdan/steelwall/internal/core"
	"github.com/vovakirdan/steelwall/internal/session"
)

// Scene names used by LoadScene.
const (
	MenuScene    = session.MenuScene
	GameScene    = "Game Scene"
	CreditsScene = "Credits Scene"
)

// Host is what a running scene can ask of the platform.
type Host interface {
	// Context is cancelled when the scene exits.
	Context() context.Context
	Runtime() core.RuntimeConfig
	Settings() config.SteelConfig
	Logger() *log.Logger
	Audio() core.Audio
	// HighScores stores the best score between sessions.
	HighScores() session.Persistence
	// RecordRun adds a finished session to the leaderboard.
	RecordRun(score int)

	// LoadScene switches scenes at the start of the next tick.
	LoadScene(name string)
	SetScreenFade(level float64)
	SetVolume(level float64)
	// Quit ends the program after the current tick.
	Quit()
}

// Scene is the interface every scene implements.
// Scenes contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing, and rendering.
type Scene interface {
	// ID returns the name the scene is loaded by (e.g., "Game Scene").
	ID() string

	// Title returns a short human-readable name.
	Title() string

	// Enter starts the scene. It is called once before the first Step.
	Enter(host Host)

	// Step advances the scene by one fixed tick.
	Step(in core.InputFrame)

	// Render draws the scene into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns what the platform shows around the scene.
	State() core.SceneState

	// Exit releases anything the scene holds. The host's context is
	// already cancelled.
	Exit()
}

// OverlayRenderer is implemented by scenes that draw on top of the screen
// fade, such as a pause menu.
type OverlayRenderer interface {
	RenderOverlay(dst *core.Screen)
}

// SceneInfo contains metadata about a registered scene.
type SceneInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a scene.
type Factory func() Scene

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Typically called from a scene's init() function.
// Panics if a scene with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered scenes, sorted by ID.
func List() []SceneInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SceneInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SceneInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new scene by its ID.
// Returns an error if the scene ID is not registered.
func Create(id string) (Scene, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown scene %q", id)
	}

	return f(), nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
