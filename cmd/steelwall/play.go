package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/steelwall/internal/platform/tui"
	"github.com/vovakirdan/steelwall/internal/registry"
	"github.com/vovakirdan/steelwall/internal/storage"
)

var flagSkipTitle bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Balls of Steel",
	Long: `Start the game from the title screen.

Controls:
  Left/Right, A/D, mouse - Move the paddle
  Space, left click      - Release a ball
  Up/Down, Enter         - Menus
  Esc/P                  - Pause
  Ctrl+C                 - Quit

Difficulty options:
  easy   - Bigger ball bank, slower wall
  normal - The configured game with a slight push
  hard   - Fewer balls, faster wall, rarer bonuses
  fixed  - Use the config file values unchanged

Examples:
  steelwall play
  steelwall play --skip-title
  steelwall play --difficulty hard
  steelwall play --config ./my-wall.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		start := registry.MenuScene
		if flagSkipTitle {
			start = registry.GameScene
		}
		return runScenes(start)
	},
}

var creditsCmd = &cobra.Command{
	Use:   "credits",
	Short: "Roll the credits",
	Long:  `Roll the closing credits. Any key ends them early.`,
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runScenes(registry.CreditsScene)
	},
}

func init() {
	playCmd.Flags().BoolVar(&flagSkipTitle, "skip-title", false, "Start in the game instead of the title screen")
}

func runScenes(start string) error {
	logger, logFile, err := openLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer logFile.Close()

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without a database", "err", err)
		// Continue without storage - the high score lives in memory
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	audio, closeAudio := openAudio(logger)
	defer closeAudio()

	ctx, cancel := signalContext()
	defer cancel()

	player := os.Getenv("USER")
	logger.Info("session starting", "scene", start, "player", player, "fps", flagFPS)

	return tui.Run(ctx, tui.Options{
		Runtime:    runtimeConfig(),
		Settings:   settings,
		Logger:     logger,
		Audio:      audio,
		Store:      store,
		Player:     player,
		StartScene: start,
	})
}
