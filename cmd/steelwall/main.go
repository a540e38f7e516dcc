// steelwall is Balls of Steel, a brick breaker against a descending wall,
// played in the terminal.
//
// Usage:
//
//	steelwall play              - Title screen, then the game
//	steelwall play --skip-title - Straight into the game
//	steelwall credits           - Roll the credits
//	steelwall scores            - Show the leaderboard
//	steelwall serve             - Start the SSH server (and HTTP leaderboard)
//	steelwall config init       - Write the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible walls
//	--db <path>           - Set database path (default: ~/.steelwall/scores.db)
//	--log <path>          - Set log file (default: ~/.steelwall/steelwall.log)
//	--config <path>       - Use a custom configuration file
//	--difficulty <preset> - easy, normal, hard, or fixed
//	--sound               - Play sound through the system speaker
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/steelwall/internal/config"
	"github.com/vovakirdan/steelwall/internal/core"
	"github.com/vovakirdan/steelwall/internal/platform/sound"

	// Import scenes to register them
	_ "github.com/vovakirdan/steelwall/internal/scenes/credits"
	_ "github.com/vovakirdan/steelwall/internal/scenes/game"
	_ "github.com/vovakirdan/steelwall/internal/scenes/title"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogPath    string
	flagConfig     string
	flagDifficulty string
	flagSound      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "steelwall",
	Short: "Balls of Steel - smash the wall before it reaches you",
	Long: `Balls of Steel is a terminal brick breaker. A wall of bricks lowers
toward your paddle, faster every second. Break it back with a bank of
steel balls; bombs, TNT, and bonus bricks help along the way.

Available commands:
  play     - Play from the title screen
  credits  - Roll the credits
  scores   - View the leaderboard
  serve    - Start SSH server for remote play
  config   - Manage the configuration file

Examples:
  steelwall play
  steelwall play --difficulty hard --sound
  steelwall serve --ssh :2222 --http :8080
  steelwall scores`,
	SilenceUsage: true,
}

func init() {
	home := "~"
	if h, err := os.UserHomeDir(); err == nil {
		home = h
	}

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.steelwall/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", filepath.Join(home, ".steelwall", "steelwall.log"), "Path to log file (empty = no log)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound effects")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(creditsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// openLogger writes to path so log lines never land on the game screen.
// An empty path discards everything.
func openLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "steelwall",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}

// loadSettings reads the configuration and applies the difficulty preset.
func loadSettings() (config.SteelConfig, error) {
	cfg, err := config.LoadSteel(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset := config.DifficultyPreset(strings.ToLower(flagDifficulty))
		switch preset {
		case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		default:
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard, or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openAudio returns the speaker when --sound is set and a device is
// available, and silence otherwise.
func openAudio(logger *log.Logger) (core.Audio, func()) {
	if !flagSound {
		return core.SilentAudio{}, func() {}
	}
	player := sound.NewPlayer(logger)
	if err := player.Init(); err != nil {
		logger.Warn("sound disabled", "err", err)
		return core.SilentAudio{}, func() {}
	}
	return player, player.Close
}
