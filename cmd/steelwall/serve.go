package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/steelwall/internal/platform/tui"
	"github.com/vovakirdan/steelwall/internal/platform/web"
	"github.com/vovakirdan/steelwall/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagHTTPAddr    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Steelwall SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session, starting at the title screen.
Scores are stored per-server (all users share the same leaderboard and
high score). With --http, the leaderboard is also served as JSON.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.steelwall/host_key

Examples:
  steelwall serve                           # Listen on :23234 with auto-generated key
  steelwall serve --ssh :2222               # Listen on port 2222
  steelwall serve --http :8080              # Also serve GET /scores, /highscore, /stats
  steelwall serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP leaderboard address (empty = disabled)")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "steelwall",
	})

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS

	sshServer, err := tui.NewSSHServer(cfg, settings, store, logger.WithPrefix("ssh"))
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	servers := 1
	errc := make(chan error, 2)
	go func() { errc <- sshServer.ListenAndServe(ctx) }()

	fmt.Printf("Starting Steelwall SSH server on %s\n", sshServer.Addr())
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(sshServer.Addr()))

	if flagHTTPAddr != "" {
		servers++
		httpServer := web.NewServer(flagHTTPAddr, store, logger)
		go func() { errc <- httpServer.ListenAndServe(ctx) }()
		fmt.Printf("Leaderboard API on http://%s/scores\n", httpServer.Addr())
	}
	fmt.Println("Press Ctrl+C to stop")

	// The first failure stops the other server too.
	var firstErr error
	for range servers {
		if err := <-errc; err != nil && firstErr == nil {
			firstErr = err
			cancel()
		}
	}
	return firstErr
}

func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
