// Package web serves the Steelwall leaderboard as a small read-only JSON
// API next to the SSH server.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vovakirdan/steelwall/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Scores is the part of the store the API reads.
type Scores interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	RunByID(runID string) (*storage.ScoreEntry, error)
	HighScore(gameID string) (int, error)
	GetInt(key string, def int) (int, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// Server is the leaderboard HTTP server.
type Server struct {
	addr   string
	scores Scores
	logger *log.Logger
	router chi.Router
	http   *http.Server
}

// NewServer creates a server listening on addr. A nil logger discards
// messages.
func NewServer(addr string, scores Scores, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{
		addr:   addr,
		scores: scores,
		logger: logger.WithPrefix("http"),
	}
	s.router = s.routes()
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler { return s.router }

// Addr returns the listen address.
func (s *Server) Addr() string { return s.addr }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.Get("/healthz", s.health)
	r.Get("/highscore", s.highScore)
	r.Get("/stats", s.stats)
	r.Route("/scores", func(rr chi.Router) {
		rr.Get("/", s.topScores)
		rr.Get("/{runID}", s.run)
	})

	return r
}

// ListenAndServe serves until ctx ends, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting HTTP server", "address", s.addr)

	errc := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"elapsed", time.Since(start),
		)
	})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) topScores(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxLimit)
	}

	entries, err := s.scores.TopScores(storage.GameID, limit)
	if err != nil {
		s.fail(w, err)
		return
	}
	out := make([]ScoreResponse, len(entries))
	for i, e := range entries {
		out[i] = toScoreResponse(e, i+1)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) run(w http.ResponseWriter, r *http.Request) {
	entry, err := s.scores.RunByID(chi.URLParam(r, "runID"))
	if err != nil {
		s.fail(w, err)
		return
	}
	if entry == nil {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	writeJSON(w, http.StatusOK, toScoreResponse(*entry, 0))
}

// highScore reports the larger of the stored preference and the best run,
// since the preference survives a cleared leaderboard.
func (s *Server) highScore(w http.ResponseWriter, _ *http.Request) {
	best, err := s.scores.HighScore(storage.GameID)
	if err != nil {
		s.fail(w, err)
		return
	}
	pref, err := s.scores.GetInt(storage.HighScoreKey, 0)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, HighScoreResponse{HighScore: max(best, pref)})
}

func (s *Server) stats(w http.ResponseWriter, _ *http.Request) {
	st, err := s.scores.GetGameStats(storage.GameID)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatsResponse(st))
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	s.logger.Error("request failed", "err", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
