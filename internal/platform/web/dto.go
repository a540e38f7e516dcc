package web

import (
	"time"

	"github.com/vovakirdan/steelwall/internal/storage"
)

// ScoreResponse is one leaderboard row.
type ScoreResponse struct {
	Rank      int       `json:"rank,omitempty"`
	RunID     string    `json:"run_id"`
	Player    string    `json:"player"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// HighScoreResponse carries the best score ever reached.
type HighScoreResponse struct {
	HighScore int `json:"high_score"`
}

// StatsResponse summarises every recorded run.
type StatsResponse struct {
	Games      int       `json:"games"`
	HighScore  int       `json:"high_score"`
	AvgScore   float64   `json:"avg_score"`
	TotalScore int64     `json:"total_score"`
	LastPlayed time.Time `json:"last_played,omitzero"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toScoreResponse(e storage.ScoreEntry, rank int) ScoreResponse {
	return ScoreResponse{
		Rank:      rank,
		RunID:     e.RunID,
		Player:    e.Player,
		Score:     e.Score,
		CreatedAt: e.CreatedAt,
	}
}

func toStatsResponse(s *storage.GameStats) StatsResponse {
	return StatsResponse{
		Games:      s.GamesCount,
		HighScore:  s.HighScore,
		AvgScore:   s.AvgScore,
		TotalScore: s.TotalScore,
		LastPlayed: s.LastPlayed,
	}
}
