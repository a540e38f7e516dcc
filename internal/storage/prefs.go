package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// HighScoreKey is the preference holding the best score ever reached.
const HighScoreKey = "HiScore"

// GetInt returns the integer preference stored under key, or def when it
// has never been set.
func (s *Store) GetInt(key string, def int) (int, error) {
	var v int
	err := s.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("storage: cannot read pref %s: %w", key, err)
	}
	return v, nil
}

// SetInt stores an integer preference, replacing any previous value.
func (s *Store) SetInt(key string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO prefs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write pref %s: %w", key, err)
	}
	return nil
}

// HighScorePref keeps a session's high score in the prefs table.
// Storage failures are logged and otherwise ignored so a broken database
// never interrupts play.
type HighScorePref struct {
	store  *Store
	key    string
	logger *log.Logger
}

// NewHighScorePref binds the high score to store. A nil logger discards
// failures silently.
func NewHighScorePref(store *Store, logger *log.Logger) *HighScorePref {
	return &HighScorePref{store: store, key: HighScoreKey, logger: logger}
}

// GetHighScore returns the stored high score, or 0.
func (p *HighScorePref) GetHighScore() int {
	v, err := p.store.GetInt(p.key, 0)
	if err != nil && p.logger != nil {
		p.logger.Warn("cannot load high score", "err", err)
	}
	return v
}

// SetHighScore stores score as the new high score.
func (p *HighScorePref) SetHighScore(score int) {
	if err := p.store.SetInt(p.key, score); err != nil && p.logger != nil {
		p.logger.Warn("cannot save high score", "score", score, "err", err)
	}
}
