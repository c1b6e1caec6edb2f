package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store keeps the full run history in a SQLite database. The best score
// lives in the HighscoreFile; this is the additive record every finished run
// lands in, and what the scoreboard reads.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one recorded run.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Player    string
	Score     int
	CreatedAt time.Time
}

// GameStats summarizes the recorded runs of one game.
type GameStats struct {
	GameID    string
	Plays     int
	BestScore int
	AvgScore  float64
}

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id    TEXT    NOT NULL,
	player     TEXT    NOT NULL DEFAULT 'player',
	score      INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_scores_game ON scores(game_id, score DESC);
`

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// DefaultDBPath returns ~/.twocars/scores.db, falling back to the working
// directory when the home directory is unknown.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "scores.db"
	}
	return filepath.Join(home, ".twocars", "scores.db")
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveScore records one finished run.
func (s *Store) SaveScore(gameID, player string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO scores (game_id, player, score) VALUES (?, ?, ?)`,
		gameID, player, score,
	)
	if err != nil {
		return fmt.Errorf("storage: save score: %w", err)
	}
	return nil
}

// TopScores returns the best runs for a game, highest first.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, game_id, player, score, created_at
		 FROM scores WHERE game_id = ?
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: query top scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Score, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: scan score: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// HighScore returns the best recorded score for a game, 0 when none exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		`SELECT MAX(score) FROM scores WHERE game_id = ?`, gameID,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: query high score: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// GetGameStats returns aggregate statistics for a game.
func (s *Store) GetGameStats(gameID string) (GameStats, error) {
	stats := GameStats{GameID: gameID}
	var best, avg sql.NullFloat64
	err := s.db.QueryRow(
		`SELECT COUNT(*), MAX(score), AVG(score) FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Plays, &best, &avg)
	if err != nil {
		return stats, fmt.Errorf("storage: query stats: %w", err)
	}
	if best.Valid {
		stats.BestScore = int(best.Float64)
	}
	if avg.Valid {
		stats.AvgScore = avg.Float64
	}
	return stats, nil
}

// ClearScores deletes all recorded runs for a game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec(`DELETE FROM scores WHERE game_id = ?`, gameID); err != nil {
		return fmt.Errorf("storage: clear scores: %w", err)
	}
	return nil
}
