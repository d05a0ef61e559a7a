// Package storage provides SQLite-based persistence for scores, chest
// openings and play sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunStats are the per-run counters saved alongside a score.
type RunStats struct {
	GoldenEggs  int
	BombsHit    int
	RottenHit   int
	StarsCaught int
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Player    string
	Score     int
	Stats     RunStats
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// WAL and a busy timeout let concurrent SSH sessions write scores.
	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrations are applied in order; PRAGMA user_version records how many ran.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		player TEXT NOT NULL DEFAULT '',
		score INTEGER NOT NULL,
		golden_eggs INTEGER NOT NULL DEFAULT 0,
		bombs_hit INTEGER NOT NULL DEFAULT 0,
		rotten_hit INTEGER NOT NULL DEFAULT 0,
		stars_caught INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
	CREATE INDEX IF NOT EXISTS idx_scores_player ON scores(player);`,

	`CREATE TABLE IF NOT EXISTS chest_openings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player TEXT NOT NULL,
		reward TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_chest_openings_player ON chest_openings(player);`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL UNIQUE,
		game_id TEXT NOT NULL,
		player TEXT NOT NULL,
		remote_addr TEXT NOT NULL DEFAULT '',
		score INTEGER NOT NULL DEFAULT 0,
		end_reason TEXT NOT NULL,
		duration_secs INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_player ON sessions(player);`,
}

// migrate brings the schema up to date.
func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for i := version; i < len(migrations); i++ {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		if i == 0 {
			if err := upgradeArcadeScores(tx); err != nil {
				//nolint:errcheck // Rollback after a failed step
				tx.Rollback()
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		if _, err := tx.Exec(migrations[i]); err != nil {
			//nolint:errcheck // Rollback after a failed step
			tx.Rollback()
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		// PRAGMA does not take bind parameters.
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			//nolint:errcheck // Rollback after a failed step
			tx.Rollback()
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

// runColumns are the scores columns added on top of the shared arcade
// schema (id, game_id, score, created_at).
var runColumns = []struct{ name, def string }{
	{"player", "TEXT NOT NULL DEFAULT ''"},
	{"golden_eggs", "INTEGER NOT NULL DEFAULT 0"},
	{"bombs_hit", "INTEGER NOT NULL DEFAULT 0"},
	{"rotten_hit", "INTEGER NOT NULL DEFAULT 0"},
	{"stars_caught", "INTEGER NOT NULL DEFAULT 0"},
}

// upgradeArcadeScores adds the run columns to a scores table created by the
// arcade launcher, which shares ~/.arcade/scores.db. A missing table is left
// for the first migration to create.
func upgradeArcadeScores(tx *sql.Tx) error {
	rows, err := tx.Query("PRAGMA table_info(scores)")
	if err != nil {
		return fmt.Errorf("inspect scores: %w", err)
	}
	existing := make(map[string]bool)
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, typ        string
			dflt             sql.NullString
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			rows.Close()
			return fmt.Errorf("inspect scores: %w", err)
		}
		existing[name] = true
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("inspect scores: %w", err)
	}
	rows.Close()

	if len(existing) == 0 {
		return nil
	}
	for _, c := range runColumns {
		if existing[c.name] {
			continue
		}
		if _, err := tx.Exec("ALTER TABLE scores ADD COLUMN " + c.name + " " + c.def); err != nil {
			return fmt.Errorf("add scores.%s: %w", c.name, err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished run for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID, player string, score int, stats RunStats) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO scores (game_id, player, score, golden_eggs, bombs_hit, rotten_hit, stars_caught)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		gameID, player, score, stats.GoldenEggs, stats.BombsHit, stats.RottenHit, stats.StarsCaught,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const scoreColumns = `id, game_id, player, score, golden_eggs, bombs_hit, rotten_hit, stars_caught, created_at`

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+scoreColumns+`
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanScores(rows)
}

// PlayerScores retrieves a player's best runs for the given game.
func (s *Store) PlayerScores(gameID, player string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+scoreColumns+`
		 FROM scores
		 WHERE game_id = ? AND player = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player scores: %w", err)
	}
	return scanScores(rows)
}

func scanScores(rows *sql.Rows) ([]ScoreEntry, error) {
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID, &e.GameID, &e.Player, &e.Score,
			&e.Stats.GoldenEggs, &e.Stats.BombsHit, &e.Stats.RottenHit, &e.Stats.StarsCaught,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID      string
	GamesCount  int
	HighScore   int
	AvgScore    float64
	TotalScore  int64
	GoldenEggs  int64
	BombsHit    int64
	RottenHit   int64
	StarsCaught int64
	LastPlayed  time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
		        COALESCE(SUM(golden_eggs), 0), COALESCE(SUM(bombs_hit), 0),
		        COALESCE(SUM(rotten_hit), 0), COALESCE(SUM(stars_caught), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(
		&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore,
		&stats.GoldenEggs, &stats.BombsHit, &stats.RottenHit, &stats.StarsCaught,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(score),
		        SUM(golden_eggs), SUM(bombs_hit), SUM(rotten_hit), SUM(stars_caught), MAX(created_at)
		 FROM scores
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(
			&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore,
			&gs.GoldenEggs, &gs.BombsHit, &gs.RottenHit, &gs.StarsCaught, &lastPlayed,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
