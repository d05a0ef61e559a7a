package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SessionRecord is one finished play session, local or over SSH.
type SessionRecord struct {
	ID         int64
	SessionID  string
	GameID     string
	Player     string
	RemoteAddr string
	Score      int
	EndReason  string // "gameover", "quit", "menu", "disconnect"
	Duration   int    // Duration in seconds
	CreatedAt  time.Time
}

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(rec SessionRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO sessions
		 (session_id, game_id, player, remote_addr, score, end_reason, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID,
		rec.GameID,
		rec.Player,
		rec.RemoteAddr,
		rec.Score,
		rec.EndReason,
		rec.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const sessionColumns = `id, session_id, game_id, player, remote_addr, score, end_reason, duration_secs, created_at`

// SessionByID retrieves a session by its session ID.
// Returns nil without error if it does not exist.
func (s *Store) SessionByID(sessionID string) (*SessionRecord, error) {
	var rec SessionRecord
	var createdAt any

	err := s.db.QueryRow(
		`SELECT `+sessionColumns+` FROM sessions WHERE session_id = ?`,
		sessionID,
	).Scan(
		&rec.ID,
		&rec.SessionID,
		&rec.GameID,
		&rec.Player,
		&rec.RemoteAddr,
		&rec.Score,
		&rec.EndReason,
		&rec.Duration,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}

	rec.CreatedAt = parseTime(createdAt)
	return &rec, nil
}

// PlayerSessions retrieves the most recent sessions of a player.
// An empty player lists everyone's sessions.
func (s *Store) PlayerSessions(player string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY created_at DESC, id DESC LIMIT ?`
	args := []any{limit}
	if player != "" {
		query = `SELECT ` + sessionColumns + ` FROM sessions WHERE player = ? ORDER BY created_at DESC, id DESC LIMIT ?`
		args = []any{player, limit}
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var results []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var createdAt any

		if err := rows.Scan(
			&rec.ID,
			&rec.SessionID,
			&rec.GameID,
			&rec.Player,
			&rec.RemoteAddr,
			&rec.Score,
			&rec.EndReason,
			&rec.Duration,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		rec.CreatedAt = parseTime(createdAt)
		results = append(results, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}
