package storage

import "fmt"

// RecordChestOpening logs the outcome of an opened chest.
// An empty reward is stored as "none".
func (s *Store) RecordChestOpening(player, reward string) error {
	if reward == "" {
		reward = "none"
	}
	_, err := s.db.Exec(
		"INSERT INTO chest_openings (player, reward) VALUES (?, ?)",
		player, reward,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record chest opening: %w", err)
	}
	return nil
}

// ChestTally counts chest outcomes by reward. An empty player counts
// every player.
func (s *Store) ChestTally(player string) (map[string]int, error) {
	query := "SELECT reward, COUNT(*) FROM chest_openings GROUP BY reward"
	args := []any{}
	if player != "" {
		query = "SELECT reward, COUNT(*) FROM chest_openings WHERE player = ? GROUP BY reward"
		args = append(args, player)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query chest openings: %w", err)
	}
	defer rows.Close()

	tally := make(map[string]int)
	for rows.Next() {
		var reward string
		var n int
		if err := rows.Scan(&reward, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		tally[reward] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return tally, nil
}
