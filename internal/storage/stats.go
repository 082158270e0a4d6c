package storage

import (
	"fmt"
	"time"
)

// maxAttempts bounds the guess distribution.
const maxAttempts = 6

// Stats aggregates the rounds of one mode for one player, or for everyone
// when Player is empty.
type Stats struct {
	Mode          string
	Player        string
	Played        int
	Wins          int
	CurrentStreak int
	MaxStreak     int
	HighScore     int
	// Distribution counts wins by number of guesses; index 0 is a first-guess win.
	Distribution [maxAttempts]int
	LastPlayed   time.Time
}

// WinRate returns the percentage of rounds won.
func (st Stats) WinRate() float64 {
	if st.Played == 0 {
		return 0
	}
	return float64(st.Wins) * 100 / float64(st.Played)
}

// Stats computes statistics for the given mode in play order. Streaks only
// make sense per player, so an empty player aggregates every player's rounds
// as one history.
func (s *Store) Stats(mode, player string) (*Stats, error) {
	rows, err := s.db.Query(
		`SELECT won, attempts, score, created_at
		 FROM rounds
		 WHERE mode = ? AND (? = '' OR player = ?)
		 ORDER BY id ASC`,
		mode, player, player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	st := &Stats{Mode: mode, Player: player}
	for rows.Next() {
		var won bool
		var attempts, score int
		var createdAt any
		if err := rows.Scan(&won, &attempts, &score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}

		st.Played++
		st.LastPlayed = parseTime(createdAt)
		if score > st.HighScore {
			st.HighScore = score
		}

		if !won {
			st.CurrentStreak = 0
			continue
		}
		st.Wins++
		st.CurrentStreak++
		if st.CurrentStreak > st.MaxStreak {
			st.MaxStreak = st.CurrentStreak
		}
		if attempts >= 1 && attempts <= maxAttempts {
			st.Distribution[attempts-1]++
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return st, nil
}
