// Package storage records finished games in a local SQLite file so
// the history command can show past runs. Nothing is ever read back
// into a game: every run still starts fresh.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS games (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    played_at       DATETIME NOT NULL,
    days_played     INTEGER  NOT NULL,
    total_days      INTEGER  NOT NULL,
    outcome         TEXT     NOT NULL,
    final_capital   REAL     NOT NULL,
    portfolio_value REAL     NOT NULL,
    total_worth     REAL     NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_games_played_at ON games(played_at DESC);
CREATE INDEX IF NOT EXISTS idx_games_worth     ON games(total_worth DESC);
`

// Result is one finished game.
type Result struct {
	ID             int64
	PlayedAt       time.Time
	DaysPlayed     int
	TotalDays      int
	Outcome        string
	FinalCapital   float64
	PortfolioValue float64
	TotalWorth     float64
}

// Store is the game-results database (pure Go SQLite, no CGo).
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the
// schema. ":memory:" works for tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.Open: open %q: %w", path, err)
	}
	// SQLite is single-writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.Open: apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// SaveResult appends one finished game.
func (s *Store) SaveResult(ctx context.Context, r Result) error {
	if r.PlayedAt.IsZero() {
		r.PlayedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO games (played_at, days_played, total_days, outcome, final_capital, portfolio_value, total_worth)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.PlayedAt, r.DaysPlayed, r.TotalDays, r.Outcome,
		r.FinalCapital, r.PortfolioValue, r.TotalWorth,
	)
	if err != nil {
		return fmt.Errorf("storage.SaveResult: %w", err)
	}
	return nil
}

// Recent returns the last n games, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Result, error) {
	return s.query(ctx,
		`SELECT id, played_at, days_played, total_days, outcome, final_capital, portfolio_value, total_worth
		 FROM games ORDER BY played_at DESC, id DESC LIMIT ?`, n)
}

// Best returns the n highest-scoring games by total worth.
func (s *Store) Best(ctx context.Context, n int) ([]Result, error) {
	return s.query(ctx,
		`SELECT id, played_at, days_played, total_days, outcome, final_capital, portfolio_value, total_worth
		 FROM games ORDER BY total_worth DESC, id DESC LIMIT ?`, n)
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.ID, &r.PlayedAt, &r.DaysPlayed, &r.TotalDays,
			&r.Outcome, &r.FinalCapital, &r.PortfolioValue, &r.TotalWorth); err != nil {
			return nil, fmt.Errorf("storage: scan: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
