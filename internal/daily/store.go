package daily

import (
	"context"
	"database/sql"
)

// Result is one player's win on one day.
type Result struct {
	UserID    string `json:"userId"`
	Date      string `json:"date"`
	Target    uint32 `json:"target"`
	Attempts  int    `json:"attempts"`
	ElapsedMs int    `json:"elapsedMs"`
}

// LBRow is a leaderboard line; Rank starts at 1.
type LBRow struct {
	Rank      int    `json:"rank"`
	UserID    string `json:"userId"`
	Attempts  int    `json:"attempts"`
	ElapsedMs int    `json:"elapsedMs"`
}

const (
	qPlayed = `SELECT EXISTS(SELECT 1 FROM daily_results WHERE user_id=? AND date=?)`

	// daily_results has UNIQUE(user_id, date): only the first win of a day counts.
	qInsert = `INSERT OR IGNORE INTO daily_results(user_id, date, target, attempts, elapsed_ms)
		VALUES(?,?,?,?,?)`

	qBoard = `SELECT user_id, attempts, elapsed_ms
		FROM daily_results
		WHERE date=?
		ORDER BY attempts, elapsed_ms, created_at
		LIMIT ?`
)

const defaultBoardSize = 20

// Store persists daily results in SQLite.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyPlayed reports whether userID has a recorded win for date.
func (s *Store) AlreadyPlayed(ctx context.Context, userID, date string) (played bool, err error) {
	err = s.db.QueryRowContext(ctx, qPlayed, userID, date).Scan(&played)
	return played, err
}

// InsertResult records a win and reports whether a new row was written.
func (s *Store) InsertResult(ctx context.Context, r Result) (bool, error) {
	res, err := s.db.ExecContext(ctx, qInsert, r.UserID, r.Date, r.Target, r.Attempts, r.ElapsedMs)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n == 1, err
}

// Leaderboard ranks date's wins by fewest attempts, then fastest, then earliest.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = defaultBoardSize
	}
	rows, err := s.db.QueryContext(ctx, qBoard, date, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	board := make([]LBRow, 0, limit)
	for rows.Next() {
		row := LBRow{Rank: len(board) + 1}
		if err := rows.Scan(&row.UserID, &row.Attempts, &row.ElapsedMs); err != nil {
			return nil, err
		}
		board = append(board, row)
	}
	return board, rows.Err()
}
