// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a lookup matches no result.
var ErrNotFound = errors.New("storage: result not found")

// Store manages the SQLite database connection for game results.
type Store struct {
	db *sql.DB
}

// Outcome values stored in the status column.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// Result is one finished game.
type Result struct {
	ID           int64
	GameID       string // UUID; generated on save when empty
	Difficulty   string // Catalog key
	Status       string // OutcomeWon or OutcomeLost
	ElapsedSecs  int
	Rows         int
	Cols         int
	Mines        int
	PowerUpsUsed int
	Player       string
	CreatedAt    time.Time
}

// Won returns true if the game was won.
func (r Result) Won() bool {
	return r.Status == OutcomeWon
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL UNIQUE,
			difficulty TEXT NOT NULL,
			status TEXT NOT NULL,
			elapsed_secs INTEGER NOT NULL DEFAULT 0,
			board_rows INTEGER NOT NULL,
			board_cols INTEGER NOT NULL,
			mines INTEGER NOT NULL,
			power_ups_used INTEGER NOT NULL DEFAULT 0,
			player TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_difficulty ON results(difficulty);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(difficulty, status, elapsed_secs);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.Status != OutcomeWon && r.Status != OutcomeLost {
		return 0, fmt.Errorf("storage: invalid status %q", r.Status)
	}
	if r.GameID == "" {
		r.GameID = uuid.NewString()
	} else if _, err := uuid.Parse(r.GameID); err != nil {
		return 0, fmt.Errorf("storage: invalid game id %q: %w", r.GameID, err)
	}

	result, err := s.db.Exec(
		`INSERT INTO results
		 (game_id, difficulty, status, elapsed_secs, board_rows, board_cols, mines, power_ups_used, player)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Difficulty, r.Status, r.ElapsedSecs,
		r.Rows, r.Cols, r.Mines, r.PowerUpsUsed, r.Player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const resultColumns = `id, game_id, difficulty, status, elapsed_secs, board_rows, board_cols, mines, power_ups_used, player, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (Result, error) {
	var r Result
	var createdAt any
	if err := row.Scan(&r.ID, &r.GameID, &r.Difficulty, &r.Status, &r.ElapsedSecs,
		&r.Rows, &r.Cols, &r.Mines, &r.PowerUpsUsed, &r.Player, &createdAt); err != nil {
		return Result{}, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetime values.
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

func (s *Store) queryResults(query string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// BestTimes retrieves the fastest N wins for the given difficulty.
// Ties are broken by insertion order.
func (s *Store) BestTimes(difficulty string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE difficulty = ? AND status = ?
		 ORDER BY elapsed_secs ASC, id ASC
		 LIMIT ?`,
		difficulty, OutcomeWon, limit,
	)
}

// RecentResults retrieves the most recent N results across difficulties.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT `+resultColumns+`
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// ResultByGameID retrieves a result by its UUID.
func (s *Store) ResultByGameID(gameID string) (Result, error) {
	r, err := scanResult(s.db.QueryRow(
		`SELECT `+resultColumns+` FROM results WHERE game_id = ?`,
		gameID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return Result{}, fmt.Errorf("%w: %s", ErrNotFound, gameID)
	}
	if err != nil {
		return Result{}, fmt.Errorf("storage: cannot get result: %w", err)
	}
	return r, nil
}

// ClearResults deletes all results for the given difficulty.
// An empty difficulty clears every result.
func (s *Store) ClearResults(difficulty string) error {
	var err error
	if difficulty == "" {
		_, err = s.db.Exec("DELETE FROM results")
	} else {
		_, err = s.db.Exec("DELETE FROM results WHERE difficulty = ?", difficulty)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics for a difficulty.
type Stats struct {
	Difficulty string
	Played     int
	Won        int
	BestSecs   int // Zero when no game was won
	LastPlayed time.Time
}

// WinRate returns the fraction of games won, in [0, 1].
func (st Stats) WinRate() float64 {
	if st.Played == 0 {
		return 0
	}
	return float64(st.Won) / float64(st.Played)
}

const statsColumns = `COUNT(*),
	COALESCE(SUM(CASE WHEN status = 'won' THEN 1 ELSE 0 END), 0),
	COALESCE(MIN(CASE WHEN status = 'won' THEN elapsed_secs END), 0),
	MAX(created_at)`

// Stats retrieves aggregated statistics for a specific difficulty.
func (s *Store) Stats(difficulty string) (Stats, error) {
	st := Stats{Difficulty: difficulty}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT `+statsColumns+` FROM results WHERE difficulty = ?`,
		difficulty,
	).Scan(&st.Played, &st.Won, &st.BestSecs, &lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.LastPlayed = parseTime(lastPlayed)
	return st, nil
}

// AllStats retrieves statistics for every difficulty that has been played.
func (s *Store) AllStats() (map[string]Stats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, ` + statsColumns + `
		 FROM results
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.Played, &st.Won, &st.BestSecs, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Difficulty] = st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
