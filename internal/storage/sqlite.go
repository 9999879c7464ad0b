// Package storage provides SQLite-based persistence for processing-run
// history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord represents one completed processing run.
type RunRecord struct {
	ID            int64
	InputPath     string
	OutputPath    string
	Width         int
	Height        int
	TileSize      int
	LandThreshold int
	ShallowBuffer int
	WaterCells    int
	ShallowCells  int
	LandCells     int
	DurationMS    int64
	CreatedAt     time.Time
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			input_path TEXT NOT NULL,
			output_path TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			tile_size INTEGER NOT NULL,
			land_threshold INTEGER NOT NULL,
			shallow_buffer INTEGER NOT NULL,
			water_cells INTEGER NOT NULL,
			shallow_cells INTEGER NOT NULL,
			land_cells INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_input ON runs(input_path);
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

// SaveRun records a completed processing run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (input_path, output_path, width, height, tile_size,
		 land_threshold, shallow_buffer, water_cells, shallow_cells, land_cells,
		 duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.InputPath, r.OutputPath, r.Width, r.Height, r.TileSize,
		r.LandThreshold, r.ShallowBuffer, r.WaterCells, r.ShallowCells,
		r.LandCells, r.DurationMS,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent N runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, input_path, output_path, width, height, tile_size,
		 land_threshold, shallow_buffer, water_cells, shallow_cells, land_cells,
		 duration_ms, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.InputPath, &r.OutputPath, &r.Width,
			&r.Height, &r.TileSize, &r.LandThreshold, &r.ShallowBuffer,
			&r.WaterCells, &r.ShallowCells, &r.LandCells, &r.DurationMS,
			&createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// LastRun returns the most recent run, or nil if none exist.
func (s *Store) LastRun() (*RunRecord, error) {
	records, err := s.RecentRuns(1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}
