package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver
)

// RunRecord is one persisted stabilizer check execution.
type RunRecord struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	CheckName string         `json:"check_name"`
	Expected  string         `json:"expected"`
	Shots     int            `json:"shots"`
	Percent   float64        `json:"percent"`
	Passed    bool           `json:"passed"`
	Counts    map[string]int `json:"counts"`
}

// RunStore persists run records in a SQLite database.
type RunStore struct {
	mu     sync.Mutex
	db     *sql.DB
	dbPath string
}

// DefaultDir returns the per-user data directory (~/.qverify).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".qverify"), nil
}

// Open creates (if needed) dir and the database at dir/qverify.db.
func Open(dir string) (*RunStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dir, "qverify.db")
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single writer.
	db.SetMaxOpenConns(1)

	if err := InitSchema(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &RunStore{db: db, dbPath: dbPath}, nil
}

// Add persists a run record. A missing ID gets a fresh UUID; a missing
// timestamp gets the current time. Returns the record ID.
func (s *RunStore) Add(ctx context.Context, rec RunRecord) (string, error) {
	if rec.CheckName == "" {
		return "", fmt.Errorf("run record needs a check name")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	countsJSON, err := json.Marshal(rec.Counts)
	if err != nil {
		return "", fmt.Errorf("failed to marshal counts: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, check_name, expected, shots, percent, passed, counts_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt.Format(time.RFC3339Nano), rec.CheckName, rec.Expected,
		rec.Shots, rec.Percent, boolToInt(rec.Passed), string(countsJSON))
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}
	return rec.ID, nil
}

// List returns the most recent runs, newest first. limit <= 0 means no limit.
func (s *RunStore) List(ctx context.Context, limit int) ([]RunRecord, error) {
	query := `SELECT id, created_at, check_name, expected, shots, percent, passed, counts_json
		FROM runs ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var createdAt, countsJSON string
		var passed int
		if err := rows.Scan(&rec.ID, &createdAt, &rec.CheckName, &rec.Expected,
			&rec.Shots, &rec.Percent, &passed, &countsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at %q: %w", createdAt, err)
		}
		if err := json.Unmarshal([]byte(countsJSON), &rec.Counts); err != nil {
			return nil, fmt.Errorf("failed to unmarshal counts: %w", err)
		}
		rec.Passed = passed != 0
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close closes the underlying database.
func (s *RunStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
