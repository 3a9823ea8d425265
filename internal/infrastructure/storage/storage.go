// Package storage persists match decisions to SQLite so past
// reconciliation runs can be audited and served over the API.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Repository defines the audit store interface. It allows swapping the
// SQLite implementation out in tests.
type Repository interface {
	// SaveDecision records one match decision.
	SaveDecision(record *MatchRecord) error

	// RecentDecisions returns the latest decisions, newest first.
	RecentDecisions(limit int) ([]*MatchRecord, error)

	// GetStats returns aggregate statistics over all stored decisions.
	GetStats() (*Stats, error)

	Close() error
}

// Storage provides SQLite database access for match decisions.
type Storage struct {
	db *sql.DB
}

// Compile-time check that Storage implements Repository
var _ Repository = (*Storage)(nil)

// NewStorage creates a new storage instance with SQLite database
func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints (SQLite-specific)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &Storage{db: db}

	if err := s.runMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// SaveDecision records one match decision. A missing record ID gets a
// generated one; a zero CreatedAt gets the current time.
func (s *Storage) SaveDecision(record *MatchRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	query := `
	INSERT INTO match_decisions
	(id, run_id, direction, primary_id, matched_id, score, method, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		record.ID,
		record.RunID,
		record.Direction,
		record.PrimaryID,
		record.MatchedID,
		record.Score,
		record.Method,
		record.CreatedAt,
	)
	return err
}

// RecentDecisions returns the latest decisions, newest first.
func (s *Storage) RecentDecisions(limit int) ([]*MatchRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
	SELECT id, run_id, direction, primary_id, matched_id, score, method, created_at
	FROM match_decisions
	ORDER BY created_at DESC, id
	LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var decisions []*MatchRecord
	for rows.Next() {
		record := &MatchRecord{}
		var matchedID sql.NullString
		if err := rows.Scan(
			&record.ID,
			&record.RunID,
			&record.Direction,
			&record.PrimaryID,
			&matchedID,
			&record.Score,
			&record.Method,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		if matchedID.Valid {
			record.MatchedID = matchedID.String
		}
		decisions = append(decisions, record)
	}
	return decisions, rows.Err()
}

// GetStats returns aggregate statistics over all stored decisions.
func (s *Storage) GetStats() (*Stats, error) {
	stats := &Stats{
		DecisionsByRun:  make(map[string]int),
		MatchesByMethod: make(map[string]int),
	}

	err := s.db.QueryRow(`
	SELECT
		COUNT(*),
		COALESCE(SUM(CASE WHEN method != ? THEN 1 ELSE 0 END), 0)
	FROM match_decisions
	`, MethodNone).Scan(&stats.TotalDecisions, &stats.MatchedCount)
	if err != nil {
		return nil, err
	}
	stats.UnmatchedCount = stats.TotalDecisions - stats.MatchedCount

	rows, err := s.db.Query(`SELECT run_id, COUNT(*) FROM match_decisions GROUP BY run_id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var runID string
		var count int
		if err := rows.Scan(&runID, &count); err != nil {
			return nil, err
		}
		stats.DecisionsByRun[runID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	methodRows, err := s.db.Query(`
	SELECT method, COUNT(*) FROM match_decisions WHERE method != ? GROUP BY method
	`, MethodNone)
	if err != nil {
		return nil, err
	}
	defer func() { _ = methodRows.Close() }()
	for methodRows.Next() {
		var method string
		var count int
		if err := methodRows.Scan(&method, &count); err != nil {
			return nil, err
		}
		stats.MatchesByMethod[method] = count
	}
	return stats, methodRows.Err()
}
