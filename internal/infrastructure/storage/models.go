package storage

import "time"

// MatchRecord is one persisted match decision from a reconciliation run.
// MatchedID and Score are empty/zero for no-match outcomes.
type MatchRecord struct {
	ID        string    `json:"id"`
	RunID     string    `json:"run_id"`
	Direction string    `json:"direction"` // "attachment" or "transaction"
	PrimaryID string    `json:"primary_id"`
	MatchedID string    `json:"matched_id,omitempty"`
	Score     float64   `json:"score"`
	Method    string    `json:"method"` // "reference", "score" or "none"
	CreatedAt time.Time `json:"created_at"`
}

// MethodNone marks a decision where no candidate was accepted.
const MethodNone = "none"

// Stats aggregates stored decisions by outcome.
type Stats struct {
	TotalDecisions  int            `json:"total_decisions"`
	MatchedCount    int            `json:"matched_count"`
	UnmatchedCount  int            `json:"unmatched_count"`
	DecisionsByRun  map[string]int `json:"decisions_by_run"`
	MatchesByMethod map[string]int `json:"matches_by_method"`
}
