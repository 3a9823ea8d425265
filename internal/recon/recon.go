// Package recon runs the matching engine over whole record sets and
// turns the outcomes into persistable decisions.
package recon

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jtkorhonen/docmatch/internal/domain/matcher"
	"github.com/jtkorhonen/docmatch/internal/domain/records"
	"github.com/jtkorhonen/docmatch/internal/infrastructure/storage"
)

// Decision pairs a transaction with its resolved attachment, if any.
type Decision struct {
	Transaction *records.Transaction
	Match       *matcher.AttachmentMatch // nil when no document was accepted
}

// Result is the outcome of one batch run.
type Result struct {
	RunID          string
	Decisions      []Decision
	MatchedCount   int
	UnmatchedCount int
}

// Reconcile resolves every transaction against the attachment list.
// Attachments may be matched by more than one transaction; flagging
// duplicates is the reviewer's job, not the engine's.
func Reconcile(m *matcher.Matcher, transactions []*records.Transaction, attachments []*records.Attachment) *Result {
	result := &Result{
		RunID:     uuid.NewString(),
		Decisions: make([]Decision, 0, len(transactions)),
	}

	for _, tx := range transactions {
		match := m.FindAttachment(tx, attachments)
		if match != nil {
			result.MatchedCount++
		} else {
			result.UnmatchedCount++
		}
		result.Decisions = append(result.Decisions, Decision{Transaction: tx, Match: match})
	}

	return result
}

// Record persists every decision of a run to the audit store.
func Record(repo storage.Repository, result *Result) error {
	for _, decision := range result.Decisions {
		record := &storage.MatchRecord{
			RunID:     result.RunID,
			Direction: "attachment",
			PrimaryID: decision.Transaction.ID,
			Method:    storage.MethodNone,
		}
		if decision.Match != nil {
			record.MatchedID = decision.Match.Attachment.ID
			record.Score = decision.Match.Score
			record.Method = string(decision.Match.Method)
		}
		if err := repo.SaveDecision(record); err != nil {
			return fmt.Errorf("recording decision for transaction %s: %w", decision.Transaction.ID, err)
		}
	}
	return nil
}
