// Package matcher resolves payment transactions against supporting
// documents (invoices and receipts) and vice versa.
//
// Resolution runs in two phases:
//   - exact reference match on cleaned reference numbers, which bypasses
//     scoring entirely
//   - multi-factor fuzzy scoring (amount, counterparty name, date
//     proximity) with hard filters, accepting the best candidate only if
//     it clears the acceptance threshold
//
// Example usage:
//
//	m := matcher.NewMatcher(matcher.DefaultConfig())
//	if match := m.FindAttachment(tx, attachments); match != nil {
//		// match.Attachment is one of the input records
//	}
//
// All operations are pure over the caller's slices; a Matcher is safe
// for concurrent use.
package matcher

import (
	"github.com/jtkorhonen/docmatch/internal/domain/records"
)

// Matcher matches transactions with attachments under one rule set.
type Matcher struct {
	config Config
}

// NewMatcher creates a matcher with the given config.
func NewMatcher(config Config) *Matcher {
	return &Matcher{config: config}
}

// FindAttachment finds the most plausible supporting document for a
// transaction. Returns nil if nothing matches.
func (m *Matcher) FindAttachment(tx *records.Transaction, attachments []*records.Attachment) *AttachmentMatch {
	candidate, score, method := findMatch(
		tx.CleanedReference(),
		attachments,
		func(att *records.Attachment) string { return att.Reference() },
		func(att *records.Attachment) (float64, bool) { return m.scorePair(tx, att) },
		m.config.AcceptanceThreshold,
	)
	if candidate == nil {
		return nil
	}
	return &AttachmentMatch{Attachment: candidate, Score: score, Method: method}
}

// FindTransaction finds the most plausible paying transaction for a
// supporting document. Returns nil if nothing matches. The pair score is
// symmetric, so a pair accepted here is accepted by FindAttachment too.
func (m *Matcher) FindTransaction(att *records.Attachment, transactions []*records.Transaction) *TransactionMatch {
	candidate, score, method := findMatch(
		att.Reference(),
		transactions,
		func(tx *records.Transaction) string { return tx.CleanedReference() },
		func(tx *records.Transaction) (float64, bool) { return m.scorePair(tx, att) },
		m.config.AcceptanceThreshold,
	)
	if candidate == nil {
		return nil
	}
	return &TransactionMatch{Transaction: candidate, Score: score, Method: method}
}

// findMatch is the two-phase search over a candidate list. Both
// directions share it; only the reference and score accessors differ.
func findMatch[T any](
	primaryRef string,
	candidates []*T,
	refFn func(*T) string,
	scoreFn func(*T) (float64, bool),
	threshold float64,
) (*T, float64, Method) {
	// Phase 1: exact reference match. First hit wins and overrides any
	// disagreement in the other fields.
	if primaryRef != "" {
		for _, candidate := range candidates {
			if refFn(candidate) == primaryRef {
				return candidate, 0, MethodReference
			}
		}
	}

	// Phase 2: score every candidate, keep the best. Strict > keeps the
	// first-seen candidate on ties, so the result is stable with respect
	// to input order.
	var best *T
	bestScore := 0.0
	for _, candidate := range candidates {
		score, ok := scoreFn(candidate)
		if !ok {
			continue
		}
		if best == nil || score > bestScore {
			best = candidate
			bestScore = score
		}
	}

	if best == nil || bestScore < threshold {
		return nil, 0, ""
	}
	return best, bestScore, MethodScore
}
