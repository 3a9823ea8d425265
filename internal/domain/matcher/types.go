package matcher

import (
	"github.com/shopspring/decimal"

	"github.com/jtkorhonen/docmatch/internal/domain/records"
)

// Method records how a match was resolved.
type Method string

const (
	// MethodReference means the candidate's cleaned reference number
	// equalled the primary record's. Scoring is bypassed entirely.
	MethodReference Method = "reference"
	// MethodScore means the candidate won the fuzzy scoring phase and
	// cleared the acceptance threshold.
	MethodScore Method = "score"
)

// Config holds the matching rule set: field weights, tolerances and the
// acceptance threshold. It is passed in once and never mutated, so a
// caller can swap in a different calibration for testing.
type Config struct {
	// AmountTolerance is the maximum absolute difference (in currency
	// units) for two amounts to count as equal.
	AmountTolerance decimal.Decimal
	// AmountWeight is awarded when amounts agree within tolerance.
	AmountWeight float64

	// Name weights by similarity tier, and the Jaccard cutoffs that
	// select the tier.
	NameExactWeight     float64
	NameGoodWeight      float64
	NameFairWeight      float64
	SimilarityExcellent float64
	SimilarityGood      float64
	SimilarityFair      float64
	// NameMinScore is a hard filter: a computed name score below this
	// rejects the pair outright.
	NameMinScore float64

	// Date weights by proximity tier. A transaction date inside the
	// document's date range gets the exact weight; after that the
	// windows are days past the latest (due) date.
	DateExactWeight      float64
	DateCloseWeight      float64
	DateRecentWeight     float64
	DateAcceptableWeight float64
	DateCloseDays        int
	DateRecentDays       int
	DateAcceptableDays   int

	// AcceptanceThreshold is the minimum combined score for the best
	// candidate to be returned at all.
	AcceptanceThreshold float64

	// OwnCompany is the name of the company running the reconciliation.
	// It is excluded from counterparty extraction so invoices addressed
	// to ourselves do not match on our own name.
	OwnCompany string
}

// DefaultConfig returns the calibrated production rule set.
// Maximum attainable score is 1.15 (0.35 amount + 0.40 name + 0.40 date).
func DefaultConfig() Config {
	return Config{
		AmountTolerance: decimal.NewFromFloat(0.01),
		AmountWeight:    0.35,

		NameExactWeight:     0.40,
		NameGoodWeight:      0.30,
		NameFairWeight:      0.20,
		SimilarityExcellent: 0.8,
		SimilarityGood:      0.6,
		SimilarityFair:      0.4,
		NameMinScore:        0.20,

		DateExactWeight:      0.40,
		DateCloseWeight:      0.30,
		DateRecentWeight:     0.20,
		DateAcceptableWeight: 0.10,
		DateCloseDays:        3,
		DateRecentDays:       7,
		DateAcceptableDays:   14,

		AcceptanceThreshold: 0.60,
	}
}

// AttachmentMatch is the result of resolving a transaction against a
// list of attachments. Attachment points at one of the caller's inputs.
type AttachmentMatch struct {
	Attachment *records.Attachment
	Score      float64
	Method     Method
}

// TransactionMatch is the result of resolving an attachment against a
// list of transactions.
type TransactionMatch struct {
	Transaction *records.Transaction
	Score       float64
	Method      Method
}
