// Package records defines the transaction and attachment record types
// exchanged with upstream accounting systems, plus tolerant accessors
// for the comparison-relevant fields.
//
// Records are externally supplied value objects. The matching engine never
// mutates them; a match result is always a reference to one of the inputs.
// Optional fields are pointers (nil means absent), and the attachment's
// nested field collection keeps its upstream shape as a map because date
// and counterparty keys are not fixed.
package records

import (
	"github.com/shopspring/decimal"
)

// Transaction is a payment record to be reconciled.
// Amount is signed: negative for outgoing payments. The sign only
// indicates direction and is ignored when comparing against documents.
type Transaction struct {
	ID        string           `json:"id"`
	Amount    *decimal.Decimal `json:"amount"`
	Date      *string          `json:"date"`
	Contact   *string          `json:"contact"`
	Reference *string          `json:"reference"`
}

// Fields is an attachment's nested field collection as delivered by the
// document pipeline. Values are whatever the upstream JSON contained;
// anything of an unexpected type reads as absent through the accessors
// in this package.
type Fields map[string]any

// Attachment is a supporting document (invoice or receipt) record.
// Type is informational only and plays no part in matching.
type Attachment struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data Fields `json:"data"`
}
