// Package loader reads transaction and attachment record files exported
// from the accounting system. Files are JSON arrays; optional fields may
// be null and identifiers may be numbers or strings. Records arriving
// without an identifier are assigned one so downstream reporting and the
// audit store always have something to key on.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jtkorhonen/docmatch/internal/domain/records"
)

type rawTransaction struct {
	ID        json.RawMessage  `json:"id"`
	Amount    *decimal.Decimal `json:"amount"`
	Date      *string          `json:"date"`
	Contact   *string          `json:"contact"`
	Reference *string          `json:"reference"`
}

type rawAttachment struct {
	ID   json.RawMessage `json:"id"`
	Type string          `json:"type"`
	Data records.Fields  `json:"data"`
}

// LoadTransactions reads a transactions file.
func LoadTransactions(path string) ([]*records.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading transactions file: %w", err)
	}

	var raw []rawTransaction
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing transactions file %s: %w", path, err)
	}

	transactions := make([]*records.Transaction, 0, len(raw))
	for _, r := range raw {
		transactions = append(transactions, &records.Transaction{
			ID:        recordID(r.ID),
			Amount:    r.Amount,
			Date:      r.Date,
			Contact:   r.Contact,
			Reference: r.Reference,
		})
	}
	return transactions, nil
}

// LoadAttachments reads an attachments file.
func LoadAttachments(path string) ([]*records.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading attachments file: %w", err)
	}

	var raw []rawAttachment
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing attachments file %s: %w", path, err)
	}

	attachments := make([]*records.Attachment, 0, len(raw))
	for _, r := range raw {
		attachments = append(attachments, &records.Attachment{
			ID:   recordID(r.ID),
			Type: r.Type,
			Data: r.Data,
		})
	}
	return attachments, nil
}

// recordID turns whatever the source used as an identifier into a
// string, generating one when the field was missing or null.
func recordID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return uuid.NewString()
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return uuid.NewString()
	}
	switch id := v.(type) {
	case string:
		if id == "" {
			return uuid.NewString()
		}
		return id
	case float64:
		if id == float64(int64(id)) {
			return strconv.FormatInt(int64(id), 10)
		}
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return uuid.NewString()
	}
}
