package records

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayout is the only date format the upstream systems emit.
const dateLayout = "2006-01-02"

// counterpartyKeys are the attachment field names that may hold the
// other party's name.
var counterpartyKeys = map[string]bool{
	"issuer":    true,
	"supplier":  true,
	"recipient": true,
}

// CleanReference canonicalizes a reference number for equality comparison:
// all whitespace is removed and leading zeros are stripped. An empty result
// (including all-zero input) comes back as "", meaning the reference is
// absent for matching purposes. The operation is idempotent.
func CleanReference(ref string) string {
	cleaned := strings.Join(strings.Fields(ref), "")
	return strings.TrimLeft(cleaned, "0")
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD). The second return
// value is false for anything that does not parse exactly.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// NormalizeText lowercases and trims a name for comparison.
func NormalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CleanedReference returns the transaction's canonical reference,
// or "" if the transaction carries none.
func (t Transaction) CleanedReference() string {
	if t.Reference == nil {
		return ""
	}
	return CleanReference(*t.Reference)
}

// ParsedDate returns the transaction date, if present and well formed.
// A malformed date string reads as absent rather than failing the match.
func (t Transaction) ParsedDate() (time.Time, bool) {
	if t.Date == nil {
		return time.Time{}, false
	}
	return ParseDate(*t.Date)
}

// Reference returns the attachment's canonical reference from the field
// collection, or "" if missing or not a string.
func (a Attachment) Reference() string {
	ref, ok := a.Data["reference"].(string)
	if !ok {
		return ""
	}
	return CleanReference(ref)
}

// TotalAmount returns the document total, or nil when the field is
// missing or not numeric. JSON decoding hands us float64 for numbers;
// strings are accepted too since some sources serialize amounts that way.
func (a Attachment) TotalAmount() *decimal.Decimal {
	switch v := a.Data["total_amount"].(type) {
	case float64:
		d := decimal.NewFromFloat(v)
		return &d
	case int:
		d := decimal.NewFromInt(int64(v))
		return &d
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return nil
		}
		return &d
	default:
		return nil
	}
}

// Dates collects every parsable date from fields whose key contains
// "date" (case-insensitive): issuing date, due date, receiving date and
// so on. Unparsable or non-string values are skipped silently.
func (a Attachment) Dates() []time.Time {
	var dates []time.Time
	for key, value := range a.Data {
		if !strings.Contains(strings.ToLower(key), "date") {
			continue
		}
		s, ok := value.(string)
		if !ok {
			continue
		}
		if d, ok := ParseDate(s); ok {
			dates = append(dates, d)
		}
	}
	return dates
}

// CounterpartyNames collects the attachment's counterparty names from the
// issuer/supplier/recipient fields. A non-empty exclude name filters out
// the company running the reconciliation, so a document never matches on
// our own name appearing as its recipient.
func (a Attachment) CounterpartyNames(exclude string) []string {
	excluded := NormalizeText(exclude)
	var names []string
	for key, value := range a.Data {
		if !counterpartyKeys[strings.ToLower(key)] {
			continue
		}
		name, ok := value.(string)
		if !ok || strings.TrimSpace(name) == "" {
			continue
		}
		if excluded != "" && NormalizeText(name) == excluded {
			continue
		}
		names = append(names, name)
	}
	return names
}
