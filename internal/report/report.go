// Package report renders side-by-side comparisons of known
// transaction/attachment pairs for manual review.
//
// The output is diagnostic only. The package reads records through the
// same field extractors as the matching engine but makes no acceptance
// decision; its name comparison is deliberately looser than the engine's
// so a reviewer can see near-misses the engine rejected.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jtkorhonen/docmatch/internal/domain/records"
)

// amountTolerance mirrors the engine's display-level notion of "equal".
var amountTolerance = decimal.NewFromFloat(0.01)

// nameThreshold is the similarity ratio above which the viewer flags
// two names as probably the same party.
const nameThreshold = 0.8

// Row is one rendered comparison line.
type Row struct {
	Label       string
	Transaction string
	Attachment  string
	Status      string
}

// ComparePair builds the comparison rows for one pair.
func ComparePair(tx *records.Transaction, att *records.Attachment) []Row {
	return []Row{
		compareReferences(tx, att),
		compareAmounts(tx, att),
		compareDates(tx, att),
		compareCounterparties(tx, att),
	}
}

// RenderPair writes a human-readable comparison table for one pair.
func RenderPair(w io.Writer, tx *records.Transaction, att *records.Attachment) {
	fmt.Fprintln(w, strings.Repeat("=", 100))
	fmt.Fprintf(w, "Transaction %s <-> Attachment %s (%s)\n", tx.ID, att.ID, att.Type)
	fmt.Fprintln(w, strings.Repeat("-", 100))
	fmt.Fprintf(w, "%-14s %-34s %-34s %s\n", "FIELD", "TRANSACTION", "ATTACHMENT", "STATUS")
	for _, row := range ComparePair(tx, att) {
		fmt.Fprintf(w, "%-14s %-34s %-34s %s\n", row.Label, row.Transaction, row.Attachment, row.Status)
	}
}

// RenderUnmatched writes a short description of a transaction that
// found no document.
func RenderUnmatched(w io.Writer, tx *records.Transaction) {
	fmt.Fprintf(w, "Transaction %s: amount=%s date=%s contact=%s reference=%s\n",
		tx.ID, orNA(amountString(tx.Amount)), orNA(deref(tx.Date)),
		orNA(deref(tx.Contact)), orNA(deref(tx.Reference)))
}

func compareReferences(tx *records.Transaction, att *records.Attachment) Row {
	txRef := tx.CleanedReference()
	attRef := att.Reference()

	row := Row{Label: "Reference", Transaction: orNA(txRef), Attachment: orNA(attRef)}
	switch {
	case txRef == "" && attRef == "":
		row.Status = "both missing"
	case txRef == "" || attRef == "":
		row.Status = "one side missing"
	case txRef == attRef:
		row.Status = "MATCH"
	default:
		row.Status = "DIFFERENT"
	}
	return row
}

func compareAmounts(tx *records.Transaction, att *records.Attachment) Row {
	attAmount := att.TotalAmount()
	row := Row{Label: "Amount", Transaction: orNA(amountString(tx.Amount)), Attachment: orNA(amountString(attAmount))}

	if tx.Amount == nil || attAmount == nil {
		row.Status = "one side missing"
		return row
	}
	diff := tx.Amount.Abs().Sub(attAmount.Abs()).Abs()
	if diff.LessThanOrEqual(amountTolerance) {
		row.Status = "MATCH"
	} else {
		row.Status = fmt.Sprintf("DIFF %s", diff.StringFixed(2))
	}
	return row
}

func compareDates(tx *records.Transaction, att *records.Attachment) Row {
	row := Row{Label: "Date", Transaction: orNA(deref(tx.Date))}

	attDates := att.Dates()
	sort.Slice(attDates, func(i, j int) bool { return attDates[i].Before(attDates[j]) })
	row.Attachment = orNA(dateList(attDates))

	txDate, ok := tx.ParsedDate()
	if !ok || len(attDates) == 0 {
		row.Status = "one side missing"
		return row
	}

	minDate := attDates[0]
	maxDate := attDates[len(attDates)-1]
	if !txDate.Before(minDate) && !txDate.After(maxDate) {
		row.Status = "IN RANGE"
		return row
	}

	days := int(txDate.Sub(maxDate).Hours() / 24)
	if days < 0 {
		days = -days
	}
	if days <= 14 {
		row.Status = fmt.Sprintf("WITHIN 14d (%dd)", days)
	} else {
		row.Status = fmt.Sprintf("%d days apart", days)
	}
	return row
}

func compareCounterparties(tx *records.Transaction, att *records.Attachment) Row {
	attName := firstCounterparty(att)
	row := Row{Label: "Contact/Party", Transaction: orNA(deref(tx.Contact)), Attachment: orNA(attName)}

	if tx.Contact == nil || *tx.Contact == "" || attName == "" {
		row.Status = "one side missing"
		return row
	}

	similarity := NameSimilarity(*tx.Contact, attName)
	if similarity >= nameThreshold {
		row.Status = fmt.Sprintf("MATCH (%.2f)", similarity)
	} else {
		row.Status = fmt.Sprintf("NO MATCH (%.2f)", similarity)
	}
	return row
}

// NameSimilarity is the viewer's loose name comparison: 1.0 for equal
// normalized names, a containment ratio when one name contains the
// other, otherwise a longest-common-subsequence ratio. It is not the
// engine's token-set similarity and must never gate a match decision.
func NameSimilarity(name1, name2 string) float64 {
	a := records.NormalizeText(name1)
	b := records.NormalizeText(name2)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1.0
	}

	sequence := 2.0 * float64(lcsLength(a, b)) / float64(len(a)+len(b))

	containment := 0.0
	if strings.Contains(a, b) || strings.Contains(b, a) {
		shorter, longer := len(a), len(b)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		containment = float64(shorter) / float64(longer)
	}

	if containment > sequence {
		return containment
	}
	return sequence
}

// lcsLength is the longest-common-subsequence length of two strings.
func lcsLength(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// firstCounterparty returns the first present counterparty field in the
// issuer, supplier, recipient order the reviewers are used to.
func firstCounterparty(att *records.Attachment) string {
	for _, key := range []string{"issuer", "supplier", "recipient"} {
		if name, ok := att.Data[key].(string); ok && name != "" {
			return name
		}
	}
	return ""
}

func amountString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}

func dateList(dates []time.Time) string {
	parts := make([]string, 0, len(dates))
	for _, d := range dates {
		parts = append(parts, d.Format("2006-01-02"))
	}
	return strings.Join(parts, ", ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
