package matcher

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jtkorhonen/docmatch/internal/domain/records"
)

// Field scorers return (score, ok). ok == false means "no signal": the
// data needed for the comparison was absent, which is different from a
// comparison that happened and scored zero.

// scoreAmountValues compares two amounts sign-insensitively. The
// difference is rounded to 3 decimal places first so float-sourced
// values do not miss the tolerance by an epsilon.
func (m *Matcher) scoreAmountValues(a, b decimal.Decimal) float64 {
	diff := a.Abs().Sub(b.Abs()).Abs().Round(3)
	if diff.LessThanOrEqual(m.config.AmountTolerance) {
		return m.config.AmountWeight
	}
	return 0
}

// scoreAmount scores the transaction amount against the document total.
func (m *Matcher) scoreAmount(tx *records.Transaction, att *records.Attachment) (float64, bool) {
	attAmount := att.TotalAmount()
	if tx.Amount == nil || attAmount == nil {
		return 0, false
	}
	return m.scoreAmountValues(*tx.Amount, *attAmount), true
}

// scoreDateRange scores how plausibly a payment date belongs to a
// document's date range. Inside [min, max] is a full match; after that
// the score decays with days past the latest date, which for invoices
// is the due date.
func (m *Matcher) scoreDateRange(txDate time.Time, attDates []time.Time) float64 {
	minDate, maxDate := attDates[0], attDates[0]
	for _, d := range attDates[1:] {
		if d.Before(minDate) {
			minDate = d
		}
		if d.After(maxDate) {
			maxDate = d
		}
	}

	if !txDate.Before(minDate) && !txDate.After(maxDate) {
		return m.config.DateExactWeight
	}

	days := int(txDate.Sub(maxDate).Hours() / 24)
	if days < 0 {
		days = -days
	}
	switch {
	case days <= m.config.DateCloseDays:
		return m.config.DateCloseWeight
	case days <= m.config.DateRecentDays:
		return m.config.DateRecentWeight
	case days <= m.config.DateAcceptableDays:
		return m.config.DateAcceptableWeight
	default:
		return 0
	}
}

// scoreDate scores the transaction date against the attachment's dates.
// No signal when the transaction date is missing or malformed, or the
// attachment has no parsable date fields.
func (m *Matcher) scoreDate(tx *records.Transaction, att *records.Attachment) (float64, bool) {
	txDate, ok := tx.ParsedDate()
	if !ok {
		return 0, false
	}
	attDates := att.Dates()
	if len(attDates) == 0 {
		return 0, false
	}
	return m.scoreDateRange(txDate, attDates), true
}

// scoreNames scores two counterparty names by token-set comparison.
func (m *Matcher) scoreNames(name1, name2 string) (float64, bool) {
	if strings.TrimSpace(name1) == "" || strings.TrimSpace(name2) == "" {
		return 0, false
	}

	tokens1 := tokenizeName(name1)
	tokens2 := tokenizeName(name2)

	if equalTokenSets(tokens1, tokens2) {
		return m.config.NameExactWeight, true
	}

	similarity := jaccard(tokens1, tokens2)
	switch {
	case similarity >= m.config.SimilarityExcellent:
		return m.config.NameExactWeight, true
	case similarity >= m.config.SimilarityGood:
		return m.config.NameGoodWeight, true
	case similarity >= m.config.SimilarityFair:
		return m.config.NameFairWeight, true
	default:
		return 0, true
	}
}

// scoreCounterparty scores the transaction's contact against every
// counterparty name on the attachment and keeps the best. No signal when
// either side has no usable name.
func (m *Matcher) scoreCounterparty(tx *records.Transaction, att *records.Attachment) (float64, bool) {
	if tx.Contact == nil || strings.TrimSpace(*tx.Contact) == "" {
		return 0, false
	}

	best, found := 0.0, false
	for _, name := range att.CounterpartyNames(m.config.OwnCompany) {
		score, ok := m.scoreNames(*tx.Contact, name)
		if ok && (!found || score > best) {
			best, found = score, true
		}
	}
	return best, found
}

// scorePair combines the three field scores for one transaction and one
// attachment. ok == false is a hard rejection: the pair cannot match no
// matter what the other fields say. Two rules reject outright:
//
//   - both amounts present but disagreeing beyond tolerance
//   - a computed name score below the minimum floor
//
// Otherwise the present sub-scores are summed; absent ones contribute
// nothing. A pair with no signal at all totals 0.0 and will never clear
// the acceptance threshold.
func (m *Matcher) scorePair(tx *records.Transaction, att *records.Attachment) (float64, bool) {
	amountScore, amountOK := m.scoreAmount(tx, att)
	if amountOK && amountScore == 0 {
		return 0, false
	}

	nameScore, nameOK := m.scoreCounterparty(tx, att)
	if nameOK && nameScore < m.config.NameMinScore {
		return 0, false
	}

	dateScore, dateOK := m.scoreDate(tx, att)

	total := 0.0
	if amountOK {
		total += amountScore
	}
	if nameOK {
		total += nameScore
	}
	if dateOK {
		total += dateScore
	}
	return total, true
}
