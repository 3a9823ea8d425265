package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtkorhonen/docmatch/internal/domain/records"
)

func TestFindAttachment_ExactReferenceBypassesScoring(t *testing.T) {
	m := NewMatcher(DefaultConfig())

	// Amount and counterparty disagree badly, but the cleaned references
	// are equal, so the attachment is still selected.
	tx := makeTransaction("2001", -1250.50, "2024-01-15", "Doe Media Oy", "12345672")
	att := &records.Attachment{ID: "3001", Type: "invoice", Data: records.Fields{
		"reference":    "00012345672",
		"total_amount": 9999.99,
		"issuer":       "Some Other Company",
	}}
	decoy := &records.Attachment{ID: "3002", Type: "invoice", Data: records.Fields{
		"total_amount": 1250.50,
		"invoice_date": "2024-01-15",
		"issuer":       "Doe Media Oy",
	}}

	match := m.FindAttachment(tx, []*records.Attachment{decoy, att})
	require.NotNil(t, match)
	assert.Equal(t, "3001", match.Attachment.ID)
	assert.Equal(t, MethodReference, match.Method)
}

func TestFindAttachment_ScoredFallback(t *testing.T) {
	m := NewMatcher(DefaultConfig())

	tx := makeTransaction("2001", -1250.50, "2024-01-15", "Doe Media Oy", "")
	att := &records.Attachment{ID: "3001", Type: "invoice", Data: records.Fields{
		"total_amount": 1250.50,
		"invoice_date": "2024-01-10",
		"due_date":     "2024-01-25",
		"issuer":       "Doe Media",
	}}

	match := m.FindAttachment(tx, []*records.Attachment{att})
	require.NotNil(t, match)
	assert.Equal(t, "3001", match.Attachment.ID)
	assert.Equal(t, MethodScore, match.Method)
	assert.InDelta(t, 1.15, match.Score, 1e-9)
}

func TestFindAttachment_BestDateWinsAmongEqualCandidates(t *testing.T) {
	m := NewMatcher(DefaultConfig())

	tx := makeTransaction("2001", -840.0, "2024-03-20", "Virtanen Consulting", "")
	late := &records.Attachment{ID: "3001", Type: "invoice", Data: records.Fields{
		"total_amount": 840.0,
		"invoice_date": "2024-02-10",
		"due_date":     "2024-03-01", // 19 days before payment
		"issuer":       "Virtanen Consulting Oy",
	}}
	inRange := &records.Attachment{ID: "3002", Type: "invoice", Data: records.Fields{
		"total_amount": 840.0,
		"invoice_date": "2024-03-10",
		"due_date":     "2024-03-25", // payment falls inside the range
		"issuer":       "Virtanen Consulting Oy",
	}}

	match := m.FindAttachment(tx, []*records.Attachment{late, inRange})
	require.NotNil(t, match)
	assert.Equal(t, "3002", match.Attachment.ID)
}

func TestFindAttachment_FirstSeenWinsTies(t *testing.T) {
	m := NewMatcher(DefaultConfig())

	tx := makeTransaction("2001", -100.0, "2024-01-15", "", "")
	first := &records.Attachment{ID: "3001", Data: records.Fields{
		"total_amount": 100.0,
		"invoice_date": "2024-01-15",
	}}
	second := &records.Attachment{ID: "3002", Data: records.Fields{
		"total_amount": 100.0,
		"invoice_date": "2024-01-15",
	}}

	match := m.FindAttachment(tx, []*records.Attachment{first, second})
	require.NotNil(t, match)
	assert.Equal(t, "3001", match.Attachment.ID)
}

func TestFindAttachment_BelowThreshold(t *testing.T) {
	m := NewMatcher(DefaultConfig())

	// Amount agrees (0.35) but nothing else contributes: below 0.60.
	tx := makeTransaction("2001", -100.0, "", "", "")
	att := &records.Attachment{ID: "3001", Data: records.Fields{"total_amount": 100.0}}

	assert.Nil(t, m.FindAttachment(tx, []*records.Attachment{att}))
}

func TestFindAttachment_EmptyCandidateList(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	tx := makeTransaction("2001", -100.0, "2024-01-15", "Doe Media", "12345672")
	assert.Nil(t, m.FindAttachment(tx, nil))
}

func TestFindTransaction(t *testing.T) {
	m := NewMatcher(DefaultConfig())

	att := &records.Attachment{ID: "3001", Type: "invoice", Data: records.Fields{
		"total_amount": 1250.50,
		"invoice_date": "2024-01-10",
		"due_date":     "2024-01-25",
		"issuer":       "Doe Media",
	}}

	t.Run("by reference", func(t *testing.T) {
		refAtt := &records.Attachment{ID: "3002", Data: records.Fields{"reference": "00012345672"}}
		tx := makeTransaction("2001", -9999.0, "", "", "12345672")
		other := makeTransaction("2002", -1250.50, "2024-01-15", "Doe Media", "")

		match := m.FindTransaction(refAtt, []*records.Transaction{other, tx})
		require.NotNil(t, match)
		assert.Equal(t, "2001", match.Transaction.ID)
		assert.Equal(t, MethodReference, match.Method)
	})

	t.Run("by score", func(t *testing.T) {
		tx := makeTransaction("2001", -1250.50, "2024-01-15", "Doe Media Oy", "")
		match := m.FindTransaction(att, []*records.Transaction{tx})
		require.NotNil(t, match)
		assert.Equal(t, "2001", match.Transaction.ID)
		assert.Equal(t, MethodScore, match.Method)
	})

	t.Run("empty candidate list", func(t *testing.T) {
		assert.Nil(t, m.FindTransaction(att, nil))
	})

	t.Run("consistent with FindAttachment", func(t *testing.T) {
		tx := makeTransaction("2001", -1250.50, "2024-01-15", "Doe Media Oy", "")

		forward := m.FindAttachment(tx, []*records.Attachment{att})
		backward := m.FindTransaction(att, []*records.Transaction{tx})

		require.NotNil(t, forward)
		require.NotNil(t, backward)
		assert.Equal(t, forward.Score, backward.Score)
	})
}

func TestFindAttachment_HardFiltersExcludeStrongCandidates(t *testing.T) {
	m := NewMatcher(DefaultConfig())

	t.Run("amount mismatch", func(t *testing.T) {
		tx := makeTransaction("2001", -1250.50, "2024-01-15", "Doe Media Oy", "")
		att := &records.Attachment{ID: "3001", Data: records.Fields{
			"total_amount": 1300.00,
			"invoice_date": "2024-01-15",
			"issuer":       "Doe Media Oy",
		}}
		assert.Nil(t, m.FindAttachment(tx, []*records.Attachment{att}))
	})

	t.Run("name below minimum", func(t *testing.T) {
		tx := makeTransaction("2001", -1250.50, "2024-01-15", "Totally Unrelated Contact", "")
		att := &records.Attachment{ID: "3001", Data: records.Fields{
			"total_amount": 1250.50,
			"invoice_date": "2024-01-15",
			"issuer":       "Doe Media Oy",
		}}
		assert.Nil(t, m.FindAttachment(tx, []*records.Attachment{att}))
	})
}
