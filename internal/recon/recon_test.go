package recon

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtkorhonen/docmatch/internal/domain/matcher"
	"github.com/jtkorhonen/docmatch/internal/domain/records"
	"github.com/jtkorhonen/docmatch/internal/infrastructure/storage"
)

func strPtr(s string) *string { return &s }

func decPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func sampleData() ([]*records.Transaction, []*records.Attachment) {
	transactions := []*records.Transaction{
		{ID: "2001", Amount: decPtr(-1250.50), Date: strPtr("2024-01-15"), Contact: strPtr("Doe Media Oy")},
		{ID: "2002", Amount: decPtr(-75.00)}, // nothing to match on
	}
	attachments := []*records.Attachment{
		{ID: "3001", Type: "invoice", Data: records.Fields{
			"total_amount": 1250.50,
			"invoice_date": "2024-01-10",
			"due_date":     "2024-01-25",
			"issuer":       "Doe Media",
		}},
	}
	return transactions, attachments
}

func TestReconcile(t *testing.T) {
	m := matcher.NewMatcher(matcher.DefaultConfig())
	transactions, attachments := sampleData()

	result := Reconcile(m, transactions, attachments)

	assert.NotEmpty(t, result.RunID)
	require.Len(t, result.Decisions, 2)
	assert.Equal(t, 1, result.MatchedCount)
	assert.Equal(t, 1, result.UnmatchedCount)

	require.NotNil(t, result.Decisions[0].Match)
	assert.Equal(t, "3001", result.Decisions[0].Match.Attachment.ID)
	assert.Nil(t, result.Decisions[1].Match)
}

func TestRecord(t *testing.T) {
	repo, err := storage.NewStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer func() { _ = repo.Close() }()

	m := matcher.NewMatcher(matcher.DefaultConfig())
	transactions, attachments := sampleData()
	result := Reconcile(m, transactions, attachments)

	require.NoError(t, Record(repo, result))

	decisions, err := repo.RecentDecisions(10)
	require.NoError(t, err)
	require.Len(t, decisions, 2)

	stats, err := repo.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MatchedCount)
	assert.Equal(t, 1, stats.UnmatchedCount)
	assert.Equal(t, 2, stats.DecisionsByRun[result.RunID])
}
