package cli

import (
	"fmt"
	"strings"

	"github.com/jtkorhonen/docmatch/internal/infrastructure/storage"
	"github.com/jtkorhonen/docmatch/internal/recon"
)

// PrintHeader prints the application header
func PrintHeader(dryRun bool) {
	mode := "PRODUCTION"
	if dryRun {
		mode = "DRY-RUN"
	}
	fmt.Printf("docmatch: transaction/attachment reconciliation (%s mode)\n", mode)
}

// PrintConfiguration prints the run configuration
func PrintConfiguration(transactionsPath, attachmentsPath string, threshold float64) {
	fmt.Printf("Transactions: %s | Attachments: %s | Threshold: %.2f\n\n",
		transactionsPath, attachmentsPath, threshold)
}

// PrintDecisions prints one line per transaction decision
func PrintDecisions(result *recon.Result, verbose bool) {
	for _, decision := range result.Decisions {
		if decision.Match != nil {
			fmt.Printf("  %-12s -> %-12s method=%-9s score=%.2f\n",
				decision.Transaction.ID,
				decision.Match.Attachment.ID,
				decision.Match.Method,
				decision.Match.Score)
		} else if verbose {
			fmt.Printf("  %-12s -> no match\n", decision.Transaction.ID)
		}
	}
}

// PrintSummary prints the run summary and all-time stats when available
func PrintSummary(result *recon.Result, store storage.Repository) {
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Summary: Matched=%d Unmatched=%d Run=%s\n",
		result.MatchedCount,
		result.UnmatchedCount,
		result.RunID)

	if store != nil {
		stats, _ := store.GetStats()
		if stats != nil && stats.TotalDecisions > 0 {
			matchRate := float64(stats.MatchedCount) / float64(stats.TotalDecisions) * 100
			fmt.Printf("\nAll-Time Stats: Decisions=%d Matched=%d Rate=%.1f%%\n",
				stats.TotalDecisions,
				stats.MatchedCount,
				matchRate)
		}
	}
}
