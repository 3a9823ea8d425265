package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jtkorhonen/docmatch/internal/cli"
	"github.com/jtkorhonen/docmatch/internal/domain/matcher"
	"github.com/jtkorhonen/docmatch/internal/infrastructure/config"
	"github.com/jtkorhonen/docmatch/internal/infrastructure/logging"
	"github.com/jtkorhonen/docmatch/internal/loader"
	"github.com/jtkorhonen/docmatch/internal/recon"
	"github.com/jtkorhonen/docmatch/internal/report"
)

// report renders a side-by-side field comparison for every resolved
// pair, plus the leftovers on both sides. The comparison is for human
// review only; acceptance decisions come from the matching engine.
func main() {
	flags := cli.ParseReportFlags()

	cfg := config.LoadOrEnvWithPath(flags.ConfigPath)
	logger := logging.NewLoggerWithScope(cfg.Logging, "report")

	transactions, err := loader.LoadTransactions(flags.TransactionsPath)
	if err != nil {
		logger.Error("failed to load transactions", "error", err)
		os.Exit(1)
	}
	attachments, err := loader.LoadAttachments(flags.AttachmentsPath)
	if err != nil {
		logger.Error("failed to load attachments", "error", err)
		os.Exit(1)
	}

	m := matcher.NewMatcher(cfg.Matching.ToMatcherConfig())
	result := recon.Reconcile(m, transactions, attachments)

	fmt.Println(strings.Repeat("=", 100))
	fmt.Println("SIDE-BY-SIDE COMPARISON OF MATCHING PAIRS")
	fmt.Println(strings.Repeat("=", 100))
	fmt.Printf("Transactions: %d | Attachments: %d | Matched: %d\n",
		len(transactions), len(attachments), result.MatchedCount)

	matchedAttachments := make(map[string]bool)
	for _, decision := range result.Decisions {
		if decision.Match == nil {
			continue
		}
		matchedAttachments[decision.Match.Attachment.ID] = true
		fmt.Println()
		report.RenderPair(os.Stdout, decision.Transaction, decision.Match.Attachment)
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 100))
	fmt.Println("UNMATCHED TRANSACTIONS")
	for _, decision := range result.Decisions {
		if decision.Match == nil {
			report.RenderUnmatched(os.Stdout, decision.Transaction)
		}
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 100))
	fmt.Println("UNMATCHED ATTACHMENTS")
	for _, att := range attachments {
		if !matchedAttachments[att.ID] {
			fmt.Printf("Attachment %s (%s): reference=%s\n", att.ID, att.Type, orNone(att.Reference()))
		}
	}
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
