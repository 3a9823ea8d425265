package main

import (
	"os"

	"github.com/jtkorhonen/docmatch/internal/cli"
	"github.com/jtkorhonen/docmatch/internal/domain/matcher"
	"github.com/jtkorhonen/docmatch/internal/infrastructure/config"
	"github.com/jtkorhonen/docmatch/internal/infrastructure/logging"
	"github.com/jtkorhonen/docmatch/internal/infrastructure/storage"
	"github.com/jtkorhonen/docmatch/internal/loader"
	"github.com/jtkorhonen/docmatch/internal/recon"
)

func main() {
	flags := cli.ParseReconcileFlags()

	cfg := config.LoadOrEnvWithPath(flags.ConfigPath)
	if flags.Verbose {
		cfg.Logging.Level = "debug"
	}
	logger := logging.NewLoggerWithScope(cfg.Logging, "reconcile")

	matcherConfig := cfg.Matching.ToMatcherConfig()

	cli.PrintHeader(flags.DryRun)
	cli.PrintConfiguration(flags.TransactionsPath, flags.AttachmentsPath, matcherConfig.AcceptanceThreshold)

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
	logger.Info("records loaded", "transactions", len(transactions), "attachments", len(attachments))

	m := matcher.NewMatcher(matcherConfig)
	result := recon.Reconcile(m, transactions, attachments)
	cli.PrintDecisions(result, flags.Verbose)

	var store storage.Repository
	if !flags.DryRun {
		s, err := storage.NewStorage(cfg.Storage.DatabasePath)
		if err != nil {
			logger.Error("failed to open audit store", "error", err)
			os.Exit(1)
		}
		defer func() { _ = s.Close() }()
		store = s

		if err := recon.Record(store, result); err != nil {
			logger.Error("failed to record decisions", "error", err)
			os.Exit(1)
		}
		logger.Debug("decisions recorded", "run", result.RunID)
	}

	cli.PrintSummary(result, store)
}
