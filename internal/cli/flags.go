package cli

import (
	"flag"
)

// ReconcileFlags are the flags for the batch reconcile command
type ReconcileFlags struct {
	TransactionsPath string
	AttachmentsPath  string
	ConfigPath       string
	DryRun           bool
	Verbose          bool
}

// ParseReconcileFlags parses reconcile flags from the command line
func ParseReconcileFlags() ReconcileFlags {
	var flags ReconcileFlags
	flag.StringVar(&flags.TransactionsPath, "transactions", "data/transactions.json", "Path to the transactions file")
	flag.StringVar(&flags.AttachmentsPath, "attachments", "data/attachments.json", "Path to the attachments file")
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "Path to the config file")
	flag.BoolVar(&flags.DryRun, "dry-run", false, "Run without recording decisions")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Verbose output")
	flag.Parse()
	return flags
}

// ReportFlags are the flags for the comparison report command
type ReportFlags struct {
	TransactionsPath string
	AttachmentsPath  string
	ConfigPath       string
}

// ParseReportFlags parses report flags from the command line
func ParseReportFlags() ReportFlags {
	var flags ReportFlags
	flag.StringVar(&flags.TransactionsPath, "transactions", "data/transactions.json", "Path to the transactions file")
	flag.StringVar(&flags.AttachmentsPath, "attachments", "data/attachments.json", "Path to the attachments file")
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "Path to the config file")
	flag.Parse()
	return flags
}
