// Package commands wires the CLI. Each command opens the store through the
// shared app context and talks to the core through the ledger, interest and
// report packages.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/banklar/banklar/internal/buildinfo"
)

// rootOptions carries flags shared by every subcommand.
type rootOptions struct {
	configPath string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "banklar",
		Short:   "Personal multi-account ledger with daily-compounded savings interest",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "banklar.yaml", "path to banklar.yaml")

	rootCmd.AddCommand(
		newInitCommand(opts),
		newIncomeCommand(opts),
		newExpenseCommand(opts),
		newTransferCommand(opts),
		newConvertCommand(opts),
		newRemoveCommand(opts),
		newListCommand(opts),
		newBalanceCommand(opts),
		newInterestCommand(opts),
		newWatchCommand(opts),
		newBudgetCommand(opts),
		newSettingsCommand(opts),
		newReportCommand(opts),
		newExportCommand(opts),
		newImportCommand(opts),
	)

	return rootCmd
}
