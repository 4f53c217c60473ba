package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/banklar/banklar/internal/export"
	"github.com/banklar/banklar/internal/notify"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger as JSON (full backup) or CSV (transactions)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating export file: %w", err)
				}
				defer f.Close()
				w = f
			}

			snap := a.store.Snapshot()
			switch format {
			case "json":
				err = export.JSON(w, snap)
			case "csv":
				err = export.CSV(w, snap)
			default:
				return fmt.Errorf("unknown format %q (want json or csv)", format)
			}
			if err != nil {
				return err
			}
			if out != "" {
				a.notifier.Notify(fmt.Sprintf("data exported to %s as %s", out, format), notify.Success)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "json or csv")
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")

	return cmd
}

func newImportCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <backup.json>",
		Short: "Restore the ledger from a JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening backup: %w", err)
			}
			defer f.Close()

			snap, err := export.ReadJSON(f)
			if err != nil {
				return err
			}

			a, err := newApp(opts)
			if err != nil {
				return err
			}
			a.store.Replace(snap)
			a.notifier.Notify(fmt.Sprintf("ledger restored from %s (%d transactions)", args[0], len(snap.Transactions)), notify.Success)
			return nil
		},
	}
}
