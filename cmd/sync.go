package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dataferry/dataferry/internal/backend"
	"github.com/dataferry/dataferry/internal/ent/generated"
	"github.com/dataferry/dataferry/internal/reconcile"
)

//nolint:gochecknoglobals // cobra CLI flags require package-level variables
var (
	syncDryRun     bool
	syncLab        string
	syncMismatched bool
)

//nolint:gochecknoglobals // cobra requires package-level command variable
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile recorded copies against remote storage",
	Long: `Sync runs one reconciliation pass: it lists the directories of every
incomplete dataset on its endpoints and updates the records to match what
is actually there.`,
	RunE: runSync,
}

//nolint:gochecknoinits // cobra requires init for flag registration
func init() {
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "report the candidate set without listing or updating anything")
	syncCmd.Flags().StringVar(&syncLab, "lab", "", "restrict the pass to one lab (default from config)")
	syncCmd.Flags().BoolVar(&syncMismatched, "mismatched", false, "also re-verify records flagged with a hash mismatch")
	rootCmd.AddCommand(syncCmd)
}

func runSync(_ *cobra.Command, _ []string) error {
	return withStore("sync", func(ctx context.Context, db *generated.Client, bc backend.Client) error {
		rec := reconcile.New(db, bc,
			reconcile.WithLogger(oneShotLogger("reconcile")),
			reconcile.WithListRetries(appConfig.Sync.ListRetries))

		lab := syncLab
		if lab == "" {
			lab = appConfig.Sync.DefaultLab
		}

		report, err := rec.Run(ctx, reconcile.Options{
			Lab:               lab,
			IncludeMismatched: syncMismatched,
			DryRun:            syncDryRun,
		})
		if err != nil {
			return err
		}

		printSyncReport(report)
		return nil
	})
}

//nolint:forbidigo // CLI report output requires fmt.Println
func printSyncReport(report *reconcile.Report) {
	if len(report.Candidates) == 0 {
		fmt.Println("nothing to reconcile")
		return
	}

	table := newTable("Dataset", "Repository", "Path", "Exists", "Status")
	for _, c := range report.Candidates {
		table.Append([]string{c.Dataset, c.Repository, c.Path, strconv.FormatBool(c.Exists), c.Status})
	}
	table.Render()

	printSkippedEndpoints(report.SkippedEndpoints)

	if !report.Committed {
		fmt.Printf("dry run: %d records would be reviewed\n", len(report.Candidates))
		return
	}
	fmt.Printf("confirmed %d, vanished %d, sizes corrected %d\n",
		report.Confirmed, report.Vanished, report.SizesCorrected)
}
