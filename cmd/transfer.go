package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dataferry/dataferry/internal/backend"
	"github.com/dataferry/dataferry/internal/ent/generated"
	"github.com/dataferry/dataferry/internal/schedule"
)

//nolint:gochecknoglobals // cobra CLI flags require package-level variables
var (
	transferDryRun     bool
	transferLab        string
	transferMismatched bool
)

//nolint:gochecknoglobals // cobra requires package-level command variable
var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Schedule bulk transfers for missing authoritative copies",
	Long: `Transfer runs one scheduling pass: every wanted copy on an authoritative
repository is batched into one job per source-destination-size-class
combination and submitted to the storage backend.`,
	RunE: runTransfer,
}

//nolint:gochecknoinits // cobra requires init for flag registration
func init() {
	transferCmd.Flags().BoolVar(&transferDryRun, "dry-run", false, "build the plan without submitting anything")
	transferCmd.Flags().StringVar(&transferLab, "lab", "", "restrict the pass to one lab (default from config)")
	transferCmd.Flags().BoolVar(&transferMismatched, "mismatched", false, "also re-transfer copies flagged with a hash mismatch")
	rootCmd.AddCommand(transferCmd)
}

func runTransfer(_ *cobra.Command, _ []string) error {
	return withStore("transfer", func(ctx context.Context, db *generated.Client, bc backend.Client) error {
		sched := schedule.New(db, bc,
			schedule.WithLogger(oneShotLogger("schedule")),
			schedule.WithLargeFileThreshold(appConfig.Sync.LargeFileThreshold))

		lab := transferLab
		if lab == "" {
			lab = appConfig.Sync.DefaultLab
		}

		plan, err := sched.Run(ctx, schedule.Options{
			Lab:               lab,
			IncludeMismatched: transferMismatched,
			DryRun:            transferDryRun,
		})
		if err != nil {
			return err
		}

		printTransferPlan(plan)
		return nil
	})
}

//nolint:forbidigo // CLI report output requires fmt.Println
func printTransferPlan(plan *schedule.Plan) {
	if len(plan.Jobs) == 0 && len(plan.Sourceless) == 0 {
		fmt.Println("nothing to transfer")
		return
	}

	table := newTable("Job", "Class", "Files", "Bytes", "Submitted")
	for _, job := range plan.Jobs {
		var total int64
		for _, tr := range job.Transfers {
			total += tr.Size
		}
		table.Append([]string{
			job.Label,
			string(job.Class),
			strconv.Itoa(len(job.Transfers)),
			formatBytes(total),
			job.SubmittedID,
		})
	}
	table.Render()

	for _, name := range plan.Sourceless {
		fmt.Printf("no source copy for %s, marked missing\n", name)
	}
	printSkippedEndpoints(plan.SkippedEndpoints)

	if !plan.Committed {
		fmt.Printf("dry run: %d jobs would be submitted\n", len(plan.Jobs))
	}
}
