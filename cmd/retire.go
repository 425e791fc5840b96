package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dataferry/dataferry/internal/backend"
	"github.com/dataferry/dataferry/internal/ent/generated"
	"github.com/dataferry/dataferry/internal/retire"
)

//nolint:gochecknoglobals // cobra CLI flags require package-level variables
var retireDryRun bool

//nolint:gochecknoglobals // cobra requires package-level command variable
var retireCmd = &cobra.Command{
	Use:   "retire DATASET...",
	Short: "Delete personal copies whose archived copy is verified intact",
	Long: `Retire deletes the personal-repository copies of the named datasets, but
only after confirming that the authoritative copy is present with the
recorded size and that each local copy still matches. Datasets may be
named by name or by id.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRetire,
}

//nolint:gochecknoinits // cobra requires init for flag registration
func init() {
	retireCmd.Flags().BoolVar(&retireDryRun, "dry-run", false, "report what would be deleted without deleting anything")
	rootCmd.AddCommand(retireCmd)
}

func runRetire(_ *cobra.Command, args []string) error {
	return withStore("retire", func(ctx context.Context, db *generated.Client, bc backend.Client) error {
		datasets, err := retire.ResolveDatasets(ctx, db, args)
		if err != nil {
			return err
		}

		eng := retire.New(db, bc,
			retire.WithLogger(oneShotLogger("retire")),
			retire.WithListRetries(appConfig.Sync.ListRetries))

		plan, err := eng.RetireLocal(ctx, datasets, retire.Options{DryRun: retireDryRun})
		if err != nil {
			return err
		}

		printDeletionPlan(plan, "retire")
		return nil
	})
}

//nolint:forbidigo // CLI report output requires fmt.Println
func printDeletionPlan(plan *retire.Plan, verb string) {
	if len(plan.Deletions) > 0 {
		table := newTable("Endpoint", "Files", "Job")
		for _, del := range plan.Deletions {
			table.Append([]string{del.Endpoint, strconv.Itoa(len(del.Paths)), del.JobID})
		}
		table.Render()
	}

	for _, skip := range plan.Skips {
		fmt.Printf("skipped %s on %s: %s\n", skip.Dataset, skip.Repository, skip.Reason)
	}
	printSkippedEndpoints(plan.SkippedEndpoints)

	if !plan.Committed {
		var files int
		for _, del := range plan.Deletions {
			files += len(del.Paths)
		}
		fmt.Printf("dry run: %d files would be deleted\n", files)
		return
	}

	parts := []string{fmt.Sprintf("%d records deleted", plan.RowsDeleted)}
	if plan.DatasetsDeleted > 0 {
		parts = append(parts, fmt.Sprintf("%d datasets removed", plan.DatasetsDeleted))
	}
	fmt.Printf("%s done: %s\n", verb, strings.Join(parts, ", "))
}
