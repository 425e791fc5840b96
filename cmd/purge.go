package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dataferry/dataferry/internal/backend"
	"github.com/dataferry/dataferry/internal/ent/generated"
	"github.com/dataferry/dataferry/internal/retire"
)

//nolint:gochecknoglobals // cobra CLI flags require package-level variables
var (
	purgeDryRun    bool
	purgeLocalOnly bool
	purgeForce     bool
)

//nolint:gochecknoglobals // cobra requires package-level command variable
var purgeCmd = &cobra.Command{
	Use:   "purge DATASET...",
	Short: "Remove every copy and record of the named datasets",
	Long: `Purge deletes all recorded copies of the named datasets from their
endpoints and removes the records. Endpoints that cannot be reached are
skipped whole and keep their records. Protected datasets are refused
unless --force is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPurge,
}

//nolint:gochecknoinits // cobra requires init for flag registration
func init() {
	purgeCmd.Flags().BoolVar(&purgeDryRun, "dry-run", false, "report what would be deleted without deleting anything")
	purgeCmd.Flags().BoolVar(&purgeLocalOnly, "local-only", false, "delete only personal-repository copies, keep the archive")
	purgeCmd.Flags().BoolVar(&purgeForce, "force", false, "purge protected datasets too")
	rootCmd.AddCommand(purgeCmd)
}

func runPurge(_ *cobra.Command, args []string) error {
	return withStore("purge", func(ctx context.Context, db *generated.Client, bc backend.Client) error {
		datasets, err := retire.ResolveDatasets(ctx, db, args)
		if err != nil {
			return err
		}

		eng := retire.New(db, bc,
			retire.WithLogger(oneShotLogger("purge")),
			retire.WithListRetries(appConfig.Sync.ListRetries))

		plan, err := eng.Purge(ctx, datasets, retire.Options{
			DryRun:    purgeDryRun,
			LocalOnly: purgeLocalOnly,
			Force:     purgeForce,
		})
		if err != nil {
			return err
		}

		printDeletionPlan(plan, "purge")
		return nil
	})
}
