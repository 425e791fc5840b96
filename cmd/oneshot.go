package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dataferry/dataferry/internal/backend"
	"github.com/dataferry/dataferry/internal/engine"
	"github.com/dataferry/dataferry/internal/ent/generated"
)

// withStore opens the metadata store and the storage backend for a one-shot
// command and tears both down afterwards.
func withStore(name string, fn func(ctx context.Context, db *generated.Client, bc backend.Client) error) error {
	ctx := context.Background()
	logger := log.With().Str("component", name).Logger()

	db, err := engine.OpenStore(ctx, appConfig)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	bc, err := engine.NewBackend(appConfig, logger.With().Str("component", "backend").Logger())
	if err != nil {
		return err
	}
	defer func() { _ = bc.Close() }()

	return fn(ctx, db, bc)
}

func oneShotLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	return table
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return strconv.FormatInt(n, 10) + " B"
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

//nolint:forbidigo // CLI report output requires fmt.Println
func printSkippedEndpoints(endpoints []string) {
	for _, ep := range endpoints {
		fmt.Printf("endpoint %s unreachable, deferred\n", ep)
	}
}
