package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dataferry/dataferry/internal/engine"
)

const defaultShutdownTimeout = 30 * time.Second

//nolint:gochecknoglobals // cobra CLI flags require package-level variables
var serveListen string

//nolint:gochecknoglobals // cobra requires package-level command variable
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API server and the periodic replication loop",
	RunE:  runServe,
}

//nolint:gochecknoinits // cobra requires init for flag registration
func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "address to listen on (default \"[::]:8617\")")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := appConfig
	if serveListen != "" {
		cfg.Server.Listen = serveListen
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eng, err := engine.New(ctx, cfg, engine.Options{
		Logger: log.With().Str("component", "engine").Logger(),
	})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Handle repeated signals during shutdown - force exit on second signal
	go func() {
		<-sigCh
		// Prepare for graceful shutdown (suppresses expected cancellation errors)
		eng.PrepareShutdown()
		cancel()

		// Wait for second signal
		<-sigCh
		log.Warn().Msg("received second signal, forcing exit")
		os.Exit(1)
	}()

	if err = eng.Run(ctx); err != nil {
		return err
	}

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer shutdownCancel()

	return eng.Shutdown(shutdownCtx)
}
