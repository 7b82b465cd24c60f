package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"revcast/internal/api"
	"revcast/internal/config"
	"revcast/internal/forecast"
	"revcast/internal/logging"
	"revcast/internal/mcp"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "revcast",
	Short: "revcast is a Monte-Carlo revenue forecasting service",
	Long: `A stateless service that simulates thousands of possible quarter-end outcomes
for a sales pipeline and reports the revenue distribution, target hit
probabilities, and a histogram. Callable over HTTP or as MCP tools.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("revcast starting")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the forecast tools over MCP Stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info().Msg("MCP server starting Stdio loop")
		sim := forecast.NewSimulator(cfg.Forecast)
		return mcp.NewServer(cfg, sim, Version).Serve()
	},
}

func runServe() error {
	sim := forecast.NewSimulator(cfg.Forecast)
	srv := api.NewServer(cfg, sim, Version)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.AddCommand(serveCmd, mcpCmd, simulateCmd)
}
