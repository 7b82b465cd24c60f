package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"revcast/internal/api"
	"revcast/internal/forecast"

	"github.com/spf13/cobra"
)

var (
	simInput   string
	simTrials  int
	simHorizon int
	simSeed    int64
)

// simulateCmd runs one simulation locally from a request file. Handy for
// demos and for checking a payload before pointing Salesforce at the API.
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one simulation from a JSON request file and print the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(simInput)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()

		req, err := api.DecodeSimulateRequest(f)
		if err != nil {
			return err
		}
		if simTrials > 0 {
			req.Trials = simTrials
		}
		if simHorizon > 0 {
			req.HorizonDays = simHorizon
		}

		sim := forecast.NewSimulator(cfg.Forecast)
		if simSeed != 0 {
			sim = forecast.NewSeededSimulator(cfg.Forecast, simSeed, nil)
		}

		result, err := sim.Run(cmd.Context(), req)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	simulateCmd.Flags().StringVarP(&simInput, "input", "i", "", "path to a JSON simulation request (required)")
	simulateCmd.Flags().IntVar(&simTrials, "trials", 0, "override num_simulations from the file")
	simulateCmd.Flags().IntVar(&simHorizon, "horizon", 0, "override time_horizon_days from the file")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "fix the RNG seed for a reproducible run")
	_ = simulateCmd.MarkFlagRequired("input")
}
