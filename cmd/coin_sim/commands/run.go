package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"coin_sim/internal/config"
	"coin_sim/internal/config/env"
	"coin_sim/internal/model"
	"coin_sim/internal/render"
	"coin_sim/internal/service/simulation"
	"coin_sim/pkg/random"
)

func runCmd() *cobra.Command {
	var (
		p          float64
		n          int
		trials     int
		seed       uint64
		bins       int
		outDir     string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one simulation and print the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if !cmd.Flags().Changed("config") {
				path = env.ConfigPath(configPath)
			}
			cfg, err := env.NewSimulationConfigFromYAML(path)
			if err != nil {
				return err
			}

			params := model.SimulationParameters{
				P:      cfg.DefaultP(),
				N:      cfg.DefaultFlips(),
				Trials: cfg.DefaultTrials(),
			}
			if cmd.Flags().Changed("p") {
				params.P = p
			}
			if cmd.Flags().Changed("n") {
				params.N = n
			}
			if cmd.Flags().Changed("trials") {
				params.Trials = trials
			}
			if cmd.Flags().Changed("seed") {
				params.Seed = &seed
			}
			if !cmd.Flags().Changed("bins") {
				bins = cfg.HistogramBins()
			}

			serv := simulation.NewSimulationService(withBins{cfg, bins}, random.NewSeed)
			report, err := serv.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := render.WriteText(out, report); err != nil {
				return err
			}
			fmt.Fprintf(out, "Seed: %d\n", report.Seed)

			if outDir != "" {
				if err := render.SaveCharts(report, bins, outDir); err != nil {
					return err
				}
				fmt.Fprintf(out, "Charts written to %s\n", outDir)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&p, "p", 0.5, "probability of heads, 0..1")
	cmd.Flags().IntVar(&n, "n", 100, "flips per trial")
	cmd.Flags().IntVarP(&trials, "trials", "t", 50, "number of repeated trials")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "fixed random seed (random when omitted)")
	cmd.Flags().IntVar(&bins, "bins", 20, "histogram bins")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory for PNG charts")
	cmd.Flags().StringVar(&configPath, "config", "config.yaml", "simulation config file")

	return cmd
}

// withBins overrides the histogram bin count of a loaded config
type withBins struct {
	config.SimulationConfig
	bins int
}

func (c withBins) HistogramBins() int {
	return c.bins
}
