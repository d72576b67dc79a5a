package commands

import (
	"github.com/spf13/cobra"

	"coin_sim/internal/app"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (reads .env and config.yaml)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.NewApp().Run()
		},
	}
}
