package commands

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "coin_sim",
		Short:        "Coin-flip simulation of the binomial distribution",
		SilenceUsage: true,
	}

	root.AddCommand(serveCmd(), runCmd())
	return root
}
