package main

import (
	"os"

	"coin_sim/cmd/coin_sim/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
