package simulation

import (
	"coin_sim/internal/config"
	"coin_sim/internal/service"
)

type serv struct {
	cfg     config.SimulationConfig
	newSeed func() (uint64, error)
}

// NewSimulationService creates the coin-flip simulation service
func NewSimulationService(cfg config.SimulationConfig, newSeed func() (uint64, error)) service.SimulationService {
	return &serv{
		cfg:     cfg,
		newSeed: newSeed,
	}
}
