package service

import (
	"coin_sim/internal/model"
	"context"
)

type SimulationService interface {
	Run(ctx context.Context, params model.SimulationParameters) (*model.Report, error)
	Distribution(ctx context.Context, n int, p float64) (*model.TheoreticalDistribution, error)
	Defaults() model.SimulationParameters
	Limits() model.Limits
}
